package job

import "regexp"

// templateToken matches a well-formed {identifier} placeholder. Any other
// brace content passes through verbatim.
var templateToken = regexp.MustCompile(`\{[A-Za-z_][A-Za-z0-9_]*\}`)

// resolveTemplates substitutes placeholders in every string leaf of the tree,
// returning a new tree. Keys and container shapes are never altered, and each
// token is resolved exactly once: substituted values are not re-scanned.
func resolveTemplates(n Node, ctx map[string]string) (Node, error) {
	switch v := n.(type) {
	case string:
		return substituteTokens(v, ctx)
	case Sequence:
		out := make(Sequence, len(v))
		for i, item := range v {
			r, err := resolveTemplates(item, ctx)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case Mapping:
		out := make(Mapping, len(v))
		for i, e := range v {
			r, err := resolveTemplates(e.Value, ctx)
			if err != nil {
				return nil, err
			}
			out[i] = Entry{Key: e.Key, Value: r}
		}
		return out, nil
	default:
		return n, nil
	}
}

func substituteTokens(s string, ctx map[string]string) (string, error) {
	var missing string
	out := templateToken.ReplaceAllStringFunc(s, func(tok string) string {
		name := tok[1 : len(tok)-1]
		v, ok := ctx[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return tok
		}
		return v
	})
	if missing != "" {
		return "", &MissingTokenError{Token: missing}
	}
	return out, nil
}
