package job

import "strings"

// Condition gates a document option on a matrix variable value.
type Condition struct {
	Name  string
	Value string
}

// splitOptionKey breaks a compound document key into its condition tokens and
// the real option name. All colon-separated segments but the last are
// conditions of the form name-value; the name ends at the first dash.
func splitOptionKey(key string) ([]Condition, string, error) {
	segments := strings.Split(key, ":")
	option := segments[len(segments)-1]
	if len(segments) == 1 {
		return nil, option, nil
	}
	conds := make([]Condition, 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		name, value, ok := strings.Cut(seg, "-")
		if !ok || name == "" || value == "" {
			return nil, "", &MalformedConditionError{Token: seg}
		}
		conds = append(conds, Condition{Name: name, Value: value})
	}
	return conds, option, nil
}

// realOptionName strips any condition prefix from a compound key.
func realOptionName(key string) string {
	if i := strings.LastIndex(key, ":"); i >= 0 {
		return key[i+1:]
	}
	return key
}
