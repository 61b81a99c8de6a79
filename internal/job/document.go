package job

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is one piece of a parsed jobs document: a string scalar, a Sequence,
// or an ordered Mapping. Every scalar is kept as its literal string form; the
// document format never needs typed scalars.
type Node any

// Sequence is an ordered list of nodes.
type Sequence []Node

// Entry is a single key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value Node
}

// Mapping preserves document order. Duplicate keys are kept in order so that
// later entries naturally overwrite earlier ones during assembly.
type Mapping []Entry

// Get returns the value for key. With duplicate keys the last entry wins.
func (m Mapping) Get(key string) (Node, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// ParseDocument parses the raw text of a jobs file into an ordered generic
// tree. An empty document parses to an empty Mapping. Non-ASCII content in
// keys or scalars is rejected with a positional error.
func ParseDocument(contents []byte) (Mapping, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(contents, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %v", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Mapping{}, nil
	}
	top := unalias(root.Content[0])
	if top.Tag == "!!null" {
		return Mapping{}, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("invalid YAML: top-level must be a mapping")
	}
	n, err := convertNode(top)
	if err != nil {
		return nil, err
	}
	return n.(Mapping), nil
}

func convertNode(n *yaml.Node) (Node, error) {
	n = unalias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		if err := checkASCII(n); err != nil {
			return nil, err
		}
		return n.Value, nil
	case yaml.SequenceNode:
		out := make(Sequence, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := convertNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(Mapping, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := unalias(n.Content[i])
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("invalid YAML: mapping key at line %d must be a scalar", k.Line)
			}
			if err := checkASCII(k); err != nil {
				return nil, err
			}
			v, err := convertNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, Entry{Key: k.Value, Value: v})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("invalid YAML: unsupported node at line %d", n.Line)
	}
}

func unalias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// checkASCII rejects non-ASCII scalar content instead of silently coercing.
func checkASCII(n *yaml.Node) error {
	for i := 0; i < len(n.Value); i++ {
		if n.Value[i] > 0x7f {
			return fmt.Errorf("non-ASCII content at line %d: %q", n.Line, n.Value)
		}
	}
	return nil
}
