// Package job turns the declarative YAML job description of a repository into
// concrete job specifications: one per matrix row, with templates resolved
// and conditional options applied.
package job

import (
	"fmt"

	"github.com/flarebyte/jobforge/internal/repo"
)

// Spec is one fully resolved job specification, consumed read-only by a
// generator backend. It carries one typed field per forwardable option; a
// zero field means the option was absent for this row.
type Spec struct {
	Repository *repo.Repository
	MatrixRow  map[string]string

	BoosttestPatterns  []string
	BuildBatchCommands []string
	BuildShellCommands []string
	DescriptionRegex   string
	JsunitPatterns     []string
	JunitPatterns      []string
	NotifyStash        map[string]string
	Parameters         []map[string]any
}

// SpecsFromYAML parses the raw contents of a jobs file and produces one Spec
// per matrix row. It returns no specs when contents is nil or when no branch
// pattern matches the repository branch. An empty document still yields one
// empty spec per row: generators may fill such jobs with defaults.
func SpecsFromYAML(contents []byte, repository *repo.Repository) ([]*Spec, error) {
	if contents == nil {
		return nil, nil
	}
	doc, err := ParseDocument(contents)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	patterns := defaultBranchPatterns
	if n, ok := doc.Get("branch_patterns"); ok {
		patterns, err = scalarSequence("branch_patterns", n)
		if err != nil {
			return nil, err
		}
	}
	build, err := shouldBuild(patterns, repository.Branch)
	if err != nil {
		return nil, err
	}
	if !build {
		return nil, nil
	}

	var matrix Mapping
	if n, ok := doc.Get("matrix"); ok {
		matrix = n.(Mapping)
	}
	rows, err := expandMatrix(matrix)
	if err != nil {
		return nil, err
	}

	specs := make([]*Spec, 0, len(rows))
	for _, row := range rows {
		spec := &Spec{Repository: repository, MatrixRow: row.Bindings()}
		specs = append(specs, spec)
		if len(doc) == 0 {
			continue
		}

		ctx := map[string]string{
			"name":   repository.Name,
			"branch": repository.Branch,
		}
		for k, v := range row.Bindings() {
			ctx[k] = v
		}
		resolved, err := resolveTemplates(doc, ctx)
		if err != nil {
			return nil, err
		}

		for _, e := range resolved.(Mapping) {
			conds, option, err := splitOptionKey(e.Key)
			if err != nil {
				return nil, err
			}
			if !row.Matches(conds) {
				continue
			}
			if err := spec.setOption(option, e.Value); err != nil {
				return nil, err
			}
		}
	}
	return specs, nil
}

// setOption assigns a resolved document value to the matching Spec field.
// Keys resolving to the same option overwrite in document order. Control
// options never reach the spec.
func (s *Spec) setOption(name string, value Node) error {
	var err error
	switch name {
	case "boosttest_patterns":
		s.BoosttestPatterns, err = scalarSequence(name, value)
	case "build_batch_commands":
		s.BuildBatchCommands, err = scalarSequence(name, value)
	case "build_shell_commands":
		s.BuildShellCommands, err = scalarSequence(name, value)
	case "description_regex":
		s.DescriptionRegex, _ = value.(string)
	case "jsunit_patterns":
		s.JsunitPatterns, err = scalarSequence(name, value)
	case "junit_patterns":
		s.JunitPatterns, err = scalarSequence(name, value)
	case "notify_stash":
		s.NotifyStash, err = scalarMapping(name, value)
	case "parameters":
		s.Parameters, err = parameterSequence(name, value)
	case "branch_patterns", "matrix":
	}
	return err
}

func scalarSequence(option string, n Node) ([]string, error) {
	seq, _ := n.(Sequence)
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("option %q: expected a sequence of strings", option)
		}
		out = append(out, s)
	}
	return out, nil
}

func scalarMapping(option string, n Node) (map[string]string, error) {
	m, _ := n.(Mapping)
	out := make(map[string]string, len(m))
	for _, e := range m {
		s, ok := e.Value.(string)
		if !ok {
			return nil, fmt.Errorf("option %q: expected a mapping of strings", option)
		}
		out[e.Key] = s
	}
	return out, nil
}

func parameterSequence(option string, n Node) ([]map[string]any, error) {
	seq, _ := n.(Sequence)
	out := make([]map[string]any, 0, len(seq))
	for _, item := range seq {
		m, ok := item.(Mapping)
		if !ok {
			return nil, fmt.Errorf("option %q: expected a sequence of mappings", option)
		}
		out = append(out, genericMapping(m))
	}
	return out, nil
}

// genericMapping converts an ordered subtree to plain Go values for fields
// whose inner structure is opaque to the schema.
func genericMapping(m Mapping) map[string]any {
	out := make(map[string]any, len(m))
	for _, e := range m {
		out[e.Key] = genericValue(e.Value)
	}
	return out
}

func genericValue(n Node) any {
	switch v := n.(type) {
	case Sequence:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = genericValue(item)
		}
		return out
	case Mapping:
		return genericMapping(v)
	default:
		return v
	}
}
