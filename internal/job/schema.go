package job

import "sort"

// Shape is the container shape an option's value must have.
type Shape int

const (
	ShapeScalar Shape = iota
	ShapeSequence
	ShapeMapping
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	}
	return "unknown"
}

type optionSpec struct {
	shape   Shape
	forward bool
}

// optionTable is the full set of recognized jobs-file options. The two
// control options (branch_patterns, matrix) only steer expansion and are
// never forwarded to a generator. The table is never mutated after init.
var optionTable = map[string]optionSpec{
	"boosttest_patterns":   {ShapeSequence, true},
	"build_batch_commands": {ShapeSequence, true},
	"build_shell_commands": {ShapeSequence, true},
	"description_regex":    {ShapeScalar, true},
	"jsunit_patterns":      {ShapeSequence, true},
	"junit_patterns":       {ShapeSequence, true},
	"notify_stash":         {ShapeMapping, true},
	"parameters":           {ShapeSequence, true},

	"branch_patterns": {ShapeSequence, false},
	"matrix":          {ShapeMapping, false},
}

// OptionNames returns every recognized option name, sorted.
func OptionNames() []string {
	names := make([]string, 0, len(optionTable))
	for n := range optionTable {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ForwardableOptionNames returns the generator-forwardable subset, sorted.
func ForwardableOptionNames() []string {
	names := make([]string, 0, len(optionTable))
	for n, spec := range optionTable {
		if spec.forward {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// shapeOf reports the runtime container shape of a parsed node.
func shapeOf(n Node) Shape {
	switch n.(type) {
	case Sequence:
		return ShapeSequence
	case Mapping:
		return ShapeMapping
	}
	return ShapeScalar
}
