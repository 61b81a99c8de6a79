package generator

import (
	"fmt"
	"sort"

	"github.com/go-openapi/inflect"

	"github.com/flarebyte/jobforge/internal/job"
)

// UnrecognizedOptionError reports a populated job option the target backend
// has no capability for. This is a hard error: the jobs file asked for
// something the backend cannot act on.
type UnrecognizedOptionError struct {
	Option string
	Method string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("generator does not support option %q (missing method %s)", e.Option, e.Method)
}

// MethodName derives the capability method name for a forwardable option,
// e.g. junit_patterns becomes SetJunitPatterns.
func MethodName(option string) string {
	return "Set" + inflect.Camelize(option)
}

// capability binds one forwardable option to its setter interface. forward
// applies the option to gen when populated, reporting whether the field was
// populated and whether gen exposes the setter.
type capability struct {
	option  string
	forward func(gen Generator, spec *job.Spec) (populated, supported bool)
}

var capabilities = []capability{
	{"boosttest_patterns", func(g Generator, s *job.Spec) (bool, bool) {
		if len(s.BoosttestPatterns) == 0 {
			return false, true
		}
		t, ok := g.(BoosttestPatternsSetter)
		if ok {
			t.SetBoosttestPatterns(s.BoosttestPatterns)
		}
		return true, ok
	}},
	{"build_batch_commands", func(g Generator, s *job.Spec) (bool, bool) {
		if len(s.BuildBatchCommands) == 0 {
			return false, true
		}
		t, ok := g.(BuildBatchCommandsSetter)
		if ok {
			t.SetBuildBatchCommands(s.BuildBatchCommands)
		}
		return true, ok
	}},
	{"build_shell_commands", func(g Generator, s *job.Spec) (bool, bool) {
		if len(s.BuildShellCommands) == 0 {
			return false, true
		}
		t, ok := g.(BuildShellCommandsSetter)
		if ok {
			t.SetBuildShellCommands(s.BuildShellCommands)
		}
		return true, ok
	}},
	{"description_regex", func(g Generator, s *job.Spec) (bool, bool) {
		if s.DescriptionRegex == "" {
			return false, true
		}
		t, ok := g.(DescriptionRegexSetter)
		if ok {
			t.SetDescriptionRegex(s.DescriptionRegex)
		}
		return true, ok
	}},
	{"jsunit_patterns", func(g Generator, s *job.Spec) (bool, bool) {
		if len(s.JsunitPatterns) == 0 {
			return false, true
		}
		t, ok := g.(JsunitPatternsSetter)
		if ok {
			t.SetJsunitPatterns(s.JsunitPatterns)
		}
		return true, ok
	}},
	{"junit_patterns", func(g Generator, s *job.Spec) (bool, bool) {
		if len(s.JunitPatterns) == 0 {
			return false, true
		}
		t, ok := g.(JunitPatternsSetter)
		if ok {
			t.SetJunitPatterns(s.JunitPatterns)
		}
		return true, ok
	}},
	{"notify_stash", func(g Generator, s *job.Spec) (bool, bool) {
		if len(s.NotifyStash) == 0 {
			return false, true
		}
		t, ok := g.(NotifyStashSetter)
		if ok {
			t.SetNotifyStash(s.NotifyStash)
		}
		return true, ok
	}},
	{"parameters", func(g Generator, s *job.Spec) (bool, bool) {
		if len(s.Parameters) == 0 {
			return false, true
		}
		t, ok := g.(ParametersSetter)
		if ok {
			t.SetParameters(s.Parameters)
		}
		return true, ok
	}},
}

func init() {
	// The registry must cover the forwardable schema exactly.
	have := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		have = append(have, c.option)
	}
	sort.Strings(have)
	want := job.ForwardableOptionNames()
	if len(have) != len(want) {
		panic("generator: capability registry out of sync with option schema")
	}
	for i := range have {
		if have[i] != want[i] {
			panic("generator: capability registry out of sync with option schema")
		}
	}
}

// Configure resets gen and forwards every populated forwardable option of
// spec to it. Reset runs exactly once per call regardless of how many options
// are forwarded. Generation is a separate step left to the caller.
func Configure(gen Generator, spec *job.Spec) error {
	gen.Reset()
	if rs, ok := gen.(MatrixRowSetter); ok && len(spec.MatrixRow) > 0 {
		rs.SetMatrixRow(spec.MatrixRow)
	}
	for _, c := range capabilities {
		populated, supported := c.forward(gen, spec)
		if populated && !supported {
			return &UnrecognizedOptionError{Option: c.option, Method: MethodName(c.option)}
		}
	}
	return nil
}
