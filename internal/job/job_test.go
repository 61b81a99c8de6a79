package job

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/flarebyte/jobforge/internal/repo"
)

func spaceRepo() *repo.Repository {
	return repo.New("http://space.git", "milky_way")
}

func TestSpecsFromYAMLMatrixTemplate(t *testing.T) {
	contents := []byte(`
junit_patterns:
- "{planet}-{branch}.xml"

matrix:
    planet:
    - earth
    - mars
`)
	specs, err := SpecsFromYAML(contents, spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	if got := specs[0].JunitPatterns; !reflect.DeepEqual(got, []string{"earth-milky_way.xml"}) {
		t.Fatalf("spec 0: %v", got)
	}
	if got := specs[1].JunitPatterns; !reflect.DeepEqual(got, []string{"mars-milky_way.xml"}) {
		t.Fatalf("spec 1: %v", got)
	}
	if got := specs[0].MatrixRow; !reflect.DeepEqual(got, map[string]string{"planet": "earth"}) {
		t.Fatalf("spec 0 row: %v", got)
	}
	if specs[0].Repository != specs[1].Repository {
		t.Fatalf("specs must share the repository reference")
	}
}

func TestSpecsFromYAMLNameToken(t *testing.T) {
	specs, err := SpecsFromYAML([]byte("description_regex: \"{name} on {branch}\"\n"), spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("expected 1 spec, got %d", len(specs))
	}
	if specs[0].DescriptionRegex != "space on milky_way" {
		t.Fatalf("got %q", specs[0].DescriptionRegex)
	}
}

func TestSpecsFromYAMLBranchFilterShortCircuits(t *testing.T) {
	specs, err := SpecsFromYAML([]byte("branch_patterns:\n- \"release-.*\"\n"), spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if len(specs) != 0 {
		t.Fatalf("expected no specs, got %d", len(specs))
	}
}

func TestSpecsFromYAMLUnknownOption(t *testing.T) {
	_, err := SpecsFromYAML([]byte("bogus_option:\n- 1\n"), spaceRepo())
	var unknown *UnknownOptionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownOptionError, got %v", err)
	}
	if !strings.Contains(err.Error(), "boosttest_patterns, branch_patterns") {
		t.Fatalf("message must enumerate valid options: %v", err)
	}
}

func TestSpecsFromYAMLConditionalOption(t *testing.T) {
	contents := []byte(`
planet-earth:junit_patterns:
- "x.xml"

matrix:
    planet:
    - earth
    - mars
`)
	specs, err := SpecsFromYAML(contents, spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	if got := specs[0].JunitPatterns; !reflect.DeepEqual(got, []string{"x.xml"}) {
		t.Fatalf("earth row: %v", got)
	}
	if specs[1].JunitPatterns != nil {
		t.Fatalf("mars row should be empty, got %v", specs[1].JunitPatterns)
	}
}

func TestSpecsFromYAMLLastWriteWins(t *testing.T) {
	contents := []byte(`
junit_patterns:
- "default.xml"

planet-earth:junit_patterns:
- "earth.xml"

matrix:
    planet:
    - earth
    - mars
`)
	specs, err := SpecsFromYAML(contents, spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if got := specs[0].JunitPatterns; !reflect.DeepEqual(got, []string{"earth.xml"}) {
		t.Fatalf("earth row: %v", got)
	}
	if got := specs[1].JunitPatterns; !reflect.DeepEqual(got, []string{"default.xml"}) {
		t.Fatalf("mars row: %v", got)
	}
}

func TestSpecsFromYAMLEmptyDocument(t *testing.T) {
	specs, err := SpecsFromYAML([]byte(""), spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("expected 1 empty spec, got %d", len(specs))
	}
	s := specs[0]
	if s.Repository == nil || len(s.MatrixRow) != 0 {
		t.Fatalf("unexpected spec: %+v", s)
	}
	if s.JunitPatterns != nil || s.DescriptionRegex != "" || s.NotifyStash != nil {
		t.Fatalf("expected all fields empty: %+v", s)
	}
}

func TestSpecsFromYAMLNilContents(t *testing.T) {
	specs, err := SpecsFromYAML(nil, spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	if specs != nil {
		t.Fatalf("expected no specs, got %v", specs)
	}
}

func TestSpecsFromYAMLMappingAndParameters(t *testing.T) {
	contents := []byte(`
notify_stash:
    url: stash.com
    username: user
    password: pass

parameters:
- choices:
  - "1"
  - "2"
  name: my_param
`)
	specs, err := SpecsFromYAML(contents, spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	s := specs[0]
	wantStash := map[string]string{"url": "stash.com", "username": "user", "password": "pass"}
	if !reflect.DeepEqual(s.NotifyStash, wantStash) {
		t.Fatalf("notify_stash: %v", s.NotifyStash)
	}
	wantParams := []map[string]any{{
		"choices": []any{"1", "2"},
		"name":    "my_param",
	}}
	if !reflect.DeepEqual(s.Parameters, wantParams) {
		t.Fatalf("parameters: %v", s.Parameters)
	}
}

func TestSpecsFromYAMLTemplateMissingToken(t *testing.T) {
	_, err := SpecsFromYAML([]byte("junit_patterns:\n- \"{galaxy}.xml\"\n"), spaceRepo())
	var missing *MissingTokenError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingTokenError, got %v", err)
	}
}

func TestSpecsFromYAMLControlOptionsNeverForwarded(t *testing.T) {
	contents := []byte(`
branch_patterns:
- ".*"

matrix:
    planet:
    - earth

junit_patterns:
- "x.xml"
`)
	specs, err := SpecsFromYAML(contents, spaceRepo())
	if err != nil {
		t.Fatalf("specs: %v", err)
	}
	// Control options steer expansion only; the spec carries just the
	// forwardable fields and the row snapshot.
	s := specs[0]
	if !reflect.DeepEqual(s.JunitPatterns, []string{"x.xml"}) {
		t.Fatalf("junit_patterns: %v", s.JunitPatterns)
	}
	if !reflect.DeepEqual(s.MatrixRow, map[string]string{"planet": "earth"}) {
		t.Fatalf("matrix row: %v", s.MatrixRow)
	}
}
