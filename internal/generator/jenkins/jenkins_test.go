package jenkins

import (
	"strings"
	"testing"

	"github.com/flarebyte/jobforge/internal/generator"
	"github.com/flarebyte/jobforge/internal/job"
	"github.com/flarebyte/jobforge/internal/repo"
)

func spaceRepo() *repo.Repository {
	return repo.New("http://space.git", "milky_way")
}

func TestJobName(t *testing.T) {
	g := New(spaceRepo())
	g.Reset()
	if got := g.JobName(); got != "space-milky_way" {
		t.Fatalf("got %q", got)
	}
	g.SetMatrixRow(map[string]string{"planet": "earth", "moon": "europa"})
	// Matrix values appear in sorted variable order.
	if got := g.JobName(); got != "space-milky_way-europa-earth" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateRendersConfiguredJob(t *testing.T) {
	g := New(spaceRepo())
	spec := &job.Spec{
		Repository:         spaceRepo(),
		MatrixRow:          map[string]string{"planet": "earth"},
		BuildShellCommands: []string{"make", "make test"},
		BuildBatchCommands: []string{"build.bat"},
		JunitPatterns:      []string{"junit*.xml"},
		BoosttestPatterns:  []string{"boost*.xml"},
		DescriptionRegex:   "OUTPUT: (.*)",
		NotifyStash:        map[string]string{"url": "stash.com", "username": "u", "password": "p"},
	}
	if err := generator.Configure(g, spec); err != nil {
		t.Fatalf("configure: %v", err)
	}
	artifacts, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(artifacts) != 1 {
		t.Fatalf("expected 1 artifact, got %d", len(artifacts))
	}
	if artifacts[0].Name != "space-milky_way-earth.xml" {
		t.Fatalf("artifact name: %q", artifacts[0].Name)
	}
	xml := string(artifacts[0].Content)
	for _, want := range []string{
		"<?xml version=",
		"<project>",
		"<command>make</command>",
		"<command>make test</command>",
		"<hudson.tasks.BatchFile>",
		"<command>build.bat</command>",
		"<testResults>junit*.xml</testResults>",
		"<pattern>boost*.xml</pattern>",
		"<stashServerBaseUrl>stash.com</stashServerBaseUrl>",
		"<regexp>OUTPUT: (.*)</regexp>",
		"<url>http://space.git</url>",
		"<name>milky_way</name>",
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("missing %q in:\n%s", want, xml)
		}
	}
}

func TestGenerateParameters(t *testing.T) {
	g := New(spaceRepo())
	g.Reset()
	g.SetParameters([]map[string]any{
		{"name": "my_param", "choices": []any{"1", "2"}},
		{"name": "free_text", "default": "abc", "description": "d"},
	})
	artifacts, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	xml := string(artifacts[0].Content)
	for _, want := range []string{
		"<hudson.model.ChoiceParameterDefinition>",
		"<name>my_param</name>",
		"<string>1</string>",
		"<string>2</string>",
		"<hudson.model.StringParameterDefinition>",
		"<name>free_text</name>",
		"<defaultValue>abc</defaultValue>",
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("missing %q in:\n%s", want, xml)
		}
	}
}

func TestGenerateEmptyJobOmitsPublishers(t *testing.T) {
	g := New(spaceRepo())
	g.Reset()
	artifacts, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	xml := string(artifacts[0].Content)
	for _, absent := range []string{
		"JUnitResultArchiver",
		"StashNotifier",
		"DescriptionSetterPublisher",
		"ParametersDefinitionProperty",
	} {
		if strings.Contains(xml, absent) {
			t.Fatalf("unexpected %q in:\n%s", absent, xml)
		}
	}
}

func TestResetClearsConfiguredValues(t *testing.T) {
	g := New(spaceRepo())
	g.SetJunitPatterns([]string{"a.xml"})
	g.SetMatrixRow(map[string]string{"planet": "earth"})
	g.Reset()
	if g.JobName() != "space-milky_way" {
		t.Fatalf("row survived reset: %q", g.JobName())
	}
	artifacts, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(string(artifacts[0].Content), "a.xml") {
		t.Fatalf("junit patterns survived reset")
	}
}
