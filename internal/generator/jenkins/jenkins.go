// Package jenkins emits Jenkins freestyle job definitions (config.xml) from
// configured job specifications.
package jenkins

import (
	"sort"
	"strings"

	"github.com/flarebyte/jobforge/internal/generator"
	"github.com/flarebyte/jobforge/internal/repo"
)

// Generator accumulates capability values for one job and renders them as a
// single Jenkins config.xml artifact.
type Generator struct {
	repo *repo.Repository
	row  map[string]string

	boosttestPatterns  []string
	buildBatchCommands []string
	buildShellCommands []string
	descriptionRegex   string
	jsunitPatterns     []string
	junitPatterns      []string
	notifyStash        map[string]string
	parameters         []map[string]any
}

// New creates a generator bound to the repository jobs are created for.
func New(r *repo.Repository) *Generator {
	return &Generator{repo: r}
}

// Reset clears all configured values, keeping the repository binding.
func (g *Generator) Reset() {
	*g = Generator{repo: g.repo}
}

func (g *Generator) SetMatrixRow(row map[string]string) { g.row = row }

func (g *Generator) SetBoosttestPatterns(patterns []string) { g.boosttestPatterns = patterns }

func (g *Generator) SetBuildBatchCommands(commands []string) { g.buildBatchCommands = commands }

func (g *Generator) SetBuildShellCommands(commands []string) { g.buildShellCommands = commands }

func (g *Generator) SetDescriptionRegex(regex string) { g.descriptionRegex = regex }

func (g *Generator) SetJsunitPatterns(patterns []string) { g.jsunitPatterns = patterns }

func (g *Generator) SetJunitPatterns(patterns []string) { g.junitPatterns = patterns }

func (g *Generator) SetNotifyStash(args map[string]string) { g.notifyStash = args }

func (g *Generator) SetParameters(parameters []map[string]any) { g.parameters = parameters }

// JobName builds the Jenkins job name: repository name, branch, then the
// matrix values in sorted variable order.
func (g *Generator) JobName() string {
	parts := []string{g.repo.Name, g.repo.Branch}
	vars := make([]string, 0, len(g.row))
	for v := range g.row {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	for _, v := range vars {
		parts = append(parts, g.row[v])
	}
	return strings.Join(parts, "-")
}

// Generate renders the configured job as one config.xml artifact.
func (g *Generator) Generate() ([]generator.Artifact, error) {
	data, err := g.configXML()
	if err != nil {
		return nil, err
	}
	return []generator.Artifact{{Name: g.JobName() + ".xml", Content: data}}, nil
}
