// Package luagen is a scripted generator backend: a user supplied Lua script
// turns configured jobs into artifacts, letting jobs target CI systems that
// have no native backend.
package luagen

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/flarebyte/jobforge/internal/generator"
	"github.com/flarebyte/jobforge/internal/repo"
)

// Generator exposes the full capability surface and hands the collected
// values to the script as a `job` table. The script must define
// generate(job) returning either one artifact table {name=..., content=...}
// or an array of them.
type Generator struct {
	repo   *repo.Repository
	script string
	job    map[string]any
}

// New creates a generator for the repository running the given script source.
func New(r *repo.Repository, script string) *Generator {
	return &Generator{repo: r, script: script, job: map[string]any{}}
}

// Reset discards all configured values, keeping repository and script.
func (g *Generator) Reset() {
	g.job = map[string]any{}
}

func (g *Generator) SetMatrixRow(row map[string]string) {
	g.job["matrix_row"] = stringAnyMap(row)
}

func (g *Generator) SetBoosttestPatterns(patterns []string) {
	g.job["boosttest_patterns"] = anySlice(patterns)
}

func (g *Generator) SetBuildBatchCommands(commands []string) {
	g.job["build_batch_commands"] = anySlice(commands)
}

func (g *Generator) SetBuildShellCommands(commands []string) {
	g.job["build_shell_commands"] = anySlice(commands)
}

func (g *Generator) SetDescriptionRegex(regex string) {
	g.job["description_regex"] = regex
}

func (g *Generator) SetJsunitPatterns(patterns []string) {
	g.job["jsunit_patterns"] = anySlice(patterns)
}

func (g *Generator) SetJunitPatterns(patterns []string) {
	g.job["junit_patterns"] = anySlice(patterns)
}

func (g *Generator) SetNotifyStash(args map[string]string) {
	g.job["notify_stash"] = stringAnyMap(args)
}

func (g *Generator) SetParameters(parameters []map[string]any) {
	out := make([]any, len(parameters))
	for i, p := range parameters {
		out[i] = p
	}
	g.job["parameters"] = out
}

// Generate runs the script in a fresh sandboxed state and collects the
// artifacts it returns.
func (g *Generator) Generate() ([]generator.Artifact, error) {
	L := newSandboxState()
	defer L.Close()

	job := map[string]any{
		"name":   g.repo.Name,
		"branch": g.repo.Branch,
		"url":    g.repo.URL,
	}
	for k, v := range g.job {
		job[k] = v
	}
	L.SetGlobal("job", toLValue(L, job))

	if err := L.DoString(g.script); err != nil {
		return nil, fmt.Errorf("lua: %v", err)
	}
	fn := L.GetGlobal("generate")
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("lua: script must define generate(job)")
	}
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, L.GetGlobal("job")); err != nil {
		return nil, fmt.Errorf("lua: %v", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return artifactsFromLua(ret)
}

func anySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func stringAnyMap(in map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
