// Package generator defines the capability protocol between resolved job
// specifications and pluggable CI generator backends. The core never
// constructs backends; it only configures them.
package generator

// Artifact is one generated job definition, named for the file it should be
// written to.
type Artifact struct {
	Name    string
	Content []byte
}

// Generator is the mandatory lifecycle surface of every backend. Configure
// calls Reset exactly once per invocation to establish a known-clean state;
// Generate is a separate step the caller runs after Configure.
type Generator interface {
	Reset()
	Generate() ([]Artifact, error)
}

// One optional capability interface per forwardable option. A backend
// implements the setters for the options it can act on; Configure fails when
// a populated option meets a backend without the matching capability.

type BoosttestPatternsSetter interface {
	SetBoosttestPatterns(patterns []string)
}

type BuildBatchCommandsSetter interface {
	SetBuildBatchCommands(commands []string)
}

type BuildShellCommandsSetter interface {
	SetBuildShellCommands(commands []string)
}

type DescriptionRegexSetter interface {
	SetDescriptionRegex(regex string)
}

type JsunitPatternsSetter interface {
	SetJsunitPatterns(patterns []string)
}

type JunitPatternsSetter interface {
	SetJunitPatterns(patterns []string)
}

type NotifyStashSetter interface {
	SetNotifyStash(args map[string]string)
}

type ParametersSetter interface {
	SetParameters(parameters []map[string]any)
}

// MatrixRowSetter receives the matrix row that produced the job. The row is
// not a schema option: backends that do not care may omit the setter without
// error.
type MatrixRowSetter interface {
	SetMatrixRow(row map[string]string)
}
