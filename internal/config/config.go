// Package config parses the jobforge tool configuration from a CUE file.
// The jobs document itself is YAML and lives with the repository; this
// configuration only selects the backend and where artifacts go.
package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// Known generator backends.
const (
	GeneratorJenkins = "jenkins"
	GeneratorLua     = "lua"
)

// DefaultJobsFile is the jobs description file looked up at the repository
// root when the config does not override it.
const DefaultJobsFile = ".jobs_done.yaml"

// Settings is the parsed jobforge configuration.
type Settings struct {
	ConfigVersion string
	Generator     string
	JobsFile      string
	HasJobsFile   bool
	Output        Output
	Lua           Lua
}

// Output holds optional artifact output settings and presence flags.
type Output struct {
	Dir    string
	HasDir bool
}

// Lua holds settings for the lua backend.
type Lua struct {
	Script    string
	HasScript bool
}

// JobsFileName returns the configured jobs file name or the default.
func (s Settings) JobsFileName() string {
	if s.HasJobsFile {
		return s.JobsFile
	}
	return DefaultJobsFile
}

// OutputDir returns the configured artifact directory or ".".
func (s Settings) OutputDir() string {
	if s.Output.HasDir {
		return s.Output.Dir
	}
	return "."
}

// Parse loads and validates a jobforge CUE config file.
// Required fields:
//   - configVersion: string, must be a supported version
//   - generator: "jenkins" or "lua"
func Parse(path string) (Settings, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Settings{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Settings{}, err
	}
	if err := requireStringField(v, "generator"); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&s.ConfigVersion); err != nil {
		return Settings{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(s.ConfigVersion) {
		return Settings{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)",
			s.ConfigVersion, SupportedConfigVersionsCSV())
	}
	if err := v.LookupPath(cue.ParsePath("generator")).Decode(&s.Generator); err != nil {
		return Settings{}, fmt.Errorf("invalid value for generator: %v", err)
	}
	if s.Generator != GeneratorJenkins && s.Generator != GeneratorLua {
		return Settings{}, fmt.Errorf("unknown generator: %q (known: %s, %s)",
			s.Generator, GeneratorJenkins, GeneratorLua)
	}

	jv := v.LookupPath(cue.ParsePath("jobsFile"))
	if jv.Exists() && jv.Kind() == cue.StringKind {
		if err := jv.Decode(&s.JobsFile); err == nil {
			s.HasJobsFile = true
		}
	}
	ov := v.LookupPath(cue.ParsePath("output"))
	if ov.Exists() {
		dv := ov.LookupPath(cue.ParsePath("dir"))
		if dv.Exists() && dv.Kind() == cue.StringKind {
			if err := dv.Decode(&s.Output.Dir); err == nil {
				s.Output.HasDir = true
			}
		}
	}
	lv := v.LookupPath(cue.ParsePath("lua"))
	if lv.Exists() {
		sv := lv.LookupPath(cue.ParsePath("script"))
		if sv.Exists() && sv.Kind() == cue.StringKind {
			if err := sv.Decode(&s.Lua.Script); err == nil {
				s.Lua.HasScript = true
			}
		}
	}
	if s.Generator == GeneratorLua && !s.Lua.HasScript {
		return Settings{}, fmt.Errorf("generator %q requires lua.script", GeneratorLua)
	}
	return s, nil
}
