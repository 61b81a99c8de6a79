package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/flarebyte/jobforge/internal/config"
	"github.com/flarebyte/jobforge/internal/generator"
	"github.com/flarebyte/jobforge/internal/generator/jenkins"
	"github.com/flarebyte/jobforge/internal/generator/luagen"
	"github.com/flarebyte/jobforge/internal/job"
	"github.com/flarebyte/jobforge/internal/repo"
)

// runGenerate drives the whole pipeline: discover the repository, assemble
// job specifications from its jobs file, configure the selected backend per
// job and write the resulting artifacts.
func runGenerate() error {
	settings, err := config.Parse(cfgPath)
	if err != nil {
		return err
	}
	repository, err := discoverRepository()
	if err != nil {
		return err
	}

	contents, err := readJobsFile(filepath.Join(repoRoot, settings.JobsFileName()))
	if err != nil {
		return err
	}
	specs, err := job.SpecsFromYAML(contents, repository)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(
		"run", uuid.NewString(),
		"repository", repository.Name,
		"branch", repository.Branch,
	)

	newBackend, err := backendFactory(settings, repository)
	if err != nil {
		return err
	}
	written := 0
	for _, spec := range specs {
		gen := newBackend()
		if err := generator.Configure(gen, spec); err != nil {
			return err
		}
		artifacts, err := gen.Generate()
		if err != nil {
			return err
		}
		for _, a := range artifacts {
			if err := writeArtifact(settings.OutputDir(), a); err != nil {
				return err
			}
			logger.Info("wrote job definition", "artifact", a.Name, "bytes", len(a.Content))
			written++
		}
	}
	if len(specs) == 0 {
		logger.Info("no jobs for this branch")
	}

	// Success output is a single JSON line.
	fmt.Fprintf(os.Stdout, "{\"ok\":true,\"jobs\":%d,\"artifacts\":%d}\n", len(specs), written)
	return nil
}

// discoverRepository reads the working copy, honoring flag overrides for
// environments without an origin remote or a usable HEAD.
func discoverRepository() (*repo.Repository, error) {
	if urlArg != "" && branchArg != "" {
		return repo.New(urlArg, branchArg), nil
	}
	r, err := repo.FromWorkingCopy(repoRoot)
	if err != nil {
		return nil, err
	}
	if urlArg != "" {
		r = repo.New(urlArg, r.Branch)
	}
	if branchArg != "" {
		r = repo.New(r.URL, branchArg)
	}
	return r, nil
}

// readJobsFile returns nil contents for a missing file: a repository without
// a jobs file simply produces no jobs.
func readJobsFile(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read jobs file %s: %w", path, err)
	}
	return contents, nil
}

func backendFactory(settings config.Settings, repository *repo.Repository) (func() generator.Generator, error) {
	switch settings.Generator {
	case config.GeneratorJenkins:
		return func() generator.Generator { return jenkins.New(repository) }, nil
	case config.GeneratorLua:
		script, err := os.ReadFile(settings.Lua.Script)
		if err != nil {
			return nil, fmt.Errorf("read lua script: %w", err)
		}
		return func() generator.Generator { return luagen.New(repository, string(script)) }, nil
	}
	return nil, fmt.Errorf("unknown generator: %q", settings.Generator)
}

func writeArtifact(dir string, a generator.Artifact) error {
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %v", err)
		}
	}
	return os.WriteFile(filepath.Join(dir, a.Name), a.Content, 0o644)
}
