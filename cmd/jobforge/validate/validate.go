package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flarebyte/jobforge/internal/config"
	"github.com/flarebyte/jobforge/internal/job"
)

var filePath string

// Cmd represents the `jobforge validate` command: a preflight schema check of
// a jobs file, without touching any repository or generator.
var Cmd = &cobra.Command{
	Use:           "validate",
	Short:         "Check a jobs file against the option schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read jobs file %s: %w", filePath, err)
		}
		doc, err := job.ParseDocument(contents)
		if err != nil {
			return err
		}
		if err := job.Validate(doc); err != nil {
			return err
		}
		// Success output is a single JSON line.
		fmt.Fprintln(os.Stdout, `{"ok":true}`)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&filePath, "file", "f", config.DefaultJobsFile, "Path to the jobs file")
}
