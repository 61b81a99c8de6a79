package generate

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	repoRoot  string
	branchArg string
	urlArg    string
)

// Cmd represents the `jobforge generate` command.
var Cmd = &cobra.Command{
	Use:           "generate",
	Short:         "Generate CI job definitions from a repository's jobs file",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			return fmt.Errorf("missing required flag: --config")
		}
		return runGenerate()
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVar(&repoRoot, "repo-root", ".", "Path to the repository working copy")
	Cmd.Flags().StringVar(&branchArg, "branch", "", "Override the branch derived from the working copy")
	Cmd.Flags().StringVar(&urlArg, "url", "", "Override the clone URL derived from the working copy")
}
