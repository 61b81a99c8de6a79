package root

import (
	"github.com/flarebyte/jobforge/cmd/jobforge/generate"
	"github.com/flarebyte/jobforge/cmd/jobforge/validate"
	"github.com/flarebyte/jobforge/cmd/jobforge/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for jobforge.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobforge",
		Short: "CLI: Turn a repository's declarative jobs file into CI job definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(generate.Cmd)
	cmd.AddCommand(validate.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
