package main

import (
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [path]",
		Short:   "Verify that a path holds a usable repository",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Verify that a path holds a usable repository (default: current
directory).

Runs the same validation every other command relies on: the worktree
must be an existing directory, .git/config must exist and parse, and
it must declare a supported repositoryformatversion.`,
		Example: `  gat check              # check the current directory
  gat check ~/src/project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runCheck(cmd.Context(), path)
		},
	}

	return cmd
}
