package main

import (
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:     "init [path]",
		Short:   "Create an empty repository",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create an empty repository at the given path (default: current
directory).

The worktree directory is created if it does not exist. Running init
against an existing but empty .git directory is safe and converges to
the same layout; a .git directory that already has entries is refused,
as is a target path that exists as a regular file.`,
		Example: `  gat init                 # initialize the current directory
  gat init ~/src/project   # initialize (and create) ~/src/project
  gat init -b main .       # point HEAD at refs/heads/main`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cmd.Context(), path, branch)
		},
	}

	cmd.Flags().StringVarP(&branch, "initial-branch", "b", "", "Ref name for HEAD (default: init.default_branch config, or \"master\")")

	return cmd
}
