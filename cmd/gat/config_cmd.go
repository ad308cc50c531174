package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gat/internal/config"
	"gat/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage gat configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gat configuration.

Config location: ~/.config/gat/config.toml`,
		Example: `  gat config init   # Create default config file
  gat config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  gat config init      # Create config at ~/.config/gat/config.toml
  gat config init -f   # Overwrite existing config
  gat config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultDocument())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			out.Printf("Config file: %s\n\n", path)
			out.Printf("init.default_branch = %q\n", cfg.Init.DefaultBranch)
			return nil
		},
	}

	return cmd
}
