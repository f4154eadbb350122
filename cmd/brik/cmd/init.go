package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nazcamedia/brik/internal/config"
	"github.com/nazcamedia/brik/internal/output"
)

func newInitCommand(opts *RootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a default config file to the --config path (default .brik/config.json).

Fails if the file already exists unless --force is given. The existing file
is not read, so --force also replaces a malformed config.`,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Args:        usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.ConfigPath); err == nil && !force {
				return output.NewExitError(output.ExitCommandError,
					fmt.Sprintf("config already exists at %s (use --force to overwrite)", opts.ConfigPath))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat config: %w", err)
			}

			if err := config.Save(opts.ConfigPath, config.Default()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			opts.Logger.WithField("path", opts.ConfigPath).Debug("wrote config")
			return opts.Out.Success(output.Result{
				Op:    "init",
				Args:  []string{opts.ConfigPath},
				Value: opts.ConfigPath,
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}
