package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nazcamedia/brik/internal/config"
	"github.com/nazcamedia/brik/internal/output"
)

func newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of brik",
		Long:  `Print the version number of brik.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Out.Format == config.FormatJSON {
				return opts.Out.Success(output.Result{
					Op:    "version",
					Args:  []string{},
					Value: Version,
				})
			}
			_, err := fmt.Fprintf(opts.Stdout, "brik %s\n", Version)
			return err
		},
	}
}
