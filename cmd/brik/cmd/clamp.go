package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nazcamedia/brik/internal/calculator"
	"github.com/nazcamedia/brik/internal/output"
)

func newClampCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clamp <x>",
		Short: "Clamp a number to the interval [0, 1]",
		Long: `Clamp a number to the interval [0, 1].

Values below 0 print 0 and values above 1 print 1. NaN is printed unchanged.
In JSON output the value is a string so NaN and Inf survive encoding.

Examples:
  brik clamp 0.5
  brik clamp -- -1
  brik clamp NaN --format json`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat(args[0])
			if err != nil {
				return err
			}

			opts.Logger.WithField("x", x).Debug("clamp")

			return opts.Out.Success(output.Result{
				Op:    "clamp",
				Args:  args,
				Value: calculator.Clamp01(x),
			})
		},
	}
}
