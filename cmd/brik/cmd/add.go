package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nazcamedia/brik/internal/calculator"
	"github.com/nazcamedia/brik/internal/output"
)

func newAddCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two integers",
		Long: `Add two integers and print the sum.

Addition uses Go int arithmetic, so results outside the int range wrap around.

Examples:
  brik add 2 3
  brik add -- -4 6
  brik add 2 3 --format json`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt(args[0])
			if err != nil {
				return err
			}
			b, err := parseInt(args[1])
			if err != nil {
				return err
			}

			opts.Logger.WithFields(logrus.Fields{"a": a, "b": b}).Debug("add")

			return opts.Out.Success(output.Result{
				Op:    "add",
				Args:  args,
				Value: calculator.Add(a, b),
			})
		},
	}
}
