package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nazcamedia/brik/internal/calculator"
	"github.com/nazcamedia/brik/internal/output"
)

func newEvenCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "even <n>",
		Short: "Report whether an integer is even",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			opts.Logger.WithField("n", n).Debug("even")

			return opts.Out.Success(output.Result{
				Op:    "even",
				Args:  args,
				Value: calculator.IsEven(n),
			})
		},
	}
}
