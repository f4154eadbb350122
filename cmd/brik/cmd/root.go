package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nazcamedia/brik/internal/calculator"
	"github.com/nazcamedia/brik/internal/config"
	"github.com/nazcamedia/brik/internal/logging"
	"github.com/nazcamedia/brik/internal/output"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Banner is printed when brik runs without a subcommand.
const Banner = "BRIK System Initialized"

// skipConfigAnnotation marks commands that run with the default config
// instead of reading the --config file.
const skipConfigAnnotation = "brik/skip-config"

// RootOptions holds global flags and the state resolved from them.
type RootOptions struct {
	ConfigPath string
	Format     string
	NoColor    bool
	Verbose    bool

	Stdout io.Writer
	Stderr io.Writer

	Logger *logrus.Logger
	Out    *output.Formatter
}

// NewRootCommand creates the root command for the brik CLI.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brik",
		Short: "BRIK core numeric helpers",
		Long: `brik exposes the BRIK core helpers: integer addition, parity
checks and clamping to the unit interval.

Run without a subcommand to print the system banner.

Negative operands must follow "--" so they are not read as flags:
  brik add -- -1 2`,
		Args:              usageArgs(cobra.NoArgs),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.resolve,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Out.Success(output.Result{
				Message: Banner,
				Op:      "add",
				Args:    []string{"1", "1"},
				Expr:    "1+1",
				Value:   calculator.Add(1, 1),
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (text|json)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable styled output")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return output.WrapExitError(output.ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newEvenCommand(opts))
	cmd.AddCommand(newClampCommand(opts))
	cmd.AddCommand(newInitCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}

// resolve loads config and merges it with the flags given on the command line.
func (o *RootOptions) resolve(cmd *cobra.Command, args []string) error {
	o.Logger = logging.New(o.Stderr, o.Verbose)

	cfg := config.Default()
	if cmd.Annotations[skipConfigAnnotation] == "" {
		loaded, err := config.LoadOrDefault(o.ConfigPath)
		if err != nil {
			return output.WrapExitError(output.ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	format := cfg.Output.GetFormat()
	if cmd.Flags().Changed("format") {
		format = o.Format
	}
	if !config.IsValidFormat(format) {
		return output.NewExitError(output.ExitCommandError,
			fmt.Sprintf("invalid format %q: must be %s or %s", format, config.FormatText, config.FormatJSON))
	}

	o.Out = &output.Formatter{
		Format:    format,
		Color:     cfg.Output.ColorEnabled() && !o.NoColor,
		Writer:    o.Stdout,
		ErrWriter: o.Stderr,
	}

	o.Logger.WithFields(logrus.Fields{
		"config": o.ConfigPath,
		"format": o.Out.Format,
		"color":  o.Out.Color,
	}).Debug("resolved config")

	return nil
}

// formatter returns the resolved formatter. When resolution never ran it
// honors an explicit --format json and otherwise falls back to plain text.
func (o *RootOptions) formatter() *output.Formatter {
	if o.Out != nil {
		return o.Out
	}
	format := config.FormatText
	if o.Format == config.FormatJSON {
		format = config.FormatJSON
	}
	return &output.Formatter{
		Format:    format,
		Writer:    o.Stdout,
		ErrWriter: o.Stderr,
	}
}

// Execute runs brik with args (without the program name) and returns the exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{Stdout: stdout, Stderr: stderr}
	root := NewRootCommand(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return output.ExitSuccess
	}

	_ = opts.formatter().Error(err)
	return output.GetExitCode(err)
}

// usageArgs turns positional-argument errors into command errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return output.WrapExitError(output.ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}
