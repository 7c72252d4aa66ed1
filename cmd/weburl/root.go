package main

import (
	"errors"
	"strings"

	"github.com/jongio/weburl/cliout"
	"github.com/jongio/weburl/logutil"
	"github.com/jongio/weburl/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// outputFormat is a pflag.Value that rejects unknown formats at flag
// parsing time.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Type() string { return "format" }

func (f *outputFormat) Set(v string) error {
	switch strings.ToLower(v) {
	case "default", "json", "yaml", "yml":
		*f = outputFormat(strings.ToLower(v))
		return nil
	}
	return errors.New("must be one of default, json, yaml")
}

// colorMode is a pflag.Value for --color.
type colorMode string

var _ pflag.Value = (*colorMode)(nil)

func (m *colorMode) String() string { return string(*m) }

func (m *colorMode) Type() string { return "when" }

func (m *colorMode) Set(v string) error {
	switch strings.ToLower(v) {
	case "auto", "always", "never":
		*m = colorMode(strings.ToLower(v))
		return nil
	}
	return errors.New("must be one of auto, always, never")
}

type rootOptions struct {
	output     outputFormat
	color      colorMode
	debug      bool
	structured bool
	noColor    bool
}

func newRootCommand(info *version.Info) *cobra.Command {
	opts := &rootOptions{output: "default", color: "auto"}

	cmd := &cobra.Command{
		Use:   "weburl",
		Short: "Parse, resolve and edit URLs the way browsers do",
		Long: `weburl parses URLs with the WHATWG URL Standard algorithm: the same
normalization, host handling and relative resolution a browser applies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply()
		},
	}

	flags := cmd.PersistentFlags()
	flags.VarP(&opts.output, "output", "o", "Output format: default, json, yaml")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging (also WEBURL_DEBUG=true)")
	flags.BoolVar(&opts.structured, "structured-logs", false, "Write logs as JSON")
	flags.Var(&opts.color, "color", "Colored output: auto, always, never")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output, same as --color=never (also NO_COLOR)")

	cmd.AddCommand(
		newParseCommand(),
		newHostCommand(),
		newSetCommand(),
		newCheckCommand(),
		version.NewCommand(info),
	)
	return cmd
}

func (o *rootOptions) apply() error {
	if err := cliout.SetFormat(string(o.output)); err != nil {
		return err
	}
	if o.noColor {
		if o.color == "always" {
			return errors.New("--no-color and --color=always cannot be combined")
		}
		o.color = "never"
	}
	switch o.color {
	case "always":
		cliout.ForceColor()
	case "never":
		cliout.NoColor()
	default:
		cliout.AutoColor()
	}
	logutil.SetupLogger(o.debug || logutil.IsDebugEnabled(), o.structured)
	logutil.Debug("configured", "output", string(cliout.GetFormat()), "color", o.color.String(), "structured", o.structured)
	return nil
}
