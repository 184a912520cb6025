package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/logutil"
	"github.com/jongio/urlkit/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envOutput provides the default for --output.
const envOutput = "URLKIT_OUTPUT"

type rootOptions struct {
	output         string
	debug          bool
	structuredLogs bool
	logLevel       string
	color          string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "urlkit",
		Short:         "Build URLs from structured specs and filter records by URL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configure(cmd, opts)
		},
	}
	registerGlobalFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(
		newBuildCommand(),
		newFilterCommand(),
		version.NewCommand(version.New("urlkit")),
		newMetadataCommand(func() *cobra.Command { return cmd }),
	)
	return cmd
}

// configure applies the global flags to the logger and cliout.
func configure(cmd *cobra.Command, opts *rootOptions) error {
	logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), opts.debug, opts.structuredLogs)
	if opts.logLevel != "" {
		level, err := logutil.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
		logutil.SetLevel(level)
	}

	switch strings.ToLower(opts.color) {
	case "auto", "":
	case "always":
		cliout.ForceColor()
	case "never":
		cliout.NoColor()
	default:
		return fmt.Errorf("invalid color mode: %s (valid options: auto, always, never)", opts.color)
	}

	if err := cliout.SetFormat(opts.output); err != nil {
		return err
	}
	logutil.Debug("configured output",
		"command", cmd.Name(),
		"format", string(cliout.GetFormat()),
		"level", logutil.GetLevel().String())
	return nil
}

func registerGlobalFlags(fs *pflag.FlagSet, opts *rootOptions) {
	output := os.Getenv(envOutput)
	if output == "" {
		output = string(cliout.FormatDefault)
	}

	fs.StringVarP(&opts.output, "output", "o", output, "Output format (default, json)")
	fs.BoolVar(&opts.debug, "debug", os.Getenv(logutil.EnvDebug) == "true", "Enable debug logging on stderr")
	fs.BoolVar(&opts.structuredLogs, "structured-logs", logutil.StructuredFromEnv(), "Write logs as JSON")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides --debug)")
	fs.StringVar(&opts.color, "color", "auto", "Color output: auto, always or never")
}

// registerIOFlags adds the input and output file flags shared by build and
// filter.
func registerIOFlags(fs *pflag.FlagSet, file, out *string) {
	fs.StringVarP(file, "file", "f", "", "JSON or YAML input document (\"-\" or empty reads stdin)")
	fs.StringVar(out, "out", "", "Write the result as JSON to this file instead of stdout")
}
