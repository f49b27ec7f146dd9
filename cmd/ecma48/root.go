package main

import (
	"fmt"
	"io"

	"github.com/hnimtadd/ecma48/logger"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	logFile   string
	encoding  string

	logger  logger.Logger
	logSink io.Closer
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: logger.Discard}

	rootCmd := &cobra.Command{
		Use:   "ecma48",
		Short: "Encode and decode ECMA-48 control functions",
		Long: `ecma48 inspects text for the control functions defined by ECMA-48
(ISO/IEC 6429) and builds them by name.

Available commands:
  decode   - list the text and control functions of the input
  strip    - remove control functions from the input
  encode   - render a standard function from its mnemonic
  private  - render a private use control sequence`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logSink != nil {
				return opts.logSink.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "error", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file, rotated, instead of stderr")
	flags.StringVar(&opts.encoding, "encoding", "utf-8", "character encoding of the input")

	rootCmd.AddCommand(newDecodeCmd(opts))
	rootCmd.AddCommand(newStripCmd(opts))
	rootCmd.AddCommand(newEncodeCmd(opts))
	rootCmd.AddCommand(newPrivateCmd(opts))
	return rootCmd
}

func (o *rootOptions) setupLogger(cmd *cobra.Command) error {
	level, err := logger.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseType(o.logFormat)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.ErrOrStderr()
	if o.logFile != "" {
		file := &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out, o.logSink = file, file
	}

	o.logger = logger.New(logger.Options{Buffer: out, Level: level, Type: format})
	o.logger.Debug("logger ready", "level", o.logLevel, "format", o.logFormat)
	return nil
}

func printFunction(cmd *cobra.Command, rendered string, raw bool) error {
	if raw {
		_, err := io.WriteString(cmd.OutOrStdout(), rendered)
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%q\n", rendered)
	return err
}
