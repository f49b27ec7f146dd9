package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hnimtadd/ecma48/control"
	"github.com/hnimtadd/ecma48/control/sequences"
	"github.com/hnimtadd/ecma48/parser"
	"github.com/spf13/cobra"
)

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	var explainSGR bool
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "List the text and control functions of the input, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := opts.readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			count := 0
			for token := range parser.NewTokenStream(input, parser.WithLogger(opts.logger)).All() {
				if _, err := fmt.Fprintln(out, token); err != nil {
					return err
				}
				count++
				if explainSGR && token.Type == parser.TokenFunction {
					if err := printRenditions(out, token.Function); err != nil {
						opts.logger.Warn("failed to interpret SGR", "error", err)
					}
				}
			}
			opts.logger.Info("decoded input", "tokens", count)
			return nil
		},
	}
	cmd.Flags().BoolVar(&explainSGR, "sgr", false, "list the renditions selected by each SGR sequence")
	return cmd
}

// printRenditions writes one indented line per rendition of f, if f is SGR.
func printRenditions(out io.Writer, f control.ControlFunction) error {
	renditions, err := sequences.ParseSGR(f)
	if errors.Is(err, sequences.ErrNotSGR) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, r := range renditions {
		if _, err := fmt.Fprintf(out, "\t%s\n", r); err != nil {
			return err
		}
	}
	return nil
}

func newStripCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file]",
		Short: "Write the input without its control functions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := opts.readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), parser.Strip(input))
			return err
		},
	}
}

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "encode MNEMONIC [PARAM...]",
		Short: "Render a standard control function by its mnemonic",
		Long: `Render a standard control function by its mnemonic, such as CUP or NEL.

Parameters are only accepted by control sequences. Without parameters the
documented defaults of the function are used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := control.Lookup(args[0], args[1:]...)
			if err != nil {
				return err
			}
			opts.logger.Debug("encoded function", "function", f.GoString())
			return printFunction(cmd, f.String(), raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write the function as is instead of quoted")
	return cmd
}

func newPrivateCmd(opts *rootOptions) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "private IDENTIFIER [PARAM...]",
		Short: "Render a private use control sequence",
		Long: `Render a private use control sequence. IDENTIFIER is a final byte from
07/00 to 07/15, optionally preceded by a space as intermediate byte.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := control.PrivateUse(args[0], args[1:]...)
			if err != nil {
				return err
			}
			opts.logger.Debug("encoded private use function", "function", f.GoString())
			return printFunction(cmd, f.String(), raw)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write the function as is instead of quoted")
	return cmd
}
