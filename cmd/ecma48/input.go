package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// readInput reads the file named by args, or stdin, and converts it from
// the configured encoding to UTF-8.
func (o *rootOptions) readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	enc, err := htmlindex.Get(o.encoding)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", o.encoding, err)
	}
	name, _ := htmlindex.Name(enc)
	if name != "utf-8" {
		// UTF-8 input is passed through untouched so invalid bytes survive
		r = transform.NewReader(r, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	o.logger.Debug("read input", "bytes", len(data), "encoding", o.encoding)
	return string(data), nil
}
