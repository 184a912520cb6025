package main

import (
	"fmt"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/fileutil"
	"github.com/jongio/urlkit/yamlutil"
	"github.com/spf13/cobra"
)

const stdinSource = "stdin"

// readDocument decodes the document at path, or stdin when path is "" or
// "-". It also returns a name for the source, for logging.
func readDocument(cmd *cobra.Command, path string) (any, string, error) {
	if path == "" || path == "-" {
		doc, err := yamlutil.DecodeReader(cmd.InOrStdin())
		if err != nil {
			return nil, stdinSource, fmt.Errorf("failed to read input: %w", err)
		}
		return doc, stdinSource, nil
	}

	doc, err := yamlutil.LoadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read input: %w", err)
	}
	return doc, path, nil
}

type writtenView struct {
	Path  string `json:"path"`
	Count int    `json:"count,omitempty"`
}

// writeResult stores data as JSON at path and reports where it went.
func writeResult(path string, data any, count int) error {
	if err := fileutil.AtomicWriteJSON(path, data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return cliout.Print(writtenView{Path: path, Count: count}, func() {
		cliout.Success("Wrote %s", path)
	})
}
