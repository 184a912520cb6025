package main

import (
	"strconv"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/filterutil"
	"github.com/jongio/urlkit/logutil"
	"github.com/spf13/cobra"
)

type filterOptions struct {
	file        string
	term        string
	failOnEmpty bool
	out         string
}

func newFilterCommand() *cobra.Command {
	opts := &filterOptions{}
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Keep the records whose url matches a search term",
		Long: `Filter reads a JSON or YAML list of records and keeps those whose "url" field
matches the search term. The term is a case-insensitive regular expression.
An empty term keeps every record unless --fail-on-empty is set.`,
		Example: `  urlkit filter --file bookmarks.json --term github
  urlkit filter --file bookmarks.yaml --term '\.dev$' -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, opts)
		},
	}
	registerIOFlags(cmd.Flags(), &opts.file, &opts.out)
	cmd.Flags().StringVarP(&opts.term, "term", "t", "", "Case-insensitive regular expression matched against each url")
	cmd.Flags().BoolVar(&opts.failOnEmpty, "fail-on-empty", false, "Fail when the term is empty or only whitespace")
	return cmd
}

func runFilter(cmd *cobra.Command, opts *filterOptions) error {
	doc, source, err := readDocument(cmd, opts.file)
	if err != nil {
		return err
	}
	logger := logutil.NewLogger("filter").WithInput(source).WithFields("term", opts.term)

	matches, err := filterutil.FilterAny(doc, opts.term, opts.failOnEmpty)
	if err != nil {
		logger.Debug("filter rejected", "error", err)
		return err
	}
	logger.Debug("filtered records", "matched", len(matches))

	if opts.out != "" {
		return writeResult(opts.out, matches, len(matches))
	}
	return cliout.Print(matches, func() {
		if len(matches) == 0 {
			cliout.Warning("No records match %q", opts.term)
			return
		}
		rows := make([]cliout.TableRow, 0, len(matches))
		for i, m := range matches {
			rows = append(rows, cliout.TableRow{"#": strconv.Itoa(i + 1), "URL": filterutil.LinkOf(m)})
		}
		cliout.Table([]string{"#", "URL"}, rows)
		cliout.Info("%d matching records", len(matches))
	})
}
