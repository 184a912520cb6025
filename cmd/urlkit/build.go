package main

import (
	"fmt"

	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/logutil"
	"github.com/jongio/urlkit/urlutil"
	"github.com/spf13/cobra"
)

type buildOptions struct {
	file string
	mode string
	out  string
}

func newBuildCommand() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a URL from a JSON or YAML spec",
		Long: `Build validates a spec document with the fields protocol, domain, path and
params, and prints the composed URL. Params are appended in document order.`,
		Example: `  urlkit build --file spec.yaml
  echo '{"domain": "www.google.com", "path": "index.html"}' | urlkit build --mode string`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}
	registerIOFlags(cmd.Flags(), &opts.file, &opts.out)
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Return mode: string or URL (default URL)")
	return cmd
}

type stringView struct {
	URL string `json:"url"`
}

type paramView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type urlView struct {
	URL    string      `json:"url"`
	Scheme string      `json:"scheme"`
	Host   string      `json:"host"`
	Path   string      `json:"path"`
	Query  []paramView `json:"query"`
}

func newURLView(u *urlutil.URL) urlView {
	view := urlView{
		URL:    u.String(),
		Scheme: u.Scheme(),
		Host:   u.Host(),
		Path:   u.Path(),
		Query:  []paramView{},
	}
	for _, p := range u.Query() {
		view.Query = append(view.Query, paramView{Key: p.Key, Value: fmt.Sprint(p.Value)})
	}
	return view
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	doc, source, err := readDocument(cmd, opts.file)
	if err != nil {
		return err
	}
	logger := logutil.NewLogger("build").WithInput(source)

	result, err := urlutil.Create(doc, urlutil.Mode(opts.mode))
	if err != nil {
		logger.Debug("spec rejected", "error", err)
		return err
	}
	logger.Debug("composed url", "url", result.String(), "mode", string(result.Mode()))

	if result.Mode() == urlutil.ModeString {
		view := stringView{URL: result.String()}
		if opts.out != "" {
			return writeResult(opts.out, view, 0)
		}
		return cliout.Print(view, func() {
			cliout.Plain("%s", view.URL)
		})
	}

	view := newURLView(result.URL())
	if opts.out != "" {
		return writeResult(opts.out, view, 0)
	}
	return cliout.Print(view, func() {
		cliout.Header("URL")
		cliout.Label("URL", cliout.URL(view.URL))
		cliout.Label("Scheme", view.Scheme)
		cliout.Label("Host", view.Host)
		cliout.Label("Path", view.Path)
		if len(view.Query) == 0 {
			return
		}
		rows := make([]cliout.TableRow, 0, len(view.Query))
		for _, p := range view.Query {
			rows = append(rows, cliout.TableRow{"Key": p.Key, "Value": p.Value})
		}
		fmt.Println()
		cliout.Table([]string{"Key", "Value"}, rows)
	})
}
