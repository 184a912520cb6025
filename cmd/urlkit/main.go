// Command urlkit builds URLs from JSON or YAML specs and filters lists of
// records by URL.
//
//	urlkit build --file spec.yaml --mode string
//	urlkit filter --file bookmarks.json --term github
package main

import (
	"os"

	"github.com/jongio/urlkit/cliout"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

type errorView struct {
	Error string `json:"error"`
}

// reportError prints err once, as JSON when --output json is in effect.
func reportError(err error) {
	if cliout.IsJSON() {
		_ = cliout.PrintJSON(errorView{Error: err.Error()})
		return
	}
	cliout.Error("%s", err)
}
