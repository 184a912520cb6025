// Package cliout formats urlkit command output in either a human-readable
// form or JSON.
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    return err
//	}
//
//	// Hybrid output: JSON data in json mode, the formatter otherwise.
//	err := cliout.Print(result, func() {
//	    cliout.Label("Scheme", u.Scheme())
//	    cliout.Label("Host", u.Host())
//	})
//
// Human-readable output uses ANSI colors and Unicode symbols, falling back to
// ASCII symbols on legacy Windows consoles. Colors are dropped when stdout
// is not a terminal, when the NO_COLOR environment variable is set, or after
// NoColor; ForceColor turns them back on.
//
// All output goes to stdout; diagnostics belong in logutil, which writes to
// stderr.
package cliout
