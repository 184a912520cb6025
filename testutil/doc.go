// Package testutil provides common testing utilities for urlkit packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Locating test fixture directories (FindTestData)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing fixture files into a temporary directory (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestBuildCommand(t *testing.T) {
//	    dir := testutil.TempDir(t)
//	    spec := testutil.WriteFile(t, dir, "spec.json", `{"domain":"www.google.com"}`)
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return run("build", "--file", spec)
//	    })
//	    assert.Contains(t, output, "https://www.google.com/")
//	}
package testutil
