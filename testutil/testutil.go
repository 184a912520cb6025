package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
// An error from fn is logged, not failed; callers that care should check it
// inside fn.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    return cliout.PrintJSON(result)
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Buffered so the reader never blocks after the test gives up on it.
	outCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outCh <- buf.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh
	_ = r.Close()

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// FindTestData finds a test data directory by walking up from the current
// working directory. subdirs are joined to form the relative path being
// searched for (e.g. "testdata" or "cmd", "urlkit", "testdata").
//
// Example:
//
//	dir := testutil.FindTestData(t, "testdata")
//	spec := filepath.Join(dir, "google.json")
func FindTestData(t *testing.T, subdirs ...string) string {
	t.Helper()

	if len(subdirs) == 0 {
		t.Fatal("FindTestData requires at least one subdirectory")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	targetPath := filepath.Join(subdirs...)

	dir := cwd
	for range 6 {
		candidate := filepath.Join(dir, targetPath)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	t.Fatalf("Test data directory not found: %s (searched from %s)", targetPath, cwd)
	return ""
}

// TempDir creates a temporary directory for testing with automatic cleanup.
// The directory is removed when the test completes via t.Cleanup().
//
// The path has its symlinks resolved so that it compares equal to paths
// returned by filepath.EvalSymlinks (macOS places temp dirs under a symlink).
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "urlkit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("Failed to resolve temp directory: %v", err)
	}
	return resolved
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
