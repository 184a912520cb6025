// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/urlkit/security"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "urls.txt")

	if err := AtomicWriteFile(path, []byte("https://www.google.com/\n"), FilePermission); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "https://www.google.com/\n" {
		t.Errorf("content = %q", data)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != FilePermission {
			t.Errorf("permissions = %v, want %v", info.Mode().Perm(), os.FileMode(FilePermission))
		}
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "urls.txt")

	for _, content := range []string{"first, longer content", "second"} {
		if err := AtomicWriteFile(path, []byte(content), FilePermission); err != nil {
			t.Fatalf("AtomicWriteFile() error = %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestAtomicWriteFile_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	if err := AtomicWriteFile(filepath.Join(dir, "out.json"), []byte("{}"), FilePermission); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}

func TestAtomicWriteFile_InvalidPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"empty", "", security.ErrInvalidPath},
		{"missing directory", filepath.Join(dir, "nope", "out.json"), security.ErrInvalidPath},
		{"traversal", "a" + string(filepath.Separator) + ".." + string(filepath.Separator) + "out.json", security.ErrPathTraversal},
		{"directory", dir, security.ErrNotRegularFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AtomicWriteFile(tt.path, []byte("x"), FilePermission)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AtomicWriteFile(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	data := []map[string]any{{"id": 3, "url": "https://www.link3.dev/?a=1&b=2"}}
	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  {\n    \"id\": 3,\n    \"url\": \"https://www.link3.dev/?a=1&b=2\"\n  }\n]\n"
	if string(got) != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestAtomicWriteJSON_MarshalError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")

	err := AtomicWriteJSON(path, map[string]any{"fn": func() {}})
	if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
		t.Fatalf("AtomicWriteJSON() error = %v, want marshal error", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("file should not exist after marshal failure")
	}
}
