// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxInputBytes is the largest document urlkit will read.
const MaxInputBytes = 1 << 20

var (
	// ErrInvalidPath indicates a path is empty or cannot be resolved.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrNotRegularFile indicates the path names a directory or device.
	ErrNotRegularFile = errors.New("not a regular file")
	// ErrInputTooLarge indicates a document exceeds MaxInputBytes.
	ErrInputTooLarge = errors.New("input too large")
)

// ValidateInputPath checks that path is safe to read as an input document.
// The path must not contain parent directory references, before or after
// symlink resolution, and must name an existing regular file no larger than
// MaxInputBytes.
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if containsParentRef(path) {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}

	resolved, err := filepath.EvalSymlinks(filepath.Clean(absPath))
	if err != nil {
		return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
	}
	if containsParentRef(resolved) {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	if info.Size() > MaxInputBytes {
		return fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrInputTooLarge, path, info.Size(), MaxInputBytes)
	}

	return nil
}

// ValidateOutputPath checks that path is safe to write a result to and
// returns it with its directory resolved. The path must not contain parent
// directory references, its directory must already exist, and an existing
// target must be a regular file.
func ValidateOutputPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if containsParentRef(path) {
		return "", fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}

	dir, err := filepath.EvalSymlinks(filepath.Dir(absPath))
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve output directory: %w", ErrInvalidPath, err)
	}
	if containsParentRef(dir) {
		return "", fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	resolved := filepath.Join(dir, filepath.Base(absPath))
	info, err := os.Stat(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return resolved, nil
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	case !info.Mode().IsRegular():
		return "", fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return resolved, nil
}

// containsParentRef reports whether any element of path is "..".
func containsParentRef(path string) bool {
	for _, part := range strings.FieldsFunc(path, isSeparator) {
		if part == ".." {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return r == '/' || r == filepath.Separator
}
