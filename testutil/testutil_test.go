package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureOutput(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		want string
	}{
		{
			name: "single line",
			fn: func() error {
				fmt.Println("hello")
				return nil
			},
			want: "hello\n",
		},
		{
			name: "no output",
			fn:   func() error { return nil },
			want: "",
		},
		{
			name: "error still returns output",
			fn: func() error {
				fmt.Print("partial")
				return errors.New("boom")
			},
			want: "partial",
		},
		{
			name: "large output",
			fn: func() error {
				for range 2000 {
					fmt.Println("0123456789")
				}
				return nil
			},
			want: func() string {
				var s string
				for range 2000 {
					s += "0123456789\n"
				}
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaptureOutput(t, tt.fn)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaptureOutput_RestoresStdout(t *testing.T) {
	orig := os.Stdout
	_ = CaptureOutput(t, func() error {
		fmt.Println("x")
		return nil
	})
	assert.Equal(t, orig, os.Stdout)
}

func TestTempDir(t *testing.T) {
	var dir string
	t.Run("create", func(t *testing.T) {
		dir = TempDir(t)
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Contains(t, filepath.Base(dir), "urlkit-test-")
	})

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "temp dir should be removed after the subtest")
}

func TestWriteFile(t *testing.T) {
	dir := TempDir(t)
	path := WriteFile(t, dir, "spec.json", `{"domain":"www.google.com"}`)

	assert.Equal(t, filepath.Join(dir, "spec.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"domain":"www.google.com"}`, string(data))
}

func TestFindTestData(t *testing.T) {
	root := TempDir(t)
	fixtures := filepath.Join(root, "testdata", "specs")
	require.NoError(t, os.MkdirAll(fixtures, 0o750))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	t.Chdir(nested)

	got := FindTestData(t, "testdata", "specs")
	assert.Equal(t, fixtures, got)
}
