package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"isolet/internal/ports"
)

// TestFileSystem performs real file operations inside a per-test temporary directory.
// "~" resolves to the sandbox root, so config paths behave like the home directory.
type TestFileSystem struct {
	baseDir string
}

func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

func (f *TestFileSystem) resolvePath(path string) string {
	path = strings.TrimPrefix(path, "~")
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) {
		cleanPath = cleanPath[1:]
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.resolvePath(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(f.resolvePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
