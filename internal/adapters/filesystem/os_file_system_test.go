package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"isolet/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestOsFileSystem_ReadWriteRoundTripUnderHome(t *testing.T) {
	home := fakeHome(t)
	fs := ProvideOsFileSystem()

	require.NoError(t, fs.WriteFile("~/.isolet-config.yaml", []byte("publicDomain: example.org\n"), ports.ReadWrite))

	content, err := fs.ReadFile("~/.isolet-config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "publicDomain: example.org\n", string(content))

	_, err = os.Stat(filepath.Join(home, ".isolet-config.yaml"))
	assert.NoError(t, err)
}

func TestOsFileSystem_WriteFileCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "challenges.yaml")

	require.NoError(t, ProvideOsFileSystem().WriteFile(path, []byte("challenges: []\n"), ports.ReadAllWriteOwner))

	info, err := os.Stat(filepath.Join(dir, "nested", "deeper"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOsFileSystem_WriteFileAccessModes(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		mode ports.AccessMode
		want os.FileMode
	}{
		{"read write", ports.ReadWrite, 0600},
		{"read write execute", ports.ReadWriteExecute, 0700},
		{"read all write owner", ports.ReadAllWriteOwner, 0644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, ProvideOsFileSystem().WriteFile(path, []byte("x"), tt.mode))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Mode().Perm())
		})
	}
}

func TestOsFileSystem_FileExists(t *testing.T) {
	fakeHome(t)
	fs := ProvideOsFileSystem()

	exists, err := fs.FileExists("~/missing.yaml")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, fs.WriteFile("~/present.yaml", []byte("x"), ports.ReadWrite))
	exists, err = fs.FileExists("~/present.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOsFileSystem_ReadMissingFile(t *testing.T) {
	_, err := ProvideOsFileSystem().ReadFile(filepath.Join(t.TempDir(), "absent"))
	assert.True(t, os.IsNotExist(err))
}
