package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	t.Run("creates new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.html")

		require.NoError(t, WriteAtomic(path, []byte("<p>new</p>"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<p>new</p>", string(data))
	})

	t.Run("replaces content and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<p>a much longer old page</p>"), 0644))

		require.NoError(t, WriteAtomic(path, []byte("<p>new</p>"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<p>new</p>", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("keeps existing permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}
		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

		require.NoError(t, WriteAtomic(path, []byte("new"), 0644))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("missing directory fails without touching anything", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "index.html")

		assert.Error(t, WriteAtomic(path, []byte("new"), 0644))
		assert.NoFileExists(t, path)
	})
}
