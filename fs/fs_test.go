package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/giga"
	"github.com/fwojciec/giga/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCacheDir(t *testing.T) {
	t.Run("uses XDG_CACHE_HOME", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

		assert.Equal(t, "/xdg/cache/giga", fs.DefaultCacheDir())
	})

	t.Run("falls back to the home directory", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")
		t.Setenv("HOME", "/home/user")

		assert.Equal(t, "/home/user/.cache/giga", fs.DefaultCacheDir())
	})
}

func TestDefaultConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

		assert.Equal(t, "/xdg/config/giga", fs.DefaultConfigDir())
	})

	t.Run("falls back to the home directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", "/home/user")

		assert.Equal(t, "/home/user/.config/giga", fs.DefaultConfigDir())
	})
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for a missing file", func(t *testing.T) {
		t.Parallel()

		data, err := fs.NewStore().Load(filepath.Join(t.TempDir(), "missing.txt"))

		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("returns file content", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(path, []byte("a\r\nb"), 0o644))

		data, err := fs.NewStore().Load(path)

		require.NoError(t, err)
		assert.Equal(t, []byte("a\r\nb"), data)
	})

	t.Run("fails for directories", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewStore().Load(t.TempDir())

		require.Error(t, err)
	})
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("creates the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "new.txt")

		require.NoError(t, fs.NewStore().Save(path, []byte("hello\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(data))
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("keeps permissions of an existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "script.sh")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o755))

		require.NoError(t, fs.NewStore().Save(path, []byte("new")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		t.Parallel()

		err := fs.NewStore().Save("", []byte("x"))

		require.ErrorIs(t, err, giga.ErrEmptyName)
	})

	t.Run("fails when the directory is missing", func(t *testing.T) {
		t.Parallel()

		err := fs.NewStore().Save(filepath.Join(t.TempDir(), "nope", "file.txt"), []byte("x"))

		require.Error(t, err)
	})
}
