package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate(t *testing.T) {
	t.Run("writes defaults when missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg", DefaultConfigFileName)

		cfg, err := LoadOrCreate(path)
		require.NoError(t, err)

		assert.FileExists(t, path)
		assert.Equal(t, "created", cfg.DefaultSort)
		assert.Equal(t, "q", cfg.Keys.Quit)
		assert.Equal(t, filepath.Join(filepath.Dir(path), DefaultDBName), cfg.DBPath)
	})

	t.Run("reads an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultConfigFileName)
		body := "db_path = \"/tmp/elsewhere.db\"\ndefault_sort = \"priority\"\n\n[keys]\nquit = \"x\"\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cfg, err := LoadOrCreate(path)
		require.NoError(t, err)

		assert.Equal(t, "/tmp/elsewhere.db", cfg.DBPath)
		assert.Equal(t, "priority", cfg.DefaultSort)
		assert.Equal(t, "x", cfg.Keys.Quit)
	})

	t.Run("fills empty paths from the config dir", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("default_filter = \"#work\"\n"), 0o644))

		cfg, err := LoadOrCreate(path)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, DefaultDBName), cfg.DBPath)
		assert.Equal(t, filepath.Join(dir, DefaultLogName), cfg.LogPath)
		assert.Equal(t, "#work", cfg.DefaultFilter)
		assert.Equal(t, "created", cfg.DefaultSort)
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("db_path = [broken"), 0o644))

		_, err := LoadOrCreate(path)
		assert.Error(t, err)
	})
}
