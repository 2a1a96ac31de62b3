package settings_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/dasdy/keylayout/model"
	"github.com/dasdy/keylayout/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("missing file yields default", func(t *testing.T) {
		store := settings.NewFileStore(filepath.Join(t.TempDir(), "nope.toml"))

		assert.Equal(t, model.DefaultAccent, store.Load())
	})

	t.Run("reads decimal value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.toml")
		require.NoError(t, os.WriteFile(path, []byte("rectangle_color = 4278223103\n"), 0o644))

		assert.Equal(t, model.Color(0xFF0080FF), settings.NewFileStore(path).Load())
	})

	t.Run("reads hex string", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.toml")
		require.NoError(t, os.WriteFile(path, []byte("rectangle_color = \"0x00112233\"\n"), 0o644))

		assert.Equal(t, model.Color(0xFF112233), settings.NewFileStore(path).Load())
	})

	t.Run("corrupt file yields default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.toml")
		require.NoError(t, os.WriteFile(path, []byte("rectangle_color = [[[\n"), 0o644))

		assert.Equal(t, model.DefaultAccent, settings.NewFileStore(path).Load())
	})

	t.Run("bad value yields default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.toml")
		require.NoError(t, os.WriteFile(path, []byte("rectangle_color = \"purple\"\n"), 0o644))

		assert.Equal(t, model.DefaultAccent, settings.NewFileStore(path).Load())
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.toml")

		require.NoError(t, settings.NewFileStore(path).Save(0xFF0080FF))

		assert.Equal(t, model.Color(0xFF0080FF), settings.NewFileStore(path).Load())
	})
}

func TestSQLiteStore(t *testing.T) {
	t.Run("empty database yields default", func(t *testing.T) {
		store, err := settings.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		defer store.Close()

		assert.Equal(t, model.DefaultAccent, store.Load())
	})

	t.Run("save overwrites", func(t *testing.T) {
		store, err := settings.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		defer store.Close()

		require.NoError(t, store.Save(0xFF010203))
		require.NoError(t, store.Save(0xFF040506))

		assert.Equal(t, model.Color(0xFF040506), store.Load())
	})

	t.Run("corrupt value yields default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.sqlite")

		conn, err := sql.Open("sqlite3", path)
		require.NoError(t, err)
		require.NoError(t, settings.InitDBStorage(conn))
		_, err = conn.Exec(`insert into settings(key, value) values(?, ?)`, settings.AccentKey, "garbage")
		require.NoError(t, err)
		require.NoError(t, conn.Close())

		store, err := settings.NewSQLiteStore(path)
		require.NoError(t, err)
		defer store.Close()

		assert.Equal(t, model.DefaultAccent, store.Load())
	})
}

func TestNewStoreFromPath(t *testing.T) {
	dir := t.TempDir()

	store, err := settings.NewStoreFromPath(filepath.Join(dir, "colors.sqlite"))
	require.NoError(t, err)
	assert.IsType(t, &settings.SQLiteStore{}, store)
	require.NoError(t, store.Close())

	store, err = settings.NewStoreFromPath(filepath.Join(dir, "colors.toml"))
	require.NoError(t, err)
	assert.IsType(t, &settings.FileStore{}, store)
}
