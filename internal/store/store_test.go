package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	file, err := Open(filepath.Join(dir, "dims.toml"))
	require.NoError(t, err)
	db, err := Open("sqlite:" + filepath.Join(dir, "dims.db"))
	require.NoError(t, err)
	mem, err := Open("memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		file.Close()
		db.Close()
	})
	return map[string]KV{"file": file, "sqlite": db, "memory": mem}
}

func TestKV_SetGetDelete(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get("h_single")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set("h_single", "80"))
			require.NoError(t, kv.Set("h_cross", "600"))
			require.NoError(t, kv.Set("h_single", "90"))

			v, ok, err := kv.Get("h_single")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "90", v)

			keys, err := kv.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"h_cross", "h_single"}, keys)

			require.NoError(t, kv.Delete("h_single"))
			require.NoError(t, kv.Delete("missing"))
			_, ok, err = kv.Get("h_single")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFile_PersistsUnderSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dims.toml")

	f, err := OpenFile(path, DefaultSection)
	require.NoError(t, err)
	require.NoError(t, f.Set("b_cross", "300"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[config]")
	assert.Contains(t, string(raw), "b_cross")

	again, err := OpenFile(path, DefaultSection)
	require.NoError(t, err)
	v, ok, err := again.Get("b_cross")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "300", v)
}

func TestFile_ReadsHandWrittenIntegers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dims.toml")
	require.NoError(t, os.WriteFile(path, []byte("[config]\nh_single = 85\nh_cross = \"abc\"\n"), 0o644))

	f, err := OpenFile(path, DefaultSection)
	require.NoError(t, err)

	v, ok, _ := f.Get("h_single")
	assert.True(t, ok)
	assert.Equal(t, "85", v)

	v, ok, _ = f.Get("h_cross")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dims.db")

	s, err := OpenSQLite(path, DefaultSection)
	require.NoError(t, err)
	require.NoError(t, s.Set("h_cross", "650"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path, DefaultSection)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get("h_cross")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "650", v)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
	_, err = Open("sqlite:")
	assert.Error(t, err)
	_, err = Open(filepath.Join(t.TempDir(), "dims.ini"))
	assert.ErrorContains(t, err, "unsupported extension")
}
