package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/avify/internal/adapters/cache"
	"go.trai.ch/avify/internal/core/domain"
)

func TestStore_LoadMissingFile(t *testing.T) {
	s := cache.NewStore()

	m, err := s.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	s := cache.NewStore()
	path := filepath.Join(t.TempDir(), domain.CacheFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	m, err := s.Load(path)

	// Corrupt content is an error the caller logs, with an empty mapping to
	// carry on with.
	require.Error(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)
}

func TestStore_RoundTrip(t *testing.T) {
	s := cache.NewStore()
	path := filepath.Join(t.TempDir(), domain.CacheFileName)

	in := domain.MtimeMap{
		"/src/a.png":       1714000000123,
		"/src/deep/b.jpeg": 1714000099456,
	}
	require.NoError(t, s.Save(path, in))

	out, err := s.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_SaveCreatesParentDirs(t *testing.T) {
	s := cache.NewStore()
	path := filepath.Join(t.TempDir(), ".cache", "avify", domain.CacheFileName)

	require.NoError(t, s.Save(path, domain.MtimeMap{"/src/a.png": 1}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := cache.NewStore()
	path := filepath.Join(t.TempDir(), domain.CacheFileName)

	require.NoError(t, s.Save(path, domain.MtimeMap{"/src/a.png": 1, "/src/b.png": 2}))
	require.NoError(t, s.Save(path, domain.MtimeMap{"/src/a.png": 3}))

	out, err := s.Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.MtimeMap{"/src/a.png": 3}, out)
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	s := cache.NewStore()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)

	require.NoError(t, s.Save(path, domain.MtimeMap{"/src/a.png": 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.CacheFileName, entries[0].Name())
}

func TestStore_SaveEmptyMap(t *testing.T) {
	s := cache.NewStore()
	path := filepath.Join(t.TempDir(), domain.CacheFileName)

	require.NoError(t, s.Save(path, domain.MtimeMap{}))

	out, err := s.Load(path)
	require.NoError(t, err)
	assert.Empty(t, out)
}
