// Package cache implements the persisted mtime cache store.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MtimeStore = (*Store)(nil)

// Store implements ports.MtimeStore using a single JSON file: a flat object
// mapping normalized absolute source path to mtime in Unix milliseconds.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the cache file at path. A missing file yields an empty mapping
// and no error. Unreadable or malformed content yields an empty mapping and
// an error the caller may log; cache loss is never fatal.
func (s *Store) Load(path string) (domain.MtimeMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.MtimeMap{}, nil
		}
		return domain.MtimeMap{}, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	var m domain.MtimeMap
	if err := json.Unmarshal(data, &m); err != nil {
		return domain.MtimeMap{}, zerr.With(zerr.Wrap(err, domain.ErrCacheUnmarshalFailed.Error()), "path", path)
	}
	if m == nil {
		m = domain.MtimeMap{}
	}

	return m, nil
}

// Save writes the full mapping to path, creating parent directories as
// needed. The mapping is written to a temporary file in the same directory
// and renamed over the target, so a crash mid-write leaves either the old
// or the new content, never a torn file.
func (s *Store) Save(path string, m domain.MtimeMap) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, domain.CacheFileName+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	return nil
}
