package domain

import "sync"

// MtimeMap is the persisted cache shape: normalized absolute source path to
// modification timestamp in Unix milliseconds. Timestamps are compared for
// exact equality only; there is no tolerance window.
type MtimeMap map[string]int64

// Mtimes is the in-memory cache for a single run. It is created from the
// loaded MtimeMap at run start, mutated by concurrent workers on successful
// conversions, and snapshotted once at run end for persistence.
type Mtimes struct {
	mu      sync.RWMutex
	entries MtimeMap
}

// NewMtimes creates an Mtimes seeded with the given mapping.
// A nil mapping yields an empty cache.
func NewMtimes(m MtimeMap) *Mtimes {
	entries := make(MtimeMap, len(m))
	for path, mtime := range m {
		entries[path] = mtime
	}
	return &Mtimes{entries: entries}
}

// Unchanged reports whether path has a cache entry exactly equal to mtime.
func (m *Mtimes) Unchanged(path string, mtime int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.entries[path]
	return ok && stored == mtime
}

// Record inserts or overwrites the entry for path. Re-recording the same
// pair is harmless; entry updates are independent and idempotent.
func (m *Mtimes) Record(path string, mtime int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = mtime
}

// Len returns the number of entries.
func (m *Mtimes) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Snapshot returns a copy of the current mapping for persistence.
func (m *Mtimes) Snapshot() MtimeMap {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(MtimeMap, len(m.entries))
	for path, mtime := range m.entries {
		out[path] = mtime
	}
	return out
}
