package ports

import "go.trai.ch/avify/internal/core/domain"

// MtimeStore persists the conversion cache between runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type MtimeStore interface {
	// Load reads the cache file at path. A missing file yields an empty
	// mapping and no error. Any other failure yields an empty mapping and
	// the error; callers log it and proceed, treating cache loss as
	// "reprocess everything".
	Load(path string) (domain.MtimeMap, error)

	// Save writes the full mapping to path, creating parent directories as
	// needed and replacing any previous content.
	Save(path string, m domain.MtimeMap) error
}
