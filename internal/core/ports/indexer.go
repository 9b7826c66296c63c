package ports

// Indexer enumerates convertible files beneath a source root.
//
//go:generate mockgen -source=indexer.go -destination=mocks/mock_indexer.go -package=mocks
type Indexer interface {
	// Index walks root recursively and returns the absolute paths of all
	// files whose name matches one of the given extensions
	// (case-insensitive). Directories are never returned.
	Index(root string, exts []string) ([]string, error)
}
