// Package fs provides filesystem adapters for file discovery and path policy.
package fs

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Indexer = (*Walker)(nil)

// Walker implements ports.Indexer using filepath.WalkDir.
//
// Symlinked directories are not followed (WalkDir semantics), which bounds
// recursion and makes symlink cycles a non-issue.
type Walker struct {
	logger ports.Logger
}

// NewWalker creates a new Walker.
func NewWalker(logger ports.Logger) *Walker {
	return &Walker{logger: logger}
}

// Index walks root recursively and returns the absolute paths of all files
// whose name ends in one of the given extensions, case-insensitively.
//
// A read failure on the root itself aborts indexing of that root. A read
// failure deeper in the tree drops only that subtree; siblings continue.
func (w *Walker) Index(root string, exts []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "root", root)
	}

	suffixes := extSuffixes(exts)

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			// Unreadable subtree: drop it, keep walking siblings.
			if w.logger != nil {
				w.logger.Warn(fmt.Sprintf("skipping unreadable directory %s: %v", path, walkErr))
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if matchesExt(d.Name(), suffixes) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDirReadFailed.Error()), "root", absRoot)
	}

	return files, nil
}

// extSuffixes derives lowercase ".ext" suffixes from the extension list.
func extSuffixes(exts []string) []string {
	suffixes := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		suffixes = append(suffixes, "."+strings.ToLower(ext))
	}
	return suffixes
}

func matchesExt(name string, suffixes []string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
