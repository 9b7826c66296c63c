package pipeline

import (
	"path/filepath"

	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/zerr"
)

// normalizePath returns the canonical absolute form of path, used as the
// cache key. It is deterministic for a given logical file regardless of
// trailing separators or "." and ".." segments.
func normalizePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathResolveFailed.Error()), "path", path)
	}
	return abs, nil
}

// outputPath computes the destination for a converted source file. The
// target extension is appended to the full original filename, so photo.png
// becomes photo.png.avif.
//
// With preserveStructure the layout under outputDir mirrors the source path
// relative to the working directory. Without it, outputs are flattened to
// the source base name; sources sharing a base name across roots overwrite
// each other, last writer wins.
func outputPath(cwd, outputDir, src string, preserveStructure bool) string {
	if !preserveStructure {
		return filepath.Join(outputDir, filepath.Base(src)+domain.TargetExt)
	}

	rel, err := filepath.Rel(cwd, src)
	if err != nil {
		rel = filepath.Base(src)
	}
	return filepath.Join(outputDir, rel+domain.TargetExt)
}
