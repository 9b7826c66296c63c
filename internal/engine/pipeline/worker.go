package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Worker converts a single source file: change detection against the run's
// cache, output path computation, codec invocation, and cache update on
// success. Every failure surfaces as a structured Failed outcome; nothing
// escapes to abort sibling files.
type Worker struct {
	cfg   domain.Config
	cwd   string
	cache *domain.Mtimes
	codec ports.Codec
}

// NewWorker creates a Worker for one run. cwd anchors structure-preserving
// output paths and is captured once so every file in the run sees the same
// layout.
func NewWorker(cfg domain.Config, cwd string, cache *domain.Mtimes, codec ports.Codec) *Worker {
	return &Worker{
		cfg:   cfg,
		cwd:   cwd,
		cache: cache,
		codec: codec,
	}
}

// Process runs the per-file algorithm and reports the outcome.
func (w *Worker) Process(ctx context.Context, src string) domain.Outcome {
	path, err := normalizePath(src)
	if err != nil {
		return failed(src, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		// The file vanished or became unreadable between discovery and now.
		return failed(path, zerr.With(zerr.Wrap(err, domain.ErrFileStatFailed.Error()), "path", path))
	}
	mtime := info.ModTime().UnixMilli()

	if w.cache.Unchanged(path, mtime) {
		return domain.Outcome{Source: path, Status: domain.StatusSkipped}
	}

	out := outputPath(w.cwd, w.cfg.OutputDir, path, w.cfg.PreserveStructure)

	if err := os.MkdirAll(filepath.Dir(out), domain.DirPerm); err != nil {
		return failed(path, zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "dir", filepath.Dir(out)))
	}

	data, err := w.codec.Encode(ctx, path, w.cfg.Quality)
	if err != nil {
		// No cache update: the file is retried on the next run.
		return failed(path, err)
	}

	if err := os.WriteFile(out, data, domain.FilePerm); err != nil {
		return failed(path, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", out))
	}

	w.cache.Record(path, mtime)

	return domain.Outcome{Source: path, Output: out, Status: domain.StatusConverted}
}

func failed(src string, err error) domain.Outcome {
	return domain.Outcome{Source: src, Status: domain.StatusFailed, Err: err}
}
