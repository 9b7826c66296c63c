// Package pipeline implements the incremental batch conversion engine.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner orchestrates a whole run: per-root indexing, bounded conversion,
// outcome aggregation, and a single cache persistence at the end. A run
// always completes; per-file and per-root problems are reported through the
// summary and the logger, never as a fatal error.
type Runner struct {
	indexer   ports.Indexer
	store     ports.MtimeStore
	codec     ports.Codec
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(
	indexer ports.Indexer,
	store ports.MtimeStore,
	codec ports.Codec,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Runner {
	return &Runner{
		indexer:   indexer,
		store:     store,
		codec:     codec,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run executes one full conversion pass over cfg's source roots.
func (r *Runner) Run(ctx context.Context, cfg domain.Config) domain.Summary {
	cfg.Normalize()

	cachePath := domain.CacheFilePath(cfg.CacheDir)

	loaded, err := r.store.Load(cachePath)
	if err != nil {
		// Cache loss means "reprocess everything", never abort.
		r.logger.Warn(fmt.Sprintf("cache unusable, reprocessing everything: %v", err))
	}
	cache := domain.NewMtimes(loaded)

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	worker := NewWorker(cfg, cwd, cache, r.codec)
	limiter := NewLimiter(cfg.Concurrency)

	var (
		mu       sync.Mutex
		outcomes []domain.Outcome
	)

	for _, root := range cfg.SourcePaths {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("skipping root %s: %v", root, err))
			continue
		}

		files, err := r.indexer.Index(absRoot, cfg.Extensions)
		if err != nil {
			// One bad root never aborts its siblings.
			r.logger.Warn(fmt.Sprintf("skipping root %s: %v", absRoot, err))
			continue
		}

		for _, file := range files {
			limiter.Go(func() {
				outcome := r.process(ctx, worker, file)
				mu.Lock()
				outcomes = append(outcomes, outcome)
				mu.Unlock()
			})
		}
	}

	limiter.Wait()

	// The single synchronization point: persist once, after every
	// conversion attempt across all roots has settled. Even an all-failure
	// run rewrites the cache so partial progress survives.
	if err := r.store.Save(cachePath, cache.Snapshot()); err != nil {
		r.logger.Warn(fmt.Sprintf("failed to persist cache: %v", err))
	}

	summary := domain.Summary{Outcomes: outcomes}
	r.logger.Info(fmt.Sprintf(
		"done: %d converted, %d skipped, %d failed",
		summary.Count(domain.StatusConverted),
		summary.Count(domain.StatusSkipped),
		summary.Count(domain.StatusFailed),
	))

	return summary
}

// process runs the worker for one file behind a panic boundary and reports
// the outcome to the logger and telemetry.
func (r *Runner) process(ctx context.Context, worker *Worker, file string) (outcome domain.Outcome) {
	_, vertex := r.telemetry.Record(ctx, file)

	defer func() {
		if rec := recover(); rec != nil {
			// The worker itself threw rather than reporting a structured
			// failure. Contain it to this file.
			outcome = domain.Outcome{
				Source: file,
				Status: domain.StatusFailed,
				Err:    zerr.With(zerr.New(fmt.Sprintf("unhandled conversion panic: %v", rec)), "path", file),
			}
		}
		r.report(outcome, vertex)
	}()

	outcome = worker.Process(ctx, file)
	return outcome
}

func (r *Runner) report(outcome domain.Outcome, vertex ports.Vertex) {
	switch outcome.Status {
	case domain.StatusSkipped:
		vertex.Cached()
		r.logger.Info("skipped " + outcome.Source)
	case domain.StatusConverted:
		vertex.Complete(nil)
		r.logger.Info("converted " + outcome.Source + " -> " + outcome.Output)
	case domain.StatusFailed:
		vertex.Complete(outcome.Err)
		r.logger.Error(zerr.Wrap(outcome.Err, "failed "+outcome.Source))
	}
}
