// Package app implements the application layer for avify.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/avify/internal/adapters/config"
	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports"
	"go.trai.ch/avify/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader *config.Loader
	runner *pipeline.Runner
	logger ports.Logger
}

// New creates a new App instance.
func New(loader *config.Loader, runner *pipeline.Runner, logger ports.Logger) *App {
	return &App{
		loader: loader,
		runner: runner,
		logger: logger,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath overrides the default avify.yaml location. Empty means the
	// default.
	ConfigPath string
	// Quality overrides the configured encoder quality when >= 0.
	Quality int
	// Concurrency overrides the configured ceiling when > 0.
	Concurrency int
	// JSON switches the logger to JSON output for CI.
	JSON bool
}

// Run executes one conversion pass. Per-file failures are reported through
// the logs and never fail the build; only the summary is surfaced.
func (a *App) Run(ctx context.Context, opts RunOptions) domain.Summary {
	if opts.JSON {
		a.logger.SetJSON(true)
	}

	cfg := a.loadConfig(opts.ConfigPath)

	if opts.Quality >= 0 {
		cfg.Quality = opts.Quality
	}
	if opts.Concurrency > 0 {
		cfg.Concurrency = opts.Concurrency
	}
	cfg.Normalize()

	return a.runner.Run(ctx, cfg)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the conversion cache directory. Converted outputs are left
// alone; only cache state is owned by avify.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg := a.loadConfig(opts.ConfigPath)

	a.logger.Info(fmt.Sprintf("removing cache directory %s...", cfg.CacheDir))
	if err := os.RemoveAll(cfg.CacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "dir", cfg.CacheDir)
	}
	a.logger.Info("removed cache directory")

	return nil
}

// loadConfig resolves the effective configuration. A broken config file
// degrades to the defaults with a warning rather than aborting the build.
func (a *App) loadConfig(path string) domain.Config {
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.loader.Load(path)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("using default configuration: %v", err))
	}
	return cfg
}
