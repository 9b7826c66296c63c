// Package config provides the configuration loader for avify.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/avify/internal/core/domain"
	"go.trai.ch/avify/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads avify.yaml and produces a normalized domain.Config.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path. A missing file yields the
// defaults. Read or parse failures are returned with zerr context; these
// are the only configuration-level errors, and callers may still choose to
// fall back to defaults.
func (l *Loader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(&cfg, &file)
	cfg.Normalize()

	return cfg, nil
}

// apply overlays the file's present fields onto cfg.
func apply(cfg *domain.Config, file *File) {
	if len(file.SourcePaths) > 0 {
		cfg.SourcePaths = file.SourcePaths
	}
	if file.Quality != nil {
		cfg.Quality = *file.Quality
	}
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if len(file.ImageExtensions) > 0 {
		cfg.Extensions = file.ImageExtensions
	}
	if file.Concurrency != nil {
		cfg.Concurrency = *file.Concurrency
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}
	if file.PreserveStructure != nil {
		cfg.PreserveStructure = *file.PreserveStructure
	}
}
