// Package domain contains the core types for the conversion pipeline.
package domain

// Default configuration values applied when a field is absent or invalid.
const (
	DefaultQuality     = 80
	DefaultConcurrency = 5
)

// DefaultExtensions lists the file extensions eligible for conversion.
var DefaultExtensions = []string{"png", "jpg", "jpeg", "webp", "tiff", "heic"}

// Config is the run configuration. It is immutable for the duration of a run.
type Config struct {
	// SourcePaths are the root directories scanned for convertible images.
	SourcePaths []string
	// Quality is the encoder quality parameter, 0-100.
	Quality int
	// OutputDir is the destination root for converted files.
	OutputDir string
	// Extensions are the file extensions (without dot) eligible for conversion.
	Extensions []string
	// Concurrency bounds the number of in-flight conversions.
	Concurrency int
	// CacheDir is the directory holding the mtime cache file.
	CacheDir string
	// PreserveStructure mirrors the source directory layout under OutputDir.
	// When false all outputs are flattened to their base name; two sources
	// sharing a base name then overwrite each other, last writer wins.
	PreserveStructure bool
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		SourcePaths:       []string{"src"},
		Quality:           DefaultQuality,
		OutputDir:         ".",
		Extensions:        append([]string(nil), DefaultExtensions...),
		Concurrency:       DefaultConcurrency,
		CacheDir:          DefaultCachePath(),
		PreserveStructure: true,
	}
}

// Normalize replaces absent or out-of-range fields with their defaults.
// Configuration problems degrade to defaults rather than aborting the run.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if len(c.SourcePaths) == 0 {
		c.SourcePaths = def.SourcePaths
	}
	if c.Quality < 0 || c.Quality > 100 {
		c.Quality = def.Quality
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	if c.Concurrency < 1 {
		c.Concurrency = def.Concurrency
	}
	if c.CacheDir == "" {
		c.CacheDir = def.CacheDir
	}
}
