package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheReadFailed is returned when the cache file cannot be read.
	// Recovered locally: the run proceeds with an empty cache.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheUnmarshalFailed is returned when the cache file cannot be parsed.
	// Recovered locally: the run proceeds with an empty cache.
	ErrCacheUnmarshalFailed = zerr.New("failed to parse cache file")

	// ErrCacheMarshalFailed is returned when the cache mapping cannot be serialized.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	// The run still reports success for converted files; the next run redoes
	// the work for entries that did not reach disk.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrDirReadFailed is returned when a source root cannot be enumerated.
	ErrDirReadFailed = zerr.New("failed to read directory")

	// ErrFileStatFailed is returned when a discovered file cannot be stated,
	// typically because it vanished between discovery and processing.
	ErrFileStatFailed = zerr.New("failed to stat file")

	// ErrPathResolveFailed is returned when a path cannot be normalized.
	ErrPathResolveFailed = zerr.New("failed to resolve absolute path")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrOutputWriteFailed is returned when the converted bytes cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrCodecFailed is returned when the external conversion routine fails.
	ErrCodecFailed = zerr.New("image conversion failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCleanFailed is returned when removing the cache directory fails.
	ErrCleanFailed = zerr.New("failed to remove cache directory")
)
