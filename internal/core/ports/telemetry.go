package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records per-file progress for a run.
type Telemetry interface {
	// Record starts recording a new vertex for the given file.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents the progress of a single file.
type Vertex interface {
	// Cached marks the file as skipped by the cache.
	Cached()
	// Complete marks the file as finished, successfully or with an error.
	Complete(err error)
}
