// Package telemetry provides telemetry adapters and the no-op fallback.
package telemetry

import (
	"context"

	"go.trai.ch/avify/internal/core/ports"
)

// Noop is a Telemetry implementation that records nothing. It is the
// default for embedded use and for tests.
type Noop struct{}

// NewNoop creates a new no-op telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close is a no-op.
func (n *Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Cached()            {}
func (noopVertex) Complete(err error) {}
