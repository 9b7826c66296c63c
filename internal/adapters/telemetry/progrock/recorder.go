// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/avify/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	sink   *Sink
	logger ports.Logger
}

// New creates a Recorder whose updates are folded into a Sink and replayed
// through the logger when the recording session closes.
func New(logger ports.Logger) ports.Telemetry {
	sink := NewSink()
	r := NewRecorder(sink)
	r.sink = sink
	r.logger = logger
	return r
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	rec := progrock.NewRecorder(w)
	return &Recorder{
		w:   w,
		rec: rec,
	}
}

// Record starts recording a new vertex for the given file.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close replays the recorded run through the logger and closes the session.
func (r *Recorder) Close() error {
	r.replay()
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// replay reports the run the sink observed: a tally with accumulated encoder
// time, then one line per failed vertex. Runs that recorded nothing stay
// silent.
func (r *Recorder) replay() {
	if r.sink == nil || r.logger == nil {
		return
	}

	sums := r.sink.Summaries()
	if len(sums) == 0 {
		return
	}

	var converted, cached, failed int
	var busy time.Duration
	for _, s := range sums {
		switch {
		case s.Failed():
			failed++
		case s.Cached:
			cached++
		default:
			converted++
		}
		busy += s.Duration
	}

	r.logger.Info(fmt.Sprintf(
		"recorded %d files: %d converted, %d cached, %d failed, %s encoder time",
		len(sums), converted, cached, failed, busy.Round(time.Millisecond),
	))
	for _, s := range sums {
		if s.Failed() {
			r.logger.Warn(fmt.Sprintf("recorded failure for %s: %s", s.Name, s.Error))
		}
	}
}
