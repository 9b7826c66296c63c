package progrock

import (
	"sync"
	"time"

	"github.com/vito/progrock"
)

// VertexSummary is the final observed state of one recorded vertex.
type VertexSummary struct {
	ID       string
	Name     string
	Cached   bool
	Error    string
	Duration time.Duration
}

// Failed reports whether the vertex finished with an error.
func (s VertexSummary) Failed() bool {
	return s.Error != ""
}

// Sink implements progrock.Writer by folding the update stream into final
// per-vertex states. Unlike a raw tape it can be read back after the run
// settles, which is what the end-of-run replay consumes.
type Sink struct {
	mu    sync.Mutex
	order []string
	seen  map[string]*VertexSummary
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{seen: map[string]*VertexSummary{}}
}

// WriteStatus folds one status update into the per-vertex states. A vertex
// may appear in many updates (started, cached, completed); later updates
// refine the state recorded by earlier ones.
func (s *Sink) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		sum, ok := s.seen[v.Id]
		if !ok {
			sum = &VertexSummary{ID: v.Id, Name: v.Name}
			s.seen[v.Id] = sum
			s.order = append(s.order, v.Id)
		}
		if v.Cached {
			sum.Cached = true
		}
		if v.Error != nil {
			sum.Error = *v.Error
		}
		if v.Started != nil && v.Completed != nil {
			sum.Duration = v.Completed.AsTime().Sub(v.Started.AsTime())
		}
	}
	return nil
}

// Close is a no-op; the folded states stay readable.
func (s *Sink) Close() error {
	return nil
}

// Summaries returns the final vertex states in first-seen order.
func (s *Sink) Summaries() []VertexSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]VertexSummary, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.seen[id])
	}
	return out
}
