package pipeline

import "golang.org/x/sync/errgroup"

// Limiter bounds the number of concurrently executing tasks to a fixed
// ceiling. Excess submissions queue in submission order and start as soon
// as a running slot frees, regardless of how the finishing task ended.
type Limiter struct {
	g errgroup.Group
}

// NewLimiter creates a Limiter with the given ceiling. n must be >= 1;
// config normalization guarantees that upstream.
func NewLimiter(n int) *Limiter {
	l := &Limiter{}
	l.g.SetLimit(n)
	return l
}

// Go schedules fn for execution, blocking while the ceiling is reached.
// Tasks communicate results as data, never as errors, so one task can
// never cancel its siblings.
func (l *Limiter) Go(fn func()) {
	l.g.Go(func() error {
		fn()
		return nil
	})
}

// Wait blocks until every scheduled task has settled.
func (l *Limiter) Wait() {
	_ = l.g.Wait()
}
