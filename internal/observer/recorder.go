package observer

import (
	"context"
	"sync"
)

// Recorder is an Observer that keeps the most recent values it received.
// A limit <= 0 keeps everything.
type Recorder[T any] struct {
	mu     sync.Mutex
	limit  int
	values []T
}

// NewRecorder returns a Recorder keeping at most limit values.
func NewRecorder[T any](limit int) *Recorder[T] { return &Recorder[T]{limit: limit} }

// OnNotify appends v, dropping the oldest value once the limit is reached.
func (r *Recorder[T]) OnNotify(_ context.Context, v T) error {
	r.mu.Lock()
	r.values = append(r.values, v)
	if r.limit > 0 && len(r.values) > r.limit {
		r.values = append(r.values[:0], r.values[len(r.values)-r.limit:]...)
	}
	r.mu.Unlock()
	return nil
}

// Values returns a copy of the recorded values, oldest first.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}
