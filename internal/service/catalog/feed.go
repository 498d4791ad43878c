package catalog

import (
	"context"
	"sync"
)

// Feed is a deferred single fetch: the underlying operation runs at most
// once, on the first Collect, and every later Collect observes the same
// result. It is not a live stream and never refetches; callers wanting fresh
// data ask the service for a new feed.
type Feed[T any] struct {
	once  sync.Once
	fetch func(context.Context) (T, error)
	value T
	err   error
}

// NewFeed wraps fetch without running it.
func NewFeed[T any](fetch func(context.Context) (T, error)) *Feed[T] {
	return &Feed[T]{fetch: fetch}
}

// Collect runs the fetch if it has not run yet and returns its result. The
// context of the first collector governs the fetch.
func (f *Feed[T]) Collect(ctx context.Context) (T, error) {
	f.once.Do(func() {
		f.value, f.err = f.fetch(ctx)
	})
	return f.value, f.err
}
