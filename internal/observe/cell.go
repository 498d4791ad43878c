// Package observe provides a single-writer, multi-reader value cell:
// subscribers receive the current value immediately on subscribe, then every
// subsequent value.
package observe

import "sync"

// Cell holds one value of type T. Writes are serialized by an internal
// mutex; reads are safe from any goroutine. Each subscriber owns a one-slot
// buffer that keeps only the newest value, so a slow reader never blocks a
// writer and never observes a partially applied update.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]chan T
	next  int
}

// NewCell builds a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[int]chan T)}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the current value and notifies every subscriber.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.notify()
}

// Update applies fn to the current value. The whole read-modify-write is
// atomic with respect to other writers and to subscribers, and returns the
// new value.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = fn(c.value)
	c.notify()
	return c.value
}

// Subscribe registers a subscriber. The returned channel delivers the
// current value first, then every change. The cancel func removes the
// subscription and closes the channel; it is safe to call more than once.
func (c *Cell[T]) Subscribe() (<-chan T, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan T, 1)
	ch <- c.value
	id := c.next
	c.next++
	c.subs[id] = ch
	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// notify pushes the current value to every subscriber, replacing any value
// the subscriber has not consumed yet. Callers must hold c.mu, which also
// guarantees no push can race a close.
func (c *Cell[T]) notify() {
	for _, ch := range c.subs {
		for {
			select {
			case ch <- c.value:
			default:
				// Buffer full: drop the stale value and retry.
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}
