// Package snapshot provides a small concurrency-safe holder for the latest
// precomputed value of an expensive read, with its computation timestamp.
// The background refresh job stores into it; request handlers read from it.
package snapshot

import (
	"sync"
	"time"
)

// Cache holds the most recent snapshot of a value of type T.
// The zero value is an empty cache.
type Cache[T any] struct {
	mu         sync.RWMutex
	value      T
	computedAt time.Time
	set        bool
}

// NewCache creates an empty Cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{}
}

// Store replaces the cached value and records when it was computed.
func (c *Cache[T]) Store(value T, computedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.computedAt = computedAt
	c.set = true
}

// Get returns the cached value, its computation time and whether a value has
// ever been stored.
func (c *Cache[T]) Get() (T, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value, c.computedAt, c.set
}

// GetFresh returns the cached value only if it was computed within maxAge of
// now. A stale or empty cache reports false.
func (c *Cache[T]) GetFresh(now time.Time, maxAge time.Duration) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.set || now.Sub(c.computedAt) > maxAge {
		var zero T
		return zero, false
	}
	return c.value, true
}
