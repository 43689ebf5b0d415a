package cache

import (
	"errors"
	"sync"

	"encore.dev/metrics"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned by Get when the key has never been set or has been
// invalidated since. Callers are expected to check Has first.
var ErrNotFound = errors.New("cache: key not found")

type opLabels struct {
	Op string
}

// CacheOps counts reads and invalidations served by the process-local cache.
var CacheOps = metrics.NewCounterGroup[opLabels, uint64]("shop_cache_ops", metrics.CounterConfig{})

// Cache is a process-local string keyed store of serialized values.
//
// Entries never expire and are never evicted: they live until a write path
// deletes them through Invalidate or the process restarts. Individual calls
// are safe for concurrent use, but a Has/Get/Set sequence is not atomic.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	// generations counts deletions per key. A compute that started before a
	// delete must not store its result.
	generations map[string]uint64

	calls singleflight.Group
}

// New creates an empty cache. One instance is shared by every business layer
// for the lifetime of the service.
func New() *Cache {
	return &Cache{
		entries:     make(map[string]string),
		generations: make(map[string]uint64),
	}
}

// Has reports whether key was set and not deleted since.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[key]
	return ok
}

// Get returns the value stored under key or ErrNotFound.
func (c *Cache) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set overwrites the value stored under key.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

// Delete removes every given key. Absent keys are ignored. Computations
// already in flight for a deleted key are detached: later readers start a
// fresh one and the old result is not stored.
func (c *Cache) Delete(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
		c.generations[key]++
		c.calls.Forget(key)
	}
}

func (c *Cache) generation(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generations[key]
}

// setIfCurrent stores value unless key was deleted since generation gen.
func (c *Cache) setIfCurrent(key, value string, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[key] != gen {
		return false
	}
	c.entries[key] = value
	return true
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
