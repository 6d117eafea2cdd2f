// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small bounded memo table for per-window data
// such as text measurements.
package cache

// Cache maps keys to values and forgets the least recently used entry
// once it holds more than its limit. A limit of zero means unbounded.
//
// Cache is not safe for concurrent use. Each window owns its own.
type Cache[K comparable, V any] struct {
	entries map[K]*entry[V]
	limit   int
	clock   uint64

	hits, misses uint64
}

type entry[V any] struct {
	value V
	used  uint64
}

// New returns an empty cache holding at most limit entries.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]*entry[V]), limit: limit}
}

// Get returns the value for key and marks it used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.clock++
	e.used = c.clock
	return e.value, true
}

// Put stores value under key.
func (c *Cache[K, V]) Put(key K, value V) {
	c.clock++
	if e, ok := c.entries[key]; ok {
		e.value, e.used = value, c.clock
		return
	}
	c.entries[key] = &entry[V]{value: value, used: c.clock}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
}

// GetOrCompute returns the cached value for key, computing and storing it
// on a miss.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Put(key, v)
	return v
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Stats returns the hit and miss counts since creation or the last Reset.
func (c *Cache[K, V]) Stats() (hits, misses uint64) { return c.hits, c.misses }

// Reset drops every entry.
func (c *Cache[K, V]) Reset() {
	clear(c.entries)
	c.clock, c.hits, c.misses = 0, 0, 0
}

// evict drops the least recently used entry. It scans the whole table;
// limits stay in the low thousands.
func (c *Cache[K, V]) evict() {
	var (
		oldest K
		used   uint64
		found  bool
	)
	for k, e := range c.entries {
		if !found || e.used < used {
			oldest, used, found = k, e.used, true
		}
	}
	if found {
		delete(c.entries, oldest)
	}
}
