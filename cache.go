// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync"

// Cache is an explicit memoization cache owned by the caller.
//
// There is deliberately no package-level implicit cache: the caller
// creates a Cache, decides its lifetime, and clears it when done. Entries
// are never evicted automatically — growth is unbounded until Clear.
// Safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
}

// NewCache creates an empty cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get returns the cached value for key and true, or zero and false.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a value for key, replacing any previous entry.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Memoize wraps a pure function so that each distinct argument is computed
// once and served from the cache afterwards.
func Memoize[K comparable, V any](c *Cache[K, V], f func(K) V) func(K) V {
	return func(key K) V {
		if v, ok := c.Get(key); ok {
			return v
		}
		v := f(key)
		c.Put(key, v)
		return v
	}
}

// MemoizeIO wraps an effect-producing function so that a successful run
// for a given argument is cached and later runs for the same argument
// yield the cached value without re-executing the effect. Failures are not
// cached — the next Run retries the effect.
func MemoizeIO[K comparable, V any](c *Cache[K, V], f func(K) IO[V]) func(K) IO[V] {
	return func(key K) IO[V] {
		return func() (V, error) {
			if v, ok := c.Get(key); ok {
				return v, nil
			}
			v, err := f(key)()
			if err != nil {
				var zero V
				return zero, err
			}
			c.Put(key, v)
			return v, nil
		}
	}
}
