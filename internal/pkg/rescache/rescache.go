// Package rescache is the time-bounded memoization layer for resolved
// translation maps and composed themes. Keys are split into a scope
// (one (tenant, locale) partition or one theme) and a variant (the
// options hash), so a write invalidates every variant of its scope at
// once.
package rescache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value      any
	computedAt time.Time
	expiresAt  time.Time
}

type Cache struct {
	ttl time.Duration

	mu       sync.Mutex
	entries  map[string]entry
	versions map[string]uint64

	group singleflight.Group

	// OnInvalidate, when set, fans an invalidated scope out to other
	// instances. Drop is the receiving side and does not re-fan-out.
	OnInvalidate func(scope string)
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:      ttl,
		entries:  make(map[string]entry),
		versions: make(map[string]uint64),
	}
}

// GetOrCompute returns the cached value for (scope, variant) or runs
// compute under single-flight: concurrent callers for the same key and
// version share one in-progress computation. An entry past its expiry
// is never served. A computation that started before an invalidation
// is returned to its callers but never stored, so a stale read can not
// repopulate the cache after a fresher write.
func (c *Cache) GetOrCompute(ctx context.Context, scope, variant string, compute func(context.Context) (any, error)) (any, error) {
	key := scope + "\x00" + variant

	c.mu.Lock()
	version := c.versions[scope]
	if e, ok := c.entries[key]; ok && time.Now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	// The version is part of the flight key: a caller arriving after an
	// invalidation never joins a flight computing pre-write state.
	flightKey := fmt.Sprintf("%s\x00%d", key, version)
	value, err, _ := c.group.Do(flightKey, func() (any, error) {
		c.mu.Lock()
		if e, ok := c.entries[key]; ok && time.Now().Before(e.expiresAt) {
			c.mu.Unlock()
			return e.value, nil
		}
		c.mu.Unlock()

		value, err := compute(ctx)
		now := time.Now()

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			// A failed refill must leave the slot absent, not corrupted.
			delete(c.entries, key)
			return nil, err
		}
		if c.versions[scope] == version {
			c.entries[key] = entry{
				value:      value,
				computedAt: now,
				expiresAt:  now.Add(c.ttl),
			}
		}
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate bumps the scope version and drops all of its variants.
// Callers must finish their store write before invoking this.
func (c *Cache) Invalidate(scope string) {
	c.drop(scope)
	if c.OnInvalidate != nil {
		c.OnInvalidate(scope)
	}
}

// Drop removes a scope without notifying OnInvalidate. It is used when
// applying invalidations received from another instance.
func (c *Cache) Drop(scope string) {
	c.drop(scope)
}

func (c *Cache) drop(scope string) {
	prefix := scope + "\x00"
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[scope]++
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
}

// Len reports live (unexpired) entries; used by the health endpoint.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	now := time.Now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}
