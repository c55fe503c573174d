// Copyright (c) 2026 AutoVault. All rights reserved.

/*
Package cache provides the in-process TTL response cache for public pages.

It wraps patrickmn/go-cache with the small API surface the site needs:
plain get/set/delete, a get-or-compute helper, and pattern-based bulk
invalidation for when listings change.

Core Responsibilities:

  - Expiry: Every entry carries a TTL; a background janitor evicts stale keys.
  - Locality: The cache is process-local. Multiple instances each hold an
    independent cache; this is acceptable because cached content is public,
    idempotent, and TTL-bounded.
  - Immutability: Values are stored and returned by reference. Consumers MUST
    treat cached values as read-only; mutating a returned value corrupts the
    cache for every other request in the TTL window.
*/
package cache

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a process-local key→value store with TTL-based expiry.
type Cache struct {
	store      *gocache.Cache
	defaultTTL time.Duration
	logger     *slog.Logger
}

// New constructs a [Cache] with the given default TTL.
//
// The janitor sweeps expired entries at 20% of the TTL, mirroring how often
// stale pages are tolerable relative to their lifetime.
func New(defaultTTL time.Duration, logger *slog.Logger) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}

	return &Cache{
		store:      gocache.New(defaultTTL, defaultTTL/5),
		defaultTTL: defaultTTL,
		logger:     logger,
	}
}

// Get returns the value stored under key, and whether it was present.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Set stores value under key with the cache's default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL.
func (c *Cache) SetTTL(key string, value interface{}, ttl time.Duration) {
	c.store.Set(key, value, ttl)
	c.logger.Debug("cache_set", slog.String("key", key))
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
	c.logger.Debug("cache_delete", slog.String("key", key))
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.store.Flush()
	c.logger.Debug("cache_flushed")
}

// Has reports whether key is present and unexpired.
func (c *Cache) Has(key string) bool {
	_, found := c.store.Get(key)
	return found
}

// Keys returns all unexpired keys. Order is unspecified.
func (c *Cache) Keys() []string {
	items := c.store.Items()
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	return keys
}

// Len returns the number of unexpired entries.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// GetOrSet returns the cached value for key, or calls supplier on a miss and
// stores its result with the given TTL.
//
// # Races
//
// Two concurrent misses may both invoke supplier and both write. This
// lost-update race is accepted: for a given key the supplier is expected to
// produce the same value within the TTL window, so the writes are idempotent.
func (c *Cache) GetOrSet(key string, ttl time.Duration, supplier func() (interface{}, error)) (interface{}, error) {
	if value, found := c.store.Get(key); found {
		return value, nil
	}

	value, err := supplier()
	if err != nil {
		return nil, fmt.Errorf("cache: supplier for %q failed: %w", key, err)
	}

	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.store.Set(key, value, ttl)

	return value, nil
}

// DeletePattern removes every key matching the given regular expression and
// returns the number of deleted entries.
//
// Used to invalidate groups of cached pages (e.g. every listing page) when
// the underlying collection changes.
func (c *Cache) DeletePattern(pattern string) (int, error) {
	matcher, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("cache: invalid pattern %q: %w", pattern, err)
	}

	deleted := 0
	for key := range c.store.Items() {
		if matcher.MatchString(key) {
			c.store.Delete(key)
			deleted++
		}
	}

	c.logger.Debug("cache_pattern_invalidated",
		slog.String("pattern", pattern),
		slog.Int("deleted", deleted),
	)

	return deleted, nil
}
