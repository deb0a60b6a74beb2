// Package cache provides a small thread-safe TTL cache used to memoize
// resolved lookups. All tool operations are idempotent over immutable
// datasets, so cached results never go stale within their TTL.
package cache

import (
	"sync"
	"time"
)

// entry is a cached value with its expiration time.
type entry struct {
	value      interface{}
	expiration int64
}

func (e entry) expired() bool {
	if e.expiration == 0 {
		return false
	}
	return time.Now().UnixNano() > e.expiration
}

// TTLCache is a thread-safe cache with time-based expiration and a
// capacity bound. Expired entries are dropped lazily on access.
type TTLCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	maxItems   int
}

// NewTTLCache creates a cache with the given default TTL. maxItems
// bounds the entry count; 0 means unbounded.
func NewTTLCache(defaultTTL time.Duration, maxItems int) *TTLCache {
	return &TTLCache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		maxItems:   maxItems,
	}
}

// Set stores a value under key with the default TTL.
func (c *TTLCache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value under key with a specific TTL. A
// non-positive TTL stores the value without expiration.
func (c *TTLCache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	var expiration int64
	if ttl > 0 {
		expiration = time.Now().Add(ttl).UnixNano()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiration: expiration}

	if c.maxItems > 0 && len(c.entries) > c.maxItems {
		c.evictOldest()
	}
}

// Get retrieves a value. The second return reports whether a live entry
// was found.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, found := c.entries[key]
	c.mu.RUnlock()

	if !found {
		return nil, false
	}
	if e.expired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Delete removes an entry.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Count returns the number of entries, including any not yet evicted
// expired ones.
func (c *TTLCache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// evictOldest removes the entry closest to expiration. Entries without
// expiration are evicted last. Caller must hold the write lock.
func (c *TTLCache) evictOldest() {
	var oldestKey string
	var oldestExp int64 = -1

	for k, e := range c.entries {
		if e.expiration == 0 {
			continue
		}
		if oldestExp == -1 || e.expiration < oldestExp {
			oldestKey = k
			oldestExp = e.expiration
		}
	}

	if oldestExp == -1 {
		// Only non-expiring entries remain; drop an arbitrary one.
		for k := range c.entries {
			oldestKey = k
			break
		}
	}
	delete(c.entries, oldestKey)
}
