// Package cache provides the time-boxed response memoization layer that
// sits in front of the scoring engine. Entries are whole-value swaps keyed
// by normalized request signature; there is no partial update, so a single
// RWMutex is all the coordination concurrent requests need.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/open-dossier/archive/backend/pkg/logger"
)

// Clock abstracts time for expiry decisions so tests can drive it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

type entry struct {
	payload  any
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.storedAt) >= e.ttl
}

// Cache is a concurrency-safe TTL cache. A Get past expiry behaves as a
// miss without evicting; Sweep (or the background sweeper) removes expired
// entries to bound memory.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   Clock
}

// New creates an empty cache. A nil clock uses the system clock.
func New(clock Clock) *Cache {
	if clock == nil {
		clock = systemClock{}
	}
	return &Cache{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get returns the payload stored under key, or false if the key is absent
// or past its TTL.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.expired(c.clock.Now()) {
		return nil, false
	}
	return e.payload, true
}

// Set stores payload under key for ttl, replacing any previous entry
// atomically as a whole value. Non-positive TTLs are ignored.
func (c *Cache) Set(key string, payload any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry{
		payload:  payload,
		storedAt: c.clock.Now(),
		ttl:      ttl,
	}
	c.mu.Unlock()
}

// Invalidate removes every entry whose key the predicate matches and
// returns how many were removed.
func (c *Cache) Invalidate(pred func(key string) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if pred(key) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Clear removes every entry. Writes to the underlying store use this as
// the coarse-grained invalidation strategy: simple and always correct.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len returns the number of entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes expired entries and returns how many were removed.
func (c *Cache) Sweep() int {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// StartSweeper sweeps expired entries every interval until ctx is done.
func (c *Cache) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.Sweep(); removed > 0 {
					logger.Debug("Cache sweep evicted expired entries", "count", removed)
				}
			}
		}
	}()
}
