// Package probecache stores direct probe results for their trust window.
// Entries expire exactly at insert time + TTL; a stale entry is evicted and
// reported absent. Keys are case-insensitive on the handle.
package probecache

import (
	"strings"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
)

// DefaultTTL is how long a probe result stays trustworthy.
const DefaultTTL = 24 * time.Hour

type entry struct {
	result    handle.ProbeResult
	expiresAt time.Time
}

// Cache is a TTL-bounded map of (platform, handle) to the last probe result.
// It is safe for concurrent use. There is no size bound beyond TTL eviction.
type Cache struct {
	now     func() time.Time
	entries map[string]entry
	mu      sync.Mutex
	ttl     time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a cache with the given TTL (DefaultTTL when ttl <= 0).
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func key(p handle.Platform, h string) string {
	return string(p) + "/" + strings.ToLower(h)
}

// Get returns the cached result for (platform, handle). A stale entry is
// evicted and treated as absent.
func (c *Cache) Get(p handle.Platform, h string) (handle.ProbeResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(p, h)
	e, ok := c.entries[k]
	if !ok {
		return handle.ProbeResult{}, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, k)
		return handle.ProbeResult{}, false
	}
	return e.result, true
}

// Put stores a result, replacing any previous entry wholesale.
func (c *Cache) Put(p handle.Platform, h string, r handle.ProbeResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key(p, h)] = entry{result: r, expiresAt: c.now().Add(c.ttl)}
}

// Len returns the number of entries currently held, stale or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
