// Package cache provides the response cache that fronts every read against
// the upstream tracker service. It owns the cached payloads and the
// in-flight request state exclusively; consumers receive the cache by
// injection and never reach the network around it.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is used when the constructor receives a non-positive TTL.
const DefaultTTL = 60 * time.Second

// Source produces a payload for a key on a cache miss. *httpx.Fetcher
// satisfies it with the key as the request URL.
type Source interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// entry is a cached payload stamped with its store time. Expiry is
// evaluated lazily at lookup: now - storedAt >= ttl.
type entry struct {
	payload  []byte
	storedAt time.Time
}

// ResponseCache serves fresh cached payloads, coalesces concurrent
// identical requests into a single in-flight fetch, and delegates misses
// to the underlying Source. Coalescing is a correctness requirement here,
// not an optimization: the upstream service is rate limited.
type ResponseCache struct {
	src Source
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group
}

// New creates a ResponseCache over src. If ttl is not positive it defaults
// to DefaultTTL.
func New(src Source, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{
		src:     src,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// GetOption adjusts a single Get call.
type GetOption func(*getOptions)

type getOptions struct {
	ttl    time.Duration
	bypass bool
}

// WithTTL overrides the freshness window for this call only.
func WithTTL(d time.Duration) GetOption {
	return func(o *getOptions) { o.ttl = d }
}

// WithBypass skips the cache lookup and forces a fetch. The result still
// replaces the cached entry, and concurrent callers still coalesce.
func WithBypass() GetOption {
	return func(o *getOptions) { o.bypass = true }
}

// Get returns the payload for key. A non-expired cached entry is returned
// without any network I/O; otherwise concurrent callers for the same key
// share one fetch through the Source and all receive the same payload or
// the same final error. Errors are never cached.
func (c *ResponseCache) Get(ctx context.Context, key string, opts ...GetOption) ([]byte, error) {
	o := getOptions{ttl: c.ttl}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.bypass {
		if payload, ok := c.lookup(key, o.ttl); ok {
			return payload, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		payload, err := c.src.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry{payload: payload, storedAt: c.now()}
		c.mu.Unlock()
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// lookup returns a fresh payload for key. Expired entries are evicted on
// the spot.
func (c *ResponseCache) lookup(key string, ttl time.Duration) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

// Invalidate drops the entry for key, if any.
func (c *ResponseCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll drops every cached entry.
func (c *ResponseCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
