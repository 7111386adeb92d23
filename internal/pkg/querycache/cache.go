// Package querycache provides the process-wide keyed read cache that sits in
// front of the repositories. Each logical read owns a cache key; concurrent
// fetches for the same key are deduplicated, results are held until a mutation
// invalidates the key, and invalidation is driven by an explicit scope table so
// every keyed variant of an entity's reads is dropped together.
package querycache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrNotReady is returned when a read is attempted before the backing store is
// available. Callers get a fast failure instead of a hung fetch.
var ErrNotReady = errors.New("querycache: backing store not ready")

// Key identifies one cached read. Keys are namespaced by scope, e.g.
// "projects:public" or "projects:mine:42", so that a scope prefix covers every
// variant of that entity's reads.
type Key string

// Options control the retry policy for a single read.
type Options struct {
	// MaxRetries is the number of additional fetch attempts after the first
	// failure. Zero disables retries.
	MaxRetries int
	// Backoff is the initial delay between attempts; it doubles per attempt.
	Backoff time.Duration
}

// ListRead is the default policy for collection reads.
func ListRead() Options {
	return Options{MaxRetries: 2, Backoff: 250 * time.Millisecond}
}

// SingletonRead is the policy for profile-like singleton reads: no retries.
func SingletonRead() Options {
	return Options{}
}

// Cache is a process-wide keyed read cache with request deduplication.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]any
	gens    map[Key]uint64      // per-key generation, bumped on invalidation
	scopes  map[string][]string // scope name -> key prefixes it covers
	group   singleflight.Group
	ready   func() bool
}

// New creates an empty cache. ready gates all reads; a nil ready means always
// ready.
func New(ready func() bool) *Cache {
	return &Cache{
		entries: make(map[Key]any),
		gens:    make(map[Key]uint64),
		scopes:  make(map[string][]string),
		ready:   ready,
	}
}

// RegisterScope declares which key prefixes belong to a named scope. A
// mutation that touches the scope invalidates every cached key under any of
// its prefixes.
func (c *Cache) RegisterScope(scope string, prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scopes[scope] = append(c.scopes[scope], prefixes...)
}

// Invalidate drops every cached key covered by the named scopes. Bumping the
// key generations also discards results of fetches still in flight, so a
// mutation racing a read can never reinstate the pre-mutation value.
func (c *Cache) Invalidate(scopes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, scope := range scopes {
		for _, prefix := range c.scopes[scope] {
			for key := range c.entries {
				if strings.HasPrefix(string(key), prefix) {
					delete(c.entries, key)
				}
			}
			for key := range c.gens {
				if strings.HasPrefix(string(key), prefix) {
					c.gens[key]++
				}
			}
		}
	}
}

// InvalidateKey drops a single cached key.
func (c *Cache) InvalidateKey(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.gens[key]++
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) store(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// generation reads the key's current generation, registering the key so a
// concurrent Invalidate sees the in-flight fetch.
func (c *Cache) generation(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	gen, ok := c.gens[key]
	if !ok {
		c.gens[key] = 0
	}
	return gen
}

// storeIfCurrent caches value only when no invalidation intervened since the
// fetch started.
func (c *Cache) storeIfCurrent(key Key, value any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key] == gen {
		c.entries[key] = value
	}
}

// fetchOnce runs fetch under singleflight so concurrent identical reads share
// one backend call. The fetch runs on a detached context: a waiter's
// cancellation must not fail the flight for everyone sharing it. Errors are
// never cached, and a result that raced an invalidation is returned to its
// waiters but not cached.
func (c *Cache) fetchOnce(ctx context.Context, key Key, opts Options, fetch func(context.Context) (any, error)) (any, error) {
	if c.ready != nil && !c.ready() {
		return nil, ErrNotReady
	}

	v, err, _ := c.group.Do(string(key), func() (any, error) {
		// Another flight may have populated the entry while we waited.
		if cached, ok := c.lookup(key); ok {
			return cached, nil
		}

		gen := c.generation(key)
		value, err := fetchWithRetry(context.WithoutCancel(ctx), opts, fetch)
		if err != nil {
			return nil, err
		}
		c.storeIfCurrent(key, value, gen)
		return value, nil
	})
	return v, err
}

func fetchWithRetry(ctx context.Context, opts Options, fetch func(context.Context) (any, error)) (any, error) {
	value, err := fetch(ctx)
	if err == nil {
		return value, nil
	}

	backoff := opts.Backoff
	for attempt := 0; attempt < opts.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2

		value, err = fetch(ctx)
		if err == nil {
			return value, nil
		}
	}
	return nil, err
}

// Get returns the cached value for key, or runs fetch (deduplicated across
// concurrent callers) and caches its result. The T returned by fetch must be
// consistent per key.
func Get[T any](ctx context.Context, c *Cache, key Key, opts Options, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if cached, ok := c.lookup(key); ok {
		if typed, ok := cached.(T); ok {
			return typed, nil
		}
		// A mismatched type means the key was reused; drop and refetch.
		c.InvalidateKey(key)
	}

	v, err := c.fetchOnce(ctx, key, opts, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}
