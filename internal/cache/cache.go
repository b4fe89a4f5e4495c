// Package cache is a key-addressed store for fetched and mutated remote
// resources. Entries are keyed by (resource path, query-or-id) and only ever
// change through explicit writes: there is no revalidation, no refetch on
// reconnect and no retry. Mutation results overwrite entries directly so a
// successful create/update never needs a follow-up fetch.
//
// Fetches are guarded against out-of-order completion. A fetch registers
// itself with Begin before going to the network and hands its token back to
// Commit with the result; if a later fetch for the same key has begun in the
// meantime the commit is discarded, so the value stored for a key is always
// from the latest issued request rather than the last one to resolve.
package cache

import "sync"

// Key addresses a cache entry.
type Key struct {
	// Path is the resource path, e.g. "/api/v1/baskets".
	Path string
	// Ref is the id or encoded query identifying the resource under Path.
	Ref string
}

type entry struct {
	value  any
	latest uint64
	stored bool
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*entry
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// Get returns the current value for key, if any.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !e.stored {
		return nil, false
	}
	return e.value, true
}

// Set overwrites the value for key unconditionally. Any in-flight fetch for
// the key is invalidated so a stale response cannot clobber the write.
func (c *Cache) Set(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	e.latest++
	e.value = value
	e.stored = true
}

// Remove deletes the entry for key. In-flight fetches for the key are
// invalidated.
func (c *Cache) Remove(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.latest++
		e.value = nil
		e.stored = false
	}
}

// Begin registers a fetch for key and returns its token. The token must be
// passed to Commit together with the fetched value.
func (c *Cache) Begin(key Key) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	e.latest++
	return e.latest
}

// Commit stores value for key if token still belongs to the latest issued
// fetch. It reports whether the value was stored; a false return means the
// response was superseded and has been discarded.
func (c *Cache) Commit(key Key, token uint64, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.latest != token {
		return false
	}
	e.value = value
	e.stored = true
	return true
}

func (c *Cache) entry(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}
