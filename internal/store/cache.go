package store

import "sync"

// Cache partition names. A partition groups every cached entry that a
// given mutation can invalidate in one shot; there is no per-key eviction.
const (
	cacheUsers    = "users"
	cacheUserByID = "userById"
	cacheTasks    = "tasks"
	cacheStats    = "stats"
)

// cache memoizes read results keyed by operation arguments within named
// partitions. There is no single-flight: concurrent misses on the same
// key may compute twice, which is harmless because every computation is
// a pure function of the underlying tables.
type cache struct {
	mu         sync.Mutex
	partitions map[string]*cachePartition
}

type cachePartition struct {
	// gen increments on every invalidation so a computation that began
	// before a mutation cannot store its stale result afterwards.
	gen     uint64
	entries map[string]any
}

func newCache() *cache {
	return &cache{partitions: make(map[string]*cachePartition)}
}

func (c *cache) partition(name string) *cachePartition {
	p, ok := c.partitions[name]
	if !ok {
		p = &cachePartition{entries: make(map[string]any)}
		c.partitions[name] = p
	}
	return p
}

// GetOrCompute returns the cached value for key in the named partition,
// computing and storing it on a miss. compute runs without holding the
// cache lock.
func (c *cache) GetOrCompute(name, key string, compute func() any) any {
	c.mu.Lock()
	p := c.partition(name)
	if v, ok := p.entries[key]; ok {
		c.mu.Unlock()
		return v
	}
	gen := p.gen
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	if p.gen == gen {
		p.entries[key] = v
	}
	c.mu.Unlock()
	return v
}

// Invalidate clears every entry in the named partitions. Callers invoke
// this synchronously inside each mutating operation, before it returns,
// so a read sequenced after the mutation never sees pre-mutation data.
func (c *cache) Invalidate(names ...string) {
	c.mu.Lock()
	for _, name := range names {
		p := c.partition(name)
		p.gen++
		p.entries = make(map[string]any)
	}
	c.mu.Unlock()
}
