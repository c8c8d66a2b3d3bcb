package store

import "sync/atomic"

// idAllocator issues unique, strictly increasing IDs for one entity
// kind. Two concurrent Next calls never return the same value, and the
// counter is never reset or reused within the process lifetime.
type idAllocator struct {
	next atomic.Int64
}

// newIDAllocator returns an allocator whose first Next call yields seed.
func newIDAllocator(seed int64) *idAllocator {
	a := &idAllocator{}
	a.next.Store(seed)
	return a
}

// Next returns the next ID and advances the counter atomically.
func (a *idAllocator) Next() int64 {
	return a.next.Add(1) - 1
}
