package store

import "sync"

// table is a concurrency-safe mapping from ID to entity record. Reads
// take snapshots so callers can iterate while writers mutate the table.
type table[T any] struct {
	mu   sync.RWMutex
	rows map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

// Insert stores value under id, silently overwriting any existing row.
// IDs come from the allocator in normal flow, so collisions do not occur.
func (t *table[T]) Insert(id int64, value T) {
	t.mu.Lock()
	t.rows[id] = value
	t.mu.Unlock()
}

// Get returns the row for id, and whether it exists.
func (t *table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

// All returns a snapshot copy of the current rows. Iteration order is
// not the insertion order.
func (t *table[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		out = append(out, v)
	}
	return out
}

// Len returns the current row count.
func (t *table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Update applies mutate to the row under id and stores the result,
// returning the updated value. The lookup and mutation run under the
// table lock, so concurrent updates of the same id never interleave.
// Returns false if the id is absent.
func (t *table[T]) Update(id int64, mutate func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	existing, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := mutate(existing)
	t.rows[id] = updated
	return updated, true
}

// Contains reports whether any row satisfies match. Used for duplicate
// detection at create time: a linear scan over the current contents.
// O(n) in table size, which is fine at the scale this store targets.
func (t *table[T]) Contains(match func(T) bool) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, v := range t.rows {
		if match(v) {
			return true
		}
	}
	return false
}
