package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetOrCompute_ComputesOncePerKey(t *testing.T) {
	c := newCache()
	calls := 0

	compute := func() any {
		calls++
		return "value"
	}

	assert.Equal(t, "value", c.GetOrCompute("tasks", "k", compute))
	assert.Equal(t, "value", c.GetOrCompute("tasks", "k", compute))
	assert.Equal(t, 1, calls)
}

func TestCache_KeysAreIndependent(t *testing.T) {
	c := newCache()

	c.GetOrCompute("tasks", "a", func() any { return 1 })
	got := c.GetOrCompute("tasks", "b", func() any { return 2 })
	assert.Equal(t, 2, got)
}

func TestCache_InvalidateClearsPartition(t *testing.T) {
	c := newCache()
	calls := 0
	compute := func() any {
		calls++
		return calls
	}

	c.GetOrCompute("stats", "summary", compute)
	c.Invalidate("stats")
	got := c.GetOrCompute("stats", "summary", compute)

	assert.Equal(t, 2, got)
	assert.Equal(t, 2, calls)
}

func TestCache_InvalidateLeavesOtherPartitionsAlone(t *testing.T) {
	c := newCache()
	calls := 0

	c.GetOrCompute("users", "all", func() any { calls++; return "u" })
	c.Invalidate("tasks", "stats")
	c.GetOrCompute("users", "all", func() any { calls++; return "u" })

	assert.Equal(t, 1, calls)
}

// A computation that began before an invalidation must not park its
// stale result in the cache afterwards.
func TestCache_StaleComputeNotStoredAfterInvalidate(t *testing.T) {
	c := newCache()

	started := make(chan struct{})
	proceed := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.GetOrCompute("tasks", "all", func() any {
			close(started)
			<-proceed
			return "stale"
		})
	}()

	<-started
	c.Invalidate("tasks")
	close(proceed)
	<-done

	got := c.GetOrCompute("tasks", "all", func() any { return "fresh" })
	assert.Equal(t, "fresh", got)
}
