package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_InsertGet(t *testing.T) {
	tbl := newTable[string]()

	tbl.Insert(1, "one")

	got, ok := tbl.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", got)

	_, ok = tbl.Get(2)
	assert.False(t, ok)
}

func TestTable_AllIsSnapshot(t *testing.T) {
	tbl := newTable[int]()
	tbl.Insert(1, 10)
	tbl.Insert(2, 20)

	snapshot := tbl.All()
	tbl.Insert(3, 30)

	assert.Len(t, snapshot, 2)
	assert.Equal(t, 3, tbl.Len())
}

func TestTable_UpdateMissing(t *testing.T) {
	tbl := newTable[int]()

	_, ok := tbl.Update(7, func(v int) int { return v + 1 })
	assert.False(t, ok)
}

func TestTable_UpdateAtomicPerID(t *testing.T) {
	tbl := newTable[int]()
	tbl.Insert(1, 0)

	const increments = 200
	var wg sync.WaitGroup
	for i := 0; i < increments; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl.Update(1, func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	got, ok := tbl.Get(1)
	require.True(t, ok)
	assert.Equal(t, increments, got, "interleaved updates must not lose writes")
}

func TestTable_Contains(t *testing.T) {
	tbl := newTable[string]()
	tbl.Insert(1, "alpha")
	tbl.Insert(2, "beta")

	assert.True(t, tbl.Contains(func(v string) bool { return v == "beta" }))
	assert.False(t, tbl.Contains(func(v string) bool { return v == "gamma" }))
}
