package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfkit/table"
)

func TestSortedKeys(t *testing.T) {
	rng := NewRNG(4711)

	keys := rng.SortedKeys(100, 50)

	assert.Len(t, keys, 100)
	assert.True(t, slices.IsSorted(keys))
	for _, k := range keys {
		assert.Less(t, k, uint64(50))
	}
}

func TestGroupedKeyTable(t *testing.T) {
	rng := NewRNG(4711)

	tb := rng.GroupedKeyTable(64, 20, 1)

	require.Equal(t, 64, tb.Rows())
	require.Equal(t, 3, tb.Cols())

	keys := tb.Column(0, nil)
	assert.True(t, slices.IsSorted(keys))

	slots := tb.Column(1, nil)
	slices.Sort(slots)
	for i, s := range slots {
		assert.Equal(t, uint64(i), s)
	}
}

func TestIndices(t *testing.T) {
	rng := NewRNG(4711)

	idx := rng.Indices(30, 10)

	assert.Len(t, idx, 30)
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, int64(0))
		assert.Less(t, i, int64(10))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.SortedKeys(10, 0)
	rng.Reset()
	v2 := rng.SortedKeys(10, 0)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestNaiveNotIn(t *testing.T) {
	arr1 := withSlots([]uint64{3, 4}, []uint64{0, 1})
	arr2 := KeyTable([]uint64{1, 4})

	assert.Equal(t, []bool{true, false}, NaiveNotIn(arr1, arr2))
}

func TestNaiveSubtract(t *testing.T) {
	m := []float64{10, 3, 2}
	NaiveSubtract(2, 1, 1, 0, m)
	assert.Equal(t, []float64{7, 3, 2}, m)
}

func withSlots(keys, slots []uint64) table.Table[uint64] {
	data := make([]uint64, 0, 2*len(keys))
	for i := range keys {
		data = append(data, keys[i], slots[i])
	}
	return table.MustNew(data, len(keys), 2)
}
