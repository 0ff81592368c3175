package isin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfkit/table"
	"github.com/hupe1980/gfkit/testutil"
)

func TestKeySet(t *testing.T) {
	s := NewKeySet(9, 1, 9, math.MaxUint64)

	assert.Equal(t, uint64(3), s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(math.MaxUint64))
	assert.False(t, s.Contains(2))
}

func TestKeySetFromColumn(t *testing.T) {
	tb := table.MustNew([]uint64{
		0, 10,
		0, 20,
	}, 2, 2)

	s := KeySetFromColumn(tb, 1)

	assert.True(t, s.Contains(20))
	assert.False(t, s.Contains(0))
}

func TestNotInSet(t *testing.T) {
	arr1 := pairs(5, 0, 5, 1, 5, 2)
	result := make([]bool, 3)

	st := NotInSet(arr1, NewKeySet(5), result)

	assert.Equal(t, []bool{false, false, false}, result)
	assert.Equal(t, Stats{Rows: 3, Searches: 1, Reused: 2}, st)
}

func TestNotInSetUnsortedReference(t *testing.T) {
	arr1 := pairs(1, 0, 4, 1, 8, 2)
	result := make([]bool, 3)

	NotInSet(arr1, NewKeySet(8, 1, 3), result)

	assert.Equal(t, []bool{false, true, false}, result)
}

func TestNotInSetMatchesNotIn(t *testing.T) {
	rng := testutil.NewRNG(99)

	for iter := 0; iter < 50; iter++ {
		arr1 := rng.GroupedKeyTable(rng.Intn(200), 0, 0)
		ref := rng.SortedKeys(rng.Intn(200), 0)
		// Share some keys so both outcomes occur with a full-range universe.
		for i := 0; i < arr1.Rows() && i < len(ref); i += 3 {
			ref[i] = arr1.At(i, 0)
		}
		arr2 := testutil.KeyTable(ref)

		want := testutil.NaiveNotIn(arr1, arr2)
		got := make([]bool, arr1.Rows())
		NotInSet(arr1, KeySetFromColumn(arr2, 0), got)

		require.Equal(t, want, got, "iteration %d", iter)
	}
}
