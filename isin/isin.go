package isin

import (
	"slices"

	"github.com/hupe1980/gfkit/table"
)

// KeyColumn and SlotColumn are the key table column positions.
const (
	KeyColumn  = 0
	SlotColumn = 1
)

// Stats describes how rows were resolved.
type Stats struct {
	// Rows is the number of key table rows visited.
	Rows int
	// Searches is the number of lookups performed.
	Searches int
	// Reused is the number of rows whose result was copied from the previous row.
	Reused int
}

// runCache remembers the result of the last looked-up key.
type runCache struct {
	key    uint64
	absent bool
	valid  bool
}

// lookup resolves key through the cache, calling contains on a miss.
func (c *runCache) lookup(key uint64, contains func(uint64) bool, st *Stats) bool {
	st.Rows++
	if c.valid && c.key == key {
		st.Reused++
		return c.absent
	}
	st.Searches++
	c.key = key
	c.absent = !contains(key)
	c.valid = true
	return c.absent
}

// NotIn writes, for every row of arr1, whether its key is absent from column 0
// of arr2.
//
// arr1 must have at least two columns (key, slot) and be grouped by key.
// Column 0 of arr2 must be sorted ascending. Only result positions named by a
// slot are written.
func NotIn(arr1, arr2 table.Table[uint64], result []bool) Stats {
	ref := arr2.Column(KeyColumn, nil)

	var (
		st Stats
		c  runCache
	)
	contains := func(k uint64) bool {
		_, found := slices.BinarySearch(ref, k)
		return found
	}
	for i := 0; i < arr1.Rows(); i++ {
		row := arr1.Row(i)
		result[row[SlotColumn]] = c.lookup(row[KeyColumn], contains, &st)
	}
	return st
}

// NotInColumns is NotIn over key and slot columns that are already split.
// keys and slots must have equal length; sortedRef must be sorted ascending.
func NotInColumns(keys, slots, sortedRef []uint64, result []bool) Stats {
	var (
		st Stats
		c  runCache
	)
	contains := func(k uint64) bool {
		_, found := slices.BinarySearch(sortedRef, k)
		return found
	}
	for i, k := range keys {
		result[slots[i]] = c.lookup(k, contains, &st)
	}
	return st
}

// NotInAlloc allocates a result with one entry per arr1 row, fills it with
// NotIn and returns it. Slots of arr1 must lie in [0, arr1.Rows()).
func NotInAlloc(arr1, arr2 table.Table[uint64]) []bool {
	result := make([]bool, arr1.Rows())
	NotIn(arr1, arr2, result)
	return result
}

// IsSortedColumn reports whether column col of t is sorted ascending. If not,
// row is the first row whose value is smaller than its predecessor.
func IsSortedColumn(t table.Table[uint64], col int) (row int, ok bool) {
	for i := 1; i < t.Rows(); i++ {
		if t.At(i, col) < t.At(i-1, col) {
			return i, false
		}
	}
	return -1, true
}
