package isin

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/gfkit/table"
)

// KeySet is an immutable-by-convention set of reference keys backed by a
// 64-bit Roaring bitmap. It is built once by the host and may be reused
// across many NotInSet calls and goroutines as long as nobody adds to it.
type KeySet struct {
	rb *roaring64.Bitmap
}

// NewKeySet builds a set from keys. Order and duplicates do not matter.
func NewKeySet(keys ...uint64) *KeySet {
	rb := roaring64.New()
	rb.AddMany(keys)
	rb.RunOptimize()
	return &KeySet{rb: rb}
}

// KeySetFromColumn builds a set from column col of t.
func KeySetFromColumn(t table.Table[uint64], col int) *KeySet {
	return NewKeySet(t.Column(col, nil)...)
}

// Contains reports whether key is in the set.
func (s *KeySet) Contains(key uint64) bool {
	return s.rb.Contains(key)
}

// Len returns the number of distinct keys.
func (s *KeySet) Len() uint64 {
	return s.rb.GetCardinality()
}

// NotInSet is NotIn with membership answered by set. Column order of the
// reference keys is irrelevant; arr1 must still be grouped by key.
func NotInSet(arr1 table.Table[uint64], set *KeySet, result []bool) Stats {
	var (
		st Stats
		c  runCache
	)
	for i := 0; i < arr1.Rows(); i++ {
		row := arr1.Row(i)
		result[row[SlotColumn]] = c.lookup(row[KeyColumn], set.Contains, &st)
	}
	return st
}
