// Package isin implements the "not isin" set difference test between two
// tables of 64-bit keys.
//
// For every row of a key table (key, slot) the kernels write
//
//	result[slot] = key is absent from the reference keys
//
// # Run-length cache
//
// The kernels remember the last key and its result. When the next row carries
// the same key the result is copied without searching again, so a key table
// grouped by key (equal keys adjacent, which ascending order guarantees) costs
// one lookup per distinct key. Ungrouped input is answered correctly but
// searches once per run instead of once per key. Grouping is never checked.
//
// # Sorted reference keys
//
// NotIn and NotInColumns binary-search the reference keys, which MUST be
// sorted ascending. Unsorted reference keys are not detected here and yield
// silently wrong answers (keys reported absent although present). Use
// IsSortedColumn to check, or a KeySet, which has no ordering requirement.
package isin
