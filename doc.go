// Package gfkit provides the array kernels a graph/dataframe profiling tool
// runs on its hot paths.
//
// gfkit operates on flat, caller-owned slices. It never parses, performs I/O
// or resizes caller buffers.
//
// # Kernels
//
//   - Flag setting (package flags): mark the rows of "self" nodes in a flag array.
//   - Set difference (package isin): for every (key, slot) row of one table,
//     record whether the key is absent from a second table. Adjacent repeated
//     keys are answered from a run-length cache without searching again.
//   - Exclusive metrics (package exclusive): subtract child values from their
//     parents along a fixed stride, turning inclusive metrics into exclusive ones.
//
// The kernel packages trust their input. The Kernels type in this package is
// the checked boundary: it validates shapes, slots and identifiers, reports
// violations as errors wrapping ErrInvalidInput, and feeds a Logger and a
// MetricsCollector.
//
// # Quick Start
//
//	k := gfkit.New()
//
//	arr1 := table.MustNew([]uint64{5, 0, 5, 1, 7, 2}, 3, 2) // (key, slot) rows
//	arr2 := table.MustNew([]uint64{5, 6}, 2, 1)             // sorted reference keys
//	result := make([]bool, 3)
//	stats, err := k.NotIsIn(ctx, arr1, arr2, result)       // result = [false false true]
//
//	metrics := []float64{10, 3, 2}
//	err = k.SubtractExclusive(ctx, 2, 1, 1, 0, metrics)    // metrics = [7 3 2]
//
// # Preconditions
//
// The key table of NotIsIn should be grouped by key so the run-length cache is
// effective, and the reference keys MUST be sorted ascending: unsorted
// reference keys are only detected with WithStrictValidation and otherwise
// yield silently wrong answers. NotIsInSet with an isin.KeySet has no ordering
// requirement.
package gfkit
