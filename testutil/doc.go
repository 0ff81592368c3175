// Package testutil provides testing utilities for gfkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for key tables and metric buffers and naive
// reference implementations the kernels are checked against.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	ref := rng.SortedKeys(1000, 5000)          // sorted, duplicates allowed
//	arr1 := rng.GroupedKeyTable(400, 5000, 3)  // (key, slot) rows grouped by key
//
// # Reference Implementations
//
//	want := testutil.NaiveNotIn(arr1, arr2)
//	testutil.NaiveSubtract(node, parent, count, stride, metrics)
package testutil
