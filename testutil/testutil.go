package testutil

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/gfkit/table"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Indices returns m pseudo-random positions in [0, n). Duplicates are possible.
func (r *RNG) Indices(m, n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, m)
	for i := range out {
		out[i] = int64(r.rand.Intn(n))
	}
	return out
}

// SortedKeys returns n keys drawn from [0, universe) in ascending order.
// A universe of 0 draws from the full uint64 range.
func (r *RNG) SortedKeys(n int, universe uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = r.drawLocked(universe)
	}
	slices.Sort(keys)
	return keys
}

// KeyTable wraps keys as a single-column reference table.
func KeyTable(keys []uint64) table.Table[uint64] {
	return table.MustNew(keys, len(keys), 1)
}

// GroupedKeyTable returns a (key, slot) table with n rows and the given number
// of extra payload columns. Keys are drawn from [0, universe), repeated in
// adjacent runs and sorted ascending; slots are a permutation of [0, n).
func (r *RNG) GroupedKeyTable(n int, universe uint64, extraCols int) table.Table[uint64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]uint64, 0, n)
	for len(keys) < n {
		k := r.drawLocked(universe)
		run := 1 + r.rand.Intn(4)
		for j := 0; j < run && len(keys) < n; j++ {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	slots := r.rand.Perm(n)
	cols := 2 + extraCols
	data := make([]uint64, n*cols)
	for i := range n {
		data[i*cols] = keys[i]
		data[i*cols+1] = uint64(slots[i])
		for j := 2; j < cols; j++ {
			data[i*cols+j] = r.rand.Uint64()
		}
	}
	return table.MustNew(data, n, cols)
}

// Metrics returns n pseudo-random metric values in [0, 100).
func (r *RNG) Metrics(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := make([]float64, n)
	for i := range m {
		m[i] = r.rand.Float64() * 100
	}
	return m
}

func (r *RNG) drawLocked(universe uint64) uint64 {
	if universe == 0 {
		return r.rand.Uint64()
	}
	return r.rand.Uint64() % universe
}

// NaiveNotIn computes the not-isin result with a linear scan over column 0 of
// arr2 for every row of arr1. The result has one entry per arr1 row, indexed
// by slot.
func NaiveNotIn(arr1, arr2 table.Table[uint64]) []bool {
	result := make([]bool, arr1.Rows())
	for i := 0; i < arr1.Rows(); i++ {
		key := arr1.At(i, 0)
		found := false
		for j := 0; j < arr2.Rows(); j++ {
			if arr2.At(j, 0) == key {
				found = true
				break
			}
		}
		result[arr1.At(i, 1)] = !found
	}
	return result
}

// NaiveSubtract applies the exclusive metric subtraction one pair at a time.
func NaiveSubtract(node, parent, count, stride int, metrics []float64) {
	for i := range count {
		n := node + i*stride
		p := parent + i*stride
		metrics[p-1] = metrics[p-1] - metrics[n-1]
	}
}
