// Package flags marks positions of a caller-owned flag array.
//
// Typical use is recording which rows of a frame belong to "self" nodes:
// the host collects their row positions and asks Set to mark them.
package flags

// Integer is the set of flag element types that can hold the value 1.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Index is the set of index element types.
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Set stores 1 at flagArray[i] for every i in indices.
//
// Writes are idempotent and their order does not matter. Every index must be
// a valid position in flagArray; an out-of-range index panics.
func Set[F Integer, I Index](flagArray []F, indices []I) {
	for _, idx := range indices {
		flagArray[idx] = 1
	}
}

// SetN is like Set but only consumes the first n indices.
func SetN[F Integer, I Index](n int, flagArray []F, indices []I) {
	Set(flagArray, indices[:n])
}

// SetBool stores true at flagArray[i] for every i in indices.
func SetBool[I Index](flagArray []bool, indices []I) {
	for _, idx := range indices {
		flagArray[idx] = true
	}
}

// Check returns the position within indices of the first index that is not a
// valid position in an array of length flagLen, or -1 if all are valid.
func Check[I Index](flagLen int, indices []I) int {
	for pos, idx := range indices {
		if idx < 0 || int64(idx) >= int64(flagLen) {
			return pos
		}
	}
	return -1
}
