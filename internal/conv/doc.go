// Package conv provides checked integer conversions and arithmetic.
//
// The boundary layer uses these to validate caller-supplied slots, node
// identifiers and strides before they are turned into slice positions.
// Kernels themselves use direct casts.
package conv
