package gfkit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/gfkit/table"
)

// ErrInvalidInput is the single failure kind reported by Kernels. Every
// precondition violation detected at the boundary wraps it, so
//
//	errors.Is(err, gfkit.ErrInvalidInput)
//
// holds for all errors returned by this package.
var ErrInvalidInput = errors.New("invalid input")

// ErrShapeMismatch indicates a flat buffer whose length does not match the
// declared row and column counts.
type ErrShapeMismatch struct {
	Name  string
	Rows  int
	Cols  int
	Len   int
	cause error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("%s: shape %dx%d does not match buffer length %d", e.Name, e.Rows, e.Cols, e.Len)
}

// Unwrap returns ErrInvalidInput and the underlying cause, if any.
func (e *ErrShapeMismatch) Unwrap() []error { return unwrapWith(e.cause) }

// ErrIndexOutOfRange indicates an index that is not a valid position in the
// array it addresses. Position is the offending entry's position in its input
// (row, index list position or iteration).
type ErrIndexOutOfRange struct {
	Name     string
	Position int
	Index    int
	Len      int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s[%d]: index %d out of range [0, %d)", e.Name, e.Position, e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrInvalidInput }

// ErrUnsortedKeys indicates reference keys that are not sorted ascending.
// Row is the first row smaller than its predecessor. Only reported with
// strict validation enabled.
type ErrUnsortedKeys struct {
	Name string
	Row  int
}

func (e *ErrUnsortedKeys) Error() string {
	return fmt.Sprintf("%s: keys not sorted ascending at row %d", e.Name, e.Row)
}

func (e *ErrUnsortedKeys) Unwrap() error { return ErrInvalidInput }

// ErrInvalidArgument indicates a scalar argument outside its domain, such as
// a negative count or a key table with too few columns.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidArgument struct {
	Name  string
	Value any
	cause error
}

func (e *ErrInvalidArgument) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid %s: %v: %v", e.Name, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid %s: %v", e.Name, e.Value)
}

// Unwrap returns ErrInvalidInput and the underlying cause, if any.
func (e *ErrInvalidArgument) Unwrap() []error { return unwrapWith(e.cause) }

func unwrapWith(cause error) []error {
	if cause == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, cause}
}

// translateError maps errors from the kernel packages onto the boundary
// error types.
func translateError(name string, rows, cols, n int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, table.ErrShape) {
		return &ErrShapeMismatch{Name: name, Rows: rows, Cols: cols, Len: n, cause: err}
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidInput, name, err)
}
