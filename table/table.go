package table

import (
	"errors"
	"fmt"
)

// ErrShape is returned when a flat buffer cannot hold the requested shape.
var ErrShape = errors.New("table: bad shape")

// Table is a read/write row-major view over a caller-owned flat buffer.
//
// The zero value is an empty table with no rows and no columns.
type Table[T any] struct {
	data []T
	rows int
	cols int
}

// New wraps data as a rows x cols table.
//
// data must hold exactly rows*cols elements.
func New[T any](data []T, rows, cols int) (Table[T], error) {
	if rows < 0 || cols < 0 {
		return Table[T]{}, fmt.Errorf("%w: negative dimensions %dx%d", ErrShape, rows, cols)
	}
	if cols != 0 && rows > len(data)/cols {
		return Table[T]{}, fmt.Errorf("%w: %dx%d does not fit %d elements", ErrShape, rows, cols, len(data))
	}
	if rows*cols != len(data) {
		return Table[T]{}, fmt.Errorf("%w: %dx%d needs %d elements, got %d", ErrShape, rows, cols, rows*cols, len(data))
	}
	return Table[T]{data: data, rows: rows, cols: cols}, nil
}

// MustNew is like New but panics on a bad shape. Intended for tests and
// literals whose shape is known to be valid.
func MustNew[T any](data []T, rows, cols int) Table[T] {
	t, err := New(data, rows, cols)
	if err != nil {
		panic(err)
	}
	return t
}

// FromRows builds a table by copying rows into a new flat buffer.
// All rows must have the same length.
func FromRows[T any](rows ...[]T) (Table[T], error) {
	if len(rows) == 0 {
		return Table[T]{}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return Table[T]{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return Table[T]{data: data, rows: len(rows), cols: cols}, nil
}

// Rows returns the number of rows.
func (t Table[T]) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t Table[T]) Cols() int { return t.cols }

// Data returns the underlying flat buffer.
func (t Table[T]) Data() []T { return t.data }

// Offset returns the flat position of (row, col).
func (t Table[T]) Offset(row, col int) int {
	return row*t.cols + col
}

// At returns the element at (row, col).
func (t Table[T]) At(row, col int) T {
	return t.data[row*t.cols+col]
}

// Set stores v at (row, col).
func (t Table[T]) Set(row, col int, v T) {
	t.data[row*t.cols+col] = v
}

// Row returns row i as a subslice of the underlying buffer.
func (t Table[T]) Row(i int) []T {
	start := i * t.cols
	return t.data[start : start+t.cols : start+t.cols]
}

// Column copies column col into dst and returns it.
// dst is grown if its capacity is smaller than Rows().
func (t Table[T]) Column(col int, dst []T) []T {
	if cap(dst) < t.rows {
		dst = make([]T, t.rows)
	}
	dst = dst[:t.rows]
	for i := range dst {
		dst[i] = t.data[i*t.cols+col]
	}
	return dst
}
