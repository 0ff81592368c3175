// Package table provides a typed row-major view over a flat buffer.
//
// A Table replaces manual stride arithmetic of the form
//
//	data[row*cols + col]
//
// with explicit row/column accessors. Accessors rely on Go slice bounds
// checks; they never validate beyond what New checked at construction.
//
// # Example
//
//	t, _ := table.New([]uint64{
//	    5, 0,
//	    5, 1,
//	    7, 2,
//	}, 3, 2)
//
//	t.At(2, 0)            // 7
//	t.Row(1)              // [5 1]
//	t.Column(0, nil)      // [5 5 7]
package table
