// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "gonum.org/v1/polytope/rational"

// Dense is a dense r×c matrix of rational.Rational, stored row-major.
// Entries default to the rational zero. Dense is mutable; callers that need
// an independent copy should use Clone.
type Dense struct {
	rows, cols int
	data       []rational.Rational
}

// NewDense returns a new r×c matrix with every entry set to zero. r and c
// must be non-negative.
func NewDense(r, c int) *Dense {
	if r < 0 || c < 0 {
		panic(ErrNegativeDim)
	}
	return &Dense{rows: r, cols: c, data: make([]rational.Rational, r*c)}
}

// Dims returns the number of rows and columns in the matrix.
func (d *Dense) Dims() (rows, cols int) {
	return d.rows, d.cols
}

func (d *Dense) index(i, j int) int {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(ErrIndexOutOfRange)
	}
	return i*d.cols + j
}

// At returns the value at (row i, column j).
func (d *Dense) At(i, j int) rational.Rational {
	return d.data[d.index(i, j)]
}

// Set stores v at (row i, column j).
func (d *Dense) Set(i, j int, v rational.Rational) {
	d.data[d.index(i, j)] = v
}

// RowCopy returns an independently owned copy of row i.
func (d *Dense) RowCopy(i int) []rational.Rational {
	if i < 0 || i >= d.rows {
		panic(ErrIndexOutOfRange)
	}
	row := make([]rational.Rational, d.cols)
	copy(row, d.data[i*d.cols:(i+1)*d.cols])
	return row
}

// ColCopy returns an independently owned copy of column j.
func (d *Dense) ColCopy(j int) []rational.Rational {
	if j < 0 || j >= d.cols {
		panic(ErrIndexOutOfRange)
	}
	col := make([]rational.Rational, d.rows)
	for i := range col {
		col[i] = d.data[i*d.cols+j]
	}
	return col
}

// SetRow overwrites row i with the values in row, which must have length
// equal to the column count.
func (d *Dense) SetRow(i int, row []rational.Rational) {
	if i < 0 || i >= d.rows {
		panic(ErrIndexOutOfRange)
	}
	if len(row) != d.cols {
		panic(ErrIndexOutOfRange)
	}
	copy(d.data[i*d.cols:(i+1)*d.cols], row)
}

// Clone returns an independent copy of d.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]rational.Rational, len(d.data))}
	copy(out.data, d.data)
	return out
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }
