// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"gonum.org/v1/polytope/matrix"
	"gonum.org/v1/polytope/rational"
)

// rref reduces a clone of a to reduced row-echelon form by exact Gauss-Jordan
// elimination with zero-pivot skipping, choosing the first nonzero entry at
// or below the current pivot row in each column. It returns the reduced
// matrix and the column index of the pivot found for each occupied pivot
// row, in row order.
func rref(a *matrix.Dense) (reduced *matrix.Dense, pivotCols []int) {
	m := a.Clone()
	rows, cols := m.Dims()
	pivotCols = make([]int, 0, rows)

	pr := 0
	for pc := 0; pc < cols && pr < rows; pc++ {
		sel := -1
		for i := pr; i < rows; i++ {
			if !m.At(i, pc).IsZero() {
				sel = i
				break
			}
		}
		if sel == -1 {
			continue
		}
		if sel != pr {
			swapRows(m, sel, pr)
		}

		pivot := m.At(pr, pc)
		for j := 0; j < cols; j++ {
			v, _ := m.At(pr, j).Div(pivot) // pivot is nonzero by construction
			m.Set(pr, j, v)
		}

		for i := 0; i < rows; i++ {
			if i == pr {
				continue
			}
			factor := m.At(i, pc)
			if factor.IsZero() {
				continue
			}
			for j := 0; j < cols; j++ {
				m.Set(i, j, m.At(i, j).Sub(factor.Mul(m.At(pr, j))))
			}
		}

		pivotCols = append(pivotCols, pc)
		pr++
	}
	return m, pivotCols
}

func swapRows(m *matrix.Dense, i, j int) {
	if i == j {
		return
	}
	ri := m.RowCopy(i)
	rj := m.RowCopy(j)
	m.SetRow(i, rj)
	m.SetRow(j, ri)
}

// Dot returns the dot product of a and b, which must have equal length.
func Dot(a, b []rational.Rational) rational.Rational {
	if len(a) != len(b) {
		panic(ErrShapeMismatch)
	}
	sum := rational.Zero()
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum
}

// MulVec returns a*x for the r×c matrix a and the length-c vector x.
func MulVec(a *matrix.Dense, x []rational.Rational) []rational.Rational {
	rows, cols := a.Dims()
	if len(x) != cols {
		panic(ErrShapeMismatch)
	}
	out := make([]rational.Rational, rows)
	for i := 0; i < rows; i++ {
		out[i] = Dot(a.RowCopy(i), x)
	}
	return out
}
