// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"gonum.org/v1/polytope/matrix"
	"gonum.org/v1/polytope/rational"
)

// Solve solves the n×n system a*x = b. It reports false if a is singular.
// a and b must have matching, square dimensions; mismatched shapes panic.
func Solve(a *matrix.Dense, b []rational.Rational) ([]rational.Rational, bool) {
	rows, cols := a.Dims()
	if rows != cols || rows != len(b) {
		panic(ErrShapeMismatch)
	}
	inv, ok := Invert(a)
	if !ok {
		return nil, false
	}
	return MulVec(inv, b), true
}

// Invert returns the inverse of the n×n matrix a, or reports false if a is
// singular. a must be square; otherwise Invert panics.
func Invert(a *matrix.Dense) (*matrix.Dense, bool) {
	rows, cols := a.Dims()
	if rows != cols {
		panic(ErrShapeMismatch)
	}
	n := rows
	aug := matrix.NewDense(n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.At(i, j))
		}
		aug.Set(i, n+i, rational.One())
	}
	m, pivotCols := rref(aug)
	// [a | I] always has rank n; a is invertible only if all n pivots fall
	// in a's own columns.
	if len(pivotCols) < n || (n > 0 && pivotCols[n-1] != n-1) {
		return nil, false
	}
	out := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, m.At(i, n+j))
		}
	}
	return out, true
}

// Nullspace1 returns a nonzero vector v with a*v = 0, provided the nullspace
// of the r×c matrix a has dimension exactly 1. It reports false otherwise.
func Nullspace1(a *matrix.Dense) ([]rational.Rational, bool) {
	_, cols := a.Dims()
	m, pivotCols := rref(a)
	nullity := cols - len(pivotCols)
	if nullity != 1 {
		return nil, false
	}
	isPivot := make([]bool, cols)
	for _, pc := range pivotCols {
		isPivot[pc] = true
	}
	free := -1
	for j := 0; j < cols; j++ {
		if !isPivot[j] {
			free = j
			break
		}
	}
	v := make([]rational.Rational, cols)
	v[free] = rational.One()
	for i, pc := range pivotCols {
		v[pc] = m.At(i, free).Neg()
	}
	return v, true
}

// Rank returns the rank of a.
func Rank(a *matrix.Dense) int {
	_, pivotCols := rref(a)
	return len(pivotCols)
}
