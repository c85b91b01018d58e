// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/polytope/matrix"
	"gonum.org/v1/polytope/rational"
)

func ri(n int64) rational.Rational { return rational.NewInt64(n) }

func identity(n int) *matrix.Dense {
	m := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, rational.One())
	}
	return m
}

func denseFrom(rows [][]int64) *matrix.Dense {
	m := matrix.NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, ri(v))
		}
	}
	return m
}

func vecEqual(t *testing.T, got, want []rational.Rational) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "index %d: got %v want %v", i, got[i], want[i])
	}
}

func matEqual(t *testing.T, got, want *matrix.Dense) {
	t.Helper()
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	require.Equal(t, wr, gr)
	require.Equal(t, wc, gc)
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			assert.True(t, want.At(i, j).Equal(got.At(i, j)), "(%d,%d): got %v want %v", i, j, got.At(i, j), want.At(i, j))
		}
	}
}

func TestInvertIdentity(t *testing.T) {
	inv, ok := Invert(identity(3))
	require.True(t, ok)
	matEqual(t, inv, identity(3))
}

func TestInvertTimesOriginalIsIdentity(t *testing.T) {
	a := denseFrom([][]int64{{2, 1}, {1, 1}})
	inv, ok := Invert(a)
	require.True(t, ok)

	rows, _ := a.Dims()
	prod := matrix.NewDense(rows, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			sum := rational.Zero()
			for k := 0; k < rows; k++ {
				sum = sum.Add(a.At(i, k).Mul(inv.At(k, j)))
			}
			prod.Set(i, j, sum)
		}
	}
	matEqual(t, prod, identity(rows))
}

func TestInvertSingular(t *testing.T) {
	a := denseFrom([][]int64{{1, 2}, {2, 4}})
	_, ok := Invert(a)
	assert.False(t, ok)
}

func TestSolveRecoversX(t *testing.T) {
	a := denseFrom([][]int64{{2, 1}, {1, 3}})
	x := []rational.Rational{ri(1), ri(2)}
	b := MulVec(a, x)
	got, ok := Solve(a, b)
	require.True(t, ok)
	vecEqual(t, got, x)
}

func TestSolveSingularReturnsFalse(t *testing.T) {
	a := denseFrom([][]int64{{1, 1}, {1, 1}})
	_, ok := Solve(a, []rational.Rational{ri(1), ri(1)})
	assert.False(t, ok)
}

func TestRank(t *testing.T) {
	assert.Equal(t, 2, Rank(identity(2)))
	assert.Equal(t, 1, Rank(denseFrom([][]int64{{1, 2}, {2, 4}})))
	assert.Equal(t, 0, Rank(matrix.NewDense(2, 2)))
}

func TestRankPlusNullityEqualsCols(t *testing.T) {
	a := denseFrom([][]int64{{1, 2, 3}, {2, 4, 6}})
	_, cols := a.Dims()
	m, pivotCols := rref(a)
	_ = m
	nullity := cols - len(pivotCols)
	assert.Equal(t, cols, len(pivotCols)+nullity)
}

func TestNullspace1(t *testing.T) {
	// Rank 2 in 3 columns: nullity 1.
	a := denseFrom([][]int64{{1, 2, 3}, {4, 5, 6}})
	v, ok := Nullspace1(a)
	require.True(t, ok)

	out := MulVec(a, v)
	for _, e := range out {
		assert.True(t, e.IsZero())
	}
}

func TestNullspace1WrongDimension(t *testing.T) {
	// Full rank square matrix: nullity 0.
	_, ok := Nullspace1(identity(2))
	assert.False(t, ok)

	// Nullity 2: two free columns.
	zero := matrix.NewDense(1, 3)
	_, ok = Nullspace1(zero)
	assert.False(t, ok)
}
