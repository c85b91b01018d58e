// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/polytope/matrix"
	"gonum.org/v1/polytope/rational"
)

func TestFindFeasibleBasisUnitSquare(t *testing.T) {
	h := unitSquare()
	basis, dict, err := FindFeasibleBasis(h)
	require.NoError(t, err)
	assert.True(t, dictionaryIsFeasible(dict, basis))

	// the lex-smallest feasible 2-subset of {0,1,2,3} is {0,1}: vertex (0,0).
	assert.Equal(t, Basis{0, 1}, basis)
	v := dict.Vertex()
	assert.True(t, v[0].IsZero())
	assert.True(t, v[1].IsZero())
}

func TestFindFeasibleBasisUnitCube(t *testing.T) {
	rows := [][]int64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, -1, 0, 0},
		{1, 0, -1, 0},
		{1, 0, 0, -1},
	}
	m := matrix.NewDense(len(rows), 4)
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, rational.NewInt64(v))
		}
	}
	basis, dict, err := FindFeasibleBasis(m)
	require.NoError(t, err)
	assert.True(t, dictionaryIsFeasible(dict, basis))
	assert.Equal(t, Basis{0, 1, 2}, basis)
}

func TestFindFeasibleBasisDegenerateSkip(t *testing.T) {
	// row 0 duplicated as row 4: picking {0,4} would be singular and must be
	// skipped silently.
	rows := [][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, -1, 0},
		{1, 0, -1},
		{0, 1, 0},
	}
	m := matrix.NewDense(len(rows), 3)
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, rational.NewInt64(v))
		}
	}
	basis, dict, err := FindFeasibleBasis(m)
	require.NoError(t, err)
	assert.True(t, dictionaryIsFeasible(dict, basis))
}

func TestFindFeasibleBasisInfeasible(t *testing.T) {
	// x >= 1 and x <= -1 simultaneously: infeasible in 1-D.
	rows := [][]int64{
		{-1, 1},
		{-1, -1},
	}
	m := matrix.NewDense(len(rows), 2)
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, rational.NewInt64(v))
		}
	}
	_, _, err := FindFeasibleBasis(m)
	assert.ErrorIs(t, err, ErrInfeasible)
}
