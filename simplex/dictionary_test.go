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

func ri(n int64) rational.Rational { return rational.NewInt64(n) }

// unitSquare returns the H-matrix for the unit square: x,y >= 0, x,y <= 1.
func unitSquare() *matrix.Dense {
	rows := [][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, -1, 0},
		{1, 0, -1},
	}
	m := matrix.NewDense(len(rows), 3)
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, ri(v))
		}
	}
	return m
}

func twoDCone() *matrix.Dense {
	rows := [][]int64{
		{0, 0, 1},
		{0, 1, -1},
	}
	m := matrix.NewDense(len(rows), 3)
	for i, r := range rows {
		for j, v := range r {
			m.Set(i, j, ri(v))
		}
	}
	return m
}

func TestNewDictionarySingularBasis(t *testing.T) {
	h := unitSquare()
	// rows 0 and 2 are (0,1,0) and (1,-1,0): A-parts [1,0] and [-1,0] are parallel, singular.
	_, err := NewDictionary(h, NewBasis([]int{0, 2}))
	assert.ErrorIs(t, err, ErrSingularBasis)
}

func TestDictionaryVertexAndSlack(t *testing.T) {
	h := unitSquare()
	// basis {2,3}: x=1, y=1 tight -> vertex (1,1).
	dict, err := NewDictionary(h, NewBasis([]int{2, 3}))
	require.NoError(t, err)
	v := dict.Vertex()
	require.Len(t, v, 2)
	assert.True(t, v[0].Equal(ri(1)))
	assert.True(t, v[1].Equal(ri(1)))

	// row 0 is x >= 0: slack = 0 + 1*1 + 0*1 = 1.
	assert.True(t, dict.Slack(0).Equal(ri(1)))
	assert.True(t, dict.Slack(2).IsZero())
}

func TestChildrenBasesFromVertex(t *testing.T) {
	h := unitSquare()
	dict, err := NewDictionary(h, NewBasis([]int{2, 3})) // vertex (1,1)
	require.NoError(t, err)

	children := dict.ChildrenBases()
	require.NotEmpty(t, children)
	for i := 1; i < len(children); i++ {
		assert.True(t, children[i-1].Less(children[i]) || children[i-1].Equal(children[i]))
	}
	// every reachable basis must itself be feasible.
	for _, b := range children {
		d2, err := NewDictionary(h, b)
		require.NoError(t, err)
		assert.True(t, dictionaryIsFeasible(d2, b))
	}
}

func TestParentBasisOfRootIsNone(t *testing.T) {
	h := unitSquare()
	root, _, err := FindFeasibleBasis(h)
	require.NoError(t, err)
	dict, err := NewDictionary(h, root)
	require.NoError(t, err)
	_, ok := dict.ParentBasis()
	assert.False(t, ok, "lex-min feasible basis must have no parent")
}

func TestRayDirectionsOnCone(t *testing.T) {
	h := twoDCone()
	dict, err := NewDictionary(h, NewBasis([]int{0, 1})) // apex (0,0)
	require.NoError(t, err)
	assert.True(t, dict.Vertex()[0].IsZero())
	assert.True(t, dict.Vertex()[1].IsZero())

	rays := dict.RayDirections()
	require.Len(t, rays, 2)
	seen := map[string]bool{}
	for _, r := range rays {
		seen[rational.VectorKey(r)] = true
	}
	assert.True(t, seen[rational.VectorKey([]rational.Rational{ri(1), ri(0)})] ||
		seen[rational.VectorKey([]rational.Rational{ri(0), ri(1)})])
}
