// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/polytope/rational"
)

func ri(n int64) rational.Rational { return rational.NewInt64(n) }

func TestSplitClassifiesAndRescales(t *testing.T) {
	rows := [][]rational.Rational{
		NewVertexRow([]rational.Rational{ri(1), ri(2)}),
		{ri(2), ri(4), ri(6)}, // scaled vertex (2,4,6) -> (1,2,3)
		NewRayRow([]rational.Rational{ri(1), ri(0)}),
	}
	v := NewVPolyhedron(FromRows(rows))
	verts, rays, err := v.Split()
	require.NoError(t, err)
	require.Len(t, verts, 2)
	require.Len(t, rays, 1)

	assert.True(t, verts[0][0].Equal(ri(1)))
	assert.True(t, verts[0][1].Equal(ri(2)))
	assert.True(t, verts[1][0].Equal(ri(2)))
	assert.True(t, verts[1][1].Equal(ri(3)))
	assert.True(t, rays[0][0].Equal(ri(1)))
}

func TestSplitRejectsBadLeadingValue(t *testing.T) {
	rows := [][]rational.Rational{{ri(-1), ri(2)}}
	v := NewVPolyhedron(FromRows(rows))
	_, _, err := v.Split()
	assert.ErrorIs(t, err, ErrBadLeadingValue)
}

func TestHPolyhedronAccessors(t *testing.T) {
	rows := [][]rational.Rational{
		{ri(0), ri(1), ri(0)},
		{ri(1), ri(-1), ri(0)},
	}
	h := NewHPolyhedron(FromRows(rows))
	assert.Equal(t, 2, h.Dim())
	assert.Equal(t, 2, h.NumRows())
	assert.True(t, h.B(1).Equal(ri(1)))
	assert.True(t, h.A(1)[0].Equal(ri(-1)))
}
