// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedron

import (
	"fmt"

	"gonum.org/v1/polytope/matrix"
	"gonum.org/v1/polytope/rational"
)

// HPolyhedron is an m×(d+1) matrix whose row i, [b_i | a_i], encodes the
// halfspace b_i + a_i·x ≥ 0.
type HPolyhedron struct {
	M *matrix.Dense
}

// NewHPolyhedron wraps m as an HPolyhedron. m is not copied.
func NewHPolyhedron(m *matrix.Dense) HPolyhedron {
	return HPolyhedron{M: m}
}

// Dim returns the geometric dimension d.
func (h HPolyhedron) Dim() int {
	_, c := h.M.Dims()
	return c - 1
}

// NumRows returns the inequality count m.
func (h HPolyhedron) NumRows() int {
	r, _ := h.M.Dims()
	return r
}

// B returns the constant term b_i of row i.
func (h HPolyhedron) B(i int) rational.Rational {
	return h.M.At(i, 0)
}

// A returns a fresh copy of the coefficient vector a_i of row i.
func (h HPolyhedron) A(i int) []rational.Rational {
	return h.M.RowCopy(i)[1:]
}

// VPolyhedron is an m×(d+1) matrix whose rows are classified by their
// leading entry: 1 for a vertex (the rest of the row is its coordinates) and
// 0 for an extreme ray direction.
type VPolyhedron struct {
	M *matrix.Dense
}

// NewVPolyhedron wraps m as a VPolyhedron. m is not copied.
func NewVPolyhedron(m *matrix.Dense) VPolyhedron {
	return VPolyhedron{M: m}
}

// Dim returns the geometric dimension d.
func (v VPolyhedron) Dim() int {
	_, c := v.M.Dims()
	return c - 1
}

// NumRows returns the row count m.
func (v VPolyhedron) NumRows() int {
	r, _ := v.M.Dims()
	return r
}

// Split classifies every row of v: a row with a positive leading entry is a
// vertex, rescaled so its leading entry is exactly 1; a row with a zero
// leading entry is a ray direction. Any other leading value fails with
// ErrBadLeadingValue.
func (v VPolyhedron) Split() (verts, rays [][]rational.Rational, err error) {
	rows, cols := v.M.Dims()
	for i := 0; i < rows; i++ {
		row := v.M.RowCopy(i)
		lead := row[0]
		switch {
		case lead.IsZero():
			rays = append(rays, append([]rational.Rational(nil), row[1:]...))
		case lead.Sign() > 0:
			scaled := make([]rational.Rational, cols-1)
			for j, e := range row[1:] {
				s, _ := e.Div(lead) // lead is nonzero by the case guard
				scaled[j] = s
			}
			verts = append(verts, scaled)
		default:
			return nil, nil, fmt.Errorf("polyhedron: row %d: %w", i, ErrBadLeadingValue)
		}
	}
	return verts, rays, nil
}

// NewVertexRow builds the lifted row [1 | x] for the vertex x.
func NewVertexRow(x []rational.Rational) []rational.Rational {
	row := make([]rational.Rational, len(x)+1)
	row[0] = rational.One()
	copy(row[1:], x)
	return row
}

// NewRayRow builds the lifted row [0 | r] for the ray direction r.
func NewRayRow(r []rational.Rational) []rational.Rational {
	row := make([]rational.Rational, len(r)+1)
	row[0] = rational.Zero()
	copy(row[1:], r)
	return row
}

// FromRows assembles rows (all of equal length) into a dense matrix.
func FromRows(rows [][]rational.Rational) *matrix.Dense {
	if len(rows) == 0 {
		return matrix.NewDense(0, 0)
	}
	m := matrix.NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}
