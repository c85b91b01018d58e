// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"sort"

	"gonum.org/v1/polytope/linsolve"
	"gonum.org/v1/polytope/matrix"
	"gonum.org/v1/polytope/rational"
)

// Dictionary is the simplex tableau for the H-problem b + A x ≥ 0 under a
// chosen basis of d tight rows. It is rebuilt, never mutated, whenever the
// basis changes.
type Dictionary struct {
	h     *matrix.Dense // shared, read-only H-matrix; m×(d+1)
	basis Basis
	inv   *matrix.Dense       // d×d inverse of the basis's A-columns
	x     []rational.Rational // current vertex, length d
}

// NewDictionary builds the dictionary for basis over h. It fails with
// ErrSingularBasis if the basis's column submatrix is singular.
func NewDictionary(h *matrix.Dense, basis Basis) (*Dictionary, error) {
	d := len(basis)
	ba := matrix.NewDense(d, d)
	negB := make([]rational.Rational, d)
	for i, rowIdx := range basis {
		row := h.RowCopy(rowIdx)
		for j := 0; j < d; j++ {
			ba.Set(i, j, row[j+1])
		}
		negB[i] = row[0].Neg()
	}
	inv, ok := linsolve.Invert(ba)
	if !ok {
		return nil, ErrSingularBasis
	}
	return &Dictionary{
		h:     h,
		basis: basis.Clone(),
		inv:   inv,
		x:     linsolve.MulVec(inv, negB),
	}, nil
}

// Basis returns a copy of the dictionary's basis.
func (dict *Dictionary) Basis() Basis { return dict.basis.Clone() }

// Vertex returns a copy of the current vertex x, d coordinates.
func (dict *Dictionary) Vertex() []rational.Rational {
	out := make([]rational.Rational, len(dict.x))
	copy(out, dict.x)
	return out
}

// Slack returns b_i + a_i·x for row i: zero for basis rows, non-negative for
// all rows iff the dictionary is feasible.
func (dict *Dictionary) Slack(i int) rational.Rational {
	row := dict.h.RowCopy(i)
	return row[0].Add(linsolve.Dot(row[1:], dict.x))
}

func (dict *Dictionary) dim() int { return len(dict.basis) }

func (dict *Dictionary) nonBasicRows() []int {
	m := dict.h.Rows()
	out := make([]int, 0, m-dict.dim())
	for i := 0; i < m; i++ {
		if !dict.basis.Contains(i) {
			out = append(out, i)
		}
	}
	return out
}

// ChildrenBases returns every neighbour basis reachable by one lexicographic
// pivot, ascending lex order of their sorted row-index tuples.
func (dict *Dictionary) ChildrenBases() []Basis {
	d := dict.dim()
	nonBasic := dict.nonBasicRows()
	var candidates []Basis

	for _, e := range nonBasic {
		ae := dict.h.RowCopy(e)[1:]
		se := dict.Slack(e)
		for l := 0; l < d; l++ {
			u := dict.inv.ColCopy(l)
			denom := linsolve.Dot(ae, u)
			if denom.Sign() >= 0 {
				continue // require denom < 0
			}
			feasible := true
			for _, j := range nonBasic {
				if j == e {
					continue
				}
				aj := dict.h.RowCopy(j)[1:]
				sj := dict.Slack(j)
				ratio, _ := linsolve.Dot(aj, u).Neg().Div(denom) // denom != 0
				if sj.Add(se.Mul(ratio)).Sign() < 0 {
					feasible = false
					break
				}
			}
			if feasible {
				candidates = append(candidates, dict.basis.replaced(l, e))
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Less(candidates[j]) })
	return candidates
}

// ParentBasis returns the lex-smallest neighbour strictly less than the
// current basis, or (nil, false) if this basis is the root.
func (dict *Dictionary) ParentBasis() (Basis, bool) {
	children := dict.ChildrenBases() // ascending lex order
	if len(children) == 0 {
		return nil, false
	}
	if children[0].Less(dict.basis) {
		return children[0], true
	}
	return nil, false
}

// RayDirections returns the canonical direction of every extreme ray
// incident to this vertex. Column l of the basis inverse is the edge
// direction that loosens basis row l while keeping the other basis rows
// tight; the edge is an extreme ray when no non-basic row decreases along it.
func (dict *Dictionary) RayDirections() [][]rational.Rational {
	d := dict.dim()
	nonBasic := dict.nonBasicRows()
	var rays [][]rational.Rational

	for l := 0; l < d; l++ {
		dx := dict.inv.ColCopy(l)
		bounded := false
		for _, j := range nonBasic {
			aj := dict.h.RowCopy(j)[1:]
			if linsolve.Dot(aj, dx).Sign() < 0 {
				bounded = true
				break
			}
		}
		if !bounded {
			rays = append(rays, rational.CanonicalizeIntegerVector(dx))
		}
	}
	return rays
}
