// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enum

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"

	"gonum.org/v1/polytope/linsolve"
	"gonum.org/v1/polytope/matrix"
	"gonum.org/v1/polytope/polyhedron"
	"gonum.org/v1/polytope/rational"
)

// liftedRow is one row of the V-representation lifted matrix: a vertex
// ([1|x]) or a ray ([0|r]), tagged by its original input position so the
// cobasis tie-break can respect input order.
type liftedRow struct {
	row    []rational.Rational
	vertex bool
	index  int
}

// FacetEnumerate computes the dual H-representation of the polyhedron v,
// splitting it into vertices and extreme rays first. If there are fewer
// than d lifted rows in total, it returns an empty HResult.
func FacetEnumerate(v polyhedron.VPolyhedron, cfg Config) (HResult, error) {
	log := cfg.logger()

	verts, rays, err := v.Split()
	if err != nil {
		return HResult{}, errors.Wrap(err, "enum: facet enumeration")
	}

	lifted := make([]liftedRow, 0, len(verts)+len(rays))
	for i, v := range verts {
		row := make([]rational.Rational, len(v)+1)
		row[0] = rational.One()
		copy(row[1:], v)
		lifted = append(lifted, liftedRow{row: row, vertex: true, index: i})
	}
	for i, r := range rays {
		row := make([]rational.Rational, len(r)+1)
		row[0] = rational.Zero()
		copy(row[1:], r)
		lifted = append(lifted, liftedRow{row: row, vertex: false, index: i})
	}

	empty := HResult{H: polyhedron.NewHPolyhedron(polyhedron.FromRows(nil))}
	if len(lifted) == 0 {
		return empty, nil
	}
	d := len(lifted[0].row) - 1
	if len(lifted) < d {
		return empty, nil
	}

	seen := make(map[string]found)

	gen := combin.NewCombinationGenerator(len(lifted), d)
	idx := make([]int, d)
	for gen.Next() {
		gen.Combination(idx)

		sub := matrix.NewDense(d, d+1)
		for i, li := range idx {
			for j, v := range lifted[li].row {
				sub.Set(i, j, v)
			}
		}

		ns, ok := linsolve.Nullspace1(sub)
		if !ok {
			continue
		}

		h := ns
		if !orientationValid(h, lifted) {
			h = negate(h)
			if !orientationValid(h, lifted) {
				continue
			}
		}

		canon := rational.CanonicalizeUnitVector(h)
		// Dividing by a negative first entry reverses the halfspace; flip it
		// back so the first nonzero entry is -1 and the orientation holds.
		for _, e := range h {
			if !e.IsZero() {
				if e.Sign() < 0 {
					canon = negate(canon)
				}
				break
			}
		}
		key := rational.VectorKey(canon)
		if _, ok := seen[key]; ok {
			continue
		}

		cobasis := lexMinCobasis(canon, lifted, d)
		seen[key] = found{h: canon, cobasis: cobasis}
		log.Debug().Str("facet", key).Ints("cobasis", cobasis).Msg("facet discovered")
	}

	var facets [][]rational.Rational
	for _, f := range seen {
		facets = append(facets, f.h)
	}

	sort.Slice(facets, func(i, j int) bool {
		return facetLess(facets[i], facets[j], seen)
	})

	var stats EnumStats
	stats.Facets = len(facets)
	stats.Bases = binomial(len(lifted), d)
	if cfg.PrintCobasis && len(facets) > 0 {
		last := facets[len(facets)-1]
		stats.LastCobasis = seen[rational.VectorKey(last)].cobasis
	}

	return HResult{
		H:     polyhedron.NewHPolyhedron(polyhedron.FromRows(facets)),
		Stats: stats,
	}, nil
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}

// orientationValid reports whether h = (a0, a) satisfies a0 + a·x >= 0 for
// every vertex and a·r >= 0 for every ray.
func orientationValid(h []rational.Rational, lifted []liftedRow) bool {
	for _, li := range lifted {
		if linsolve.Dot(h, li.row).Sign() < 0 {
			return false
		}
	}
	return true
}

func negate(h []rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(h))
	for i, v := range h {
		out[i] = v.Neg()
	}
	return out
}

// lexMinCobasis finds the lex-first d-subset of vertices tight on h (by
// input order) that is affinely independent, i.e. the rank of their [1|x]
// rows equals d. If fewer than d tight vertices exist, every tight vertex is
// returned (the facet is unbounded).
func lexMinCobasis(h []rational.Rational, lifted []liftedRow, d int) []int {
	var tight []liftedRow
	for _, li := range lifted {
		if !li.vertex {
			continue
		}
		if linsolve.Dot(h, li.row).IsZero() {
			tight = append(tight, li)
		}
	}
	sort.Slice(tight, func(i, j int) bool { return tight[i].index < tight[j].index })

	if len(tight) <= d {
		out := make([]int, len(tight))
		for i, li := range tight {
			out[i] = li.index
		}
		return out
	}

	var chosen []liftedRow
	for _, li := range tight {
		candidate := append(append([]liftedRow{}, chosen...), li)
		m := matrix.NewDense(len(candidate), d+1)
		for i, c := range candidate {
			m.SetRow(i, c.row)
		}
		if linsolve.Rank(m) == len(candidate) {
			chosen = candidate
			if len(chosen) == d {
				break
			}
		}
	}
	out := make([]int, len(chosen))
	for i, li := range chosen {
		out[i] = li.index
	}
	return out
}

// facetLess orders facets so facets through the origin (a0 = 0) sort first,
// then lex-min cobasis ascending, then canonical-row string as a tiebreak.
func facetLess(a, b []rational.Rational, seen map[string]found) bool {
	aZero := a[0].IsZero()
	bZero := b[0].IsZero()
	if aZero != bZero {
		return aZero
	}
	ca := seen[rational.VectorKey(a)].cobasis
	cb := seen[rational.VectorKey(b)].cobasis
	for i := 0; i < len(ca) && i < len(cb); i++ {
		if ca[i] != cb[i] {
			return ca[i] < cb[i]
		}
	}
	if len(ca) != len(cb) {
		return len(ca) < len(cb)
	}
	return rational.VectorKey(a) < rational.VectorKey(b)
}

// found records a discovered canonical facet normal together with its
// lex-min cobasis, keyed by the normal's canonical string.
type found struct {
	h       []rational.Rational
	cobasis []int
}
