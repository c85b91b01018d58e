// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enum

import (
	"math/big"
	"sort"

	"github.com/pkg/errors"

	"gonum.org/v1/polytope/polyhedron"
	"gonum.org/v1/polytope/rational"
	"gonum.org/v1/polytope/simplex"
)

var bigOne = big.NewInt(1)

// frame is a stack entry: a candidate basis at a given DFS depth.
type frame struct {
	basis simplex.Basis
	depth int
}

// ReverseSearch enumerates the vertices and extreme rays of h, following the
// Avis-Fukuda reverse-search lex arborescence.
//
// If h has no feasible basis, it returns a zero-vertex VResult with no
// error: infeasibility of the H-system itself is not a structural failure of
// the enumerator. Every simplex.ErrInfeasible is handled this way, including
// the one Phase-I returns when m < d; any other Phase-I error is wrapped and
// returned.
//
// Each distinct vertex is emitted once, in DFS pop order, even when several
// degenerate bases share it; the deduplicated rays follow, ordered by their
// canonical key.
func ReverseSearch(h polyhedron.HPolyhedron, cfg Config) (VResult, error) {
	log := cfg.logger()
	ctx := cfg.context()
	hm := h.M

	root, _, err := simplex.FindFeasibleBasis(hm)
	if err != nil {
		if errors.Is(err, simplex.ErrInfeasible) {
			log.Debug().Msg("no feasible root basis")
			return VResult{V: polyhedron.NewVPolyhedron(polyhedron.FromRows(nil))}, nil
		}
		return VResult{}, errors.Wrap(err, "enum: phase-I failed")
	}

	var (
		stack    = []frame{{basis: root, depth: 0}}
		seen     = make(map[string]bool)
		rays     = make(map[string][]rational.Rational)
		vertices [][]rational.Rational
		stats    EnumStats
	)
	seenVertex := make(map[string]bool)

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return VResult{Stats: stats}, errors.Wrap(ctx.Err(), "enum: reverse search cancelled")
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := top.basis.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		dict, err := simplex.NewDictionary(hm, top.basis)
		if err != nil {
			log.Debug().Str("basis", key).Msg("singular basis skipped")
			continue
		}

		stats.Bases++
		if top.depth > stats.MaxDepth {
			stats.MaxDepth = top.depth
		}

		vertex := dict.Vertex()
		if vk := rational.VectorKey(vertex); !seenVertex[vk] {
			seenVertex[vk] = true
			vertices = append(vertices, vertex)
			stats.Vertices++
			if allIntegral(vertex) {
				stats.IntegerVertices++
			}
		}
		if cfg.PrintCobasis {
			stats.LastCobasis = []int(dict.Basis())
		}

		for _, r := range dict.RayDirections() {
			k := rational.VectorKey(r)
			if _, ok := rays[k]; !ok {
				rays[k] = r
				stats.Rays++
			}
		}

		if !cfg.depthAllowed(top.depth + 1) {
			log.Debug().Int("depth", top.depth).Msg("depth cap reached, not expanding")
			continue
		}

		children := dict.ChildrenBases()
		// Push in reverse lex order so the stack (LIFO) pops them in
		// ascending lex order.
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			childDict, err := simplex.NewDictionary(hm, child)
			if err != nil {
				continue
			}
			parent, ok := childDict.ParentBasis()
			if ok && parent.Equal(top.basis) {
				stack = append(stack, frame{basis: child, depth: top.depth + 1})
			}
		}
	}

	// Map-range order over rays is randomized per Go's iteration guarantee,
	// so rays must be re-sorted by their canonical key before leaving this
	// function — otherwise two runs over the same input could emit the ray
	// set in different orders.
	rayKeys := make([]string, 0, len(rays))
	for k := range rays {
		rayKeys = append(rayKeys, k)
	}
	sort.Strings(rayKeys)

	rows := make([][]rational.Rational, 0, len(vertices)+len(rayKeys))
	for _, v := range vertices {
		rows = append(rows, polyhedron.NewVertexRow(v))
	}
	for _, k := range rayKeys {
		rows = append(rows, polyhedron.NewRayRow(rays[k]))
	}

	return VResult{
		V:     polyhedron.NewVPolyhedron(polyhedron.FromRows(rows)),
		Stats: stats,
	}, nil
}

func allIntegral(v []rational.Rational) bool {
	for _, e := range v {
		if e.Den().Cmp(bigOne) != 0 {
			return false
		}
	}
	return true
}
