// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enum

import "gonum.org/v1/polytope/polyhedron"

// EnumStats accumulates the counters the driver reports in its trailing
// totals line.
type EnumStats struct {
	Vertices        int
	Rays            int
	Bases           int
	IntegerVertices int
	Facets          int
	MaxDepth        int

	// LastCobasis holds the most recently computed cobasis: the basis of the
	// last basis visited by ReverseSearch, or the cobasis of the last facet
	// in FacetEnumerate's output order. Populated only when
	// Config.PrintCobasis is set.
	LastCobasis []int
}

// VResult is the outcome of the H→V reverse search: the vertex and
// extreme-ray set lifted into a single VPolyhedron, with run statistics.
type VResult struct {
	V     polyhedron.VPolyhedron
	Stats EnumStats
}

// HResult is the outcome of the V→H facet enumerator: the distinct
// supporting halfspaces lifted into an HPolyhedron, in the facet
// enumerator's output order, with run statistics.
type HResult struct {
	H     polyhedron.HPolyhedron
	Stats EnumStats
}
