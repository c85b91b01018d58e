// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyhedron defines the two dual representations of a convex
// polyhedron — HPolyhedron (halfspaces) and VPolyhedron (vertices and
// extreme rays) — as thin, row-classifying wrappers over matrix.Dense.
package polyhedron
