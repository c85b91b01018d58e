// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsolve implements exact Gauss-Jordan linear algebra over
// rational.Rational matrices: solving, inversion, rank, and a one-dimensional
// nullspace vector. Every routine is stateless and terminates in finite
// arithmetic — no floating point is ever consulted.
//
// The naming mirrors gonum.org/v1/gonum/linsolve, which solves the same kind
// of system iteratively over float64; this package solves it directly and
// exactly, which the small, d-bounded systems the enumerator builds always
// afford.
package linsolve
