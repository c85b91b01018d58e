// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import "errors"

// ErrSingularBasis indicates a candidate basis's column submatrix is
// singular. It is always recovered locally — callers iterating candidate
// bases skip it and move on; it is never surfaced to the driver.
var ErrSingularBasis = errors.New("simplex: basis is singular")

// ErrInfeasible indicates Phase-I found no feasible basis, either because
// every candidate basis failed or because h has fewer rows than columns of A.
// enum.ReverseSearch reports it as an empty result rather than an error.
var ErrInfeasible = errors.New("simplex: system has no feasible basis")

// ErrDegenerateInfeasibility indicates a pivoting-based Phase-I finished
// with an artificial variable still basic. This implementation's Phase-I
// (see phase1.go) has no artificial-variable state and never raises it; the
// value is retained so the error catalog covers any future pivoting-based
// Phase-I.
var ErrDegenerateInfeasibility = errors.New("simplex: phase-I left an artificial basic")
