// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

// ErrShapeMismatch is the panic value used when a caller passes operands
// whose dimensions are incompatible with the requested operation (a square
// solve given a non-square matrix, a vector of the wrong length, and so on).
// Shape mismatches are a programmer error, not a data condition a caller
// should recover from.
var ErrShapeMismatch = shapeError("linsolve: shape mismatch")

type shapeError string

func (e shapeError) Error() string { return string(e) }
