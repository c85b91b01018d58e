// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

// ErrIndexOutOfRange is the panic value used by At and Set when a row or
// column index falls outside the matrix's dimensions. Out-of-range access is
// a programmer error, not a recoverable data condition, so it panics rather
// than returning an error — mirroring gonum.org/v1/gonum/mat's
// panic(ErrShape) convention.
var ErrIndexOutOfRange = indexError("matrix: index out of range")

// ErrNegativeDim is the panic value used by NewDense when r or c is negative.
var ErrNegativeDim = indexError("matrix: negative dimension")

type indexError string

func (e indexError) Error() string { return string(e) }
