// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import "errors"

// ErrDivisionByZero is returned when a value with a zero numerator is used
// as a divisor, or when a rational is constructed with a zero denominator.
var ErrDivisionByZero = errors.New("rational: division by zero")

// ErrInvalidFormat is returned by Parse when the input is not a bare integer
// or a "p/q" pair of arbitrary-precision integers.
var ErrInvalidFormat = errors.New("rational: invalid number format")
