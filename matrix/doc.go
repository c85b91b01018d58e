// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix provides a dense, mutable, row-major container over
// rational.Rational, the shared storage type for H- and V-representations.
package matrix
