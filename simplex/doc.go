// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplex implements the H-representation simplex dictionary: lex
// pivoting over feasible bases, extreme-ray extraction, and the Phase-I
// search for a feasible root basis. This is the traversal primitive the
// reverse-search enumerator in package enum drives.
package simplex
