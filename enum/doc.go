// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enum drives the two traversal algorithms that sit on top of
// package simplex: reverse-search DFS from an H-representation to a
// V-representation, and dual facet enumeration from a V-representation back
// to an H-representation.
package enum
