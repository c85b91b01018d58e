// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rational provides an immutable, exact rational number built on
// math/big, and the total field arithmetic the rest of this module is
// parametrised over.
package rational
