// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedron

import "errors"

// ErrBadLeadingValue is returned by VPolyhedron.Split when a row's leading
// entry is neither 0 (a ray) nor a positive value (a, possibly scaled,
// vertex); no other leading value is accepted.
var ErrBadLeadingValue = errors.New("polyhedron: row has an invalid leading value")
