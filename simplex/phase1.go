// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"gonum.org/v1/gonum/stat/combin"

	"gonum.org/v1/polytope/matrix"
)

// FindFeasibleBasis returns the lexicographically smallest feasible basis of
// h, i.e. the smallest d-subset of row indices whose column submatrix is
// non-singular and whose induced dictionary has every slack non-negative.
//
// This walks d-subsets of {0, ..., m-1} in ascending combinadic order via
// combin.CombinationGenerator, rather than pivoting artificial variables
// through a cost row: since combin already enumerates subsets in the same
// ascending lex order the reverse-search root basis must be smallest under,
// the first subset that yields a non-singular, feasible dictionary is
// correct by construction and no auxiliary objective is needed.
func FindFeasibleBasis(h *matrix.Dense) (Basis, *Dictionary, error) {
	m := h.Rows()
	d := h.Cols() - 1
	if d <= 0 || m < d {
		return nil, nil, ErrInfeasible
	}

	gen := combin.NewCombinationGenerator(m, d)
	idx := make([]int, d)
	for gen.Next() {
		gen.Combination(idx)
		basis := NewBasis(idx)
		dict, err := NewDictionary(h, basis)
		if err != nil {
			continue // singular: skip, per ErrSingularBasis contract
		}
		if dictionaryIsFeasible(dict, basis) {
			return basis, dict, nil
		}
	}
	return nil, nil, ErrInfeasible
}

func dictionaryIsFeasible(dict *Dictionary, basis Basis) bool {
	m := dict.h.Rows()
	for i := 0; i < m; i++ {
		if basis.Contains(i) {
			continue
		}
		if dict.Slack(i).Sign() < 0 {
			return false
		}
	}
	return true
}
