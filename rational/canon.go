// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import "math/big"

// CanonicalizeIntegerVector scales v by the LCM of its denominators, divides
// through by the GCD of the resulting integer entries, and flips the sign of
// the whole vector so the first nonzero entry is positive. It is the
// canonical form used for extreme rays: the unique smallest
// integer representative of the ray's direction, used as a dedup key.
//
// The zero vector is returned unchanged.
func CanonicalizeIntegerVector(v []Rational) []Rational {
	if len(v) == 0 {
		return v
	}
	lcm := big.NewInt(1)
	for _, e := range v {
		lcm = lcmBig(lcm, e.q())
	}
	ints := make([]*big.Int, len(v))
	for i, e := range v {
		scaled := new(big.Int).Mul(e.p(), new(big.Int).Quo(lcm, e.q()))
		ints[i] = scaled
	}
	g := big.NewInt(0)
	for _, n := range ints {
		if n.Sign() == 0 {
			continue
		}
		g = new(big.Int).GCD(nil, nil, g, new(big.Int).Abs(n))
	}
	if g.Sign() == 0 {
		// All-zero vector.
		out := make([]Rational, len(v))
		return out
	}
	negate := false
	for _, n := range ints {
		if n.Sign() != 0 {
			negate = n.Sign() < 0
			break
		}
	}
	out := make([]Rational, len(v))
	for i, n := range ints {
		q := new(big.Int).Quo(n, g)
		if negate {
			q.Neg(q)
		}
		out[i] = NewBigInt(q)
	}
	return out
}

// CanonicalizeUnitVector divides v through by its first nonzero entry, so
// that entry becomes exactly 1. It is the canonical form used for facet
// normals, and leaves v unchanged if it is the zero
// vector.
func CanonicalizeUnitVector(v []Rational) []Rational {
	idx := -1
	for i, e := range v {
		if !e.IsZero() {
			idx = i
			break
		}
	}
	if idx < 0 {
		out := make([]Rational, len(v))
		copy(out, v)
		return out
	}
	pivot := v[idx]
	out := make([]Rational, len(v))
	for i, e := range v {
		d, _ := e.Div(pivot) // pivot is nonzero by construction
		out[i] = d
	}
	return out
}

func lcmBig(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	return new(big.Int).Abs(new(big.Int).Mul(new(big.Int).Quo(a, g), b))
}

// VectorKey returns a stable string key for v, suitable for deduplicating
// canonical vectors in a map. Canonicalize first; VectorKey does not
// normalize on its own.
func VectorKey(v []Rational) string {
	b := make([]byte, 0, 16*len(v))
	for i, e := range v {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, e.String()...)
	}
	return string(b)
}
