// Copyright ©2024 The Polytope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rational

import (
	"fmt"
	"hash/fnv"
	"math/big"
	"strings"
)

var bigOne = big.NewInt(1)

// Rational is an immutable exact rational number p/q with q > 0 and
// gcd(|p|, q) = 1. The zero value is the rational 0 and is ready to use:
// every method treats an unset denominator as 1, so a freshly allocated
// []Rational (as DenseMatrix relies on) holds canonical zeros without any
// constructor call.
type Rational struct {
	num big.Int
	den big.Int
}

// Zero returns the rational 0.
func Zero() Rational {
	return Rational{}
}

// One returns the rational 1.
func One() Rational {
	return Rational{num: *big.NewInt(1), den: *big.NewInt(1)}
}

// NewInt64 returns the rational n/1.
func NewInt64(n int64) Rational {
	return Rational{num: *big.NewInt(n)}
}

// NewBigInt returns the rational n/1, copying n.
func NewBigInt(n *big.Int) Rational {
	return Rational{num: *new(big.Int).Set(n)}
}

// New returns the normalized rational num/den, copying both arguments. It
// fails with ErrDivisionByZero if den is zero.
func New(num, den *big.Int) (Rational, error) {
	return normalize(new(big.Int).Set(num), new(big.Int).Set(den))
}

// Parse reads "a" or "a/b" (surrounding whitespace tolerated), where a and b
// are arbitrary-precision signed decimal integers.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, "/", 2)
	num, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: invalid numerator %q: %w", parts[0], ErrInvalidFormat)
	}
	if len(parts) == 1 {
		return NewBigInt(num), nil
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: invalid denominator %q: %w", parts[1], ErrInvalidFormat)
	}
	return New(num, den)
}

// normalize reduces num/den to lowest terms with a positive denominator. It
// takes ownership of num and den.
func normalize(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero
	}
	if num.Sign() == 0 {
		return Rational{}, nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	return Rational{num: *n, den: *d}, nil
}

// p returns the numerator.
func (r Rational) p() *big.Int { return &r.num }

// q returns the denominator, defaulting an unset (zero-value) denominator to 1.
func (r Rational) q() *big.Int {
	if r.den.Sign() == 0 {
		return bigOne
	}
	return &r.den
}

// Num returns a copy of the canonical numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.p()) }

// Den returns a copy of the canonical (positive) denominator.
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.q()) }

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	n := new(big.Int).Add(new(big.Int).Mul(r.p(), s.q()), new(big.Int).Mul(s.p(), r.q()))
	d := new(big.Int).Mul(r.q(), s.q())
	v, _ := normalize(n, d) // d = r.q()*s.q() > 0, never fails
	return v
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	n := new(big.Int).Mul(r.p(), s.p())
	d := new(big.Int).Mul(r.q(), s.q())
	v, _ := normalize(n, d)
	return v
}

// Div returns r / s. It fails with ErrDivisionByZero if s is zero.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	n := new(big.Int).Mul(r.p(), s.q())
	d := new(big.Int).Mul(r.q(), s.p())
	return normalize(n, d)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: *new(big.Int).Neg(r.p()), den: *new(big.Int).Set(r.q())}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rational) Sign() int {
	return r.p().Sign()
}

// IsZero reports whether r is the rational 0.
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// Compare returns -1, 0, or +1 as r is less than, equal to, or greater than s.
// It compares by cross-multiplication, never dividing.
func (r Rational) Compare(s Rational) int {
	lhs := new(big.Int).Mul(r.p(), s.q())
	rhs := new(big.Int).Mul(s.p(), r.q())
	return lhs.Cmp(rhs)
}

// Equal reports whether r and s denote the same rational number.
func (r Rational) Equal(s Rational) bool {
	return r.p().Cmp(s.p()) == 0 && r.q().Cmp(s.q()) == 0
}

// Hash returns a value stable across equal Rationals, suitable for use as a
// map key surrogate (Rational itself is not comparable with == because it
// embeds big.Int).
func (r Rational) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprint(h, r.String())
	return h.Sum64()
}

// String returns the canonical "p" or "p/q" text form.
func (r Rational) String() string {
	if r.q().Cmp(bigOne) == 0 {
		return r.p().String()
	}
	return r.p().String() + "/" + r.q().String()
}
