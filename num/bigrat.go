// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math/big"

// BigRat is the exact, arbitrary-precision rational backend. It is
// closed under division (DivExact always succeeds on a nonzero
// divisor) so Traits().Incomplete is false, unlike the integer
// backends.
type BigRat struct {
	v *big.Rat
}

func NewBigRat(num, den int64) BigRat {
	return BigRat{v: big.NewRat(num, den)}
}

func NewBigRatFromBig(x *big.Rat) BigRat {
	if x == nil {
		x = new(big.Rat)
	}
	return BigRat{v: x}
}

func (a BigRat) Big() *big.Rat { return new(big.Rat).Set(a.v) }

func (a BigRat) Neg() BigRat { return BigRat{v: new(big.Rat).Neg(a.v)} }
func (a BigRat) Abs() BigRat { return BigRat{v: new(big.Rat).Abs(a.v)} }

func (a BigRat) Add(b BigRat) BigRat { return BigRat{v: new(big.Rat).Add(a.v, b.v)} }
func (a BigRat) Sub(b BigRat) BigRat { return BigRat{v: new(big.Rat).Sub(a.v, b.v)} }
func (a BigRat) Mul(b BigRat) BigRat { return BigRat{v: new(big.Rat).Mul(a.v, b.v)} }

func (a BigRat) DivExact(b BigRat) (BigRat, bool) {
	if b.IsZero() {
		return BigRat{v: new(big.Rat)}, false
	}
	return BigRat{v: new(big.Rat).Quo(a.v, b.v)}, true
}

// FDiv and CDiv round the exact rational quotient to the enclosing
// integer, expressed as a rational (integral) value, matching the
// role these operations play for rational coefficient denominators.
func (a BigRat) FDiv(b BigRat) BigRat {
	q := new(big.Rat).Quo(a.v, b.v)
	num := new(big.Int).Quo(q.Num(), q.Denom())
	if q.Sign() < 0 && new(big.Int).Mul(num, q.Denom()).Cmp(q.Num()) != 0 {
		num.Sub(num, big.NewInt(1))
	}
	return BigRat{v: new(big.Rat).SetInt(num)}
}

func (a BigRat) CDiv(b BigRat) BigRat {
	f := a.FDiv(b)
	if f.Mul(b).Cmp(a) == 0 {
		return f
	}
	return f.Add(NewBigRat(1, 1))
}

// Gcd on rationals is defined componentwise on reduced numerators,
// following the convention that gcd(p1/q, p2/q) over a common
// denominator reduces to gcd(p1,p2)/q; used only by normalization
// code that already cleared denominators, so both operands are
// expected to be integral.
func (a BigRat) Gcd(b BigRat) BigRat {
	ga := new(big.Int).Abs(a.v.Num())
	gb := new(big.Int).Abs(b.v.Num())
	g := new(big.Int).GCD(nil, nil, ga, gb)
	return BigRat{v: new(big.Rat).SetInt(g)}
}

func (a BigRat) Mod(b BigRat) BigRat {
	f := a.FDiv(b)
	return a.Sub(f.Mul(b))
}

func (a BigRat) Floor() BigRat {
	num := new(big.Int).Quo(a.v.Num(), a.v.Denom())
	if a.v.Sign() < 0 && new(big.Int).Mul(num, a.v.Denom()).Cmp(a.v.Num()) != 0 {
		num.Sub(num, big.NewInt(1))
	}
	return BigRat{v: new(big.Rat).SetInt(num)}
}

func (a BigRat) Ceil() BigRat {
	f := a.Floor()
	if f.Cmp(a) == 0 {
		return f
	}
	return f.Add(NewBigRat(1, 1))
}

func (a BigRat) Half() (BigRat, bool) {
	return BigRat{v: new(big.Rat).Quo(a.v, big.NewRat(2, 1))}, true
}

func (a BigRat) Cmp(b BigRat) int { return a.v.Cmp(b.v) }
func (a BigRat) Sgn() int         { return a.v.Sign() }
func (a BigRat) IsZero() bool     { return a.v.Sign() == 0 }
func (a BigRat) String() string   { return a.v.RatString() }

func (a BigRat) Equal(b BigRat) bool { return a.v.Cmp(b.v) == 0 }

var bigRatTraits = Traits{Exact: true, Incomplete: false, Safe: true}

func (BigRat) BackendTraits() Traits { return bigRatTraits }

func (BigRat) FromInt64(n int64) BigRat { return NewBigRat(n, 1) }
