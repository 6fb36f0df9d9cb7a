// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math/big"

// BigInt is the exact, arbitrary-precision integer backend. It is the
// reference backend: every operation is exact, so Traits().Exact is
// true and Traits().Incomplete is true only because integer division
// is still partial (DivExact fails on a non-multiple).
type BigInt struct {
	v *big.Int
}

// NewBigInt wraps x; x is not aliased by the returned value.
func NewBigInt(x int64) BigInt {
	return BigInt{v: big.NewInt(x)}
}

// NewBigIntFromBig takes ownership of x (destructive, per spec §9's
// single-owner convention); the caller must not mutate x afterwards.
func NewBigIntFromBig(x *big.Int) BigInt {
	if x == nil {
		x = new(big.Int)
	}
	return BigInt{v: x}
}

func (a BigInt) Big() *big.Int { return new(big.Int).Set(a.v) }

func (a BigInt) Neg() BigInt { return BigInt{v: new(big.Int).Neg(a.v)} }
func (a BigInt) Abs() BigInt { return BigInt{v: new(big.Int).Abs(a.v)} }

func (a BigInt) Add(b BigInt) BigInt { return BigInt{v: new(big.Int).Add(a.v, b.v)} }
func (a BigInt) Sub(b BigInt) BigInt { return BigInt{v: new(big.Int).Sub(a.v, b.v)} }
func (a BigInt) Mul(b BigInt) BigInt { return BigInt{v: new(big.Int).Mul(a.v, b.v)} }

func (a BigInt) DivExact(b BigInt) (BigInt, bool) {
	if b.IsZero() {
		return BigInt{v: new(big.Int)}, false
	}
	q, r := new(big.Int).QuoRem(a.v, b.v, new(big.Int))
	return BigInt{v: q}, r.Sign() == 0
}

func (a BigInt) FDiv(b BigInt) BigInt {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(a.v, b.v, m) // Euclidean; adjust to floor for negative divisor
	if b.v.Sign() < 0 && m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return BigInt{v: q}
}

func (a BigInt) CDiv(b BigInt) BigInt {
	f := a.FDiv(b)
	if f.Mul(b).Cmp(a) == 0 {
		return f
	}
	return f.Add(NewBigInt(1))
}

func (a BigInt) Gcd(b BigInt) BigInt {
	return BigInt{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.v), new(big.Int).Abs(b.v))}
}

func (a BigInt) Mod(b BigInt) BigInt {
	m := new(big.Int).Mod(a.v, new(big.Int).Abs(b.v))
	return BigInt{v: m}
}

func (a BigInt) Floor() BigInt { return a }
func (a BigInt) Ceil() BigInt  { return a }

func (a BigInt) Half() (BigInt, bool) {
	two := big.NewInt(2)
	q, r := new(big.Int).QuoRem(a.v, two, new(big.Int))
	return BigInt{v: q}, r.Sign() == 0
}

func (a BigInt) Cmp(b BigInt) int { return a.v.Cmp(b.v) }
func (a BigInt) Sgn() int         { return a.v.Sign() }
func (a BigInt) IsZero() bool     { return a.v.Sign() == 0 }
func (a BigInt) String() string   { return a.v.String() }

// Equal supports github.com/google/go-cmp comparisons in tests.
func (a BigInt) Equal(b BigInt) bool { return a.v.Cmp(b.v) == 0 }

var bigIntTraits = Traits{Exact: true, Incomplete: true, Safe: true}

func (BigInt) BackendTraits() Traits { return bigIntTraits }

func (BigInt) FromInt64(n int64) BigInt { return NewBigInt(n) }
