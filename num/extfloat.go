// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "math/big"

// extPrec is the working precision, in bits, used to approximate the
// C "long double" backend. Go has no native extended-precision float,
// so ExtFloat reuses math/big's arbitrary-precision big.Float at a
// fixed precision wider than float64's 53 bits — the same type the
// teacher's stat/combin package already imports from math/big for
// exact combinatorics, repurposed here for rounded rather than exact
// arithmetic.
const extPrec = 80

// ExtFloat is the extended-precision float backend. Like Float64, it
// over-approximates (Traits().Exact is false), but with a wider
// mantissa than float64.
type ExtFloat struct {
	v *big.Float
}

func NewExtFloat(x float64) ExtFloat {
	return ExtFloat{v: new(big.Float).SetPrec(extPrec).SetFloat64(x)}
}

func newExt(v *big.Float) ExtFloat {
	return ExtFloat{v: v.SetPrec(extPrec)}
}

func (a ExtFloat) Neg() ExtFloat { return newExt(new(big.Float).Neg(a.v)) }
func (a ExtFloat) Abs() ExtFloat { return newExt(new(big.Float).Abs(a.v)) }

func (a ExtFloat) Add(b ExtFloat) ExtFloat { return newExt(new(big.Float).Add(a.v, b.v)) }
func (a ExtFloat) Sub(b ExtFloat) ExtFloat { return newExt(new(big.Float).Sub(a.v, b.v)) }
func (a ExtFloat) Mul(b ExtFloat) ExtFloat { return newExt(new(big.Float).Mul(a.v, b.v)) }

func (a ExtFloat) DivExact(b ExtFloat) (ExtFloat, bool) {
	if b.IsZero() {
		return ExtFloat{v: new(big.Float).SetPrec(extPrec)}, false
	}
	q := newExt(new(big.Float).Quo(a.v, b.v))
	return q, q.Mul(b).Cmp(a) == 0
}

func (a ExtFloat) FDiv(b ExtFloat) ExtFloat {
	q, _ := a.DivExact(b)
	f, _ := q.v.Int(nil)
	r := newExt(new(big.Float).SetInt(f))
	if r.Cmp(q) > 0 {
		r = r.Sub(NewExtFloat(1))
	}
	return r
}

func (a ExtFloat) CDiv(b ExtFloat) ExtFloat {
	f := a.FDiv(b)
	if f.Mul(b).Cmp(a) == 0 {
		return f
	}
	return f.Add(NewExtFloat(1))
}

func (a ExtFloat) Gcd(b ExtFloat) ExtFloat { return a.Abs() }

func (a ExtFloat) Mod(b ExtFloat) ExtFloat {
	f := a.FDiv(b)
	return a.Sub(f.Mul(b))
}

func (a ExtFloat) Floor() ExtFloat {
	i, _ := a.v.Int(nil)
	r := newExt(new(big.Float).SetInt(i))
	if r.Cmp(a) > 0 {
		r = r.Sub(NewExtFloat(1))
	}
	return r
}

func (a ExtFloat) Ceil() ExtFloat {
	f := a.Floor()
	if f.Cmp(a) == 0 {
		return f
	}
	return f.Add(NewExtFloat(1))
}

func (a ExtFloat) Half() (ExtFloat, bool) {
	return newExt(new(big.Float).Quo(a.v, big.NewFloat(2))), true
}

func (a ExtFloat) Cmp(b ExtFloat) int { return a.v.Cmp(b.v) }
func (a ExtFloat) Sgn() int           { return a.v.Sign() }
func (a ExtFloat) IsZero() bool       { return a.v.Sign() == 0 }
func (a ExtFloat) String() string     { return a.v.Text('g', 20) }
func (a ExtFloat) Equal(b ExtFloat) bool { return a.v.Cmp(b.v) == 0 }

var extFloatTraits = Traits{Exact: false, Incomplete: false, Safe: true}

func (ExtFloat) BackendTraits() Traits { return extFloatTraits }

func (ExtFloat) FromInt64(n int64) ExtFloat { return NewExtFloat(float64(n)) }
