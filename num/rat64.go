// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "strconv"

// Rat64 is a native rational backend: a pair of int64 numerator and
// positive int64 denominator, always kept reduced. Unlike BigRat it
// can overflow (Traits().Safe is false) but division is still total
// over nonzero divisors (Traits().Incomplete is false).
type Rat64 struct {
	n, d int64 // d > 0, gcd(|n|,d) == 1
}

func NewRat64(n, d int64) Rat64 {
	if d < 0 {
		n, d = -n, -d
	}
	if n == 0 {
		return Rat64{0, 1}
	}
	g := Int64(n).Abs().Gcd(Int64(d))
	return Rat64{n / int64(g), d / int64(g)}
}

func (a Rat64) Neg() Rat64 { return Rat64{-a.n, a.d} }
func (a Rat64) Abs() Rat64 {
	if a.n < 0 {
		return Rat64{-a.n, a.d}
	}
	return a
}

func (a Rat64) Add(b Rat64) Rat64 { return NewRat64(a.n*b.d+b.n*a.d, a.d*b.d) }
func (a Rat64) Sub(b Rat64) Rat64 { return NewRat64(a.n*b.d-b.n*a.d, a.d*b.d) }
func (a Rat64) Mul(b Rat64) Rat64 { return NewRat64(a.n*b.n, a.d*b.d) }

func (a Rat64) DivExact(b Rat64) (Rat64, bool) {
	if b.n == 0 {
		return Rat64{}, false
	}
	return NewRat64(a.n*b.d, a.d*b.n), true
}

func (a Rat64) FDiv(b Rat64) Rat64 {
	q, _ := a.DivExact(b)
	f := Int64(q.n).FDiv(Int64(q.d))
	return Rat64{int64(f), 1}
}

func (a Rat64) CDiv(b Rat64) Rat64 {
	q, _ := a.DivExact(b)
	c := Int64(q.n).CDiv(Int64(q.d))
	return Rat64{int64(c), 1}
}

// Gcd mirrors BigRat.Gcd: meaningful on integral-valued operands.
func (a Rat64) Gcd(b Rat64) Rat64 {
	return Rat64{int64(Int64(a.n).Abs().Gcd(Int64(b.n).Abs())), 1}
}

func (a Rat64) Mod(b Rat64) Rat64 {
	f := a.FDiv(b)
	return a.Sub(f.Mul(b))
}

func (a Rat64) Floor() Rat64 {
	q := a.n / a.d
	if a.n%a.d != 0 && a.n < 0 {
		q--
	}
	return Rat64{q, 1}
}

func (a Rat64) Ceil() Rat64 {
	f := a.Floor()
	if f.Cmp(a) == 0 {
		return f
	}
	return f.Add(Rat64{1, 1})
}

func (a Rat64) Half() (Rat64, bool) { return NewRat64(a.n, a.d*2), true }

func (a Rat64) Cmp(b Rat64) int {
	lhs := a.n * b.d
	rhs := b.n * a.d
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func (a Rat64) Sgn() int {
	switch {
	case a.n < 0:
		return -1
	case a.n > 0:
		return 1
	default:
		return 0
	}
}

func (a Rat64) IsZero() bool { return a.n == 0 }
func (a Rat64) String() string {
	if a.d == 1 {
		return strconv.FormatInt(a.n, 10)
	}
	return strconv.FormatInt(a.n, 10) + "/" + strconv.FormatInt(a.d, 10)
}
func (a Rat64) Equal(b Rat64) bool { return a.n == b.n && a.d == b.d }

var rat64Traits = Traits{Exact: false, Incomplete: false, Safe: false}

func (Rat64) BackendTraits() Traits { return rat64Traits }

func (Rat64) FromInt64(n int64) Rat64 { return NewRat64(n, 1) }
