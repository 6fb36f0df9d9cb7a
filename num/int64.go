// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import "strconv"

// Int64 is the native machine-integer backend. Arithmetic overflows
// silently (Traits().Safe is false); clients that need overflow
// detection should select BigInt instead (spec §7: "numerical types
// without overflow guards may silently produce unsound results").
type Int64 int64

func NewInt64(x int64) Int64 { return Int64(x) }

func (a Int64) Neg() Int64 { return -a }
func (a Int64) Abs() Int64 {
	if a < 0 {
		return -a
	}
	return a
}

func (a Int64) Add(b Int64) Int64 { return a + b }
func (a Int64) Sub(b Int64) Int64 { return a - b }
func (a Int64) Mul(b Int64) Int64 { return a * b }

func (a Int64) DivExact(b Int64) (Int64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, a%b == 0
}

func (a Int64) FDiv(b Int64) Int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (a Int64) CDiv(b Int64) Int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

func (a Int64) Gcd(b Int64) Int64 {
	x, y := a.Abs(), b.Abs()
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

func (a Int64) Mod(b Int64) Int64 {
	m := a % b.Abs()
	if m < 0 {
		m += b.Abs()
	}
	return m
}

func (a Int64) Floor() Int64 { return a }
func (a Int64) Ceil() Int64  { return a }

func (a Int64) Half() (Int64, bool) { return a / 2, a%2 == 0 }

func (a Int64) Cmp(b Int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Int64) Sgn() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

func (a Int64) IsZero() bool   { return a == 0 }
func (a Int64) String() string { return strconv.FormatInt(int64(a), 10) }
func (a Int64) Equal(b Int64) bool { return a == b }

var int64Traits = Traits{Exact: false, Incomplete: true, Safe: false}

func (Int64) BackendTraits() Traits { return int64Traits }

func (Int64) FromInt64(n int64) Int64 { return Int64(n) }
