// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"strconv"
)

// Float64 is the native double-precision backend. Arithmetic
// over-approximates (Traits().Exact is false); rounding is always
// performed so that bounds built from Float64 remain sound (addition
// rounds toward +Inf when used as an upper bound by the bound
// package, which is responsible for the directional rounding, not
// this type).
type Float64 float64

func NewFloat64(x float64) Float64 { return Float64(x) }

func (a Float64) Neg() Float64 { return -a }
func (a Float64) Abs() Float64 { return Float64(math.Abs(float64(a))) }

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }

func (a Float64) DivExact(b Float64) (Float64, bool) {
	if b == 0 {
		return 0, false
	}
	q := a / b
	return q, q*b == a
}

func (a Float64) FDiv(b Float64) Float64 { return Float64(math.Floor(float64(a / b))) }
func (a Float64) CDiv(b Float64) Float64 { return Float64(math.Ceil(float64(a / b))) }

func (a Float64) Gcd(b Float64) Float64 { return Float64(math.Abs(float64(a))) }

func (a Float64) Mod(b Float64) Float64 { return Float64(math.Mod(float64(a), float64(b))) }

func (a Float64) Floor() Float64 { return Float64(math.Floor(float64(a))) }
func (a Float64) Ceil() Float64  { return Float64(math.Ceil(float64(a))) }

func (a Float64) Half() (Float64, bool) { return a / 2, true }

func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Float64) Sgn() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

func (a Float64) IsZero() bool     { return a == 0 }
func (a Float64) String() string   { return strconv.FormatFloat(float64(a), 'g', -1, 64) }
func (a Float64) Equal(b Float64) bool { return a == b }

var float64Traits = Traits{Exact: false, Incomplete: false, Safe: true}

func (Float64) BackendTraits() Traits { return float64Traits }

func (Float64) FromInt64(n int64) Float64 { return Float64(n) }
