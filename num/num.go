// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides the swappable scalar backend shared by the
// bound, interval, linexpr, poly and octagon packages. A single build
// of a client analyzer selects exactly one backend (BigInt, BigRat,
// Int64, Rat64, Float64 or ExtFloat) and every abstract-domain value
// is parameterized over it.
package num

// Scalar is the arithmetic surface every backend implements. Generic
// algorithms elsewhere in this module are written against Scalar[S]
// rather than against any one concrete backend, following the
// teacher's pattern of hiding the numeric representation behind a
// uniform interface (mat64.Matrix does the same for matrix storage).
type Scalar[S any] interface {
	// Neg returns -s.
	Neg() S
	// Abs returns |s|.
	Abs() S
	// Add returns s+o.
	Add(o S) S
	// Sub returns s-o.
	Sub(o S) S
	// Mul returns s*o.
	Mul(o S) S
	// DivExact returns s/o and true when the division is exact for
	// this backend. Integer backends are not closed under /2 and
	// return ok=false for a non-exact result; callers that receive
	// ok=false must treat the operation as incomplete (spec §4.1).
	DivExact(o S) (q S, exact bool)
	// FDiv returns the floor of s/o.
	FDiv(o S) S
	// CDiv returns the ceiling of s/o.
	CDiv(o S) S
	// Gcd returns a non-negative greatest common divisor of s and o.
	Gcd(o S) S
	// Mod returns s mod o (sign of o, Euclidean for integer backends).
	Mod(o S) S
	// Floor returns the greatest integer value <= s, represented in
	// the same backend (a no-op for the integer backends).
	Floor() S
	// Ceil returns the least integer value >= s, represented in the
	// same backend (a no-op for the integer backends).
	Ceil() S
	// Half returns s/2 and whether that division was exact. Integer
	// backends report ok=false on an odd s (spec §4.1: "not closed
	// under /2"); linexpr's quasilinearization center/radius
	// computation is the sole caller.
	Half() (S, bool)
	// Cmp returns -1, 0, +1 as s is less than, equal to, or greater
	// than o.
	Cmp(o S) int
	// Sgn returns -1, 0, +1 as s is negative, zero, or positive.
	Sgn() int
	// IsZero reports whether s is the additive identity.
	IsZero() bool
	// String renders s for diagnostics and test failures.
	String() string
	// FromInt64 manufactures the backend's representation of n. It is
	// an instance method (Go generics have no static constructors) so
	// generic code can write `var z S; one := z.FromInt64(1)` to reach
	// a literal without depending on a concrete backend.
	FromInt64(n int64) S
}

// Backend identifies a concrete Scalar implementation, used only for
// diagnostics (e.g. naming the active backend in a panic message);
// generic code never switches on it.
type Backend int

const (
	BackendBigInt Backend = iota
	BackendBigRat
	BackendInt64
	BackendRat64
	BackendFloat64
	BackendExtFloat
)

func (b Backend) String() string {
	switch b {
	case BackendBigInt:
		return "bigint"
	case BackendBigRat:
		return "bigrat"
	case BackendInt64:
		return "int64"
	case BackendRat64:
		return "rat64"
	case BackendFloat64:
		return "float64"
	case BackendExtFloat:
		return "extfloat"
	default:
		return "unknown"
	}
}

// Traits describes the static exactness properties of a backend, the
// Go rendition of spec §9's "associated constants" (num_incomplete,
// num_safe, …).
type Traits struct {
	// Exact is true when arithmetic never loses precision (BigInt,
	// BigRat). False for Int64, Rat64 (overflow), Float64, ExtFloat
	// (rounding).
	Exact bool
	// Incomplete is true when the backend is not closed under exact
	// division (integer backends): DivExact may report ok=false.
	Incomplete bool
	// Safe is true when arithmetic overflow is detected rather than
	// silently wrapping (big.Int/big.Rat are unbounded and hence
	// always safe; the float backends saturate to ±Inf rather than
	// overflow silently and are also considered safe; only the fixed
	// -width integer/rational native backends are unsafe).
	Safe bool
}
