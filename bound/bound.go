// Copyright ©2019 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bound implements a one-sided scalar bound with an explicit
// +∞ sentinel (spec §4.1), generalizing the teacher's
// Bound{Min,Max float64} box-constraint type into the generic
// Bound[S] used throughout interval, linexpr, poly and octagon.
package bound

import "github.com/elazarg/elina/num"

// Bound is a single-sided, possibly infinite scalar value. Interval
// lower bounds are always stored as the Bound of their negation (spec
// §3: "lower interval bounds are stored negated so that rounding is
// always upward"), so both sides of an Interval share the same "this
// value or +∞" representation and the same upward-rounding direction.
type Bound[S num.Scalar[S]] struct {
	inf bool
	val S // meaningful only when !inf
}

// Finite returns a finite bound holding v.
func Finite[S num.Scalar[S]](v S) Bound[S] { return Bound[S]{val: v} }

// Infinity returns +∞.
func Infinity[S num.Scalar[S]]() Bound[S] { return Bound[S]{inf: true} }

// IsInfinity reports whether b is +∞.
func (b Bound[S]) IsInfinity() bool { return b.inf }

// Value returns the finite value of b; the second result is false if
// b is +∞.
func (b Bound[S]) Value() (S, bool) { return b.val, !b.inf }

// Neg returns -b; negating +∞ yields +∞ under the convention that
// Bound never represents -∞ directly — callers track sign
// separately (e.g. Interval stores its lower bound pre-negated).
func (b Bound[S]) Neg() Bound[S] {
	if b.inf {
		return b
	}
	return Finite(b.val.Neg())
}

// Add returns b+o, rounding upward: +∞ plus any finite bound is +∞
// (spec §3 invariant).
func (b Bound[S]) Add(o Bound[S]) Bound[S] {
	if b.inf || o.inf {
		return Infinity[S]()
	}
	return Finite(b.val.Add(o.val))
}

// Mul returns b*o under the convention 0·∞ = 0 (spec §4.1), required
// so that an interval coefficient of exactly zero annihilates an
// unbounded variable rather than propagating +∞.
func (b Bound[S]) Mul(o Bound[S]) Bound[S] {
	switch {
	case b.inf && o.inf:
		return Infinity[S]()
	case b.inf:
		if o.IsZero() {
			return b.zero()
		}
		return Infinity[S]()
	case o.inf:
		if b.IsZero() {
			return b.zero()
		}
		return Infinity[S]()
	default:
		return Finite(b.val.Mul(o.val))
	}
}

func (b Bound[S]) zero() Bound[S] {
	var z S
	return Finite(z.Sub(z))
}

// Floor rounds a finite bound down to the nearest integer scalar;
// +∞ is unaffected. Used by interval canonicalization to tighten an
// integer-typed dimension's bound without disturbing rounding
// direction.
func (b Bound[S]) Floor() Bound[S] {
	if b.inf {
		return b
	}
	return Finite(b.val.Floor())
}

// Ceil rounds a finite bound up to the nearest integer scalar; +∞ is
// unaffected.
func (b Bound[S]) Ceil() Bound[S] {
	if b.inf {
		return b
	}
	return Finite(b.val.Ceil())
}

// IsZero reports whether b is the finite value 0.
func (b Bound[S]) IsZero() bool { return !b.inf && b.val.IsZero() }

// Sgn returns -1, 0 or +1; +∞ always reports +1.
func (b Bound[S]) Sgn() int {
	if b.inf {
		return 1
	}
	return b.val.Sgn()
}

// Cmp compares b and o; +∞ compares greater than every finite value
// and equal to +∞.
func (b Bound[S]) Cmp(o Bound[S]) int {
	switch {
	case b.inf && o.inf:
		return 0
	case b.inf:
		return 1
	case o.inf:
		return -1
	default:
		return b.val.Cmp(o.val)
	}
}

// Min returns the lesser of b and o.
func Min[S num.Scalar[S]](a, b Bound[S]) Bound[S] {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the greater of b and o.
func Max[S num.Scalar[S]](a, b Bound[S]) Bound[S] {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func (b Bound[S]) String() string {
	if b.inf {
		return "+oo"
	}
	return b.val.String()
}

// Equal supports go-cmp comparisons in tests.
func (b Bound[S]) Equal(o Bound[S]) bool {
	return b.inf == o.inf && (b.inf || b.val.Cmp(o.val) == 0)
}
