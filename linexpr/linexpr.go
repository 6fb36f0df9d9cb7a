// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linexpr implements spec §4.2's linearization service: an
// interval linear expression over a box, its evaluation, and
// quasilinearization (folding an interval coefficient into a point
// coefficient plus an interval remainder in the constant term).
package linexpr

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/num"
)

// Term is one (dimension, interval-coefficient) pair of an Expr. Point
// is precomputed so Eval can shortcut to a scaled addition instead of
// full interval multiplication (spec §4.2).
type Term[S num.Scalar[S]] struct {
	Dim    int
	Coeff  interval.Interval[S]
	IsPoint bool
}

// NewTerm builds a Term, computing IsPoint from Coeff.
func NewTerm[S num.Scalar[S]](dim int, coeff interval.Interval[S]) Term[S] {
	return Term[S]{Dim: dim, Coeff: coeff, IsPoint: coeff.IsPoint()}
}

// Expr is an interval-constant plus an ordered sequence of terms over
// distinct dimensions (spec §3: "Interval linear expression").
type Expr[S num.Scalar[S]] struct {
	Const interval.Interval[S]
	Terms []Term[S]
}

// Box is an environment of per-dimension intervals used to evaluate
// or quasilinearize an Expr.
type Box[S num.Scalar[S]] []interval.Interval[S]

// pointValue returns the (equal) lower==upper value of a point
// interval coefficient.
func pointValue[S num.Scalar[S]](iv interval.Interval[S]) S {
	v, _ := iv.Lower()
	return v
}

// scaleByPoint returns c·iv where c is an exact scalar, computed as a
// direct bound-scaled addition rather than going through the general
// four-corner BoundsMul (spec §4.2: "special-casing point coefficients
// to a bound-scaled addition").
func scaleByPoint[S num.Scalar[S]](c S, iv interval.Interval[S]) interval.Interval[S] {
	lo, loOk := iv.Lower()
	hi := iv.Upper()
	switch c.Sgn() {
	case 0:
		return interval.Point(c) // the zero value of S, scaled
	case 1:
		var newLo bound.Bound[S]
		if loOk {
			newLo = bound.Finite(lo.Mul(c))
		} else {
			newLo = bound.Infinity[S]()
		}
		var newHi bound.Bound[S]
		if hi.IsInfinity() {
			newHi = bound.Infinity[S]()
		} else {
			v, _ := hi.Value()
			newHi = bound.Finite(v.Mul(c))
		}
		return interval.FromBounds(newLo, newHi)
	default: // negative: bounds swap sides
		var newLo bound.Bound[S]
		if hi.IsInfinity() {
			newLo = bound.Infinity[S]()
		} else {
			v, _ := hi.Value()
			newLo = bound.Finite(v.Mul(c))
		}
		var newHi bound.Bound[S]
		if loOk {
			newHi = bound.Finite(lo.Mul(c))
		} else {
			newHi = bound.Infinity[S]()
		}
		return interval.FromBounds(newLo, newHi)
	}
}

// Eval evaluates expr term-by-term against box, short-circuiting once
// the running sum reaches top (spec §4.2).
func Eval[S num.Scalar[S]](expr Expr[S], box Box[S]) interval.Interval[S] {
	acc := expr.Const
	for _, term := range expr.Terms {
		if acc.IsTop() {
			return acc
		}
		xi := box[term.Dim]
		var contrib interval.Interval[S]
		if term.IsPoint {
			contrib = scaleByPoint(pointValue(term.Coeff), xi)
		} else {
			contrib = interval.BoundsMul(term.Coeff, xi)
		}
		acc = acc.Add(contrib)
	}
	return acc
}
