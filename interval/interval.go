// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval implements spec §3/§4.1's Interval: a pair
// (−inf, sup) of bound.Bound values, plus BoundsMul, the interval
// product routine that preserves the 0·∞ = 0 identity required by
// linexpr's interval-coefficient evaluation.
package interval

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

// Interval is the pair (−inf, sup). The lower limit is stored as its
// own negation (infNeg), following spec §3 so that both sides share
// the single +∞ sentinel bound.Bound provides — there is no separate
// −∞ representation.
type Interval[S num.Scalar[S]] struct {
	infNeg bound.Bound[S] // represents -lower
	sup    bound.Bound[S]
}

// FromBounds builds [lo, hi]. lo uses the same +∞ sentinel as hi but
// means "unbounded below" (−∞) in this position; Bound.Neg treats its
// own sentinel as a fixed point so that meaning survives the internal
// negation used to store the lower limit.
func FromBounds[S num.Scalar[S]](lo, hi bound.Bound[S]) Interval[S] {
	return Interval[S]{infNeg: lo.Neg(), sup: hi}
}

// Top returns (−∞, +∞).
func Top[S num.Scalar[S]]() Interval[S] {
	return Interval[S]{infNeg: bound.Infinity[S](), sup: bound.Infinity[S]()}
}

// Point returns the degenerate interval [v, v].
func Point[S num.Scalar[S]](v S) Interval[S] {
	return Interval[S]{infNeg: bound.Finite(v.Neg()), sup: bound.Finite(v)}
}

// Lower returns the lower bound and whether it is finite.
func (iv Interval[S]) Lower() (bound.Bound[S], bool) {
	if iv.infNeg.IsInfinity() {
		return bound.Bound[S]{}, false
	}
	return iv.infNeg.Neg(), true
}

// Upper returns the upper bound (always valid; +∞ is representable
// directly).
func (iv Interval[S]) Upper() bound.Bound[S] { return iv.sup }

// IsTop reports whether iv is unbounded on both sides.
func (iv Interval[S]) IsTop() bool { return iv.infNeg.IsInfinity() && iv.sup.IsInfinity() }

// IsBottom reports whether iv is empty: both limits finite and
// sup < lower, i.e. sup + infNeg < 0 (spec §3 canonicalization).
func (iv Interval[S]) IsBottom() bool {
	if iv.infNeg.IsInfinity() || iv.sup.IsInfinity() {
		return false
	}
	lo, _ := iv.infNeg.Value()
	hi, _ := iv.sup.Value()
	return hi.Cmp(lo.Neg()) < 0
}

// IsPoint reports whether iv is a single finite value.
func (iv Interval[S]) IsPoint() bool {
	if iv.infNeg.IsInfinity() || iv.sup.IsInfinity() {
		return false
	}
	lo, _ := iv.infNeg.Value()
	hi, _ := iv.sup.Value()
	return hi.Cmp(lo.Neg()) == 0
}

// CanonicalizeInteger tightens iv for an integer-typed dimension:
// round the lower bound up and the upper bound down to integers
// (spec §3). Rounding the lower bound up is expressed as flooring its
// negated representation, matching bound.Bound's "round upward"
// discipline; the upper bound rounds down directly.
func (iv Interval[S]) CanonicalizeInteger() Interval[S] {
	return Interval[S]{infNeg: iv.infNeg.Floor(), sup: iv.sup.Floor()}
}

// Leq reports whether iv is contained in o (componentwise ≤ on
// (inf, sup), i.e. o.Lower() <= iv.Lower() and iv.Upper() <= o.Upper()).
func (iv Interval[S]) Leq(o Interval[S]) bool {
	return iv.infNeg.Cmp(o.infNeg) <= 0 && iv.sup.Cmp(o.sup) <= 0
}

// Join returns the smallest interval enclosing both iv and o.
func (iv Interval[S]) Join(o Interval[S]) Interval[S] {
	return Interval[S]{
		infNeg: bound.Max(iv.infNeg, o.infNeg),
		sup:    bound.Max(iv.sup, o.sup),
	}
}

// Meet returns the largest interval contained in both iv and o; the
// caller must check IsBottom afterwards.
func (iv Interval[S]) Meet(o Interval[S]) Interval[S] {
	return Interval[S]{
		infNeg: bound.Min(iv.infNeg, o.infNeg),
		sup:    bound.Min(iv.sup, o.sup),
	}
}

// Neg returns -iv.
func (iv Interval[S]) Neg() Interval[S] {
	return Interval[S]{infNeg: iv.sup.Neg(), sup: iv.infNeg.Neg()}
}

// Add returns iv+o.
func (iv Interval[S]) Add(o Interval[S]) Interval[S] {
	return Interval[S]{infNeg: iv.infNeg.Add(o.infNeg), sup: iv.sup.Add(o.sup)}
}

// Equal supports go-cmp comparisons in tests.
func (iv Interval[S]) Equal(o Interval[S]) bool {
	return iv.infNeg.Equal(o.infNeg) && iv.sup.Equal(o.sup)
}

func (iv Interval[S]) String() string {
	lo, ok := iv.Lower()
	loStr := "-oo"
	if ok {
		loStr = lo.String()
	}
	return "[" + loStr + ", " + iv.sup.String() + "]"
}
