// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linexpr

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/num"
)

// Quasilinearize folds each interval coefficient [a,b]·xi, xi∈Ii, into
// either a point coefficient c·xi plus a constant-interval remainder,
// or leaves the term as an interval coefficient, following the
// mid/radius policy of spec §4.2:
//
//  1. a==b (already point): keep as-is.
//  2. Otherwise: c=(a+b)/2, r=(b-a)/2; replace by c·xi, folding
//     r·[-max(|l|,|u|), max(|l|,|u|)] into the constant.
//  3. If xi is unbounded (Ii has an infinite side), the radius term
//     would itself be unbounded; the term is left with its original
//     interval coefficient rather than an unusable infinite constant.
//
// The result is quasilinear: only Const carries an interval; every
// surviving Term.Coeff is a point, except terms intentionally left
// unresolved by rule 3.
func Quasilinearize[S num.Scalar[S]](expr Expr[S], box Box[S]) Expr[S] {
	out := Expr[S]{Const: expr.Const, Terms: make([]Term[S], 0, len(expr.Terms))}
	for _, term := range expr.Terms {
		if term.IsPoint {
			out.Terms = append(out.Terms, term)
			continue
		}

		xi := box[term.Dim]
		lo, loOk := xi.Lower()
		hi := xi.Upper()
		hiV, hiOk := hi.Value()
		a, aOk := term.Coeff.Lower()
		bHi := term.Coeff.Upper()
		bv, bOk := bHi.Value()
		if !loOk || !hiOk || !aOk || !bOk {
			// rule 3: xi (or, defensively, the coefficient) unbounded.
			out.Terms = append(out.Terms, term)
			continue
		}

		c, _ := a.Add(bv).Half()
		r, _ := bv.Sub(a).Half()

		loV, _ := lo.Value()
		mag := loV.Abs()
		if hiV.Abs().Cmp(mag) > 0 {
			mag = hiV.Abs()
		}

		radiusTerm := rTimesSymmetric(r, mag)
		out.Const = out.Const.Add(radiusTerm)
		out.Terms = append(out.Terms, NewTerm(term.Dim, interval.Point(c)))
	}
	return out
}

// rTimesSymmetric returns r·[-mag, mag], mag >= 0.
func rTimesSymmetric[S num.Scalar[S]](r, mag S) interval.Interval[S] {
	p := r.Mul(mag)
	n := r.Neg().Mul(mag)
	if r.Sgn() < 0 {
		return interval.FromBounds(bound.Finite(p), bound.Finite(n))
	}
	return interval.FromBounds(bound.Finite(n), bound.Finite(p))
}
