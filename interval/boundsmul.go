// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

// ext is an extended-real endpoint: either a finite signed scalar or
// a signed infinity. It exists only to let BoundsMul reason about the
// sign of an infinite endpoint, which bound.Bound alone cannot
// represent (Bound has a single +∞ sentinel, used by Interval in its
// paired, sign-folded encoding).
type ext[S num.Scalar[S]] struct {
	isInf bool
	neg   bool // meaningful only when isInf
	val   S    // meaningful only when !isInf
}

func lowerExt[S num.Scalar[S]](iv Interval[S]) ext[S] {
	if v, ok := iv.Lower(); ok {
		return ext[S]{val: v}
	}
	return ext[S]{isInf: true, neg: true}
}

func upperExt[S num.Scalar[S]](iv Interval[S]) ext[S] {
	if iv.Upper().IsInfinity() {
		return ext[S]{isInf: true, neg: false}
	}
	v, _ := iv.Upper().Value()
	return ext[S]{val: v}
}

func (e ext[S]) isNeg() bool {
	if e.isInf {
		return e.neg
	}
	return e.val.Sgn() < 0
}

func (e ext[S]) isZero() bool { return !e.isInf && e.val.IsZero() }

// mulExt multiplies two extended-real endpoints, special-casing zero
// so that 0 * ∞ = 0 (spec §4.1), the identity plain IEEE-style
// infinity arithmetic does not provide.
func mulExt[S num.Scalar[S]](a, b ext[S]) ext[S] {
	if !a.isInf && !b.isInf {
		return ext[S]{val: a.val.Mul(b.val)}
	}
	if a.isZero() || b.isZero() {
		var z S
		if !a.isInf {
			z = a.val.Sub(a.val)
		} else {
			z = b.val.Sub(b.val)
		}
		return ext[S]{val: z}
	}
	return ext[S]{isInf: true, neg: a.isNeg() != b.isNeg()}
}

func (e ext[S]) cmp(o ext[S]) int {
	switch {
	case e.isInf && o.isInf:
		switch {
		case e.neg == o.neg:
			return 0
		case e.neg:
			return -1
		default:
			return 1
		}
	case e.isInf:
		if e.neg {
			return -1
		}
		return 1
	case o.isInf:
		if o.neg {
			return 1
		}
		return -1
	default:
		return e.val.Cmp(o.val)
	}
}

func minExt[S num.Scalar[S]](es ...ext[S]) ext[S] {
	m := es[0]
	for _, e := range es[1:] {
		if e.cmp(m) < 0 {
			m = e
		}
	}
	return m
}

func maxExt[S num.Scalar[S]](es ...ext[S]) ext[S] {
	m := es[0]
	for _, e := range es[1:] {
		if e.cmp(m) > 0 {
			m = e
		}
	}
	return m
}

// BoundsMul computes the interval product [lower, upper] = a·b by
// taking the min/max of the four endpoint products, each computed
// with the 0·∞ = 0 convention (spec §4.1). This is the routine
// linexpr.Eval delegates to whenever a term's coefficient is not a
// point value.
func BoundsMul[S num.Scalar[S]](a, b Interval[S]) Interval[S] {
	if a.IsBottom() || b.IsBottom() {
		return a // callers should not multiply by a bottom interval; return as-is
	}
	la, ha := lowerExt(a), upperExt(a)
	lb, hb := lowerExt(b), upperExt(b)

	corners := []ext[S]{
		mulExt(la, lb),
		mulExt(la, hb),
		mulExt(ha, lb),
		mulExt(ha, hb),
	}
	lo := minExt(corners...)
	hi := maxExt(corners...)

	var loBound bound.Bound[S]
	if lo.isInf {
		if !lo.neg {
			panic("interval: BoundsMul produced +inf as a lower bound")
		}
		loBound = bound.Infinity[S]()
	} else {
		loBound = bound.Finite(lo.val)
	}
	var hiBound bound.Bound[S]
	if hi.isInf {
		if hi.neg {
			panic("interval: BoundsMul produced -inf as an upper bound")
		}
		hiBound = bound.Infinity[S]()
	} else {
		hiBound = bound.Finite(hi.val)
	}
	return FromBounds(loBound, hiBound)
}
