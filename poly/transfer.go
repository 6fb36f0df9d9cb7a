// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/internal/bitset"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/linexpr"
	"github.com/elazarg/elina/num"
)

// OfBox builds the constraint system of a box (spec §4.4 of_box):
// exact.
func OfBox[S num.Scalar[S]](intdim, realdim int, box []interval.Interval[S]) *Value[S] {
	n := intdim + realdim
	var z S
	one := z.FromInt64(1)
	var cons []ConsRow[S]
	for i := 0; i < n; i++ {
		iv := box[i]
		if iv.IsBottom() {
			return Bottom[S](intdim, realdim)
		}
		if lo, ok := iv.Lower(); ok {
			coeffs := zeros[S](n)
			coeffs[i] = one
			v, _ := lo.Value()
			cons = append(cons, ConsRow[S]{Kind: GEQ, Denom: one, Const: v.Neg(), Coeffs: coeffs})
		}
		if hi := iv.Upper(); !hi.IsInfinity() {
			coeffs := zeros[S](n)
			coeffs[i] = one.Neg()
			v, _ := hi.Value()
			cons = append(cons, ConsRow[S]{Kind: GEQ, Denom: one, Const: v, Coeffs: coeffs})
		}
	}
	return OfLinconsArray(intdim, realdim, cons)
}

func zeros[S num.Scalar[S]](n int) []S {
	var z S
	zero := z.Sub(z)
	out := make([]S, n)
	for i := range out {
		out[i] = zero
	}
	return out
}

// OfLinconsArray builds the minimal double description of the
// conjunction of cons (spec §4.4 of_lincons_array): starts from Top
// and incrementally folds in each row via Chernikova. Exact on Q.
func OfLinconsArray[S num.Scalar[S]](intdim, realdim int, cons []ConsRow[S]) *Value[S] {
	top := Top[S](intdim, realdim)
	gens := top.F
	sat := make([]*bitset.Set, len(gens))
	for i := range sat {
		sat[i] = bitset.New(0)
	}

	processed := make([]ConsRow[S], 0, len(cons))
	for _, c := range cons {
		gens, sat = AddConstraint(gens, sat, c)
		processed = append(processed, c)
	}

	if len(gens) == 0 {
		return Bottom[S](intdim, realdim)
	}
	v := &Value[S]{IntDim: intdim, RealDim: realdim, C: processed, F: gens}
	v.SatC = BuildSatC(processed, gens)
	v.St = Status{ConsC: true, ConsF: true, Minimal: true}
	v.recomputeLineEqCounts()
	return v
}

func (v *Value[S]) recomputeLineEqCounts() {
	nbLine := 0
	for _, g := range v.F {
		if g.Kind == Line {
			nbLine++
		}
	}
	nbEq := 0
	for _, c := range v.C {
		if c.Kind == EQ {
			nbEq++
		}
	}
	v.NbLine, v.NbEq = nbLine, nbEq
}

// Meet concatenates both constraint systems and re-minimizes (spec
// §4.4 meet): best on Q.
func Meet[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	if a.IsBottom() || b.IsBottom() {
		return Bottom[S](a.IntDim, a.RealDim)
	}
	all := make([]ConsRow[S], 0, len(a.C)+len(b.C))
	all = append(all, a.C...)
	all = append(all, b.C...)
	return OfLinconsArray(a.IntDim, a.RealDim, all)
}

// MeetArray computes the n-ary meet of vs (spec §6 meet_array):
// folding pairwise through Meet, the same concatenate-and-re-minimize
// step Meet performs for two operands. Best on Q.
func MeetArray[S num.Scalar[S]](vs []*Value[S]) *Value[S] {
	out := vs[0]
	for _, v := range vs[1:] {
		out = Meet(out, v)
	}
	return out
}

// rowsFromSatC extracts, for each constraint row of v.C, its
// saturation bit-row across v.F — the constraint-indexed accumulator
// AddGenerator expects, reconstructed by transposing the
// generator-indexed rows BuildSatC produces.
func rowsFromSatC[S num.Scalar[S]](v *Value[S]) []*bitset.Set {
	out := make([]*bitset.Set, len(v.C))
	for ci := range v.C {
		row := bitset.New(len(v.F))
		for gi := range v.F {
			if v.SatC != nil && v.SatC.Saturates(gi, ci) {
				row.Set(gi)
			}
		}
		out[ci] = row
	}
	return out
}

// Join concatenates both generator systems and re-derives the
// constraint system via the dual Chernikova direction (spec §4.4
// join): best on Q.
func Join[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	if a.IsBottom() {
		return b.Clone()
	}
	if b.IsBottom() {
		return a.Clone()
	}
	cons := a.C
	sat := rowsFromSatC(a)
	for _, g := range b.F {
		cons, sat = AddGenerator(cons, sat, g)
	}
	v := &Value[S]{IntDim: a.IntDim, RealDim: a.RealDim, C: cons}
	v.F = append(append([]GenRow[S]{}, a.F...), b.F...)
	v.SatC = BuildSatC(v.C, v.F)
	v.St = Status{ConsC: true}
	v.recomputeLineEqCounts()
	return v
}

// IsLeq reports a ⊑ b: every generator of a must satisfy every
// constraint of b (spec §4.4). Exact on Q.
func IsLeq[S num.Scalar[S]](a, b *Value[S]) bool {
	if a.IsBottom() {
		return true
	}
	if b.IsBottom() {
		return false
	}
	for _, g := range a.F {
		for _, c := range b.C {
			d := Dot(c, g)
			switch c.Kind {
			case EQ:
				if !d.IsZero() {
					return false
				}
			default:
				if d.Sgn() < 0 {
					return false
				}
			}
		}
	}
	return true
}

// IsEq reports a = b (spec §4.4): exact on Q via mutual containment.
func IsEq[S num.Scalar[S]](a, b *Value[S]) bool {
	return IsLeq(a, b) && IsLeq(b, a)
}

// SatLincons tests every generator of v against c (spec §4.4).
func SatLincons[S num.Scalar[S]](v *Value[S], c ConsRow[S]) bool {
	for _, g := range v.F {
		d := Dot(c, g)
		switch c.Kind {
		case EQ:
			if !d.IsZero() {
				return false
			}
		default:
			if d.Sgn() < 0 {
				return false
			}
		}
	}
	return true
}

// SatInterval reports whether every value e can take over v falls
// within iv (spec §6 sat_interval): e's exact bound over v, computed
// the same way BoundLinexpr does, contained in iv.
func SatInterval[S num.Scalar[S]](v *Value[S], e linexpr.Expr[S], iv interval.Interval[S]) bool {
	return BoundLinexpr(v, e).Leq(iv)
}

// MeetLinconsArray adds constraints one by one via Chernikova (spec
// §4.4), returning a new value (non-destructive).
func MeetLinconsArray[S num.Scalar[S]](v *Value[S], cons []ConsRow[S]) *Value[S] {
	all := append(append([]ConsRow[S]{}, v.C...), cons...)
	return OfLinconsArray(v.IntDim, v.RealDim, all)
}

// AddRayArray is the dual of MeetLinconsArray on the generator side
// (spec §4.4): fold each new generator into the constraint system via
// AddGenerator and append it to F directly, without re-minimizing F
// (over-approximating only in redundancy, never in the set denoted;
// see DESIGN.md).
func AddRayArray[S num.Scalar[S]](v *Value[S], gens []GenRow[S]) *Value[S] {
	cons := v.C
	sat := rowsFromSatC(v)
	for _, g := range gens {
		cons, sat = AddGenerator(cons, sat, g)
	}
	out := &Value[S]{IntDim: v.IntDim, RealDim: v.RealDim, C: cons}
	out.F = append(append([]GenRow[S]{}, v.F...), gens...)
	out.SatC = BuildSatC(out.C, out.F)
	out.St = Status{ConsC: true}
	out.recomputeLineEqCounts()
	return out
}

// Widening keeps those constraints of a also satisfied by b; no
// closure of the result (spec §4.4). Requires a ⊑ b.
func Widening[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	if a.IsBottom() {
		return b.Clone()
	}
	if b.IsBottom() {
		return a.Clone()
	}
	var kept []ConsRow[S]
	for _, c := range a.C {
		if SatLincons(b, c) {
			kept = append(kept, c)
		}
	}
	return OfLinconsArray[S](a.IntDim, a.RealDim, kept)
}

// Narrowing re-adds b's constraints into a, never enlarging the
// result (spec §4.4): expressed through the same minimization path as
// Meet, since both operands already denote sound constraints.
func Narrowing[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	all := append(append([]ConsRow[S]{}, a.C...), b.C...)
	return OfLinconsArray[S](a.IntDim, a.RealDim, all)
}

// pointCoeff extracts the point value of a quasilinearized term's
// coefficient at dim, or the zero scalar (ok=true) if dim carries no
// term; ok is false if the term's coefficient is still a genuine
// interval (an unbounded dimension that could not be quasilinearized).
func pointCoeff[S num.Scalar[S]](qe linexpr.Expr[S], dim int) (S, bool) {
	for _, t := range qe.Terms {
		if t.Dim != dim {
			continue
		}
		if !t.IsPoint {
			var z S
			return z, false
		}
		lo, _ := t.Coeff.Lower()
		v, _ := lo.Value()
		return v, true
	}
	var z S
	return z.Sub(z), true
}

// BoundLinexpr computes sup of e over v (spec §4.4): e is first
// quasilinearized against the box extracted from v's vertices, then
// optimized exactly over the generator system — maximizing the
// point-coefficient linear form over every vertex, and reporting
// unbounded if any ray or line has a nonzero dot product with it.
func BoundLinexpr[S num.Scalar[S]](v *Value[S], e linexpr.Expr[S]) interval.Interval[S] {
	if v.IsBottom() {
		return interval.Top[S]()
	}
	box := BoxOfGenerators(v)
	qe := linexpr.Quasilinearize(e, box)

	n := v.Dims()
	coeffs := make([]S, n)
	allPoint := true
	for i := 0; i < n; i++ {
		c, ok := pointCoeff(qe, i)
		coeffs[i] = c
		if !ok {
			allPoint = false
		}
	}
	if !allPoint {
		return interval.Top[S]()
	}

	var z S
	dotCoeffs := func(row []S) S {
		acc := z.Sub(z)
		for i, c := range coeffs {
			acc = acc.Add(c.Mul(row[i]))
		}
		return acc
	}

	haveVertex := false
	sup := z.Sub(z)
	for _, g := range v.F {
		if g.Kind != Vertex {
			if !dotCoeffs(g.Coeffs).IsZero() {
				return interval.Top[S]()
			}
			continue
		}
		d := dotCoeffs(g.Coeffs)
		val, exact := d.DivExact(g.Denom)
		if !exact {
			val = d.FDiv(g.Denom) // sound under-estimate when inexact; see DESIGN.md
		}
		if !haveVertex || val.Cmp(sup) > 0 {
			sup = val
			haveVertex = true
		}
	}
	if !haveVertex {
		return interval.Top[S]()
	}
	constHi := qe.Const.Upper()
	if constHi.IsInfinity() {
		return interval.Top[S]()
	}
	cv, _ := constHi.Value()
	return interval.Point(sup.Add(cv))
}

// BoundDimension computes sup of dimension dim over v (spec §6
// bound_dimension): a thin wrapper selecting dim with a unit
// coefficient and handing it to BoundLinexpr, mirroring
// octagon.BoundDimension's role for this domain.
func BoundDimension[S num.Scalar[S]](v *Value[S], dim int) interval.Interval[S] {
	var z S
	one := z.FromInt64(1)
	e := linexpr.Expr[S]{
		Const: interval.Point(z.Sub(z)),
		Terms: []linexpr.Term[S]{linexpr.NewTerm(dim, interval.Point(one))},
	}
	return BoundLinexpr(v, e)
}

// BoxOfGenerators extracts a coordinate-range box from v's vertex
// rows: a dimension is bounded in the box iff every ray/line has a
// zero coefficient there and at least one vertex exists (spec §4.4's
// assign_linexpr note, and original_source/newpolka/pk_assign.c which
// derives the box this way rather than from a caller-supplied
// interval abstraction).
func BoxOfGenerators[S num.Scalar[S]](v *Value[S]) []interval.Interval[S] {
	n := v.Dims()
	box := make([]interval.Interval[S], n)
	if v.IsBottom() || len(v.F) == 0 {
		for i := range box {
			box[i] = interval.Top[S]()
		}
		return box
	}
	haveVertex := false
	var lo, hi []S
	for _, g := range v.F {
		if g.Kind != Vertex {
			continue
		}
		vals := make([]S, n)
		for i, c := range g.Coeffs {
			q, _ := c.DivExact(g.Denom)
			vals[i] = q
		}
		if !haveVertex {
			lo = append([]S{}, vals...)
			hi = append([]S{}, vals...)
			haveVertex = true
			continue
		}
		for i := range vals {
			if vals[i].Cmp(lo[i]) < 0 {
				lo[i] = vals[i]
			}
			if vals[i].Cmp(hi[i]) > 0 {
				hi[i] = vals[i]
			}
		}
	}
	unbounded := make([]bool, n)
	for _, g := range v.F {
		if g.Kind == Vertex {
			continue
		}
		for i, c := range g.Coeffs {
			if !c.IsZero() {
				unbounded[i] = true
			}
		}
	}
	for i := 0; i < n; i++ {
		if !haveVertex || unbounded[i] {
			box[i] = interval.Top[S]()
			continue
		}
		box[i] = interval.FromBounds(bound.Finite(lo[i]), bound.Finite(hi[i]))
	}
	return box
}
