// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"github.com/elazarg/elina/internal/bitset"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/linexpr"
	"github.com/elazarg/elina/num"
)

func z0[S num.Scalar[S]]() S {
	var z S
	return z.Sub(z)
}

// isExactPointForm reports whether e has no interval coefficients
// anywhere (every term is a point and Const is a point).
func isExactPointForm[S num.Scalar[S]](e linexpr.Expr[S]) bool {
	if !e.Const.IsPoint() {
		return false
	}
	for _, t := range e.Terms {
		if !t.IsPoint {
			return false
		}
	}
	return true
}

// evalPointFormOnGen evaluates an exact point-form expression e at
// generator g's coordinates, weighted the same way Dot weighs a
// constraint's constant term: rays and lines (weight 0) see only e's
// linear part, never its constant (spec §4.3's homogeneous encoding).
// The result shares g's Denom scale, so it can replace one coordinate
// of g directly.
func evalPointFormOnGen[S num.Scalar[S]](e linexpr.Expr[S], g GenRow[S]) S {
	sum := z0[S]()
	for _, t := range e.Terms {
		lo, _ := t.Coeff.Lower()
		c, _ := lo.Value()
		sum = sum.Add(c.Mul(g.Coeffs[t.Dim]))
	}
	cHi := e.Const.Upper()
	cv, _ := cHi.Value()
	return sum.Add(cv.Mul(g.weight()))
}

// OfGeneratorArray is the dual of OfLinconsArray: it derives the
// minimal constraint system generated by gens. AddGenerator's
// contract requires a valid seed (C, sat) for the generators already
// folded in, so the fold is seeded by pinning every coordinate to one
// base generator — an explicit Vertex if gens contains one, or the
// origin if gens is a pure cone of rays/lines (the origin always lies
// in such a cone) — and then folding in the remaining generators one
// at a time.
func OfGeneratorArray[S num.Scalar[S]](intdim, realdim int, gens []GenRow[S]) *Value[S] {
	if len(gens) == 0 {
		return Bottom[S](intdim, realdim)
	}
	n := intdim + realdim
	one := z0[S]().FromInt64(1)

	baseIdx := -1
	for i, g := range gens {
		if g.Kind == Vertex {
			baseIdx = i
			break
		}
	}

	cons := make([]ConsRow[S], n)
	sat := make([]*bitset.Set, n)
	if baseIdx >= 0 {
		base := gens[baseIdx]
		for i := 0; i < n; i++ {
			coeffs := zeros[S](n)
			coeffs[i] = base.Denom
			numer := base.Coeffs[i]
			cons[i] = ConsRow[S]{Kind: EQ, Denom: one, Const: numer.Neg(), Coeffs: coeffs}.Normalize()
			row := bitset.New(1)
			row.Set(0)
			sat[i] = row
		}
	} else {
		for i := 0; i < n; i++ {
			coeffs := zeros[S](n)
			coeffs[i] = one
			cons[i] = ConsRow[S]{Kind: EQ, Denom: one, Const: z0[S](), Coeffs: coeffs}
			row := bitset.New(0) // nothing processed yet; origin is implicit, not in gens
			sat[i] = row
		}
	}

	for i, g := range gens {
		if i == baseIdx {
			continue
		}
		cons, sat = AddGenerator(cons, sat, g)
	}
	v := &Value[S]{IntDim: intdim, RealDim: realdim, C: cons, F: append([]GenRow[S]{}, gens...)}
	v.SatC = BuildSatC(v.C, v.F)
	v.St = Status{ConsF: true}
	v.recomputeLineEqCounts()
	return v
}

// AssignLinexpr computes the forward image of dim := e over v (spec
// §4.4 assign_linexpr): when e is an exact linear form, this is exact
// and needs no invertibility test, because the forward image of a
// linear assignment is computed on the generator side — every
// generator's dim-th coordinate is simply replaced by e evaluated at
// that generator's own coordinates (original_source/newpolka/pk_assign.c
// takes the invertible-substitution shortcut on constraints only as
// an optimization; this implementation always takes the
// always-correct generator path). The constraint system is then
// re-derived from the transformed generators. When e carries a
// genuine interval coefficient, the assignment is non-deterministic:
// dim is forgotten and re-constrained to BoundLinexpr(v, e), a sound
// enclosure (spec §4.4).
func AssignLinexpr[S num.Scalar[S]](v *Value[S], dim int, e linexpr.Expr[S]) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	if isExactPointForm(e) {
		newGens := make([]GenRow[S], len(v.F))
		for i, g := range v.F {
			row := g.Clone()
			row.Coeffs[dim] = evalPointFormOnGen(e, g)
			newGens[i] = row.Normalize()
		}
		return OfGeneratorArray(v.IntDim, v.RealDim, newGens)
	}

	forgotten := ForgetArray(v, []int{dim})
	bounded := BoundLinexpr(v, e)
	n := v.Dims()
	box := make([]interval.Interval[S], n)
	for i := range box {
		box[i] = interval.Top[S]()
	}
	box[dim] = bounded
	boxCons := OfBox[S](forgotten.IntDim, forgotten.RealDim, box)
	return Meet(forgotten, boxCons)
}

// AssignLinexprArray computes the simultaneous forward image of the
// parallel assignment dims[i] := exprs[i] over v (spec §6
// assign_linexpr_array): every generator's newly assigned coordinates
// are all evaluated against that generator's ORIGINAL row in one
// pass, so an expression in exprs that itself references another
// dims[j] sees its pre-assignment value, matching a parallel
// assignment rather than len(dims) sequential AssignLinexpr calls.
// Spec's source unifies each linexpr's own coefficient denominator via
// an LCM before this simultaneous step; here every coordinate of a
// GenRow already shares the row's single Denom, so each per-dimension
// evaluation already lands on that same common scale and no separate
// LCM pass is needed (see DESIGN.md). Non-deterministic expressions
// fall back to AssignLinexpr's forget-and-box-constrain path, with
// every bound computed against the original v before any assignment.
func AssignLinexprArray[S num.Scalar[S]](v *Value[S], dims []int, exprs []linexpr.Expr[S]) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	var detDims []int
	var detExprs []linexpr.Expr[S]
	var nonDetDims []int
	var nonDetBounds []interval.Interval[S]
	for i, e := range exprs {
		if isExactPointForm(e) {
			detDims = append(detDims, dims[i])
			detExprs = append(detExprs, e)
		} else {
			nonDetDims = append(nonDetDims, dims[i])
			nonDetBounds = append(nonDetBounds, BoundLinexpr(v, e))
		}
	}

	out := v
	if len(detDims) > 0 {
		newGens := make([]GenRow[S], len(v.F))
		for gi, g := range v.F {
			row := g.Clone()
			for k, d := range detDims {
				row.Coeffs[d] = evalPointFormOnGen(detExprs[k], g)
			}
			newGens[gi] = row.Normalize()
		}
		out = OfGeneratorArray(v.IntDim, v.RealDim, newGens)
	}

	if len(nonDetDims) == 0 {
		return out
	}
	forgotten := ForgetArray(out, nonDetDims)
	n := v.Dims()
	box := make([]interval.Interval[S], n)
	for i := range box {
		box[i] = interval.Top[S]()
	}
	for i, d := range nonDetDims {
		box[d] = nonDetBounds[i]
	}
	boxCons := OfBox[S](forgotten.IntDim, forgotten.RealDim, box)
	return Meet(forgotten, boxCons)
}

// SubstituteLinexprArray computes the simultaneous preimage of the
// parallel substitution dims[i] := exprs[i] over v's constraint system
// (spec §6 substitute_linexpr_array), the constraint-side dual of
// AssignLinexprArray: every row's coefficient on each deterministic
// dims[i] is distributed into exprs[i]'s own row and folded away,
// reading the original row's coefficient for every dims[i] so
// expressions that cross-reference each other's dimension still see
// pre-substitution coefficients. Non-deterministic expressions fall
// back to AssignLinexpr per dimension, matching SubstituteLinexpr's
// single-dimension non-deterministic case.
func SubstituteLinexprArray[S num.Scalar[S]](v *Value[S], dims []int, exprs []linexpr.Expr[S]) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	n := v.Dims()
	var detDims []int
	var detRows [][]S
	var detConsts []S
	var nonDetDims []int
	var nonDetExprs []linexpr.Expr[S]
	for i, e := range exprs {
		if !isExactPointForm(e) {
			nonDetDims = append(nonDetDims, dims[i])
			nonDetExprs = append(nonDetExprs, e)
			continue
		}
		eRow := zeros[S](n)
		for _, t := range e.Terms {
			lo, _ := t.Coeff.Lower()
			c, _ := lo.Value()
			eRow[t.Dim] = eRow[t.Dim].Add(c)
		}
		cHi := e.Const.Upper()
		eConst, _ := cHi.Value()
		detDims = append(detDims, dims[i])
		detRows = append(detRows, eRow)
		detConsts = append(detConsts, eConst)
	}

	out := v
	if len(detDims) > 0 {
		newCons := make([]ConsRow[S], len(v.C))
		for ci, row := range v.C {
			coeffs := make([]S, n)
			copy(coeffs, row.Coeffs)
			constVal := row.Const
			for k, d := range detDims {
				kCoeff := row.Coeffs[d]
				coeffs[d] = z0[S]()
				for j := range coeffs {
					if j == d {
						continue
					}
					coeffs[j] = coeffs[j].Add(kCoeff.Mul(detRows[k][j]))
				}
				constVal = constVal.Add(kCoeff.Mul(detConsts[k]))
			}
			newCons[ci] = ConsRow[S]{Kind: row.Kind, Denom: row.Denom, Const: constVal, Coeffs: coeffs}.Normalize()
		}
		out = OfLinconsArray[S](v.IntDim, v.RealDim, newCons)
	}

	for i, d := range nonDetDims {
		out = AssignLinexpr(out, d, nonDetExprs[i])
	}
	return out
}

// SubstituteLinexpr computes the preimage (pullback) of dim := e over
// v (spec §4.4 substitute_linexpr): when e is an exact linear form,
// this is exact on the CONSTRAINT side regardless of invertibility —
// substitution is plain function composition, so every constraint
// row's coefficient on dim is distributed into e's row and the column
// folded away. The generator system is then re-derived from the
// transformed constraints. Non-deterministic e falls back to the same
// sound enclosure AssignLinexpr uses (spec §4.4 note that the two
// operations coincide when the relation cannot be expressed exactly).
func SubstituteLinexpr[S num.Scalar[S]](v *Value[S], dim int, e linexpr.Expr[S]) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	if !isExactPointForm(e) {
		return AssignLinexpr(v, dim, e)
	}
	n := v.Dims()
	eRow := zeros[S](n)
	for _, t := range e.Terms {
		lo, _ := t.Coeff.Lower()
		c, _ := lo.Value()
		eRow[t.Dim] = eRow[t.Dim].Add(c)
	}
	cHi := e.Const.Upper()
	eConst, _ := cHi.Value()

	newCons := make([]ConsRow[S], len(v.C))
	for i, row := range v.C {
		k := row.Coeffs[dim]
		coeffs := make([]S, n)
		copy(coeffs, row.Coeffs)
		coeffs[dim] = z0[S]()
		for j := range coeffs {
			if j == dim {
				continue
			}
			coeffs[j] = coeffs[j].Add(k.Mul(eRow[j]))
		}
		constVal := row.Const.Add(k.Mul(eConst))
		newCons[i] = ConsRow[S]{Kind: row.Kind, Denom: row.Denom, Const: constVal, Coeffs: coeffs}.Normalize()
	}
	return OfLinconsArray[S](v.IntDim, v.RealDim, newCons)
}
