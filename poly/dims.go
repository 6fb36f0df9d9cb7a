// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/num"
)

// ToBox projects v onto an interval per dimension by bounding each
// coordinate independently (spec §4.4 to_box), using the same
// generator-based extraction BoundLinexpr's quasilinearization relies
// on.
func ToBox[S num.Scalar[S]](v *Value[S]) []interval.Interval[S] {
	return BoxOfGenerators(v)
}

// ToLinconsArray returns a copy of v's constraint rows (spec §4.4
// to_lincons_array); the returned slice may be mutated freely by the
// caller.
func ToLinconsArray[S num.Scalar[S]](v *Value[S]) []ConsRow[S] {
	out := make([]ConsRow[S], len(v.C))
	for i, c := range v.C {
		out[i] = c.Clone()
	}
	return out
}

// ToGeneratorArray returns a copy of v's generator rows (spec §4.4
// to_generator_array).
func ToGeneratorArray[S num.Scalar[S]](v *Value[S]) []GenRow[S] {
	out := make([]GenRow[S], len(v.F))
	for i, g := range v.F {
		out[i] = g.Clone()
	}
	return out
}

// IsDimensionUnconstrained reports whether dim is free to take any
// value: some generator Line spans exactly that axis, or v is top
// (spec §4.4 is_dimension_unconstrained), checked via
// BoundLinexpr on ±e_dim both returning Top.
func IsDimensionUnconstrained[S num.Scalar[S]](v *Value[S], dim int) bool {
	box := BoxOfGenerators(v)
	return box[dim].IsTop()
}

// ForgetArray existentially quantifies out the given dimensions,
// replacing each with an unconstrained Line direction added to the
// generator system and folded back into a minimal constraint system
// (spec §4.4 forget_array): this is AddRayArray specialized to one
// Line generator per forgotten dimension, then fully re-derived so
// the constraint side sees the effect immediately (unlike the general
// AddRayArray, which leaves F unminimized).
func ForgetArray[S num.Scalar[S]](v *Value[S], dims []int) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	n := v.Dims()
	var z S
	zero := z.Sub(z)
	lines := make([]GenRow[S], len(dims))
	for i, d := range dims {
		coeffs := zeros[S](n)
		coeffs[d] = z.FromInt64(1)
		lines[i] = GenRow[S]{Kind: Line, Denom: zero, Coeffs: coeffs}
	}
	out := AddRayArray(v, lines)
	// re-derive F from the new constraint system so forgotten
	// dimensions are reflected on both sides of the representation.
	return OfLinconsArray[S](out.IntDim, out.RealDim, out.C)
}

// insertZeroColumn inserts a zero coefficient at position pos in row.
func insertZeroColumn[S num.Scalar[S]](row []S, pos int) []S {
	var z S
	zero := z.Sub(z)
	out := make([]S, len(row)+1)
	copy(out, row[:pos])
	out[pos] = zero
	copy(out[pos+1:], row[pos:])
	return out
}

// removeColumn deletes the coefficient at position pos from row.
func removeColumn[S num.Scalar[S]](row []S, pos int) []S {
	out := make([]S, len(row)-1)
	copy(out, row[:pos])
	copy(out[pos:], row[pos+1:])
	return out
}

// AddDimensions inserts intdimAdd integer and realdimAdd real
// dimensions at the end of the existing integer/real blocks
// respectively, unconstrained (spec §4.4 add_dimensions): every row
// gets a zero coefficient in the new columns, which is exact — it
// changes no relation among the existing dimensions.
func AddDimensions[S num.Scalar[S]](v *Value[S], intdimAdd, realdimAdd int) *Value[S] {
	insertAt := v.IntDim // new integer columns go right after the existing integer block
	realInsertAt := v.IntDim + v.RealDim + intdimAdd

	newCons := make([]ConsRow[S], len(v.C))
	for i, c := range v.C {
		row := c.Clone()
		for k := 0; k < intdimAdd; k++ {
			row.Coeffs = insertZeroColumn(row.Coeffs, insertAt)
		}
		for k := 0; k < realdimAdd; k++ {
			row.Coeffs = insertZeroColumn(row.Coeffs, realInsertAt)
		}
		newCons[i] = row
	}
	newGens := make([]GenRow[S], len(v.F))
	for i, g := range v.F {
		row := g.Clone()
		for k := 0; k < intdimAdd; k++ {
			row.Coeffs = insertZeroColumn(row.Coeffs, insertAt)
		}
		for k := 0; k < realdimAdd; k++ {
			row.Coeffs = insertZeroColumn(row.Coeffs, realInsertAt)
		}
		newGens[i] = row
	}
	out := &Value[S]{
		IntDim: v.IntDim + intdimAdd, RealDim: v.RealDim + realdimAdd,
		C: newCons, F: newGens, bottom: v.bottom,
	}
	if !out.bottom {
		out.appendUnconstrainedLines(insertAt, intdimAdd, realInsertAt, realdimAdd)
	}
	out.SatC = BuildSatC(out.C, out.F)
	out.recomputeLineEqCounts()
	return out
}

// appendUnconstrainedLines adds one Line generator per newly inserted
// dimension so the new columns are genuinely unconstrained rather
// than pinned at zero by the absence of any generator spanning them.
func (v *Value[S]) appendUnconstrainedLines(intAt, intCount, realAt, realCount int) {
	n := v.Dims()
	var z S
	zero := z.Sub(z)
	one := z.FromInt64(1)
	add := func(at int) {
		coeffs := zeros[S](n)
		coeffs[at] = one
		v.F = append(v.F, GenRow[S]{Kind: Line, Denom: zero, Coeffs: coeffs})
	}
	for k := 0; k < intCount; k++ {
		add(intAt + k)
	}
	for k := 0; k < realCount; k++ {
		add(realAt + k)
	}
}

// RemoveDimensions projects out the dimensions listed in dims (spec
// §4.4 remove_dimensions): existentially quantify them via
// ForgetArray, then physically drop the now-irrelevant columns.
// dims must be sorted ascending.
func RemoveDimensions[S num.Scalar[S]](v *Value[S], dims []int, intdimRemoved int) *Value[S] {
	forgotten := ForgetArray(v, dims)
	if forgotten.IsBottom() {
		return Bottom[S](v.IntDim-intdimRemoved, v.RealDim-(len(dims)-intdimRemoved))
	}
	drop := make(map[int]bool, len(dims))
	for _, d := range dims {
		drop[d] = true
	}
	dropRow := func(row []S) []S {
		out := make([]S, 0, len(row)-len(dims))
		for i, c := range row {
			if !drop[i] {
				out = append(out, c)
			}
		}
		return out
	}
	newCons := make([]ConsRow[S], len(forgotten.C))
	for i, c := range forgotten.C {
		row := c.Clone()
		row.Coeffs = dropRow(row.Coeffs)
		newCons[i] = row
	}
	newGens := make([]GenRow[S], len(forgotten.F))
	for i, g := range forgotten.F {
		row := g.Clone()
		row.Coeffs = dropRow(row.Coeffs)
		newGens[i] = row
	}
	out := &Value[S]{
		IntDim: v.IntDim - intdimRemoved, RealDim: v.RealDim - (len(dims) - intdimRemoved),
		C: newCons, F: newGens,
	}
	out.SatC = BuildSatC(out.C, out.F)
	out.recomputeLineEqCounts()
	return out
}

// PermuteDimensions reorders every row's coefficients according to
// perm: coefficient i of the result is the old coefficient
// perm[i] (spec §4.4 permute_dimensions).
func PermuteDimensions[S num.Scalar[S]](v *Value[S], perm []int) *Value[S] {
	permuteRow := func(row []S) []S {
		out := make([]S, len(row))
		for i, p := range perm {
			out[i] = row[p]
		}
		return out
	}
	newCons := make([]ConsRow[S], len(v.C))
	for i, c := range v.C {
		row := c.Clone()
		row.Coeffs = permuteRow(row.Coeffs)
		newCons[i] = row
	}
	newGens := make([]GenRow[S], len(v.F))
	for i, g := range v.F {
		row := g.Clone()
		row.Coeffs = permuteRow(row.Coeffs)
		newGens[i] = row
	}
	out := &Value[S]{IntDim: v.IntDim, RealDim: v.RealDim, C: newCons, F: newGens, St: v.St, bottom: v.bottom, NbEq: v.NbEq, NbLine: v.NbLine}
	if v.SatC != nil {
		out.SatC = BuildSatC(out.C, out.F)
	}
	return out
}

// Expand duplicates dimension dim into n fresh copies constrained
// identically to the original (spec §4.4 expand, supplemented from
// original_source/newpolka/pk_expandfold.c): every row gets n extra
// columns equal to the original dim's coefficient.
func Expand[S num.Scalar[S]](v *Value[S], dim, n int) *Value[S] {
	expandRow := func(row []S) []S {
		out := make([]S, len(row)+n)
		copy(out, row)
		for k := 0; k < n; k++ {
			out[len(row)+k] = row[dim]
		}
		return out
	}
	newCons := make([]ConsRow[S], len(v.C))
	for i, c := range v.C {
		row := c.Clone()
		row.Coeffs = expandRow(row.Coeffs)
		newCons[i] = row
	}
	newGens := make([]GenRow[S], len(v.F))
	for i, g := range v.F {
		row := g.Clone()
		row.Coeffs = expandRow(row.Coeffs)
		newGens[i] = row
	}
	isInt := dim < v.IntDim
	intAdd, realAdd := 0, n
	if isInt {
		intAdd, realAdd = n, 0
	}
	out := &Value[S]{IntDim: v.IntDim + intAdd, RealDim: v.RealDim + realAdd, C: newCons, F: newGens, bottom: v.bottom}
	out.SatC = BuildSatC(out.C, out.F)
	out.recomputeLineEqCounts()
	return out
}

// Fold merges the dimensions listed in dims into the first of them by
// equating them via a join over all the permutations that align each
// folded dimension to dims[0] (spec §4.4 fold, supplemented from
// original_source/newpolka/pk_expandfold.c's "fold by duplication"
// strategy): for each candidate dimension, meet in the equality
// dims[0] = dims[k], then remove the redundant columns, and join the
// per-candidate results.
func Fold[S num.Scalar[S]](v *Value[S], dims []int) *Value[S] {
	if len(dims) < 2 {
		return v.Clone()
	}
	n := v.Dims()
	var z S
	one := z.FromInt64(1)
	var acc *Value[S]
	for _, d := range dims[1:] {
		coeffs := zeros[S](n)
		coeffs[dims[0]] = one
		coeffs[d] = one.Neg()
		eq := ConsRow[S]{Kind: EQ, Denom: one, Const: z.Sub(z), Coeffs: coeffs}
		equated := MeetLinconsArray(v, []ConsRow[S]{eq})
		reduced := RemoveDimensions(equated, dims[1:], countIntDims(v, dims[1:]))
		if acc == nil {
			acc = reduced
		} else {
			acc = Join(acc, reduced)
		}
	}
	return acc
}

func countIntDims[S num.Scalar[S]](v *Value[S], dims []int) int {
	count := 0
	for _, d := range dims {
		if d < v.IntDim {
			count++
		}
	}
	return count
}
