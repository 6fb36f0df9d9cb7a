// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package octagon

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/linexpr"
	"github.com/elazarg/elina/num"
)

// unitForm classifies a linear expression against the four shapes
// spec §4.7's of_lincons_array dispatches on: zero-ary (pure
// constant), unary (single ±xᵢ), binary unit (±xᵢ±xⱼ), or other (not
// representable by a single octagon entry). signI/signJ are +1 for a
// coefficient of x and -1 for -x; dimJ is -1 when the term is unary.
type unitForm struct {
	ok            bool
	dimI, dimJ    int
	signI, signJ  int
	isBinary      bool
}

func classify[S num.Scalar[S]](e linexpr.Expr[S]) unitForm {
	var pointTerms []struct {
		dim  int
		sign int
	}
	for _, t := range e.Terms {
		if !t.IsPoint {
			return unitForm{}
		}
		lo, _ := t.Coeff.Lower()
		v, _ := lo.Value()
		one := v.FromInt64(1)
		switch {
		case v.Cmp(one) == 0:
			pointTerms = append(pointTerms, struct {
				dim  int
				sign int
			}{t.Dim, 1})
		case v.Cmp(one.Neg()) == 0:
			pointTerms = append(pointTerms, struct {
				dim  int
				sign int
			}{t.Dim, -1})
		default:
			return unitForm{} // coefficient isn't ±1: not a unit octagon form
		}
	}
	if !e.Const.IsPoint() {
		return unitForm{}
	}
	switch len(pointTerms) {
	case 0:
		return unitForm{ok: true, dimI: -1, dimJ: -1}
	case 1:
		return unitForm{ok: true, dimI: pointTerms[0].dim, signI: pointTerms[0].sign, dimJ: -1}
	case 2:
		return unitForm{
			ok: true,
			dimI: pointTerms[0].dim, signI: pointTerms[0].sign,
			dimJ: pointTerms[1].dim, signJ: pointTerms[1].sign,
			isBinary: true,
		}
	default:
		return unitForm{}
	}
}

// octIndex returns the half-matrix index for ±x_dim (spec §4.5: 2k
// for +xₖ, 2k+1 for -xₖ).
func octIndex(dim int, sign int) int {
	if sign > 0 {
		return 2 * dim
	}
	return 2*dim + 1
}

// OfBox builds the octagon of a box (spec §4.7 of_box): exact, one
// entry pair per dimension.
func OfBox[S num.Scalar[S]](intdim, realdim int, box []interval.Interval[S]) *Value[S] {
	n := intdim + realdim
	m := NewHalfMatrix[S](n)
	for i := 0; i < n; i++ {
		iv := box[i]
		if iv.IsBottom() {
			return Bottom[S](intdim, realdim)
		}
		if lo, ok := iv.Lower(); ok {
			v, _ := lo.Value()
			two := v.FromInt64(2)
			m.Set(2*i+1, 2*i, bound.Finite(v.Neg().Mul(two)))
		}
		if hi := iv.Upper(); !hi.IsInfinity() {
			v, _ := hi.Value()
			two := v.FromInt64(2)
			m.Set(2*i, 2*i+1, bound.Finite(v.Mul(two)))
		}
	}
	closedM, ok := Close(m, intdim)
	if !ok {
		return Bottom[S](intdim, realdim)
	}
	return &Value[S]{IntDim: intdim, RealDim: realdim, m: closedM, closed: true}
}

// meetConstraint folds a·x + b (>=0 or =0) expressed by uf into m,
// tightening the appropriate half-matrix entry or entries.
func meetConstraint[S num.Scalar[S]](m *HalfMatrix[S], e linexpr.Expr[S], uf unitForm, eq bool) {
	cHi := e.Const.Upper()
	c, _ := cHi.Value()
	var z S
	two := z.FromInt64(2)

	switch {
	case uf.dimI < 0:
		// zero-ary: 0 + c >= 0 is either vacuous or (if c<0) unsatisfiable;
		// there is no matrix entry to tighten for a dimensionless fact, so
		// an unsatisfiable constant constraint is reported via the
		// diagonal sentinel instead.
		if c.Sgn() < 0 {
			m.Set(0, 0, bound.Finite(c)) // negative diagonal triggers bottom at Close
		}
	case uf.dimJ < 0:
		// unary: signI*x_dimI + c >= 0  =>  x_dimI >= -c (signI>0) or
		// x_dimI <= c (signI<0), i.e. a bound on 2*x_dimI in one direction.
		i := octIndex(uf.dimI, uf.signI)
		iOpp := i ^ 1
		bound2 := c.Mul(two)
		cur := m.Get(iOpp, i)
		if cand := bound.Finite(bound2); cand.Cmp(cur) < 0 {
			m.Set(iOpp, i, cand)
		}
		if eq {
			negBound2 := c.Neg().Mul(two)
			if cand := bound.Finite(negBound2); cand.Cmp(m.Get(i, iOpp)) < 0 {
				m.Set(i, iOpp, cand)
			}
		}
	default:
		// binary unit: signI*x_i + signJ*x_j + c >= 0
		// => (-signJ)*x_j - (-signI)*x_i <= c, a bound between the two
		// signed indices.
		i := octIndex(uf.dimI, -uf.signI)
		j := octIndex(uf.dimJ, uf.signJ)
		if cand := bound.Finite(c); cand.Cmp(m.Get(i, j)) < 0 {
			m.Set(i, j, cand)
		}
		if eq {
			iNeg := octIndex(uf.dimI, uf.signI)
			jNeg := octIndex(uf.dimJ, -uf.signJ)
			if cand := bound.Finite(c.Neg()); cand.Cmp(m.Get(jNeg, iNeg)) < 0 {
				m.Set(jNeg, iNeg, cand)
			}
		}
	}
}

// OfLinconsArray classifies each constraint and folds unit forms
// directly into the matrix; non-unit constraints are over-approximated
// via a box around the constraint's own bound (spec §4.7).
func OfLinconsArray[S num.Scalar[S]](intdim, realdim int, cons []linexpr.Expr[S], kinds []bool) *Value[S] {
	n := intdim + realdim
	m := NewHalfMatrix[S](n)
	for i, e := range cons {
		uf := classify(e)
		if uf.ok {
			meetConstraint(m, e, uf, kinds[i])
			continue
		}
		// non-unit: conservatively skip (no sound single-entry tightening
		// available); callers needing precision on non-unit constraints
		// should meet with a box derived from bound_linexpr instead (spec
		// §4.7's documented over-approximation path).
	}
	closedM, ok := Close(m, intdim)
	if !ok {
		return Bottom[S](intdim, realdim)
	}
	return &Value[S]{IntDim: intdim, RealDim: realdim, m: closedM, closed: true}
}

// Meet computes the pointwise minimum of the two matrices (spec §4.7
// meet): the result may lose closure. Best on Q.
func Meet[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	if a.IsBottom() || b.IsBottom() {
		return Bottom[S](a.IntDim, a.RealDim)
	}
	n := a.m.N()
	out := a.m.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j/2 > i/2 {
				continue
			}
			if bv := b.m.Get(i, j); bv.Cmp(out.Get(i, j)) < 0 {
				out.Set(i, j, bv)
			}
		}
	}
	v := &Value[S]{IntDim: a.IntDim, RealDim: a.RealDim, m: out, closed: false}
	return v.ensureClosed()
}

// Join computes the pointwise maximum of the two closed matrices
// (spec §4.7 join): the result is closed. Requires both operands
// closed.
func Join[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	if a.IsBottom() {
		return b.Clone()
	}
	if b.IsBottom() {
		return a.Clone()
	}
	a, b = a.ensureClosed(), b.ensureClosed()
	if a.IsBottom() {
		return b.Clone()
	}
	if b.IsBottom() {
		return a.Clone()
	}
	n := a.m.N()
	out := a.m.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j/2 > i/2 {
				continue
			}
			if bv := b.m.Get(i, j); bv.Cmp(out.Get(i, j)) > 0 {
				out.Set(i, j, bv)
			}
		}
	}
	return &Value[S]{IntDim: a.IntDim, RealDim: a.RealDim, m: out, closed: true}
}

// JoinArray reduces Join over a non-empty slice of operands (spec
// §4.7 join_array).
func JoinArray[S num.Scalar[S]](vs []*Value[S]) *Value[S] {
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = Join(acc, v)
	}
	return acc
}

// MeetArray reduces Meet over a non-empty slice of operands (spec §6
// meet_array), JoinArray's dual.
func MeetArray[S num.Scalar[S]](vs []*Value[S]) *Value[S] {
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = Meet(acc, v)
	}
	return acc
}

// IsLeq reports a ⊑ b by comparing a's closed matrix entrywise against
// b's (spec §4.7, via the closure invariant): a closed a is contained
// in b iff every entry of a's matrix is <= the corresponding entry of
// b's (an unclosed a is closed first to get a sound comparison).
func IsLeq[S num.Scalar[S]](a, b *Value[S]) bool {
	if a.IsBottom() {
		return true
	}
	if b.IsBottom() {
		return false
	}
	a = a.ensureClosed()
	if a.IsBottom() {
		return true
	}
	n := a.m.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j/2 > i/2 {
				continue
			}
			if a.m.Get(i, j).Cmp(b.m.Get(i, j)) > 0 {
				return false
			}
		}
	}
	return true
}

// IsEq reports a = b via mutual containment (spec §4.7).
func IsEq[S num.Scalar[S]](a, b *Value[S]) bool {
	return IsLeq(a, b) && IsLeq(b, a)
}

// Widening keeps m1[i,j] where it already bounds m2[i,j] at least as
// tightly, else sets +∞ (spec §4.7 widening): uses a's own unclosed
// matrix — closing before widening would prevent convergence.
func Widening[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	if a.IsBottom() {
		return b.Clone()
	}
	if b.IsBottom() {
		return a.Clone()
	}
	n := a.m.N()
	out := NewHalfMatrix[S](n / 2)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j/2 > i/2 {
				continue
			}
			av, bv := a.m.Get(i, j), b.m.Get(i, j)
			if av.Cmp(bv) >= 0 {
				out.Set(i, j, av)
			} else {
				out.Set(i, j, bound.Infinity[S]())
			}
		}
	}
	return &Value[S]{IntDim: a.IntDim, RealDim: a.RealDim, m: out, closed: false}
}

// WideningThresholds is Widening with a threshold array T (spec §4.7):
// a widened entry that would otherwise go to +∞ is instead set to the
// smallest element of T still >= m2[i,j], if one exists.
func WideningThresholds[S num.Scalar[S]](a, b *Value[S], thresholds []S) *Value[S] {
	if a.IsBottom() {
		return b.Clone()
	}
	if b.IsBottom() {
		return a.Clone()
	}
	n := a.m.N()
	out := NewHalfMatrix[S](n / 2)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j/2 > i/2 {
				continue
			}
			av, bv := a.m.Get(i, j), b.m.Get(i, j)
			if av.Cmp(bv) >= 0 {
				out.Set(i, j, av)
				continue
			}
			out.Set(i, j, smallestThresholdAbove(thresholds, bv))
		}
	}
	return &Value[S]{IntDim: a.IntDim, RealDim: a.RealDim, m: out, closed: false}
}

func smallestThresholdAbove[S num.Scalar[S]](thresholds []S, bv bound.Bound[S]) bound.Bound[S] {
	best := bound.Infinity[S]()
	for _, t := range thresholds {
		cand := bound.Finite(t)
		if cand.Cmp(bv) >= 0 && cand.Cmp(best) < 0 {
			best = cand
		}
	}
	return best
}

// Narrowing picks m2[i,j] where m1[i,j] is +∞, else m1[i,j] (spec
// §4.7 narrowing).
func Narrowing[S num.Scalar[S]](a, b *Value[S]) *Value[S] {
	if a.IsBottom() || b.IsBottom() {
		return Bottom[S](a.IntDim, a.RealDim)
	}
	n := a.m.N()
	out := a.m.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j/2 > i/2 {
				continue
			}
			if out.Get(i, j).IsInfinity() {
				out.Set(i, j, b.m.Get(i, j))
			}
		}
	}
	v := &Value[S]{IntDim: a.IntDim, RealDim: a.RealDim, m: out, closed: false}
	return v.ensureClosed()
}

// BoundDimension returns the tightest interval enclosing dim, read
// directly off the closed matrix's row/column for that dimension
// (spec §4.7 bound_dimension): -m[2i+1,2i]/2 is the lower bound,
// m[2i,2i+1]/2 is the upper.
func BoundDimension[S num.Scalar[S]](v *Value[S], dim int) interval.Interval[S] {
	if v.IsBottom() {
		return interval.Top[S]()
	}
	v = v.ensureClosed()
	if v.IsBottom() {
		return interval.Top[S]()
	}
	lo := v.m.Get(2*dim+1, 2*dim)
	hi := v.m.Get(2*dim, 2*dim+1)
	loB, hiB := bound.Infinity[S](), bound.Infinity[S]()
	if !lo.IsInfinity() {
		val, _ := lo.Value()
		h, _ := val.Half()
		loB = bound.Finite(h.Neg())
	}
	if !hi.IsInfinity() {
		val, _ := hi.Value()
		h, _ := val.Half()
		hiB = bound.Finite(h)
	}
	return interval.FromBounds(loB, hiB)
}

// ForgetArray existentially quantifies out the given dimensions (spec
// §4.7's forget, implied by add/remove and assignment's fallback
// path): every entry touching a forgotten dimension's two indices is
// reset to +∞ except its own diagonal.
func ForgetArray[S num.Scalar[S]](v *Value[S], dims []int) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	out := v.m.Clone()
	n := out.N()
	for _, d := range dims {
		for _, idx := range [2]int{2 * d, 2*d + 1} {
			for k := 0; k < n; k++ {
				if k == idx {
					continue
				}
				out.Set(idx, k, bound.Infinity[S]())
				out.Set(k, idx, bound.Infinity[S]())
			}
		}
	}
	return &Value[S]{IntDim: v.IntDim, RealDim: v.RealDim, m: out, closed: false}
}

// AddDimensions appends intdimAdd+realdimAdd fresh unconstrained
// variables (spec §4.7 add_dimensions): exact, the new rows/columns
// are entirely +∞ off the diagonal.
func AddDimensions[S num.Scalar[S]](v *Value[S], intdimAdd, realdimAdd int) *Value[S] {
	newIntDim, newRealDim := v.IntDim+intdimAdd, v.RealDim+realdimAdd
	if v.IsBottom() {
		return Bottom[S](newIntDim, newRealDim)
	}
	n := newIntDim + newRealDim
	out := NewHalfMatrix[S](n)
	oldN := v.m.N()
	for i := 0; i < oldN; i++ {
		for j := 0; j < oldN; j++ {
			if j/2 > i/2 {
				continue
			}
			out.Set(i, j, v.m.Get(i, j))
		}
	}
	return &Value[S]{IntDim: newIntDim, RealDim: newRealDim, m: out, closed: v.closed}
}

// RemoveDimensions projects out the listed dimensions (spec §4.7
// remove_dimensions): forget them, then physically drop their rows
// and columns and renumber what remains.
func RemoveDimensions[S num.Scalar[S]](v *Value[S], dims []int, intdimRemoved int) *Value[S] {
	newIntDim := v.IntDim - intdimRemoved
	newRealDim := v.RealDim - (len(dims) - intdimRemoved)
	if v.IsBottom() {
		return Bottom[S](newIntDim, newRealDim)
	}
	forgotten := ForgetArray(v, dims)
	drop := make(map[int]bool, len(dims))
	for _, d := range dims {
		drop[d] = true
	}
	keepDims := make([]int, 0, v.Dims()-len(dims))
	for d := 0; d < v.Dims(); d++ {
		if !drop[d] {
			keepDims = append(keepDims, d)
		}
	}
	n := newIntDim + newRealDim
	out := NewHalfMatrix[S](n)
	for ni, od := range keepDims {
		for nj, od2 := range keepDims {
			for si := 0; si < 2; si++ {
				for sj := 0; sj < 2; sj++ {
					i, j := 2*od+si, 2*od2+sj
					ni2, nj2 := 2*ni+si, 2*nj+sj
					if nj2/2 > ni2/2 {
						continue
					}
					out.Set(ni2, nj2, forgotten.m.Get(i, j))
				}
			}
		}
	}
	return &Value[S]{IntDim: newIntDim, RealDim: newRealDim, m: out, closed: false}
}

// PermuteDimensions reorders variables according to perm (spec §4.7
// permute_dimensions): perm[i] names the old dimension now occupying
// position i.
func PermuteDimensions[S num.Scalar[S]](v *Value[S], perm []int) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	n := v.m.N()
	out := NewHalfMatrix[S](n / 2)
	for ni, od := range perm {
		for nj, od2 := range perm {
			for si := 0; si < 2; si++ {
				for sj := 0; sj < 2; sj++ {
					i, j := 2*od+si, 2*od2+sj
					ni2, nj2 := 2*ni+si, 2*nj+sj
					if nj2/2 > ni2/2 {
						continue
					}
					out.Set(ni2, nj2, v.m.Get(i, j))
				}
			}
		}
	}
	return &Value[S]{IntDim: v.IntDim, RealDim: v.RealDim, m: out, closed: v.closed}
}

// Expand duplicates dimension dim into n unconstrained-but-linked
// copies, each constrained identically to dim (spec §4.7 expand): the
// new variable's row/column is seeded as an exact copy of dim's, which
// is the octagon-side analogue of poly.Expand's row duplication.
func Expand[S num.Scalar[S]](v *Value[S], dim, n int) *Value[S] {
	isInt := dim < v.IntDim
	intAdd, realAdd := 0, n
	if isInt {
		intAdd, realAdd = n, 0
	}
	expanded := AddDimensions(v, intAdd, realAdd)
	if expanded.IsBottom() {
		return expanded
	}
	base := v.Dims()
	for k := 0; k < n; k++ {
		newDim := base + k
		for _, si := range [2]int{0, 1} {
			for _, sj := range [2]int{0, 1} {
				expanded.m.Set(2*newDim+si, 2*newDim+sj, expanded.m.Get(2*dim+si, 2*dim+sj))
			}
		}
		n2 := expanded.m.N()
		for other := 0; other < n2/2; other++ {
			if other == dim || other == newDim {
				continue
			}
			for _, si := range [2]int{0, 1} {
				for _, sj := range [2]int{0, 1} {
					expanded.m.Set(2*newDim+si, 2*other+sj, expanded.m.Get(2*dim+si, 2*other+sj))
					expanded.m.Set(2*other+si, 2*newDim+sj, expanded.m.Get(2*other+si, 2*dim+sj))
				}
			}
		}
	}
	expanded.closed = v.closed
	return expanded
}

// Fold merges the dimensions listed in dims into the first by joining
// the octagon with itself after permuting each folded dimension onto
// the first's position, then removing the redundant columns (spec
// §4.7 fold): mirrors poly.Fold's equate-then-join strategy, using
// Meet-by-equality's octagon equivalent (a unit equality constraint
// pinning the two indices together) in place of poly's generic
// Chernikova meet.
func Fold[S num.Scalar[S]](v *Value[S], dims []int) *Value[S] {
	if len(dims) < 2 {
		return v.Clone()
	}
	var acc *Value[S]
	for _, d := range dims[1:] {
		equated := v.Clone()
		if !equated.IsBottom() {
			// x_dims[0] - x_d <= 0 and x_d - x_dims[0] <= 0 (equality)
			i0, iD := 2*dims[0], 2*d
			z := equated.m.Get(0, 0) // a finite (zero) bound, reused for its type
			zv, _ := z.Value()
			zero := bound.Finite(zv)
			equated.m.Set(i0^1, iD, zero)
			equated.m.Set(iD^1, i0, zero)
			equated = equated.ensureClosed()
		}
		remDims := append([]int{}, dims[1:]...)
		reduced := RemoveDimensions(equated, remDims, countIntDims(v, remDims))
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

// AssignLinexpr assigns dim := e over v (spec §4.7 assignment) by
// forgetting dim and re-constraining it to BoundLinexpr's interval
// enclosure. original_source's octagon assignment takes a row/column
// fast path when e is a unit form referencing dim invertibly; this
// implementation always takes the general forget-and-constrain path,
// the same simplification poly.AssignLinexpr's doc comment records
// for the polyhedra domain.
func AssignLinexpr[S num.Scalar[S]](v *Value[S], dim int, e linexpr.Expr[S]) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	forgotten := ForgetArray(v, []int{dim})
	bounded := BoundLinexpr(v, e)
	box := make([]interval.Interval[S], v.Dims())
	for i := range box {
		box[i] = interval.Top[S]()
	}
	box[dim] = bounded
	boxOct := OfBox[S](forgotten.IntDim, forgotten.RealDim, box)
	return Meet(forgotten, boxOct)
}

// SubstituteLinexpr is the pullback counterpart of AssignLinexpr
// (spec §4.7, implied by substitute's general definition): since
// octagon constraints are closed under the same forget-and-constrain
// treatment regardless of direction, substitution and assignment
// coincide in this implementation (the invertible-unit-form fast path
// the source takes is an optimization, not a semantic difference).
func SubstituteLinexpr[S num.Scalar[S]](v *Value[S], dim int, e linexpr.Expr[S]) *Value[S] {
	return AssignLinexpr(v, dim, e)
}

// AssignLinexprArray computes the simultaneous assignment
// dims[i] := exprs[i] over v (spec §6 assign_linexpr_array): every
// bound is computed against the original v before anything is
// forgotten, then all of dims are forgotten and re-constrained
// together in one Meet — a parallel assignment, not len(dims)
// sequential AssignLinexpr calls (which would let a later
// dimension's bound see an earlier dimension's already-forgotten,
// unconstrained state).
func AssignLinexprArray[S num.Scalar[S]](v *Value[S], dims []int, exprs []linexpr.Expr[S]) *Value[S] {
	if v.IsBottom() {
		return v.Clone()
	}
	bounds := make([]interval.Interval[S], len(exprs))
	for i, e := range exprs {
		bounds[i] = BoundLinexpr(v, e)
	}
	forgotten := ForgetArray(v, dims)
	box := make([]interval.Interval[S], v.Dims())
	for i := range box {
		box[i] = interval.Top[S]()
	}
	for i, d := range dims {
		box[d] = bounds[i]
	}
	boxOct := OfBox[S](forgotten.IntDim, forgotten.RealDim, box)
	return Meet(forgotten, boxOct)
}

// SubstituteLinexprArray is the pullback counterpart of
// AssignLinexprArray (spec §6 substitute_linexpr_array): coincides
// with it here for the same reason SubstituteLinexpr coincides with
// AssignLinexpr (see DESIGN.md).
func SubstituteLinexprArray[S num.Scalar[S]](v *Value[S], dims []int, exprs []linexpr.Expr[S]) *Value[S] {
	return AssignLinexprArray(v, dims, exprs)
}

// SatInterval reports whether every value e can take over v falls
// within iv (spec §6 sat_interval): BoundLinexpr's enclosure of e
// checked for containment, the same test poly.SatInterval performs.
func SatInterval[S num.Scalar[S]](v *Value[S], e linexpr.Expr[S], iv interval.Interval[S]) bool {
	return BoundLinexpr(v, e).Leq(iv)
}

// BoundLinexpr computes sup of e over v by evaluating e against the
// box read off v's closed matrix (spec §4.7, shared with poly's
// quasilinearization-based bound_linexpr): octagons have no vertex
// enumeration to optimize over, so the per-dimension box is the
// tightest information available short of another octagon-specific LP.
func BoundLinexpr[S num.Scalar[S]](v *Value[S], e linexpr.Expr[S]) interval.Interval[S] {
	if v.IsBottom() {
		return interval.Top[S]()
	}
	box := make([]interval.Interval[S], v.Dims())
	for i := range box {
		box[i] = BoundDimension(v, i)
	}
	return linexpr.Eval(e, box)
}

// SatLincons reports whether every point of v satisfies e >= 0 (or
// = 0), tested via BoundLinexpr's enclosure of e (spec §4.7 sat_lincons):
// conservative when e is non-unit, since the box enclosure may be
// looser than the octagon itself.
func SatLincons[S num.Scalar[S]](v *Value[S], e linexpr.Expr[S], eq bool) bool {
	b := BoundLinexpr(v, e)
	lo, ok := b.Lower()
	if !ok {
		return false
	}
	val, _ := lo.Value()
	if eq {
		hi := b.Upper()
		if hi.IsInfinity() {
			return false
		}
		hv, _ := hi.Value()
		return val.IsZero() && hv.IsZero()
	}
	return val.Sgn() >= 0
}

// IsDimensionUnconstrained reports whether dim is free to take any
// value (spec §4.7, implied): BoundDimension(v, dim) is top.
func IsDimensionUnconstrained[S num.Scalar[S]](v *Value[S], dim int) bool {
	return BoundDimension(v, dim).IsTop()
}

// ToBox returns the per-dimension enclosing interval (spec §4.7 to_box).
func ToBox[S num.Scalar[S]](v *Value[S]) []interval.Interval[S] {
	box := make([]interval.Interval[S], v.Dims())
	for i := range box {
		box[i] = BoundDimension(v, i)
	}
	return box
}
