// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"github.com/elazarg/elina/internal/bitset"
	"github.com/elazarg/elina/num"
)

// adjacent implements spec §4.3's adjacency test: gp and gm (indices
// into the full current generator set) are adjacent iff no other
// generator's saturation set is a proper superset of their common
// saturation set and.
func adjacent(and *bitset.Set, sat []*bitset.Set, gp, gm int) bool {
	for k, row := range sat {
		if k == gp || k == gm {
			continue
		}
		if and.SubsetEq(row) && !row.SubsetEq(and) {
			return false
		}
	}
	return true
}

// mergeKind decides the generator kind of a combination of two
// generators from the combination's own computed weight, not from a
// and b alone: a Vertex combined with a Ray or Line can still land on
// a nonzero-weight point (for instance a Line clipped by a new
// constraint through an off-origin Vertex), and classifying from a, b
// statically mislabels that result as an unbounded Ray or Line.
// weight is the combined row's un-normalized Denom, cp·gm.weight() −
// cm·gp.weight() computed by the caller before Normalize divides it
// down; it is nonzero iff the combination is a genuine point. A zero
// weight means the combination stays unbounded: Line if both inputs
// were Line (full Chernikova's Line+Line special case, spanning a new
// one-dimensional subspace), Ray otherwise.
func mergeKind[S num.Scalar[S]](weight S, a, b GenKind) GenKind {
	if !weight.IsZero() {
		return Vertex
	}
	if a == Line && b == Line {
		return Line
	}
	return Ray
}

// AddConstraint incorporates one new constraint row into a generator
// system (spec §4.3's incremental Chernikova, C-to-F direction). sat
// holds the saturation row of each current generator against the
// constraints processed so far; AddConstraint returns the updated
// generator system and its saturation rows extended by one column for
// the new constraint.
func AddConstraint[S num.Scalar[S]](gens []GenRow[S], sat []*bitset.Set, c ConsRow[S]) ([]GenRow[S], []*bitset.Set) {
	signs := make([]int, len(gens))
	for i, g := range gens {
		signs[i] = Dot(c, g).Sgn()
	}

	var plus, null, minus []int
	for i, s := range signs {
		switch {
		case s > 0:
			plus = append(plus, i)
		case s < 0:
			minus = append(minus, i)
		default:
			null = append(null, i)
		}
	}

	if c.Kind == EQ && len(plus) > 0 && len(minus) > 0 {
		// An equality with generators strictly on both sides: neither
		// side alone is admissible; treat every plus-signed generator
		// as if it were minus too, forcing a combination with every
		// opposite generator so the result lies exactly on the
		// hyperplane (spec requires EQ rows to be satisfied with
		// equality, i.e. strict satisfaction on either side violates
		// it symmetrically).
		minus = append(minus, plus...)
		plus = nil
	}

	newGens := make([]GenRow[S], 0, len(null)+len(plus)+len(plus)*len(minus))
	newSat := make([]*bitset.Set, 0, cap(newGens))

	keep := func(i int, g GenRow[S], saturates bool) {
		newGens = append(newGens, g)
		row := sat[i].Clone()
		grown := bitset.New(row.Len() + 1)
		for b := 0; b < row.Len(); b++ {
			if row.Has(b) {
				grown.Set(b)
			}
		}
		if saturates {
			grown.Set(row.Len())
		}
		newSat = append(newSat, grown)
	}
	for _, i := range null {
		keep(i, gens[i], true)
	}
	for _, i := range plus {
		g := gens[i]
		if g.Kind == Line {
			// A Line surviving strictly on the plus side of c no longer
			// spans both directions: the new constraint cuts off the
			// negative-coefficient direction, so only the stored
			// (positive-Dot) direction remains, a Ray rather than a Line.
			g = g.Clone()
			g.Kind = Ray
		}
		keep(i, g, false)
	}

	for _, gp := range plus {
		for _, gm := range minus {
			and := sat[gp].And(sat[gm])
			if !adjacent(and, sat, gp, gm) {
				continue
			}
			coefP := Dot(c, gens[gp])
			coefM := Dot(c, gens[gm])
			combo := combineGen(coefP, gens[gm], coefM.Neg(), gens[gp])
			newGens = append(newGens, combo)
			grown := bitset.New(and.Len() + 1)
			for b := 0; b < and.Len(); b++ {
				if and.Has(b) {
					grown.Set(b)
				}
			}
			grown.Set(and.Len())
			newSat = append(newSat, grown)
		}
	}
	return newGens, newSat
}

// combineGen returns cp·gm + cm·gp, normalized, the combination
// spec §4.3 step 2 describes (written there as (c·gp)·gm − (c·gm)·gp;
// the caller passes cm already negated so this helper is a plain sum).
// The result's Kind is classified from its own computed weight
// (cp·gm.weight() + cm·gp.weight(), which is exactly the combined
// Denom since Ray/Line always carry weight 0) rather than from gm.Kind
// and gp.Kind directly; see mergeKind.
func combineGen[S num.Scalar[S]](cp S, gm GenRow[S], cm S, gp GenRow[S]) GenRow[S] {
	n := len(gm.Coeffs)
	weight := cp.Mul(gm.weight()).Add(cm.Mul(gp.weight()))
	out := GenRow[S]{Kind: mergeKind(weight, gm.Kind, gp.Kind), Coeffs: make([]S, n)}
	out.Denom = cp.Mul(gm.Denom).Add(cm.Mul(gp.Denom))
	for i := 0; i < n; i++ {
		out.Coeffs[i] = cp.Mul(gm.Coeffs[i]).Add(cm.Mul(gp.Coeffs[i]))
	}
	return out.Normalize()
}

// AddGenerator is the dual of AddConstraint: incorporating one new
// generator row into a constraint system (spec §4.3's F-to-C
// direction, used by add_ray_array). Constraints play the role
// generators played above; a constraint "saturates" a generator under
// the same Dot==0 test, so the same plus/null/minus partition and
// adjacency test apply with the argument roles swapped.
func AddGenerator[S num.Scalar[S]](cons []ConsRow[S], sat []*bitset.Set, g GenRow[S]) ([]ConsRow[S], []*bitset.Set) {
	signs := make([]int, len(cons))
	for i, c := range cons {
		signs[i] = Dot(c, g).Sgn()
	}

	var plus, null, minus []int
	for i, s := range signs {
		switch {
		case s > 0:
			plus = append(plus, i)
		case s < 0:
			minus = append(minus, i)
		default:
			null = append(null, i)
		}
	}
	// A new generator can only ever be outside the current cone on
	// one side of each constraint at a time in the one-constraint
	// case; minus-signed constraints are violated by g and must be
	// replaced by combinations that admit it.

	newCons := make([]ConsRow[S], 0, len(null)+len(plus)+len(plus)*len(minus))
	newSat := make([]*bitset.Set, 0, cap(newCons))

	keep := func(i int, saturates bool) {
		newCons = append(newCons, cons[i])
		row := sat[i].Clone()
		grown := bitset.New(row.Len() + 1)
		for b := 0; b < row.Len(); b++ {
			if row.Has(b) {
				grown.Set(b)
			}
		}
		if saturates {
			grown.Set(row.Len())
		}
		newSat = append(newSat, grown)
	}
	for _, i := range null {
		keep(i, true)
	}
	for _, i := range plus {
		keep(i, false)
	}

	for _, cp := range plus {
		for _, cm := range minus {
			and := sat[cp].And(sat[cm])
			if !adjacent(and, sat, cp, cm) {
				continue
			}
			coefP := Dot(cons[cp], g)
			coefM := Dot(cons[cm], g)
			combo := combineCons(coefP, cons[cm], coefM.Neg(), cons[cp])
			newCons = append(newCons, combo)
			grown := bitset.New(and.Len() + 1)
			for b := 0; b < and.Len(); b++ {
				if and.Has(b) {
					grown.Set(b)
				}
			}
			grown.Set(and.Len())
			newSat = append(newSat, grown)
		}
	}
	return newCons, newSat
}

func combineCons[S num.Scalar[S]](cp S, cm ConsRow[S], cmNeg S, cpRow ConsRow[S]) ConsRow[S] {
	n := len(cm.Coeffs)
	out := ConsRow[S]{Kind: mergeConsKind(cm.Kind, cpRow.Kind), Coeffs: make([]S, n)}
	out.Denom = cp.Mul(cm.Denom).Add(cmNeg.Mul(cpRow.Denom))
	out.Const = cp.Mul(cm.Const).Add(cmNeg.Mul(cpRow.Const))
	for i := 0; i < n; i++ {
		out.Coeffs[i] = cp.Mul(cm.Coeffs[i]).Add(cmNeg.Mul(cpRow.Coeffs[i]))
	}
	return out.Normalize()
}

func mergeConsKind(a, b ConsKind) ConsKind {
	if a == EQ && b == EQ {
		return EQ
	}
	return GEQ
}
