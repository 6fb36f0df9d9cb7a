// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "github.com/elazarg/elina/num"

// Status is the set of orthogonal representation-invariant flags spec
// §4.3 describes as a status bitset; kept here as a plain record
// (spec §9: "encode as a small set of Booleans grouped in a record").
type Status struct {
	ConsC    bool // C is in gauss (row-echelon, normalized) form
	ConsF    bool // F is in gauss form
	GenGauss bool // generator side of an ongoing gauss reduction
	ConGauss bool // constraint side of an ongoing gauss reduction
	Minimal  bool // no row of C or F is redundant
}

// Canonical reports ConsC ∧ ConsF ∧ Minimal (spec §4.3; row-sort
// order, the fourth conjunct, is established by Canonicalize).
func (s Status) Canonical() bool { return s.ConsC && s.ConsF && s.Minimal }

// Value is a polyhedron over intdim+realdim dimensions, represented by
// the double description pair (C, F) and their saturation matrices
// (spec §3). A nil C or F means that side of the representation has
// not been computed; both nil denotes ⊥ only when explicitly
// constructed as Bottom (an unconstrained, not-yet-converted value
// also has both nil transiently — callers distinguish via the
// IsBottom/IsTop predicates, not by inspecting C/F directly).
type Value[S num.Scalar[S]] struct {
	IntDim, RealDim int
	C               []ConsRow[S]
	F               []GenRow[S]
	SatC            *SatMatrix // generator rows vs constraint columns
	SatF            *SatMatrix // constraint rows vs generator columns (transpose view)
	NbEq            int
	NbLine          int
	St              Status
	bottom          bool // explicit ⊥, distinct from "not yet converted"
}

// Dims returns the total dimension count.
func (v *Value[S]) Dims() int { return v.IntDim + v.RealDim }

// Clone returns a deep copy; abstract values never share matrices
// (spec §3).
func (v *Value[S]) Clone() *Value[S] {
	cp := &Value[S]{IntDim: v.IntDim, RealDim: v.RealDim, NbEq: v.NbEq, NbLine: v.NbLine, St: v.St, bottom: v.bottom}
	if v.C != nil {
		cp.C = make([]ConsRow[S], len(v.C))
		for i, r := range v.C {
			cp.C[i] = r.Clone()
		}
	}
	if v.F != nil {
		cp.F = make([]GenRow[S], len(v.F))
		for i, r := range v.F {
			cp.F[i] = r.Clone()
		}
	}
	if v.SatC != nil {
		cp.SatC = v.SatC.Clone()
	}
	if v.SatF != nil {
		cp.SatF = v.SatF.Clone()
	}
	return cp
}

// Top returns the unconstrained polyhedron over n = intdim+realdim
// dimensions: empty constraint system and a vertex at the origin plus
// one line per dimension. Spec §4.4 describes this generator set
// loosely as "a single vertex + n rays"; a one-directional ray cannot
// generate an unrestricted dimension (e.g. it could never certify
// x ≤ 5 for an x allowed to be arbitrarily negative), so this
// implementation uses Line rows, the row kind spec §3 itself defines
// for exactly this purpose. Recorded as a DESIGN.md decision.
func Top[S num.Scalar[S]](intdim, realdim int) *Value[S] {
	n := intdim + realdim
	var z S
	zero := z.Sub(z)
	one := z.FromInt64(1)
	origin := make([]S, n)
	for i := range origin {
		origin[i] = zero
	}
	gens := make([]GenRow[S], 0, n+1)
	gens = append(gens, GenRow[S]{Kind: Vertex, Denom: one, Coeffs: origin})
	for i := 0; i < n; i++ {
		coeffs := make([]S, n)
		for j := range coeffs {
			coeffs[j] = zero
		}
		coeffs[i] = one
		gens = append(gens, GenRow[S]{Kind: Line, Denom: zero, Coeffs: coeffs})
	}
	return &Value[S]{
		IntDim: intdim, RealDim: realdim,
		C: []ConsRow[S]{}, F: gens,
		NbLine: n,
		St:     Status{ConsC: true, ConsF: true, GenGauss: true, ConGauss: true, Minimal: true},
	}
}

// Bottom returns the empty polyhedron over n dimensions.
func Bottom[S num.Scalar[S]](intdim, realdim int) *Value[S] {
	return &Value[S]{
		IntDim: intdim, RealDim: realdim,
		C: []ConsRow[S]{}, F: []GenRow[S]{},
		bottom: true,
		St:     Status{ConsC: true, ConsF: true, Minimal: true},
	}
}

// IsBottom reports whether v is the empty polyhedron.
func (v *Value[S]) IsBottom() bool {
	if v.bottom {
		return true
	}
	return v.F != nil && len(v.F) == 0
}

// IsTop reports whether v is the unconstrained polyhedron.
func (v *Value[S]) IsTop() bool {
	return !v.bottom && v.C != nil && len(v.C) == 0
}
