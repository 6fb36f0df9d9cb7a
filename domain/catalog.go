// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/linexpr"
	"github.com/elazarg/elina/num"
	"github.com/elazarg/elina/octagon"
	"github.com/elazarg/elina/poly"
)

// PolyOps is the operation catalog for the polyhedra domain, one
// field per named operation (spec §6's "table of function pointers",
// rendered as a struct of function values the way mat64.Matrix lets a
// caller swap Dense/Sym/Tri implementations behind one interface
// rather than a type switch). A client selects the catalog instead of
// importing poly directly when it wants dimension-list arguments
// validated by the Manager before the call reaches poly's panic-on-bug
// preconditions.
type PolyOps[S num.Scalar[S]] struct {
	OfBox                   func(intdim, realdim int, box []interval.Interval[S]) *poly.Value[S]
	OfLinconsArray          func(intdim, realdim int, cons []poly.ConsRow[S]) *poly.Value[S]
	Meet                    func(a, b *poly.Value[S]) *poly.Value[S]
	MeetArray               func(vs []*poly.Value[S]) *poly.Value[S]
	Join                    func(a, b *poly.Value[S]) *poly.Value[S]
	IsLeq                   func(a, b *poly.Value[S]) bool
	IsEq                    func(a, b *poly.Value[S]) bool
	SatLincons              func(v *poly.Value[S], c poly.ConsRow[S]) bool
	SatInterval             func(v *poly.Value[S], e linexpr.Expr[S], iv interval.Interval[S]) bool
	Widening                func(a, b *poly.Value[S]) *poly.Value[S]
	Narrowing               func(a, b *poly.Value[S]) *poly.Value[S]
	BoundLinexpr            func(v *poly.Value[S], e linexpr.Expr[S]) interval.Interval[S]
	BoundDimension          func(v *poly.Value[S], dim int) interval.Interval[S]
	ToBox                   func(v *poly.Value[S]) []interval.Interval[S]
	AssignLinexpr           func(v *poly.Value[S], dim int, e linexpr.Expr[S]) *poly.Value[S]
	AssignLinexprArray      func(v *poly.Value[S], dims []int, exprs []linexpr.Expr[S]) *poly.Value[S]
	SubstituteLinexpr       func(v *poly.Value[S], dim int, e linexpr.Expr[S]) *poly.Value[S]
	SubstituteLinexprArray  func(v *poly.Value[S], dims []int, exprs []linexpr.Expr[S]) *poly.Value[S]
}

// OctagonOps is PolyOps' counterpart for the octagon domain.
type OctagonOps[S num.Scalar[S]] struct {
	OfBox                   func(intdim, realdim int, box []interval.Interval[S]) *octagon.Value[S]
	Meet                    func(a, b *octagon.Value[S]) *octagon.Value[S]
	MeetArray               func(vs []*octagon.Value[S]) *octagon.Value[S]
	Join                    func(a, b *octagon.Value[S]) *octagon.Value[S]
	JoinArray               func(vs []*octagon.Value[S]) *octagon.Value[S]
	IsLeq                   func(a, b *octagon.Value[S]) bool
	IsEq                    func(a, b *octagon.Value[S]) bool
	Widening                func(a, b *octagon.Value[S]) *octagon.Value[S]
	Narrowing               func(a, b *octagon.Value[S]) *octagon.Value[S]
	BoundLinexpr            func(v *octagon.Value[S], e linexpr.Expr[S]) interval.Interval[S]
	BoundDimension          func(v *octagon.Value[S], dim int) interval.Interval[S]
	SatLincons              func(v *octagon.Value[S], e linexpr.Expr[S], eq bool) bool
	SatInterval             func(v *octagon.Value[S], e linexpr.Expr[S], iv interval.Interval[S]) bool
	ToBox                   func(v *octagon.Value[S]) []interval.Interval[S]
	AssignLinexpr           func(v *octagon.Value[S], dim int, e linexpr.Expr[S]) *octagon.Value[S]
	AssignLinexprArray      func(v *octagon.Value[S], dims []int, exprs []linexpr.Expr[S]) *octagon.Value[S]
	SubstituteLinexpr       func(v *octagon.Value[S], dim int, e linexpr.Expr[S]) *octagon.Value[S]
	SubstituteLinexprArray  func(v *octagon.Value[S], dims []int, exprs []linexpr.Expr[S]) *octagon.Value[S]
}

// Poly returns the polyhedra operation catalog bound to the package
// functions directly; the Manager itself carries no per-call state
// beyond what dimension-list validation below needs.
func (m *Manager[S]) Poly() PolyOps[S] {
	return PolyOps[S]{
		OfBox:                  poly.OfBox[S],
		OfLinconsArray:         poly.OfLinconsArray[S],
		Meet:                   poly.Meet[S],
		MeetArray:              poly.MeetArray[S],
		Join:                   poly.Join[S],
		IsLeq:                  poly.IsLeq[S],
		IsEq:                   poly.IsEq[S],
		SatLincons:             poly.SatLincons[S],
		SatInterval:            poly.SatInterval[S],
		Widening:               poly.Widening[S],
		Narrowing:              poly.Narrowing[S],
		BoundLinexpr:           poly.BoundLinexpr[S],
		BoundDimension:         poly.BoundDimension[S],
		ToBox:                  poly.ToBox[S],
		AssignLinexpr:          poly.AssignLinexpr[S],
		AssignLinexprArray:     poly.AssignLinexprArray[S],
		SubstituteLinexpr:      poly.SubstituteLinexpr[S],
		SubstituteLinexprArray: poly.SubstituteLinexprArray[S],
	}
}

// Octagon returns the octagon operation catalog bound to the package
// functions directly.
func (m *Manager[S]) Octagon() OctagonOps[S] {
	return OctagonOps[S]{
		OfBox:                  octagon.OfBox[S],
		Meet:                   octagon.Meet[S],
		MeetArray:              octagon.MeetArray[S],
		Join:                   octagon.Join[S],
		JoinArray:              octagon.JoinArray[S],
		IsLeq:                  octagon.IsLeq[S],
		IsEq:                   octagon.IsEq[S],
		Widening:               octagon.Widening[S],
		Narrowing:              octagon.Narrowing[S],
		BoundLinexpr:           octagon.BoundLinexpr[S],
		BoundDimension:         octagon.BoundDimension[S],
		SatLincons:             octagon.SatLincons[S],
		SatInterval:            octagon.SatInterval[S],
		ToBox:                  octagon.ToBox[S],
		AssignLinexpr:          octagon.AssignLinexpr[S],
		AssignLinexprArray:     octagon.AssignLinexprArray[S],
		SubstituteLinexpr:      octagon.SubstituteLinexpr[S],
		SubstituteLinexprArray: octagon.SubstituteLinexprArray[S],
	}
}

// ValidateDimSet checks that dims names distinct, in-range columns of
// a total-dims-sized value before a RemoveDimensions/PermuteDimensions
// call reaches poly/octagon's panic-on-bug preconditions (spec §7:
// a malformed caller argument is Invalid, not a panic). It borrows a
// scratch bit-vector from the Manager's pool rather than allocating
// one per call, the same per-size sync.Pool discipline mat/pool.go
// uses for Dense workspaces.
func (m *Manager[S]) ValidateDimSet(total int, dims []int) *Exception {
	words := m.scratch.getBitwords((total + 63) / 64)
	defer m.scratch.putBitwords(words)
	for i := range words {
		words[i] = 0
	}
	for _, d := range dims {
		if d < 0 || d >= total {
			return &Exception{Kind: Invalid, Msg: "dimension index out of range"}
		}
		w, bit := d/64, uint(d%64)
		if words[w]&(1<<bit) != 0 {
			return &Exception{Kind: Invalid, Msg: "duplicate dimension index"}
		}
		words[w] |= 1 << bit
	}
	return nil
}
