// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"testing"

	"github.com/elazarg/elina/num"
)

func cr(k ConsKind, c int64, coeffs ...int64) ConsRow[num.Int64] {
	s := make([]num.Int64, len(coeffs))
	for i, v := range coeffs {
		s[i] = num.NewInt64(v)
	}
	return ConsRow[num.Int64]{Kind: k, Denom: num.NewInt64(1), Const: num.NewInt64(c), Coeffs: s}
}

func TestTopIsUnconstrainedInEveryDirection(t *testing.T) {
	top := Top[num.Int64](0, 2)
	if top.IsBottom() {
		t.Fatalf("Top must not be bottom")
	}
	box := BoxOfGenerators(top)
	for i, iv := range box {
		if !iv.IsTop() {
			t.Fatalf("dim %d of Top should be unconstrained, got %v", i, iv)
		}
	}
}

func TestBottomIsBottom(t *testing.T) {
	b := Bottom[num.Int64](0, 2)
	if !b.IsBottom() {
		t.Fatalf("Bottom must report IsBottom")
	}
}

// A 2x2 unit square built from four inequalities, mirroring the
// two-dimensional intersection scenario: 0<=x<=1, 0<=y<=1.
func unitSquare(t *testing.T) *Value[num.Int64] {
	t.Helper()
	cons := []ConsRow[num.Int64]{
		cr(GEQ, 0, 1, 0),  // x >= 0
		cr(GEQ, 1, -1, 0), // -x + 1 >= 0, i.e. x <= 1
		cr(GEQ, 0, 0, 1),  // y >= 0
		cr(GEQ, 1, 0, -1), // -y + 1 >= 0, i.e. y <= 1
	}
	return OfLinconsArray[num.Int64](0, 2, cons)
}

func TestUnitSquareSatisfiesItsOwnConstraints(t *testing.T) {
	sq := unitSquare(t)
	if sq.IsBottom() {
		t.Fatalf("unit square should not be bottom")
	}
	for _, c := range sq.C {
		if !SatLincons(sq, c) {
			t.Fatalf("square does not satisfy its own constraint %+v", c)
		}
	}
}

// TestUnitSquareIsBoundedInBothDimensions pins down the actual shape
// produced by unitSquare: each of the four half-plane constraints must
// clip Top's unbounded Lines down to a finite box, not leave either
// axis unbounded. This is the scenario that caught mergeKind/keep
// classifying a clipped Line as still-unbounded (see DESIGN.md).
func TestUnitSquareIsBoundedInBothDimensions(t *testing.T) {
	sq := unitSquare(t)
	box := BoxOfGenerators(sq)
	zero, one := num.NewInt64(0), num.NewInt64(1)
	for i, iv := range box {
		if iv.IsTop() {
			t.Fatalf("dim %d of unit square should be bounded, got top", i)
		}
		lo, ok := iv.Lower()
		loV, loOk := lo.Value()
		if !ok || !loOk || loV.Cmp(zero) != 0 {
			t.Fatalf("dim %d lower bound should be 0, got %v (ok=%v)", i, loV, ok)
		}
		hi := iv.Upper()
		if hi.IsInfinity() {
			t.Fatalf("dim %d upper bound should be finite, got +inf", i)
		}
		hiV, _ := hi.Value()
		if hiV.Cmp(one) != 0 {
			t.Fatalf("dim %d upper bound should be 1, got %v", i, hiV)
		}
	}
	for _, g := range sq.F {
		if g.Kind != Vertex {
			t.Fatalf("unit square's minimal generator set should be all Vertex, found %v: %+v", g.Kind, g)
		}
	}
	if len(sq.F) != 4 {
		t.Fatalf("unit square should have exactly 4 vertices, got %d: %+v", len(sq.F), sq.F)
	}
}

func TestSaturationInvariant(t *testing.T) {
	sq := unitSquare(t)
	if sq.SatC == nil {
		t.Fatalf("expected SatC to be populated")
	}
	want := BuildSatC(sq.C, sq.F)
	for g := 0; g < want.NumGenerators(); g++ {
		for c := 0; c < len(sq.C); c++ {
			if want.Saturates(g, c) != sq.SatC.Saturates(g, c) {
				t.Fatalf("saturation mismatch at (gen=%d,cons=%d): recomputed=%v stored=%v",
					g, c, want.Saturates(g, c), sq.SatC.Saturates(g, c))
			}
		}
	}
}

func TestMeetOfTwoHalfPlanesIsBoundedBox(t *testing.T) {
	a := OfLinconsArray[num.Int64](0, 2, []ConsRow[num.Int64]{
		cr(GEQ, 0, 1, 0),
		cr(GEQ, 1, -1, 0),
	})
	b := OfLinconsArray[num.Int64](0, 2, []ConsRow[num.Int64]{
		cr(GEQ, 0, 0, 1),
		cr(GEQ, 1, 0, -1),
	})
	m := Meet(a, b)
	if m.IsBottom() {
		t.Fatalf("meet of two consistent half-plane pairs should not be bottom")
	}
	box := BoxOfGenerators(m)
	for i, iv := range box {
		if iv.IsTop() {
			t.Fatalf("dim %d should be bounded after meet, got top", i)
		}
	}
}

func TestMeetWithInconsistentConstraintIsBottom(t *testing.T) {
	sq := unitSquare(t)
	infeasible := MeetLinconsArray(sq, []ConsRow[num.Int64]{
		cr(GEQ, -5, 1, 0), // x - 5 >= 0, impossible alongside x <= 1
	})
	if !infeasible.IsBottom() {
		t.Fatalf("expected meet with x>=5 on a unit square to be bottom")
	}
}

func TestJoinIsAtLeastAsLargeAsEitherOperand(t *testing.T) {
	left := OfLinconsArray[num.Int64](0, 1, []ConsRow[num.Int64]{
		cr(EQ, 0, 1),
	})
	right := OfLinconsArray[num.Int64](0, 1, []ConsRow[num.Int64]{
		cr(EQ, -1, 1),
	})
	j := Join(left, right)
	if !IsLeq(left, j) || !IsLeq(right, j) {
		t.Fatalf("join must be an upper bound of both operands")
	}
}

func TestIsLeqReflexiveAndTransitiveOnChain(t *testing.T) {
	sq := unitSquare(t)
	top := Top[num.Int64](0, 2)
	if !IsLeq(sq, sq) {
		t.Fatalf("IsLeq should be reflexive")
	}
	if !IsLeq(sq, top) {
		t.Fatalf("a bounded polyhedron should be leq Top")
	}
	if IsLeq(top, sq) {
		t.Fatalf("Top should not be leq a strictly bounded polyhedron")
	}
}

func TestWideningOfGrowingSequenceConverges(t *testing.T) {
	a := OfLinconsArray[num.Int64](0, 1, []ConsRow[num.Int64]{
		cr(GEQ, 0, 1),
		cr(GEQ, 5, -1),
	})
	b := OfLinconsArray[num.Int64](0, 1, []ConsRow[num.Int64]{
		cr(GEQ, 0, 1),
		cr(GEQ, 10, -1),
	})
	w := Widening(a, b)
	if !IsLeq(b, w) {
		t.Fatalf("widening result should be an upper bound of b")
	}
}
