// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"testing"

	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/linexpr"
	"github.com/elazarg/elina/num"
)

func iv(lo, hi int64) interval.Interval[num.Int64] {
	return interval.FromBounds(bound.Finite(num.NewInt64(lo)), bound.Finite(num.NewInt64(hi)))
}

// exprDim returns the expression that selects dimension d unchanged
// (coefficient 1, no constant).
func exprDim(d int) linexpr.Expr[num.Int64] {
	return linexpr.Expr[num.Int64]{
		Const: interval.Point(num.NewInt64(0)),
		Terms: []linexpr.Term[num.Int64]{linexpr.NewTerm(d, interval.Point(num.NewInt64(1)))},
	}
}

func TestMeetArrayAgreesWithIteratedMeet(t *testing.T) {
	a := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(0, 10)})
	b := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(2, 8)})
	c := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(4, 6)})
	chained := Meet(Meet(a, b), c)
	arr := MeetArray([]*Value[num.Int64]{a, b, c})
	if !IsEq(chained, arr) {
		t.Fatalf("MeetArray should agree with pairwise-chained Meet")
	}
}

func TestSatIntervalTracksBoundLinexpr(t *testing.T) {
	sq := unitSquare(t)
	x := exprDim(0)
	if !SatInterval(sq, x, iv(0, 1)) {
		t.Fatalf("x in [0,1] should hold over the unit square")
	}
	if SatInterval(sq, x, iv(2, 3)) {
		t.Fatalf("x in [2,3] should not hold over the unit square")
	}
}

func TestBoundDimensionMatchesBoxOfGenerators(t *testing.T) {
	sq := unitSquare(t)
	box := BoxOfGenerators(sq)
	for d := range box {
		got := BoundDimension(sq, d)
		if !got.Equal(box[d]) {
			t.Fatalf("dim %d: BoundDimension %v should match BoxOfGenerators %v", d, got, box[d])
		}
	}
}

func TestAssignLinexprArraySwapsSimultaneously(t *testing.T) {
	v := OfBox[num.Int64](0, 2, []interval.Interval[num.Int64]{iv(0, 2), iv(3, 5)})
	swapped := AssignLinexprArray(v, []int{0, 1}, []linexpr.Expr[num.Int64]{exprDim(1), exprDim(0)})
	box := BoxOfGenerators(swapped)
	if !box[0].Equal(iv(3, 5)) {
		t.Fatalf("dim 0 should take on the old dim 1 range, got %v", box[0])
	}
	if !box[1].Equal(iv(0, 2)) {
		t.Fatalf("dim 1 should take on the old dim 0 range, got %v", box[1])
	}
}

func TestSubstituteLinexprArrayMatchesSequentialSubstituteWhenIndependent(t *testing.T) {
	sq := unitSquare(t)
	// Independent (non-cross-referencing) substitutions: pinning each
	// dimension to a constant should agree whether folded together or
	// one at a time, since neither expression mentions any dimension.
	pinX := linexpr.Expr[num.Int64]{Const: interval.Point(num.NewInt64(5))}
	pinY := linexpr.Expr[num.Int64]{Const: interval.Point(num.NewInt64(7))}
	viaArray := SubstituteLinexprArray(sq, []int{0, 1}, []linexpr.Expr[num.Int64]{pinX, pinY})
	viaSequential := SubstituteLinexpr(SubstituteLinexpr(sq, 0, pinX), 1, pinY)
	if !IsEq(viaArray, viaSequential) {
		t.Fatalf("SubstituteLinexprArray should agree with sequential SubstituteLinexpr for independent expressions")
	}
}
