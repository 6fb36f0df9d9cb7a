// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package octagon

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

func TestOfBoxRoundTripsThroughToBox(t *testing.T) {
	box := []interval.Interval[num.Int64]{iv(0, 3), iv(-2, 2)}
	v := OfBox[num.Int64](0, 2, box)
	if v.IsBottom() {
		t.Fatalf("box should not be bottom")
	}
	got := ToBox(v)
	for i := range box {
		wantLo, _ := box[i].Lower()
		gotLo, _ := got[i].Lower()
		if wantLo.Cmp(gotLo) != 0 {
			t.Fatalf("dim %d lower mismatch: want %v got %v", i, wantLo, gotLo)
		}
		if box[i].Upper().Cmp(got[i].Upper()) != 0 {
			t.Fatalf("dim %d upper mismatch: want %v got %v", i, box[i].Upper(), got[i].Upper())
		}
	}
}

func TestMeetWithTopIsIdentity(t *testing.T) {
	box := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(1, 4)})
	top := Top[num.Int64](0, 1)
	m := Meet(box, top)
	if !IsEq(m, box) {
		t.Fatalf("meet with top should be identity")
	}
}

func TestJoinWithBottomIsIdentity(t *testing.T) {
	box := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(1, 4)})
	bot := Bottom[num.Int64](0, 1)
	j := Join(box, bot)
	if !IsEq(j, box) {
		t.Fatalf("join with bottom should be identity")
	}
}

func TestMeetIsLeqBothOperands(t *testing.T) {
	a := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(0, 10)})
	b := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(5, 20)})
	m := Meet(a, b)
	if !IsLeq(m, a) || !IsLeq(m, b) {
		t.Fatalf("meet must be leq both operands")
	}
}

// Joining two disjoint boxes should produce an octagon covering both,
// an upper bound of each input (spec's join scenario).
func TestJoinOfTwoOctagonsIsUpperBound(t *testing.T) {
	a := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(0, 1)})
	b := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(5, 6)})
	j := Join(a, b)
	if !IsLeq(a, j) || !IsLeq(b, j) {
		t.Fatalf("join must be an upper bound of both operands")
	}
}

func TestWideningConvergesOnGrowingBound(t *testing.T) {
	a := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(0, 5)})
	b := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(0, 10)})
	w := Widening(a, b)
	if !IsLeq(b, w) {
		t.Fatalf("widening result should bound the growing sequence's latest iterate")
	}
}

func TestIsDimensionUnconstrainedOnTop(t *testing.T) {
	top := Top[num.Int64](0, 2)
	if !IsDimensionUnconstrained(top, 0) || !IsDimensionUnconstrained(top, 1) {
		t.Fatalf("every dimension of Top should be unconstrained")
	}
}

func TestForgetMakesDimensionUnconstrained(t *testing.T) {
	box := OfBox[num.Int64](0, 2, []interval.Interval[num.Int64]{iv(0, 3), iv(0, 3)})
	forgotten := ForgetArray(box, []int{0})
	if !IsDimensionUnconstrained(forgotten, 0) {
		t.Fatalf("forgotten dimension should be unconstrained")
	}
	if IsDimensionUnconstrained(forgotten, 1) {
		t.Fatalf("untouched dimension should remain constrained")
	}
}

func constExpr(c int64) linexpr.Expr[num.Int64] {
	return linexpr.Expr[num.Int64]{Const: iv(c, c)}
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
	box := OfBox[num.Int64](0, 1, []interval.Interval[num.Int64]{iv(0, 3)})
	x := linexpr.Expr[num.Int64]{Terms: []linexpr.Term[num.Int64]{linexpr.NewTerm(0, iv(1, 1))}}
	if !SatInterval(box, x, iv(0, 3)) {
		t.Fatalf("x in [0,3] should hold over a [0,3] box")
	}
	if SatInterval(box, x, iv(1, 2)) {
		t.Fatalf("x in [1,2] should not hold over a [0,3] box")
	}
}

func TestBoundDimensionMatchesToBox(t *testing.T) {
	v := OfBox[num.Int64](0, 2, []interval.Interval[num.Int64]{iv(0, 3), iv(-2, 2)})
	box := ToBox(v)
	for d := range box {
		got := BoundDimension(v, d)
		wantLo, _ := box[d].Lower()
		gotLo, _ := got.Lower()
		if wantLo.Cmp(gotLo) != 0 || box[d].Upper().Cmp(got.Upper()) != 0 {
			t.Fatalf("dim %d: BoundDimension %v should match ToBox %v", d, got, box[d])
		}
	}
}

func TestAssignLinexprArrayIsSimultaneous(t *testing.T) {
	v := OfBox[num.Int64](0, 2, []interval.Interval[num.Int64]{iv(0, 2), iv(3, 5)})
	x := linexpr.Expr[num.Int64]{Terms: []linexpr.Term[num.Int64]{linexpr.NewTerm(0, iv(1, 1))}}
	y := linexpr.Expr[num.Int64]{Terms: []linexpr.Term[num.Int64]{linexpr.NewTerm(1, iv(1, 1))}}
	swapped := AssignLinexprArray(v, []int{0, 1}, []linexpr.Expr[num.Int64]{y, x})
	box := ToBox(swapped)
	lo0, _ := box[0].Lower()
	if lo0.Cmp(num.NewInt64(3)) != 0 || box[0].Upper().Cmp(num.NewInt64(5)) != 0 {
		t.Fatalf("dim 0 should take on the old dim 1 range, got %v", box[0])
	}
	lo1, _ := box[1].Lower()
	if lo1.Cmp(num.NewInt64(0)) != 0 || box[1].Upper().Cmp(num.NewInt64(2)) != 0 {
		t.Fatalf("dim 1 should take on the old dim 0 range, got %v", box[1])
	}
}

func TestSubstituteLinexprArrayMatchesAssignLinexprArray(t *testing.T) {
	v := OfBox[num.Int64](0, 2, []interval.Interval[num.Int64]{iv(0, 2), iv(3, 5)})
	pinX, pinY := constExpr(1), constExpr(9)
	viaSubstitute := SubstituteLinexprArray(v, []int{0, 1}, []linexpr.Expr[num.Int64]{pinX, pinY})
	viaAssign := AssignLinexprArray(v, []int{0, 1}, []linexpr.Expr[num.Int64]{pinX, pinY})
	if !IsEq(viaSubstitute, viaAssign) {
		t.Fatalf("SubstituteLinexprArray should coincide with AssignLinexprArray on this domain")
	}
}
