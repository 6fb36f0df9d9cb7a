// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linexpr

import (
	"testing"

	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/num"
)

func rat(n int64) num.BigRat { return num.NewBigRat(n, 1) }

func ival(lo, hi int64) interval.Interval[num.BigRat] {
	return interval.FromBounds(bound.Finite(rat(lo)), bound.Finite(rat(hi)))
}

// TestEvalScenario is spec §8 scenario 6: expr = [1,3]·x, x∈[-2,4],
// eval = [-10, 16].
func TestEvalScenario(t *testing.T) {
	expr := Expr[num.BigRat]{
		Const: ival(0, 0),
		Terms: []Term[num.BigRat]{NewTerm(0, ival(1, 3))},
	}
	box := Box[num.BigRat]{ival(-2, 4)}
	got := Eval(expr, box)
	lo, _ := got.Lower()
	if lo.String() != "-10" || got.Upper().String() != "16" {
		t.Fatalf("Eval = %v, want [-10, 16]", got)
	}
}

// TestQuasilinearizeScenario is spec §8 scenario 6's quasilinear form:
// center 2, radius 1, constant gains [-4,4].
func TestQuasilinearizeScenario(t *testing.T) {
	expr := Expr[num.BigRat]{
		Const: ival(0, 0),
		Terms: []Term[num.BigRat]{NewTerm(0, ival(1, 3))},
	}
	box := Box[num.BigRat]{ival(-2, 4)}
	q := Quasilinearize(expr, box)
	if len(q.Terms) != 1 || !q.Terms[0].IsPoint {
		t.Fatalf("expected one point term, got %+v", q.Terms)
	}
	pv, _ := q.Terms[0].Coeff.Lower()
	if pv.String() != "2" {
		t.Fatalf("center should be 2, got %v", pv)
	}
	lo, _ := q.Const.Lower()
	if lo.String() != "-4" || q.Const.Upper().String() != "4" {
		t.Fatalf("constant should gain [-4,4], got %v", q.Const)
	}
}

func TestQuasilinearizeKeepsPointCoefficient(t *testing.T) {
	expr := Expr[num.BigRat]{
		Const: ival(0, 0),
		Terms: []Term[num.BigRat]{NewTerm(0, ival(5, 5))},
	}
	box := Box[num.BigRat]{ival(-2, 4)}
	q := Quasilinearize(expr, box)
	pv, _ := q.Terms[0].Coeff.Lower()
	if pv.String() != "5" {
		t.Fatalf("point coefficient should pass through unchanged, got %v", pv)
	}
	if !q.Const.IsPoint() {
		t.Fatalf("constant should remain a point when term was already point, got %v", q.Const)
	}
}

func TestQuasilinearizeLeavesUnboundedTermIntact(t *testing.T) {
	expr := Expr[num.BigRat]{
		Const: ival(0, 0),
		Terms: []Term[num.BigRat]{NewTerm(0, ival(1, 3))},
	}
	unbounded := interval.FromBounds(bound.Infinity[num.BigRat](), bound.Infinity[num.BigRat]())
	box := Box[num.BigRat]{unbounded}
	q := Quasilinearize(expr, box)
	if q.Terms[0].IsPoint {
		t.Fatalf("term over an unbounded dimension should be left as an interval coefficient")
	}
}

func TestEvalShortCircuitsOnTop(t *testing.T) {
	top := interval.Top[num.BigRat]()
	expr := Expr[num.BigRat]{
		Const: top,
		Terms: []Term[num.BigRat]{NewTerm(0, ival(1, 1))},
	}
	box := Box[num.BigRat]{ival(100, 200)} // would panic if BoundsMul were reached with a malformed box
	got := Eval(expr, box)
	if !got.IsTop() {
		t.Fatalf("Eval should short-circuit to top, got %v", got)
	}
}
