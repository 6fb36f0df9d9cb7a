// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"testing"

	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

func ival(lo, hi int64) Interval[num.BigRat] {
	return FromBounds(bound.Finite(num.NewBigRat(lo, 1)), bound.Finite(num.NewBigRat(hi, 1)))
}

func TestIsBottom(t *testing.T) {
	if ival(5, 3).IsBottom() == false {
		t.Fatal("[5,3] should be bottom")
	}
	if ival(0, 0).IsBottom() {
		t.Fatal("[0,0] should not be bottom")
	}
	top := Top[num.BigRat]()
	if top.IsBottom() {
		t.Fatal("top should never be bottom")
	}
}

func TestCanonicalizeInteger(t *testing.T) {
	iv := FromBounds(bound.Finite(num.NewBigRat(1, 2)), bound.Finite(num.NewBigRat(7, 2)))
	c := iv.CanonicalizeInteger()
	lo, ok := c.Lower()
	if !ok || lo.String() != "1" {
		t.Errorf("lower should round up to 1, got %v", lo)
	}
	if c.Upper().String() != "3" {
		t.Errorf("upper should round down to 3, got %v", c.Upper())
	}
}

func TestJoinMeet(t *testing.T) {
	a := ival(0, 5)
	b := ival(3, 8)
	j := a.Join(b)
	if lo, _ := j.Lower(); lo.String() != "0" || j.Upper().String() != "8" {
		t.Errorf("join wrong: %v", j)
	}
	m := a.Meet(b)
	if lo, _ := m.Lower(); lo.String() != "3" || m.Upper().String() != "5" {
		t.Errorf("meet wrong: %v", m)
	}
}

func TestLeq(t *testing.T) {
	inner := ival(1, 2)
	outer := ival(0, 5)
	if !inner.Leq(outer) {
		t.Fatal("[1,2] should be leq [0,5]")
	}
	if outer.Leq(inner) {
		t.Fatal("[0,5] should not be leq [1,2]")
	}
}

// TestBoundsMulScenario is spec §8 scenario 6: [1,3]*x with x in [-2,4].
func TestBoundsMulScenario(t *testing.T) {
	coeff := ival(1, 3)
	x := ival(-2, 4)
	got := BoundsMul(coeff, x)
	lo, ok := got.Lower()
	if !ok || lo.String() != "-10" {
		t.Errorf("lower = %v, want -10", lo)
	}
	if got.Upper().String() != "16" {
		t.Errorf("upper = %v, want 16", got.Upper())
	}
}

func TestBoundsMulZeroTimesUnbounded(t *testing.T) {
	zero := ival(0, 0)
	unbounded := FromBounds(bound.Infinity[num.BigRat](), bound.Infinity[num.BigRat]())
	got := BoundsMul(zero, unbounded)
	lo, ok := got.Lower()
	if !ok || !lo.IsZero() {
		t.Errorf("0 * unbounded lower should be finite zero, got %v (finite=%v)", lo, ok)
	}
	if got.Upper().IsInfinity() || !got.Upper().IsZero() {
		t.Errorf("0 * unbounded upper should be finite zero, got %v", got.Upper())
	}
}

func TestBoundsMulNegativeTimesUnbounded(t *testing.T) {
	neg := ival(-3, -1)
	unbounded := FromBounds(bound.Infinity[num.BigRat](), bound.Infinity[num.BigRat]())
	got := BoundsMul(neg, unbounded)
	if !got.IsTop() {
		t.Errorf("negative * unbounded should stay top, got %v", got)
	}
}
