// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitset

import "testing"

func TestSetBasics(t *testing.T) {
	s := New(130)
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(129)
	if s.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", s.Count())
	}
	for _, i := range []int{0, 63, 64, 129} {
		if !s.Has(i) {
			t.Errorf("bit %d should be set", i)
		}
	}
	s.Clear(64)
	if s.Has(64) {
		t.Errorf("bit 64 should be cleared")
	}
	if s.Count() != 3 {
		t.Fatalf("Count() after Clear = %d, want 3", s.Count())
	}
}

func TestSetAndSubset(t *testing.T) {
	a := New(8)
	b := New(8)
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)
	and := a.And(b)
	if and.Count() != 1 || !and.Has(2) {
		t.Fatalf("And result wrong: count=%d", and.Count())
	}
	if !and.SubsetEq(a) {
		t.Errorf("And result should be subset of a")
	}
	if a.SubsetEq(and) {
		t.Errorf("a should not be subset of And result")
	}
}

func TestSetCloneIndependent(t *testing.T) {
	a := New(8)
	a.Set(1)
	b := a.Clone()
	b.Set(2)
	if a.Has(2) {
		t.Fatalf("mutating clone should not affect original")
	}
	if !a.Equal(a.Clone()) {
		t.Fatalf("clone should be Equal to original")
	}
}
