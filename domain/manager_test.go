// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/interval"
	"github.com/elazarg/elina/num"
)

func TestRecoverCatchesRaise(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	exc, exactness := m.Recover(func() {
		Raise("dimension out of range")
	})
	if exc == nil {
		t.Fatalf("expected a non-nil Exception")
	}
	if exc.Kind != Invalid {
		t.Fatalf("expected Invalid, got %v", exc.Kind)
	}
	if exactness != Unknown {
		t.Fatalf("expected Unknown exactness after a recovered panic")
	}
}

func TestRecoverPassesThroughOnSuccess(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	exc, exactness := m.Recover(func() {})
	if exc != nil {
		t.Fatalf("expected no exception on success, got %v", exc)
	}
	if exactness != Exact {
		t.Fatalf("expected Exact on success, got %v", exactness)
	}
}

func TestRecoverRepanicsOnForeignPanic(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a foreign panic to propagate past Recover")
		}
	}()
	m.Recover(func() {
		panic("not a domain raise")
	})
}

func TestValidateDimSetRejectsOutOfRange(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	if exc := m.ValidateDimSet(3, []int{0, 3}); exc == nil || exc.Kind != Invalid {
		t.Fatalf("expected Invalid for an out-of-range dimension, got %v", exc)
	}
}

func TestValidateDimSetRejectsDuplicate(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	if exc := m.ValidateDimSet(3, []int{1, 1}); exc == nil || exc.Kind != Invalid {
		t.Fatalf("expected Invalid for a duplicate dimension, got %v", exc)
	}
}

func TestValidateDimSetAcceptsGoodInput(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	if exc := m.ValidateDimSet(3, []int{0, 2}); exc != nil {
		t.Fatalf("unexpected Exception for a valid dimension set: %v", exc)
	}
}

func TestPolyCatalogDelegatesToPackageFunctions(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	ops := m.Poly()
	box := []interval.Interval[num.Int64]{
		interval.FromBounds(bound.Finite(num.NewInt64(0)), bound.Finite(num.NewInt64(1))),
	}
	v := ops.OfBox(0, 1, box)
	if v.IsBottom() {
		t.Fatalf("box [0,1] should not be bottom")
	}
	if !ops.IsLeq(v, v) {
		t.Fatalf("IsLeq should be reflexive through the catalog")
	}
}

func TestOctagonCatalogDelegatesToPackageFunctions(t *testing.T) {
	m := NewManager[num.Int64](DiscrInt64)
	ops := m.Octagon()
	box := []interval.Interval[num.Int64]{
		interval.FromBounds(bound.Finite(num.NewInt64(0)), bound.Finite(num.NewInt64(1))),
	}
	v := ops.OfBox(0, 1, box)
	if v.IsBottom() {
		t.Fatalf("box [0,1] should not be bottom")
	}
	if !ops.IsEq(v, v) {
		t.Fatalf("IsEq should be reflexive through the catalog")
	}
}
