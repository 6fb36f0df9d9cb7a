// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package octagon

import (
	"testing"

	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

func setUnit(m *HalfMatrix[num.Int64], i, j int, c int64) {
	m.Set(i, j, bound.Finite(num.NewInt64(c)))
}

// x - y <= 1, y - z <= 1, z - x <= -3 is unsatisfiable: summing the
// three gives 0 <= -1.
func TestCloseDetectsInconsistentCycle(t *testing.T) {
	m := NewHalfMatrix[num.Int64](3) // variables x=0, y=1, z=2
	// v_{2x} - v_{2y} <= 1
	setUnit(m, 0, 2, 1)
	// v_{2y} - v_{2z} <= 1
	setUnit(m, 2, 4, 1)
	// v_{2z} - v_{2x} <= -3
	setUnit(m, 4, 0, -3)

	_, ok := Close(m, 0)
	if ok {
		t.Fatalf("expected Close to detect inconsistency for a negative-sum cycle")
	}
}

func TestCloseIdempotent(t *testing.T) {
	m := NewHalfMatrix[num.Int64](2)
	setUnit(m, 0, 2, 5)  // x - y <= 5
	setUnit(m, 2, 0, -1) // y - x <= -1, i.e. x - y >= 1

	once, ok := Close(m, 0)
	if !ok {
		t.Fatalf("expected consistent closure")
	}
	twice, ok := Close(once, 0)
	if !ok {
		t.Fatalf("expected consistent closure on second pass")
	}
	n := once.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b := once.Get(i, j), twice.Get(i, j)
			if a.IsInfinity() != b.IsInfinity() {
				t.Fatalf("closure not idempotent at (%d,%d): %v vs %v", i, j, a, b)
			}
			if !a.IsInfinity() {
				av, _ := a.Value()
				bv, _ := b.Value()
				if av.Cmp(bv) != 0 {
					t.Fatalf("closure not idempotent at (%d,%d): %v vs %v", i, j, av, bv)
				}
			}
		}
	}
}

func TestCloseConsistentCase(t *testing.T) {
	m := NewHalfMatrix[num.Int64](2)
	setUnit(m, 0, 2, 1) // x - y <= 1
	setUnit(m, 2, 0, 1) // y - x <= 1
	_, ok := Close(m, 0)
	if !ok {
		t.Fatalf("expected |x-y|<=1 to be consistent")
	}
}
