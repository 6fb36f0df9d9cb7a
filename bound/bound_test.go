// Copyright ©2019 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elazarg/elina/num"
)

func TestAddInfinityPropagates(t *testing.T) {
	inf := Infinity[num.BigInt]()
	fin := Finite(num.NewBigInt(5))
	if got := inf.Add(fin); !got.IsInfinity() {
		t.Fatalf("+inf + finite should be +inf, got %v", got)
	}
	if got := fin.Add(fin); got.IsInfinity() {
		t.Fatalf("finite + finite should stay finite")
	}
}

func TestMulZeroTimesInfinity(t *testing.T) {
	inf := Infinity[num.BigInt]()
	zero := Finite(num.NewBigInt(0))
	got := inf.Mul(zero)
	if got.IsInfinity() || !got.IsZero() {
		t.Fatalf("0 * inf should be finite zero by convention, got %v", got)
	}
	got = zero.Mul(inf)
	if got.IsInfinity() || !got.IsZero() {
		t.Fatalf("inf * 0 should be finite zero by convention, got %v", got)
	}
}

func TestMulNonZeroTimesInfinity(t *testing.T) {
	inf := Infinity[num.BigInt]()
	five := Finite(num.NewBigInt(5))
	if got := inf.Mul(five); !got.IsInfinity() {
		t.Fatalf("nonzero * inf should be inf, got %v", got)
	}
}

func TestCmpOrdersInfinityLast(t *testing.T) {
	inf := Infinity[num.BigInt]()
	five := Finite(num.NewBigInt(5))
	if inf.Cmp(five) <= 0 {
		t.Fatalf("inf should compare greater than any finite bound")
	}
	if inf.Cmp(inf) != 0 {
		t.Fatalf("inf should equal inf")
	}
}

func TestMinMax(t *testing.T) {
	a := Finite(num.NewBigInt(3))
	b := Finite(num.NewBigInt(5))
	if diff := cmp.Diff(a, Min(a, b)); diff != "" {
		t.Errorf("Min mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b, Max(a, b)); diff != "" {
		t.Errorf("Max mismatch (-want +got):\n%s", diff)
	}
}

func TestNegPreservesInfinity(t *testing.T) {
	inf := Infinity[num.BigInt]()
	if !inf.Neg().IsInfinity() {
		t.Fatalf("Neg of +inf should remain +inf under this package's convention")
	}
}
