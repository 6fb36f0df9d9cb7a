// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"testing"
)

// genericArith exercises the Scalar[S] surface identically across
// backends, mirroring how the teacher's mat package runs the same
// table against Dense/SymDense/TriDense through the shared Matrix
// interface.
func genericArith[S Scalar[S]](t *testing.T, name string, two, three S) {
	t.Helper()
	if got := two.Add(three); got.Cmp(three.Add(two)) != 0 {
		t.Errorf("%s: addition not commutative: %v vs %v", name, got, three.Add(two))
	}
	if got := two.Mul(three); got.Sgn() <= 0 {
		t.Errorf("%s: 2*3 should be positive, got %v", name, got)
	}
	if !two.Sub(two).IsZero() {
		t.Errorf("%s: x-x should be zero", name)
	}
	if two.Neg().Sgn() >= 0 {
		t.Errorf("%s: Neg of positive should be negative", name)
	}
	if two.Abs().Sgn() < 0 {
		t.Errorf("%s: Abs should be non-negative", name)
	}
	if two.Cmp(three) >= 0 {
		t.Errorf("%s: 2 should be < 3", name)
	}
}

func TestBigIntArith(t *testing.T)   { genericArith[BigInt](t, "bigint", NewBigInt(2), NewBigInt(3)) }
func TestBigRatArith(t *testing.T)   { genericArith[BigRat](t, "bigrat", NewBigRat(2, 1), NewBigRat(3, 1)) }
func TestInt64Arith(t *testing.T)    { genericArith[Int64](t, "int64", NewInt64(2), NewInt64(3)) }
func TestRat64Arith(t *testing.T)    { genericArith[Rat64](t, "rat64", NewRat64(2, 1), NewRat64(3, 1)) }
func TestFloat64Arith(t *testing.T)  { genericArith[Float64](t, "float64", NewFloat64(2), NewFloat64(3)) }
func TestExtFloatArith(t *testing.T) { genericArith[ExtFloat](t, "extfloat", NewExtFloat(2), NewExtFloat(3)) }

func TestBigIntDivExactIncomplete(t *testing.T) {
	_, ok := NewBigInt(7).DivExact(NewBigInt(2))
	if ok {
		t.Fatal("7/2 should not be exact for an integer backend")
	}
	q, ok := NewBigInt(6).DivExact(NewBigInt(2))
	if !ok || q.Cmp(NewBigInt(3)) != 0 {
		t.Fatalf("6/2 should be exact 3, got %v, ok=%v", q, ok)
	}
}

func TestBigRatDivExactComplete(t *testing.T) {
	q, ok := NewBigRat(7, 1).DivExact(NewBigRat(2, 1))
	if !ok || q.Cmp(NewBigRat(7, 2)) != 0 {
		t.Fatalf("rational backend must be closed under division, got %v ok=%v", q, ok)
	}
}

func TestFDivCDivRounding(t *testing.T) {
	cases := []struct {
		a, b     int64
		fdiv, cdiv int64
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{7, -2, -4, -3},
		{-7, -2, 3, 4},
		{6, 2, 3, 3},
	}
	for _, c := range cases {
		a, b := NewInt64(c.a), NewInt64(c.b)
		if got := a.FDiv(b); int64(got) != c.fdiv {
			t.Errorf("FDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.fdiv)
		}
		if got := a.CDiv(b); int64(got) != c.cdiv {
			t.Errorf("CDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.cdiv)
		}
	}
}

func TestHalf(t *testing.T) {
	if _, ok := NewBigInt(7).Half(); ok {
		t.Fatal("7/2 should not be exact for BigInt")
	}
	q, ok := NewBigInt(6).Half()
	if !ok || q.Cmp(NewBigInt(3)) != 0 {
		t.Fatalf("6/2 should be exact 3, got %v ok=%v", q, ok)
	}
	rq, ok := NewBigRat(7, 1).Half()
	if !ok || rq.Cmp(NewBigRat(7, 2)) != 0 {
		t.Fatalf("rational Half must always be exact, got %v ok=%v", rq, ok)
	}
}

func TestBigIntTraits(t *testing.T) {
	tr := BigInt{}.BackendTraits()
	if !tr.Exact || !tr.Incomplete || !tr.Safe {
		t.Fatalf("unexpected BigInt traits: %+v", tr)
	}
	tr = BigRat{}.BackendTraits()
	if !tr.Exact || tr.Incomplete || !tr.Safe {
		t.Fatalf("unexpected BigRat traits: %+v", tr)
	}
	tr = Int64(0).BackendTraits()
	if tr.Exact || tr.Safe {
		t.Fatalf("unexpected Int64 traits: %+v", tr)
	}
}
