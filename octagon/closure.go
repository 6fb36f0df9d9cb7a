// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package octagon

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

// half returns b/2 when exact, else the next finite value below b/2
// (a sound narrowing for the strengthening step, which only ever
// tightens a bound further — an inexact half still yields a valid,
// if slightly looser, upper bound when rounded toward +∞... rounding
// down here would be unsound for an upper bound, so an inexact Half
// is treated as "no tightening from this corner" instead of guessing
// a rounding direction).
func half[S num.Scalar[S]](b bound.Bound[S]) (bound.Bound[S], bool) {
	if b.IsInfinity() {
		return b, true
	}
	v, _ := b.Value()
	h, ok := v.Half()
	if !ok {
		return bound.Bound[S]{}, false
	}
	return bound.Finite(h), true
}

// closeCore runs Floyd-Warshall plus octagon strengthening over the
// range of k values given by ks (spec §4.6): full closure passes
// ks = 0..2*dim-1; incremental closure passes only the two indices of
// the changed variable.
func closeCore[S num.Scalar[S]](m *HalfMatrix[S], ks []int) {
	n := m.N()
	for _, k := range ks {
		for i := 0; i < n; i++ {
			mik := m.Get(i, k)
			if mik.IsInfinity() {
				continue
			}
			for j := 0; j < n; j++ {
				mkj := m.Get(k, j)
				if mkj.IsInfinity() {
					continue
				}
				cand := mik.Add(mkj)
				if cand.Cmp(m.Get(i, j)) < 0 {
					m.Set(i, j, cand)
				}
			}
		}
	}
	sStep(m)
}

// sStep applies octagon strengthening to every entry (spec §4.6):
// m[i,j] <- min(m[i,j], (m[i,i^1] + m[j^1,j])/2).
func sStep[S num.Scalar[S]](m *HalfMatrix[S]) {
	n := m.N()
	for i := 0; i < n; i++ {
		a := m.Get(i, i^1)
		for j := 0; j < n; j++ {
			b := m.Get(j^1, j)
			if a.IsInfinity() || b.IsInfinity() {
				continue
			}
			sum := a.Add(b)
			h, ok := half(sum)
			if !ok {
				continue
			}
			if h.Cmp(m.Get(i, j)) < 0 {
				m.Set(i, j, h)
			}
		}
	}
}

// tightenIntegers rounds m[i,j] down when both i and j reference
// integer dimensions and exactly one of i,j is the even (+x) index
// (spec §4.6): the closure of an integer octagon can be tightened to
// the floor of the bound, since any fractional slack is unreachable
// by an integer-valued difference.
func tightenIntegers[S num.Scalar[S]](m *HalfMatrix[S], intdim int) {
	n := m.N()
	isInt := func(idx int) bool { return idx/2 < intdim }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !isInt(i) || !isInt(j) {
				continue
			}
			if (i%2 == 0) == (j%2 == 0) {
				continue // spec: only the mixed-parity pairing is tightened
			}
			b := m.Get(i, j)
			if b.IsInfinity() {
				continue
			}
			m.Set(i, j, b.Floor())
		}
	}
}

// isConsistent reports whether every diagonal entry is non-negative
// (spec §4.6: a negative diagonal entry certifies bottom).
func isConsistent[S num.Scalar[S]](m *HalfMatrix[S]) bool {
	n := m.N()
	for i := 0; i < n; i++ {
		if m.Get(i, i).Sgn() < 0 {
			return false
		}
	}
	return true
}

// Close runs full Floyd-Warshall closure plus strengthening and
// integer tightening, returning the closed matrix and whether the
// result is consistent (spec §4.6).
func Close[S num.Scalar[S]](m *HalfMatrix[S], intdim int) (*HalfMatrix[S], bool) {
	out := m.Clone()
	n := out.N()
	ks := make([]int, n)
	for i := range ks {
		ks[i] = i
	}
	closeCore(out, ks)
	if intdim > 0 {
		tightenIntegers(out, intdim)
		sStep(out)
	}
	return out, isConsistent(out)
}

// CloseIncremental re-establishes closure after only variable v
// changed, in O(dim²) instead of O(dim³) (spec §4.6): the k-loop
// ranges over {2v, 2v+1} only, the loop bound
// original_source/octagons/oct_internal.h documents and this function
// carries forward; the S-step still runs over every (i,j) pair since
// strengthening is not localized to the changed variable's row/column.
func CloseIncremental[S num.Scalar[S]](m *HalfMatrix[S], intdim, v int) (*HalfMatrix[S], bool) {
	out := m.Clone()
	closeCore(out, []int{2 * v, 2*v + 1})
	if intdim > 0 {
		tightenIntegers(out, intdim)
		sStep(out)
	}
	return out, isConsistent(out)
}
