// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package octagon implements the octagon half-matrix domain (spec
// §4.5–§4.7): a triangular half-matrix over 2·dim indices encoding
// unit two-variable difference bounds, Floyd-Warshall closure with
// octagon strengthening, and the octagon value with its lattice and
// transfer operations.
package octagon

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

// matpos returns the half-matrix storage index of m[i,j], valid only
// when j/2 <= i/2 (spec §4.5). Indices below the diagonal block are
// the ones physically stored; matpos2 resolves the rest.
func matpos(i, j int) int {
	return j + ((i+1)*(i+1))/2
}

// matpos2 returns the storage index of m[i,j] for an arbitrary (i,j)
// pair, using the symmetry m[i,j] = m[j^1, i^1] (spec §4.5) to map
// into the stored half when necessary.
func matpos2(i, j int) int {
	if j/2 <= i/2 {
		return matpos(i, j)
	}
	return matpos(j^1, i^1)
}

// HalfMatrix is the triangular storage of an octagon's 2·dim x 2·dim
// bound matrix (spec §4.5): dimension k occupies indices 2k (+xₖ) and
// 2k+1 (−xₖ), and only entries with j/2 <= i/2 are physically stored.
type HalfMatrix[S num.Scalar[S]] struct {
	dim  int // number of program variables; matrix size is 2*dim
	data []bound.Bound[S]
}

// NewHalfMatrix allocates a half-matrix for dim variables, every
// entry initialized to +∞ (the vacuous bound) except the diagonal,
// which is 0 (spec §4.5: "a finite diagonal m[i,i] is interpreted as
// 0").
func NewHalfMatrix[S num.Scalar[S]](dim int) *HalfMatrix[S] {
	n := 2 * dim
	size := 0
	if n > 0 {
		size = matpos(n-1, n-1) + 1
	}
	hm := &HalfMatrix[S]{dim: dim, data: make([]bound.Bound[S], size)}
	for i := range hm.data {
		hm.data[i] = bound.Infinity[S]()
	}
	for i := 0; i < n; i++ {
		hm.set(i, i, bound.Finite(zeroS[S]()))
	}
	return hm
}

func zeroS[S num.Scalar[S]]() S {
	var z S
	return z.Sub(z)
}

// Dim returns the number of program variables (matrix size is 2*Dim).
func (hm *HalfMatrix[S]) Dim() int { return hm.dim }

// N returns the matrix order, 2*Dim.
func (hm *HalfMatrix[S]) N() int { return 2 * hm.dim }

// Get returns m[i,j].
func (hm *HalfMatrix[S]) Get(i, j int) bound.Bound[S] {
	return hm.data[matpos2(i, j)]
}

func (hm *HalfMatrix[S]) set(i, j int, b bound.Bound[S]) {
	hm.data[matpos2(i, j)] = b
}

// Set stores m[i,j] = b, maintaining the symmetry invariant (setting
// m[i,j] also determines m[j^1, i^1]): both resolve to the same
// storage slot via matpos2, so a single write suffices.
func (hm *HalfMatrix[S]) Set(i, j int, b bound.Bound[S]) {
	hm.set(i, j, b)
}

// Clone returns a deep copy.
func (hm *HalfMatrix[S]) Clone() *HalfMatrix[S] {
	cp := &HalfMatrix[S]{dim: hm.dim, data: make([]bound.Bound[S], len(hm.data))}
	copy(cp.data, hm.data)
	return cp
}

// ForEach calls f for every stored (i,j,value) triple.
func (hm *HalfMatrix[S]) ForEach(f func(i, j int, b bound.Bound[S])) {
	n := hm.N()
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j += 1 {
			if j/2 > i/2 {
				continue
			}
			f(i, j, hm.Get(i, j))
		}
	}
}
