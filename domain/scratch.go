// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"math/bits"
	"sync"
)

// poolFor returns the ceiling of base-2 log of size, indexing into a
// size-stratified sync.Pool array (mat/pool.go's poolFor, unchanged).
func poolFor(size uint) int {
	if size == 0 {
		return 0
	}
	return bits.Len(size - 1)
}

// scratchPool holds size-stratified scratch buffers for the two
// per-call allocations the Chernikova/closure inner loops otherwise
// repeat on every AddConstraint/AddGenerator/Close call: an []int64
// pivot-row scratch (grounded on mat.pool's poolInts) and a []uint64
// saturation-bitset scratch (grounded on the same array's per-size
// sync.Pool discipline, generalized from mat64/[]float64 backing
// arrays to the bitset package's word slices).
type scratchPool struct {
	ints    [63]sync.Pool
	bitwords [63]sync.Pool
}

func (p *scratchPool) getInts(n int) []int64 {
	idx := poolFor(uint(n))
	v := p.ints[idx].Get()
	if v == nil {
		return make([]int64, n, 1<<uint(idx))
	}
	s := v.([]int64)
	return s[:n]
}

func (p *scratchPool) putInts(s []int64) {
	idx := poolFor(uint(cap(s)))
	p.ints[idx].Put(s[:0])
}

func (p *scratchPool) getBitwords(n int) []uint64 {
	idx := poolFor(uint(n))
	v := p.bitwords[idx].Get()
	if v == nil {
		return make([]uint64, n, 1<<uint(idx))
	}
	s := v.([]uint64)
	return s[:n]
}

func (p *scratchPool) putBitwords(s []uint64) {
	idx := poolFor(uint(cap(s)))
	p.bitwords[idx].Put(s[:0])
}
