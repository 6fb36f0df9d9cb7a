// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"github.com/elazarg/elina/internal/bitset"
	"github.com/elazarg/elina/num"
)

// SatMatrix is the saturation relation between a generator system and
// a constraint system: one bitset.Set row per generator, one bit per
// constraint, bit (g,c) set iff generator g saturates constraint c
// (spec §4.3). It is always recomputed from (C, F) rather than
// mutated incrementally from the outside — spec §3's invariant that
// satC/satF are strictly slaved to the matrix pair they describe.
type SatMatrix struct {
	rows []*bitset.Set
	cols int
}

// NumGenerators returns the number of generator rows.
func (s *SatMatrix) NumGenerators() int { return len(s.rows) }

// Saturates reports whether generator g saturates constraint c.
func (s *SatMatrix) Saturates(g, c int) bool { return s.rows[g].Has(c) }

// Row returns generator g's saturation set.
func (s *SatMatrix) Row(g int) *bitset.Set { return s.rows[g] }

// BuildSatC computes the satC bitmatrix for a generator system F
// against a constraint system C: satC[g][c] is set iff Dot(C[c],F[g])
// == 0.
func BuildSatC[S num.Scalar[S]](cons []ConsRow[S], gens []GenRow[S]) *SatMatrix {
	sm := &SatMatrix{rows: make([]*bitset.Set, len(gens)), cols: len(cons)}
	for gi, g := range gens {
		row := bitset.New(len(cons))
		for ci, c := range cons {
			if Dot(c, g).IsZero() {
				row.Set(ci)
			}
		}
		sm.rows[gi] = row
	}
	return sm
}

// Clone returns a deep copy.
func (s *SatMatrix) Clone() *SatMatrix {
	rows := make([]*bitset.Set, len(s.rows))
	for i, r := range s.rows {
		rows[i] = r.Clone()
	}
	return &SatMatrix{rows: rows, cols: s.cols}
}
