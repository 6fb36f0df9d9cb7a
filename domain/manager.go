// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

// ScalarDiscr names which of num's six backends a Manager is
// configured for (spec §6's "Environment"). Go's generics give each
// backend its own instantiation of Value[S]; ScalarDiscr is carried
// alongside purely as a runtime record of which instantiation a given
// Manager was built for, the same role a config struct's "driver name"
// field plays next to a Go database/sql-style typed connection.
type ScalarDiscr int

const (
	DiscrBigInt ScalarDiscr = iota
	DiscrBigRat
	DiscrInt64
	DiscrRat64
	DiscrFloat64
	DiscrExtFloat
)

// Algorithm selects among alternative implementations of an operation
// where the catalog offers more than one (spec §6). This core exposes
// exactly one algorithm per operation today (Algorithm is reserved for
// a future second Chernikova variant or a non-incremental octagon
// closure); NewManager accepts it for forward compatibility rather
// than wiring a dispatch switch with one case.
type Algorithm int

const (
	AlgorithmDefault Algorithm = iota
)

// Manager is the options and workspace record spec §6 calls the
// "Environment": the scalar discriminator, per-operation algorithm
// choice, a resource ceiling, and widening thresholds, plus the
// recover-based exception boundary and scratch pool described in
// §5/§7. A Manager is not safe for concurrent use by multiple
// goroutines operating on the same abstract value (spec §5); distinct
// goroutines must use distinct Managers or external synchronization.
type Manager[S num.Scalar[S]] struct {
	Discr              ScalarDiscr
	Algo               Algorithm
	MaxCoeffSize       int
	WideningThresholds []bound.Bound[S]

	scratch scratchPool
}

// NewManager builds a Manager with the given scalar discriminator and
// sane defaults (no coefficient-size ceiling, no widening thresholds,
// the single default algorithm for every operation) — mirroring how
// mat64's Dense is built directly by its constructor rather than
// through a parsed config file (spec §1's front-ends exclusion keeps
// file/flag parsing out of scope).
func NewManager[S num.Scalar[S]](discr ScalarDiscr) *Manager[S] {
	return &Manager[S]{Discr: discr, Algo: AlgorithmDefault}
}

// Recover runs fn, turning any raise panic it produces into a
// populated Exception with Unknown exactness, and re-panicking on
// anything else — the Maybe/MaybeFloat pattern from mat64.Maybe,
// generalized from a single Error string type to this module's
// ExcKind taxonomy (spec §7: "a recovered internal precondition
// violation becomes Invalid unless the message identifies a more
// specific kind").
func (m *Manager[S]) Recover(fn func()) (exc *Exception, exactness Exactness) {
	defer func() {
		if r := recover(); r != nil {
			msg, ok := r.(raise)
			if !ok {
				panic(r)
			}
			exc = &Exception{Kind: Invalid, Msg: string(msg)}
			exactness = Unknown
		}
	}()
	fn()
	return nil, Exact
}
