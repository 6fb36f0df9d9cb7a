// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain is the manager boundary over poly and octagon: a
// scalar-discriminated operation table, a scratch workspace, and the
// exception taxonomy that turns an internal package panic into a
// typed, non-panicking result (spec §6–§7).
package domain

//go:generate stringer -type=ExcKind

// ExcKind discriminates the four exception kinds spec §7 names.
type ExcKind int

const (
	// Invalid marks a malformed argument: wrong dimension, a
	// generator/constraint row referencing a column past Dims.
	Invalid ExcKind = iota
	// OutOfSpace marks a Chernikova conversion or closure that
	// exceeded a configured resource bound (MaxCoeffSize).
	OutOfSpace
	// Overflow marks a bounded-backend arithmetic overflow (Int64,
	// Rat64, Float64 are not arbitrary precision).
	Overflow
	// NotImplemented marks an operation a given backend/algorithm
	// combination does not support.
	NotImplemented
	// Timeout is reserved and never raised: this module has no
	// cancellation/timeout machinery (spec §6 Non-goals).
	Timeout
)

// Exactness records whether an operation's result is known exact,
// known best (sound but possibly not minimal), or unknown (the result
// of a recovered panic, spec §7).
type Exactness int

const (
	// Exact means the operation computed the precise mathematical
	// result for the given backend.
	Exact Exactness = iota
	// Best means the result is sound but not necessarily minimal
	// (e.g. an over-approximating AddRayArray that skipped
	// re-minimization).
	Best
	// Unknown means the operation's exactness could not be
	// determined, either because it was never tracked or because the
	// operation was aborted by a recovered panic.
	Unknown
)

// Exception reports a non-panicking operation failure, carrying both
// the discriminating kind and a human-readable message (spec §7:
// "errors are never silently swallowed").
type Exception struct {
	Kind ExcKind
	Msg  string
}

func (e Exception) Error() string { return e.Kind.String() + ": " + e.Msg }

// raise is the internal package panic type every poly/octagon/linexpr
// precondition violation raises (mirroring mat64.Error, matrix.go):
// a plain panic on a caller bug, recovered only by Manager.Recover.
type raise string

func (r raise) Error() string { return string(r) }

// Raise panics with a recoverable precondition-violation message,
// matching the teacher's own panic-on-caller-bug discipline
// (mat64.Error / ErrShape) rather than returning an error value for
// conditions that are bugs in the caller, not expected runtime
// outcomes.
func Raise(msg string) { panic(raise(msg)) }
