// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package octagon

import (
	"github.com/elazarg/elina/bound"
	"github.com/elazarg/elina/num"
)

// Value is an octagon over IntDim+RealDim variables (spec §4.5–§4.6).
// The cache-discipline states of spec §4.6 — {⊥⊥, m⊥, ⊥c, mc} — are
// represented by the (bottom, m, closed) field combination rather
// than an explicit enum: bottom alone is ⊥⊥; m!=nil && !closed is m⊥;
// m!=nil && closed is mc (⊥c does not need a separate representation
// here, since a closed inconsistent matrix is immediately collapsed
// to bottom by closeAndCheck).
type Value[S num.Scalar[S]] struct {
	IntDim, RealDim int
	m               *HalfMatrix[S]
	closed          bool
	bottom          bool
}

// Dims returns the total number of variables.
func (v *Value[S]) Dims() int { return v.IntDim + v.RealDim }

// IsBottom reports whether v is the empty octagon.
func (v *Value[S]) IsBottom() bool { return v.bottom }

// IsTop reports whether every entry is +∞ (the vacuous octagon).
func (v *Value[S]) IsTop() bool {
	if v.bottom || v.m == nil {
		return false
	}
	top := true
	v.m.ForEach(func(i, j int, b bound.Bound[S]) {
		if i == j {
			return
		}
		if !b.IsInfinity() {
			top = false
		}
	})
	return top
}

// Clone returns a deep copy.
func (v *Value[S]) Clone() *Value[S] {
	cp := &Value[S]{IntDim: v.IntDim, RealDim: v.RealDim, closed: v.closed, bottom: v.bottom}
	if v.m != nil {
		cp.m = v.m.Clone()
	}
	return cp
}

// Top returns the unconstrained octagon over intdim+realdim variables.
func Top[S num.Scalar[S]](intdim, realdim int) *Value[S] {
	return &Value[S]{IntDim: intdim, RealDim: realdim, m: NewHalfMatrix[S](intdim + realdim), closed: true}
}

// Bottom returns the empty octagon over intdim+realdim variables.
func Bottom[S num.Scalar[S]](intdim, realdim int) *Value[S] {
	return &Value[S]{IntDim: intdim, RealDim: realdim, bottom: true}
}

// ensureClosed promotes an m⊥ value to mc lazily (spec §4.6's
// cache-closure helper), collapsing to bottom if closure finds the
// matrix inconsistent.
func (v *Value[S]) ensureClosed() *Value[S] {
	if v.bottom {
		return v
	}
	if v.closed {
		return v
	}
	closedM, ok := Close(v.m, v.IntDim)
	if !ok {
		return Bottom[S](v.IntDim, v.RealDim)
	}
	return &Value[S]{IntDim: v.IntDim, RealDim: v.RealDim, m: closedM, closed: true}
}
