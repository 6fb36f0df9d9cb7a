// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly implements the convex-polyhedra domain core: a dense
// coefficient matrix with Gauss elimination and normalization (spec
// §4.3 "Polyhedra matrix"), a saturation bitmatrix, incremental
// Chernikova double-description conversion (§4.3), and the polyhedra
// value with its lattice and transfer operations (§4.4).
//
// Where the source keeps status flags as bits of a C preprocessor
// macro and packs [flag, denom, coefficients...] into one matrix row,
// this package follows spec §9's guidance and uses a small struct per
// row (Kind, Denom, Const, Coeffs) plus a Status record of booleans —
// the same information, laid out the way a Go reader expects it.
package poly

import "github.com/elazarg/elina/num"

// ConsKind distinguishes a constraint row's relation.
type ConsKind int

const (
	// GEQ is a·x + b ≥ 0.
	GEQ ConsKind = iota
	// EQ is a·x + b = 0.
	EQ
	// GTZ is a·x + b > 0 (strict); spec §4.3's ε-column encoding is
	// folded into this row kind rather than a literal extra column.
	GTZ
)

// ConsRow is one row of a constraint matrix.
type ConsRow[S num.Scalar[S]] struct {
	Kind   ConsKind
	Denom  S // > 0
	Const  S // b
	Coeffs []S
}

// GenKind distinguishes a generator row's role.
type GenKind int

const (
	Vertex GenKind = iota
	Ray
	Line
)

// GenRow is one row of a generator matrix. Denom is the homogenizing
// weight λ for a Vertex (λ·v, λ>0); rays and lines carry weight 0, so
// they do not contribute to a constraint's constant term when tested
// for saturation (spec §4.3).
type GenRow[S num.Scalar[S]] struct {
	Kind   GenKind
	Denom  S
	Coeffs []S
}

func (g GenRow[S]) weight() S {
	if g.Kind == Vertex {
		return g.Denom
	}
	var z S
	return z.Sub(z)
}

// Clone returns a deep copy of c.
func (c ConsRow[S]) Clone() ConsRow[S] {
	cp := make([]S, len(c.Coeffs))
	copy(cp, c.Coeffs)
	return ConsRow[S]{Kind: c.Kind, Denom: c.Denom, Const: c.Const, Coeffs: cp}
}

// Clone returns a deep copy of g.
func (g GenRow[S]) Clone() GenRow[S] {
	cp := make([]S, len(g.Coeffs))
	copy(cp, g.Coeffs)
	return GenRow[S]{Kind: g.Kind, Denom: g.Denom, Coeffs: cp}
}

// Dot computes c's homogeneous form evaluated at g: the sign of Dot
// determines whether g satisfies (0), strictly satisfies (>0), or
// violates (<0) c, which is exactly the partition Chernikova's first
// step needs (spec §4.3).
func Dot[S num.Scalar[S]](c ConsRow[S], g GenRow[S]) S {
	sum := c.Const.Mul(g.weight())
	for i, a := range c.Coeffs {
		sum = sum.Add(a.Mul(g.Coeffs[i]))
	}
	return sum
}

// gcdRow returns the gcd of a row's entries (Denom, Const, Coeffs),
// skipping zeros; used by Normalize.
func gcdRowVals[S num.Scalar[S]](vals ...S) S {
	var g S
	first := true
	for _, v := range vals {
		if v.IsZero() {
			continue
		}
		if first {
			g = v.Abs()
			first = false
			continue
		}
		g = g.Gcd(v)
	}
	if first {
		// all-zero row: gcd undefined, treat as 1-equivalent (identity)
		var one S
		return one.Sub(one) // zero; caller must guard before dividing
	}
	return g
}

// Normalize divides a constraint row by the gcd of its entries so
// rows compare canonically (spec §4.3 consC: "rows normalized by
// their gcd"). A row whose entries share no nontrivial factor, or
// whose backend cannot divide exactly, is left unchanged.
func (c ConsRow[S]) Normalize() ConsRow[S] {
	g := gcdRowVals(append([]S{c.Denom, c.Const}, c.Coeffs...)...)
	if g.IsZero() || g.Sgn() == 0 {
		return c
	}
	out := c.Clone()
	if d, ok := out.Denom.DivExact(g); ok {
		out.Denom = d
	} else {
		return c
	}
	if cst, ok := out.Const.DivExact(g); ok {
		out.Const = cst
	} else {
		return c
	}
	for i, v := range out.Coeffs {
		q, ok := v.DivExact(g)
		if !ok {
			return c
		}
		out.Coeffs[i] = q
	}
	return out
}

// Normalize divides a generator row by the gcd of Denom and Coeffs.
func (g GenRow[S]) Normalize() GenRow[S] {
	gd := gcdRowVals(append([]S{g.Denom}, g.Coeffs...)...)
	if gd.IsZero() || gd.Sgn() == 0 {
		return g
	}
	out := g.Clone()
	if d, ok := out.Denom.DivExact(gd); ok {
		out.Denom = d
	} else {
		return g
	}
	for i, v := range out.Coeffs {
		q, ok := v.DivExact(gd)
		if !ok {
			return g
		}
		out.Coeffs[i] = q
	}
	return out
}
