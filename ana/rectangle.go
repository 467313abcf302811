// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verification
package ana

import "math"

// RectPoisson is the Poisson problem on the rectangle [0,Lx] × [0,Ly]
// with constant diagonal coefficient (Kxx, Kyy), homogeneous Dirichlet
// conditions and loading
//
//	f(x,y) = C sin(I π x / Lx) sin(J π y / Ly)
//
// The loading is an eigenfunction of the operator, hence
//
//	u(x,y) = f(x,y) / λ    with    λ = Kxx (Iπ/Lx)² + Kyy (Jπ/Ly)²
type RectPoisson struct {

	// input
	Lx, Ly   float64 // domain lengths
	Kxx, Kyy float64 // diagonal coefficient components
	C        float64 // loading amplitude
	I, J     int     // mode pair

	// derived
	Wx, Wy float64 // angular frequencies
	Lam    float64 // operator eigenvalue λ
}

// Init computes derived quantities
func (o *RectPoisson) Init() {
	o.Wx = float64(o.I) * math.Pi / o.Lx
	o.Wy = float64(o.J) * math.Pi / o.Ly
	o.Lam = o.Kxx*o.Wx*o.Wx + o.Kyy*o.Wy*o.Wy
}

// Sol returns the exact solution @ (x,y)
func (o *RectPoisson) Sol(x, y float64) float64 {
	return o.C * math.Sin(o.Wx*x) * math.Sin(o.Wy*y) / o.Lam
}

// Energy returns the exact strain energy ∫ ∇u·K∇u dΩ = ∫ f u dΩ
func (o *RectPoisson) Energy() float64 {
	return o.C * o.C * o.Lx * o.Ly / (4.0 * o.Lam)
}

// Ixx returns ∫ (du/dx)² dΩ
func (o *RectPoisson) Ixx() float64 {
	c := o.C / o.Lam
	return c * c * o.Wx * o.Wx * o.Lx * o.Ly / 4.0
}

// Ixy returns ∫ (du/dx)(du/dy) dΩ, which vanishes for product-sine
// loadings
func (o *RectPoisson) Ixy() float64 { return 0 }

// Iyy returns ∫ (du/dy)² dΩ
func (o *RectPoisson) Iyy() float64 {
	c := o.C / o.Lam
	return c * c * o.Wy * o.Wy * o.Lx * o.Ly / 4.0
}
