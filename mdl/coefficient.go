// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements diffusion coefficient models
package mdl

import (
	"math"

	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gosl/chk"
)

// Coefficient computes the symmetric 2x2 diffusion coefficient at a
// point of the domain
type Coefficient interface {
	Val(x, y float64) (kxx, kxy, kyy float64)
}

// allocators holds all available coefficient models
var allocators = make(map[string]func(dat *inp.CoefData) (Coefficient, error))

// New returns a coefficient model; e.g. "uniform" or "periodic"
func New(dat *inp.CoefData) (Coefficient, error) {
	alloc, ok := allocators[dat.Name]
	if !ok {
		return nil, chk.Err("cannot find coefficient model named %q", dat.Name)
	}
	return alloc(dat)
}

// Uniform is a constant coefficient tensor. Used for macroscopic solves
// with a candidate effective tensor.
type Uniform struct {
	Kxx, Kxy, Kyy float64
}

// Val returns the coefficient @ (x,y)
func (o *Uniform) Val(x, y float64) (kxx, kxy, kyy float64) {
	return o.Kxx, o.Kxy, o.Kyy
}

// Periodic is a rapidly oscillating isotropic coefficient with period
// Eps in both directions:
//
//	a(x,y) = Amean (1 + C sin(2πx/ε)) (1 + C sin(2πy/ε))
//
// The contrast C must stay below 1 for the coefficient to remain
// positive.
type Periodic struct {
	Amean float64 // mean value
	C     float64 // oscillation contrast
	Eps   float64 // period
}

// Val returns the coefficient @ (x,y)
func (o *Periodic) Val(x, y float64) (kxx, kxy, kyy float64) {
	w := 2.0 * math.Pi / o.Eps
	a := o.Amean * (1.0 + o.C*math.Sin(w*x)) * (1.0 + o.C*math.Sin(w*y))
	return a, 0, a
}

// add models to database
func init() {
	allocators["uniform"] = func(dat *inp.CoefData) (Coefficient, error) {
		return &Uniform{dat.A11, dat.A12, dat.A22}, nil
	}
	allocators["periodic"] = func(dat *inp.CoefData) (Coefficient, error) {
		if dat.Eps <= 0 {
			return nil, chk.Err("period of oscillations must be positive. %g is invalid", dat.Eps)
		}
		if dat.Acontrast < 0 || dat.Acontrast >= 1 {
			return nil, chk.Err("oscillation contrast must be within [0,1). %g is invalid", dat.Acontrast)
		}
		return &Periodic{dat.Amean, dat.Acontrast, dat.Eps}, nil
	}
}
