// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gosl/chk"
)

// Selector computes the next candidate tensor from the current one.
// exhausted is true when a backtracking budget was consumed without
// satisfying the acceptance condition; the returned candidate is then
// the smallest-step trial and the run may continue.
type Selector interface {
	Next(ev *Evaluator, a Tensor, cost float64, grad Tensor) (anext Tensor, exhausted bool, err error)
}

// selectorAllocators holds all available step selectors
var selectorAllocators = make(map[string]func(dat *inp.StepData) Selector)

// NewSelector returns a step selector; e.g. "fixed" or "armijo"
func NewSelector(dat *inp.StepData) (Selector, error) {
	alloc, ok := selectorAllocators[dat.Type]
	if !ok {
		return nil, chk.Err("cannot find step selector named %q", dat.Type)
	}
	return alloc(dat), nil
}

// FixedStep performs plain steepest descent with a constant step
// multiplier:
//
//	next = current - ρ ∇J(current)
//
// Pure and deterministic; performs no oracle calls. Divergence for a ρ
// too large with respect to the local curvature of J is a tunable, not
// a guarded condition.
type FixedStep struct {
	Rho float64 // step multiplier
}

// Next returns the next candidate
func (o *FixedStep) Next(ev *Evaluator, a Tensor, cost float64, grad Tensor) (Tensor, bool, error) {
	return a.AddScaled(-o.Rho, grad), false, nil
}

// Armijo performs a backtracking line search along the steepest descent
// direction d = -∇J, accepting step size ρ when
//
//	J(a + ρ d) ≤ J(a) + m1 ρ ⟨∇J, d⟩
//
// Starting from ρ = Rho0, ρ is halved on failure, at most Nbkmax times.
// When the budget runs out, the smallest-ρ candidate is returned
// together with the exhausted flag.
type Armijo struct {
	Rho0   float64 // initial step size
	M1     float64 // sufficient-decrease parameter, in (0,1)
	Nbkmax int     // maximum number of halvings
}

// Next returns the next candidate. Each trial re-evaluates the cost
// only; the gradient is not needed during backtracking.
func (o *Armijo) Next(ev *Evaluator, a Tensor, cost float64, grad Tensor) (anext Tensor, exhausted bool, err error) {
	slope := -grad.Dot(grad) // ⟨∇J, d⟩ with d = -∇J
	rho := o.Rho0
	var Jtrial float64
	for i := 0; i <= o.Nbkmax; i++ {
		anext = a.AddScaled(-rho, grad)
		Jtrial, err = ev.Cost(anext)
		if err != nil {
			return
		}
		if Jtrial <= cost+o.M1*rho*slope {
			return anext, false, nil
		}
		rho /= 2.0
	}
	return anext, true, nil
}

// add selectors to database
func init() {
	selectorAllocators["fixed"] = func(dat *inp.StepData) Selector {
		return &FixedStep{Rho: dat.Rho}
	}
	selectorAllocators["armijo"] = func(dat *inp.StepData) Selector {
		return &Armijo{Rho0: dat.Rho, M1: dat.M1, Nbkmax: dat.Nbkmax}
	}
}
