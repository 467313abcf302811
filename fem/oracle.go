// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/gohom/hom"
	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gohom/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Macro implements the macroscopic solve oracle (hom.Oracle) on a
// structured grid. For each new candidate tensor the system is
// assembled and factorized once; the per-loading solves then share the
// read-only factorization and may run concurrently.
type Macro struct {
	grid  *Grid
	loads *Loadings
	dat   *inp.LinSolData

	mu    sync.Mutex
	cur   hom.Tensor // tensor of the current factorization
	sol   LinSol     // current factorization
	ready bool
}

// NewMacro returns a new macroscopic oracle
func NewMacro(grid *Grid, loads *Loadings, dat *inp.LinSolData) *Macro {
	return &Macro{grid: grid, loads: loads, dat: dat}
}

// NumLoadings returns the number of loadings
func (o *Macro) NumLoadings() int { return o.loads.P }

// Solve solves the macroscopic problem for candidate tensor a and
// loading idx, and computes the gradient integrals of the solution
func (o *Macro) Solve(a hom.Tensor, idx int) (*hom.MacroResult, error) {
	if idx < 0 || idx >= o.loads.P {
		return nil, chk.Err("loading index %d is out of range [0,%d)", idx, o.loads.P)
	}
	sol, err := o.prepare(a)
	if err != nil {
		return nil, err
	}
	u := la.NewVector(o.grid.Neq)
	if err := sol.Solve(u, o.loads.F[idx]); err != nil {
		return nil, err
	}
	ixx, ixy, iyy := Integrals(o.grid, u)
	return &hom.MacroResult{U: u, Ixx: ixx, Ixy: ixy, Iyy: iyy}, nil
}

// prepare assembles and factorizes the system for tensor a, reusing the
// current factorization when a has not changed
func (o *Macro) prepare(a hom.Tensor) (LinSol, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ready && a == o.cur {
		return o.sol, nil
	}
	if o.sol != nil {
		o.sol.Free()
		o.ready = false
	}
	kb := BuildKb(o.grid, &mdl.Uniform{Kxx: a.A11, Kxy: a.A12, Kyy: a.A22})
	sol, err := NewLinSol(o.dat)
	if err != nil {
		return nil, err
	}
	if err := sol.Init(kb); err != nil {
		return nil, err
	}
	o.cur = a
	o.sol = sol
	o.ready = true
	return sol, nil
}
