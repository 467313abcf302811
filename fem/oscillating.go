// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gohom/mdl"
	"github.com/cpmech/gohom/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// GenOscillating runs the fine-scale phase: solve the PDE with the true
// oscillating coefficient for every loading, persist each solution, and
// persist the exact strain energies. The fine grid must resolve the
// microstructure (several cells per period).
func GenOscillating(sim *inp.Simulation, verbose bool) (energies []float64, err error) {

	// fine grid, coefficient and loadings
	g, err := NewGrid(&sim.Fine)
	if err != nil {
		return
	}
	coef, err := mdl.New(&sim.Coef)
	if err != nil {
		return
	}
	loads, err := BuildLoadings(g, &sim.Load)
	if err != nil {
		return
	}

	// assemble and prepare solver;
	// the coefficient does not change across loadings
	kb := BuildKb(g, coef)
	sol, err := NewLinSol(&sim.FineSol)
	if err != nil {
		return
	}
	defer sol.Free()
	err = sol.Init(kb)
	if err != nil {
		return
	}

	// solve all loadings
	u := la.NewVector(g.Neq)
	energies = make([]float64, loads.P)
	for p := 0; p < loads.P; p++ {
		err = sol.Solve(u, loads.F[p])
		if err != nil {
			return nil, err
		}

		// by the Galerkin identity, uᵀKu = fᵀu
		energies[p] = la.VecDot(loads.F[p], u)
		out.WriteVec(sim.Data.DirOut, io.Sf("%s-osc-%03d.res", sim.Data.Fnkey, p), u)
		if verbose {
			io.Pf("loading %3d (mode %v): E = %23.15e\n", p, loads.Modes[p], energies[p])
		}
	}
	out.WriteVals(sim.Data.DirOut, io.Sf("%s-energies.res", sim.Data.Fnkey), energies)
	return
}

// OscEnergies recomputes the oscillating strain energies from persisted
// solutions, via the quadratic form with the oscillating coefficient
func OscEnergies(sim *inp.Simulation) (energies []float64, err error) {
	g, err := NewGrid(&sim.Fine)
	if err != nil {
		return
	}
	coef, err := mdl.New(&sim.Coef)
	if err != nil {
		return
	}
	energies = make([]float64, sim.Load.P)
	for p := 0; p < sim.Load.P; p++ {
		fn := io.Sf("%s/%s-osc-%03d.res", sim.Data.DirOut, sim.Data.Fnkey, p)
		u, err := out.ReadVec(fn)
		if err != nil {
			return nil, err
		}
		if len(u) != g.Neq {
			return nil, chk.Err("solution file %q has %d values but the fine grid has %d equations", fn, len(u), g.Neq)
		}
		energies[p] = StrainEnergy(g, coef, u)
	}
	return
}
