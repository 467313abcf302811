// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gohom/hom"
	"github.com/cpmech/gohom/inp"
)

// Estimate runs the effective-tensor estimation phase: build the
// macroscopic oracle on the coarse grid and drive the energy-matching
// descent against the given oscillating energies. The returned
// optimizer carries the trace and warnings of the run.
func Estimate(sim *inp.Simulation, eosc []float64, verbose bool) (a hom.Tensor, opt *hom.Optimizer, err error) {

	// macroscopic oracle
	g, err := NewGrid(&sim.Macro)
	if err != nil {
		return
	}
	loads, err := BuildLoadings(g, &sim.Load)
	if err != nil {
		return
	}
	macro := NewMacro(g, loads, &sim.LinSol)

	// optimizer
	ev, err := hom.NewEvaluator(macro, eosc, sim.Data.Nproc)
	if err != nil {
		return
	}
	sel, err := hom.NewSelector(&sim.Step)
	if err != nil {
		return
	}
	opt, err = hom.NewOptimizer(ev, sel, sim.Opt.Niter)
	if err != nil {
		return
	}
	opt.SaveTrace = sim.Opt.Trace
	opt.Verbose = verbose

	// descent
	a0 := hom.Tensor{A11: sim.Opt.A11, A12: sim.Opt.A12, A22: sim.Opt.A22}
	a, err = opt.Run(a0)
	return
}
