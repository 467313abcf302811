// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gohom/fem"
	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gohom/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	genosc := io.ArgToBool(1, false)
	verbose := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGohom -- Go Homogenization of Elliptic Coefficients\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"generate oscillating solutions", "genosc", genosc,
			"show messages", "verbose", verbose,
		))
	}

	// read simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input data:\n%v", err)
	}

	// phase 1: fine-scale solutions and energies
	if genosc {
		if verbose {
			io.Pf("> Solving fine-scale problems\n")
		}
		_, err := fem.GenOscillating(sim, verbose)
		if err != nil {
			chk.Panic("cannot generate oscillating solutions:\n%v", err)
		}
		if verbose {
			io.Pf("> Oscillating solutions and energies written to %s\n", sim.Data.DirOut)
		}
		return
	}

	// phase 2: effective-tensor estimation.
	// use persisted energies if available; otherwise recompute them
	// from the persisted fine-scale solutions
	fnen := io.Sf("%s/%s-energies.res", sim.Data.DirOut, sim.Data.Fnkey)
	eosc, err := out.ReadVals(fnen)
	if err != nil {
		eosc, err = fem.OscEnergies(sim)
		if err != nil {
			chk.Panic("cannot obtain oscillating energies (run with genosc=1 first):\n%v", err)
		}
	}
	if verbose {
		io.Pf("> Running effective-tensor estimation\n")
	}
	a, opt, err := fem.Estimate(sim, eosc, verbose)
	if err != nil {
		chk.Panic("estimation failed:\n%v", err)
	}

	// final cost for the report
	J, err := opt.Ev.Cost(a)
	if err != nil {
		chk.Panic("cannot evaluate final cost:\n%v", err)
	}

	// write results
	rep := &out.Report{A: a, Cost: J, Niter: opt.Niter, Warnings: opt.Warnings}
	err = out.WriteReport(sim.Data.DirOut, io.Sf("%s-report.json", sim.Data.Fnkey), rep)
	if err != nil {
		chk.Panic("cannot write report:\n%v", err)
	}
	if sim.Opt.Trace {
		out.WriteTrace(sim.Data.DirOut, io.Sf("%s-trace.res", sim.Data.Fnkey), opt.Trace)
	}

	// message
	if verbose {
		io.Pf("\n%v\n", io.ArgsTable("EFFECTIVE TENSOR",
			"xx component", "a11", a.A11,
			"xy component", "a12", a.A12,
			"yy component", "a22", a.A22,
		))
		io.Pf("final cost = %23.15e\n", J)
		for _, w := range opt.Warnings {
			io.PfYel("warning: %s\n", w)
		}
		io.Pf("> Results written to %s\n", sim.Data.DirOut)
	}
}
