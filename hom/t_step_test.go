// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"math"
	"testing"

	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_step01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step01. fixed step is pure and exact")

	orc, eosc, _, a0 := modalFixture()
	ev, err := NewEvaluator(orc, eosc, 1)
	if err != nil {
		tst.Errorf("NewEvaluator failed:\n%v", err)
		return
	}
	J, g, err := ev.CostGrad(a0)
	if err != nil {
		tst.Errorf("CostGrad failed:\n%v", err)
		return
	}

	sel := &FixedStep{Rho: 0.1}
	before := orc.Ncalls()
	anext, exhausted, err := sel.Next(ev, a0, J, g)
	if err != nil {
		tst.Errorf("Next failed:\n%v", err)
		return
	}
	if exhausted {
		tst.Errorf("fixed step cannot exhaust a budget")
		return
	}

	// no oracle calls during step selection
	chk.Int(tst, "oracle calls", orc.Ncalls()-before, 0)

	// next = current - ρ grad, bit for bit
	want := a0.AddScaled(-0.1, g)
	chk.Float64(tst, "a11", 1e-17, anext.A11, want.A11)
	chk.Float64(tst, "a12", 1e-17, anext.A12, want.A12)
	chk.Float64(tst, "a22", 1e-17, anext.A22, want.A22)

	// calling again from the same state gives the same candidate
	again, _, err := sel.Next(ev, a0, J, g)
	if err != nil {
		tst.Errorf("Next failed:\n%v", err)
		return
	}
	chk.Float64(tst, "a11 repeat", 1e-17, again.A11, anext.A11)
	chk.Float64(tst, "a12 repeat", 1e-17, again.A12, anext.A12)
	chk.Float64(tst, "a22 repeat", 1e-17, again.A22, anext.A22)
}

func Test_step02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step02. armijo accepts a sufficient decrease")

	orc, eosc, _, a0 := modalFixture()
	ev, err := NewEvaluator(orc, eosc, 1)
	if err != nil {
		tst.Errorf("NewEvaluator failed:\n%v", err)
		return
	}
	J, g, err := ev.CostGrad(a0)
	if err != nil {
		tst.Errorf("CostGrad failed:\n%v", err)
		return
	}

	sel := &Armijo{Rho0: 0.5, M1: 0.1, Nbkmax: 7}
	anext, exhausted, err := sel.Next(ev, a0, J, g)
	if err != nil {
		tst.Errorf("Next failed:\n%v", err)
		return
	}
	if exhausted {
		tst.Errorf("line search should not exhaust here")
		return
	}

	// recover the accepted step size and check it is ρ0 / 2^k
	ρ := (a0.A11 - anext.A11) / g.A11
	k := math.Log2(0.5 / ρ)
	io.Pforan("accepted ρ = %v (k = %v)\n", ρ, k)
	chk.Float64(tst, "k is integral", 1e-12, k, math.Round(k))
	if k < 0 || k > 7 {
		tst.Errorf("accepted step %v outside the backtracking schedule", ρ)
		return
	}

	// the accepted candidate satisfies the sufficient decrease condition
	Jnext, err := ev.Cost(anext)
	if err != nil {
		tst.Errorf("Cost failed:\n%v", err)
		return
	}
	slope := -g.Dot(g)
	if Jnext > J+sel.M1*ρ*slope {
		tst.Errorf("sufficient decrease violated: J=%v Jnext=%v", J, Jnext)
	}
}

func Test_step03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step03. armijo exhaustion returns the last trial")

	orc, eosc, a0 := stiffFixture()
	ev, err := NewEvaluator(orc, eosc, 1)
	if err != nil {
		tst.Errorf("NewEvaluator failed:\n%v", err)
		return
	}
	J, g, err := ev.CostGrad(a0)
	if err != nil {
		tst.Errorf("CostGrad failed:\n%v", err)
		return
	}
	chk.Float64(tst, "J(a0)", 1e-17, J, 998001.0)
	chk.Float64(tst, "g.A11", 1e-17, g.A11, 999.0)
	chk.Float64(tst, "g.A12", 1e-17, g.A12, 1998.0)
	chk.Float64(tst, "g.A22", 1e-17, g.A22, 999.0)

	// every trial overshoots into λ < 0 where the cost stays huge,
	// so all 8 trials are rejected
	sel := &Armijo{Rho0: 0.1, M1: 0.1, Nbkmax: 7}
	before := orc.Ncalls()
	anext, exhausted, err := sel.Next(ev, a0, J, g)
	if err != nil {
		tst.Errorf("Next failed:\n%v", err)
		return
	}
	if !exhausted {
		tst.Errorf("line search should have exhausted its budget")
		return
	}
	chk.Int(tst, "trial evaluations", orc.Ncalls()-before, 8)

	// the candidate is the smallest-step trial
	want := a0.AddScaled(-0.1/128.0, g)
	chk.Float64(tst, "a11", 1e-15, anext.A11, want.A11)
	chk.Float64(tst, "a12", 1e-15, anext.A12, want.A12)
	chk.Float64(tst, "a22", 1e-15, anext.A22, want.A22)
	io.Pforan("anext = %v\n", anext)
}

func Test_step04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("step04. selector database")

	sel, err := NewSelector(&inp.StepData{Type: "fixed", Rho: 0.25})
	if err != nil {
		tst.Errorf("NewSelector failed:\n%v", err)
		return
	}
	if fs, ok := sel.(*FixedStep); !ok || fs.Rho != 0.25 {
		tst.Errorf("wrong fixed selector: %v", sel)
	}

	sel, err = NewSelector(&inp.StepData{Type: "armijo", Rho: 0.5, M1: 0.1, Nbkmax: 7})
	if err != nil {
		tst.Errorf("NewSelector failed:\n%v", err)
		return
	}
	if ar, ok := sel.(*Armijo); !ok || ar.Rho0 != 0.5 || ar.M1 != 0.1 || ar.Nbkmax != 7 {
		tst.Errorf("wrong armijo selector: %v", sel)
	}

	_, err = NewSelector(&inp.StepData{Type: "newton"})
	if err == nil {
		tst.Errorf("unknown selector type should fail")
	}
}
