// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"sync"
)

// Evaluator computes the energy-matching cost
//
//	J(a) = Σp (Eosc[p] - Emac[p](a))²
//
// and its exact gradient with respect to the three tensor components.
// The gradient follows from the energy being linear in the tensor:
//
//	dJ/da11 = Σp 2 (Eosc[p] - Emac[p]) ∫(du/dx)²
//	dJ/da12 = Σp 4 (Eosc[p] - Emac[p]) ∫(du/dx)(du/dy)
//	dJ/da22 = Σp 2 (Eosc[p] - Emac[p]) ∫(du/dy)²
type Evaluator struct {
	oracle Oracle    // macroscopic solve oracle
	eosc   []float64 // target oscillating energies
	nproc  int       // number of concurrent per-loading solves
}

// NewEvaluator returns a new evaluator. The length of the
// oscillating-energy sequence must match the number of loadings served
// by the oracle. nproc < 2 means serial per-loading solves.
func NewEvaluator(oracle Oracle, eosc []float64, nproc int) (o *Evaluator, err error) {
	if len(eosc) != oracle.NumLoadings() {
		return nil, &MismatchError{len(eosc), oracle.NumLoadings()}
	}
	if nproc < 1 {
		nproc = 1
	}
	o = &Evaluator{oracle, eosc, nproc}
	return
}

// P returns the number of loadings
func (o *Evaluator) P() int { return len(o.eosc) }

// Cost computes J(a). Armijo trial steps use this path to avoid the
// gradient bookkeeping.
func (o *Evaluator) Cost(a Tensor) (J float64, err error) {
	res, err := o.solveAll(a)
	if err != nil {
		return
	}
	for p, r := range res {
		d := o.eosc[p] - r.Energy(a)
		J += d * d
	}
	return
}

// CostGrad computes J(a) and its gradient
func (o *Evaluator) CostGrad(a Tensor) (J float64, g Tensor, err error) {
	res, err := o.solveAll(a)
	if err != nil {
		return
	}
	for p, r := range res {
		d := o.eosc[p] - r.Energy(a)
		J += d * d
		g.A11 += 2.0 * d * r.Ixx
		g.A12 += 4.0 * d * r.Ixy
		g.A22 += 2.0 * d * r.Iyy
	}
	return
}

// solveAll performs the P macroscopic solves for candidate a. The
// loadings are mutually independent; with nproc > 1 the solves run on
// that many goroutines and are joined before aggregation.
func (o *Evaluator) solveAll(a Tensor) (res []*MacroResult, err error) {
	np := len(o.eosc)
	res = make([]*MacroResult, np)
	if o.nproc < 2 {
		for p := 0; p < np; p++ {
			res[p], err = o.oracle.Solve(a, p)
			if err != nil {
				return nil, &SolveError{-1, p, a, err}
			}
		}
		return
	}
	errs := make([]error, np)
	sem := make(chan struct{}, o.nproc)
	var wg sync.WaitGroup
	for p := 0; p < np; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			sem <- struct{}{}
			res[p], errs[p] = o.oracle.Solve(a, p)
			<-sem
		}(p)
	}
	wg.Wait()
	for p, e := range errs {
		if e != nil {
			return nil, &SolveError{-1, p, a, e}
		}
	}
	return
}
