// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// TraceItem records the state at the beginning of one iteration
type TraceItem struct {
	It   int     // iteration index
	Cost float64 // cost at the beginning of the iteration
	A    Tensor  // candidate at the beginning of the iteration
}

// Optimizer drives the energy-matching descent. The loop runs for
// exactly Niter iterations; there is no convergence-based early exit
// and no clamping of the candidate components, so a run is
// deterministic and reproducible for the same inputs.
type Optimizer struct {

	// input
	Ev        *Evaluator // cost/gradient evaluator
	Sel       Selector   // step selection policy
	Niter     int        // iteration budget
	SaveTrace bool       // record per-iteration cost and tensor snapshots
	Verbose   bool       // print progress

	// results
	Trace    []TraceItem // iteration trace; set if SaveTrace
	Warnings []string    // non-fatal events; e.g. line-search exhaustion
}

// NewOptimizer returns a new optimizer
func NewOptimizer(ev *Evaluator, sel Selector, niter int) (o *Optimizer, err error) {
	if ev == nil || sel == nil {
		return nil, chk.Err("evaluator and step selector must be provided")
	}
	if niter < 1 {
		return nil, chk.Err("number of iterations must be positive. %d is invalid", niter)
	}
	o = &Optimizer{Ev: ev, Sel: sel, Niter: niter}
	return
}

// Run performs the descent starting from a0 and returns the candidate
// after Niter iterations. On failure the error carries the iteration
// index and the candidate tensor at the time of failure; no partial
// tensor is returned.
func (o *Optimizer) Run(a0 Tensor) (a Tensor, err error) {
	a = a0
	o.Trace = o.Trace[:0]
	o.Warnings = o.Warnings[:0]
	for it := 0; it < o.Niter; it++ {

		// cost and gradient at the current candidate
		J, g, err := o.Ev.CostGrad(a)
		if err != nil {
			return a, o.fail(err, it, a)
		}
		if o.SaveTrace {
			o.Trace = append(o.Trace, TraceItem{it, J, a})
		}
		if o.Verbose {
			io.Pf("it=%4d  J=%13.7e  a=%v\n", it, J, a)
		}

		// next candidate
		anext, exhausted, err := o.Sel.Next(o.Ev, a, J, g)
		if err != nil {
			return a, o.fail(err, it, a)
		}
		if exhausted {
			o.Warnings = append(o.Warnings, io.Sf("line search exhausted @ iteration %d", it))
		}
		a = anext
	}
	return
}

// fail attaches iteration context to failures
func (o *Optimizer) fail(err error, it int, a Tensor) error {
	if e, ok := err.(*SolveError); ok {
		e.It = it
		return e
	}
	return chk.Err("optimization failed @ iteration %d with tensor %v:\n%v", it, a, err)
}
