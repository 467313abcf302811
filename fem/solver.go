// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinSol solves the assembled symmetric positive-definite system
type LinSol interface {

	// Init prepares or factorizes the system matrix
	Init(kb *la.Triplet) error

	// Solve solves K x = b. Must be safe for concurrent calls after
	// a successful Init.
	Solve(x, b la.Vector) error

	// Free releases resources
	Free()
}

// solverAllocators holds all available linear solvers
var solverAllocators = make(map[string]func(dat *inp.LinSolData) LinSol)

// NewLinSol returns a linear solver; e.g. "cholesky" or "cg"
func NewLinSol(dat *inp.LinSolData) (LinSol, error) {
	alloc, ok := solverAllocators[dat.Name]
	if !ok {
		return nil, chk.Err("cannot find linear solver named %q", dat.Name)
	}
	return alloc(dat), nil
}

// CG is a matrix-free conjugate gradient solver working directly on the
// triplet matrix. Pure Go; suited to the fine-scale systems where a
// dense factorization would not fit.
type CG struct {
	tol   float64 // relative residual tolerance
	maxit int     // maximum number of iterations; 0 means 2 neq
	kb    *la.Triplet
	neq   int
}

// Init keeps a reference to the (read-only) triplet
func (o *CG) Init(kb *la.Triplet) error {
	m, n := kb.Size()
	if m != n {
		return chk.Err("system matrix must be square. %d x %d is invalid", m, n)
	}
	o.kb = kb
	o.neq = n
	return nil
}

// Solve runs conjugate gradient iterations until the relative residual
// drops below tol
func (o *CG) Solve(x, b la.Vector) (err error) {
	n := o.neq
	maxit := o.maxit
	if maxit < 1 {
		maxit = 2 * n
	}
	r := la.NewVector(n)
	p := la.NewVector(n)
	ap := la.NewVector(n)
	for i := 0; i < n; i++ {
		x[i] = 0
		r[i] = b[i]
		p[i] = b[i]
	}
	bnorm := math.Sqrt(la.VecDot(b, b))
	if bnorm == 0 {
		return
	}
	rr := la.VecDot(r, r)
	for it := 0; it < maxit; it++ {
		if math.Sqrt(rr) <= o.tol*bnorm {
			return
		}
		la.SpTriMatVecMul(ap, o.kb, p)
		pap := la.VecDot(p, ap)
		if pap <= 0 {
			return chk.Err("cg breakdown: matrix is not positive definite (p·Kp = %g)", pap)
		}
		α := rr / pap
		la.VecAdd(x, 1, x, α, p)
		la.VecAdd(r, 1, r, -α, ap)
		rrnew := la.VecDot(r, r)
		β := rrnew / rr
		rr = rrnew
		la.VecAdd(p, 1, r, β, p)
	}
	return chk.Err("cg did not converge after %d iterations (relative residual = %g)", maxit, math.Sqrt(rr)/bnorm)
}

// Free implements the LinSol interface
func (o *CG) Free() {}

// add solvers to database
func init() {
	solverAllocators["cg"] = func(dat *inp.LinSolData) LinSol {
		return &CG{tol: dat.Tol, maxit: dat.MaxIt}
	}
}
