// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// Cholesky is a dense direct solver for the symmetric positive-definite
// macroscopic systems. The coarse grids used for candidate tensors keep
// these systems small, so one factorization per tensor followed by P
// triangular solves is cheap.
type Cholesky struct {
	chol mat.Cholesky
	neq  int
}

// Init converts the triplet to dense symmetric storage and factorizes.
// A factorization failure indicates a non-positive-definite system;
// e.g. a degenerate candidate tensor.
func (o *Cholesky) Init(kb *la.Triplet) error {
	m, n := kb.Size()
	if m != n {
		return chk.Err("system matrix must be square. %d x %d is invalid", m, n)
	}
	d := kb.ToDense()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, d.Get(i, j))
		}
	}
	if ok := o.chol.Factorize(sym); !ok {
		return chk.Err("Cholesky factorization failed: matrix is not positive definite")
	}
	o.neq = n
	return nil
}

// Solve performs one triangular solve from the shared factorization
func (o *Cholesky) Solve(x, b la.Vector) error {
	var v mat.VecDense
	err := o.chol.SolveVecTo(&v, mat.NewVecDense(len(b), b))
	if err != nil {
		return chk.Err("Cholesky solve failed:\n%v", err)
	}
	for i := 0; i < o.neq; i++ {
		x[i] = v.AtVec(i)
	}
	return nil
}

// Free implements the LinSol interface
func (o *Cholesky) Free() {}

// add solver to database
func init() {
	solverAllocators["cholesky"] = func(dat *inp.LinSolData) LinSol {
		return new(Cholesky)
	}
}
