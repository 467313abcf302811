// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"sync"

	"github.com/cpmech/gosl/chk"
)

// ModalOracle is a synthetic solve oracle representing an analytically
// solvable toy problem: loading p excites a single mode with frequency
// pair (Wx, Wy) and strength E0, for which
//
//	λp(a)  = a11 Wx² + 2 a12 Wx Wy + a22 Wy²
//	Ep(a)  = E0 / λp(a)
//	Ixx    = E0 Wx²  / λp²      (similarly Ixy, Iyy)
//
// These integrals satisfy dEp/da11 = -Ixx, dEp/da12 = -2 Ixy and
// dEp/da22 = -Iyy, the same identities the finite element oracle
// satisfies, so gradient checks work against it. No finite element
// machinery involved; used by tests.
type ModalOracle struct {
	Modes  [][2]float64 // [P] frequency pair (Wx, Wy) per loading
	E0     []float64    // [P] modal strength per loading
	FailAt int          // fail at this Solve call (counting from 1); 0 means never

	mu     sync.Mutex
	ncalls int
}

// NumLoadings returns the number of loadings
func (o *ModalOracle) NumLoadings() int { return len(o.Modes) }

// Ncalls returns the number of Solve invocations so far
func (o *ModalOracle) Ncalls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ncalls
}

// Energy returns Ep(a), the exact modal energy for loading idx
func (o *ModalOracle) Energy(a Tensor, idx int) float64 {
	wx, wy := o.Modes[idx][0], o.Modes[idx][1]
	lam := a.A11*wx*wx + 2.0*a.A12*wx*wy + a.A22*wy*wy
	return o.E0[idx] / lam
}

// Solve returns the modal result for loading idx
func (o *ModalOracle) Solve(a Tensor, idx int) (*MacroResult, error) {
	o.mu.Lock()
	o.ncalls++
	n := o.ncalls
	o.mu.Unlock()
	if o.FailAt > 0 && n >= o.FailAt {
		return nil, chk.Err("synthetic solve failure @ call %d", n)
	}
	if idx < 0 || idx >= len(o.Modes) {
		return nil, chk.Err("loading index %d is out of range", idx)
	}
	wx, wy := o.Modes[idx][0], o.Modes[idx][1]
	lam := a.A11*wx*wx + 2.0*a.A12*wx*wy + a.A22*wy*wy
	c := o.E0[idx] / (lam * lam)
	return &MacroResult{
		Ixx: c * wx * wx,
		Ixy: c * wx * wy,
		Iyy: c * wy * wy,
	}, nil
}
