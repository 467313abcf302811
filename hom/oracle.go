// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// MacroResult holds the outcome of one macroscopic solve: the discrete
// solution field and its gradient integrals over the domain
type MacroResult struct {
	U   la.Vector // solution field
	Ixx float64   // ∫ (du/dx)² dΩ
	Ixy float64   // ∫ (du/dx)(du/dy) dΩ
	Iyy float64   // ∫ (du/dy)² dΩ
}

// Energy returns the macroscopic strain energy ∫ ∇u·a∇u dΩ associated
// with tensor a
func (o *MacroResult) Energy(a Tensor) float64 {
	return a.A11*o.Ixx + 2.0*a.A12*o.Ixy + a.A22*o.Iyy
}

// Oracle solves the macroscopic problem for a candidate tensor and one
// loading. Implementations must keep no per-call state and must be safe
// for concurrent Solve calls with the same tensor.
type Oracle interface {

	// Solve returns the macroscopic solution for candidate tensor a and
	// loading index idx
	Solve(a Tensor, idx int) (*MacroResult, error)

	// NumLoadings returns the number of loadings served by this oracle
	NumLoadings() int
}

// SolveError indicates that the oracle could not produce a macroscopic
// solution; e.g. the assembled system became singular for a degenerate
// candidate tensor
type SolveError struct {
	It  int    // iteration index when the failure happened; -1 outside the iteration loop
	Idx int    // loading index
	A   Tensor // candidate tensor at the time of failure
	Err error  // underlying failure
}

func (e *SolveError) Error() string {
	return io.Sf("macroscopic solve failed @ iteration %d, loading %d, with tensor %v: %v", e.It, e.Idx, e.A, e.Err)
}

// MismatchError indicates disagreement between the loading set and the
// oscillating-energy sequence. Detected before the first iteration.
type MismatchError struct {
	Nenergies int // number of oscillating energies
	Nloadings int // number of loadings served by the oracle
}

func (e *MismatchError) Error() string {
	return io.Sf("number of oscillating energies (%d) does not match number of loadings (%d)", e.Nenergies, e.Nloadings)
}
