// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// modalFixture returns a three-loading modal oracle whose exact
// minimiser is astar, together with matching target energies and the
// usual starting point. The modes are chosen so the three equations
// λp(a) = λp(astar) determine all three tensor components.
func modalFixture() (orc *ModalOracle, eosc []float64, astar, a0 Tensor) {
	π := math.Pi
	astar = Tensor{A11: 19.33, A12: -0.0089, A22: 11.8}
	a0 = Tensor{A11: 16, A12: 0, A22: 4}
	modes := [][2]float64{{π, π}, {π, -π}, {2 * π, π}}
	e0 := make([]float64, len(modes))
	for p, m := range modes {
		wx, wy := m[0], m[1]
		e0[p] = astar.A11*wx*wx + 2.0*astar.A12*wx*wy + astar.A22*wy*wy
	}
	orc = &ModalOracle{Modes: modes, E0: e0}
	eosc = []float64{1, 1, 1} // = Ep(astar) since e0[p] = λp(astar)
	return
}

// stiffFixture returns a single-loading oracle with a huge target
// energy. The descent direction immediately leaves the region where
// λ > 0, so any reasonable backtracking budget runs out.
func stiffFixture() (orc *ModalOracle, eosc []float64, a0 Tensor) {
	orc = &ModalOracle{Modes: [][2]float64{{1, 1}}, E0: []float64{2}}
	eosc = []float64{1000}
	a0 = Tensor{A11: 1, A12: 0, A22: 1}
	return
}
