// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/cpmech/gohom/ana"
	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gohom/mdl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_assembly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly01. stiffness symmetry and definiteness")

	g, err := NewGrid(&inp.MeshData{Nx: 6, Ny: 5, Lx: 1, Ly: 1})
	if err != nil {
		tst.Errorf("NewGrid failed:\n%v", err)
		return
	}
	kb := BuildKb(g, &mdl.Uniform{Kxx: 2, Kxy: 0.5, Kyy: 3})
	K := kb.ToDense()
	for i := 0; i < g.Neq; i++ {
		for j := i + 1; j < g.Neq; j++ {
			if math.Abs(K.Get(i, j)-K.Get(j, i)) > 1e-14 {
				tst.Errorf("K is not symmetric @ (%d,%d): %v != %v", i, j, K.Get(i, j), K.Get(j, i))
				return
			}
		}
	}

	// an SPD tensor factorizes
	var sol Cholesky
	if err := sol.Init(kb); err != nil {
		tst.Errorf("Init failed for an SPD tensor:\n%v", err)
		return
	}
	sol.Free()

	// an indefinite tensor does not
	kb = BuildKb(g, &mdl.Uniform{Kxx: 1, Kxy: 2, Kyy: 1})
	if err := sol.Init(kb); err == nil {
		tst.Errorf("Init should fail for an indefinite tensor")
	}
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. eigenfunction loading on the unit square")

	g, err := NewGrid(&inp.MeshData{Nx: 16, Ny: 16, Lx: 1, Ly: 1})
	if err != nil {
		tst.Errorf("NewGrid failed:\n%v", err)
		return
	}
	coef := &mdl.Uniform{Kxx: 1, Kxy: 0, Kyy: 1}
	loads, err := BuildLoadings(g, &inp.LoadData{P: 1, Scale: 1})
	if err != nil {
		tst.Errorf("BuildLoadings failed:\n%v", err)
		return
	}

	var sol Cholesky
	if err := sol.Init(BuildKb(g, coef)); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	defer sol.Free()
	u := la.NewVector(g.Neq)
	if err := sol.Solve(u, loads.F[0]); err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// discrete energy and gradient integrals
	E := la.VecDot(loads.F[0], u)
	ixx, ixy, iyy := Integrals(g, u)
	io.Pforan("E = %v  ixx = %v  ixy = %v  iyy = %v\n", E, ixx, ixy, iyy)
	chk.Float64(tst, "E", 1e-12, E, 1.2624536034284678e-02)
	chk.Float64(tst, "ixx", 1e-12, ixx, 6.3122680171423520e-03)
	chk.Float64(tst, "iyy", 1e-12, iyy, 6.3122680171423503e-03)
	chk.Float64(tst, "ixy", 1e-15, ixy, 0)

	// against the closed-form solution; the discretization error is
	// O(h²) on this grid
	rp := &ana.RectPoisson{Lx: 1, Ly: 1, Kxx: 1, Kyy: 1, C: 1, I: 1, J: 1}
	rp.Init()
	chk.Float64(tst, "E vs exact", 5e-5, E, rp.Energy())
	chk.Float64(tst, "ixx vs exact", 3e-5, ixx, rp.Ixx())
	chk.Float64(tst, "iyy vs exact", 3e-5, iyy, rp.Iyy())
	maxerr := 0.0
	for n := 0; n < g.Nnode; n++ {
		I := g.Eq[n]
		if I < 0 {
			continue
		}
		x, y := g.NodeCoords(n)
		if e := math.Abs(u[I] - rp.Sol(x, y)); e > maxerr {
			maxerr = e
		}
	}
	io.Pforan("max nodal error = %v\n", maxerr)
	if maxerr > 2e-4 {
		tst.Errorf("nodal error too large: %v", maxerr)
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. cg agrees with cholesky")

	g, err := NewGrid(&inp.MeshData{Nx: 12, Ny: 12, Lx: 1, Ly: 1})
	if err != nil {
		tst.Errorf("NewGrid failed:\n%v", err)
		return
	}
	kb := BuildKb(g, &mdl.Uniform{Kxx: 2, Kxy: 0.5, Kyy: 3})
	loads, err := BuildLoadings(g, &inp.LoadData{P: 3, Scale: 1})
	if err != nil {
		tst.Errorf("BuildLoadings failed:\n%v", err)
		return
	}

	direct, err := NewLinSol(&inp.LinSolData{Name: "cholesky"})
	if err != nil {
		tst.Errorf("NewLinSol failed:\n%v", err)
		return
	}
	iterative, err := NewLinSol(&inp.LinSolData{Name: "cg", Tol: 1e-12})
	if err != nil {
		tst.Errorf("NewLinSol failed:\n%v", err)
		return
	}
	if err := direct.Init(kb); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	defer direct.Free()
	if err := iterative.Init(kb); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	defer iterative.Free()

	ud := la.NewVector(g.Neq)
	ui := la.NewVector(g.Neq)
	for p := 2; p >= 0; p-- {
		if err := direct.Solve(ud, loads.F[p]); err != nil {
			tst.Errorf("direct solve failed:\n%v", err)
			return
		}
		if err := iterative.Solve(ui, loads.F[p]); err != nil {
			tst.Errorf("iterative solve failed:\n%v", err)
			return
		}
		chk.Array(tst, io.Sf("u cholesky vs cg (loading %d)", p), 1e-8, ud, ui)
	}

	// the galerkin identity holds for the direct solution
	if err := direct.Solve(ud, loads.F[0]); err != nil {
		tst.Errorf("direct solve failed:\n%v", err)
		return
	}
	E := StrainEnergy(g, &mdl.Uniform{Kxx: 2, Kxy: 0.5, Kyy: 3}, ud)
	chk.Float64(tst, "uᵀKu vs fᵀu", 1e-12, E, la.VecDot(loads.F[0], ud))
}

func Test_solve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve03. solver database")

	if _, err := NewLinSol(&inp.LinSolData{Name: "lu"}); err == nil {
		tst.Errorf("unknown solver name should fail")
	}

	// cg rejects a non-square system
	var cg CG
	kb := new(la.Triplet)
	kb.Init(2, 3, 1)
	if err := cg.Init(kb); err == nil {
		tst.Errorf("non-square system should fail")
	}
}
