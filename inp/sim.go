// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Data holds global data
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gohom
	Nproc  int    `json:"nproc"`  // number of concurrent macroscopic solves; 0 or 1 means serial

	// derived
	Fnkey string // simulation key == .sim filename without path and extension
}

// MeshData holds structured grid data for the rectangular domain
// [0,Lx] × [0,Ly]
type MeshData struct {
	Nx int     `json:"nx"` // number of cell divisions along x
	Ny int     `json:"ny"` // number of cell divisions along y
	Lx float64 `json:"lx"` // domain length along x
	Ly float64 `json:"ly"` // domain length along y
}

// CoefData holds diffusion coefficient model data
type CoefData struct {
	Name      string  `json:"name"`      // model name; e.g. "uniform" or "periodic"
	A11       float64 `json:"a11"`       // uniform: xx component
	A12       float64 `json:"a12"`       // uniform: xy component
	A22       float64 `json:"a22"`       // uniform: yy component
	Amean     float64 `json:"amean"`     // periodic: mean value of oscillating coefficient
	Acontrast float64 `json:"acontrast"` // periodic: oscillation contrast, in [0,1)
	Eps       float64 `json:"eps"`       // periodic: period of oscillations
}

// LinSolData holds linear solver data
type LinSolData struct {
	Name  string  `json:"name"`  // "cholesky" or "cg"
	Tol   float64 `json:"tol"`   // cg: relative residual tolerance
	MaxIt int     `json:"maxit"` // cg: maximum number of iterations; 0 means 2 * number of equations
}

// LoadData holds loading generation data
type LoadData struct {
	P     int     `json:"p"`     // number of loadings
	Ortho bool    `json:"ortho"` // orthonormalize load vectors
	Scale float64 `json:"scale"` // loading amplitude; 0 means 1
}

// StepData holds step selection policy data
type StepData struct {
	Type   string  `json:"type"`   // "fixed" or "armijo"
	Rho    float64 `json:"rho"`    // fixed: step multiplier; armijo: initial step size
	M1     float64 `json:"m1"`     // armijo: sufficient-decrease parameter, in (0,1)
	Nbkmax int     `json:"nbkmax"` // armijo: maximum number of halvings
}

// OptData holds optimizer data
type OptData struct {
	Niter int     `json:"niter"` // number of iterations
	A11   float64 `json:"a11"`   // initial tensor: xx component
	A12   float64 `json:"a12"`   // initial tensor: xy component
	A22   float64 `json:"a22"`   // initial tensor: yy component
	Trace bool    `json:"trace"` // record iteration trace
}

// Simulation holds all simulation data
type Simulation struct {
	Data    Data       `json:"data"`    // global data
	Fine    MeshData   `json:"fine"`    // fine grid resolving the microstructure
	Macro   MeshData   `json:"macro"`   // coarse grid for the candidate tensor
	Coef    CoefData   `json:"coef"`    // oscillating coefficient model
	FineSol LinSolData `json:"finesol"` // linear solver for fine-scale solves
	LinSol  LinSolData `json:"linsol"`  // linear solver for macroscopic solves
	Load    LoadData   `json:"load"`    // loading generation
	Step    StepData   `json:"step"`    // step selection policy
	Opt     OptData    `json:"opt"`     // optimizer
}

// ReadSim reads simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}

	// derived data and defaults
	fn := filepath.Base(simfilepath)
	o.Data.Fnkey = fn[:len(fn)-len(filepath.Ext(fn))]
	o.SetDefaults()

	// check
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}

// SetDefaults fills in default values for missing data
func (o *Simulation) SetDefaults() {
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/gohom/" + o.Data.Fnkey
	}
	if o.Fine.Lx == 0 {
		o.Fine.Lx = 1.0
	}
	if o.Fine.Ly == 0 {
		o.Fine.Ly = 1.0
	}
	if o.Macro.Lx == 0 {
		o.Macro.Lx = o.Fine.Lx
	}
	if o.Macro.Ly == 0 {
		o.Macro.Ly = o.Fine.Ly
	}
	if o.FineSol.Name == "" {
		o.FineSol.Name = "cg"
	}
	if o.LinSol.Name == "" {
		o.LinSol.Name = "cholesky"
	}
	if o.FineSol.Tol == 0 {
		o.FineSol.Tol = 1e-10
	}
	if o.LinSol.Tol == 0 {
		o.LinSol.Tol = 1e-10
	}
	if o.Load.Scale == 0 {
		o.Load.Scale = 1.0
	}
	if o.Step.Type == "" {
		o.Step.Type = "fixed"
	}
	if o.Step.Nbkmax == 0 {
		o.Step.Nbkmax = 7
	}
	if o.Step.M1 == 0 {
		o.Step.M1 = 0.1
	}
}

// Check verifies consistency of input data
func (o *Simulation) Check() (err error) {
	switch {
	case o.Fine.Nx < 2 || o.Fine.Ny < 2:
		err = chk.Err("fine grid must have at least 2x2 cells. %dx%d is invalid", o.Fine.Nx, o.Fine.Ny)
	case o.Macro.Nx < 2 || o.Macro.Ny < 2:
		err = chk.Err("macro grid must have at least 2x2 cells. %dx%d is invalid", o.Macro.Nx, o.Macro.Ny)
	case o.Load.P < 1:
		err = chk.Err("number of loadings must be positive. %d is invalid", o.Load.P)
	case o.Opt.Niter < 1:
		err = chk.Err("number of iterations must be positive. %d is invalid", o.Opt.Niter)
	case o.Step.Rho <= 0:
		err = chk.Err("step size must be positive. %g is invalid", o.Step.Rho)
	}
	return
}
