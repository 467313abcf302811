// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element plumbing: structured grids,
// stiffness assembly, linear solvers, loadings and energy integrals
package fem

import (
	"github.com/cpmech/gohom/inp"
	"github.com/cpmech/gosl/chk"
)

// Grid is a structured grid of 4-node quadrilaterals over the rectangle
// [0,Lx] × [0,Ly] with homogeneous Dirichlet conditions on the whole
// boundary. Each interior node carries one unknown; boundary nodes
// carry none.
//
//	Nodes are numbered row by row:  n = j(Nx+1) + i
//	Cells are numbered row by row:  c = j Nx + i
type Grid struct {

	// input
	Nx, Ny int     // number of cell divisions along x and y
	Lx, Ly float64 // domain lengths

	// derived
	Hx, Hy float64 // cell sizes
	Nnode  int     // total number of nodes: (Nx+1)(Ny+1)
	Ncell  int     // total number of cells: Nx Ny
	Neq    int     // number of equations: (Nx-1)(Ny-1)
	Eq     []int   // [Nnode] node to equation number; -1 on boundary
}

// NewGrid returns a new grid
func NewGrid(dat *inp.MeshData) (o *Grid, err error) {
	if dat.Nx < 2 || dat.Ny < 2 {
		return nil, chk.Err("grid must have at least 2x2 cells. %dx%d is invalid", dat.Nx, dat.Ny)
	}
	if dat.Lx <= 0 || dat.Ly <= 0 {
		return nil, chk.Err("domain lengths must be positive. %g x %g is invalid", dat.Lx, dat.Ly)
	}
	o = &Grid{Nx: dat.Nx, Ny: dat.Ny, Lx: dat.Lx, Ly: dat.Ly}
	o.Hx = o.Lx / float64(o.Nx)
	o.Hy = o.Ly / float64(o.Ny)
	o.Nnode = (o.Nx + 1) * (o.Ny + 1)
	o.Ncell = o.Nx * o.Ny
	o.Neq = (o.Nx - 1) * (o.Ny - 1)

	// equation numbers
	o.Eq = make([]int, o.Nnode)
	ieq := 0
	for j := 0; j <= o.Ny; j++ {
		for i := 0; i <= o.Nx; i++ {
			n := j*(o.Nx+1) + i
			if i == 0 || i == o.Nx || j == 0 || j == o.Ny {
				o.Eq[n] = -1
				continue
			}
			o.Eq[n] = ieq
			ieq++
		}
	}
	return
}

// NodeCoords returns the coordinates of node n
func (o *Grid) NodeCoords(n int) (x, y float64) {
	i := n % (o.Nx + 1)
	j := n / (o.Nx + 1)
	return float64(i) * o.Hx, float64(j) * o.Hy
}

// CellVerts returns the 4 vertices of cell c, counter-clockwise
// starting at the lower-left corner
func (o *Grid) CellVerts(c int) (verts [4]int) {
	i := c % o.Nx
	j := c / o.Nx
	n := j*(o.Nx+1) + i
	verts[0] = n
	verts[1] = n + 1
	verts[2] = n + o.Nx + 2
	verts[3] = n + o.Nx + 1
	return
}

// CellCenter returns the coordinates of the center of cell c
func (o *Grid) CellCenter(c int) (x, y float64) {
	i := c % o.Nx
	j := c / o.Nx
	return (float64(i) + 0.5) * o.Hx, (float64(j) + 0.5) * o.Hy
}
