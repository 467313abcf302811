// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gohom/mdl"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// ipdata holds shape values and real-coordinate gradients @ one
// integration point. The grid cells are identical rectangles, so these
// are the same for every cell; only the ip position changes per cell.
type ipdata struct {
	S      []float64   // [4] shape functions
	G      [][]float64 // [4][2] gradients: dS/dx, dS/dy
	Dx, Dy float64     // ip offset from the cell center
	CJ     float64     // integration weight times jacobian determinant
}

// newIpdata precomputes integration point data for grid g
func newIpdata(g *Grid) (ips []ipdata) {
	detJ := g.Hx * g.Hy / 4.0
	dSdR := utl.Alloc(4, 2)
	for _, ip := range ipsQua4 {
		d := ipdata{
			S:  make([]float64, 4),
			G:  utl.Alloc(4, 2),
			Dx: ip.R * g.Hx / 2.0,
			Dy: ip.S * g.Hy / 2.0,
			CJ: ip.W * detJ,
		}
		ShapeQua4(d.S, dSdR, ip.R, ip.S)
		for m := 0; m < 4; m++ {
			d.G[m][0] = dSdR[m][0] * 2.0 / g.Hx
			d.G[m][1] = dSdR[m][1] * 2.0 / g.Hy
		}
		ips = append(ips, d)
	}
	return
}

// BuildKb assembles the global stiffness matrix (triplet format) for
// grid g and coefficient model coef, with the homogeneous Dirichlet
// conditions enforced by keeping interior equations only:
//
//	Kb[mn] = Σcells ∫ ∇Sm·k∇Sn dΩ
func BuildKb(g *Grid, coef mdl.Coefficient) (kb *la.Triplet) {
	kb = new(la.Triplet)
	kb.Init(g.Neq, g.Neq, g.Ncell*16)
	ips := newIpdata(g)
	K := utl.Alloc(4, 4)
	for c := 0; c < g.Ncell; c++ {

		// element stiffness
		xc, yc := g.CellCenter(c)
		for m := 0; m < 4; m++ {
			for n := 0; n < 4; n++ {
				K[m][n] = 0
			}
		}
		for _, ip := range ips {
			kxx, kxy, kyy := coef.Val(xc+ip.Dx, yc+ip.Dy)
			for m := 0; m < 4; m++ {
				for n := 0; n < 4; n++ {
					K[m][n] += ip.CJ * (ip.G[m][0]*(kxx*ip.G[n][0]+kxy*ip.G[n][1]) +
						ip.G[m][1]*(kxy*ip.G[n][0]+kyy*ip.G[n][1]))
				}
			}
		}

		// add to global triplet
		verts := g.CellVerts(c)
		for m, vm := range verts {
			I := g.Eq[vm]
			if I < 0 {
				continue
			}
			for n, vn := range verts {
				J := g.Eq[vn]
				if J < 0 {
					continue
				}
				kb.Put(I, J, K[m][n])
			}
		}
	}
	return
}
