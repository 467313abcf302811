// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gohom/mdl"
	"github.com/cpmech/gosl/la"
)

// Integrals computes the gradient integrals of the discrete solution u
// (interior degrees of freedom; zero on the boundary):
//
//	ixx = ∫ (du/dx)² dΩ
//	ixy = ∫ (du/dx)(du/dy) dΩ
//	iyy = ∫ (du/dy)² dΩ
func Integrals(g *Grid, u la.Vector) (ixx, ixy, iyy float64) {
	ips := newIpdata(g)
	var uloc [4]float64
	for c := 0; c < g.Ncell; c++ {
		verts := g.CellVerts(c)
		for m, vm := range verts {
			if I := g.Eq[vm]; I >= 0 {
				uloc[m] = u[I]
			} else {
				uloc[m] = 0
			}
		}
		for _, ip := range ips {
			var ux, uy float64
			for m := 0; m < 4; m++ {
				ux += ip.G[m][0] * uloc[m]
				uy += ip.G[m][1] * uloc[m]
			}
			ixx += ip.CJ * ux * ux
			ixy += ip.CJ * ux * uy
			iyy += ip.CJ * uy * uy
		}
	}
	return
}

// StrainEnergy computes the strain energy ∫ ∇u·k∇u dΩ of the discrete
// solution u under coefficient model coef. With the same quadrature as
// the assembly, this equals uᵀ K u exactly.
func StrainEnergy(g *Grid, coef mdl.Coefficient, u la.Vector) (E float64) {
	ips := newIpdata(g)
	var uloc [4]float64
	for c := 0; c < g.Ncell; c++ {
		xc, yc := g.CellCenter(c)
		verts := g.CellVerts(c)
		for m, vm := range verts {
			if I := g.Eq[vm]; I >= 0 {
				uloc[m] = u[I]
			} else {
				uloc[m] = 0
			}
		}
		for _, ip := range ips {
			var ux, uy float64
			for m := 0; m < 4; m++ {
				ux += ip.G[m][0] * uloc[m]
				uy += ip.G[m][1] * uloc[m]
			}
			kxx, kxy, kyy := coef.Val(xc+ip.Dx, yc+ip.Dy)
			E += ip.CJ * (kxx*ux*ux + 2.0*kxy*ux*uy + kyy*uy*uy)
		}
	}
	return
}
