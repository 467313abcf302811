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

// Loadings holds the fixed set of right-hand-side load vectors probing
// the medium. Loading p is the consistent load of the trigonometric
// function
//
//	f(x,y) = scale · sin(i π x / Lx) · sin(j π y / Ly)
//
// with the mode pairs (i,j) enumerated by increasing i+j, then i.
// Immutable once built.
type Loadings struct {
	P     int         // number of loadings
	Modes [][2]int    // [P] mode pair per loading
	F     []la.Vector // [P][neq] load vectors
}

// BuildLoadings generates the load vectors for grid g
func BuildLoadings(g *Grid, dat *inp.LoadData) (o *Loadings, err error) {
	if dat.P < 1 {
		return nil, chk.Err("number of loadings must be positive. %d is invalid", dat.P)
	}
	scale := dat.Scale
	if scale == 0 {
		scale = 1.0
	}
	o = &Loadings{P: dat.P}
	o.Modes = enumModes(dat.P)
	ips := newIpdata(g)
	for p := 0; p < o.P; p++ {
		wx := float64(o.Modes[p][0]) * math.Pi / g.Lx
		wy := float64(o.Modes[p][1]) * math.Pi / g.Ly
		f := la.NewVector(g.Neq)
		for c := 0; c < g.Ncell; c++ {
			xc, yc := g.CellCenter(c)
			verts := g.CellVerts(c)
			for _, ip := range ips {
				fval := scale * math.Sin(wx*(xc+ip.Dx)) * math.Sin(wy*(yc+ip.Dy))
				for m, vm := range verts {
					if I := g.Eq[vm]; I >= 0 {
						f[I] += ip.CJ * ip.S[m] * fval
					}
				}
			}
		}
		o.F = append(o.F, f)
	}
	if dat.Ortho {
		err = o.Orthonormalize()
	}
	return
}

// enumModes enumerates P mode pairs by increasing total mode number
func enumModes(p int) (modes [][2]int) {
	for t := 2; len(modes) < p; t++ {
		for i := 1; i < t && len(modes) < p; i++ {
			modes = append(modes, [2]int{i, t - i})
		}
	}
	return
}

// Orthonormalize makes the load vectors orthonormal in the discrete
// inner product, by modified Gram-Schmidt
func (o *Loadings) Orthonormalize() error {
	for p := 0; p < o.P; p++ {
		for q := 0; q < p; q++ {
			la.VecAdd(o.F[p], 1, o.F[p], -la.VecDot(o.F[p], o.F[q]), o.F[q])
		}
		nrm := math.Sqrt(la.VecDot(o.F[p], o.F[p]))
		if nrm < 1e-14 {
			return chk.Err("load vectors are linearly dependent @ loading %d", p)
		}
		for i := range o.F[p] {
			o.F[p][i] /= nrm
		}
	}
	return nil
}
