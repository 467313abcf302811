// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hom implements the estimation of effective (homogenized)
// diffusion tensors by matching macroscopic strain energies to
// precomputed fine-scale (oscillating) energies
package hom

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Tensor holds the three independent components of a symmetric 2x2
// diffusion tensor. The same triple is used for gradients of scalar
// functions with respect to these components.
type Tensor struct {
	A11 float64 `json:"a11"` // xx component
	A12 float64 `json:"a12"` // xy (and yx) component
	A22 float64 `json:"a22"` // yy component
}

// Trace returns the trace
func (o Tensor) Trace() float64 { return o.A11 + o.A22 }

// Det returns the determinant
func (o Tensor) Det() float64 { return o.A11*o.A22 - o.A12*o.A12 }

// Dot returns the inner product of component triples
func (o Tensor) Dot(b Tensor) float64 {
	return o.A11*b.A11 + o.A12*b.A12 + o.A22*b.A22
}

// Norm returns the Euclidean norm of the component triple
func (o Tensor) Norm() float64 { return math.Sqrt(o.Dot(o)) }

// AddScaled returns o + s*b
func (o Tensor) AddScaled(s float64, b Tensor) Tensor {
	return Tensor{o.A11 + s*b.A11, o.A12 + s*b.A12, o.A22 + s*b.A22}
}

func (o Tensor) String() string {
	return io.Sf("{a11=%g a12=%g a22=%g}", o.A11, o.A12, o.A22)
}
