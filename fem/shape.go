// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "math"

// integration point of a qua4 cell: natural coordinates and weight
type ipoint struct {
	R, S, W float64
}

// ipsQua4 holds the 2x2 Gauss points of a qua4 cell
var ipsQua4 []ipoint

// ShapeQua4 computes the bilinear shape functions S and their natural
// derivatives dSdR @ natural coordinates (r,s)
//
//	  3 ------- 2        s
//	  |         |        |
//	  |         |        +-- r
//	  0 ------- 1
func ShapeQua4(S []float64, dSdR [][]float64, r, s float64) {
	S[0] = (1.0 - r) * (1.0 - s) / 4.0
	S[1] = (1.0 + r) * (1.0 - s) / 4.0
	S[2] = (1.0 + r) * (1.0 + s) / 4.0
	S[3] = (1.0 - r) * (1.0 + s) / 4.0

	dSdR[0][0] = -(1.0 - s) / 4.0
	dSdR[0][1] = -(1.0 - r) / 4.0
	dSdR[1][0] = (1.0 - s) / 4.0
	dSdR[1][1] = -(1.0 + r) / 4.0
	dSdR[2][0] = (1.0 + s) / 4.0
	dSdR[2][1] = (1.0 + r) / 4.0
	dSdR[3][0] = -(1.0 + s) / 4.0
	dSdR[3][1] = (1.0 - r) / 4.0
}

func init() {
	g := 1.0 / math.Sqrt(3.0)
	ipsQua4 = []ipoint{
		{-g, -g, 1},
		{g, -g, 1},
		{g, g, 1},
		{-g, g, 1},
	}
}
