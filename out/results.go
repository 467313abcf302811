// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements persistence of results: solution vectors,
// energies, iteration traces and run reports
package out

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// WriteVec writes vector v to dirout/fname, one component per line
func WriteVec(dirout, fname string, v la.Vector) {
	var b bytes.Buffer
	for _, x := range v {
		io.Ff(&b, "%23.15e\n", x)
	}
	io.WriteFileD(dirout, fname, &b)
}

// ReadVec reads a vector written by WriteVec
func ReadVec(path string) (v la.Vector, err error) {
	vals, err := ReadVals(path)
	if err != nil {
		return
	}
	return la.Vector(vals), nil
}

// WriteVals writes scalar values to dirout/fname, one per line
func WriteVals(dirout, fname string, vals []float64) {
	WriteVec(dirout, fname, la.Vector(vals))
}

// ReadVals reads scalar values, one per line
func ReadVals(path string) (vals []float64, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read values file %q:\n%v", path, err)
	}
	for _, tok := range strings.Fields(string(b)) {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, chk.Err("cannot parse value %q in file %q:\n%v", tok, path, err)
		}
		vals = append(vals, x)
	}
	return
}
