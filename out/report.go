// Copyright 2016 The Gohom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/cpmech/gohom/hom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Report holds the outcome of an estimation run
type Report struct {
	A        hom.Tensor `json:"a"`        // final effective tensor
	Cost     float64    `json:"cost"`     // cost at the final tensor
	Niter    int        `json:"niter"`    // number of iterations performed
	Warnings []string   `json:"warnings"` // non-fatal events during the run
}

// WriteReport writes the report as JSON to dirout/fname
func WriteReport(dirout, fname string, rep *Report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return chk.Err("cannot encode report:\n%v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.Ff(&buf, "\n")
	io.WriteFileD(dirout, fname, &buf)
	return nil
}

// ReadReport reads a report written by WriteReport
func ReadReport(path string) (rep *Report, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read report file %q:\n%v", path, err)
	}
	rep = new(Report)
	err = json.Unmarshal(b, rep)
	if err != nil {
		return nil, chk.Err("cannot parse report file %q:\n%v", path, err)
	}
	return
}

// WriteTrace writes the iteration trace as a text table
func WriteTrace(dirout, fname string, trace []hom.TraceItem) {
	var b bytes.Buffer
	io.Ff(&b, "%6s %23s %23s %23s %23s\n", "it", "cost", "a11", "a12", "a22")
	for _, t := range trace {
		io.Ff(&b, "%6d %23.15e %23.15e %23.15e %23.15e\n", t.It, t.Cost, t.A.A11, t.A.A12, t.A.A22)
	}
	io.WriteFileD(dirout, fname, &b)
}
