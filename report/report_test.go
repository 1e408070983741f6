/*
Copyright © 2019 the pipeflow authors.
This file is part of pipeflow.

pipeflow is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

pipeflow is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with pipeflow.  If not, see <http://www.gnu.org/licenses/>.
*/

package report

import (
	"bytes"
	"context"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/pipeflow/solver"
	"github.com/tealeg/xlsx"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func results(t *testing.T) []solver.CaseResult {
	f, err := os.Open(filepath.Join("..", "solver", "testdata", "all.inp"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r, err := solver.Run(context.Background(), f, ioutil.Discard, solver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestWriteXLSX(t *testing.T) {
	res := results(t)
	b := new(bytes.Buffer)
	if err := WriteXLSX(b, res); err != nil {
		t.Fatal(err)
	}
	f, err := xlsx.OpenBinary(b.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	sheet, ok := f.Sheet["Head loss"]
	if !ok {
		t.Fatal("missing sheet")
	}
	// header + 1 + 1 + 1 + 3 + 2 segments
	if len(sheet.Rows) != 9 {
		t.Fatalf("have %d rows", len(sheet.Rows))
	}
	if v := sheet.Cell(0, 10).Value; v != "Head loss [m]" {
		t.Errorf("header: %q", v)
	}
	hf, err := sheet.Cell(1, 10).Float()
	if err != nil {
		t.Fatal(err)
	}
	if different(hf, res[0].Segments[0].HF, 1.0e-9) {
		t.Errorf("head loss: have %g, want %g", hf, res[0].Segments[0].HF)
	}
	if v := sheet.Cell(3, 1).Value; v != "HW" {
		t.Errorf("method: %q", v)
	}
	if v := sheet.Cell(3, 8).Value; v != "" {
		t.Errorf("Hazen-Williams rows have no Reynolds number: %q", v)
	}
}

func TestWritePDF(t *testing.T) {
	b := new(bytes.Buffer)
	if err := WritePDF(b, "all.inp", results(t)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("%PDF-")) {
		t.Errorf("not a PDF: %q", b.Bytes()[:20])
	}
}
