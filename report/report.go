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

// Package report writes batch results to spreadsheet and PDF files.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/spatialmodel/pipeflow/solver"
	"github.com/tealeg/xlsx"
)

// Columns of the results sheet.
var columns = []string{"Case", "Method", "Input units", "Segment",
	"Inner diameter [m]", "Length [m]", "Roughness [m] or C",
	"Velocity [m/s]", "Reynolds number", "Friction factor", "Head loss [m]"}

// WriteXLSX writes one row per pipe segment of results to a spreadsheet
// with a single sheet. Values are in SI units.
func WriteXLSX(w io.Writer, results []solver.CaseResult) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Head loss")
	if err != nil {
		return fmt.Errorf("report: %v", err)
	}
	row := sheet.AddRow()
	for _, c := range columns {
		row.AddCell().SetString(c)
	}
	for _, r := range results {
		u := r.Input.Units
		for i, s := range r.Segments {
			rough := s.Roughness
			if r.Input.Method == solver.DarcyWeisbach {
				rough *= u.Roughness.ToSI
			}
			row := sheet.AddRow()
			row.AddCell().SetInt(r.Case)
			row.AddCell().SetString(r.Input.Method.String())
			row.AddCell().SetString(u.Name)
			row.AddCell().SetInt(i + 1)
			for _, v := range []float64{s.IDiameter * u.Diameter.ToSI, s.Length * u.Length.ToSI,
				rough, s.VFlow, s.Re, s.Friction, s.HF} {
				cell := row.AddCell()
				if !math.IsNaN(v) {
					cell.SetFloat(v)
				}
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: writing xlsx: %v", err)
	}
	return nil
}

// WritePDF writes the legacy report of results to a PDF document in a
// fixed-width font.
func WritePDF(w io.Writer, title string, results []solver.CaseResult) error {
	const lineHeight = 3.5 // mm
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Courier", "B", 10)
	pdf.Cell(0, 6, title)
	pdf.Ln(8)
	pdf.SetFont("Courier", "", 8)
	for _, r := range results {
		for _, line := range strings.Split(strings.TrimRight(solver.GenerateLegacyOutput(r), "\n"), "\n") {
			pdf.Cell(0, lineHeight, line)
			pdf.Ln(lineHeight)
		}
		pdf.Ln(lineHeight)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: writing pdf: %v", err)
	}
	return nil
}
