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

// Package pipeflowutil contains the command-line interface to pipeflow.
package pipeflowutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/pipeflow/report"
	"github.com/spatialmodel/pipeflow/solver"
)

// Run solves the cases in inputFile. The report is written to outputFile,
// or to w if outputFile is empty. A spreadsheet and a PDF copy of the
// report are written if xlsxFile and pdfFile are not empty.
func Run(ctx context.Context, log logrus.FieldLogger, w io.Writer, inputFile, outputFile, xlsxFile, pdfFile string, o solver.Options) error {
	for _, f := range []string{outputFile, xlsxFile, pdfFile} {
		if err := checkOutputFile(f); err != nil {
			return err
		}
	}
	in, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("pipeflow: %v", err)
	}
	defer in.Close()

	o.Log = log
	log.WithField("input", inputFile).Info("solving cases")
	var results []solver.CaseResult
	solve := func(w io.Writer) error {
		var err error
		results, err = solver.Run(ctx, in, w, o)
		return err
	}
	if outputFile != "" {
		err = writeFile(outputFile, solve)
	} else {
		err = solve(w)
	}
	if err != nil {
		return err
	}
	log.Infof("solved %d cases", len(results))

	if xlsxFile != "" {
		if err := writeFile(xlsxFile, func(w io.Writer) error { return report.WriteXLSX(w, results) }); err != nil {
			return err
		}
		log.WithField("file", xlsxFile).Info("wrote spreadsheet")
	}
	if pdfFile != "" {
		title := filepath.Base(inputFile)
		if err := writeFile(pdfFile, func(w io.Writer) error { return report.WritePDF(w, title, results) }); err != nil {
			return err
		}
		log.WithField("file", pdfFile).Info("wrote PDF report")
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("pipeflow: %v", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pipeflow: %v", err)
	}
	return nil
}
