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

package solver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/pipeflow/friction"
	"github.com/spatialmodel/pipeflow/pipe"
	"github.com/spatialmodel/pipeflow/quantity"
)

// Case is one unit of batch work as it moves through the stages of a run.
type Case struct {
	// N is the 1-based position of the case in the batch.
	N int
	// Line is the line number of the record in the input.
	Line   int
	Record string

	Input  CaseInput
	Result CaseResult
	Output string

	pipes []pipe.HeadLosser
}

// CaseManipulator is a stage of case processing.
type CaseManipulator func(c *Case) error

// Parse returns a stage that parses the record of a case.
func Parse(forceUnits *quantity.System) CaseManipulator {
	return func(c *Case) error {
		in, err := ExtractCaseInput(c.Record, forceUnits)
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Line = c.Line
		}
		if err != nil {
			return err
		}
		c.Input = in
		return nil
	}
}

// Build returns a stage that creates validated pipes for a parsed case.
func Build(s friction.Settings) CaseManipulator {
	return func(c *Case) error {
		pipes, err := buildPipes(c.Input, s)
		if err != nil {
			return err
		}
		c.pipes = pipes
		return nil
	}
}

// Compute returns a stage that solves the pipes of a built case.
func Compute(s friction.Settings) CaseManipulator {
	return func(c *Case) error {
		r, err := compute(c.Input, c.pipes, s)
		if err != nil {
			return err
		}
		r.Case = c.N
		c.Result = r
		c.pipes = nil
		return nil
	}
}

// Format returns a stage that formats the result of a case.
func Format(legacy bool) CaseManipulator {
	return func(c *Case) error {
		if legacy {
			c.Output = GenerateLegacyOutput(c.Result)
		} else {
			c.Output = GenerateModernOutput(c.Result)
		}
		return nil
	}
}

// Options configure a batch run.
type Options struct {
	// Legacy selects the fixed-column legacy report format.
	Legacy bool

	// Units, if not nil, overrides the unit system of every record.
	Units *quantity.System

	// Settings control the friction factor iteration.
	Settings friction.Settings

	// Log receives progress messages. It may be nil.
	Log logrus.FieldLogger
}

// Run reads one case per line from r, ignoring blank lines and '#'
// comments, and writes the report for each case to w. Each case is parsed,
// built, computed, and formatted before the next is read. The first case
// that fails ends the run. The results of the cases that completed are
// returned.
func Run(ctx context.Context, r io.Reader, w io.Writer, o Options) ([]CaseResult, error) {
	log := o.Log
	if log == nil {
		l := logrus.New()
		l.Out = ioutil.Discard
		log = l
	}
	stages := []struct {
		name string
		f    CaseManipulator
	}{
		{"parse", Parse(o.Units)},
		{"build", Build(o.Settings)},
		{"compute", Compute(o.Settings)},
		{"format", Format(o.Legacy)},
	}

	var results []CaseResult
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if StripComment(scanner.Text()) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		c := &Case{N: len(results) + 1, Line: line, Record: scanner.Text()}
		for _, s := range stages {
			if err := s.f(c); err != nil {
				return results, fmt.Errorf("solver: case %d (line %d): %s: %w", c.N, c.Line, s.name, err)
			}
		}
		if _, err := io.WriteString(w, c.Output); err != nil {
			return results, fmt.Errorf("solver: writing case %d: %w", c.N, err)
		}
		log.WithFields(logrus.Fields{
			"case":     c.N,
			"type":     c.Input.Method.String(),
			"segments": len(c.Result.Segments),
		}).Debugf("head loss %g m", c.Result.HF)
		results = append(results, c.Result)
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("solver: reading input: %w", err)
	}
	return results, nil
}
