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

// Package solver processes batches of pipe flow cases. Each case is one
// input record describing a flow and one or more pipe segments in series;
// it is parsed, built into validated pipes, solved for head loss, and
// formatted as a fixed-column report block.
package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/spatialmodel/pipeflow/quantity"
	"github.com/spf13/cast"
)

// ErrParse is wrapped by all record parsing errors.
var ErrParse = errors.New("malformed input record")

// ParseError describes a malformed field in an input record.
type ParseError struct {
	// Line is the 1-based line number of the record, or 0 if unknown.
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("solver: ")
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "field %s ", e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, "%q ", e.Value)
	}
	b.WriteString(e.Reason)
	return b.String()
}

// Unwrap returns ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// Method is a head loss calculation method.
type Method int

// Head loss methods.
const (
	DarcyWeisbach Method = iota
	HazenWilliams
)

func (m Method) String() string {
	switch m {
	case DarcyWeisbach:
		return "DW"
	case HazenWilliams:
		return "HW"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Segment is one pipe of a case, in the units of the record.
type Segment struct {
	IDiameter float64
	Length    float64
	// Roughness is the absolute roughness height for Darcy-Weisbach
	// cases and the Hazen-Williams coefficient for Hazen-Williams cases.
	Roughness float64
}

// CaseInput is a parsed input record. Values are in the units of Units.
type CaseInput struct {
	Method   Method
	Units    quantity.System
	VolFlow  float64
	KinVisc  float64 // Darcy-Weisbach only
	Segments []Segment
}

// StripComment removes a trailing comment starting with '#' and
// surrounding white space from a record.
func StripComment(record string) string {
	if i := strings.IndexByte(record, '#'); i >= 0 {
		record = record[:i]
	}
	return strings.TrimSpace(record)
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == ',' })
}

// fortranExponent converts Fortran double precision exponents (1.2D-5)
// to the form accepted by Go.
var fortranExponent = strings.NewReplacer("D", "E", "d", "e")

func parseNumber(field, s string) (float64, error) {
	v, err := cast.ToFloat64E(fortranExponent.Replace(s))
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: field, Value: s, Reason: "is not a number"}
	}
	return v, nil
}

// ExtractCaseInput parses one input record. Darcy-Weisbach records are
//
//	[DW] Q D L NU E [UNITS] [; D L E]...
//
// and Hazen-Williams records are
//
//	HW Q D L C [UNITS] [; D L C]...
//
// where the groups following ';' are additional segments in series that
// carry the same flow. UNITS is 0 or traditional (the default) or 1 or si.
// If forceUnits is not nil it overrides the units of the record.
func ExtractCaseInput(record string, forceUnits *quantity.System) (CaseInput, error) {
	var in CaseInput
	groups := strings.Split(StripComment(record), ";")
	head := fields(groups[0])
	if len(head) == 0 {
		return in, &ParseError{Reason: "empty record"}
	}

	switch strings.ToUpper(head[0]) {
	case "DW":
		head = head[1:]
	case "HW":
		in.Method = HazenWilliams
		head = head[1:]
	}

	var names []string
	if in.Method == DarcyWeisbach {
		names = []string{"Q", "D", "L", "NU", "E"}
	} else {
		names = []string{"Q", "D", "L", "C"}
	}
	if len(head) != len(names) && len(head) != len(names)+1 {
		return in, &ParseError{Reason: fmt.Sprintf("has %d fields; want %s [UNITS]",
			len(head), strings.Join(names, " "))}
	}
	vals := make([]float64, len(names))
	for i, name := range names {
		v, err := parseNumber(name, head[i])
		if err != nil {
			return in, err
		}
		vals[i] = v
	}

	in.Units = quantity.Traditional
	if len(head) > len(names) {
		u, err := quantity.ParseSystem(head[len(names)])
		if err != nil {
			return in, &ParseError{Field: "UNITS", Value: head[len(names)], Reason: "is not 0, 1, traditional or si"}
		}
		in.Units = u
	}
	if forceUnits != nil {
		in.Units = *forceUnits
	}

	in.VolFlow = vals[0]
	in.Segments = []Segment{{IDiameter: vals[1], Length: vals[2], Roughness: vals[len(vals)-1]}}
	if in.Method == DarcyWeisbach {
		in.KinVisc = vals[3]
	}

	segNames := []string{"D", "L", names[len(names)-1]}
	for i, g := range groups[1:] {
		f := fields(g)
		if len(f) != 3 {
			return in, &ParseError{Reason: fmt.Sprintf("segment %d has %d fields; want %s",
				i+2, len(f), strings.Join(segNames, " "))}
		}
		var s [3]float64
		for j, name := range segNames {
			v, err := parseNumber(fmt.Sprintf("%s (segment %d)", name, i+2), f[j])
			if err != nil {
				return in, err
			}
			s[j] = v
		}
		in.Segments = append(in.Segments, Segment{IDiameter: s[0], Length: s[1], Roughness: s[2]})
	}
	return in, nil
}
