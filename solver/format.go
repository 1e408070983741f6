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
	"bytes"
	"fmt"
	"math"
	"strings"
	"text/tabwriter"
)

// Legacy report layout.
const (
	legacyCase     = " CASE %4d   %s, %s UNITS"
	legacyFlow     = "    FLOW RATE            = %11.4E %s"
	legacyVisc     = "    KINEMATIC VISCOSITY  = %11.4E %s"
	legacyTotal    = "    TOTAL HEAD LOSS      = %11.4f %s"
	legacyDWHeader = "    %3s %11s %11s %11s %11s %11s %11s %11s"
	legacyDWRow    = "    %3d %11.4f %11.4f %11.4E %11.4f %11.4E %11.6f %11.4f"
	legacyHWHeader = "    %3s %11s %11s %11s %11s %11s"
	legacyHWRow    = "    %3d %11.4f %11.4f %11.1f %11.4f %11.4f"
)

func (m Method) title() string {
	if m == HazenWilliams {
		return "HAZEN-WILLIAMS"
	}
	return "DARCY-WEISBACH"
}

func paren(s string) string { return "(" + s + ")" }

// GenerateLegacyOutput formats r as a fixed-column report block in the
// units of its input record. The block ends with a blank line.
func GenerateLegacyOutput(r CaseResult) string {
	in := r.Input
	u := in.Units
	var lines []string
	add := func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	}

	add(legacyCase, r.Case, in.Method.title(), strings.ToUpper(u.Name))
	add(legacyFlow, in.VolFlow, u.Flow.Label)
	switch in.Method {
	case DarcyWeisbach:
		add(legacyVisc, in.KinVisc, u.Viscosity.Label)
		add(legacyDWHeader, "SEG", "DIAMETER", "LENGTH", "ROUGHNESS", "VELOCITY", "REYNOLDS", "FRICTION", "HEAD LOSS")
		add(legacyDWHeader, "", paren(u.Diameter.Label), paren(u.Length.Label), paren(u.Roughness.Label),
			paren(u.Velocity.Label), "NUMBER", "FACTOR", paren(u.Head.Label))
		for i, s := range r.Segments {
			add(legacyDWRow, i+1, s.IDiameter, s.Length, s.Roughness, s.VFlow/u.Velocity.ToSI,
				s.Re, s.Friction, s.HF/u.Head.ToSI)
		}
	case HazenWilliams:
		add(legacyHWHeader, "SEG", "DIAMETER", "LENGTH", "HW COEFF", "VELOCITY", "HEAD LOSS")
		add(legacyHWHeader, "", paren(u.Diameter.Label), paren(u.Length.Label), "",
			paren(u.Velocity.Label), paren(u.Head.Label))
		for i, s := range r.Segments {
			add(legacyHWRow, i+1, s.IDiameter, s.Length, s.Roughness, s.VFlow/u.Velocity.ToSI, s.HF/u.Head.ToSI)
		}
	}
	add(legacyTotal, r.HF/u.Head.ToSI, u.Head.Label)
	add("")
	return strings.Join(lines, "\n") + "\n"
}

func orDash(format string, v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}

// GenerateModernOutput formats r as an aligned table in SI units.
// The layout is provisional and may change; only the legacy format is
// stable.
func GenerateModernOutput(r CaseResult) string {
	in := r.Input
	u := in.Units
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "Case %d: %s, %s input units\n", r.Case, in.Method.title(), u.Name)
	fmt.Fprintf(b, "flow rate: %.6g m³/s\n", u.Flow.ToSI*in.VolFlow)
	if in.Method == DarcyWeisbach {
		fmt.Fprintf(b, "kinematic viscosity: %.6g m²/s\n", u.Viscosity.ToSI*in.KinVisc)
	}
	w := tabwriter.NewWriter(b, 0, 8, 2, ' ', tabwriter.AlignRight)
	rough := "roughness [m]"
	if in.Method == HazenWilliams {
		rough = "C"
	}
	fmt.Fprintf(w, "segment\tdiameter [m]\tlength [m]\t%s\tvelocity [m/s]\tRe\tf\thead loss [m]\t\n", rough)
	for i, s := range r.Segments {
		c := s.Roughness
		if in.Method == DarcyWeisbach {
			c *= u.Roughness.ToSI
		}
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.6g\t%.6g\t%s\t%s\t%.6g\t\n", i+1,
			s.IDiameter*u.Diameter.ToSI, s.Length*u.Length.ToSI, c, s.VFlow,
			orDash("%.6g", s.Re), orDash("%.6g", s.Friction), s.HF)
	}
	w.Flush() // writes to a bytes.Buffer do not fail
	fmt.Fprintf(b, "total head loss: %.6g m\n", r.HF)
	return b.String()
}
