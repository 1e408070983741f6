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
	"math"
	"strings"
	"testing"

	"github.com/spatialmodel/pipeflow/quantity"
)

func TestGenerateLegacyOutput(t *testing.T) {
	const ft = quantity.FootToMeter
	r := CaseResult{
		Case: 1,
		Input: CaseInput{Method: DarcyWeisbach, Units: quantity.Traditional, VolFlow: 0.5, KinVisc: 1.217e-5,
			Segments: []Segment{{IDiameter: 4, Length: 150, Roughness: 7.0e-6}}},
		Segments: []SegmentResult{{
			Segment:  Segment{IDiameter: 4, Length: 150, Roughness: 7.0e-6},
			Headloss: Headloss{VFlow: 5.729577951308234 * ft, Re: 156931.7433938163, Friction: 0.016554318787149105, HF: 3.8004356574313714 * ft},
		}},
		HF: 3.8004356574313714 * ft,
	}
	want := ` CASE    1   DARCY-WEISBACH, TRADITIONAL UNITS
    FLOW RATE            =  5.0000E-01 CFS
    KINEMATIC VISCOSITY  =  1.2170E-05 FT**2/S
    SEG    DIAMETER      LENGTH   ROUGHNESS    VELOCITY    REYNOLDS    FRICTION   HEAD LOSS
               (IN)        (FT)        (FT)      (FT/S)      NUMBER      FACTOR        (FT)
      1      4.0000    150.0000  7.0000E-06      5.7296  1.5693E+05    0.016554      3.8004
    TOTAL HEAD LOSS      =      3.8004 FT

`
	if have := GenerateLegacyOutput(r); have != want {
		t.Errorf("have:\n%q\nwant:\n%q", have, want)
	}
}

func TestGenerateLegacyOutputHazenWilliams(t *testing.T) {
	r := CaseResult{
		Case: 12,
		Input: CaseInput{Method: HazenWilliams, Units: quantity.SI, VolFlow: 0.05,
			Segments: []Segment{{IDiameter: 200, Length: 250, Roughness: 150}}},
		Segments: []SegmentResult{{
			Segment:  Segment{IDiameter: 200, Length: 250, Roughness: 150},
			Headloss: Headloss{VFlow: 1.5915494, Re: math.NaN(), Friction: math.NaN(), HF: 2.4589},
		}},
		HF: 2.4589,
	}
	want := ` CASE   12   HAZEN-WILLIAMS, SI UNITS
    FLOW RATE            =  5.0000E-02 M**3/S
    SEG    DIAMETER      LENGTH    HW COEFF    VELOCITY   HEAD LOSS
               (MM)         (M)                   (M/S)         (M)
      1    200.0000    250.0000       150.0      1.5915      2.4589
    TOTAL HEAD LOSS      =      2.4589 M

`
	if have := GenerateLegacyOutput(r); have != want {
		t.Errorf("have:\n%q\nwant:\n%q", have, want)
	}
}

func TestGenerateModernOutput(t *testing.T) {
	r := CaseResult{
		Case: 3,
		Input: CaseInput{Method: HazenWilliams, Units: quantity.SI, VolFlow: 0.05,
			Segments: []Segment{{IDiameter: 200, Length: 250, Roughness: 150}}},
		Segments: []SegmentResult{{
			Segment:  Segment{IDiameter: 200, Length: 250, Roughness: 150},
			Headloss: Headloss{VFlow: 1.5915494, Re: math.NaN(), Friction: math.NaN(), HF: 2.4589},
		}},
		HF: 2.4589,
	}
	out := GenerateModernOutput(r)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("have %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Case 3: HAZEN-WILLIAMS, si input units" {
		t.Errorf("title: %q", lines[0])
	}
	for _, s := range []string{"0.2", "250", "150", "1.59155", "2.4589"} {
		if !strings.Contains(lines[3], s) {
			t.Errorf("row %q does not contain %q", lines[3], s)
		}
	}
	if lines[4] != "total head loss: 2.4589 m" {
		t.Errorf("total: %q", lines[4])
	}
}
