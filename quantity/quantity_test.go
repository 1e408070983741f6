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

package quantity

import (
	"errors"
	"math"
	"testing"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestConversions(t *testing.T) {
	const tol = 1e-12
	var tests = []struct {
		name string
		have float64
		want float64
	}{
		{"foot", Foot(100).Value(), 30.48},
		{"inch", Inch(12).Value(), 0.3048},
		{"mm", Millimeter(250).Value(), 0.25},
		{"cm", Centimeter(2.5).Value(), 0.025},
		{"cfs", Foot3PerSecond(0.5).Value(), 0.5 * 0.028316846592},
		{"ft2/s", Foot2PerSecond(1.217e-5).Value(), 1.217e-5 * 0.09290304},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if different(test.have, test.want, tol) {
				t.Errorf("have %g, want %g", test.have, test.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []System{Traditional, SI} {
		for _, sc := range []Scale{s.Flow, s.Diameter, s.Length, s.Viscosity, s.Roughness, s.Velocity, s.Head} {
			v, err := sc.From(sc.New(1.2345))
			if err != nil {
				t.Fatal(err)
			}
			if different(v, 1.2345, 1e-14) {
				t.Errorf("%s %s: %g != 1.2345", s.Name, sc.Label, v)
			}
		}
	}
	in, err := In(Foot(1), Length, InchToMeter)
	if err != nil {
		t.Fatal(err)
	}
	if different(in, 12, 1e-14) {
		t.Errorf("1 ft = %g in", in)
	}
}

func TestDimensionError(t *testing.T) {
	var dErr *DimensionError
	if _, err := In(Foot3PerSecond(1), Length, FootToMeter); !errors.As(err, &dErr) {
		t.Errorf("converting flow to length: want DimensionError, have %v", err)
	}
	if _, err := Add(Foot(1), SquareMeter(1)); !errors.As(err, &dErr) {
		t.Errorf("adding length to area: want DimensionError, have %v", err)
	}
	if _, err := Sub(Meter(1), MeterPerSecond(1)); !errors.As(err, &dErr) {
		t.Errorf("subtracting velocity from length: want DimensionError, have %v", err)
	}
	if _, err := Less(Dimensionless(1), Meter(1)); !errors.As(err, &dErr) {
		t.Errorf("comparing ratio to length: want DimensionError, have %v", err)
	}
	if err := Check(nil, Length, "length"); !errors.As(err, &dErr) {
		t.Errorf("nil quantity: want DimensionError, have %v", err)
	}

	sum, err := Add(Foot(1), Inch(12))
	if err != nil {
		t.Fatal(err)
	}
	if different(sum.Value(), 0.6096, 1e-14) {
		t.Errorf("1 ft + 12 in = %g m", sum.Value())
	}
	less, err := Less(Inch(11), Foot(1))
	if err != nil {
		t.Fatal(err)
	}
	if !less {
		t.Error("11 in should be less than 1 ft")
	}
}

func TestParseSystem(t *testing.T) {
	for in, want := range map[string]string{
		"0": "traditional", "Traditional": "traditional", "1": "si", " SI ": "si",
	} {
		s, err := ParseSystem(in)
		if err != nil {
			t.Fatal(err)
		}
		if s.Name != want {
			t.Errorf("%q: have %s, want %s", in, s.Name, want)
		}
	}
	if _, err := ParseSystem("cubits"); err == nil {
		t.Error("should be an error")
	}
}

func TestMagnitude(t *testing.T) {
	v, err := Magnitude(Inch(12), Length, "diameter")
	if err != nil {
		t.Fatal(err)
	}
	if different(v, 0.3048, 1.0e-12) {
		t.Errorf("have %g, want 0.3048", v)
	}
	var de *DimensionError
	if _, err := Magnitude(Foot3PerSecond(1), Length, "diameter"); !errors.As(err, &de) {
		t.Errorf("have error %v, want a *DimensionError", err)
	}
}
