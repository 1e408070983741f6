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

package friction

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestColebrook(t *testing.T) {
	// 0.5 ft³/s of water in a 4 in, 150 ft pipe with 7.0e-6 ft roughness.
	re := 156931.7433938163
	r := 7.0e-6 / (4.0 / 12.0)
	f, err := Colebrook(re, r, DefaultSettings)
	if err != nil {
		t.Fatal(err)
	}
	if different(f, 0.016554318787149105, 1.0e-9) {
		t.Errorf("f: have %.12g, want 0.016554318787", f)
	}
	if different(SwameeJain(re, r), 0.016459173195937128, 1.0e-12) {
		t.Errorf("Swamee-Jain: have %g", SwameeJain(re, r))
	}

	// Zero settings fall back to the defaults.
	f2, err := Colebrook(re, r, Settings{})
	if err != nil {
		t.Fatal(err)
	}
	if f2 != f {
		t.Errorf("default settings: have %g, want %g", f2, f)
	}
}

// The converged friction factor must satisfy the Colebrook-White relation.
func TestColebrookResidual(t *testing.T) {
	for _, re := range []float64{2200, 4000, 1.0e4, 1.0e5, 1.0e6, 1.0e8} {
		for _, r := range []float64{0, 1.0e-6, 1.0e-4, 1.0e-3, 0.01, 0.05, 0.1} {
			t.Run(fmt.Sprintf("Re=%g r=%g", re, r), func(t *testing.T) {
				f, err := Colebrook(re, r, DefaultSettings)
				if err != nil {
					t.Fatal(err)
				}
				lhs := 1 / math.Sqrt(f)
				rhs := -2 * math.Log10(r/3.7+2.51/(re*math.Sqrt(f)))
				if different(lhs, rhs, 1.0e-9) {
					t.Errorf("1/√f = %g but right hand side = %g", lhs, rhs)
				}
			})
		}
	}
}

func TestColebrookErrors(t *testing.T) {
	var tests = []struct {
		name string
		re   float64
		r    float64
		s    Settings
		err  error
	}{
		{"laminar", 1500, 1.0e-4, DefaultSettings, ErrLaminar},
		{"laminar limit", LaminarLimit, 1.0e-4, DefaultSettings, ErrLaminar},
		{"negative roughness", 1.0e5, -1.0e-6, DefaultSettings, ErrRoughness},
		{"rough", 1.0e5, 0.1001, DefaultSettings, ErrRoughness},
		{"one iteration", 1.0e5, 1.0e-4, Settings{Tolerance: 1.0e-10, MaxIterations: 1}, ErrNoConvergence},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := Colebrook(test.re, test.r, test.s)
			if !errors.Is(err, test.err) {
				t.Errorf("want %v, have %v", test.err, err)
			}
			if !math.IsNaN(f) {
				t.Errorf("f should be NaN, have %g", f)
			}
		})
	}
	if _, err := Colebrook(math.NaN(), 0, DefaultSettings); err == nil {
		t.Error("NaN Reynolds number should fail")
	}
}

func TestReynolds(t *testing.T) {
	// 5.729577951 ft/s, 4 in, 1.217e-5 ft²/s
	re := Reynolds(5.729577951308234*0.3048, 4*0.0254, 1.217e-5*0.3048*0.3048)
	if different(re, 156931.7433938163, 1.0e-12) {
		t.Errorf("have %g", re)
	}
}

func TestDarcyHeadLoss(t *testing.T) {
	hf := DarcyHeadLoss(0.02, 100, 0.3, 2)
	if different(hf, 1.3596216173039044, 1.0e-12) {
		t.Errorf("have %g", hf)
	}
}

func TestHazenWilliams(t *testing.T) {
	var tests = []struct {
		q, c, l, d float64
		want       float64
	}{
		{q: 0.1, c: 130, l: 100, d: 0.3, want: 0.6423474020377645},
		{q: 0.05, c: 150, l: 30.48, d: 0.3048, want: 0.03851273347740282},
		{q: 0, c: 150, l: 30.48, d: 0.3048, want: 0},
	}
	for _, test := range tests {
		hf, err := HazenWilliamsHeadLoss(test.q, test.c, test.l, test.d)
		if err != nil {
			t.Fatal(err)
		}
		if hf != test.want && different(hf, test.want, 1.0e-12) {
			t.Errorf("%+v: have %g", test, hf)
		}
	}
	for _, c := range []float64{-4, 0, 200.5, 3600} {
		if _, err := HazenWilliamsHeadLoss(0.1, c, 100, 0.3); !errors.Is(err, ErrCoefficient) {
			t.Errorf("c=%g: want ErrCoefficient, have %v", c, err)
		}
	}
	for _, c := range []float64{130, 150, 200} {
		if err := CheckHazenWilliams(c); err != nil {
			t.Errorf("c=%g: %v", c, err)
		}
	}
	if _, err := HazenWilliamsHeadLoss(-0.1, 130, 100, 0.3); err == nil {
		t.Error("negative flow should fail")
	}
}
