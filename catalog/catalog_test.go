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

package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestNearestByNPS(t *testing.T) {
	var tests = []struct {
		schedule        string
		nps             float64
		wantNPS, od, tw float64 // inches
	}{
		{"80", 12, 12, 12.75, 0.688},
		{"Sch 80", 11.6, 12, 12.75, 0.688},
		{"40", 0.125, 0.125, 0.405, 0.068},
		{"std", 14, 14, 14, 0.375},
		{"XS", 6, 6, 6.625, 0.432},
		{"160", 24, 24, 24, 2.344},
	}
	for _, test := range tests {
		t.Run(test.schedule, func(t *testing.T) {
			e, err := Default().NearestByNPS(test.schedule, test.nps)
			if err != nil {
				t.Fatal(err)
			}
			if e.NPS != test.wantNPS {
				t.Errorf("NPS: have %g, want %g", e.NPS, test.wantNPS)
			}
			if different(e.OD, test.od*inch, 1e-12) {
				t.Errorf("OD: have %g, want %g", e.OD/inch, test.od)
			}
			if different(e.TWall, test.tw*inch, 1e-12) {
				t.Errorf("twall: have %g, want %g", e.TWall/inch, test.tw)
			}
		})
	}
}

func TestNearestByNPSErrors(t *testing.T) {
	for _, test := range []struct {
		schedule string
		nps      float64
	}{
		{"80", 120},
		{"80", 0.1},
		{"160", 0.25}, // not tabulated for this size
		{"999", 12},
	} {
		if _, err := Default().NearestByNPS(test.schedule, test.nps); !errors.Is(err, ErrNoSchedule) {
			t.Errorf("sch %s NPS %g: want ErrNoSchedule, have %v", test.schedule, test.nps, err)
		}
	}
}

func TestNearestByInnerDiameter(t *testing.T) {
	c := Default()
	// The schedule 80 size with an inner diameter closest to 12.25" is
	// NPS 14 (ID 12.5").
	e, err := c.NearestByInnerDiameter("80", 12.25*inch)
	if err != nil {
		t.Fatal(err)
	}
	if e.NPS != 14 || different(e.OD, 14*inch, 1e-12) || different(e.TWall, 0.75*inch, 1e-12) {
		t.Errorf("have %v", e)
	}
	if different(e.ID(), 12.5*inch, 1e-12) {
		t.Errorf("ID: have %g in", e.ID()/inch)
	}

	e, err = c.NearestByInnerDiameter("80", 11.37*inch)
	if err != nil {
		t.Fatal(err)
	}
	if e.NPS != 12 {
		t.Errorf("have %v", e)
	}

	if _, err := c.NearestByInnerDiameter("80", 36*inch); !errors.Is(err, ErrNoSchedule) {
		t.Errorf("want ErrNoSchedule, have %v", err)
	}
	if _, err := c.NearestByInnerDiameter("unknown", 6*inch); !errors.Is(err, ErrNoSchedule) {
		t.Errorf("want ErrNoSchedule, have %v", err)
	}
}

func TestRoughness(t *testing.T) {
	c := Default()
	r, err := c.Roughness("cast iron", true)
	if err != nil {
		t.Fatal(err)
	}
	if r != 2.59e-4 {
		t.Errorf("cast iron: have %g", r)
	}
	r, err = c.Roughness("Steel  Tubes", false)
	if err != nil {
		t.Fatal(err)
	}
	if r != 1.0e-3 {
		t.Errorf("fouled steel tubes: have %g", r)
	}
	if _, err := c.Roughness("cheese", false); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("want ErrUnknownMaterial, have %v", err)
	}
}

func TestTableConsistency(t *testing.T) {
	rows := Default().Rows()
	for i, r := range rows {
		if i > 0 && r.NPS <= rows[i-1].NPS {
			t.Errorf("rows not sorted at NPS %g", r.NPS)
		}
		for sch, tw := range r.Walls {
			if !(tw > 0) || tw >= r.OD/2 {
				t.Errorf("NPS %g sch %s: twall %g out of range", r.NPS, sch, tw)
			}
		}
	}
	sch := Default().Schedules()
	if len(sch) != 13 {
		t.Errorf("have %d schedules: %v", len(sch), sch)
	}
}

func TestLoadTOML(t *testing.T) {
	const in = `
[[schedule]]
nps = 30.0
od = 30.0
[schedule.walls]
"10" = 0.312
STD = 0.375
"sch 80" = 1.25

[[schedule]]
nps = 12.0
od = 12.75
[schedule.walls]
"80" = 0.7

[[material]]
name = "Ductile iron"
clean = 2.6e-4
fouled = 1.0e-3

[[material]]
name = "cast iron"
clean = 2.4e-4
fouled = 1.2e-3
`
	c, err := Default().LoadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	e, err := c.NearestByNPS("80", 30)
	if err != nil {
		t.Fatal(err)
	}
	if different(e.TWall, 1.25*inch, 1e-12) {
		t.Errorf("NPS 30: have %v", e)
	}
	e, err = c.NearestByNPS("80", 12)
	if err != nil {
		t.Fatal(err)
	}
	if different(e.TWall, 0.7*inch, 1e-12) {
		t.Errorf("NPS 12 override: have %v", e)
	}
	if _, err = c.NearestByNPS("40", 12); !errors.Is(err, ErrNoSchedule) {
		t.Errorf("replaced row should only have the overridden schedules: %v", err)
	}
	if r, err := c.Roughness("ductile iron", true); err != nil || r != 2.6e-4 {
		t.Errorf("ductile iron: %g, %v", r, err)
	}
	if r, err := c.Roughness("Cast Iron", true); err != nil || r != 2.4e-4 {
		t.Errorf("cast iron override: %g, %v", r, err)
	}

	// The default catalog is unchanged.
	if r, _ := Default().Roughness("cast iron", true); r != 2.59e-4 {
		t.Errorf("default catalog modified: %g", r)
	}
	if _, err := Default().NearestByNPS("80", 30); err == nil {
		t.Error("default catalog modified")
	}
}

func TestLoadTOMLErrors(t *testing.T) {
	for _, in := range []string{
		"[[schedule]]\nnps = 0.0\nod = 1.0\n",
		"[[schedule]]\nnps = 1.0\nod = 1.0\n[schedule.walls]\n\"40\" = 0.6\n",
		"[[material]]\nname = \"\"\n",
		"[[material]]\nname = \"mud\"\nclean = -1.0\n",
		"this is not toml",
	} {
		if _, err := Default().LoadTOML(strings.NewReader(in)); err == nil {
			t.Errorf("%q: should be an error", in)
		}
	}
}
