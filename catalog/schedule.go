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

// Package catalog holds standard pipe dimension and surface roughness
// tables. Nominal pipe sizes and wall thicknesses follow ASME B36.10M.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrNoSchedule is returned when a nominal size, schedule, or inner
	// diameter has no tabulated entry.
	ErrNoSchedule = errors.New("no schedule entry")

	// ErrUnknownMaterial is returned for material names that are not in
	// the roughness table.
	ErrUnknownMaterial = errors.New("unknown material")
)

const inch = 0.0254 // m

// Row is one nominal pipe size in the schedule table. All dimensions
// are in inches.
type Row struct {
	NPS float64
	OD  float64
	// Walls maps schedule names to wall thicknesses.
	Walls map[string]float64
}

// Entry is the result of a schedule lookup. Dimensions are in meters.
type Entry struct {
	NPS      float64 // nominal size [in]
	Schedule string
	OD       float64
	TWall    float64
}

// ID returns the inner diameter of the entry [m].
func (e Entry) ID() float64 { return e.OD - 2*e.TWall }

func (e Entry) String() string {
	return fmt.Sprintf("NPS %g sch %s: OD=%.4f in, twall=%.4f in, ID=%.4f in",
		e.NPS, e.Schedule, e.OD/inch, e.TWall/inch, e.ID()/inch)
}

// NormalizeSchedule converts schedule designations such as "sch 80",
// "Sch80", or "std" to the keys used in the table ("80", "STD").
func NormalizeSchedule(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "SCHEDULE")
	s = strings.TrimPrefix(s, "SCH")
	s = strings.TrimPrefix(s, ".")
	return strings.TrimSpace(s)
}

// NearestByNPS returns the dimensions of the tabulated nominal size
// closest to nps for the given schedule. Sizes outside of the table
// are not extrapolated.
func (c *Catalog) NearestByNPS(schedule string, nps float64) (Entry, error) {
	sch := NormalizeSchedule(schedule)
	if !c.hasSchedule(sch) {
		return Entry{}, fmt.Errorf("catalog: schedule %q: %w", schedule, ErrNoSchedule)
	}
	n := len(c.rows)
	if n == 0 || nps < c.rows[0].NPS || nps > c.rows[n-1].NPS {
		return Entry{}, fmt.Errorf("catalog: NPS %g is outside of the tabulated range: %w", nps, ErrNoSchedule)
	}
	i := sort.Search(n, func(i int) bool { return c.rows[i].NPS >= nps })
	if i > 0 && (i == n || nps-c.rows[i-1].NPS <= c.rows[i].NPS-nps) {
		i--
	}
	r := c.rows[i]
	t, ok := r.Walls[sch]
	if !ok {
		return Entry{}, fmt.Errorf("catalog: NPS %g has no schedule %s: %w", r.NPS, sch, ErrNoSchedule)
	}
	return Entry{NPS: r.NPS, Schedule: sch, OD: r.OD * inch, TWall: t * inch}, nil
}

// NearestByInnerDiameter returns the entry for the given schedule whose
// inner diameter is closest to id [m]. Inner diameters outside the range
// covered by the schedule are an error.
func (c *Catalog) NearestByInnerDiameter(schedule string, id float64) (Entry, error) {
	sch := NormalizeSchedule(schedule)
	var entries []Entry
	for _, r := range c.rows {
		if t, ok := r.Walls[sch]; ok {
			entries = append(entries, Entry{NPS: r.NPS, Schedule: sch, OD: r.OD * inch, TWall: t * inch})
		}
	}
	if len(entries) == 0 {
		return Entry{}, fmt.Errorf("catalog: schedule %q: %w", schedule, ErrNoSchedule)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range entries {
		lo = math.Min(lo, e.ID())
		hi = math.Max(hi, e.ID())
	}
	if id < lo || id > hi {
		return Entry{}, fmt.Errorf("catalog: inner diameter %.4g in is outside of the range covered by schedule %s (%.4g–%.4g in): %w",
			id/inch, sch, lo/inch, hi/inch, ErrNoSchedule)
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if math.Abs(e.ID()-id) < math.Abs(best.ID()-id) {
			best = e
		}
	}
	return best, nil
}

func (c *Catalog) hasSchedule(sch string) bool {
	for _, r := range c.rows {
		if _, ok := r.Walls[sch]; ok {
			return true
		}
	}
	return false
}

// Schedules returns the sorted names of all tabulated schedules.
func (c *Catalog) Schedules() []string {
	m := make(map[string]bool)
	for _, r := range c.rows {
		for s := range r.Walls {
			m[s] = true
		}
	}
	o := make([]string, 0, len(m))
	for s := range m {
		o = append(o, s)
	}
	sort.Strings(o)
	return o
}

// Rows returns a copy of the schedule table, sorted by nominal size.
func (c *Catalog) Rows() []Row {
	o := make([]Row, len(c.rows))
	for i, r := range c.rows {
		o[i] = Row{NPS: r.NPS, OD: r.OD, Walls: make(map[string]float64, len(r.Walls))}
		for k, v := range r.Walls {
			o[i].Walls[k] = v
		}
	}
	return o
}
