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
	"sort"
)

// Catalog is an immutable set of schedule and material tables.
type Catalog struct {
	rows      []Row // sorted by NPS
	materials map[string]Material
}

var defaultCatalog = newCatalog(defaultRows(), defaultMaterials)

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

func newCatalog(rows []Row, materials []Material) *Catalog {
	c := &Catalog{
		rows:      make([]Row, len(rows)),
		materials: make(map[string]Material, len(materials)),
	}
	copy(c.rows, rows)
	sort.Slice(c.rows, func(i, j int) bool { return c.rows[i].NPS < c.rows[j].NPS })
	for _, m := range materials {
		c.materials[materialKey(m.Name)] = m
	}
	return c
}

// merge returns a new catalog holding the rows and materials of c, with
// any rows that have the same nominal size or materials with the same name
// replaced by those given.
func (c *Catalog) merge(rows []Row, materials []Material) *Catalog {
	byNPS := make(map[float64]Row, len(c.rows)+len(rows))
	for _, r := range c.rows {
		byNPS[r.NPS] = r
	}
	for _, r := range rows {
		byNPS[r.NPS] = r
	}
	allRows := make([]Row, 0, len(byNPS))
	for _, r := range byNPS {
		allRows = append(allRows, r)
	}
	allMaterials := make([]Material, 0, len(c.materials)+len(materials))
	for _, m := range c.materials {
		allMaterials = append(allMaterials, m)
	}
	allMaterials = append(allMaterials, materials...)
	return newCatalog(allRows, allMaterials)
}

// defaultRows returns the ASME B36.10M welded and seamless wrought steel
// pipe table for NPS 1/8 through 24. Dimensions are in inches.
func defaultRows() []Row {
	rows := []Row{
		{0.125, 0.405, map[string]float64{"10": 0.049, "40": 0.068, "80": 0.095}},
		{0.25, 0.540, map[string]float64{"10": 0.065, "40": 0.088, "80": 0.119}},
		{0.375, 0.675, map[string]float64{"10": 0.065, "40": 0.091, "80": 0.126}},
		{0.5, 0.840, map[string]float64{"10": 0.083, "40": 0.109, "80": 0.147, "160": 0.188, "XXS": 0.294}},
		{0.75, 1.050, map[string]float64{"10": 0.083, "40": 0.113, "80": 0.154, "160": 0.219, "XXS": 0.308}},
		{1, 1.315, map[string]float64{"10": 0.109, "40": 0.133, "80": 0.179, "160": 0.250, "XXS": 0.358}},
		{1.25, 1.660, map[string]float64{"10": 0.109, "40": 0.140, "80": 0.191, "160": 0.250, "XXS": 0.382}},
		{1.5, 1.900, map[string]float64{"10": 0.109, "40": 0.145, "80": 0.200, "160": 0.281, "XXS": 0.400}},
		{2, 2.375, map[string]float64{"10": 0.109, "40": 0.154, "80": 0.218, "160": 0.344, "XXS": 0.436}},
		{2.5, 2.875, map[string]float64{"10": 0.120, "40": 0.203, "80": 0.276, "160": 0.375, "XXS": 0.552}},
		{3, 3.500, map[string]float64{"10": 0.120, "40": 0.216, "80": 0.300, "160": 0.438, "XXS": 0.600}},
		{3.5, 4.000, map[string]float64{"10": 0.120, "40": 0.226, "80": 0.318}},
		{4, 4.500, map[string]float64{"10": 0.120, "40": 0.237, "80": 0.337, "120": 0.438, "160": 0.531, "XXS": 0.674}},
		{5, 5.563, map[string]float64{"10": 0.134, "40": 0.258, "80": 0.375, "120": 0.500, "160": 0.625, "XXS": 0.750}},
		{6, 6.625, map[string]float64{"10": 0.134, "40": 0.280, "80": 0.432, "120": 0.562, "160": 0.719, "XXS": 0.864}},
		{8, 8.625, map[string]float64{"10": 0.148, "20": 0.250, "30": 0.277, "40": 0.322, "60": 0.406, "80": 0.500,
			"100": 0.594, "120": 0.719, "140": 0.812, "160": 0.906, "XXS": 0.875}},
		{10, 10.750, map[string]float64{"10": 0.165, "20": 0.250, "30": 0.307, "40": 0.365, "60": 0.500, "80": 0.594,
			"100": 0.719, "120": 0.844, "140": 1.000, "160": 1.125, "XXS": 1.000}},
		{12, 12.750, map[string]float64{"10": 0.180, "20": 0.250, "30": 0.330, "40": 0.406, "60": 0.562, "80": 0.688,
			"100": 0.844, "120": 1.000, "140": 1.125, "160": 1.312, "XXS": 1.000}},
		{14, 14.000, map[string]float64{"10": 0.250, "20": 0.312, "30": 0.375, "40": 0.438, "60": 0.594, "80": 0.750,
			"100": 0.938, "120": 1.094, "140": 1.250, "160": 1.406}},
		{16, 16.000, map[string]float64{"10": 0.250, "20": 0.312, "30": 0.375, "40": 0.500, "60": 0.656, "80": 0.844,
			"100": 1.031, "120": 1.219, "140": 1.438, "160": 1.594}},
		{18, 18.000, map[string]float64{"10": 0.250, "20": 0.312, "30": 0.438, "40": 0.562, "60": 0.750, "80": 0.938,
			"100": 1.156, "120": 1.375, "140": 1.562, "160": 1.781}},
		{20, 20.000, map[string]float64{"10": 0.250, "20": 0.375, "30": 0.500, "40": 0.594, "60": 0.812, "80": 1.031,
			"100": 1.281, "120": 1.500, "140": 1.750, "160": 1.969}},
		{24, 24.000, map[string]float64{"10": 0.250, "20": 0.375, "30": 0.562, "40": 0.688, "60": 0.969, "80": 1.219,
			"100": 1.531, "120": 1.812, "140": 2.062, "160": 2.344}},
	}
	// Standard and extra-strong weights coincide with schedules 40 and 80
	// up to NPS 10 and 8 respectively, and are fixed above.
	for i := range rows {
		r := &rows[i]
		if r.NPS <= 10 {
			r.Walls["STD"] = r.Walls["40"]
		} else {
			r.Walls["STD"] = 0.375
		}
		if r.NPS <= 8 {
			r.Walls["XS"] = r.Walls["80"]
		} else {
			r.Walls["XS"] = 0.500
		}
	}
	return rows
}
