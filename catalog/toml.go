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
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// tomlFile is the layout of a catalog override file:
//
//	[[schedule]]
//	nps = 30.0
//	od = 30.0
//	[schedule.walls]
//	"10" = 0.312
//	STD = 0.375
//
//	[[material]]
//	name = "Ductile iron"
//	clean = 2.6e-4
//	fouled = 1.0e-3
//
// Schedule dimensions are in inches and roughness heights in meters.
type tomlFile struct {
	Schedule []struct {
		NPS   float64            `toml:"nps"`
		OD    float64            `toml:"od"`
		Walls map[string]float64 `toml:"walls"`
	} `toml:"schedule"`
	Material []struct {
		Name   string  `toml:"name"`
		Clean  float64 `toml:"clean"`
		Fouled float64 `toml:"fouled"`
	} `toml:"material"`
}

// LoadTOML reads schedule rows and materials from r and returns a copy
// of c with them added. Rows with the same nominal size and materials
// with the same name replace the existing entries.
func (c *Catalog) LoadTOML(r io.Reader) (*Catalog, error) {
	var f tomlFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("catalog: decoding TOML: %v", err)
	}
	rows := make([]Row, 0, len(f.Schedule))
	for _, s := range f.Schedule {
		if !(s.NPS > 0) || !(s.OD > 0) {
			return nil, fmt.Errorf("catalog: schedule row NPS=%g OD=%g: sizes must be >0", s.NPS, s.OD)
		}
		row := Row{NPS: s.NPS, OD: s.OD, Walls: make(map[string]float64, len(s.Walls))}
		for sch, t := range s.Walls {
			if !(t > 0) || t >= s.OD/2 {
				return nil, fmt.Errorf("catalog: NPS %g schedule %s: wall thickness %g must be >0 and less than %g",
					s.NPS, sch, t, s.OD/2)
			}
			row.Walls[NormalizeSchedule(sch)] = t
		}
		rows = append(rows, row)
	}
	materials := make([]Material, 0, len(f.Material))
	for _, m := range f.Material {
		if m.Name == "" {
			return nil, fmt.Errorf("catalog: material with no name")
		}
		if m.Clean < 0 || m.Fouled < 0 {
			return nil, fmt.Errorf("catalog: material %q: roughness must be >= 0", m.Name)
		}
		materials = append(materials, Material{Name: m.Name, Clean: m.Clean, Fouled: m.Fouled})
	}
	return c.merge(rows, materials), nil
}
