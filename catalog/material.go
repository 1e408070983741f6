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
	"sort"
	"strings"
)

// Material holds the absolute surface roughness [m] of a pipe material
// when new and clean and when fouled by age or service.
type Material struct {
	Name   string
	Clean  float64
	Fouled float64
}

var defaultMaterials = []Material{
	{"Drawn tubing", 1.5e-6, 1.5e-5},
	{"Copper", 1.5e-6, 3.0e-5},
	{"Brass", 1.5e-6, 3.0e-5},
	{"Glass", 3.0e-7, 3.0e-7},
	{"PVC", 1.5e-6, 7.0e-6},
	{"Steel tubes", 4.5e-5, 1.0e-3},
	{"Commercial steel", 4.6e-5, 5.0e-4},
	{"Wrought iron", 4.6e-5, 3.0e-4},
	{"Galvanized iron", 1.5e-4, 1.0e-3},
	{"Asphalted cast iron", 1.2e-4, 6.0e-4},
	{"Cast iron", 2.59e-4, 1.5e-3},
	{"Wood stave", 1.8e-4, 9.0e-4},
	{"Concrete", 3.0e-4, 3.0e-3},
	{"Riveted steel", 9.0e-4, 9.0e-3},
}

func materialKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Roughness returns the absolute roughness [m] of the named material.
// Names are matched exactly, ignoring case and repeated whitespace.
func (c *Catalog) Roughness(material string, isClean bool) (float64, error) {
	m, ok := c.materials[materialKey(material)]
	if !ok {
		return 0, fmt.Errorf("catalog: %q: %w", material, ErrUnknownMaterial)
	}
	if isClean {
		return m.Clean, nil
	}
	return m.Fouled, nil
}

// Materials returns the tabulated materials sorted by name.
func (c *Catalog) Materials() []Material {
	o := make([]Material, 0, len(c.materials))
	for _, m := range c.materials {
		o = append(o, m)
	}
	sort.Slice(o, func(i, j int) bool { return o[i].Name < o[j].Name })
	return o
}
