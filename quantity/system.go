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
	"fmt"
	"strings"

	"github.com/ctessum/unit"
)

// Scale is a named unit: a label for reports and the size of one unit
// in SI.
type Scale struct {
	Label    string
	ToSI     float64
	Quantity unit.Dimensions
}

// New creates a quantity from a magnitude v expressed in s.
func (s Scale) New(v float64) *unit.Unit { return unit.New(v*s.ToSI, s.Quantity) }

// From returns the magnitude of q expressed in s.
func (s Scale) From(q *unit.Unit) (float64, error) { return In(q, s.Quantity, s.ToSI) }

// System is the set of units that input records are written in and that
// reports are printed in.
type System struct {
	Name      string
	Flow      Scale
	Diameter  Scale
	Length    Scale
	Viscosity Scale
	Roughness Scale
	Velocity  Scale
	Head      Scale
}

// Traditional is the US customary system used by the legacy tool.
var Traditional = System{
	Name:      "traditional",
	Flow:      Scale{"CFS", Foot3ToMeter3, VolumetricFlow},
	Diameter:  Scale{"IN", InchToMeter, Length},
	Length:    Scale{"FT", FootToMeter, Length},
	Viscosity: Scale{"FT**2/S", Foot2ToMeter2, KinematicViscosity},
	Roughness: Scale{"FT", FootToMeter, Length},
	Velocity:  Scale{"FT/S", FootToMeter, Velocity},
	Head:      Scale{"FT", FootToMeter, Length},
}

// SI is the metric system. Diameters and roughness heights are
// given in millimeters.
var SI = System{
	Name:      "si",
	Flow:      Scale{"M**3/S", 1, VolumetricFlow},
	Diameter:  Scale{"MM", MillimeterToMeter, Length},
	Length:    Scale{"M", 1, Length},
	Viscosity: Scale{"M**2/S", 1, KinematicViscosity},
	Roughness: Scale{"MM", MillimeterToMeter, Length},
	Velocity:  Scale{"M/S", 1, Velocity},
	Head:      Scale{"M", 1, Length},
}

// ParseSystem returns the unit system with the given name. The legacy
// integer flags "0" (traditional) and "1" (SI) are also accepted.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "traditional", "us", "english", "0":
		return Traditional, nil
	case "si", "metric", "1":
		return SI, nil
	}
	return System{}, fmt.Errorf("quantity: unknown unit system %q", name)
}
