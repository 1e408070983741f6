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

// Package quantity provides dimension-checked physical quantities for pipe
// flow calculations. Quantities are represented as *unit.Unit values, which
// always hold their magnitude in SI units.
package quantity

import (
	"fmt"

	"github.com/ctessum/unit"
	"github.com/ctessum/unit/badunit"
)

// Dimensions used by the pipe flow models.
var (
	// Dimless is for dimensionless ratios such as fractional roughness.
	Dimless = unit.Dimensions{}
	// Length is [m].
	Length = unit.Dimensions{unit.LengthDim: 1}
	// Area is [m²].
	Area = unit.Dimensions{unit.LengthDim: 2}
	// Velocity is [m s⁻¹].
	Velocity = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}
	// KinematicViscosity is [m² s⁻¹].
	KinematicViscosity = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
	// VolumetricFlow is [m³ s⁻¹].
	VolumetricFlow = unit.Dimensions{unit.LengthDim: 3, unit.TimeDim: -1}
)

// Conversion factors to SI.
const (
	InchToMeter       = 0.0254
	FootToMeter       = 0.3048
	MillimeterToMeter = 1.0e-3
	CentimeterToMeter = 1.0e-2
	Foot2ToMeter2     = FootToMeter * FootToMeter
	Foot3ToMeter3     = FootToMeter * FootToMeter * FootToMeter
)

// DimensionError is returned when a quantity does not have the expected
// dimensions, or when quantities with incompatible dimensions are combined.
type DimensionError struct {
	// What describes the quantity being checked.
	What string
	Have unit.Dimensions
	Want unit.Dimensions
}

func (e *DimensionError) Error() string {
	if e.Have == nil {
		return fmt.Sprintf("quantity: %s is missing; want dimensions [%s]", e.What, e.Want)
	}
	return fmt.Sprintf("quantity: %s has dimensions [%s]; want [%s]", e.What, e.Have, e.Want)
}

// Check returns a *DimensionError if q is nil or does not have dimensions d.
func Check(q *unit.Unit, d unit.Dimensions, what string) error {
	if q == nil {
		return &DimensionError{What: what, Want: d}
	}
	if !unit.DimensionsMatch(q, unit.New(0, d)) {
		return &DimensionError{What: what, Have: q.Dimensions(), Want: d}
	}
	return nil
}

// In returns the magnitude of q expressed in a unit with dimensions d
// that is factor SI units large. For example, In(q, Length, InchToMeter)
// returns q in inches.
func In(q *unit.Unit, d unit.Dimensions, factor float64) (float64, error) {
	if err := Check(q, d, "converted quantity"); err != nil {
		return 0, err
	}
	return q.Value() / factor, nil
}

// Magnitude returns the SI magnitude of q after checking that it has
// dimensions d.
func Magnitude(q *unit.Unit, d unit.Dimensions, what string) (float64, error) {
	if err := Check(q, d, what); err != nil {
		return 0, err
	}
	return q.Value(), nil
}

// Add adds a and b, returning a *DimensionError rather than panicking
// when their dimensions differ.
func Add(a, b *unit.Unit) (*unit.Unit, error) {
	if err := match(a, b, "addition"); err != nil {
		return nil, err
	}
	return unit.Add(a, b), nil
}

// Sub subtracts b from a, returning a *DimensionError rather than panicking
// when their dimensions differ.
func Sub(a, b *unit.Unit) (*unit.Unit, error) {
	if err := match(a, b, "subtraction"); err != nil {
		return nil, err
	}
	return unit.Sub(a, b), nil
}

// Less reports whether a < b. Quantities with different dimensions
// cannot be compared.
func Less(a, b *unit.Unit) (bool, error) {
	if err := match(a, b, "comparison"); err != nil {
		return false, err
	}
	return a.Value() < b.Value(), nil
}

func match(a, b *unit.Unit, op string) error {
	if a == nil || b == nil {
		return &DimensionError{What: op + " operand"}
	}
	return Check(b, a.Dimensions(), op+" operand")
}

// Meter creates a length from a number of meters.
func Meter(v float64) *unit.Unit { return unit.New(v, Length) }

// Millimeter creates a length from a number of millimeters.
func Millimeter(v float64) *unit.Unit { return unit.New(v*MillimeterToMeter, Length) }

// Centimeter creates a length from a number of centimeters.
func Centimeter(v float64) *unit.Unit { return unit.New(v*CentimeterToMeter, Length) }

// Inch creates a length from a number of inches.
func Inch(v float64) *unit.Unit { return unit.New(v*InchToMeter, Length) }

// Foot creates a length from a number of feet.
func Foot(v float64) *unit.Unit { return badunit.Foot(v) }

// SquareMeter creates an area from a number of square meters.
func SquareMeter(v float64) *unit.Unit { return unit.New(v, Area) }

// MeterPerSecond creates a velocity from a number of m/s.
func MeterPerSecond(v float64) *unit.Unit { return unit.New(v, Velocity) }

// FootPerSecond creates a velocity from a number of ft/s.
func FootPerSecond(v float64) *unit.Unit { return badunit.FootPerSecond(v) }

// Meter3PerSecond creates a volumetric flow rate from a number of m³/s.
func Meter3PerSecond(v float64) *unit.Unit { return unit.New(v, VolumetricFlow) }

// Foot3PerSecond creates a volumetric flow rate from a number of ft³/s.
// It uses the exact conversion factor; badunit.Foot3PerSecond rounds it.
func Foot3PerSecond(v float64) *unit.Unit { return unit.New(v*Foot3ToMeter3, VolumetricFlow) }

// Meter2PerSecond creates a kinematic viscosity from a number of m²/s.
func Meter2PerSecond(v float64) *unit.Unit { return unit.New(v, KinematicViscosity) }

// Foot2PerSecond creates a kinematic viscosity from a number of ft²/s.
func Foot2PerSecond(v float64) *unit.Unit { return unit.New(v*Foot2ToMeter2, KinematicViscosity) }

// Dimensionless creates a dimensionless ratio.
func Dimensionless(v float64) *unit.Unit { return unit.New(v, Dimless) }
