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

// Package pipe models circular pipe segments. A Pipe holds the full
// geometry of a segment (length, inner and outer diameter, wall thickness
// and surface roughness) and can look up standard dimensions and
// roughness heights from a catalog. The Simple, CHW and EF variants hold
// only the quantities needed for a head loss calculation.
//
// All magnitudes are SI. Getters and setters exchange *unit.Unit values so
// that dimensions are checked at the package boundary; the keyword Get and
// Set methods exchange SI magnitudes.
package pipe

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/pipeflow/friction"
	"github.com/spatialmodel/pipeflow/quantity"
)

// Geometry bounds [m].
const (
	MinLength   = 1.0e-3
	MaxLength   = 1.0e3
	MinDiameter = 1.0e-3
	MaxDiameter = 10.0
	MinTWall    = 1.0e-4
)

var (
	// ErrOutOfBounds is returned when a value is outside of its plausible
	// range. The pipe is left unchanged.
	ErrOutOfBounds = errors.New("value out of bounds")

	// ErrInconsistent is returned when inner diameter, outer diameter and
	// wall thickness are all given but do not agree.
	ErrInconsistent = errors.New("inconsistent geometry")

	// ErrUnset is returned when reading a property that has not been set
	// or that depends on one that has not been set.
	ErrUnset = errors.New("property is not set")

	// ErrReadOnly is returned when assigning to a derived property.
	ErrReadOnly = errors.New("property is read-only")

	// ErrFlowState is returned when flow-dependent properties are read
	// before flow conditions are set, or are assigned individually.
	ErrFlowState = errors.New("flow conditions are not set")

	// ErrUnknownProperty is returned for property names that a pipe
	// does not have.
	ErrUnknownProperty = errors.New("unknown property")
)

// geometry is the dimensional state shared by all pipe variants. Unset
// fields are NaN. Absolute roughness is never unset; it defaults to zero.
type geometry struct {
	length     float64
	idiameter  float64
	odiameter  float64
	twall      float64
	eroughness float64
}

func newGeometry() geometry {
	return geometry{
		length:    math.NaN(),
		idiameter: math.NaN(),
		odiameter: math.NaN(),
		twall:     math.NaN(),
	}
}

func isSet(v float64) bool { return !math.IsNaN(v) }

// boundSlack is the relative tolerance of the bounds checks. Values derived
// from other dimensions carry rounding error of a few ulps.
const boundSlack = 1.0e-9

// within reports whether v is in [lo, hi] to within boundSlack.
func within(v, lo, hi float64) bool {
	return v >= lo*(1-boundSlack) && v <= hi*(1+boundSlack)
}

func outOfBounds(name string, v, lo, hi float64) error {
	return fmt.Errorf("pipe: %s %g m is not within [%g, %g] m: %w", name, v, lo, hi, ErrOutOfBounds)
}

// validate checks every set field of g.
func (g geometry) validate() error {
	if isSet(g.length) && !within(g.length, MinLength, MaxLength) {
		return outOfBounds("length", g.length, MinLength, MaxLength)
	}
	if isSet(g.idiameter) && !within(g.idiameter, MinDiameter, MaxDiameter) {
		return outOfBounds("inner diameter", g.idiameter, MinDiameter, MaxDiameter)
	}
	if isSet(g.odiameter) && !within(g.odiameter, MinDiameter, MaxDiameter) {
		return outOfBounds("outer diameter", g.odiameter, MinDiameter, MaxDiameter)
	}
	if isSet(g.twall) {
		if !within(g.twall, MinTWall, math.Inf(1)) {
			return fmt.Errorf("pipe: wall thickness %g m is less than %g m: %w", g.twall, MinTWall, ErrOutOfBounds)
		}
		if isSet(g.odiameter) && g.twall >= g.odiameter/2 {
			return fmt.Errorf("pipe: wall thickness %g m is not less than the outer radius %g m: %w",
				g.twall, g.odiameter/2, ErrOutOfBounds)
		}
	}
	if isSet(g.idiameter) && isSet(g.odiameter) && isSet(g.twall) {
		if math.Abs(g.odiameter-g.idiameter-2*g.twall) > 1.0e-9*g.odiameter {
			return fmt.Errorf("pipe: outer diameter %g m ≠ inner diameter %g m + 2 × wall thickness %g m: %w",
				g.odiameter, g.idiameter, g.twall, ErrInconsistent)
		}
	}
	if !(g.eroughness >= 0) {
		return fmt.Errorf("pipe: absolute roughness %g m is negative: %w", g.eroughness, ErrOutOfBounds)
	}
	if isSet(g.idiameter) {
		if err := friction.CheckRelativeRoughness(g.eroughness / g.idiameter); err != nil {
			return fmt.Errorf("pipe: absolute roughness %g m with inner diameter %g m: %v: %w",
				g.eroughness, g.idiameter, err, ErrOutOfBounds)
		}
	}
	return nil
}

// commit replaces g with c if c is valid.
func (g *geometry) commit(c geometry) error {
	if err := c.validate(); err != nil {
		return err
	}
	*g = c
	return nil
}

func (g *geometry) setLength(v float64) error {
	c := *g
	c.length = v
	return g.commit(c)
}

// setIDiameter sets the inner diameter, keeping the wall thickness if it
// is known and otherwise deriving it from the outer diameter.
func (g *geometry) setIDiameter(v float64) error {
	c := *g
	c.idiameter = v
	switch {
	case isSet(c.twall):
		c.odiameter = v + 2*c.twall
	case isSet(c.odiameter):
		c.twall = (c.odiameter - v) / 2
	}
	return g.commit(c)
}

// setODiameter sets the outer diameter, keeping the wall thickness if it
// is known and otherwise deriving it from the inner diameter.
func (g *geometry) setODiameter(v float64) error {
	c := *g
	c.odiameter = v
	switch {
	case isSet(c.twall):
		c.idiameter = v - 2*c.twall
	case isSet(c.idiameter):
		c.twall = (v - c.idiameter) / 2
	}
	return g.commit(c)
}

// setTWall sets the wall thickness, keeping the outer diameter if it is
// known and otherwise deriving it from the inner diameter.
func (g *geometry) setTWall(v float64) error {
	c := *g
	c.twall = v
	switch {
	case isSet(c.odiameter):
		c.idiameter = c.odiameter - 2*v
	case isSet(c.idiameter):
		c.odiameter = c.idiameter + 2*v
	}
	return g.commit(c)
}

// setOuter sets the outer diameter and wall thickness together and
// derives the inner diameter.
func (g *geometry) setOuter(od, twall float64) error {
	c := *g
	c.odiameter = od
	c.twall = twall
	c.idiameter = od - 2*twall
	return g.commit(c)
}

func (g *geometry) setERoughness(v float64) error {
	c := *g
	c.eroughness = v
	return g.commit(c)
}

// setFRoughness sets the absolute roughness from a fraction of the inner
// diameter.
func (g *geometry) setFRoughness(r float64) error {
	if !isSet(g.idiameter) {
		return fmt.Errorf("pipe: fractional roughness requires an inner diameter: %w", ErrUnset)
	}
	if err := friction.CheckRelativeRoughness(r); err != nil {
		return fmt.Errorf("pipe: %v: %w", err, ErrOutOfBounds)
	}
	c := *g
	c.eroughness = r * g.idiameter
	return g.commit(c)
}

func (g *geometry) flowArea() float64 { return math.Pi * g.idiameter * g.idiameter / 4 }

func (g *geometry) ldRatio() float64 { return g.length / g.idiameter }

func (g *geometry) froughness() float64 { return g.eroughness / g.idiameter }

// value returns v as a quantity, or ErrUnset if v is NaN.
func value(name string, v float64, d unit.Dimensions) (*unit.Unit, error) {
	if !isSet(v) {
		return nil, fmt.Errorf("pipe: %s: %w", name, ErrUnset)
	}
	return unit.New(v, d), nil
}

// orNil returns v as a quantity, or nil if v is NaN.
func orNil(v float64, d unit.Dimensions) *unit.Unit {
	if !isSet(v) {
		return nil
	}
	return unit.New(v, d)
}

// si checks the dimensions of q and returns its SI magnitude.
func si(q *unit.Unit, d unit.Dimensions, what string) (float64, error) {
	v, err := quantity.Magnitude(q, d, what)
	if err != nil {
		return 0, fmt.Errorf("pipe: %w", err)
	}
	return v, nil
}

// Length returns the length of the pipe, or nil if it is not set.
func (g *geometry) Length() *unit.Unit { return orNil(g.length, quantity.Length) }

// IDiameter returns the inner diameter, or nil if it is not set.
func (g *geometry) IDiameter() *unit.Unit { return orNil(g.idiameter, quantity.Length) }

// FlowArea returns the cross-sectional flow area π·d²/4, or nil if the
// inner diameter is not set.
func (g *geometry) FlowArea() *unit.Unit { return orNil(g.flowArea(), quantity.Area) }

// LDRatio returns the ratio of length to inner diameter, or nil if either
// is not set.
func (g *geometry) LDRatio() *unit.Unit { return orNil(g.ldRatio(), quantity.Dimless) }

// SetLength sets the length of the pipe.
func (g *geometry) SetLength(l *unit.Unit) error {
	v, err := si(l, quantity.Length, "length")
	if err != nil {
		return err
	}
	return g.setLength(v)
}

// SetIDiameter sets the inner diameter of the pipe.
func (g *geometry) SetIDiameter(d *unit.Unit) error {
	v, err := si(d, quantity.Length, "inner diameter")
	if err != nil {
		return err
	}
	return g.setIDiameter(v)
}
