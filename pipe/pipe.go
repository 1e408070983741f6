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

package pipe

import (
	"fmt"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/pipeflow/catalog"
	"github.com/spatialmodel/pipeflow/quantity"
	"github.com/spf13/cast"
)

// Pipe is a pipe segment with independently settable length, inner and
// outer diameter, wall thickness, and roughness. Setting the inner or
// outer diameter keeps the wall thickness and moves the other diameter;
// setting the wall thickness keeps the outer diameter and moves the inner
// diameter. Every setter validates the resulting geometry as a whole and
// leaves the pipe unchanged on failure.
type Pipe struct {
	Label string
	geometry

	surface  string
	isClean  bool
	schedule string
	nps      float64
	cat      *catalog.Catalog
}

func newPipe(label string) *Pipe {
	return &Pipe{
		Label:    label,
		geometry: newGeometry(),
		isClean:  true,
		cat:      catalog.Default(),
	}
}

// ODiameter returns the outer diameter, or nil if it is not set.
func (p *Pipe) ODiameter() *unit.Unit { return orNil(p.odiameter, quantity.Length) }

// TWall returns the wall thickness, or nil if it is not set.
func (p *Pipe) TWall() *unit.Unit { return orNil(p.twall, quantity.Length) }

// ERoughness returns the absolute roughness height.
func (p *Pipe) ERoughness() *unit.Unit { return unit.New(p.eroughness, quantity.Length) }

// FRoughness returns the roughness as a fraction of the inner diameter,
// or nil if the inner diameter is not set.
func (p *Pipe) FRoughness() *unit.Unit { return orNil(p.froughness(), quantity.Dimless) }

// SetODiameter sets the outer diameter.
func (p *Pipe) SetODiameter(d *unit.Unit) error {
	v, err := si(d, quantity.Length, "outer diameter")
	if err != nil {
		return err
	}
	return p.setODiameter(v)
}

// SetTWall sets the wall thickness.
func (p *Pipe) SetTWall(t *unit.Unit) error {
	v, err := si(t, quantity.Length, "wall thickness")
	if err != nil {
		return err
	}
	return p.setTWall(v)
}

// SetERoughness sets the absolute roughness height.
func (p *Pipe) SetERoughness(e *unit.Unit) error {
	v, err := si(e, quantity.Length, "absolute roughness")
	if err != nil {
		return err
	}
	return p.setERoughness(v)
}

// SetFRoughness sets the roughness as a fraction r of the inner diameter.
func (p *Pipe) SetFRoughness(r float64) error { return p.setFRoughness(r) }

// Surface returns the name of the material the roughness was last looked
// up for, or "" if it was set directly.
func (p *Pipe) Surface() string { return p.surface }

// IsClean reports whether the clean or fouled roughness of the material
// is used.
func (p *Pipe) IsClean() bool { return p.isClean }

// Schedule returns the schedule of the last catalog dimension lookup.
func (p *Pipe) Schedule() string { return p.schedule }

// NPS returns the nominal pipe size [in] of the last catalog dimension
// lookup, or 0.
func (p *Pipe) NPS() float64 { return p.nps }

// NearestMaterialRoughness sets the absolute roughness to the catalog
// value for material.
func (p *Pipe) NearestMaterialRoughness(material string, isClean bool) error {
	r, err := p.cat.Roughness(material, isClean)
	if err != nil {
		return fmt.Errorf("pipe %q: %w", p.Label, err)
	}
	if err := p.setERoughness(r); err != nil {
		return err
	}
	p.surface = material
	p.isClean = isClean
	return nil
}

// NearestDimensionsFromSchedule sets the outer diameter and wall thickness
// to the catalog values for schedule and the nominal size nps [in], and
// derives the inner diameter. If nps <= 0 the nominal size with the
// inner diameter closest to the current one is used.
func (p *Pipe) NearestDimensionsFromSchedule(schedule string, nps float64) error {
	var e catalog.Entry
	var err error
	if nps > 0 {
		e, err = p.cat.NearestByNPS(schedule, nps)
	} else {
		if !isSet(p.idiameter) {
			return fmt.Errorf("pipe %q: schedule lookup needs a nominal size or inner diameter: %w",
				p.Label, ErrUnset)
		}
		e, err = p.cat.NearestByInnerDiameter(schedule, p.idiameter)
	}
	if err != nil {
		return fmt.Errorf("pipe %q: %w", p.Label, err)
	}
	if err := p.setOuter(e.OD, e.TWall); err != nil {
		return err
	}
	p.schedule = e.Schedule
	p.nps = e.NPS
	return nil
}

// SetSurface sets the roughness to that of the named material, keeping
// the current cleanliness.
func (p *Pipe) SetSurface(material string) error {
	return p.NearestMaterialRoughness(material, p.isClean)
}

// SetClean sets whether the pipe is clean, updating the roughness if a
// surface material has been set.
func (p *Pipe) SetClean(isClean bool) error {
	if p.surface == "" {
		p.isClean = isClean
		return nil
	}
	return p.NearestMaterialRoughness(p.surface, isClean)
}

// SetCleanString is SetClean for textual flags such as "true", "F" or "1".
func (p *Pipe) SetCleanString(s string) error {
	b, err := cast.ToBoolE(s)
	if err != nil {
		return fmt.Errorf("pipe %q: is_clean %q is not a boolean: %w", p.Label, s, ErrOutOfBounds)
	}
	return p.SetClean(b)
}

func (p *Pipe) props() properties {
	return properties{
		"length":     lengthProperty("length", &p.length, p.setLength),
		"idiameter":  lengthProperty("idiameter", &p.idiameter, p.setIDiameter),
		"odiameter":  lengthProperty("odiameter", &p.odiameter, p.setODiameter),
		"twall":      lengthProperty("twall", &p.twall, p.setTWall),
		"eroughness": lengthProperty("eroughness", &p.eroughness, p.setERoughness),
		"froughness": {
			get: func() (*unit.Unit, error) { return value("froughness", p.froughness(), quantity.Dimless) },
			set: p.setFRoughness,
		},
		"flow_area": derived("flow_area", p.flowArea, quantity.Area),
		"ld_ratio":  derived("ld_ratio", p.ldRatio, quantity.Dimless),
	}
}

// Get returns the named property: one of length, idiameter, odiameter,
// twall, eroughness, froughness, flow_area or ld_ratio.
func (p *Pipe) Get(name string) (*unit.Unit, error) { return p.props().get(name) }

// Set sets the named property to the SI magnitude v.
func (p *Pipe) Set(name string, v float64) error { return p.props().set(name, v) }

// AsTable returns a two line table with the label and the named
// properties of the pipe.
func (p *Pipe) AsTable(headers []string) (string, error) {
	return p.props().table(p.Label, headers)
}
