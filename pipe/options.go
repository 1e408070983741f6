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
	"errors"
	"fmt"
	"sort"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/pipeflow/catalog"
	"github.com/spatialmodel/pipeflow/quantity"
	"github.com/spf13/cast"
)

// config holds the construction parameters of a Pipe. Nil or empty fields
// are not set.
type config struct {
	length, idiameter, odiameter, twall, eroughness *unit.Unit
	froughness, nps                                 *float64
	schedule, surface                               string
	isClean                                         *bool
	cat                                             *catalog.Catalog
}

// Option is a construction parameter for New.
type Option func(*config)

// Length sets the length of the pipe.
func Length(l *unit.Unit) Option { return func(c *config) { c.length = l } }

// IDiameter sets the inner diameter of the pipe.
func IDiameter(d *unit.Unit) Option { return func(c *config) { c.idiameter = d } }

// ODiameter sets the outer diameter of the pipe.
func ODiameter(d *unit.Unit) Option { return func(c *config) { c.odiameter = d } }

// TWall sets the wall thickness of the pipe.
func TWall(t *unit.Unit) Option { return func(c *config) { c.twall = t } }

// ERoughness sets the absolute roughness height of the pipe.
func ERoughness(e *unit.Unit) Option { return func(c *config) { c.eroughness = e } }

// FRoughness sets the roughness as a fraction of the inner diameter.
func FRoughness(r float64) Option { return func(c *config) { c.froughness = &r } }

// Schedule sets the outer diameter and wall thickness from the catalog
// entry for schedule. The nominal size is given by NPS, or else is the one
// whose inner diameter is closest to IDiameter.
func Schedule(schedule string) Option { return func(c *config) { c.schedule = schedule } }

// NPS sets the nominal pipe size [in] used with Schedule.
func NPS(nps float64) Option { return func(c *config) { c.nps = &nps } }

// Surface sets the roughness from the catalog entry for a material.
func Surface(material string) Option { return func(c *config) { c.surface = material } }

// Clean sets whether the clean or fouled roughness of the Surface
// material is used. The default is clean.
func Clean(isClean bool) Option { return func(c *config) { c.isClean = &isClean } }

// WithCatalog sets the catalog used for schedule and material lookups.
// The default is catalog.Default().
func WithCatalog(cat *catalog.Catalog) Option { return func(c *config) { c.cat = cat } }

// New creates a pipe. Parameters are applied in the order length,
// explicit geometry, schedule lookup, and roughness. Roughness is taken
// from ERoughness, else FRoughness, else Surface, and is otherwise zero.
func New(label string, opts ...Option) (*Pipe, error) {
	var c config
	for _, o := range opts {
		o(&c)
	}
	p := newPipe(label)
	if c.cat != nil {
		p.cat = c.cat
	}
	if c.isClean != nil {
		p.isClean = *c.isClean
	}
	wrap := func(err error) error {
		return fmt.Errorf("pipe %q: %w", label, err)
	}

	if c.length != nil {
		if err := p.SetLength(c.length); err != nil {
			return nil, wrap(err)
		}
	}
	if err := p.initGeometry(c); err != nil {
		return nil, wrap(err)
	}
	if c.schedule != "" {
		nps := 0.0
		if c.nps != nil {
			nps = *c.nps
		}
		if err := p.NearestDimensionsFromSchedule(c.schedule, nps); err != nil {
			return nil, err
		}
	} else if c.nps != nil {
		return nil, wrap(fmt.Errorf("nominal size %g given without a schedule: %w", *c.nps, ErrUnset))
	}

	switch {
	case c.eroughness != nil:
		if err := p.SetERoughness(c.eroughness); err != nil {
			return nil, wrap(err)
		}
	case c.froughness != nil:
		if err := p.SetFRoughness(*c.froughness); err != nil {
			return nil, wrap(err)
		}
	case c.surface != "":
		if err := p.NearestMaterialRoughness(c.surface, p.isClean); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// initGeometry applies the explicit diameters and wall thickness in c.
func (p *Pipe) initGeometry(c config) error {
	var id, od, tw float64
	var err error
	if c.idiameter != nil {
		if id, err = si(c.idiameter, quantity.Length, "inner diameter"); err != nil {
			return err
		}
	}
	if c.odiameter != nil {
		if od, err = si(c.odiameter, quantity.Length, "outer diameter"); err != nil {
			return err
		}
	}
	if c.twall != nil {
		if tw, err = si(c.twall, quantity.Length, "wall thickness"); err != nil {
			return err
		}
	}
	g := p.geometry
	switch {
	case c.idiameter != nil && c.odiameter != nil && c.twall != nil:
		g.idiameter, g.odiameter, g.twall = id, od, tw
	case c.idiameter != nil && c.odiameter != nil:
		g.idiameter, g.odiameter, g.twall = id, od, (od-id)/2
	case c.idiameter != nil && c.twall != nil:
		g.idiameter, g.odiameter, g.twall = id, id+2*tw, tw
	case c.odiameter != nil && c.twall != nil:
		g.idiameter, g.odiameter, g.twall = od-2*tw, od, tw
	case c.idiameter != nil:
		g.idiameter = id
	case c.odiameter != nil:
		g.odiameter = od
	case c.twall != nil:
		g.twall = tw
	}
	return p.geometry.commit(g)
}

// FromConfig creates a pipe from a set of keyword parameters: length,
// idiameter, odiameter, twall, eroughness, froughness, schedule, nps,
// surface and is_clean. Dimensional values may be *unit.Unit or SI
// magnitudes in any form accepted by cast.ToFloat64E.
func FromConfig(label string, cfg map[string]interface{}) (*Pipe, error) {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var opts []Option
	for _, k := range keys {
		v := cfg[k]
		var o Option
		var err error
		switch k {
		case "length":
			o, err = lengthOption(k, v, Length)
		case "idiameter":
			o, err = lengthOption(k, v, IDiameter)
		case "odiameter":
			o, err = lengthOption(k, v, ODiameter)
		case "twall":
			o, err = lengthOption(k, v, TWall)
		case "eroughness":
			o, err = lengthOption(k, v, ERoughness)
		case "froughness":
			var r float64
			r, err = dimensionless(v)
			o = FRoughness(r)
		case "nps":
			var n float64
			n, err = cast.ToFloat64E(v)
			o = NPS(n)
		case "schedule":
			var s string
			s, err = cast.ToStringE(v)
			o = Schedule(s)
		case "surface":
			var s string
			s, err = cast.ToStringE(v)
			o = Surface(s)
		case "is_clean":
			var b bool
			b, err = cast.ToBoolE(v)
			o = Clean(b)
		default:
			return nil, fmt.Errorf("pipe %q: configuration key %q: %w", label, k, ErrUnknownProperty)
		}
		var dimErr *quantity.DimensionError
		if errors.As(err, &dimErr) {
			return nil, fmt.Errorf("pipe %q: %w", label, err)
		} else if err != nil {
			return nil, fmt.Errorf("pipe %q: configuration key %q: %v: %w", label, k, err, ErrOutOfBounds)
		}
		opts = append(opts, o)
	}
	return New(label, opts...)
}

func lengthOption(name string, v interface{}, o func(*unit.Unit) Option) (Option, error) {
	if u, ok := v.(*unit.Unit); ok {
		if err := quantity.Check(u, quantity.Length, name); err != nil {
			return nil, err
		}
		return o(u), nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, err
	}
	return o(quantity.Meter(f)), nil
}

func dimensionless(v interface{}) (float64, error) {
	if u, ok := v.(*unit.Unit); ok {
		return quantity.Magnitude(u, quantity.Dimless, "froughness")
	}
	return cast.ToFloat64E(v)
}
