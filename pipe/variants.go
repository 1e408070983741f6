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
	"math"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/pipeflow/friction"
	"github.com/spatialmodel/pipeflow/quantity"
)

var (
	_ HeadLosser = (*CHW)(nil)
	_ HeadLosser = (*EF)(nil)
)

// HeadLosser is implemented by pipes that can calculate the head loss of
// the flow through them.
type HeadLosser interface {
	// HeadLoss returns the frictional head loss [m].
	HeadLoss() (*unit.Unit, error)
}

// Simple is a pipe described only by its length and inner diameter.
// Flow area and length to diameter ratio are derived.
type Simple struct {
	Label string
	geometry
}

// NewSimple creates a Simple pipe.
func NewSimple(label string, length, idiameter *unit.Unit) (*Simple, error) {
	s := &Simple{Label: label, geometry: newGeometry()}
	if err := s.init(length, idiameter); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simple) init(length, idiameter *unit.Unit) error {
	if err := s.SetLength(length); err != nil {
		return fmt.Errorf("pipe %q: %w", s.Label, err)
	}
	if err := s.SetIDiameter(idiameter); err != nil {
		return fmt.Errorf("pipe %q: %w", s.Label, err)
	}
	return nil
}

func (s *Simple) props() properties {
	return properties{
		"length":    lengthProperty("length", &s.length, s.setLength),
		"idiameter": lengthProperty("idiameter", &s.idiameter, s.setIDiameter),
		"flow_area": derived("flow_area", s.flowArea, quantity.Area),
		"ld_ratio":  derived("ld_ratio", s.ldRatio, quantity.Dimless),
	}
}

// Get returns the named property: length, idiameter, flow_area or
// ld_ratio.
func (s *Simple) Get(name string) (*unit.Unit, error) { return s.props().get(name) }

// Set sets the named property to the SI magnitude v.
func (s *Simple) Set(name string, v float64) error { return s.props().set(name, v) }

// AsTable returns a two line table with the label and the named
// properties of the pipe.
func (s *Simple) AsTable(headers []string) (string, error) {
	return s.props().table(s.Label, headers)
}

// CHW is a Simple pipe with a Hazen-Williams coefficient.
type CHW struct {
	Simple
	chw     float64
	volFlow float64
}

// NewCHW creates a CHW pipe with Hazen-Williams coefficient chw.
func NewCHW(label string, length, idiameter *unit.Unit, chw float64) (*CHW, error) {
	p := &CHW{Simple: Simple{Label: label, geometry: newGeometry()}, volFlow: math.NaN()}
	if err := p.init(length, idiameter); err != nil {
		return nil, err
	}
	if err := p.SetCoefficient(chw); err != nil {
		return nil, fmt.Errorf("pipe %q: %w", label, err)
	}
	return p, nil
}

// Coefficient returns the Hazen-Williams coefficient.
func (p *CHW) Coefficient() float64 { return p.chw }

// SetCoefficient sets the Hazen-Williams coefficient, which must be within
// (0, 200].
func (p *CHW) SetCoefficient(c float64) error {
	if err := friction.CheckHazenWilliams(c); err != nil {
		return fmt.Errorf("pipe: %v: %w", err, ErrOutOfBounds)
	}
	p.chw = c
	return nil
}

// SetFlow sets the volumetric flow rate through the pipe.
func (p *CHW) SetFlow(q *unit.Unit) error {
	v, err := si(q, quantity.VolumetricFlow, "volumetric flow")
	if err != nil {
		return err
	}
	return p.setFlow(v)
}

func (p *CHW) setFlow(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("pipe: volumetric flow %g m³/s must be >0: %w", v, ErrOutOfBounds)
	}
	p.volFlow = v
	return nil
}

// VolFlow returns the volumetric flow rate.
func (p *CHW) VolFlow() (*unit.Unit, error) {
	if !isSet(p.volFlow) {
		return nil, fmt.Errorf("pipe %q: vol_flow: %w", p.Label, ErrFlowState)
	}
	return unit.New(p.volFlow, quantity.VolumetricFlow), nil
}

// HeadLoss returns the Hazen-Williams head loss. The flow rate must have
// been set with SetFlow.
func (p *CHW) HeadLoss() (*unit.Unit, error) {
	if !isSet(p.volFlow) {
		return nil, fmt.Errorf("pipe %q: head_loss: %w", p.Label, ErrFlowState)
	}
	hf, err := friction.HazenWilliamsHeadLoss(p.volFlow, p.chw, p.length, p.idiameter)
	if err != nil {
		return nil, fmt.Errorf("pipe %q: %w", p.Label, err)
	}
	return unit.New(hf, quantity.Length), nil
}

func (p *CHW) props() properties {
	ps := p.Simple.props()
	ps["chw"] = property{
		get: func() (*unit.Unit, error) { return unit.New(p.chw, quantity.Dimless), nil },
		set: p.SetCoefficient,
	}
	ps["vol_flow"] = property{get: p.VolFlow, set: p.setFlow}
	ps["head_loss"] = property{get: p.HeadLoss}
	return ps
}

// Get returns the named property: length, idiameter, flow_area,
// ld_ratio, chw, vol_flow or head_loss.
func (p *CHW) Get(name string) (*unit.Unit, error) { return p.props().get(name) }

// Set sets the named property to the SI magnitude v.
func (p *CHW) Set(name string, v float64) error { return p.props().set(name, v) }

// AsTable returns a two line table with the label and the named
// properties of the pipe.
func (p *CHW) AsTable(headers []string) (string, error) {
	return p.props().table(p.Label, headers)
}

// flowState is the flow through an EF pipe. Both fields are set together.
type flowState struct {
	volFlow, kinVisc float64
	set              bool
}

// EF is a Simple pipe with a surface roughness, whose friction factor is
// found from the Colebrook-White relation once flow conditions are set.
type EF struct {
	Simple

	// Settings control the friction factor iteration.
	Settings friction.Settings

	flow flowState
}

// NewEF creates an EF pipe with absolute roughness eroughness.
func NewEF(label string, length, idiameter, eroughness *unit.Unit) (*EF, error) {
	p := &EF{Simple: Simple{Label: label, geometry: newGeometry()}, Settings: friction.DefaultSettings}
	if err := p.init(length, idiameter); err != nil {
		return nil, err
	}
	if err := p.SetERoughness(eroughness); err != nil {
		return nil, fmt.Errorf("pipe %q: %w", label, err)
	}
	return p, nil
}

// ERoughness returns the absolute roughness height.
func (p *EF) ERoughness() *unit.Unit { return unit.New(p.eroughness, quantity.Length) }

// FRoughness returns the roughness as a fraction of the inner diameter.
func (p *EF) FRoughness() *unit.Unit { return unit.New(p.froughness(), quantity.Dimless) }

// SetERoughness sets the absolute roughness height.
func (p *EF) SetERoughness(e *unit.Unit) error {
	v, err := si(e, quantity.Length, "absolute roughness")
	if err != nil {
		return err
	}
	return p.setERoughness(v)
}

// SetFRoughness sets the roughness as a fraction r of the inner diameter.
func (p *EF) SetFRoughness(r float64) error { return p.setFRoughness(r) }

// SetFlowConditions sets the volumetric flow rate and the kinematic
// viscosity of the fluid. Both must be positive; if either is invalid
// neither is set.
func (p *EF) SetFlowConditions(volFlow, kinVisc *unit.Unit) error {
	q, err := si(volFlow, quantity.VolumetricFlow, "volumetric flow")
	if err != nil {
		return err
	}
	nu, err := si(kinVisc, quantity.KinematicViscosity, "kinematic viscosity")
	if err != nil {
		return err
	}
	if !(q > 0) {
		return fmt.Errorf("pipe %q: volumetric flow %g m³/s must be >0: %w", p.Label, q, ErrOutOfBounds)
	}
	if !(nu > 0) {
		return fmt.Errorf("pipe %q: kinematic viscosity %g m²/s must be >0: %w", p.Label, nu, ErrOutOfBounds)
	}
	p.flow = flowState{volFlow: q, kinVisc: nu, set: true}
	return nil
}

func (p *EF) checkFlow(name string) error {
	if !p.flow.set {
		return fmt.Errorf("pipe %q: %s: %w", p.Label, name, ErrFlowState)
	}
	return nil
}

// VolFlow returns the volumetric flow rate.
func (p *EF) VolFlow() (*unit.Unit, error) {
	if err := p.checkFlow("vol_flow"); err != nil {
		return nil, err
	}
	return unit.New(p.flow.volFlow, quantity.VolumetricFlow), nil
}

// KinVisc returns the kinematic viscosity of the fluid.
func (p *EF) KinVisc() (*unit.Unit, error) {
	if err := p.checkFlow("kin_visc"); err != nil {
		return nil, err
	}
	return unit.New(p.flow.kinVisc, quantity.KinematicViscosity), nil
}

func (p *EF) vflow() float64 { return p.flow.volFlow / p.flowArea() }

// VFlow returns the mean flow velocity.
func (p *EF) VFlow() (*unit.Unit, error) {
	if err := p.checkFlow("vflow"); err != nil {
		return nil, err
	}
	return unit.New(p.vflow(), quantity.Velocity), nil
}

// Re returns the Reynolds number of the flow.
func (p *EF) Re() (float64, error) {
	if err := p.checkFlow("Re"); err != nil {
		return math.NaN(), err
	}
	return friction.Reynolds(p.vflow(), p.idiameter, p.flow.kinVisc), nil
}

// Friction returns the Darcy friction factor. It fails with
// friction.ErrLaminar if the flow is not turbulent.
func (p *EF) Friction() (float64, error) {
	re, err := p.Re()
	if err != nil {
		return math.NaN(), err
	}
	f, err := friction.Colebrook(re, p.froughness(), p.Settings)
	if err != nil {
		return math.NaN(), fmt.Errorf("pipe %q: %w", p.Label, err)
	}
	return f, nil
}

// HeadLoss returns the Darcy-Weisbach head loss.
func (p *EF) HeadLoss() (*unit.Unit, error) {
	f, err := p.Friction()
	if err != nil {
		return nil, err
	}
	return unit.New(friction.DarcyHeadLoss(f, p.length, p.idiameter, p.vflow()), quantity.Length), nil
}

func (p *EF) props() properties {
	ps := p.Simple.props()
	ps["eroughness"] = lengthProperty("eroughness", &p.eroughness, p.setERoughness)
	ps["froughness"] = property{
		get: func() (*unit.Unit, error) { return p.FRoughness(), nil },
		set: p.setFRoughness,
	}
	dimless := func(f func() (float64, error)) func() (*unit.Unit, error) {
		return func() (*unit.Unit, error) {
			v, err := f()
			if err != nil {
				return nil, err
			}
			return unit.New(v, quantity.Dimless), nil
		}
	}
	flow := map[string]func() (*unit.Unit, error){
		"vol_flow": p.VolFlow,
		"kin_visc": p.KinVisc,
		"vflow":    p.VFlow,
		"Re":       dimless(p.Re),
		"friction": dimless(p.Friction),
	}
	for name, get := range flow {
		name := name
		ps[name] = property{
			get: get,
			set: func(float64) error {
				return fmt.Errorf("pipe %q: %s can only be set with SetFlowConditions: %w", p.Label, name, ErrFlowState)
			},
		}
	}
	ps["head_loss"] = property{get: p.HeadLoss}
	return ps
}

// Get returns the named property: length, idiameter, flow_area,
// ld_ratio, eroughness, froughness, vol_flow, kin_visc, vflow, Re,
// friction or head_loss.
func (p *EF) Get(name string) (*unit.Unit, error) { return p.props().get(name) }

// Set sets the named property to the SI magnitude v. Flow properties
// cannot be set individually.
func (p *EF) Set(name string, v float64) error { return p.props().set(name, v) }

// AsTable returns a two line table with the label and the named
// properties of the pipe.
func (p *EF) AsTable(headers []string) (string, error) {
	return p.props().table(p.Label, headers)
}
