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

package solver

import (
	"fmt"
	"math"

	"github.com/spatialmodel/pipeflow/friction"
	"github.com/spatialmodel/pipeflow/pipe"
	"gonum.org/v1/gonum/floats"
)

// Headloss holds the results of a Darcy-Weisbach calculation in SI units.
type Headloss struct {
	VFlow    float64 // mean velocity [m/s]
	Re       float64 // Reynolds number
	Friction float64 // Darcy friction factor
	HF       float64 // head loss [m]
}

// CalculateHeadloss returns the Darcy-Weisbach head loss and the
// intermediate velocity, Reynolds number and friction factor for volumetric
// flow volFlow [m³/s] through a pipe with flow area flowArea [m²], length
// [m], inner diameter idiameter [m] and absolute roughness eroughness [m],
// carrying a fluid with kinematic viscosity nu [m²/s].
func CalculateHeadloss(volFlow, flowArea, length, idiameter, eroughness, nu float64, s friction.Settings) (Headloss, error) {
	var h Headloss
	h.VFlow = volFlow / flowArea
	h.Re = friction.Reynolds(h.VFlow, idiameter, nu)
	f, err := friction.Colebrook(h.Re, eroughness/idiameter, s)
	if err != nil {
		return h, err
	}
	h.Friction = f
	h.HF = friction.DarcyHeadLoss(f, length, idiameter, h.VFlow)
	return h, nil
}

// SegmentResult is the result for one pipe segment. Input values are in
// the units of the record; results are SI. Re and Friction are NaN for
// Hazen-Williams cases.
type SegmentResult struct {
	Segment
	Headloss
}

// CaseResult is the result of one case.
type CaseResult struct {
	// Case is the 1-based position of the case in its batch.
	Case     int
	Input    CaseInput
	Segments []SegmentResult
	// HF is the total head loss of the segments in series [m].
	HF float64
}

// GenerateResults builds and solves one case.
func GenerateResults(in CaseInput, s friction.Settings) (CaseResult, error) {
	pipes, err := buildPipes(in, s)
	if err != nil {
		return CaseResult{Input: in}, err
	}
	return compute(in, pipes, s)
}

// buildPipes creates a validated pipe for each segment of in: *pipe.EF
// for Darcy-Weisbach cases and *pipe.CHW for Hazen-Williams cases.
func buildPipes(in CaseInput, s friction.Settings) ([]pipe.HeadLosser, error) {
	u := in.Units
	q := u.Flow.New(in.VolFlow)
	pipes := make([]pipe.HeadLosser, len(in.Segments))
	for i, seg := range in.Segments {
		label := fmt.Sprintf("segment %d", i+1)
		l, d := u.Length.New(seg.Length), u.Diameter.New(seg.IDiameter)
		switch in.Method {
		case DarcyWeisbach:
			p, err := pipe.NewEF(label, l, d, u.Roughness.New(seg.Roughness))
			if err != nil {
				return nil, err
			}
			p.Settings = s
			if err := p.SetFlowConditions(q, u.Viscosity.New(in.KinVisc)); err != nil {
				return nil, err
			}
			pipes[i] = p
		case HazenWilliams:
			p, err := pipe.NewCHW(label, l, d, seg.Roughness)
			if err != nil {
				return nil, err
			}
			if err := p.SetFlow(q); err != nil {
				return nil, err
			}
			pipes[i] = p
		default:
			return nil, fmt.Errorf("solver: unknown method %v", in.Method)
		}
	}
	return pipes, nil
}

// compute solves each pipe built by buildPipes.
func compute(in CaseInput, pipes []pipe.HeadLosser, s friction.Settings) (CaseResult, error) {
	r := CaseResult{Input: in, Segments: make([]SegmentResult, len(pipes))}
	hf := make([]float64, len(pipes))
	for i, p := range pipes {
		seg := SegmentResult{Segment: in.Segments[i]}
		switch p := p.(type) {
		case *pipe.EF:
			q, err := p.VolFlow()
			if err != nil {
				return r, err
			}
			nu, err := p.KinVisc()
			if err != nil {
				return r, err
			}
			h, err := CalculateHeadloss(q.Value(), p.FlowArea().Value(), p.Length().Value(),
				p.IDiameter().Value(), p.ERoughness().Value(), nu.Value(), s)
			if err != nil {
				return r, fmt.Errorf("solver: %s: %w", p.Label, err)
			}
			seg.Headloss = h
		case *pipe.CHW:
			h, err := p.HeadLoss()
			if err != nil {
				return r, err
			}
			q, err := p.VolFlow()
			if err != nil {
				return r, err
			}
			seg.Headloss = Headloss{
				VFlow:    q.Value() / p.FlowArea().Value(),
				Re:       math.NaN(),
				Friction: math.NaN(),
				HF:       h.Value(),
			}
		default:
			hl, err := p.HeadLoss()
			if err != nil {
				return r, err
			}
			seg.Headloss = Headloss{VFlow: math.NaN(), Re: math.NaN(), Friction: math.NaN(), HF: hl.Value()}
		}
		r.Segments[i] = seg
		hf[i] = seg.HF
	}
	r.HF = floats.Sum(hf)
	return r, nil
}
