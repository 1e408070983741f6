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

// Package friction computes Darcy friction factors and hydraulic head loss
// in full circular pipes. All quantities are in SI units.
package friction

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// Gravity is standard gravitational acceleration [m/s²].
	Gravity = 9.80665

	// LaminarLimit is the Reynolds number at or below which flow is
	// treated as laminar and the Colebrook-White relation does not apply.
	LaminarLimit = 2100.0

	// MaxRelativeRoughness is the largest accepted ratio of absolute
	// roughness to inner diameter.
	MaxRelativeRoughness = 0.1

	// MaxHazenWilliams is the largest accepted Hazen-Williams coefficient.
	MaxHazenWilliams = 200.0
)

var (
	// ErrLaminar is returned when a friction factor is requested for a
	// Reynolds number in the laminar range.
	ErrLaminar = errors.New("flow is not turbulent")

	// ErrNoConvergence is returned when the Colebrook-White iteration does
	// not converge within the iteration cap.
	ErrNoConvergence = errors.New("friction factor did not converge")

	// ErrRoughness is returned for relative roughness outside of
	// [0, MaxRelativeRoughness].
	ErrRoughness = errors.New("relative roughness out of range")

	// ErrCoefficient is returned for Hazen-Williams coefficients outside
	// of (0, MaxHazenWilliams].
	ErrCoefficient = errors.New("Hazen-Williams coefficient out of range")
)

// Settings control the Colebrook-White iteration.
type Settings struct {
	// Tolerance is the relative change in 1/√f between iterations
	// below which the solution is considered converged.
	Tolerance float64

	// MaxIterations is the maximum number of Newton steps.
	MaxIterations int
}

// DefaultSettings are the settings used when none are given.
var DefaultSettings = Settings{
	Tolerance:     1.0e-10,
	MaxIterations: 50,
}

// orDefault fills zero fields of s from DefaultSettings.
func (s Settings) orDefault() Settings {
	if s.Tolerance <= 0 {
		s.Tolerance = DefaultSettings.Tolerance
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = DefaultSettings.MaxIterations
	}
	return s
}

// Reynolds returns the Reynolds number of flow with mean velocity v [m/s]
// in a pipe with inner diameter d [m] and a fluid with kinematic
// viscosity nu [m²/s].
func Reynolds(v, d, nu float64) float64 {
	return v * d / nu
}

// CheckRelativeRoughness returns ErrRoughness if r is not within
// [0, MaxRelativeRoughness]. The upper bound allows for rounding in r.
func CheckRelativeRoughness(r float64) error {
	if !(r >= 0 && r <= MaxRelativeRoughness*(1+1.0e-12)) {
		return fmt.Errorf("friction: relative roughness %g is not within [0, %g]: %w",
			r, MaxRelativeRoughness, ErrRoughness)
	}
	return nil
}

// CheckHazenWilliams returns ErrCoefficient if c is not within
// (0, MaxHazenWilliams].
func CheckHazenWilliams(c float64) error {
	if !(c > 0 && c <= MaxHazenWilliams) {
		return fmt.Errorf("friction: Hazen-Williams coefficient %g is not within (0, %g]: %w",
			c, MaxHazenWilliams, ErrCoefficient)
	}
	return nil
}

// SwameeJain returns the explicit Swamee-Jain approximation of the
// Colebrook-White friction factor for Reynolds number re and relative
// roughness r.
func SwameeJain(re, r float64) float64 {
	l := math.Log10(r/3.7 + 5.74/math.Pow(re, 0.9))
	return 0.25 / (l * l)
}

// Colebrook returns the Darcy friction factor satisfying the
// Colebrook-White relation
//
//	1/√f = -2 log10(r/3.7 + 2.51/(Re √f))
//
// for Reynolds number re and relative roughness r. The relation is solved
// by Newton iteration on x = 1/√f, starting from the Swamee-Jain
// approximation. Zero-valued settings are replaced by DefaultSettings.
func Colebrook(re, r float64, s Settings) (float64, error) {
	if math.IsNaN(re) || math.IsInf(re, 0) {
		return math.NaN(), fmt.Errorf("friction: invalid Reynolds number %g", re)
	}
	if re <= LaminarLimit {
		return math.NaN(), fmt.Errorf("friction: Reynolds number %g is at or below %g: %w",
			re, LaminarLimit, ErrLaminar)
	}
	if err := CheckRelativeRoughness(r); err != nil {
		return math.NaN(), err
	}
	s = s.orDefault()

	x := 1 / math.Sqrt(SwameeJain(re, r))
	for i := 0; i < s.MaxIterations; i++ {
		a := r/3.7 + 2.51*x/re
		fx := x + 2*math.Log10(a)
		dfx := 1 + 2/math.Ln10*(2.51/re)/a
		xNew := x - fx/dfx
		if floats.EqualWithinRel(xNew, x, s.Tolerance) {
			return 1 / (xNew * xNew), nil
		}
		x = xNew
	}
	return math.NaN(), fmt.Errorf("friction: Re=%g, ε/D=%g after %d iterations: %w",
		re, r, s.MaxIterations, ErrNoConvergence)
}

// DarcyHeadLoss returns the Darcy-Weisbach head loss [m] for friction
// factor f in a pipe of length l [m] and inner diameter d [m] carrying flow
// at mean velocity v [m/s].
func DarcyHeadLoss(f, l, d, v float64) float64 {
	return f * l / d * v * v / (2 * Gravity)
}

// HazenWilliamsHeadLoss returns the Hazen-Williams head loss [m] for
// volumetric flow q [m³/s] in a pipe with coefficient c, length l [m], and
// inner diameter d [m].
func HazenWilliamsHeadLoss(q, c, l, d float64) (float64, error) {
	if err := CheckHazenWilliams(c); err != nil {
		return math.NaN(), err
	}
	if q < 0 || !(d > 0) || l < 0 {
		return math.NaN(), fmt.Errorf("friction: invalid Hazen-Williams input q=%g, l=%g, d=%g", q, l, d)
	}
	return 10.67 * l * math.Pow(q, 1.852) / (math.Pow(c, 1.852) * math.Pow(d, 4.8704)), nil
}
