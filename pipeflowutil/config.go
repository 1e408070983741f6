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

package pipeflowutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/pipeflow/catalog"
	"github.com/spatialmodel/pipeflow/friction"
	"github.com/spatialmodel/pipeflow/quantity"
	"github.com/spf13/cast"
)

// outputMode returns whether the legacy report format is selected.
// Legacy output is the default; requesting both formats is an error.
func outputMode(legacy, modern bool) (bool, error) {
	if legacy && modern {
		return false, fmt.Errorf("pipeflow: --legacy and --modern cannot be used together")
	}
	return !modern, nil
}

// unitsOption returns the unit system that overrides the input records,
// or nil if u is empty.
func unitsOption(u string) (*quantity.System, error) {
	u = os.ExpandEnv(u)
	if u == "" {
		return nil, nil
	}
	s, err := quantity.ParseSystem(u)
	if err != nil {
		return nil, fmt.Errorf("pipeflow: the units option needs to be traditional, si, 0, or 1, but is `%s`", u)
	}
	return &s, nil
}

// frictionSettings checks the friction iteration options.
func frictionSettings(tolerance, maxIterations interface{}) (friction.Settings, error) {
	var s friction.Settings
	var err error
	s.Tolerance, err = cast.ToFloat64E(tolerance)
	if err != nil || s.Tolerance <= 0 || s.Tolerance >= 1 {
		return s, fmt.Errorf("pipeflow: Friction.Tolerance needs to be between 0 and 1, but is `%v`", tolerance)
	}
	s.MaxIterations, err = cast.ToIntE(maxIterations)
	if err != nil || s.MaxIterations < 1 {
		return s, fmt.Errorf("pipeflow: Friction.MaxIterations needs to be a positive integer, but is `%v`", maxIterations)
	}
	return s, nil
}

// checkOutputFile makes sure that the directory of output file f exists.
// An empty f is allowed.
func checkOutputFile(f string) error {
	if f == "" {
		return nil
	}
	if _, err := os.Stat(filepath.Dir(f)); err != nil {
		return fmt.Errorf("pipeflow: the directory of output file %s doesn't exist: %v", f, err)
	}
	return nil
}

// loadCatalog returns the default catalog with any overrides in file f.
func loadCatalog(f string) (*catalog.Catalog, error) {
	if f == "" {
		return catalog.Default(), nil
	}
	r, err := os.Open(f)
	if err != nil {
		return nil, fmt.Errorf("pipeflow: opening CatalogFile: %v", err)
	}
	defer r.Close()
	return catalog.Default().LoadTOML(r)
}

// newLogger returns a logger writing messages at or above level to w.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("pipeflow: invalid LogLevel: %v", err)
	}
	log := logrus.New()
	log.Out = w
	log.Level = lvl
	return log, nil
}
