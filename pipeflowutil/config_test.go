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
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/pipeflow/friction"
	"github.com/spatialmodel/pipeflow/quantity"
)

func TestOutputMode(t *testing.T) {
	for _, test := range []struct {
		legacy, modern, want, err bool
	}{
		{false, false, true, false},
		{true, false, true, false},
		{false, true, false, false},
		{true, true, false, true},
	} {
		have, err := outputMode(test.legacy, test.modern)
		if (err != nil) != test.err {
			t.Errorf("legacy=%v modern=%v: error %v", test.legacy, test.modern, err)
			continue
		}
		if err == nil && have != test.want {
			t.Errorf("legacy=%v modern=%v: have %v, want %v", test.legacy, test.modern, have, test.want)
		}
	}
}

func TestUnitsOption(t *testing.T) {
	s, err := unitsOption("")
	if err != nil || s != nil {
		t.Errorf("empty: %v, %v", s, err)
	}
	s, err = unitsOption("1")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != quantity.SI.Name {
		t.Errorf("have %s, want si", s.Name)
	}
	if _, err = unitsOption("furlongs"); err == nil {
		t.Error("expected an error")
	}
}

func TestFrictionSettings(t *testing.T) {
	s, err := frictionSettings("1e-8", "20")
	if err != nil {
		t.Fatal(err)
	}
	if s != (friction.Settings{Tolerance: 1e-8, MaxIterations: 20}) {
		t.Errorf("have %+v", s)
	}
	for _, v := range [][2]interface{}{{0.0, 50}, {1.5, 50}, {"x", 50}, {1e-10, 0}, {1e-10, "many"}} {
		if _, err := frictionSettings(v[0], v[1]); err == nil {
			t.Errorf("%v: expected an error", v)
		}
	}
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("debug", ioutil.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if log.Level != logrus.DebugLevel {
		t.Errorf("have level %v", log.Level)
	}
	if _, err := newLogger("loud", ioutil.Discard); err == nil {
		t.Error("expected an error")
	}
}

func TestCheckOutputFile(t *testing.T) {
	if err := checkOutputFile(""); err != nil {
		t.Error(err)
	}
	if err := checkOutputFile("out.txt"); err != nil {
		t.Error(err)
	}
	if err := checkOutputFile("no/such/dir/out.txt"); err == nil {
		t.Error("expected an error")
	}
}
