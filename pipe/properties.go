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
	"bytes"
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/pipeflow/quantity"
)

// property is a named pipe property. set is nil for derived properties.
type property struct {
	get func() (*unit.Unit, error)
	set func(v float64) error
}

type properties map[string]property

func (ps properties) get(name string) (*unit.Unit, error) {
	p, ok := ps[name]
	if !ok {
		return nil, ps.unknown(name)
	}
	return p.get()
}

func (ps properties) set(name string, v float64) error {
	p, ok := ps[name]
	if !ok {
		return ps.unknown(name)
	}
	if p.set == nil {
		return fmt.Errorf("pipe: %s: %w", name, ErrReadOnly)
	}
	return p.set(v)
}

func (ps properties) unknown(name string) error {
	names := make([]string, 0, len(ps))
	for n := range ps {
		names = append(names, n)
	}
	sort.Strings(names)
	return fmt.Errorf("pipe: %q (valid properties are %v): %w", name, names, ErrUnknownProperty)
}

// table formats a header line and a value line holding the label and the
// named properties. Properties that cannot currently be evaluated are
// printed as "-".
func (ps properties) table(label string, headers []string) (string, error) {
	b := new(bytes.Buffer)
	w := tabwriter.NewWriter(b, 0, 8, 2, ' ', 0)
	fmt.Fprint(w, "label")
	for _, h := range headers {
		fmt.Fprintf(w, "\t%s", h)
	}
	fmt.Fprintf(w, "\n%s", label)
	for _, h := range headers {
		v, err := ps.get(h)
		switch {
		case errors.Is(err, ErrUnknownProperty):
			return "", err
		case err != nil:
			fmt.Fprint(w, "\t-")
		default:
			fmt.Fprintf(w, "\t%.6g", v)
		}
	}
	fmt.Fprintln(w)
	if err := w.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func lengthProperty(name string, v *float64, set func(float64) error) property {
	return property{
		get: func() (*unit.Unit, error) { return value(name, *v, quantity.Length) },
		set: set,
	}
}

func derived(name string, f func() float64, d unit.Dimensions) property {
	return property{get: func() (*unit.Unit, error) { return value(name, f(), d) }}
}
