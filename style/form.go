// seehuhn.de/go/mathgraph - geometric primitives for raster and vector output
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package style

import (
	"strings"

	"seehuhn.de/go/mathgraph/svg"
)

// Form selects how style attribute names are spelled.
type Form int

const (
	// AttrForm uses SVG presentation attribute names, like "stroke-width".
	AttrForm Form = iota

	// PropForm uses camelCase property names, like "strokeWidth", as
	// expected by frameworks which bind style properties directly.
	PropForm
)

func (f Form) String() string {
	switch f {
	case AttrForm:
		return "attr"
	case PropForm:
		return "prop"
	default:
		return "Form(?)"
	}
}

// Key returns the attribute name in form f.  Names must be given in
// hyphenated form.
func (f Form) Key(name string) string {
	if f != PropForm || !strings.Contains(name, "-") {
		return name
	}
	b := &strings.Builder{}
	upper := false
	for _, c := range name {
		if c == '-' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(c)
	}
	return b.String()
}

// Attrs returns a copy of attrs with every name converted to form f.
func (f Form) Attrs(attrs []svg.Attr) []svg.Attr {
	res := make([]svg.Attr, len(attrs))
	for i, a := range attrs {
		res[i] = svg.Attr{Name: f.Key(a.Name), Value: a.Value}
	}
	return res
}

// Lookup returns the value of the attribute called name.
func Lookup(attrs []svg.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
