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

// Package style implements per-shape style records with class defaults,
// transient per-call overrides and serialisation to SVG attributes.
//
// A property is unset when its pointer (or, for LineDash, its slice) is
// nil.  An explicitly set zero value is a real value: an override with
// LineWidth 0 draws with width 0.
package style

import (
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/svg"
)

// Style is a sparse set of style properties.
type Style struct {
	Color       *string
	BorderColor *string
	LineWidth   *float64
	LineDash    []float64 // nil is unset, an empty slice is a solid line
	Opacity     *float64
	FillOpacity *float64
}

// String returns a pointer to s, for use in Style literals.
func String(s string) *string {
	return &s
}

// Float returns a pointer to v, for use in Style literals.
func Float(v float64) *float64 {
	return &v
}

// Dash returns a set LineDash value.  Without arguments the result is a
// solid line, not an unset property.
func Dash(d ...float64) []float64 {
	if d == nil {
		return []float64{}
	}
	return d
}

// Clone returns a copy of s which shares no storage with s.
func (s Style) Clone() Style {
	if s.Color != nil {
		s.Color = String(*s.Color)
	}
	if s.BorderColor != nil {
		s.BorderColor = String(*s.BorderColor)
	}
	if s.LineWidth != nil {
		s.LineWidth = Float(*s.LineWidth)
	}
	if s.LineDash != nil {
		s.LineDash = append([]float64{}, s.LineDash...)
	}
	if s.Opacity != nil {
		s.Opacity = Float(*s.Opacity)
	}
	if s.FillOpacity != nil {
		s.FillOpacity = Float(*s.FillOpacity)
	}
	return s
}

// Merge returns a copy of s where every property set in patch replaces
// the value from s.  The result shares no storage with s or patch.
func (s Style) Merge(patch Style) Style {
	s = s.Clone()
	if patch.Color != nil {
		s.Color = String(*patch.Color)
	}
	if patch.BorderColor != nil {
		s.BorderColor = String(*patch.BorderColor)
	}
	if patch.LineWidth != nil {
		s.LineWidth = Float(*patch.LineWidth)
	}
	if patch.LineDash != nil {
		s.LineDash = append([]float64{}, patch.LineDash...)
	}
	if patch.Opacity != nil {
		s.Opacity = Float(*patch.Opacity)
	}
	if patch.FillOpacity != nil {
		s.FillOpacity = Float(*patch.FillOpacity)
	}
	return s
}

// IsZero reports whether no property of s is set.
func (s Style) IsZero() bool {
	return s.Color == nil && s.BorderColor == nil && s.LineWidth == nil &&
		s.LineDash == nil && s.Opacity == nil && s.FillOpacity == nil
}

// Set assigns a single property by name.  Names are the camelCase
// property names: color, borderColor, lineWidth, lineDash, opacity and
// fillOpacity.  Colors take a string, lineDash a []float64 and the other
// properties a float64.
func (s *Style) Set(name string, value any) error {
	switch name {
	case "color", "borderColor":
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("style %s: %T is not a string: %w", name, value, mathgraph.ErrInvalidGeometryInput)
		}
		if name == "color" {
			s.Color = String(v)
		} else {
			s.BorderColor = String(v)
		}
	case "lineWidth", "opacity", "fillOpacity":
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("style %s: %T is not a number: %w", name, value, mathgraph.ErrInvalidGeometryInput)
		}
		switch name {
		case "lineWidth":
			s.LineWidth = Float(v)
		case "opacity":
			s.Opacity = Float(v)
		default:
			s.FillOpacity = Float(v)
		}
	case "lineDash":
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("style %s: %T is not a number list: %w", name, value, mathgraph.ErrInvalidGeometryInput)
		}
		s.LineDash = Dash(slices.Clone(v)...)
	default:
		return fmt.Errorf("unknown style property %q: %w", name, mathgraph.ErrInvalidGeometryInput)
	}
	return nil
}

// Resolved is a style with every property present.
type Resolved struct {
	Color       string
	BorderColor string
	LineWidth   float64
	LineDash    []float64
	Opacity     float64
	FillOpacity float64
}

// Resolve looks up every property first in override, then in stored and
// finally in defaults.  Properties missing from all three resolve to the
// zero value, except Opacity and FillOpacity which resolve to 1.
func Resolve(override, stored, defaults Style) Resolved {
	res := Resolved{Opacity: 1, FillOpacity: 1}
	for _, s := range []Style{defaults, stored, override} {
		if s.Color != nil {
			res.Color = *s.Color
		}
		if s.BorderColor != nil {
			res.BorderColor = *s.BorderColor
		}
		if s.LineWidth != nil {
			res.LineWidth = *s.LineWidth
		}
		if s.LineDash != nil {
			res.LineDash = s.LineDash
		}
		if s.Opacity != nil {
			res.Opacity = *s.Opacity
		}
		if s.FillOpacity != nil {
			res.FillOpacity = *s.FillOpacity
		}
	}
	res.LineDash = slices.Clone(res.LineDash)
	return res
}

// DashArray formats a dash pattern as an SVG stroke-dasharray value.
// A solid line gives the empty string.
func DashArray(dash []float64) string {
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = svg.Num(d)
	}
	return strings.Join(parts, " ")
}
