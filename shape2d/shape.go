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

// Package shape2d implements the 2D primitives: points, lines, angles,
// right-angle markers, arrows and function plots.
//
// Every primitive can be rendered in two ways which always describe the
// same geometry: drawn immediately on a [raster.Context], or converted
// into SVG data.  The SVG side comes in two flavours, path data ("PathD"
// methods) and native element attributes ("Attrs" methods), each also
// available as a detached [svg.Node].
//
// Primitives are plain mutable values without locking.  Fields without
// derived state may be assigned directly; primitives with cached geometry
// (Arrow, Plot, AcotPlot, LinePointWithAngle, PointWithProjections) must
// be changed through their Update methods.
package shape2d

import (
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// Shape is implemented by all 2D primitives.
type Shape interface {
	// Draw renders the shape on ctx.  Properties set in override take
	// precedence over the stored style for this call only.  Draw restores
	// all context state it changes.
	Draw(ctx raster.Context, override style.Style) error

	// Element returns a detached SVG node for the shape.
	Element(override style.Style) (*svg.Node, error)
}

var (
	_ Shape = (*Point)(nil)
	_ Shape = (*Line)(nil)
	_ Shape = (*LinePointWithAngle)(nil)
	_ Shape = (*Angle)(nil)
	_ Shape = (*RectAngle)(nil)
	_ Shape = (*Arrow)(nil)
	_ Shape = (*Plot)(nil)
	_ Shape = (*AcotPlot)(nil)
	_ Shape = (*PointWithProjections)(nil)
)

// pointOr normalises v, or returns def if v is nil.
func pointOr(op, field string, v any, def vec.Vec2) (vec.Vec2, error) {
	if v == nil {
		return def, nil
	}
	p, err := mathgraph.Vec2Of(v)
	if err != nil {
		return vec.Vec2{}, mathgraph.Wrap(op, field, err)
	}
	return p, nil
}

// rangeOr normalises v, or returns def if v is nil.
func rangeOr(op, field string, v any, def mathgraph.Range) (mathgraph.Range, error) {
	if v == nil {
		return def, nil
	}
	r, err := mathgraph.RangeOf(v)
	if err != nil {
		return mathgraph.Range{}, mathgraph.Wrap(op, field, err)
	}
	return r, nil
}

// pathBuilder writes SVG path data.
type pathBuilder struct {
	strings.Builder
}

// cmd writes a command letter followed by its arguments.  Arguments are
// separated by single spaces.
func (b *pathBuilder) cmd(c byte, args ...float64) {
	b.WriteByte(c)
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(svg.Num(a))
	}
}

// newElement returns a node with a class, the style attributes and a
// data-name.  Empty values are left out.
func newElement(tag, class, name string, styles []svg.Attr) *svg.Node {
	n := svg.NewElement(tag).SetAttr("class", class)
	n.SetAttrs(styles)
	n.SetAttrs([]svg.Attr{{Name: "data-name", Value: name}})
	return n
}

func num(v float64) string {
	return svg.Num(v)
}

// sign returns -1, 0 or 1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

const degrees = 180 / math.Pi

// Bool returns a pointer to v, for optional boolean fields.
func Bool(v bool) *bool {
	return &v
}
