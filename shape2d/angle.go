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

package shape2d

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// AngleDefaults is the class default style of [Angle] and [RectAngle].
var AngleDefaults = style.Style{
	Color:       style.String("#000000"),
	LineWidth:   style.Float(1),
	FillOpacity: style.Float(0.4),
}

// DefaultAngleRadius is the wedge radius used when AngleParams.Radius is
// zero.
const DefaultAngleRadius = 50

// AngleParams holds the construction parameters of an [Angle].
type AngleParams struct {
	Name string

	// Point is the vertex, default (100, 100).
	Point any

	// Angle is the opening of the wedge in radians.  Positive angles open
	// anticlockwise on screen, negative angles clockwise.
	Angle float64

	// Rotate is the direction of the first ray in radians.
	Rotate float64

	// Radius is the wedge radius.  Zero selects DefaultAngleRadius.
	Radius float64

	Style style.Style
}

// Angle is a filled circular wedge marking the angle between two rays.
//
// Angle and Rotate are reduced modulo 2π, keeping their sign.
type Angle struct {
	Name   string
	Vertex vec.Vec2
	Angle  float64
	Rotate float64
	Radius float64
	Style  style.Style
}

// NewAngle returns a new angle marker.
func NewAngle(p AngleParams) (*Angle, error) {
	v, err := pointOr("shape2d.NewAngle", "point", p.Point, vec.Vec2{X: 100, Y: 100})
	if err != nil {
		return nil, err
	}
	r := p.Radius
	if r == 0 {
		r = DefaultAngleRadius
	}
	return &Angle{
		Name:   p.Name,
		Vertex: v,
		Angle:  reduceAngle(p.Angle),
		Rotate: reduceAngle(p.Rotate),
		Radius: r,
		Style:  AngleDefaults.Merge(p.Style),
	}, nil
}

func reduceAngle(a float64) float64 {
	return math.Mod(a, 2*math.Pi)
}

func (a *Angle) resolve(override style.Style) style.Resolved {
	return style.Resolve(override, a.Style, AngleDefaults)
}

// Styles returns the SVG presentation attributes of the wedge.
func (a *Angle) Styles(override style.Style, form style.Form) []svg.Attr {
	return filledStyles(a.resolve(override), form)
}

func filledStyles(s style.Resolved, form style.Form) []svg.Attr {
	return form.Attrs([]svg.Attr{
		{Name: "stroke", Value: s.Color},
		{Name: "stroke-width", Value: num(s.LineWidth)},
		{Name: "fill", Value: s.Color},
		{Name: "fill-opacity", Value: num(s.FillOpacity)},
	})
}

// PathD returns the wedge as SVG path data.
func (a *Angle) PathD() string {
	angle := reduceAngle(a.Angle)
	rot := reduceAngle(a.Rotate)
	first := mathgraph.Polar(a.Vertex, a.Radius, -rot)
	last := mathgraph.Polar(a.Vertex, a.Radius, -(angle + rot))

	var large, sweep float64
	if math.Abs(angle) > math.Pi {
		large = 1
	}
	if angle < 0 {
		sweep = 1
	}

	b := &pathBuilder{}
	b.cmd('M', a.Vertex.X, a.Vertex.Y)
	b.cmd('L', first.X, first.Y)
	b.cmd('A', a.Radius, a.Radius, 0, large, sweep, last.X, last.Y)
	b.WriteByte('Z')
	return b.String()
}

// PathElement returns the wedge as an SVG <path> element.
func (a *Angle) PathElement(override style.Style) *svg.Node {
	n := newElement("path", "Angle", a.Name, a.Styles(override, style.AttrForm))
	return n.SetAttr("d", a.PathD())
}

// Element implements the [Shape] interface.
func (a *Angle) Element(override style.Style) (*svg.Node, error) {
	return a.PathElement(override), nil
}

// Draw implements the [Shape] interface.
func (a *Angle) Draw(ctx raster.Context, override style.Style) error {
	s := a.resolve(override)
	angle := reduceAngle(a.Angle)
	rot := reduceAngle(a.Rotate)

	ctx.Save()
	ctx.BeginPath()
	ctx.SetStrokeColor(s.Color)
	ctx.SetLineWidth(s.LineWidth)
	ctx.SetFillColor(s.Color)

	ctx.MoveTo(a.Vertex.X, a.Vertex.Y)
	ctx.Arc(a.Vertex.X, a.Vertex.Y, a.Radius, -rot, -(angle + rot), angle >= 0)
	ctx.ClosePath()

	ctx.Stroke()
	ctx.SetGlobalAlpha(s.FillOpacity)
	ctx.Fill()
	ctx.Restore()

	return ctx.Err()
}
