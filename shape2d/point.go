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

	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// PointDefaults is the class default style of a [Point].
var PointDefaults = style.Style{
	Color:       style.String("#000000"),
	BorderColor: style.String("#ffffff"),
	LineWidth:   style.Float(1),
	FillOpacity: style.Float(1),
}

// DefaultPointRadius is the radius used when PointParams.Radius is zero.
const DefaultPointRadius = 4

// pointBorderInset is subtracted from the line width in the vector forms,
// where the border is painted centred on the circle outline.
const pointBorderInset = 1

// PointParams holds the construction parameters of a [Point].
type PointParams struct {
	Name string

	// Point is the centre in device coordinates, given as a vec.Vec2,
	// a [2]float64, a []float64 or a map with keys "x" and "y".
	// The default is (100, 100).
	Point any

	// Radius is the disc radius in device units.  Zero selects
	// DefaultPointRadius.
	Radius float64

	Style style.Style
}

// Point is a filled disc with a border.
type Point struct {
	Name   string
	Center vec.Vec2
	Radius float64

	// Style holds the class defaults merged with the construction style.
	Style style.Style
}

// NewPoint returns a new point.
func NewPoint(p PointParams) (*Point, error) {
	c, err := pointOr("shape2d.NewPoint", "point", p.Point, vec.Vec2{X: 100, Y: 100})
	if err != nil {
		return nil, err
	}
	r := p.Radius
	if r == 0 {
		r = DefaultPointRadius
	}
	return &Point{
		Name:   p.Name,
		Center: c,
		Radius: r,
		Style:  PointDefaults.Merge(p.Style),
	}, nil
}

func (p *Point) resolve(override style.Style) style.Resolved {
	return style.Resolve(override, p.Style, PointDefaults)
}

// Styles returns the SVG presentation attributes of the point.
func (p *Point) Styles(override style.Style, form style.Form) []svg.Attr {
	s := p.resolve(override)
	return form.Attrs([]svg.Attr{
		{Name: "stroke", Value: s.BorderColor},
		{Name: "stroke-width", Value: num(s.LineWidth - pointBorderInset)},
		{Name: "fill", Value: s.Color},
		{Name: "fill-opacity", Value: num(s.FillOpacity)},
	})
}

// PathD returns the outline of the point as SVG path data, made of two
// relative half-circle arcs.
func (p *Point) PathD() string {
	b := &pathBuilder{}
	r := p.Radius
	b.cmd('M', p.Center.X, p.Center.Y)
	b.cmd('m', r, 0)
	b.cmd('a', r, r, 0, 0, 0, -2*r, 0)
	b.cmd('a', r, r, 0, 0, 0, 2*r, 0)
	return b.String()
}

// CircleAttrs returns the geometry attributes of an SVG <circle> element.
func (p *Point) CircleAttrs() []svg.Attr {
	return []svg.Attr{
		{Name: "cx", Value: num(p.Center.X)},
		{Name: "cy", Value: num(p.Center.Y)},
		{Name: "r", Value: num(p.Radius)},
	}
}

// PathElement returns the point as an SVG <path> element.
func (p *Point) PathElement(override style.Style) *svg.Node {
	n := newElement("path", "Point", p.Name, p.Styles(override, style.AttrForm))
	return n.SetAttr("d", p.PathD())
}

// CircleElement returns the point as an SVG <circle> element.
func (p *Point) CircleElement(override style.Style) *svg.Node {
	n := newElement("circle", "Point", p.Name, p.Styles(override, style.AttrForm))
	return n.SetAttrs(p.CircleAttrs())
}

// Element implements the [Shape] interface.  It returns the path form.
func (p *Point) Element(override style.Style) (*svg.Node, error) {
	return p.PathElement(override), nil
}

// Draw implements the [Shape] interface.
func (p *Point) Draw(ctx raster.Context, override style.Style) error {
	s := p.resolve(override)

	ctx.Save()
	ctx.SetStrokeColor(s.BorderColor)
	ctx.SetLineWidth(s.LineWidth)
	ctx.SetFillColor(s.Color)

	ctx.BeginPath()
	ctx.Arc(p.Center.X, p.Center.Y, p.Radius, 0, 2*math.Pi, true)
	ctx.ClosePath()

	ctx.Stroke()
	ctx.SetGlobalAlpha(s.FillOpacity)
	ctx.Fill()
	ctx.Restore()

	return ctx.Err()
}
