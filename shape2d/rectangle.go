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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// Quadrants in mathematical orientation, for use as
// RectAngleParams.Quadrant.
var (
	Quadrant1 = [2]float64{1, 1}
	Quadrant2 = [2]float64{-1, 1}
	Quadrant3 = [2]float64{-1, -1}
	Quadrant4 = [2]float64{1, -1}
)

// DefaultRectAngleSize is the side length used when RectAngleParams.Size
// is zero.
const DefaultRectAngleSize = 50

// RectAngleParams holds the construction parameters of a [RectAngle].
type RectAngleParams struct {
	Name string

	// Point is the corner at the vertex of the right angle, default
	// (100, 100).
	Point any

	// Size is the side length of the square.  Zero selects
	// DefaultRectAngleSize.
	Size float64

	// Quadrant selects the quadrant occupied by the square, relative to
	// Point and in mathematical orientation (y up).  Only the signs of
	// the components are used.  Nil selects Quadrant4.
	Quadrant any

	// Rotate turns the square anticlockwise about Point, in radians.
	Rotate float64

	Style style.Style
}

// RectAngle is a small filled square marking a right angle.
type RectAngle struct {
	Name  string
	Point vec.Vec2
	Size  float64

	// Quadrant holds the screen-space direction of the square's sides:
	// each component is -1, 0 or 1.
	Quadrant [2]float64

	Rotate float64
	Style  style.Style
}

// NewRectAngle returns a new right-angle marker.
func NewRectAngle(p RectAngleParams) (*RectAngle, error) {
	const op = "shape2d.NewRectAngle"
	pt, err := pointOr(op, "point", p.Point, vec.Vec2{X: 100, Y: 100})
	if err != nil {
		return nil, err
	}
	q, err := pointOr(op, "quadrant", p.Quadrant, vec.Vec2{X: Quadrant4[0], Y: Quadrant4[1]})
	if err != nil {
		return nil, err
	}
	size := p.Size
	if size == 0 {
		size = DefaultRectAngleSize
	}
	return &RectAngle{
		Name:     p.Name,
		Point:    pt,
		Size:     size,
		Quadrant: [2]float64{sign(q.X), sign(-q.Y)},
		Rotate:   reduceAngle(p.Rotate),
		Style:    AngleDefaults.Merge(p.Style),
	}, nil
}

func (r *RectAngle) resolve(override style.Style) style.Resolved {
	return style.Resolve(override, r.Style, AngleDefaults)
}

// Styles returns the SVG presentation attributes of the square.
func (r *RectAngle) Styles(override style.Style, form style.Form) []svg.Attr {
	return filledStyles(r.resolve(override), form)
}

// corners returns the three corners other than Point, before rotation.
func (r *RectAngle) corners() [3]vec.Vec2 {
	i, j := r.Quadrant[0], r.Quadrant[1]
	return [3]vec.Vec2{
		{X: i * r.Size, Y: 0},
		{X: i * r.Size, Y: j * r.Size},
		{X: 0, Y: j * r.Size},
	}
}

// PathD returns the square as SVG path data, with the rotation applied to
// the coordinates.
func (r *RectAngle) PathD() string {
	cos := math.Cos(r.Rotate)
	sin := math.Sin(-r.Rotate)

	b := &pathBuilder{}
	b.cmd('M', r.Point.X, r.Point.Y)
	for _, c := range r.corners() {
		b.cmd('L', r.Point.X+c.X*cos-c.Y*sin, r.Point.Y+c.Y*cos+c.X*sin)
	}
	b.WriteByte('Z')
	return b.String()
}

// RectAttrs returns the attributes of an SVG <rect> element, using a
// transform for the rotation.
func (r *RectAngle) RectAttrs() []svg.Attr {
	x := r.Point.X
	if r.Quadrant[0] < 0 {
		x -= r.Size
	}
	y := r.Point.Y
	if r.Quadrant[1] < 0 {
		y -= r.Size
	}
	transform := fmt.Sprintf("rotate(%s, %s, %s)",
		num(-r.Rotate*degrees), num(r.Point.X), num(r.Point.Y))
	return []svg.Attr{
		{Name: "x", Value: num(x)},
		{Name: "y", Value: num(y)},
		{Name: "width", Value: num(r.Size)},
		{Name: "height", Value: num(r.Size)},
		{Name: "transform", Value: transform},
	}
}

// PathElement returns the square as an SVG <path> element.
func (r *RectAngle) PathElement(override style.Style) *svg.Node {
	n := newElement("path", "RectAngle", r.Name, r.Styles(override, style.AttrForm))
	return n.SetAttr("d", r.PathD())
}

// RectElement returns the square as an SVG <rect> element.
func (r *RectAngle) RectElement(override style.Style) *svg.Node {
	n := newElement("rect", "RectAngle", r.Name, r.Styles(override, style.AttrForm))
	return n.SetAttrs(r.RectAttrs())
}

// Element implements the [Shape] interface.  It returns the path form.
func (r *RectAngle) Element(override style.Style) (*svg.Node, error) {
	return r.PathElement(override), nil
}

// Draw implements the [Shape] interface.
func (r *RectAngle) Draw(ctx raster.Context, override style.Style) error {
	s := r.resolve(override)

	ctx.Save()
	ctx.SetStrokeColor(s.Color)
	ctx.SetLineWidth(s.LineWidth)
	ctx.SetFillColor(s.Color)

	ctx.Translate(r.Point.X, r.Point.Y)
	ctx.Rotate(-r.Rotate)

	ctx.BeginPath()
	ctx.MoveTo(0, 0)
	for _, c := range r.corners() {
		ctx.LineTo(c.X, c.Y)
	}
	ctx.ClosePath()

	ctx.Stroke()
	ctx.SetGlobalAlpha(s.FillOpacity)
	ctx.Fill()
	ctx.Restore()

	return ctx.Err()
}
