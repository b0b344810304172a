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

// LineDefaults is the class default style of a [Line].
var LineDefaults = style.Style{
	Color:     style.String("#000000"),
	LineWidth: style.Float(1),
	LineDash:  style.Dash(),
}

// LineParams holds the construction parameters of a [Line].
type LineParams struct {
	Name string

	// Start and End are the end points in device coordinates, in any
	// form accepted by mathgraph.Vec2Of.  The defaults are (100, 100) and
	// (300, 100).
	Start any
	End   any

	Style style.Style
}

// Line is a straight, possibly dashed, line segment.
type Line struct {
	Name  string
	Start vec.Vec2
	End   vec.Vec2
	Style style.Style
}

// NewLine returns a new line segment.
func NewLine(p LineParams) (*Line, error) {
	const op = "shape2d.NewLine"
	start, err := pointOr(op, "start", p.Start, vec.Vec2{X: 100, Y: 100})
	if err != nil {
		return nil, err
	}
	end, err := pointOr(op, "end", p.End, vec.Vec2{X: 300, Y: 100})
	if err != nil {
		return nil, err
	}
	return &Line{
		Name:  p.Name,
		Start: start,
		End:   end,
		Style: LineDefaults.Merge(p.Style),
	}, nil
}

func (l *Line) resolve(override style.Style) style.Resolved {
	return style.Resolve(override, l.Style, LineDefaults)
}

// Styles returns the SVG presentation attributes of the line.
func (l *Line) Styles(override style.Style, form style.Form) []svg.Attr {
	return lineStyles(l.resolve(override), form)
}

func lineStyles(s style.Resolved, form style.Form) []svg.Attr {
	return form.Attrs([]svg.Attr{
		{Name: "stroke", Value: s.Color},
		{Name: "stroke-width", Value: num(s.LineWidth)},
		{Name: "stroke-dasharray", Value: style.DashArray(s.LineDash)},
		{Name: "fill", Value: "none"},
	})
}

// PathD returns the segment as SVG path data.
func (l *Line) PathD() string {
	b := &pathBuilder{}
	b.cmd('M', l.Start.X, l.Start.Y)
	b.cmd('L', l.End.X, l.End.Y)
	return b.String()
}

// LineAttrs returns the geometry attributes of an SVG <line> element.
func (l *Line) LineAttrs() []svg.Attr {
	return []svg.Attr{
		{Name: "x1", Value: num(l.Start.X)},
		{Name: "y1", Value: num(l.Start.Y)},
		{Name: "x2", Value: num(l.End.X)},
		{Name: "y2", Value: num(l.End.Y)},
	}
}

// PathElement returns the segment as an SVG <path> element.
func (l *Line) PathElement(override style.Style) *svg.Node {
	n := newElement("path", "Line", l.Name, l.Styles(override, style.AttrForm))
	return n.SetAttr("d", l.PathD())
}

// LineElement returns the segment as an SVG <line> element.
func (l *Line) LineElement(override style.Style) *svg.Node {
	n := newElement("line", "Line", l.Name, l.Styles(override, style.AttrForm))
	return n.SetAttrs(l.LineAttrs())
}

// Element implements the [Shape] interface.  It returns the path form.
func (l *Line) Element(override style.Style) (*svg.Node, error) {
	return l.PathElement(override), nil
}

// Draw implements the [Shape] interface.
func (l *Line) Draw(ctx raster.Context, override style.Style) error {
	s := l.resolve(override)

	ctx.Save()
	ctx.SetStrokeColor(s.Color)
	ctx.SetLineWidth(s.LineWidth)
	ctx.SetLineDash(s.LineDash)

	ctx.BeginPath()
	ctx.MoveTo(l.Start.X, l.Start.Y)
	ctx.LineTo(l.End.X, l.End.Y)
	ctx.Stroke()
	ctx.Restore()

	return ctx.Err()
}

// DefaultSegmentLength is the length of a [LinePointWithAngle] when
// LinePointWithAngleParams.Length is zero.
const DefaultSegmentLength = 200

// LinePointWithAngleParams holds the construction parameters of a
// [LinePointWithAngle].
type LinePointWithAngleParams struct {
	Name string

	// Point is the anchor point, default (100, 100).
	Point any

	// Angle is the direction in radians, measured anticlockwise on
	// screen.
	Angle float64

	// Length is the segment length.  Zero selects DefaultSegmentLength.
	Length float64

	// Center places the anchor in the middle of the segment instead of at
	// its start.
	Center bool

	Style style.Style
}

// LinePointWithAngle is a line segment given by an anchor point, a
// direction and a length.
//
// Start and End are derived from the other fields.  After changing
// Anchor, Angle, Length or Centered, call Update to re-derive them.
type LinePointWithAngle struct {
	Line

	Anchor   vec.Vec2
	Angle    float64
	Length   float64
	Centered bool
}

// NewLinePointWithAngle returns a new segment through the given point.
func NewLinePointWithAngle(p LinePointWithAngleParams) (*LinePointWithAngle, error) {
	anchor, err := pointOr("shape2d.NewLinePointWithAngle", "point", p.Point, vec.Vec2{X: 100, Y: 100})
	if err != nil {
		return nil, err
	}
	length := p.Length
	if length == 0 {
		length = DefaultSegmentLength
	}
	l := &LinePointWithAngle{
		Line: Line{
			Name:  p.Name,
			Style: LineDefaults.Merge(p.Style),
		},
		Anchor:   anchor,
		Angle:    p.Angle,
		Length:   length,
		Centered: p.Center,
	}
	l.derive()
	return l, nil
}

// LinePointWithAngleUpdate lists the fields changed by
// [LinePointWithAngle.Update].  Nil fields are left unchanged.
type LinePointWithAngleUpdate struct {
	Point  any
	Angle  *float64
	Length *float64
	Center *bool
}

// Update changes the given fields and re-derives the end points.  If the
// new point is malformed, l is left unchanged.
func (l *LinePointWithAngle) Update(u LinePointWithAngleUpdate) error {
	anchor, err := pointOr("shape2d.LinePointWithAngle.Update", "point", u.Point, l.Anchor)
	if err != nil {
		return err
	}
	l.Anchor = anchor
	if u.Angle != nil {
		l.Angle = *u.Angle
	}
	if u.Length != nil {
		l.Length = *u.Length
	}
	if u.Center != nil {
		l.Centered = *u.Center
	}
	l.derive()
	return nil
}

func (l *LinePointWithAngle) derive() {
	dir := vec.Vec2{X: math.Cos(-l.Angle), Y: math.Sin(-l.Angle)}
	if l.Centered {
		half := dir.Mul(l.Length / 2)
		l.Start = l.Anchor.Sub(half)
		l.End = l.Anchor.Add(half)
	} else {
		l.Start = l.Anchor
		l.End = l.Anchor.Add(dir.Mul(l.Length))
	}
}
