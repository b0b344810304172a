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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// ProjectionLineDefaults is the default style of the projection lines of a
// [PointWithProjections].
var ProjectionLineDefaults = style.Style{
	Color:     style.String("#000000"),
	LineWidth: style.Float(1),
	LineDash:  style.Dash(5),
}

// ProjectionParams holds the construction parameters of a
// [PointWithProjections].
type ProjectionParams struct {
	Name string

	// Point is the projected point, default (100, 100).
	Point any

	// Origin is the device position of the coordinate origin, default
	// (0, 0).
	Origin any

	// Radius is the radius of all three points.  Zero selects
	// DefaultPointRadius.
	Radius float64

	PointStyle style.Style
	LineStyle  style.Style
}

// PointWithProjections is a point together with its projections onto the
// two coordinate axes and dashed lines connecting them.
//
// The children satisfy
//
//	PointX.Center == (point.X, origin.Y)
//	PointY.Center == (origin.X, point.Y)
//	LineX runs from (point.X, origin.Y) to point
//	LineY runs from (origin.X, point.Y) to point
//
// Every call to Update re-establishes these relations.  The children may
// be inspected, but their geometry must only be changed through Update.
type PointWithProjections struct {
	Name string

	Point  *Point
	PointX *Point
	PointY *Point
	LineX  *Line
	LineY  *Line

	pos, origin           vec.Vec2
	pointStyle, lineStyle style.Style
}

// NewPointWithProjections returns a new point with projections.
func NewPointWithProjections(p ProjectionParams) (*PointWithProjections, error) {
	const op = "shape2d.NewPointWithProjections"
	pos, err := pointOr(op, "point", p.Point, vec.Vec2{X: 100, Y: 100})
	if err != nil {
		return nil, err
	}
	origin, err := pointOr(op, "origin", p.Origin, vec.Vec2{})
	if err != nil {
		return nil, err
	}
	radius := p.Radius
	if radius == 0 {
		radius = DefaultPointRadius
	}

	w := &PointWithProjections{
		Name:       p.Name,
		pos:        pos,
		origin:     origin,
		pointStyle: PointDefaults.Merge(p.PointStyle),
		lineStyle:  ProjectionLineDefaults.Merge(p.LineStyle),
	}
	newPoint := func(suffix string) *Point {
		return &Point{Name: w.childName(suffix), Radius: radius, Style: w.pointStyle.Clone()}
	}
	newLine := func(suffix string) *Line {
		return &Line{Name: w.childName(suffix), Style: w.lineStyle.Clone()}
	}
	w.Point = newPoint("point")
	w.PointX = newPoint("point-x")
	w.PointY = newPoint("point-y")
	w.LineX = newLine("line-x")
	w.LineY = newLine("line-y")
	w.layout()
	return w, nil
}

func (w *PointWithProjections) childName(suffix string) string {
	if w.Name == "" {
		return ""
	}
	return w.Name + "-" + suffix
}

// layout places the children according to pos and origin.
func (w *PointWithProjections) layout() {
	px := vec.Vec2{X: w.pos.X, Y: w.origin.Y}
	py := vec.Vec2{X: w.origin.X, Y: w.pos.Y}

	w.Point.Center = w.pos
	w.PointX.Center = px
	w.PointY.Center = py
	w.LineX.Start, w.LineX.End = px, w.pos
	w.LineY.Start, w.LineY.End = py, w.pos
}

// Position returns the projected point.
func (w *PointWithProjections) Position() vec.Vec2 {
	return w.pos
}

// Origin returns the device position of the coordinate origin.
func (w *PointWithProjections) Origin() vec.Vec2 {
	return w.origin
}

// ProjectionUpdate lists the fields changed by
// [PointWithProjections.Update].  Nil points and a zero radius are left
// unchanged.
type ProjectionUpdate struct {
	Point  any
	Origin any
	Radius float64
}

// Update moves the point and the origin, and changes the radius of the
// three points.  All inputs are validated before any child is changed.
func (w *PointWithProjections) Update(u ProjectionUpdate) error {
	const op = "shape2d.PointWithProjections.Update"
	pos, err := pointOr(op, "point", u.Point, w.pos)
	if err != nil {
		return err
	}
	origin, err := pointOr(op, "origin", u.Origin, w.origin)
	if err != nil {
		return err
	}

	w.pos, w.origin = pos, origin
	w.layout()
	if u.Radius != 0 {
		for _, p := range w.points() {
			p.Radius = u.Radius
		}
	}
	return nil
}

func (w *PointWithProjections) points() []*Point {
	return []*Point{w.Point, w.PointX, w.PointY}
}

func (w *PointWithProjections) lines() []*Line {
	return []*Line{w.LineX, w.LineY}
}

// PointStyle returns the style shared by the three points.
func (w *PointWithProjections) PointStyle() style.Style {
	return w.pointStyle.Clone()
}

// LineStyle returns the style shared by the two lines.
func (w *PointWithProjections) LineStyle() style.Style {
	return w.lineStyle.Clone()
}

// SetPointStyle merges patch into the style of the three points.
func (w *PointWithProjections) SetPointStyle(patch style.Style) {
	w.pointStyle = w.pointStyle.Merge(patch)
	for _, p := range w.points() {
		p.Style = p.Style.Merge(patch)
	}
}

// SetLineStyle merges patch into the style of the two lines.
func (w *PointWithProjections) SetLineStyle(patch style.Style) {
	w.lineStyle = w.lineStyle.Merge(patch)
	for _, l := range w.lines() {
		l.Style = l.Style.Merge(patch)
	}
}

// ProjectionStyles holds separate style overrides for the points and the
// lines of a [PointWithProjections].
type ProjectionStyles struct {
	Point style.Style
	Line  style.Style

	// UseCircle and UseLine select <circle> and <line> elements instead
	// of <path> elements.
	UseCircle bool
	UseLine   bool
}

// ProjectionPaths holds the SVG path data of the five children.
type ProjectionPaths struct {
	Point, PointX, PointY string
	LineX, LineY          string
}

// PathD returns the SVG path data of all children.
func (w *PointWithProjections) PathD() ProjectionPaths {
	return ProjectionPaths{
		Point:  w.Point.PathD(),
		PointX: w.PointX.PathD(),
		PointY: w.PointY.PathD(),
		LineX:  w.LineX.PathD(),
		LineY:  w.LineY.PathD(),
	}
}

// ProjectionAttrs holds the native SVG geometry attributes of the five
// children.
type ProjectionAttrs struct {
	Point, PointX, PointY []svg.Attr
	LineX, LineY          []svg.Attr
}

// Attrs returns the <circle> and <line> geometry attributes of all
// children.
func (w *PointWithProjections) Attrs() ProjectionAttrs {
	return ProjectionAttrs{
		Point:  w.Point.CircleAttrs(),
		PointX: w.PointX.CircleAttrs(),
		PointY: w.PointY.CircleAttrs(),
		LineX:  w.LineX.LineAttrs(),
		LineY:  w.LineY.LineAttrs(),
	}
}

// ElementWith returns an SVG group containing the children in drawing
// order.
func (w *PointWithProjections) ElementWith(s ProjectionStyles) *svg.Node {
	g := newElement("g", "Point-with-projections", w.Name, nil)
	for _, l := range w.lines() {
		if s.UseLine {
			g.Append(l.LineElement(s.Line))
		} else {
			g.Append(l.PathElement(s.Line))
		}
	}
	for _, p := range w.points() {
		if s.UseCircle {
			g.Append(p.CircleElement(s.Point))
		} else {
			g.Append(p.PathElement(s.Point))
		}
	}
	return g
}

// Element implements the [Shape] interface.  The override applies to all
// children, which are given as <path> elements.
func (w *PointWithProjections) Element(override style.Style) (*svg.Node, error) {
	return w.ElementWith(ProjectionStyles{Point: override, Line: override}), nil
}

// DrawWith draws the two lines, followed by the three points.
func (w *PointWithProjections) DrawWith(ctx raster.Context, s ProjectionStyles) error {
	for _, l := range w.lines() {
		if err := l.Draw(ctx, s.Line); err != nil {
			return err
		}
	}
	for _, p := range w.points() {
		if err := p.Draw(ctx, s.Point); err != nil {
			return err
		}
	}
	return nil
}

// Draw implements the [Shape] interface.  The override applies to all
// children.
func (w *PointWithProjections) Draw(ctx raster.Context, override style.Style) error {
	return w.DrawWith(ctx, ProjectionStyles{Point: override, Line: override})
}
