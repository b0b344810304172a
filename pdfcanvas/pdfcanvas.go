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

// Package pdfcanvas implements [raster.Context] on a PDF page.
//
// Colours are converted to DeviceGray.  PDF pages have no global alpha;
// translucent colours are mixed with the white paper instead.
package pdfcanvas

import (
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/raster"
)

// Writer is the subset of the PDF content stream operators used by
// [Canvas].  It is implemented by the pages returned from
// seehuhn.de/go/pdf/document.
type Writer interface {
	SetFillColor(pdfcolor.Color)
	SetStrokeColor(pdfcolor.Color)
	SetLineWidth(float64)
	SetLineCap(graphics.LineCapStyle)
	SetLineJoin(graphics.LineJoinStyle)
	SetMiterLimit(float64)
	SetLineDash(pattern []float64, phase float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()

	Fill()
	Stroke()
}

// miterLimit matches the canvas default.
const miterLimit = 10

type state struct {
	ctm    matrix.Matrix
	stroke color.NRGBA
	fill   color.NRGBA
	width  float64
	dash   []float64
	alpha  float64
}

// emitted holds the graphics state last written to the page.  NaN values
// have not been written yet.
type emitted struct {
	fill   float64
	stroke float64
	width  float64
	dash   []float64
}

// Canvas draws onto a PDF page.  Coordinates follow the canvas
// convention: the origin is at the top left and y grows downwards.
type Canvas struct {
	w Writer

	state state
	stack []state

	// the current path, in page coordinates
	path    path.Data
	hasCur  bool
	start   vec.Vec2
	scratch path.Data

	out emitted
	err error
}

var _ raster.Context = (*Canvas)(nil)

// New returns a canvas drawing onto w.  The page height is needed to flip
// the y axis.
func New(w Writer, height float64) *Canvas {
	w.SetLineCap(graphics.LineCapButt)
	w.SetLineJoin(graphics.LineJoinMiter)
	w.SetMiterLimit(miterLimit)
	return &Canvas{
		w: w,
		state: state{
			ctm:    matrix.Matrix{1, 0, 0, -1, 0, height},
			stroke: color.NRGBA{A: 0xff},
			fill:   color.NRGBA{A: 0xff},
			width:  1,
			alpha:  1,
		},
		out: emitted{fill: math.NaN(), stroke: math.NaN(), width: math.NaN()},
	}
}

// Err implements [raster.Context].
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Save implements [raster.Context].
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements [raster.Context].
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		c.fail(mathgraph.Wrap("pdfcanvas.Canvas.Restore", "", mathgraph.ErrUnbalancedRestore))
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) SetStrokeColor(s string) {
	col, err := raster.ParseColor(s)
	if err != nil {
		c.fail(err)
		return
	}
	c.state.stroke = col
}

func (c *Canvas) SetFillColor(s string) {
	col, err := raster.ParseColor(s)
	if err != nil {
		c.fail(err)
		return
	}
	c.state.fill = col
}

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		c.state.width = w
	}
}

func (c *Canvas) SetLineDash(dash []float64) {
	if d, ok := raster.NormalizeDash(dash); ok {
		c.state.dash = d
	}
}

func (c *Canvas) LineDash() []float64 {
	return slices.Clone(c.state.dash)
}

func (c *Canvas) SetGlobalAlpha(alpha float64) {
	if alpha >= 0 && alpha <= 1 {
		c.state.alpha = alpha
	}
}

// Translate implements [raster.Context].
func (c *Canvas) Translate(x, y float64) {
	if !finite(x, y) {
		return
	}
	m := &c.state.ctm
	m[4] += m[0]*x + m[2]*y
	m[5] += m[1]*x + m[3]*y
}

// Rotate implements [raster.Context].
func (c *Canvas) Rotate(angle float64) {
	if !finite(angle) {
		return
	}
	m := &c.state.ctm
	sin, cos := math.Sincos(angle)
	a, b, cc, d := m[0], m[1], m[2], m[3]
	m[0] = a*cos + cc*sin
	m[1] = b*cos + d*sin
	m[2] = cc*cos - a*sin
	m[3] = d*cos - b*sin
}

func (c *Canvas) toPage(x, y float64) vec.Vec2 {
	m := c.state.ctm
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

func (c *Canvas) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
	c.hasCur = false
}

func (c *Canvas) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	p := c.toPage(x, y)
	c.path.MoveTo(p)
	c.start = p
	c.hasCur = true
}

// LineTo implements [raster.Context].  Without a current point, LineTo
// acts as MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	if !c.hasCur {
		c.MoveTo(x, y)
		return
	}
	c.path.LineTo(c.toPage(x, y))
}

// Arc implements [raster.Context].  The arc is approximated by cubic
// Bézier curves.
func (c *Canvas) Arc(x, y, r, start, end float64, anticlockwise bool) {
	if !finite(x, y, r, start, end) {
		return
	}
	if r < 0 {
		c.fail(mathgraph.Wrap("pdfcanvas.Canvas.Arc", "radius", mathgraph.ErrInvalidGeometryInput))
		return
	}
	center := vec.Vec2{X: x, Y: y}
	p0 := mathgraph.Polar(center, r, start)
	c.LineTo(p0.X, p0.Y)

	c.scratch.Cmds = c.scratch.Cmds[:0]
	c.scratch.Coords = c.scratch.Coords[:0]
	mathgraph.AppendArc(&c.scratch, center, r, start, mathgraph.ArcSweep(start, end, anticlockwise))
	c.path.Cmds = append(c.path.Cmds, c.scratch.Cmds...)
	for _, q := range c.scratch.Coords {
		c.path.Coords = append(c.path.Coords, c.toPage(q.X, q.Y))
	}
}

func (c *Canvas) ClosePath() {
	if !c.hasCur {
		return
	}
	c.path.Close()
}

// Fill implements [raster.Context], using the nonzero winding rule.
func (c *Canvas) Fill() {
	if !c.visible(c.state.fill) {
		return
	}
	g := c.gray(c.state.fill)
	if c.out.fill != g {
		c.w.SetFillColor(pdfcolor.DeviceGray(g))
		c.out.fill = g
	}
	c.emitPath()
	c.w.Fill()
}

// Stroke implements [raster.Context].
func (c *Canvas) Stroke() {
	if !c.visible(c.state.stroke) {
		return
	}
	g := c.gray(c.state.stroke)
	if c.out.stroke != g {
		c.w.SetStrokeColor(pdfcolor.DeviceGray(g))
		c.out.stroke = g
	}
	if c.out.width != c.state.width {
		c.w.SetLineWidth(c.state.width)
		c.out.width = c.state.width
	}
	if !slices.Equal(c.out.dash, c.state.dash) {
		c.w.SetLineDash(c.state.dash, 0)
		c.out.dash = c.state.dash
	}
	c.emitPath()
	c.w.Stroke()
}

func (c *Canvas) visible(col color.NRGBA) bool {
	return col.A != 0 && c.state.alpha > 0 && len(c.path.Cmds) > 0
}

// gray returns the luminance of col over white paper.
func (c *Canvas) gray(col color.NRGBA) float64 {
	y := (0.299*float64(col.R) + 0.587*float64(col.G) + 0.114*float64(col.B)) / 255
	a := float64(col.A) / 255 * c.state.alpha
	return 1 - a*(1-y)
}

func (c *Canvas) emitPath() {
	for cmd, pts := range c.path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.w.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.w.ClosePath()
		}
	}
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
