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

package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/mathgraph"
)

// canvasMiterLimit is the miter limit used by HTML canvas contexts.
const canvasMiterLimit = 10

type canvasState struct {
	ctm    matrix.Matrix
	stroke color.NRGBA
	fill   color.NRGBA
	width  float64
	dash   []float64
	alpha  float64
}

// Canvas is a Context which draws into an RGBA image.
type Canvas struct {
	img  *image.RGBA
	mask *image.Alpha
	r    *Rasteriser

	state canvasState
	stack []canvasState

	// the current path, in device space
	path    path.Data
	hasCur  bool
	cur     vec.Vec2
	start   vec.Vec2
	scratch path.Data

	err error
}

var _ Context = (*Canvas)(nil)

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithBackground fills the new canvas with the given color.
func WithBackground(c color.Color) CanvasOption {
	return func(cv *Canvas) {
		draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

// WithFlatness sets the curve flattening tolerance, in pixels.
func WithFlatness(f float64) CanvasOption {
	return func(cv *Canvas) {
		if f > 0 {
			cv.r.Flatness = f
		}
	}
}

// NewCanvas returns a transparent canvas of the given size.  The initial
// state uses black for stroking and filling, line width 1, solid lines and
// global alpha 1.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	r := NewRasteriser(clip)
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = canvasMiterLimit

	c := &Canvas{
		img:  image.NewRGBA(bounds),
		mask: image.NewAlpha(bounds),
		r:    r,
		state: canvasState{
			ctm:    matrix.Identity,
			stroke: color.NRGBA{A: 0xff},
			fill:   color.NRGBA{A: 0xff},
			width:  1,
			alpha:  1,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Err implements [Context].
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Save implements [Context].
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore implements [Context].
func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		c.fail(mathgraph.Wrap("raster.Canvas.Restore", "", mathgraph.ErrUnbalancedRestore))
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// SetStrokeColor implements [Context].
func (c *Canvas) SetStrokeColor(s string) {
	col, err := ParseColor(s)
	if err != nil {
		c.fail(err)
		return
	}
	c.state.stroke = col
}

// SetFillColor implements [Context].
func (c *Canvas) SetFillColor(s string) {
	col, err := ParseColor(s)
	if err != nil {
		c.fail(err)
		return
	}
	c.state.fill = col
}

// SetLineWidth implements [Context].  Non-positive and non-finite widths
// are ignored.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		c.state.width = w
	}
}

// SetLineDash implements [Context].
func (c *Canvas) SetLineDash(dash []float64) {
	if d, ok := NormalizeDash(dash); ok {
		c.state.dash = d
	}
}

// LineDash implements [Context].
func (c *Canvas) LineDash() []float64 {
	res := make([]float64, len(c.state.dash))
	copy(res, c.state.dash)
	return res
}

// SetGlobalAlpha implements [Context].  Values outside [0, 1] are ignored.
func (c *Canvas) SetGlobalAlpha(alpha float64) {
	if alpha >= 0 && alpha <= 1 {
		c.state.alpha = alpha
	}
}

// Translate implements [Context].
func (c *Canvas) Translate(x, y float64) {
	if !finite(x, y) {
		return
	}
	m := &c.state.ctm
	m[4] += m[0]*x + m[2]*y
	m[5] += m[1]*x + m[3]*y
}

// Rotate implements [Context].
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

func (c *Canvas) toDevice(x, y float64) vec.Vec2 {
	m := c.state.ctm
	return vec.Vec2{
		X: m[0]*x + m[2]*y + m[4],
		Y: m[1]*x + m[3]*y + m[5],
	}
}

// BeginPath implements [Context].
func (c *Canvas) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
	c.hasCur = false
}

// MoveTo implements [Context].  Calls with non-finite coordinates are
// ignored.
func (c *Canvas) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	p := c.toDevice(x, y)
	c.path.MoveTo(p)
	c.cur, c.start = p, p
	c.hasCur = true
}

// LineTo implements [Context].  Without a current point, LineTo acts as
// MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	if !c.hasCur {
		c.MoveTo(x, y)
		return
	}
	p := c.toDevice(x, y)
	c.path.LineTo(p)
	c.cur = p
}

// Arc implements [Context].  A negative radius is an error.
func (c *Canvas) Arc(x, y, r, start, end float64, anticlockwise bool) {
	if !finite(x, y, r, start, end) {
		return
	}
	if r < 0 {
		c.fail(mathgraph.Wrap("raster.Canvas.Arc", "radius", mathgraph.ErrInvalidGeometryInput))
		return
	}
	center := vec.Vec2{X: x, Y: y}
	p0 := mathgraph.Polar(center, r, start)
	if c.hasCur {
		c.LineTo(p0.X, p0.Y)
	} else {
		c.MoveTo(p0.X, p0.Y)
	}

	c.scratch.Cmds = c.scratch.Cmds[:0]
	c.scratch.Coords = c.scratch.Coords[:0]
	mathgraph.AppendArc(&c.scratch, center, r, start, mathgraph.ArcSweep(start, end, anticlockwise))
	c.path.Cmds = append(c.path.Cmds, c.scratch.Cmds...)
	for _, q := range c.scratch.Coords {
		c.path.Coords = append(c.path.Coords, c.toDevice(q.X, q.Y))
	}
	if n := len(c.path.Coords); n > 0 {
		c.cur = c.path.Coords[n-1]
	}
}

// ClosePath implements [Context].
func (c *Canvas) ClosePath() {
	if !c.hasCur {
		return
	}
	c.path.Close()
	c.cur = c.start
}

// Fill implements [Context].  The current path is filled with the nonzero
// winding rule.
func (c *Canvas) Fill() {
	c.r.Dash = nil
	c.paint(c.state.fill, func(emit Emit) {
		c.r.Fill(&c.path, NonZero, emit)
	})
}

// Stroke implements [Context].
func (c *Canvas) Stroke() {
	c.r.Width = c.state.width
	c.r.Dash = c.state.dash
	c.r.DashPhase = 0
	c.paint(c.state.stroke, func(emit Emit) {
		c.r.Stroke(&c.path, emit)
	})
}

// paint composites col onto the image through the coverage produced by
// render.
func (c *Canvas) paint(col color.NRGBA, render func(Emit)) {
	col.A = uint8(math.Round(float64(col.A) * c.state.alpha))
	if col.A == 0 {
		return
	}

	yMin, yMax := math.MaxInt, math.MinInt
	stride := c.mask.Stride
	render(func(y, xMin int, coverage []float32) {
		row := c.mask.Pix[y*stride+xMin : y*stride+xMin+len(coverage)]
		for i, v := range coverage {
			row[i] = uint8(min(max(v, 0), 1)*255 + 0.5)
		}
		yMin = min(yMin, y)
		yMax = max(yMax, y)
	})
	if yMin > yMax {
		return
	}

	area := image.Rect(0, yMin, c.img.Rect.Dx(), yMax+1)
	draw.DrawMask(c.img, area, image.NewUniform(col), image.Point{}, c.mask, area.Min, draw.Over)
	clear(c.mask.Pix[yMin*stride : (yMax+1)*stride])
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
