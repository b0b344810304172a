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

package axis

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/svg"
)

// DefaultColor is the axis color used when Options.Color is empty.
const DefaultColor = "#000000"

// Tick geometry, in device units.
const (
	tickSize    = 6
	labelOffset = 9
)

// Options control the appearance of drawn axes.
type Options struct {
	// HideZeroLabel suppresses the "0" label.  All other labels are kept.
	HideZeroLabel bool

	// Color is the color of lines and labels.  Empty means DefaultColor.
	Color string
}

func (o Options) color() string {
	if o.Color == "" {
		return DefaultColor
	}
	return o.Color
}

// TicksX returns the logical positions of the ticks on the x axis.
func (m *Mapping) TicksX() []float64 {
	return ticks(m.rangeX.Min, m.rangeX.Max, int(m.rangeX.Span()))
}

// TicksY returns the logical positions of the ticks on the y axis.
func (m *Mapping) TicksY() []float64 {
	return ticks(m.rangeY.Min, m.rangeY.Max, int(m.rangeY.Span()))
}

// AxisX returns a group drawing the x axis: a horizontal line at the
// height of the center with downward ticks and labels.
func (m *Mapping) AxisX(opt Options) *svg.Node {
	g := svg.NewElement("g").SetAttrs([]svg.Attr{
		{Name: "class", Value: "Axis-x"},
		{Name: "color", Value: opt.color()},
		{Name: "transform", Value: "translate(0, " + svg.Num(m.center.Y) + ")"},
		{Name: "fill", Value: "none"},
		{Name: "font-size", Value: "10"},
		{Name: "font-family", Value: "sans-serif"},
		{Name: "text-anchor", Value: "middle"},
	})

	r0, r1 := m.scaleX.r0, m.scaleX.r1
	g.Append(svg.NewElement("path").SetAttrs([]svg.Attr{
		{Name: "class", Value: "domain"},
		{Name: "stroke", Value: "currentColor"},
		{Name: "d", Value: "M" + svg.Num(r0) + "," + svg.Num(tickSize) + "V0H" + svg.Num(r1) + "V" + svg.Num(tickSize)},
	}))
	for _, v := range m.TicksX() {
		tick := svg.NewElement("g").SetAttrs([]svg.Attr{
			{Name: "class", Value: "tick"},
			{Name: "opacity", Value: "1"},
			{Name: "transform", Value: "translate(" + svg.Num(m.X(v)) + ",0)"},
		})
		tick.Append(
			svg.NewElement("line").SetAttrs([]svg.Attr{
				{Name: "stroke", Value: "currentColor"},
				{Name: "y2", Value: svg.Num(tickSize)},
			}),
			svg.NewElement("text").SetAttrs([]svg.Attr{
				{Name: "fill", Value: "currentColor"},
				{Name: "y", Value: svg.Num(labelOffset)},
				{Name: "dy", Value: "0.71em"},
			}).SetText(opt.label(v)),
		)
		g.Append(tick)
	}
	return g
}

// AxisY returns a group drawing the y axis: a vertical line at the
// horizontal position of the center with leftward ticks and labels.
func (m *Mapping) AxisY(opt Options) *svg.Node {
	g := svg.NewElement("g").SetAttrs([]svg.Attr{
		{Name: "class", Value: "Axis-y"},
		{Name: "color", Value: opt.color()},
		{Name: "transform", Value: "translate(" + svg.Num(m.center.X) + ", 0)"},
		{Name: "fill", Value: "none"},
		{Name: "font-size", Value: "10"},
		{Name: "font-family", Value: "sans-serif"},
		{Name: "text-anchor", Value: "end"},
	})

	r0, r1 := m.scaleY.r0, m.scaleY.r1
	g.Append(svg.NewElement("path").SetAttrs([]svg.Attr{
		{Name: "class", Value: "domain"},
		{Name: "stroke", Value: "currentColor"},
		{Name: "d", Value: "M" + svg.Num(-tickSize) + "," + svg.Num(r0) + "H0V" + svg.Num(r1) + "H" + svg.Num(-tickSize)},
	}))
	for _, v := range m.TicksY() {
		tick := svg.NewElement("g").SetAttrs([]svg.Attr{
			{Name: "class", Value: "tick"},
			{Name: "opacity", Value: "1"},
			{Name: "transform", Value: "translate(0," + svg.Num(m.Y(v)) + ")"},
		})
		tick.Append(
			svg.NewElement("line").SetAttrs([]svg.Attr{
				{Name: "stroke", Value: "currentColor"},
				{Name: "x2", Value: svg.Num(-tickSize)},
			}),
			svg.NewElement("text").SetAttrs([]svg.Attr{
				{Name: "fill", Value: "currentColor"},
				{Name: "x", Value: svg.Num(-labelOffset)},
				{Name: "dy", Value: "0.32em"},
			}).SetText(opt.label(v)),
		)
		g.Append(tick)
	}
	return g
}

// DrawAxes appends both axes to parent.
func (m *Mapping) DrawAxes(parent *svg.Node, opt Options) {
	parent.Append(m.AxisX(opt), m.AxisY(opt))
}

// Draw paints both axes with their ticks on a raster context.  Labels are
// not drawn.
func (m *Mapping) Draw(ctx raster.Context, opt Options) error {
	ctx.Save()
	defer ctx.Restore()

	ctx.SetStrokeColor(opt.color())
	ctx.SetLineWidth(1)
	ctx.SetLineDash(nil)
	ctx.BeginPath()

	cy := m.center.Y
	ctx.MoveTo(m.scaleX.r0, cy)
	ctx.LineTo(m.scaleX.r1, cy)
	for _, v := range m.TicksX() {
		x := m.X(v)
		ctx.MoveTo(x, cy)
		ctx.LineTo(x, cy+tickSize)
	}

	cx := m.center.X
	ctx.MoveTo(cx, m.scaleY.r0)
	ctx.LineTo(cx, m.scaleY.r1)
	for _, v := range m.TicksY() {
		y := m.Y(v)
		ctx.MoveTo(cx, y)
		ctx.LineTo(cx-tickSize, y)
	}
	ctx.Stroke()

	return ctx.Err()
}

func (o Options) label(v float64) string {
	if v == 0 {
		if o.HideZeroLabel {
			return ""
		}
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// typographic minus sign
	return strings.Replace(s, "-", "−", 1)
}

// ticks returns about count evenly spaced round values in [lo, hi].  The
// spacing is 1, 2 or 5 times a power of ten.
func ticks(lo, hi float64, count int) []float64 {
	if count <= 0 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}

	step := (hi - lo) / float64(count)
	power := math.Floor(math.Log10(step))
	rel := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case rel >= math.Sqrt(50):
		factor = 10
	case rel >= math.Sqrt(10):
		factor = 5
	case rel >= math.Sqrt(2):
		factor = 2
	}

	var res []float64
	if power >= 0 {
		inc := factor * math.Pow(10, power)
		for i := math.Ceil(lo / inc); i <= math.Floor(hi/inc); i++ {
			res = append(res, i*inc)
		}
		return res
	}
	// for fractional steps divide by the inverse, which is exact
	inv := math.Pow(10, -power) / factor
	for i := math.Ceil(lo * inv); i <= math.Floor(hi*inv); i++ {
		res = append(res, i/inv)
	}
	return res
}
