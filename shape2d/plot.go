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
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/axis"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// PlotDefaults is the class default style of a [Plot].
var PlotDefaults = style.Style{
	Color:     style.String("#000000"),
	LineWidth: style.Float(1),
	LineDash:  style.Dash(),
	Opacity:   style.Float(1),
}

// DefaultPlotStep is the sampling step used when PlotParams.Step is zero.
const DefaultPlotStep = 0.1

// maxPlotSamples bounds the number of samples of a single plot.
const maxPlotSamples = 1 << 20

// PlotParams holds the construction parameters of a [Plot].
type PlotParams struct {
	Name string

	// Func is the plotted function.  Nil selects the identity.
	Func func(float64) float64

	// Range is the sampled interval of x values, default [-5, 5], given
	// as a mathgraph.Range, a [2]float64, a []float64 or a map with keys
	// "min" and "max".
	Range any

	// Step is the distance between samples.  The sign is ignored and
	// zero selects DefaultPlotStep.
	Step float64

	// Axis maps sampled values to device coordinates.  Without an axis
	// the plot can be sampled but not drawn.
	Axis *axis.Mapping

	// SampleExact selects count-based sampling, which always includes
	// both ends of the range.  By default x advances by Step from
	// Range.Min for as long as x <= Range.Max.
	SampleExact bool

	Style style.Style
}

// Sample is one point of a plot.
type Sample struct {
	X, Y float64

	// Device is the image of (X, Y) under the plot's axis mapping.  It is
	// only set if the plot has an axis.
	Device vec.Vec2
}

// Plot is the graph of a function y = f(x) over an interval, drawn as a
// polyline through sampled points.
//
// The samples are cached.  Change the function, the range, the step or
// the axis through Update.
type Plot struct {
	Name        string
	Func        func(float64) float64
	Range       mathgraph.Range
	Step        float64
	Axis        *axis.Mapping
	SampleExact bool
	Style       style.Style

	samples []Sample
	mapped  bool
}

// NewPlot returns a new plot and samples the function.
func NewPlot(p PlotParams) (*Plot, error) {
	r, err := rangeOr("shape2d.NewPlot", "range", p.Range, mathgraph.Range{Min: -5, Max: 5})
	if err != nil {
		return nil, err
	}
	pl := &Plot{
		Name:        p.Name,
		Func:        p.Func,
		Range:       r,
		Step:        plotStep(p.Step),
		Axis:        p.Axis,
		SampleExact: p.SampleExact,
		Style:       PlotDefaults.Merge(p.Style),
	}
	pl.generate()
	return pl, nil
}

func plotStep(step float64) float64 {
	if step == 0 {
		return DefaultPlotStep
	}
	return math.Abs(step)
}

// PlotUpdate lists the fields changed by [Plot.Update].  Nil fields are
// left unchanged.
type PlotUpdate struct {
	Func        func(float64) float64
	Range       any
	Step        *float64
	Axis        *axis.Mapping
	SampleExact *bool
}

// Update merges the given fields into the plot and samples the function
// again.  If the range is malformed, p is left unchanged.
func (p *Plot) Update(u PlotUpdate) error {
	r, err := rangeOr("shape2d.Plot.Update", "range", u.Range, p.Range)
	if err != nil {
		return err
	}
	p.Range = r
	if u.Func != nil {
		p.Func = u.Func
	}
	if u.Step != nil {
		p.Step = plotStep(*u.Step)
	}
	if u.Axis != nil {
		p.Axis = u.Axis
	}
	if u.SampleExact != nil {
		p.SampleExact = *u.SampleExact
	}
	p.generate()
	return nil
}

func (p *Plot) generate() {
	f := p.Func
	if f == nil {
		f = func(x float64) float64 { return x }
	}
	step := plotStep(p.Step)

	p.samples = nil
	p.mapped = p.Axis != nil
	nan := 0
	add := func(x float64) {
		s := Sample{X: x, Y: f(x)}
		if math.IsNaN(s.Y) {
			nan++
		}
		if p.mapped {
			s.Device = p.Axis.CoordsToPoint(s.X, s.Y)
		}
		p.samples = append(p.samples, s)
	}

	lo, hi := p.Range.Min, p.Range.Max
	if p.SampleExact {
		n := 1
		if hi > lo {
			n = int(math.Ceil((hi-lo)/step-1e-9)) + 1
		}
		n = min(n, maxPlotSamples)
		for i := range n {
			x := lo + float64(i)*step
			if i == n-1 && n > 1 {
				x = hi
			}
			add(x)
		}
	} else {
		x := lo
		for {
			add(x)
			x += step
			if !(x <= hi) || len(p.samples) >= maxPlotSamples {
				break
			}
		}
	}

	logger := mathgraph.Logger()
	if len(p.samples) >= maxPlotSamples {
		logger.Warn("plot sample limit reached", "name", p.Name, "limit", maxPlotSamples)
	}
	if nan > 0 {
		logger.Warn("plot function returned NaN", "name", p.Name, "samples", nan)
	}
	logger.Debug("plot sampled", "name", p.Name, "samples", len(p.samples),
		"min", lo, "max", hi, "step", step)
}

// Samples returns the cached samples.  The returned slice must not be
// modified.
func (p *Plot) Samples() []Sample {
	return p.samples
}

func (p *Plot) checkMapped(op string) error {
	if !p.mapped {
		return mathgraph.Wrap(op, "axis", mathgraph.ErrMissingCoordinateMapping)
	}
	return nil
}

func (p *Plot) resolve(override style.Style) style.Resolved {
	return style.Resolve(override, p.Style, PlotDefaults)
}

// Styles returns the SVG presentation attributes of the plot.
func (p *Plot) Styles(override style.Style, form style.Form) []svg.Attr {
	s := p.resolve(override)
	return form.Attrs([]svg.Attr{
		{Name: "stroke", Value: s.Color},
		{Name: "stroke-width", Value: num(s.LineWidth)},
		{Name: "stroke-opacity", Value: num(s.Opacity)},
		{Name: "stroke-dasharray", Value: style.DashArray(s.LineDash)},
		{Name: "fill", Value: "none"},
	})
}

// PathD returns the plot as SVG path data.
func (p *Plot) PathD() (string, error) {
	if err := p.checkMapped("shape2d.Plot.PathD"); err != nil {
		return "", err
	}
	b := &pathBuilder{}
	for i, s := range p.samples {
		c := byte('L')
		if i == 0 {
			c = 'M'
		}
		b.cmd(c, s.Device.X, s.Device.Y)
	}
	return b.String(), nil
}

// PolylinePoints returns the value of the points attribute of an SVG
// <polyline> element, in the form "x1,y1 x2,y2 ...".
func (p *Plot) PolylinePoints() (string, error) {
	if err := p.checkMapped("shape2d.Plot.PolylinePoints"); err != nil {
		return "", err
	}
	b := &strings.Builder{}
	for i, s := range p.samples {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(s.Device.X))
		b.WriteByte(',')
		b.WriteString(num(s.Device.Y))
	}
	return b.String(), nil
}

// PathElement returns the plot as an SVG <path> element.
func (p *Plot) PathElement(override style.Style) (*svg.Node, error) {
	d, err := p.PathD()
	if err != nil {
		return nil, err
	}
	n := newElement("path", "Plot", p.Name, p.Styles(override, style.AttrForm))
	return n.SetAttr("d", d), nil
}

// PolylineElement returns the plot as an SVG <polyline> element.
func (p *Plot) PolylineElement(override style.Style) (*svg.Node, error) {
	pts, err := p.PolylinePoints()
	if err != nil {
		return nil, err
	}
	n := newElement("polyline", "Plot", p.Name, p.Styles(override, style.AttrForm))
	return n.SetAttr("points", pts), nil
}

// Element implements the [Shape] interface.  It returns the path form.
func (p *Plot) Element(override style.Style) (*svg.Node, error) {
	return p.PathElement(override)
}

// Draw implements the [Shape] interface.
func (p *Plot) Draw(ctx raster.Context, override style.Style) error {
	if err := p.checkMapped("shape2d.Plot.Draw"); err != nil {
		return err
	}
	s := p.resolve(override)

	ctx.Save()
	ctx.SetStrokeColor(s.Color)
	ctx.SetLineWidth(s.LineWidth)
	ctx.SetLineDash(s.LineDash)
	ctx.SetGlobalAlpha(s.Opacity)

	ctx.BeginPath()
	for i, sm := range p.samples {
		if i == 0 {
			ctx.MoveTo(sm.Device.X, sm.Device.Y)
		} else {
			ctx.LineTo(sm.Device.X, sm.Device.Y)
		}
	}
	ctx.Stroke()
	ctx.Restore()

	return ctx.Err()
}

// AcotDashDefaults is the default style of the dashed continuation of an
// [AcotPlot].
var AcotDashDefaults = style.Style{
	Color:     style.String("#000000"),
	LineWidth: style.Float(1),
	LineDash:  style.Dash(5),
	Opacity:   style.Float(0.5),
}

// DefaultAcotBuff is the padding used when AcotPlotParams.Buff is nil.
const DefaultAcotBuff = 3

// AcotPlotParams holds the construction parameters of an [AcotPlot].
type AcotPlotParams struct {
	Name  string
	Func  func(float64) float64
	Range any
	Step  float64
	Axis  *axis.Mapping

	// Buff is the length of the dashed continuation on each side of the
	// range.  The sign is ignored.  Nil selects DefaultAcotBuff.
	Buff *float64

	PlotStyle     style.Style
	DashPlotStyle style.Style
}

// AcotPlot is a function plot which continues as a dashed, translucent
// curve beyond both ends of its range.
//
// The plot consists of two [Plot] values sharing the function and step:
// Plot over the range, and DashPlot over the range padded by Buff.  Use
// Update to change them together.
type AcotPlot struct {
	Name string
	Buff float64

	Plot     *Plot
	DashPlot *Plot
}

// NewAcotPlot returns a new plot with dashed continuations.
func NewAcotPlot(p AcotPlotParams) (*AcotPlot, error) {
	r, err := rangeOr("shape2d.NewAcotPlot", "range", p.Range, mathgraph.Range{Min: -5, Max: 5})
	if err != nil {
		return nil, err
	}
	buff := float64(DefaultAcotBuff)
	if p.Buff != nil {
		buff = math.Abs(*p.Buff)
	}

	a := &AcotPlot{Name: p.Name, Buff: buff}
	a.Plot, err = NewPlot(PlotParams{
		Func:  p.Func,
		Range: r,
		Step:  p.Step,
		Axis:  p.Axis,
		Style: p.PlotStyle,
	})
	if err != nil {
		return nil, err
	}
	a.DashPlot, err = NewPlot(PlotParams{
		Func:  p.Func,
		Range: r.Pad(buff),
		Step:  p.Step,
		Axis:  p.Axis,
		Style: AcotDashDefaults.Merge(p.DashPlotStyle),
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// AcotPlotUpdate lists the fields changed by [AcotPlot.Update].
type AcotPlotUpdate struct {
	PlotUpdate

	Buff *float64
}

// Update applies the changes to both plots and samples them again.
func (a *AcotPlot) Update(u AcotPlotUpdate) error {
	r, err := rangeOr("shape2d.AcotPlot.Update", "range", u.Range, a.Plot.Range)
	if err != nil {
		return err
	}
	if u.Buff != nil {
		a.Buff = math.Abs(*u.Buff)
	}

	inner := u.PlotUpdate
	inner.Range = r
	outer := u.PlotUpdate
	outer.Range = r.Pad(a.Buff)
	if err := a.Plot.Update(inner); err != nil {
		return err
	}
	return a.DashPlot.Update(outer)
}

// AcotPlotStyles holds separate style overrides for the two parts of an
// [AcotPlot].
type AcotPlotStyles struct {
	Plot     style.Style
	DashPlot style.Style

	// UsePath selects <path> elements instead of <polyline> elements.
	UsePath bool
}

// AcotPaths holds the SVG path data of the two parts of an [AcotPlot].
type AcotPaths struct {
	Plot     string
	DashPlot string
}

// PathD returns the SVG path data of both plots.
func (a *AcotPlot) PathD() (AcotPaths, error) {
	var res AcotPaths
	var err error
	res.Plot, err = a.Plot.PathD()
	if err != nil {
		return AcotPaths{}, err
	}
	res.DashPlot, err = a.DashPlot.PathD()
	if err != nil {
		return AcotPaths{}, err
	}
	return res, nil
}

// ElementWith returns an SVG group with the dashed plot followed by the
// solid plot.
func (a *AcotPlot) ElementWith(s AcotPlotStyles) (*svg.Node, error) {
	g := newElement("g", "Acot-plot", a.Name, nil)
	for _, part := range []struct {
		plot     *Plot
		override style.Style
	}{
		{a.DashPlot, s.DashPlot},
		{a.Plot, s.Plot},
	} {
		var n *svg.Node
		var err error
		if s.UsePath {
			n, err = part.plot.PathElement(part.override)
		} else {
			n, err = part.plot.PolylineElement(part.override)
		}
		if err != nil {
			return nil, err
		}
		g.Append(n)
	}
	return g, nil
}

// Element implements the [Shape] interface.  The override applies to both
// plots, which are given as <polyline> elements.
func (a *AcotPlot) Element(override style.Style) (*svg.Node, error) {
	return a.ElementWith(AcotPlotStyles{Plot: override, DashPlot: override})
}

// DrawWith draws the dashed plot and then the solid plot.
func (a *AcotPlot) DrawWith(ctx raster.Context, s AcotPlotStyles) error {
	if err := a.DashPlot.Draw(ctx, s.DashPlot); err != nil {
		return err
	}
	return a.Plot.Draw(ctx, s.Plot)
}

// Draw implements the [Shape] interface.  The override applies to both
// plots.
func (a *AcotPlot) Draw(ctx raster.Context, override style.Style) error {
	return a.DrawWith(ctx, AcotPlotStyles{Plot: override, DashPlot: override})
}
