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

package shape3d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/style"
)

// Default style of the parts of a [Plot3D].
var (
	SurfaceDefaults = style.Style{
		Color:   style.String("#ffffff"),
		Opacity: style.Float(0.7),
	}
	WireframeDefaults = style.Style{
		Color:   style.String("#cf1c1c"),
		Opacity: style.Float(1),
	}
)

// DefaultWireframeOffset is the distance of the two wireframe copies from
// the surface.
const DefaultWireframeOffset = 0.01

// Plot3DParams holds the construction parameters of a [Plot3D].
type Plot3DParams struct {
	Name string

	// Func is the plotted function z = f(x, y).  Nil selects
	// f(x, y) = x² + y.
	Func func(x, y float64) float64

	// RangeX and RangeY are the sampled intervals, default [-3, 3].
	RangeX any
	RangeY any

	// Segments is the number of surface cells in each direction, default
	// 16.
	Segments int

	// Wireframe selects the wireframe overlay, default true.
	Wireframe *bool

	// WireframeSegments is the number of wireframe cells in each
	// direction.  Zero selects Segments.
	WireframeSegments int

	// ZOffset is the distance of the two wireframe copies above and below
	// the surface.  Zero selects DefaultWireframeOffset.
	ZOffset float64

	Style          style.Style
	WireframeStyle style.Style
}

// Plot3D is the graph of a function of two variables, drawn as a
// translucent surface with an optional wireframe.
//
// Samples where the function returns NaN are placed at the origin.
type Plot3D struct {
	Name   string
	RangeX mathgraph.Range
	RangeY mathgraph.Range

	surface   *Mesh
	wireframe []*Mesh
}

// NewPlot3D samples the function and returns the surface.
func NewPlot3D(p Plot3DParams) (*Plot3D, error) {
	const op = "shape3d.NewPlot3D"
	def := mathgraph.Range{Min: -3, Max: 3}
	rx, err := rangeOr(op, "rangeX", p.RangeX, def)
	if err != nil {
		return nil, err
	}
	ry, err := rangeOr(op, "rangeY", p.RangeY, def)
	if err != nil {
		return nil, err
	}
	f := p.Func
	if f == nil {
		f = func(x, y float64) float64 { return x*x + y }
	}

	nan := 0
	sample := func(u, v float64) r3.Vec {
		x := rx.Min + (rx.Max-rx.Min)*u
		y := ry.Min + (ry.Max-ry.Min)*v
		z := f(x, y)
		if math.IsNaN(z) {
			nan++
			return r3.Vec{}
		}
		return r3.Vec{X: x, Y: y, Z: z}
	}

	pl := &Plot3D{Name: p.Name, RangeX: rx, RangeY: ry}
	seg := intOr(p.Segments, 16)
	pl.surface = paint(Parametric(sample, seg, seg), p.Name, SurfaceDefaults.Merge(p.Style))
	pl.surface.DoubleSided = true

	if p.Wireframe == nil || *p.Wireframe {
		wseg := intOr(p.WireframeSegments, seg)
		grid := Parametric(sample, wseg, wseg)
		lines := paint(Wireframe(grid), p.Name, WireframeDefaults.Merge(p.WireframeStyle))
		dz := math.Abs(floatOr(p.ZOffset, DefaultWireframeOffset))
		pl.wireframe = []*Mesh{
			lines.Translate(r3.Vec{Z: dz}),
			lines.Translate(r3.Vec{Z: -dz}),
		}
	}

	if nan > 0 {
		mathgraph.Logger().Warn("surface function returned NaN", "name", p.Name, "samples", nan)
	}
	logMesh("surface", p.Name, pl.Meshes())
	return pl, nil
}

// Surface returns the surface mesh.
func (p *Plot3D) Surface() *Mesh {
	return p.surface
}

// Meshes implements the [Object] interface.  The surface comes first,
// followed by the wireframe copies.
func (p *Plot3D) Meshes() []*Mesh {
	return append([]*Mesh{p.surface}, p.wireframe...)
}

// Plot2DParams holds the construction parameters of a [Plot2D].
type Plot2DParams struct {
	Name string

	// Func is the curve.  Nil selects t -> (t, t², 1).
	Func func(t float64) r3.Vec

	// Range is the parameter interval, default [-3, 3].
	Range any

	// Segments is the number of tube segments along the curve, default
	// 64.
	Segments int

	// RadialSegments is the number of segments around the tube, default
	// 16.
	RadialSegments int

	// LineWidth is the tube radius, default 0.1.
	LineWidth float64

	Style style.Style
}

// Plot2D is a space curve drawn as a tube of constant radius.
type Plot2D struct {
	Name  string
	Range mathgraph.Range

	points []r3.Vec
	mesh   *Mesh
}

// NewPlot2D samples the curve and returns the tube.
func NewPlot2D(p Plot2DParams) (*Plot2D, error) {
	r, err := rangeOr("shape3d.NewPlot2D", "range", p.Range, mathgraph.Range{Min: -3, Max: 3})
	if err != nil {
		return nil, err
	}
	f := p.Func
	if f == nil {
		f = func(t float64) r3.Vec { return r3.Vec{X: t, Y: t * t, Z: 1} }
	}

	seg := intOr(p.Segments, 64)
	pl := &Plot2D{Name: p.Name, Range: r}
	for i := 0; i <= seg; i++ {
		t := r.Min + (r.Max-r.Min)*float64(i)/float64(seg)
		pl.points = append(pl.points, f(t))
	}
	tube := Tube(pl.points, floatOr(p.LineWidth, 0.1), intOr(p.RadialSegments, 16))
	tube.DoubleSided = true
	pl.mesh = paint(tube, p.Name, p.Style)
	logMesh("tube", p.Name, pl.Meshes())
	return pl, nil
}

// Points returns the sampled points of the curve.
func (p *Plot2D) Points() []r3.Vec {
	return p.points
}

// Meshes implements the [Object] interface.
func (p *Plot2D) Meshes() []*Mesh {
	return []*Mesh{p.mesh}
}
