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
	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/style"
)

// Defaults is the class default style of all 3D primitives.
var Defaults = style.Style{
	Color:   style.String("#ffffff"),
	Opacity: style.Float(1),
}

func vecOr(op, field string, v any, def r3.Vec) (r3.Vec, error) {
	if v == nil {
		return def, nil
	}
	p, err := mathgraph.Vec3Of(v)
	if err != nil {
		return r3.Vec{}, mathgraph.Wrap(op, field, err)
	}
	return p, nil
}

func rangeOr(op, field string, v any, def mathgraph.Range) (mathgraph.Range, error) {
	if v == nil {
		return def, nil
	}
	r, err := mathgraph.RangeOf(v)
	if err != nil {
		return mathgraph.Range{}, mathgraph.Wrap(op, field, err)
	}
	return r, nil
}

func intOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func floatOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// paint sets the name and the resolved style of m.
func paint(m *Mesh, name string, s style.Style) *Mesh {
	r := style.Resolve(style.Style{}, s, Defaults)
	m.Name = name
	m.Color = r.Color
	m.Opacity = r.Opacity
	return m
}

// Bool returns a pointer to v, for the optional flags in parameter
// structs.
func Bool(v bool) *bool {
	return &v
}

func logMesh(kind, name string, meshes []*Mesh) {
	faces, lines := 0, 0
	for _, m := range meshes {
		faces += len(m.Faces)
		lines += len(m.Lines)
	}
	mathgraph.Logger().Debug("mesh generated", "kind", kind, "name", name,
		"meshes", len(meshes), "faces", faces, "lines", lines)
}

// Point3DParams holds the construction parameters of a [Point3D].
type Point3DParams struct {
	Name string

	// Point is the centre, given as an r3.Vec, a [3]float64, a []float64
	// or a map with keys "x", "y" and "z".  The default is the origin.
	Point any

	// Radius defaults to 0.1.
	Radius float64

	// Segments is the number of sphere segments in both directions,
	// default 16.
	Segments int

	Style style.Style
}

// Point3D is a small sphere.
type Point3D struct {
	Name   string
	Point  r3.Vec
	Radius float64

	mesh *Mesh
}

// NewPoint3D returns a new sphere.
func NewPoint3D(p Point3DParams) (*Point3D, error) {
	c, err := vecOr("shape3d.NewPoint3D", "point", p.Point, r3.Vec{})
	if err != nil {
		return nil, err
	}
	pt := &Point3D{
		Name:   p.Name,
		Point:  c,
		Radius: floatOr(p.Radius, 0.1),
	}
	seg := intOr(p.Segments, 16)
	pt.mesh = paint(Sphere(c, pt.Radius, seg, seg), p.Name, p.Style)
	logMesh("point", p.Name, pt.Meshes())
	return pt, nil
}

// Meshes implements the [Object] interface.
func (p *Point3D) Meshes() []*Mesh {
	return []*Mesh{p.mesh}
}
