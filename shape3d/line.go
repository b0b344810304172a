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

// Line3DParams holds the construction parameters of a [Line3D].
type Line3DParams struct {
	Name string

	// Start and End default to (0, 0, 0) and (1, 1, 1).
	Start any
	End   any

	// LineWidth is the radius of the cylinder, default 0.02.
	LineWidth float64

	// Segments is the number of segments around and along the cylinder,
	// default 8.
	Segments int

	Style style.Style
}

// Line3D is a line segment drawn as a thin cylinder.
type Line3D struct {
	Name  string
	Start r3.Vec
	End   r3.Vec

	mesh *Mesh
}

// NewLine3D returns a new cylinder between two points.
func NewLine3D(p Line3DParams) (*Line3D, error) {
	const op = "shape3d.NewLine3D"
	start, err := vecOr(op, "start", p.Start, r3.Vec{})
	if err != nil {
		return nil, err
	}
	end, err := vecOr(op, "end", p.End, r3.Vec{X: 1, Y: 1, Z: 1})
	if err != nil {
		return nil, err
	}
	seg := intOr(p.Segments, 8)
	l := &Line3D{Name: p.Name, Start: start, End: end}
	l.mesh = paint(Cylinder(start, end, floatOr(p.LineWidth, 0.02), seg, seg), p.Name, p.Style)
	logMesh("line", p.Name, l.Meshes())
	return l, nil
}

// Length returns the distance between the end points.
func (l *Line3D) Length() float64 {
	return r3.Norm(r3.Sub(l.End, l.Start))
}

// Midpoint returns the centre of the segment.
func (l *Line3D) Midpoint() r3.Vec {
	return r3.Scale(0.5, r3.Add(l.Start, l.End))
}

// Meshes implements the [Object] interface.
func (l *Line3D) Meshes() []*Mesh {
	return []*Mesh{l.mesh}
}

// Arrow3DParams holds the construction parameters of an [Arrow3D].
type Arrow3DParams struct {
	Name string

	// Start and End default to (0, 0, 0) and (1, 1, 1).
	Start any
	End   any

	// LineWidth is the radius of the shaft, default 0.02.
	LineWidth float64

	// Segments is the number of segments around the shaft and the heads,
	// default 8.
	Segments int

	// Size is the length of a head, default 0.2.
	Size float64

	// Delta is added to LineWidth to give the radius of the heads,
	// default 0.05.
	Delta float64

	// StartArrow defaults to false, EndArrow to true.
	StartArrow *bool
	EndArrow   *bool

	Style style.Style
}

// Arrow3D is a cylinder with cone heads.  The heads end exactly at the
// end points and the shaft fills the space between them.
type Arrow3D struct {
	Name       string
	Start      r3.Vec
	End        r3.Vec
	StartArrow bool
	EndArrow   bool

	shaft       *Mesh
	heads       []*Mesh
	shaftLength float64
}

// NewArrow3D returns a new 3D arrow.
func NewArrow3D(p Arrow3DParams) (*Arrow3D, error) {
	const op = "shape3d.NewArrow3D"
	start, err := vecOr(op, "start", p.Start, r3.Vec{})
	if err != nil {
		return nil, err
	}
	end, err := vecOr(op, "end", p.End, r3.Vec{X: 1, Y: 1, Z: 1})
	if err != nil {
		return nil, err
	}

	a := &Arrow3D{Name: p.Name, Start: start, End: end, EndArrow: true}
	if p.StartArrow != nil {
		a.StartArrow = *p.StartArrow
	}
	if p.EndArrow != nil {
		a.EndArrow = *p.EndArrow
	}

	width := floatOr(p.LineWidth, 0.02)
	seg := intOr(p.Segments, 8)
	size := floatOr(p.Size, 0.2)
	headRadius := width + floatOr(p.Delta, 0.05)

	dir, length := direction(start, end)
	if length == 0 {
		mathgraph.Logger().Warn("zero-length arrow", "name", p.Name)
	}
	shaftStart, shaftEnd := start, end
	if a.StartArrow {
		shaftStart = r3.Add(start, r3.Scale(size, dir))
		a.heads = append(a.heads, paint(Cone(shaftStart, start, headRadius, seg), p.Name, p.Style))
	}
	if a.EndArrow {
		shaftEnd = r3.Sub(end, r3.Scale(size, dir))
		a.heads = append(a.heads, paint(Cone(shaftEnd, end, headRadius, seg), p.Name, p.Style))
	}
	a.shaftLength = r3.Dot(r3.Sub(shaftEnd, shaftStart), dir)
	a.shaft = paint(Cylinder(shaftStart, shaftEnd, width, seg, seg), p.Name, p.Style)
	logMesh("arrow", p.Name, a.Meshes())
	return a, nil
}

// ShaftLength returns the length of the cylinder, which is the distance
// between the end points minus the length of each head.  The result is
// negative if the heads overlap.
func (a *Arrow3D) ShaftLength() float64 {
	return a.shaftLength
}

// Meshes implements the [Object] interface.  The shaft comes first,
// followed by the heads.
func (a *Arrow3D) Meshes() []*Mesh {
	return append([]*Mesh{a.shaft}, a.heads...)
}
