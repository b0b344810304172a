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

// Package shape3d generates triangle meshes for 3D primitives: points,
// line segments, arrows, function surfaces, space curves and axis triads.
//
// The primitives do not render themselves.  Each one produces a list of
// [Mesh] values in world coordinates (Z up), which a renderer such as
// package scene3d consumes.
package shape3d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// A Mesh is a renderer independent mesh descriptor.  Faces are triangles
// with anticlockwise winding when seen from outside; Lines are segments
// drawn with a fixed width of one device pixel.
type Mesh struct {
	Name     string
	Vertices []r3.Vec
	Faces    [][3]int
	Lines    [][2]int

	Color   string
	Opacity float64

	// DoubleSided marks surfaces which are visible from both sides.
	DoubleSided bool
}

// Object is implemented by all 3D primitives.
type Object interface {
	Meshes() []*Mesh
}

// Group is a named collection of objects.
type Group struct {
	Name     string
	Children []Object
}

// Meshes implements the [Object] interface.
func (g *Group) Meshes() []*Mesh {
	var res []*Mesh
	for _, c := range g.Children {
		res = append(res, c.Meshes()...)
	}
	return res
}

// Translated returns obj moved by d.  The meshes of obj are copied on
// every call to Meshes.
func Translated(obj Object, d r3.Vec) Object {
	return translated{obj: obj, d: d}
}

type translated struct {
	obj Object
	d   r3.Vec
}

func (t translated) Meshes() []*Mesh {
	ms := t.obj.Meshes()
	res := make([]*Mesh, len(ms))
	for i, m := range ms {
		res[i] = m.Translate(t.d)
	}
	return res
}

// Meshes implements the [Object] interface, so that a single mesh can be
// added to a scene.
func (m *Mesh) Meshes() []*Mesh {
	return []*Mesh{m}
}

// Triangle returns face i as a triangle.
func (m *Mesh) Triangle(i int) r3.Triangle {
	f := m.Faces[i]
	return r3.Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Translate returns a copy of m, moved by d.
func (m *Mesh) Translate(d r3.Vec) *Mesh {
	res := *m
	res.Vertices = make([]r3.Vec, len(m.Vertices))
	for i, v := range m.Vertices {
		res.Vertices[i] = r3.Add(v, d)
	}
	return &res
}

// Bounds returns the smallest axis-aligned box containing all vertices.
// For an empty mesh both corners are the origin.
func (m *Mesh) Bounds() (lo, hi r3.Vec) {
	if len(m.Vertices) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	return lo, hi
}

// Wireframe returns a mesh consisting of the edges of m's faces, each
// edge listed once.
func Wireframe(m *Mesh) *Mesh {
	res := &Mesh{
		Name:     m.Name,
		Vertices: m.Vertices,
		Color:    m.Color,
		Opacity:  m.Opacity,
	}
	seen := make(map[[2]int]bool)
	for _, f := range m.Faces {
		for k := range 3 {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if a == b || seen[e] {
				continue
			}
			seen[e] = true
			res.Lines = append(res.Lines, e)
		}
	}
	return res
}
