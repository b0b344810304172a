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
)

var zAxis = r3.Vec{Z: 1}

// basis returns two unit vectors u, v perpendicular to the unit vector
// dir, with u × v = dir.
func basis(dir r3.Vec) (u, v r3.Vec) {
	helper := r3.Vec{X: 1}
	if math.Abs(dir.X) > 0.9 {
		helper = r3.Vec{Y: 1}
	}
	u = r3.Unit(r3.Cross(helper, dir))
	v = r3.Cross(dir, u)
	return u, v
}

// direction returns the unit vector from a to b and the distance.  For
// coincident points the direction is the z axis.
func direction(a, b r3.Vec) (r3.Vec, float64) {
	d := r3.Sub(b, a)
	l := r3.Norm(d)
	if l == 0 {
		return zAxis, 0
	}
	return r3.Scale(1/l, d), l
}

// ring appends n points of the circle with the given centre and radius,
// in the plane spanned by u and v.
func ring(vs []r3.Vec, c, u, v r3.Vec, r float64, n int) []r3.Vec {
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		vs = append(vs, r3.Add(c, r3.Add(r3.Scale(r*cos, u), r3.Scale(r*sin, v))))
	}
	return vs
}

// joinRings adds the faces between the n-point rings starting at vertex
// indices a and b.
func joinRings(faces [][3]int, a, b, n int) [][3]int {
	for i := range n {
		j := (i + 1) % n
		faces = append(faces,
			[3]int{a + i, a + j, b + j},
			[3]int{a + i, b + j, b + i})
	}
	return faces
}

// fan adds a triangle fan closing the n-point ring at index first, with
// centre vertex c.  If flip is set, the fan faces against the ring's
// orientation.
func fan(faces [][3]int, c, first, n int, flip bool) [][3]int {
	for i := range n {
		a, b := first+i, first+(i+1)%n
		if flip {
			a, b = b, a
		}
		faces = append(faces, [3]int{c, a, b})
	}
	return faces
}

// Cylinder returns a closed cylinder with axis from a to b.  The mantle
// is divided into radial segments around the axis and height segments
// along it.
func Cylinder(a, b r3.Vec, radius float64, radial, height int) *Mesh {
	radial = max(radial, 3)
	height = max(height, 1)
	dir, length := direction(a, b)
	u, v := basis(dir)

	m := &Mesh{}
	for j := 0; j <= height; j++ {
		c := r3.Add(a, r3.Scale(length*float64(j)/float64(height), dir))
		m.Vertices = ring(m.Vertices, c, u, v, radius, radial)
	}
	for j := range height {
		m.Faces = joinRings(m.Faces, j*radial, (j+1)*radial, radial)
	}

	bottom := len(m.Vertices)
	m.Vertices = append(m.Vertices, a, b)
	m.Faces = fan(m.Faces, bottom, 0, radial, true)
	m.Faces = fan(m.Faces, bottom+1, height*radial, radial, false)
	return m
}

// Cone returns a closed cone with its base circle centred at base and its
// tip at apex.
func Cone(base, apex r3.Vec, radius float64, radial int) *Mesh {
	radial = max(radial, 3)
	dir, _ := direction(base, apex)
	u, v := basis(dir)

	m := &Mesh{}
	m.Vertices = ring(m.Vertices, base, u, v, radius, radial)
	tip := len(m.Vertices)
	m.Vertices = append(m.Vertices, apex, base)
	for i := range radial {
		m.Faces = append(m.Faces, [3]int{i, (i + 1) % radial, tip})
	}
	m.Faces = fan(m.Faces, tip+1, 0, radial, true)
	return m
}

// Sphere returns a UV sphere with the given number of segments around the
// z axis (width) and from pole to pole (height).
func Sphere(center r3.Vec, radius float64, width, height int) *Mesh {
	width = max(width, 3)
	height = max(height, 2)

	m := &Mesh{}
	for iy := 0; iy <= height; iy++ {
		theta := math.Pi * float64(iy) / float64(height)
		sinT, cosT := math.Sincos(theta)
		for ix := 0; ix <= width; ix++ {
			sinL, cosL := math.Sincos(2 * math.Pi * float64(ix) / float64(width))
			p := r3.Vec{X: sinT * cosL, Y: sinT * sinL, Z: cosT}
			m.Vertices = append(m.Vertices, r3.Add(center, r3.Scale(radius, p)))
		}
	}
	row := width + 1
	for iy := range height {
		for ix := range width {
			a := iy*row + ix
			b := a + 1
			d := a + row
			c := d + 1
			if iy != height-1 {
				m.Faces = append(m.Faces, [3]int{a, d, c})
			}
			if iy != 0 {
				m.Faces = append(m.Faces, [3]int{a, c, b})
			}
		}
	}
	return m
}

// Parametric returns the surface fn(u, v) for u, v in [0, 1], sampled on
// a grid of (slices+1) × (stacks+1) points.
func Parametric(fn func(u, v float64) r3.Vec, slices, stacks int) *Mesh {
	slices = max(slices, 1)
	stacks = max(stacks, 1)

	m := &Mesh{}
	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			u := float64(j) / float64(slices)
			m.Vertices = append(m.Vertices, fn(u, v))
		}
	}
	row := slices + 1
	for i := range stacks {
		for j := range slices {
			a := i*row + j
			b := (i+1)*row + j
			c := b + 1
			d := a + 1
			m.Faces = append(m.Faces, [3]int{a, b, d}, [3]int{b, c, d})
		}
	}
	return m
}

// Frames computes rotation-minimising frames along a polyline, using the
// double reflection method.  For each point it returns a unit tangent T
// and a unit normal N; the binormal is T × N.
func Frames(points []r3.Vec) (tangents, normals []r3.Vec) {
	n := len(points)
	if n == 0 {
		return nil, nil
	}
	tangents = make([]r3.Vec, n)
	for i := range points {
		prev, next := points[max(i-1, 0)], points[min(i+1, n-1)]
		t := r3.Sub(next, prev)
		if r3.Norm(t) == 0 {
			if i > 0 {
				tangents[i] = tangents[i-1]
			} else {
				tangents[i] = zAxis
			}
			continue
		}
		tangents[i] = r3.Unit(t)
	}

	normals = make([]r3.Vec, n)
	normals[0], _ = basis(tangents[0])
	for i := 0; i < n-1; i++ {
		r, t := normals[i], tangents[i]
		v1 := r3.Sub(points[i+1], points[i])
		if c1 := r3.Dot(v1, v1); c1 > 0 {
			r = r3.Sub(r, r3.Scale(2/c1*r3.Dot(v1, r), v1))
			t = r3.Sub(t, r3.Scale(2/c1*r3.Dot(v1, t), v1))
		}
		v2 := r3.Sub(tangents[i+1], t)
		if c2 := r3.Dot(v2, v2); c2 > 0 {
			r = r3.Sub(r, r3.Scale(2/c2*r3.Dot(v2, r), v2))
		}
		normals[i+1] = r3.Unit(r)
	}
	return tangents, normals
}

// Tube returns an open tube of the given radius around the polyline
// through points.
func Tube(points []r3.Vec, radius float64, radial int) *Mesh {
	radial = max(radial, 3)
	tangents, normals := Frames(points)

	m := &Mesh{}
	for i, p := range points {
		b := r3.Cross(tangents[i], normals[i])
		m.Vertices = ring(m.Vertices, p, normals[i], b, radius, radial)
	}
	for i := 0; i+1 < len(points); i++ {
		m.Faces = joinRings(m.Faces, i*radial, (i+1)*radial, radial)
	}
	return m
}
