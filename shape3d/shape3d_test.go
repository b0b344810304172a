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
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/style"
)

const eps = 1e-9

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < eps
}

// TestOutwardFaces checks that the faces of closed solids are oriented
// away from an interior point.
func TestOutwardFaces(t *testing.T) {
	a := r3.Vec{X: 1, Y: 2, Z: 3}
	b := r3.Vec{X: 2, Y: 0, Z: 4}
	cases := []struct {
		name     string
		mesh     *Mesh
		interior r3.Vec
	}{
		{"cylinder", Cylinder(a, b, 0.3, 8, 3), r3.Scale(0.5, r3.Add(a, b))},
		{"cone", Cone(a, b, 0.5, 12), r3.Add(a, r3.Scale(0.25, r3.Sub(b, a)))},
		{"sphere", Sphere(a, 2, 16, 12), a},
		{"axis cylinder", Cylinder(r3.Vec{}, r3.Vec{X: 3}, 1, 5, 1), r3.Vec{X: 1.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if len(c.mesh.Faces) == 0 {
				t.Fatal("no faces")
			}
			for i := range c.mesh.Faces {
				tri := c.mesh.Triangle(i)
				if tri.IsDegenerate(1e-12) {
					t.Errorf("face %d is degenerate", i)
					continue
				}
				out := r3.Sub(tri.Centroid(), c.interior)
				if r3.Dot(tri.Normal(), out) <= 0 {
					t.Errorf("face %d points inwards", i)
				}
			}
		})
	}
}

func TestPoint3D(t *testing.T) {
	c := r3.Vec{X: 1, Y: -1, Z: 2}
	p, err := NewPoint3D(Point3DParams{Name: "P", Point: [3]float64{1, -1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	meshes := p.Meshes()
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	m := meshes[0]
	if len(m.Vertices) != 17*17 {
		t.Errorf("got %d vertices, want %d", len(m.Vertices), 17*17)
	}
	if len(m.Faces) != 16*16*2-2*16 {
		t.Errorf("got %d faces, want %d", len(m.Faces), 16*16*2-2*16)
	}
	for _, v := range m.Vertices {
		if d := r3.Norm(r3.Sub(v, c)); math.Abs(d-0.1) > eps {
			t.Fatalf("vertex %v at distance %g from the centre", v, d)
		}
	}
	if m.Color != "#ffffff" || m.Opacity != 1 || m.Name != "P" {
		t.Errorf("unexpected paint %q %g %q", m.Color, m.Opacity, m.Name)
	}
}

func TestInvalidInput(t *testing.T) {
	_, err := NewPoint3D(Point3DParams{Point: []float64{1, 2}})
	var gErr *mathgraph.GeometryError
	if !errors.As(err, &gErr) {
		t.Fatalf("got %v, want a GeometryError", err)
	}
	if gErr.Op != "shape3d.NewPoint3D" || gErr.Field != "point" {
		t.Errorf("unexpected error location %q %q", gErr.Op, gErr.Field)
	}
	if !errors.Is(err, mathgraph.ErrInvalidGeometryInput) {
		t.Errorf("error %v does not wrap ErrInvalidGeometryInput", err)
	}

	if _, err := NewArrow3D(Arrow3DParams{End: "up"}); !errors.Is(err, mathgraph.ErrInvalidGeometryInput) {
		t.Errorf("arrow: got %v", err)
	}
	if _, err := NewPlot3D(Plot3DParams{RangeX: []float64{1}}); !errors.Is(err, mathgraph.ErrInvalidGeometryInput) {
		t.Errorf("plot: got %v", err)
	}
}

func TestLine3D(t *testing.T) {
	l, err := NewLine3D(Line3DParams{End: r3.Vec{X: 3, Y: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if l.Length() != 5 {
		t.Errorf("length = %g, want 5", l.Length())
	}
	if !near(l.Midpoint(), r3.Vec{X: 1.5, Y: 2}) {
		t.Errorf("midpoint = %v", l.Midpoint())
	}
	m := l.Meshes()[0]
	if !near(m.Vertices[len(m.Vertices)-1], l.End) {
		t.Errorf("top cap centre %v, want %v", m.Vertices[len(m.Vertices)-1], l.End)
	}
	if d := r3.Norm(m.Vertices[0]); math.Abs(d-0.02) > eps {
		t.Errorf("radius %g, want 0.02", d)
	}
}

func TestArrow3D(t *testing.T) {
	cases := []struct {
		name       string
		start, end *bool
		heads      int
		shaft      float64
	}{
		{"default", nil, nil, 1, 0.8},
		{"both", Bool(true), nil, 2, 0.6},
		{"none", nil, Bool(false), 0, 1},
		{"start only", Bool(true), Bool(false), 1, 0.8},
	}
	end := r3.Vec{Z: 1}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := NewArrow3D(Arrow3DParams{
				End:        end,
				StartArrow: c.start,
				EndArrow:   c.end,
				Style:      style.Style{Color: style.String("#123456")},
			})
			if err != nil {
				t.Fatal(err)
			}
			meshes := a.Meshes()
			if len(meshes) != 1+c.heads {
				t.Fatalf("got %d meshes, want %d", len(meshes), 1+c.heads)
			}
			if math.Abs(a.ShaftLength()-c.shaft) > eps {
				t.Errorf("shaft length %g, want %g", a.ShaftLength(), c.shaft)
			}
			for _, m := range meshes {
				if m.Color != "#123456" {
					t.Errorf("colour %q", m.Color)
				}
			}
		})
	}

	a, err := NewArrow3D(Arrow3DParams{End: end})
	if err != nil {
		t.Fatal(err)
	}
	head := a.Meshes()[1]
	if !near(head.Vertices[8], end) {
		t.Errorf("apex %v, want %v", head.Vertices[8], end)
	}
	base := r3.Vec{Z: 0.8}
	if d := r3.Norm(r3.Sub(head.Vertices[0], base)); math.Abs(d-0.07) > eps {
		t.Errorf("head radius %g, want 0.07", d)
	}
	shaft := a.Meshes()[0]
	if !near(shaft.Vertices[len(shaft.Vertices)-1], base) {
		t.Errorf("shaft ends at %v, want %v", shaft.Vertices[len(shaft.Vertices)-1], base)
	}
}

func TestPlot3DNaN(t *testing.T) {
	p, err := NewPlot3D(Plot3DParams{
		Func: func(x, y float64) float64 {
			if x > 0 {
				return math.NaN()
			}
			return x + y
		},
		RangeX:   []float64{-1, 1},
		RangeY:   mathgraph.Range{Min: -1, Max: 1},
		Segments: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	s := p.Surface()
	if len(s.Vertices) != 9 || len(s.Faces) != 8 {
		t.Fatalf("got %d vertices and %d faces", len(s.Vertices), len(s.Faces))
	}
	for i := range 3 {
		if v := s.Vertices[3*i+2]; v != (r3.Vec{}) {
			t.Errorf("NaN sample %d at %v, want the origin", i, v)
		}
		if v := s.Vertices[3*i]; v.X != -1 {
			t.Errorf("sample %d at %v, want x = -1", 3*i, v)
		}
	}
	for _, v := range s.Vertices {
		if math.IsNaN(v.Z) {
			t.Fatal("NaN vertex in surface")
		}
	}
}

func TestPlot3DWireframe(t *testing.T) {
	p, err := NewPlot3D(Plot3DParams{Segments: 2})
	if err != nil {
		t.Fatal(err)
	}
	meshes := p.Meshes()
	if len(meshes) != 3 {
		t.Fatalf("got %d meshes, want 3", len(meshes))
	}
	surface := meshes[0]
	if surface.Opacity != 0.7 || !surface.DoubleSided {
		t.Errorf("surface opacity %g, double sided %t", surface.Opacity, surface.DoubleSided)
	}
	for k, dz := range []float64{0.01, -0.01} {
		w := meshes[k+1]
		if w.Color != "#cf1c1c" {
			t.Errorf("wireframe colour %q", w.Color)
		}
		if len(w.Faces) != 0 || len(w.Lines) != 16 {
			t.Errorf("wireframe has %d faces and %d lines", len(w.Faces), len(w.Lines))
		}
		for i, v := range w.Vertices {
			if math.Abs(v.Z-surface.Vertices[i].Z-dz) > eps {
				t.Fatalf("wireframe vertex %d at %v", i, v)
			}
		}
	}

	p, err = NewPlot3D(Plot3DParams{Wireframe: Bool(false)})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(p.Meshes()); n != 1 {
		t.Errorf("got %d meshes without wireframe", n)
	}
}

func TestPlot2D(t *testing.T) {
	p, err := NewPlot2D(Plot2DParams{})
	if err != nil {
		t.Fatal(err)
	}
	pts := p.Points()
	if len(pts) != 65 {
		t.Fatalf("got %d points, want 65", len(pts))
	}
	if pts[0] != (r3.Vec{X: -3, Y: 9, Z: 1}) || pts[64] != (r3.Vec{X: 3, Y: 9, Z: 1}) {
		t.Errorf("end points %v %v", pts[0], pts[64])
	}
	m := p.Meshes()[0]
	if len(m.Vertices) != 65*16 || len(m.Faces) != 64*16*2 {
		t.Errorf("got %d vertices and %d faces", len(m.Vertices), len(m.Faces))
	}
	for i, pt := range pts {
		for j := range 16 {
			v := m.Vertices[16*i+j]
			if d := r3.Norm(r3.Sub(v, pt)); math.Abs(d-0.1) > eps {
				t.Fatalf("ring %d vertex %d at distance %g", i, j, d)
			}
		}
	}
}

func TestFrames(t *testing.T) {
	var pts []r3.Vec
	for i := range 50 {
		s, c := math.Sincos(float64(i) * 0.2)
		pts = append(pts, r3.Vec{X: c, Y: s, Z: 0.1 * float64(i)})
	}
	pts = append(pts, pts[len(pts)-1])
	tangents, normals := Frames(pts)
	for i := range pts {
		if math.Abs(r3.Norm(tangents[i])-1) > eps || math.Abs(r3.Norm(normals[i])-1) > eps {
			t.Fatalf("frame %d is not normalised", i)
		}
		if d := r3.Dot(tangents[i], normals[i]); math.Abs(d) > 1e-6 {
			t.Fatalf("frame %d: T·N = %g", i, d)
		}
	}
}

func TestAxis3D(t *testing.T) {
	a, err := NewAxis3D(Axis3DParams{})
	if err != nil {
		t.Fatal(err)
	}
	meshes := a.Meshes()
	if len(meshes) != 3*2+1+2 {
		t.Fatalf("got %d meshes, want 9", len(meshes))
	}
	want := []string{"#ff0000", "#ff0000", "#00ff00", "#00ff00", "#0000ff", "#0000ff"}
	for i, c := range want {
		if meshes[i].Color != c {
			t.Errorf("mesh %d has colour %q, want %q", i, meshes[i].Color, c)
		}
	}
	lines, center := meshes[7], meshes[8]
	if len(lines.Lines) != 20 || len(center.Lines) != 2 {
		t.Errorf("grid has %d+%d lines", len(lines.Lines), len(center.Lines))
	}
	if center.Color != "#444444" || lines.Color != "#888888" {
		t.Errorf("grid colours %q %q", lines.Color, center.Color)
	}
	for _, v := range append(lines.Vertices, center.Vertices...) {
		if math.Abs(v.Z) > eps || math.Abs(v.X) > 5+eps || math.Abs(v.Y) > 5+eps {
			t.Fatalf("grid vertex %v outside the xy square", v)
		}
	}
	lo, hi := meshes[4].Bounds()
	if math.Abs(lo.Z+5) > eps || hi.Z > 5 {
		t.Errorf("z shaft spans %g..%g", lo.Z, hi.Z)
	}

	a, err = NewAxis3D(Axis3DParams{
		Size:       4,
		HideGrid:   true,
		HideOrigin: true,
		HideAxis:   AxisSet{Y: true},
		Color:      "#abcdef",
	})
	if err != nil {
		t.Fatal(err)
	}
	meshes = a.Meshes()
	if len(meshes) != 4 {
		t.Fatalf("got %d meshes, want 4", len(meshes))
	}
	for _, m := range meshes {
		if m.Color != "#abcdef" {
			t.Errorf("colour %q", m.Color)
		}
	}
}

func TestWireframeEdges(t *testing.T) {
	m := Cone(r3.Vec{}, r3.Vec{Z: 1}, 1, 6)
	w := Wireframe(m)
	// ring, spokes to the apex and spokes to the base centre
	if len(w.Lines) != 3*6 {
		t.Errorf("got %d edges, want 18", len(w.Lines))
	}
	first := m.Vertices[0]
	moved := m.Translate(r3.Vec{X: 1})
	if m.Vertices[0] != first {
		t.Error("Translate modified the original")
	}
	if !near(moved.Vertices[0], r3.Add(first, r3.Vec{X: 1})) {
		t.Errorf("translated vertex %v", moved.Vertices[0])
	}
}

func TestTranslated(t *testing.T) {
	p, err := NewPoint3D(Point3DParams{})
	if err != nil {
		t.Fatal(err)
	}
	d := r3.Vec{X: -3, Y: -3}
	moved := Translated(p, d).Meshes()
	orig := p.Meshes()
	if len(moved) != len(orig) {
		t.Fatalf("got %d meshes, want %d", len(moved), len(orig))
	}
	for i, v := range orig[0].Vertices {
		if !near(moved[0].Vertices[i], r3.Add(v, d)) {
			t.Fatalf("vertex %d at %v", i, moved[0].Vertices[i])
		}
	}
}
