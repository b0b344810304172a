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

package gallery

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mathgraph/scene3d"
	"seehuhn.de/go/mathgraph/shape3d"
	"seehuhn.de/go/mathgraph/style"
)

var red = style.Style{Color: style.String("#ff0000")}

func spacePoints() ([]shape3d.Object, error) {
	var b objects
	for _, p := range []shape3d.Point3DParams{
		{Point: [3]float64{1, 1, 1}, Radius: 0.07},
		{Point: [3]float64{1, -1, 2}},
		{Point: [3]float64{3, 3, 3}, Radius: 0.3, Style: red},
	} {
		pt, err := shape3d.NewPoint3D(p)
		add3(&b, pt, err)
	}
	return b.result()
}

func spaceLines() ([]shape3d.Object, error) {
	var b objects
	l, err := shape3d.NewLine3D(shape3d.Line3DParams{})
	add3(&b, l, err)
	l, err = shape3d.NewLine3D(shape3d.Line3DParams{
		Start: [3]float64{1, -1, 2},
		End:   [3]float64{-1, 0, 1},
		Style: red,
	})
	add3(&b, l, err)
	return b.result()
}

func spaceArrows() ([]shape3d.Object, error) {
	var b objects
	a, err := shape3d.NewArrow3D(shape3d.Arrow3DParams{})
	add3(&b, a, err)
	a, err = shape3d.NewArrow3D(shape3d.Arrow3DParams{
		Start: [3]float64{1, -1, 2},
		End:   [3]float64{-1, 0, 1},
		Style: red,
	})
	add3(&b, a, err)
	a, err = shape3d.NewArrow3D(shape3d.Arrow3DParams{
		Start:      [3]float64{1, 1, 1},
		End:        [3]float64{1, -1, 2},
		StartArrow: shape3d.Bool(true),
		Style:      red,
	})
	add3(&b, a, err)
	return b.result()
}

func spaceSurfaces() ([]shape3d.Object, error) {
	var b objects
	p, err := shape3d.NewPlot3D(shape3d.Plot3DParams{
		Func: func(x, y float64) float64 { return math.Sin(x) + math.Cos(y) },
	})
	add3(&b, p, err)

	p, err = shape3d.NewPlot3D(shape3d.Plot3DParams{
		Func:   func(x, y float64) float64 { return x*x + y*y },
		RangeX: []float64{-2, 2},
		RangeY: []float64{-2, 2},
	})
	add3(&b, shape3d.Translated(p, r3.Vec{X: -3, Y: -3}), err)

	p, err = shape3d.NewPlot3D(shape3d.Plot3DParams{
		Func:           func(x, y float64) float64 { return x*x - y*y },
		RangeX:         []float64{-2, 2},
		RangeY:         []float64{-2, 2},
		Style:          style.Style{Color: style.String("#06407a")},
		WireframeStyle: style.Style{Color: style.String("#0819a0")},
	})
	add3(&b, shape3d.Translated(p, r3.Vec{X: 3, Y: -3}), err)
	return b.result()
}

func spaceCurve() ([]shape3d.Object, error) {
	var b objects
	p, err := shape3d.NewPlot2D(shape3d.Plot2DParams{
		Segments:       128,
		RadialSegments: 16,
		Func: func(t float64) r3.Vec {
			return r3.Vec{X: t, Y: 2, Z: math.Cos(t)}
		},
	})
	add3(&b, p, err)
	return b.result()
}

func viewFront(s *scene3d.Scene) {
	s.ChangeView(scene3d.Front, 12)
}

func viewUp(s *scene3d.Scene) {
	s.ChangeView(scene3d.Up, 7)
}

func orthographic(s *scene3d.Scene) {
	s.ToggleProjection()
}
