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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
)

// BenchmarkFillO benchmarks the Rasteriser filling an "O" shape.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := clipRect(size, size)
			r := NewRasteriser(clip)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Fill(oPath, EvenOdd, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				feedVector(r, oPath)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeDashed measures stroking a dashed polyline with round
// joins.
func BenchmarkStrokeDashed(b *testing.B) {
	const size = 400
	p := &path.Data{}
	for i := range 200 {
		x := float64(i) * 2
		y := size/2 + 150*math.Sin(x/30)
		if i == 0 {
			p.MoveTo(vec.Vec2{X: x, Y: y})
		} else {
			p.LineTo(vec.Vec2{X: x, Y: y})
		}
	}

	r := NewRasteriser(clipRect(size, size))
	r.Width = 3
	r.Dash = []float64{5}
	emit := func(y, xMin int, coverage []float32) {}

	b.ReportAllocs()
	for b.Loop() {
		r.Stroke(p, emit)
	}
}

// makeOPath returns an "O" shape: the outer circle runs in the direction
// of increasing angle, the inner one in the opposite direction.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	c := vec.Vec2{X: cx, Y: cy}
	p := (&path.Data{}).MoveTo(vec.Vec2{X: cx + outerR, Y: cy})
	mathgraph.AppendArc(p, c, outerR, 0, 2*math.Pi).Close()
	p.MoveTo(vec.Vec2{X: cx + innerR, Y: cy})
	return mathgraph.AppendArc(p, c, innerR, 0, -2*math.Pi).Close()
}

// feedVector replays p on a vector.Rasterizer.
func feedVector(r *vector.Rasterizer, p *path.Data) {
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			q := p.Coords[k]
			r.MoveTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdLineTo:
			q := p.Coords[k]
			r.LineTo(float32(q.X), float32(q.Y))
			k++
		case path.CmdQuadTo:
			q1, q2 := p.Coords[k], p.Coords[k+1]
			r.QuadTo(float32(q1.X), float32(q1.Y), float32(q2.X), float32(q2.Y))
			k += 2
		case path.CmdCubeTo:
			q1, q2, q3 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			r.CubeTo(float32(q1.X), float32(q1.Y), float32(q2.X), float32(q2.Y), float32(q3.X), float32(q3.Y))
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// TestAgainstVector compares the coverage of a filled shape with the
// x/image/vector rasteriser.
func TestAgainstVector(t *testing.T) {
	const size = 64
	oPath := makeOPath(32, 32, 28, 18)

	r := NewRasteriser(clipRect(size, size))
	r.Flatness = 0.05
	ours := coverageGrid(size, size, func(emit Emit) {
		r.Fill(oPath, NonZero, emit)
	})

	v := vector.NewRasterizer(size, size)
	feedVector(v, oPath)
	ref := image.NewAlpha(image.Rect(0, 0, size, size))
	v.Draw(ref, ref.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})

	var worst float64
	for i, c := range ours {
		d := math.Abs(float64(c)*255 - float64(ref.Pix[i]))
		worst = max(worst, d)
	}
	if worst > 40 {
		t.Errorf("largest pixel difference %g exceeds 40", worst)
	}
}
