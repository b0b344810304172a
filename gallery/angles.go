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

	"seehuhn.de/go/mathgraph/axis"
	"seehuhn.de/go/mathgraph/shape2d"
	"seehuhn.de/go/mathgraph/style"
)

const deg = math.Pi / 180

var anglePalette = style.Style{
	Color:     style.String("#991145"),
	LineWidth: style.Float(2),
}

// angleScene returns a scene with a single angle at (-4, 0).
func angleScene(name string, angle, rotate float64) Scene {
	return Scene{
		Name: name,
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			a, err := shape2d.NewAngle(shape2d.AngleParams{
				Point:  m.CoordsToPoint(-4, 0),
				Angle:  angle,
				Rotate: rotate,
				Style:  anglePalette,
			})
			add(&b, a, err)
			return b.result()
		},
	}
}

var angleScenes = []Scene{
	angleScene("right", 90*deg, 0),
	angleScene("reflex", 250*deg, 0),
	angleScene("clockwise", -60*deg, 0),
	angleScene("rotated", 45*deg, 120*deg),
	{
		Name: "rect_angle",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			r, err := shape2d.NewRectAngle(shape2d.RectAngleParams{
				Point:  m.CoordsToPoint(2, 0),
				Rotate: 30 * deg,
				Style:  anglePalette,
			})
			add(&b, r, err)
			return b.result()
		},
	},
	{
		Name: "quadrants",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			for _, q := range []any{shape2d.Quadrant1, shape2d.Quadrant2, shape2d.Quadrant3, shape2d.Quadrant4} {
				r, err := shape2d.NewRectAngle(shape2d.RectAngleParams{
					Point:    m.Origin(),
					Size:     40,
					Quadrant: q,
					Style:    anglePalette,
				})
				add(&b, r, err)
			}
			return b.result()
		},
	},
}

var arrowScenes = []Scene{
	{
		Name: "diagonal",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			a, err := shape2d.NewArrow(shape2d.ArrowParams{
				Start: m.CoordsToPoint(-4, 3),
				End:   m.CoordsToPoint(4, -3),
				Style: style.Style{
					Color:     style.String("#11992e"),
					LineWidth: style.Float(2),
				},
			})
			add(&b, a, err)
			return b.result()
		},
	},
	{
		Name: "heads",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			cases := []struct{ start, end bool }{
				{true, true},
				{false, true},
				{true, false},
			}
			for i, c := range cases {
				y := 3 - 3*float64(i)
				a, err := shape2d.NewArrow(shape2d.ArrowParams{
					Start:      m.CoordsToPoint(-4, y),
					End:        m.CoordsToPoint(4, y),
					StartArrow: shape2d.Bool(c.start),
					EndArrow:   shape2d.Bool(c.end),
					Size:       20,
					Delta:      25 * deg,
					Style: style.Style{
						Color:     style.String("#2a1199"),
						LineWidth: style.Float(3),
					},
				})
				add(&b, a, err)
			}
			return b.result()
		},
	},
}
