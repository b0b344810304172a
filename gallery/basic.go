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
	"seehuhn.de/go/mathgraph/axis"
	"seehuhn.de/go/mathgraph/shape2d"
	"seehuhn.de/go/mathgraph/style"
)

var pointScenes = []Scene{
	{
		Name: "default",
		Build: func(*axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			p, err := shape2d.NewPoint(shape2d.PointParams{})
			add(&b, p, err)
			return b.result()
		},
	},
	{
		Name: "styled",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			colors := []string{"#0086df", "#991145", "#11992e"}
			for i, c := range colors {
				p, err := shape2d.NewPoint(shape2d.PointParams{
					Point:  m.CoordsToPoint(float64(2*i-2), 1),
					Radius: float64(4 + 3*i),
					Style: style.Style{
						Color:       style.String(c),
						BorderColor: style.String("#333333"),
						LineWidth:   style.Float(2),
					},
				})
				add(&b, p, err)
			}
			return b.result()
		},
	},
	{
		Name: "projections",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			p, err := shape2d.NewPointWithProjections(shape2d.ProjectionParams{
				Point:  m.CoordsToPoint(2, -3),
				Origin: m.Origin(),
				Radius: 5,
				PointStyle: style.Style{
					Color:     style.String("#0086df"),
					LineWidth: style.Float(2),
				},
				LineStyle: style.Style{
					Color:     style.String("#93cbf0"),
					LineWidth: style.Float(2),
				},
			})
			add(&b, p, err)
			return b.result()
		},
	},
}

var lineScenes = []Scene{
	{
		Name: "two_points",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			l, err := shape2d.NewLine(shape2d.LineParams{
				Start: m.CoordsToPoint(-4, 3),
				End:   m.CoordsToPoint(4, 3),
				Style: style.Style{
					Color:     style.String("#11992e"),
					LineWidth: style.Float(2),
				},
			})
			add(&b, l, err)
			return b.result()
		},
	},
	{
		Name: "point_with_angle",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			l, err := shape2d.NewLinePointWithAngle(shape2d.LinePointWithAngleParams{
				Point:  m.CoordsToPoint(4, 0),
				Center: true,
				Angle:  30 * deg,
				Style: style.Style{
					Color:     style.String("#2a1199"),
					LineWidth: style.Float(2),
				},
			})
			add(&b, l, err)
			return b.result()
		},
	},
	{
		Name:   "dashed",
		NoAxis: true,
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			for i, dash := range [][]float64{{10}, {10, 5}, {2, 4, 8}} {
				y := 4 - 2*float64(i)
				l, err := shape2d.NewLine(shape2d.LineParams{
					Start: m.CoordsToPoint(-4, y),
					End:   m.CoordsToPoint(4, y),
					Style: style.Style{
						LineWidth: style.Float(3),
						LineDash:  dash,
					},
				})
				add(&b, l, err)
			}
			return b.result()
		},
	},
}
