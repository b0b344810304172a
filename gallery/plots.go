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

func sine(m *axis.Mapping) (*shape2d.Plot, error) {
	return shape2d.NewPlot(shape2d.PlotParams{
		Func: math.Sin,
		Axis: m,
		Style: style.Style{
			Color:     style.String("#ff0000"),
			LineWidth: style.Float(4),
		},
	})
}

func parabola(m *axis.Mapping) (*shape2d.Plot, error) {
	return shape2d.NewPlot(shape2d.PlotParams{
		Func: func(x float64) float64 { return x*x/2 - 4 },
		Axis: m,
		Style: style.Style{
			Color:     style.String("#0000ff"),
			LineWidth: style.Float(4),
		},
	})
}

func cubic(m *axis.Mapping) (*shape2d.AcotPlot, error) {
	s := style.Style{
		Color:     style.String("#ecfd00"),
		LineWidth: style.Float(2),
	}
	return shape2d.NewAcotPlot(shape2d.AcotPlotParams{
		Func:          func(x float64) float64 { return x*x*x/2 + 1 },
		Range:         []float64{-1, 1},
		Axis:          m,
		PlotStyle:     s,
		DashPlotStyle: s,
	})
}

var plotScenes = []Scene{
	{
		Name: "sine",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			p, err := sine(m)
			add(&b, p, err)
			return b.result()
		},
	},
	{
		Name: "parabola",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			p, err := parabola(m)
			add(&b, p, err)
			return b.result()
		},
	},
	{
		Name: "acot",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			p, err := cubic(m)
			add(&b, p, err)
			return b.result()
		},
	},
	{
		Name: "exact_steps",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			p, err := shape2d.NewPlot(shape2d.PlotParams{
				Func:        math.Abs,
				Range:       []float64{-4, 4},
				Step:        0.75,
				SampleExact: true,
				Axis:        m,
				Style: style.Style{
					Color:     style.String("#0086df"),
					LineWidth: style.Float(3),
				},
			})
			add(&b, p, err)
			return b.result()
		},
	},
}

var combinedScenes = []Scene{
	{
		Name: "all",
		Build: func(m *axis.Mapping) ([]shape2d.Shape, error) {
			var b shapes
			for _, sc := range []Scene{
				find(angleScenes, "rect_angle"),
				find(plotScenes, "sine"),
				find(plotScenes, "parabola"),
				find(plotScenes, "acot"),
				find(lineScenes, "two_points"),
				find(lineScenes, "point_with_angle"),
				find(angleScenes, "right"),
				find(pointScenes, "projections"),
				find(arrowScenes, "diagonal"),
			} {
				list, err := sc.Build(m)
				if err != nil {
					return nil, err
				}
				b.list = append(b.list, list...)
			}
			return b.result()
		},
	},
}
