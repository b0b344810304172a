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

	"seehuhn.de/go/mathgraph/style"
)

// Default colours of an [Axis3D].
var DefaultAxisColors = AxisColors{X: "#ff0000", Y: "#00ff00", Z: "#0000ff"}

// Grid colours, matching the usual grid helper of 3D engines.
const (
	gridColor       = "#888888"
	gridCenterColor = "#444444"
)

// AxisColors holds one colour per axis.
type AxisColors struct {
	X, Y, Z string
}

// AxisSet selects some of the three axes.
type AxisSet struct {
	X, Y, Z bool
}

// Axis3DParams holds the construction parameters of an [Axis3D].
type Axis3DParams struct {
	Name string

	// Size is the length of each axis and of the grid, default 10.
	Size float64

	HideGrid   bool
	HideAxis   AxisSet
	HideOrigin bool

	// Color sets the colour of all three axes.  It takes precedence over
	// Colors.
	Color string

	// Colors sets the colours of individual axes.  Empty entries keep the
	// defaults.
	Colors AxisColors
}

// Axis3D is a coordinate triad of arrows centred at the origin, with an
// optional origin sphere and an optional grid in the xy plane.
type Axis3D struct {
	Name   string
	Size   float64
	Colors AxisColors

	group Group
}

// NewAxis3D returns a new triad.
func NewAxis3D(p Axis3DParams) (*Axis3D, error) {
	a := &Axis3D{
		Name:   p.Name,
		Size:   floatOr(p.Size, 10),
		Colors: DefaultAxisColors,
	}
	for _, c := range []struct {
		dst *string
		src string
	}{
		{&a.Colors.X, p.Colors.X},
		{&a.Colors.Y, p.Colors.Y},
		{&a.Colors.Z, p.Colors.Z},
	} {
		switch {
		case p.Color != "":
			*c.dst = p.Color
		case c.src != "":
			*c.dst = c.src
		}
	}

	n := a.Size / 2
	a.group.Name = p.Name
	for _, ax := range []struct {
		hide  bool
		dir   r3.Vec
		color string
	}{
		{p.HideAxis.X, r3.Vec{X: 1}, a.Colors.X},
		{p.HideAxis.Y, r3.Vec{Y: 1}, a.Colors.Y},
		{p.HideAxis.Z, r3.Vec{Z: 1}, a.Colors.Z},
	} {
		if ax.hide {
			continue
		}
		arrow, err := NewArrow3D(Arrow3DParams{
			Name:  p.Name,
			Start: r3.Scale(-n, ax.dir),
			End:   r3.Scale(n, ax.dir),
			Style: style.Style{Color: style.String(ax.color)},
		})
		if err != nil {
			return nil, err
		}
		a.group.Children = append(a.group.Children, arrow)
	}

	if !p.HideOrigin {
		origin, err := NewPoint3D(Point3DParams{Name: p.Name})
		if err != nil {
			return nil, err
		}
		a.group.Children = append(a.group.Children, origin)
	}

	if !p.HideGrid {
		a.group.Children = append(a.group.Children, newGrid(p.Name, a.Size, int(math.Round(a.Size))))
	}
	return a, nil
}

// Meshes implements the [Object] interface.
func (a *Axis3D) Meshes() []*Mesh {
	return a.group.Meshes()
}

// grid is a square line grid in the xy plane, centred at the origin.
type grid struct {
	lines, center *Mesh
}

// newGrid builds the grid in the xz plane, the usual orientation of grid
// helpers, and turns it into the xy plane by a quarter rotation about the
// x axis.
func newGrid(name string, size float64, divisions int) *grid {
	divisions = max(divisions, 1)
	rot := r3.NewRotation(math.Pi/2, r3.Vec{X: 1})
	half := size / 2
	step := size / float64(divisions)

	g := &grid{
		lines:  &Mesh{Name: name, Color: gridColor, Opacity: 1},
		center: &Mesh{Name: name, Color: gridCenterColor, Opacity: 1},
	}
	for i := 0; i <= divisions; i++ {
		k := -half + float64(i)*step
		m := g.lines
		if 2*i == divisions {
			m = g.center
		}
		for _, seg := range [2][2]r3.Vec{
			{{X: -half, Z: k}, {X: half, Z: k}},
			{{X: k, Z: -half}, {X: k, Z: half}},
		} {
			idx := len(m.Vertices)
			m.Vertices = append(m.Vertices, rot.Rotate(seg[0]), rot.Rotate(seg[1]))
			m.Lines = append(m.Lines, [2]int{idx, idx + 1})
		}
	}
	return g
}

func (g *grid) Meshes() []*Mesh {
	return []*Mesh{g.lines, g.center}
}
