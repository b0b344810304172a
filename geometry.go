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

package mathgraph

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxArcStep is the largest angle covered by a single cubic Bézier segment
// when approximating a circular arc.
const maxArcStep = math.Pi / 2

// AppendArc appends a circular arc to p as a sequence of cubic Bézier
// segments.  The arc has centre c and radius r, starts at angle a0 and
// sweeps by sweep radians; positive sweeps increase the angle.  Angles are
// measured from the positive x-axis towards the positive y-axis.
//
// The start point of the arc must already be the current point of p.
func AppendArc(p *path.Data, c vec.Vec2, r, a0, sweep float64) *path.Data {
	if sweep == 0 || r == 0 {
		return p
	}
	n := max(int(math.Ceil(math.Abs(sweep)/maxArcStep-1e-9)), 1)
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	a := a0
	for range n {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		p0 := vec.Vec2{X: c.X + r*cosA, Y: c.Y + r*sinA}
		p3 := vec.Vec2{X: c.X + r*cosB, Y: c.Y + r*sinB}
		p1 := vec.Vec2{X: p0.X - k*sinA, Y: p0.Y + k*cosA}
		p2 := vec.Vec2{X: p3.X + k*sinB, Y: p3.Y - k*cosB}
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, p1, p2, p3)
		a = b
	}
	return p
}

// ArcSweep converts a start and end angle into a signed sweep, following
// the rules of an HTML canvas arc: if the difference covers a full turn in
// either direction the arc is a whole circle; otherwise the sweep is the
// angle from start to end travelled clockwise (increasing) or, if
// anticlockwise is set, anticlockwise (decreasing).
func ArcSweep(start, end float64, anticlockwise bool) float64 {
	const full = 2 * math.Pi
	d := end - start
	if math.Abs(d) >= full {
		if anticlockwise {
			return -full
		}
		return full
	}
	if anticlockwise {
		s := math.Mod(start-end, full)
		if s < 0 {
			s += full
		}
		return -s
	}
	s := math.Mod(d, full)
	if s < 0 {
		s += full
	}
	return s
}

// Polar returns the point at distance r from c in direction angle.
func Polar(c vec.Vec2, r, angle float64) vec.Vec2 {
	return vec.Vec2{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}
