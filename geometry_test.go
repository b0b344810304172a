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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestArcSweep(t *testing.T) {
	cases := []struct {
		start, end float64
		ccw        bool
		want       float64
	}{
		{0, 2 * math.Pi, false, 2 * math.Pi},
		{0, 2 * math.Pi, true, -2 * math.Pi},
		{0, math.Pi / 2, false, math.Pi / 2},
		{0, math.Pi / 2, true, -3 * math.Pi / 2},
		{0, -math.Pi / 2, true, -math.Pi / 2},
		{-0.5, -1.5, true, -1},
		{0, 0, false, 0},
	}
	for _, tc := range cases {
		got := ArcSweep(tc.start, tc.end, tc.ccw)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("ArcSweep(%g, %g, %t) = %g, want %g",
				tc.start, tc.end, tc.ccw, got, tc.want)
		}
	}
}

func TestAppendArc(t *testing.T) {
	c := vec.Vec2{X: 10, Y: 20}
	const r = 5.0
	p := (&path.Data{}).MoveTo(Polar(c, r, 0))
	AppendArc(p, c, r, 0, -3*math.Pi/2)

	if len(p.Cmds) != 4 {
		t.Fatalf("got %d commands, want moveto + 3 cubics", len(p.Cmds))
	}
	end := p.Coords[len(p.Coords)-1]
	want := Polar(c, r, -3*math.Pi/2)
	if end.Sub(want).Length() > 1e-9 {
		t.Errorf("arc ends at %v, want %v", end, want)
	}

	// The midpoint of each cubic lies on the circle within the usual
	// approximation error of 2.7e-4 r for quarter circles.
	for i := 1; i < len(p.Cmds); i++ {
		k := 1 + 3*(i-1)
		p0 := p.Coords[k-1]
		p1, p2, p3 := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
		mid := p0.Add(p1.Mul(3)).Add(p2.Mul(3)).Add(p3).Mul(0.125)
		if d := math.Abs(mid.Sub(c).Length() - r); d > 3e-4*r {
			t.Errorf("segment %d: midpoint off the circle by %g", i, d)
		}
	}
}
