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

package svg

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
)

func TestNodeString(t *testing.T) {
	g := NewElement("g").SetAttr("class", "Arrow")
	g.Append(NewElement("path").SetAttrs([]Attr{
		{"d", "M0 0L1 1"},
		{"stroke-dasharray", ""},
		{"fill", "none"},
	}))
	got := g.String()
	want := `<g class="Arrow"><path d="M0 0L1 1" fill="none"></path></g>`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestSetAttrReplaces(t *testing.T) {
	n := NewElement("circle").SetAttr("r", "1").SetAttr("cx", "0").SetAttr("r", "2")
	if len(n.Attrs) != 2 {
		t.Fatalf("got %d attributes, want 2", len(n.Attrs))
	}
	if v, _ := n.Attr("r"); v != "2" {
		t.Errorf("r = %q, want 2", v)
	}
	if n.Attrs[0].Name != "r" {
		t.Error("replacing a value changed the attribute order")
	}
}

func TestSetAttrsKeepsZero(t *testing.T) {
	n := NewElement("circle").SetAttrs([]Attr{
		{"stroke-width", "0"},
		{"stroke-dasharray", ""},
		{"fill-opacity", "0"},
	})
	if v, ok := n.Attr("stroke-width"); !ok || v != "0" {
		t.Errorf("stroke-width = %q, %t, want \"0\"", v, ok)
	}
	if _, ok := n.Attr("fill-opacity"); !ok {
		t.Error("zero fill-opacity dropped")
	}
	if _, ok := n.Attr("stroke-dasharray"); ok {
		t.Error("empty stroke-dasharray emitted")
	}
}

func TestDocumentEncode(t *testing.T) {
	doc := NewDocument(200, 100)
	doc.Append(NewElement("text").SetText("a<b"))
	buf := &strings.Builder{}
	if err := doc.Encode(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`xmlns="http://www.w3.org/2000/svg"`,
		`viewBox="0 0 200 100"`,
		`<text>a&lt;b</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s:\n%s", want, out)
		}
	}
}

func TestNum(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{10, "10"},
		{-2.5, "-2.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
	}
	for _, tc := range cases {
		if got := Num(tc.in); got != tc.want {
			t.Errorf("Num(%g) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseLine(t *testing.T) {
	p, err := ParsePathD("M10 10L50 10")
	if err != nil {
		t.Fatal(err)
	}
	want := (&path.Data{}).MoveTo(vec.Vec2{X: 10, Y: 10}).LineTo(vec.Vec2{X: 50, Y: 10})
	if !slices.Equal(p.Cmds, want.Cmds) || !equalPts(p.Coords, want.Coords) {
		t.Errorf("got %v %v", p.Cmds, p.Coords)
	}
}

func TestParseRelativeAndImplicit(t *testing.T) {
	p, err := ParsePathD("m1,1 2,0 0,2h-2v-2z")
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 1}}
	if !equalPts(p.Coords, want) {
		t.Errorf("got %v, want %v", p.Coords, want)
	}
	if p.Cmds[len(p.Cmds)-1] != path.CmdClose {
		t.Error("missing close command")
	}
}

func TestParseCircle(t *testing.T) {
	// the form used for points: two half circles starting at the right
	p, err := ParsePathD("M20 30m4 0a4 4 0 0 0 -8 0a4 4 0 0 0 8 0")
	if err != nil {
		t.Fatal(err)
	}
	centre := vec.Vec2{X: 20, Y: 30}
	top := false
	for i, q := range p.Coords {
		if i == 0 {
			continue // the initial lone moveto
		}
		// control points lie off the circle, so only check end points
		// of each cubic (every third coordinate)
		if (i-1)%3 != 0 {
			continue
		}
		if d := q.Sub(centre).Length(); math.Abs(d-4) > 1e-9 {
			t.Errorf("point %v at distance %g from the centre", q, d)
		}
		if q.Y < 30-3.9 {
			top = true
		}
	}
	if !top {
		t.Error("first half circle does not pass through the top")
	}
	last := p.Coords[len(p.Coords)-1]
	if last != (vec.Vec2{X: 24, Y: 30}) {
		t.Errorf("circle ends at %v", last)
	}
}

func TestParseArcSweepDirection(t *testing.T) {
	// quarter circle from (10,0) to (0,10) around the origin, sweep=1
	// passes through positive x and y
	p, err := ParsePathD("M10 0A10 10 0 0 1 0 10")
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range p.Coords {
		if q.X < -1e-9 || q.Y < -1e-9 {
			t.Errorf("point %v outside the first quadrant", q)
		}
	}
	// sweep=0 selects the circle centred at (10,10)
	p, err = ParsePathD("M10 0A10 10 0 0 0 0 10")
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range p.Coords {
		if q.X > 10+1e-9 || q.Y > 10+1e-9 {
			t.Errorf("point %v outside the expected quadrant", q)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{"10 10", "M10", "M1 1A1 1 0 2 0 3 3", "M0 0Z 1 1", "M0 0X"} {
		_, err := ParsePathD(d)
		if !errors.Is(err, mathgraph.ErrInvalidGeometryInput) {
			t.Errorf("%q: got %v, want ErrInvalidGeometryInput", d, err)
		}
	}
}

func equalPts(a, b []vec.Vec2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Sub(b[i]).Length() > 1e-12 {
			return false
		}
	}
	return true
}
