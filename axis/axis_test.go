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

package axis

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/svg"
)

func TestOriginExact(t *testing.T) {
	cases := []struct {
		name string
		p    Params
		want vec.Vec2
	}{
		{"default", Params{}, vec.Vec2{X: 500, Y: 262}},
		{"asymmetric", Params{
			Center:  []float64{300, 200},
			LengthX: 400, LengthY: 300,
			RangeX: [2]float64{-1, 3},
			RangeY: map[string]float64{"min": -1, "max": 3},
		}, vec.Vec2{X: 300, Y: 200}},
		{"inverted", Params{RangeX: []float64{5, -5}}, vec.Vec2{X: 500, Y: 262}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.p)
			if err != nil {
				t.Fatal(err)
			}
			if got := m.Origin(); got != tc.want {
				t.Errorf("Origin() = %v, want %v", got, tc.want)
			}
			if got := m.CoordsToPoint(0, 0); got != m.Origin() {
				t.Errorf("CoordsToPoint(0, 0) = %v, want %v", got, m.Origin())
			}
		})
	}
}

func TestMapping(t *testing.T) {
	m := Default()

	cases := []struct {
		x, y float64
		want vec.Vec2
	}{
		{-5, 5, vec.Vec2{X: 250, Y: 12}},
		{5, -5, vec.Vec2{X: 750, Y: 512}},
		{1, 1, vec.Vec2{X: 550, Y: 212}},
		{10, 0, vec.Vec2{X: 1000, Y: 262}}, // extrapolated
	}
	for _, tc := range cases {
		if got := m.CoordsToPoint(tc.x, tc.y); got != tc.want {
			t.Errorf("CoordsToPoint(%g, %g) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
	if m.UnitX() != 50 || m.UnitY() != 50 {
		t.Errorf("units = %g, %g, want 50, 50", m.UnitX(), m.UnitY())
	}
}

func TestNewInvalid(t *testing.T) {
	bad := []Params{
		{Center: "middle"},
		{Center: []float64{1, 2, 3}},
		{RangeX: map[string]float64{"lo": 1}},
		{RangeY: 7},
	}
	for _, p := range bad {
		_, err := New(p)
		if !errors.Is(err, mathgraph.ErrInvalidGeometryInput) {
			t.Errorf("New(%v): got %v, want ErrInvalidGeometryInput", p, err)
		}
		var gerr *mathgraph.GeometryError
		if !errors.As(err, &gerr) || gerr.Op != "axis.New" {
			t.Errorf("New(%v): error %v lacks context", p, err)
		}
	}
}

func TestTicks(t *testing.T) {
	cases := []struct {
		lo, hi float64
		count  int
		want   []float64
	}{
		{-5, 5, 10, []float64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5}},
		{5, -5, 10, []float64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5}},
		{-1, 3, 4, []float64{-1, 0, 1, 2, 3}},
		{0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{-20, 20, 4, []float64{-20, -10, 0, 10, 20}},
		{0, 0, 0, nil},
	}
	for _, tc := range cases {
		if got := ticks(tc.lo, tc.hi, tc.count); !slices.Equal(got, tc.want) {
			t.Errorf("ticks(%g, %g, %d) = %v, want %v", tc.lo, tc.hi, tc.count, got, tc.want)
		}
	}
}

func TestAxisSVG(t *testing.T) {
	m, err := New(Params{RangeX: []float64{-2, 2}, RangeY: []float64{-1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	x := m.AxisX(Options{HideZeroLabel: true, Color: "#333"})
	if got, _ := x.Attr("class"); got != "Axis-x" {
		t.Errorf("class = %q", got)
	}
	if got, _ := x.Attr("transform"); got != "translate(0, 262)" {
		t.Errorf("transform = %q", got)
	}
	if got, _ := x.Attr("color"); got != "#333" {
		t.Errorf("color = %q", got)
	}

	var labels []string
	x.Walk(func(n *svg.Node) {
		if n.Tag == "text" {
			labels = append(labels, n.Text)
		}
	})
	if want := []string{"−2", "−1", "", "1", "2"}; !slices.Equal(labels, want) {
		t.Errorf("labels = %q, want %q", labels, want)
	}

	y := m.AxisY(Options{})
	if got, _ := y.Attr("color"); got != DefaultColor {
		t.Errorf("default color = %q", got)
	}
	if got, _ := y.Attr("transform"); got != "translate(500, 0)" {
		t.Errorf("transform = %q", got)
	}
	s := y.String()
	if !strings.Contains(s, `>0</text>`) {
		t.Errorf("zero label missing from %s", s)
	}

	doc := svg.NewDocument(1000, 525)
	m.DrawAxes(doc, Options{})
	if len(doc.Children) != 2 {
		t.Errorf("DrawAxes appended %d children, want 2", len(doc.Children))
	}
}

func TestDrawRaster(t *testing.T) {
	m, err := New(Params{Center: []float64{50, 50}, LengthX: 80, LengthY: 80, RangeX: []float64{-1, 1}, RangeY: []float64{-1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	rec := &raster.Recorder{}
	if err := m.Draw(rec, Options{}); err != nil {
		t.Fatal(err)
	}
	if rec.Depth() != 0 {
		t.Errorf("Draw left %d saved states", rec.Depth())
	}
	want := []string{"moveTo(10, 50)", "lineTo(90, 50)", "moveTo(50, 10)", "lineTo(50, 90)"}
	for _, call := range want {
		if !slices.Contains(rec.Calls, call) {
			t.Errorf("missing call %s in %q", call, rec.Calls)
		}
	}

	c := raster.NewCanvas(100, 100)
	if err := m.Draw(c, Options{Color: "red"}); err != nil {
		t.Fatal(err)
	}
	if a := c.Image().RGBAAt(70, 50).A; a == 0 {
		t.Error("x axis not painted")
	}
}
