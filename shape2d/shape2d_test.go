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

package shape2d

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/axis"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
)

func near(a, b vec.Vec2) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func attrValue(t *testing.T, attrs interface{ Attr(string) (string, bool) }, name string) string {
	t.Helper()
	v, ok := attrs.Attr(name)
	if !ok {
		t.Fatalf("attribute %q missing", name)
	}
	return v
}

func TestLine(t *testing.T) {
	l, err := NewLine(LineParams{Start: [2]float64{10, 10}, End: []float64{50, 10}})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := l.PathD(), "M10 10L50 10"; got != want {
		t.Errorf("PathD() = %q, want %q", got, want)
	}

	rec := &raster.Recorder{}
	if err := l.Draw(rec, style.Style{}); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"save()",
		"strokeStyle=#000000",
		"lineWidth(1)",
		"setLineDash()",
		"beginPath()",
		"moveTo(10, 10)",
		"lineTo(50, 10)",
		"stroke()",
		"restore()",
	}
	if !slices.Equal(rec.Calls, want) {
		t.Errorf("calls = %q, want %q", rec.Calls, want)
	}

	attrs := l.LineAttrs()
	for i, w := range []string{"10", "10", "50", "10"} {
		if attrs[i].Value != w {
			t.Errorf("%s = %q, want %q", attrs[i].Name, attrs[i].Value, w)
		}
	}

	// moving one end point is reflected by both renderers
	l.End.Y = 30
	if got, want := l.PathD(), "M10 10L50 30"; got != want {
		t.Errorf("PathD() after move = %q, want %q", got, want)
	}
	rec.Reset()
	l.Draw(rec, style.Style{})
	if !slices.Contains(rec.Calls, "lineTo(50, 30)") {
		t.Errorf("raster calls after move: %q", rec.Calls)
	}
}

func TestPoint(t *testing.T) {
	p, err := NewPoint(PointParams{Name: "A", Point: map[string]float64{"x": 100, "y": 100}})
	if err != nil {
		t.Fatal(err)
	}

	want := "M100 100m4 0a4 4 0 0 0 -8 0a4 4 0 0 0 8 0"
	if got := p.PathD(); got != want {
		t.Errorf("PathD() = %q, want %q", got, want)
	}

	n := p.CircleElement(style.Style{})
	for name, want := range map[string]string{
		"class":        "Point",
		"data-name":    "A",
		"cx":           "100",
		"cy":           "100",
		"r":            "4",
		"stroke":       "#ffffff",
		"stroke-width": "0",
		"fill":         "#000000",
	} {
		if got := attrValue(t, n, name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}

	rec := &raster.Recorder{}
	p.Draw(rec, style.Style{FillOpacity: style.Float(0.5)})
	wantCalls := []string{
		"save()",
		"strokeStyle=#ffffff",
		"lineWidth(1)",
		"fillStyle=#000000",
		"beginPath()",
		"arc(100, 100, 4, 0, 6.283185307179586, 1)",
		"closePath()",
		"stroke()",
		"globalAlpha(0.5)",
		"fill()",
		"restore()",
	}
	if !slices.Equal(rec.Calls, wantCalls) {
		t.Errorf("calls = %q, want %q", rec.Calls, wantCalls)
	}
}

func TestStylePrecedence(t *testing.T) {
	p, err := NewPoint(PointParams{Style: style.Style{Color: style.String("#111")}})
	if err != nil {
		t.Fatal(err)
	}

	for _, form := range []style.Form{style.AttrForm, style.PropForm} {
		attrs := p.Styles(style.Style{Color: style.String("#222")}, form)
		if fill, _ := style.Lookup(attrs, "fill"); fill != "#222" {
			t.Errorf("%s: fill with override = %q, want #222", form, fill)
		}
		attrs = p.Styles(style.Style{}, form)
		if fill, _ := style.Lookup(attrs, "fill"); fill != "#111" {
			t.Errorf("%s: fill without override = %q, want #111", form, fill)
		}
	}

	// overrides are never stored
	if *p.Style.Color != "#111" {
		t.Errorf("stored color changed to %q", *p.Style.Color)
	}

	// an explicit zero is an override, not a missing value
	l, _ := NewLine(LineParams{Style: style.Style{LineWidth: style.Float(3)}})
	attrs := l.Styles(style.Style{LineWidth: style.Float(0)}, style.PropForm)
	if w, ok := style.Lookup(attrs, "strokeWidth"); !ok || w != "0" {
		t.Errorf("strokeWidth = %q, %t, want \"0\"", w, ok)
	}
	if _, ok := style.Lookup(attrs, "stroke-width"); ok {
		t.Error("hyphenated name in property form")
	}
}

func TestDefaultsNotShared(t *testing.T) {
	a, err := NewPoint(PointParams{})
	if err != nil {
		t.Fatal(err)
	}
	*a.Style.Color = "#f00"
	*a.Style.LineWidth = 5
	if *PointDefaults.Color != "#000000" || *PointDefaults.LineWidth != 1 {
		t.Fatalf("instance write changed the class defaults: color %q, width %g",
			*PointDefaults.Color, *PointDefaults.LineWidth)
	}
	b, _ := NewPoint(PointParams{})
	if fill := attrValue(t, b.CircleElement(style.Style{}), "fill"); fill != "#000000" {
		t.Errorf("fresh point has fill %q, want #000000", fill)
	}

	arrow, err := NewArrow(ArrowParams{})
	if err != nil {
		t.Fatal(err)
	}
	*arrow.Style.Color = "#0f0"
	if *ArrowDefaults.Color != "#000000" || *LineDefaults.Color != "#000000" {
		t.Error("arrow write changed the class defaults")
	}
	if ArrowDefaults.Color == LineDefaults.Color || ArrowDefaults.LineWidth == LineDefaults.LineWidth {
		t.Error("arrow defaults share storage with line defaults")
	}

	w, err := NewPointWithProjections(ProjectionParams{})
	if err != nil {
		t.Fatal(err)
	}
	*w.PointX.Style.Color = "#00f"
	if *w.PointY.Style.Color == "#00f" || *w.PointStyle().Color == "#00f" {
		t.Error("projection points share style storage")
	}
	*w.LineStyle().Color = "#00f"
	if *w.LineX.Style.Color == "#00f" {
		t.Error("LineStyle result shares storage with the lines")
	}
}

func TestInvalidInput(t *testing.T) {
	_, err := NewPoint(PointParams{Point: "(1, 2)"})
	if !errors.Is(err, mathgraph.ErrInvalidGeometryInput) {
		t.Fatalf("NewPoint: error %v does not wrap ErrInvalidGeometryInput", err)
	}
	var gErr *mathgraph.GeometryError
	if !errors.As(err, &gErr) {
		t.Fatalf("NewPoint: error %T is not a *GeometryError", err)
	}
	if gErr.Op != "shape2d.NewPoint" || gErr.Field != "point" {
		t.Errorf("error context = %q %q", gErr.Op, gErr.Field)
	}

	constructors := map[string]func() error{
		"line":  func() error { _, err := NewLine(LineParams{End: []float64{1}}); return err },
		"angle": func() error { _, err := NewAngle(AngleParams{Point: 7}); return err },
		"rect":  func() error { _, err := NewRectAngle(RectAngleParams{Quadrant: "ne"}); return err },
		"arrow": func() error { _, err := NewArrow(ArrowParams{Start: map[string]float64{"x": 1}}); return err },
		"plot":  func() error { _, err := NewPlot(PlotParams{Range: []float64{1, 2, 3}}); return err },
		"acot":  func() error { _, err := NewAcotPlot(AcotPlotParams{Range: "all"}); return err },
		"projections": func() error {
			_, err := NewPointWithProjections(ProjectionParams{Origin: [3]float64{}})
			return err
		},
	}
	for name, fn := range constructors {
		if err := fn(); !errors.Is(err, mathgraph.ErrInvalidGeometryInput) {
			t.Errorf("%s: error %v does not wrap ErrInvalidGeometryInput", name, err)
		}
	}
}

func TestLinePointWithAngle(t *testing.T) {
	l, err := NewLinePointWithAngle(LinePointWithAngleParams{
		Point:  [2]float64{100, 100},
		Angle:  math.Pi / 2,
		Length: 50,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !near(l.Start, vec.Vec2{X: 100, Y: 100}) || !near(l.End, vec.Vec2{X: 100, Y: 50}) {
		t.Errorf("segment = %v -> %v", l.Start, l.End)
	}

	err = l.Update(LinePointWithAngleUpdate{Angle: new(float64), Center: Bool(true)})
	if err != nil {
		t.Fatal(err)
	}
	if !near(l.Start, vec.Vec2{X: 75, Y: 100}) || !near(l.End, vec.Vec2{X: 125, Y: 100}) {
		t.Errorf("centred segment = %v -> %v", l.Start, l.End)
	}
	if got, want := l.PathD(), "M75 100L125 100"; got != want {
		t.Errorf("PathD() = %q, want %q", got, want)
	}

	if err := l.Update(LinePointWithAngleUpdate{Point: "here"}); err == nil {
		t.Error("malformed point accepted")
	}
	if !near(l.Anchor, vec.Vec2{X: 100, Y: 100}) {
		t.Errorf("failed update moved the anchor to %v", l.Anchor)
	}
}

func TestAngle(t *testing.T) {
	cases := []struct {
		angle     float64
		wantAngle float64
		flags     string
		ccw       string
	}{
		{math.Pi / 2, math.Pi / 2, " 0 0 0 ", ", 1)"},
		{3 * math.Pi / 2, 3 * math.Pi / 2, " 0 1 0 ", ", 1)"},
		{5 * math.Pi / 2, math.Pi / 2, " 0 0 0 ", ", 1)"},
		{-math.Pi / 2, -math.Pi / 2, " 0 0 1 ", ", 0)"},
		{-7 * math.Pi / 4, -7 * math.Pi / 4, " 0 1 1 ", ", 0)"},
	}
	for _, tc := range cases {
		a, err := NewAngle(AngleParams{Point: [2]float64{0, 0}, Angle: tc.angle, Radius: 10})
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(a.Angle-tc.wantAngle) > 1e-12 {
			t.Errorf("angle %g reduced to %g, want %g", tc.angle, a.Angle, tc.wantAngle)
		}

		d := a.PathD()
		if !strings.HasPrefix(d, "M0 0L10 0A10 10"+tc.flags) || !strings.HasSuffix(d, "Z") {
			t.Errorf("angle %g: PathD() = %q", tc.angle, d)
		}

		rec := &raster.Recorder{}
		a.Draw(rec, style.Style{})
		var arc string
		for _, c := range rec.Calls {
			if strings.HasPrefix(c, "arc(") {
				arc = c
			}
		}
		if !strings.HasPrefix(arc, "arc(0, 0, 10, ") || !strings.HasSuffix(arc, tc.ccw) {
			t.Errorf("angle %g: %s", tc.angle, arc)
		}
	}
}

func TestRectAngle(t *testing.T) {
	cases := []struct {
		quadrant any
		wantD    string
		wantX    string
		wantY    string
	}{
		{nil, "M100 100L110 100L110 110L100 110Z", "100", "100"},
		{Quadrant1, "M100 100L110 100L110 90L100 90Z", "100", "90"},
		{Quadrant2, "M100 100L90 100L90 90L100 90Z", "90", "90"},
		{Quadrant3, "M100 100L90 100L90 110L100 110Z", "90", "100"},
	}
	for i, tc := range cases {
		r, err := NewRectAngle(RectAngleParams{Point: [2]float64{100, 100}, Size: 10, Quadrant: tc.quadrant})
		if err != nil {
			t.Fatal(err)
		}
		if got := r.PathD(); got != tc.wantD {
			t.Errorf("%d: PathD() = %q, want %q", i, got, tc.wantD)
		}
		n := r.RectElement(style.Style{})
		if x := attrValue(t, n, "x"); x != tc.wantX {
			t.Errorf("%d: x = %q, want %q", i, x, tc.wantX)
		}
		if y := attrValue(t, n, "y"); y != tc.wantY {
			t.Errorf("%d: y = %q, want %q", i, y, tc.wantY)
		}
		if tr := attrValue(t, n, "transform"); tr != "rotate(0, 100, 100)" {
			t.Errorf("%d: transform = %q", i, tr)
		}
	}

	r, _ := NewRectAngle(RectAngleParams{Point: [2]float64{100, 100}, Size: 10, Rotate: math.Pi / 2})
	if tr := attrValue(t, r.RectElement(style.Style{}), "transform"); tr != "rotate(-90, 100, 100)" {
		t.Errorf("transform = %q", tr)
	}
	rec := &raster.Recorder{}
	r.Draw(rec, style.Style{})
	if !slices.Contains(rec.Calls, "translate(100, 100)") ||
		!slices.Contains(rec.Calls, "rotate(-1.5707963267948966)") {
		t.Errorf("calls = %q", rec.Calls)
	}
}

func TestArrow(t *testing.T) {
	a, err := NewArrow(ArrowParams{
		Start:      [2]float64{0, 0},
		End:        [2]float64{100, 0},
		Size:       20,
		StartArrow: Bool(false),
		EndArrow:   Bool(true),
		Inset:      style.Float(1),
	})
	if err != nil {
		t.Fatal(err)
	}

	start, end := a.Shaft()
	if got := end.Sub(start).Length(); math.Abs(got-80) > 1e-9 {
		t.Errorf("shaft length = %g, want 80", got)
	}
	heads := a.Heads()
	if len(heads) != 1 {
		t.Fatalf("%d heads, want 1", len(heads))
	}
	h := heads[0]
	if h.Tip != (vec.Vec2{X: 100, Y: 0}) {
		t.Errorf("tip = %v, want (100, 0)", h.Tip)
	}
	dx := 20 * math.Cos(math.Pi/6)
	if !near(h.Pivot1, vec.Vec2{X: 100 - dx, Y: -10}) || !near(h.Pivot2, vec.Vec2{X: 100 - dx, Y: 10}) {
		t.Errorf("pivots = %v, %v", h.Pivot1, h.Pivot2)
	}

	d := a.PathD()
	if d.Line != "M0 0L80 0" || d.StartHead != "" || !strings.HasPrefix(d.EndHead, "M100 0L") {
		t.Errorf("PathD() = %+v", d)
	}
	g := a.GroupElement(style.Style{})
	if len(g.Children) != 2 {
		t.Fatalf("group has %d children, want 2", len(g.Children))
	}
	if c := attrValue(t, g.Children[1], "class"); c != "Arrow-head" {
		t.Errorf("class = %q", c)
	}

	// the default inset pulls the shaft in by half the head size
	a.Update(ArrowUpdate{Inset: style.Float(DefaultArrowInset)})
	if _, end := a.Shaft(); !near(end, vec.Vec2{X: 90, Y: 0}) {
		t.Errorf("shaft end = %v, want (90, 0)", end)
	}

	// heads are drawn solid after the dashed shaft
	rec := &raster.Recorder{}
	a.Draw(rec, style.Style{LineDash: style.Dash(4, 2)})
	stroke := slices.Index(rec.Calls, "stroke()")
	reset := slices.Index(rec.Calls, "setLineDash()")
	fill := slices.Index(rec.Calls, "fill()")
	if !(slices.Contains(rec.Calls, "setLineDash(4, 2)") && stroke < reset && reset < fill) {
		t.Errorf("calls = %q", rec.Calls)
	}
	if rec.Depth() != 0 {
		t.Error("unbalanced save")
	}

	// direct mutation is only picked up by Update
	a.End = vec.Vec2{X: 0, Y: 100}
	if a.Heads()[0].Tip != (vec.Vec2{X: 100, Y: 0}) {
		t.Error("head moved without Update")
	}
	a.Update(ArrowUpdate{})
	if !near(a.Heads()[0].Tip, vec.Vec2{X: 0, Y: 100}) {
		t.Errorf("tip after Update = %v", a.Heads()[0].Tip)
	}

	// zero-length arrows are tolerated
	if err := a.Update(ArrowUpdate{End: [2]float64{0, 0}}); err != nil {
		t.Fatal(err)
	}
	if err := a.Draw(&raster.Recorder{}, style.Style{}); err != nil {
		t.Error(err)
	}
}

func TestPlotSamples(t *testing.T) {
	p, err := NewPlot(PlotParams{Range: [2]float64{0, 1}, Step: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	s := p.Samples()
	if len(s) != 4 {
		t.Fatalf("%d samples, want 4", len(s))
	}
	if math.Abs(s[3].X-0.9) > 1e-9 {
		t.Errorf("last sample at %g, want 0.9", s[3].X)
	}

	p.Update(PlotUpdate{Step: style.Float(-0.3)})
	if len(p.Samples()) != 4 {
		t.Errorf("negative step: %d samples, want 4", len(p.Samples()))
	}

	p.Update(PlotUpdate{SampleExact: Bool(true)})
	s = p.Samples()
	if len(s) != 5 || s[4].X != 1 {
		t.Errorf("exact sampling: %d samples ending at %g", len(s), s[len(s)-1].X)
	}

	// inverted ranges give a single sample
	p.Update(PlotUpdate{Range: mathgraph.Range{Min: 1, Max: 0}, SampleExact: Bool(false)})
	if len(p.Samples()) != 1 {
		t.Errorf("inverted range: %d samples", len(p.Samples()))
	}
}

func TestPlotMissingAxis(t *testing.T) {
	p, err := NewPlot(PlotParams{Func: math.Sin})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.PathD(); !errors.Is(err, mathgraph.ErrMissingCoordinateMapping) {
		t.Errorf("PathD: %v", err)
	}
	if _, err := p.PolylinePoints(); !errors.Is(err, mathgraph.ErrMissingCoordinateMapping) {
		t.Errorf("PolylinePoints: %v", err)
	}
	rec := &raster.Recorder{}
	if err := p.Draw(rec, style.Style{}); !errors.Is(err, mathgraph.ErrMissingCoordinateMapping) {
		t.Errorf("Draw: %v", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("Draw without axis made calls %q", rec.Calls)
	}
}

func TestPlotOutput(t *testing.T) {
	p, err := NewPlot(PlotParams{Range: [2]float64{0, 1}, Step: 1, Axis: axis.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := p.PathD(); d != "M500 262L550 212" {
		t.Errorf("PathD() = %q", d)
	}
	if pts, _ := p.PolylinePoints(); pts != "500,262 550,212" {
		t.Errorf("PolylinePoints() = %q", pts)
	}

	rec := &raster.Recorder{}
	p.Draw(rec, style.Style{Opacity: style.Float(0.25)})
	for _, c := range []string{"globalAlpha(0.25)", "moveTo(500, 262)", "lineTo(550, 212)"} {
		if !slices.Contains(rec.Calls, c) {
			t.Errorf("missing call %s in %q", c, rec.Calls)
		}
	}
}

func TestAcotPlot(t *testing.T) {
	a, err := NewAcotPlot(AcotPlotParams{Range: [2]float64{-1, 1}, Step: 1, Axis: axis.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if r := a.DashPlot.Range; r.Min != -4 || r.Max != 4 {
		t.Errorf("dashed range = %v", r)
	}
	if n := len(a.DashPlot.Samples()); n != 9 {
		t.Errorf("dashed plot has %d samples, want 9", n)
	}

	g, err := a.Element(style.Style{})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Children) != 2 || g.Children[0].Tag != "polyline" {
		t.Fatalf("unexpected group %s", g)
	}
	if op := attrValue(t, g.Children[0], "stroke-opacity"); op != "0.5" {
		t.Errorf("dashed opacity = %q", op)
	}
	if da := attrValue(t, g.Children[0], "stroke-dasharray"); da != "5" {
		t.Errorf("dashed dasharray = %q", da)
	}
	if _, ok := g.Children[1].Attr("stroke-dasharray"); ok {
		t.Error("solid plot is dashed")
	}

	if err := a.Update(AcotPlotUpdate{PlotUpdate: PlotUpdate{Range: [2]float64{0, 2}}, Buff: style.Float(-1)}); err != nil {
		t.Fatal(err)
	}
	if r := a.DashPlot.Range; r.Min != -1 || r.Max != 3 {
		t.Errorf("dashed range after update = %v", r)
	}

	rec := &raster.Recorder{}
	a.Draw(rec, style.Style{})
	if first := slices.Index(rec.Calls, "globalAlpha(0.5)"); first < 0 || first > slices.Index(rec.Calls, "globalAlpha(1)") {
		t.Errorf("dashed plot not drawn first: %q", rec.Calls)
	}
}

func TestPointWithProjections(t *testing.T) {
	w, err := NewPointWithProjections(ProjectionParams{
		Name:   "P",
		Point:  [2]float64{10, 20},
		Origin: [2]float64{0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	check := func(px, py, ox, oy float64) {
		t.Helper()
		p := vec.Vec2{X: px, Y: py}
		if w.Point.Center != p {
			t.Errorf("point = %v", w.Point.Center)
		}
		if w.PointX.Center != (vec.Vec2{X: px, Y: oy}) {
			t.Errorf("pointX = %v", w.PointX.Center)
		}
		if w.PointY.Center != (vec.Vec2{X: ox, Y: py}) {
			t.Errorf("pointY = %v", w.PointY.Center)
		}
		if w.LineX.Start != (vec.Vec2{X: px, Y: oy}) || w.LineX.End != p {
			t.Errorf("lineX = %v -> %v", w.LineX.Start, w.LineX.End)
		}
		if w.LineY.Start != (vec.Vec2{X: ox, Y: py}) || w.LineY.End != p {
			t.Errorf("lineY = %v -> %v", w.LineY.Start, w.LineY.End)
		}
	}
	check(10, 20, 0, 0)

	if err := w.Update(ProjectionUpdate{Point: [2]float64{30, 40}, Origin: [2]float64{5, 6}, Radius: 7}); err != nil {
		t.Fatal(err)
	}
	check(30, 40, 5, 6)
	if w.PointY.Radius != 7 {
		t.Errorf("radius = %g", w.PointY.Radius)
	}

	if err := w.Update(ProjectionUpdate{Point: [2]float64{1, 1}, Origin: "bad"}); err == nil {
		t.Error("malformed origin accepted")
	}
	check(30, 40, 5, 6)

	w.SetPointStyle(style.Style{Color: style.String("#ff0000")})
	w.SetLineStyle(style.Style{LineWidth: style.Float(2)})
	for _, p := range []*Point{w.Point, w.PointX, w.PointY} {
		if *p.Style.Color != "#ff0000" {
			t.Errorf("%s: color %q", p.Name, *p.Style.Color)
		}
	}
	for _, l := range []*Line{w.LineX, w.LineY} {
		if *l.Style.LineWidth != 2 || !slices.Equal(l.Style.LineDash, []float64{5}) {
			t.Errorf("%s: style %+v", l.Name, l.Style)
		}
	}

	g := w.ElementWith(ProjectionStyles{UseCircle: true})
	var names, tags []string
	for _, c := range g.Children {
		n, _ := c.Attr("data-name")
		names = append(names, n)
		tags = append(tags, c.Tag)
	}
	wantNames := []string{"P-line-x", "P-line-y", "P-point", "P-point-x", "P-point-y"}
	if !slices.Equal(names, wantNames) {
		t.Errorf("children = %q, want %q", names, wantNames)
	}
	if !slices.Equal(tags, []string{"path", "path", "circle", "circle", "circle"}) {
		t.Errorf("tags = %q", tags)
	}

	rec := &raster.Recorder{}
	if err := w.Draw(rec, style.Style{}); err != nil {
		t.Fatal(err)
	}
	if firstArc := slices.IndexFunc(rec.Calls, func(c string) bool {
		return strings.HasPrefix(c, "arc(30, 40, ")
	}); firstArc < slices.Index(rec.Calls, "lineTo(30, 40)") {
		t.Errorf("point drawn before the lines: %q", rec.Calls)
	}
}

func TestIdempotentAccessors(t *testing.T) {
	p, _ := NewPoint(PointParams{})
	l, _ := NewLine(LineParams{})
	lpa, _ := NewLinePointWithAngle(LinePointWithAngleParams{Angle: 1})
	a, _ := NewAngle(AngleParams{Angle: 1, Rotate: 2})
	r, _ := NewRectAngle(RectAngleParams{Rotate: 0.3})
	ar, _ := NewArrow(ArrowParams{})
	pl, _ := NewPlot(PlotParams{Func: math.Cos, Axis: axis.Default()})
	ac, _ := NewAcotPlot(AcotPlotParams{Func: math.Atan, Axis: axis.Default()})
	w, _ := NewPointWithProjections(ProjectionParams{})

	for _, s := range []Shape{p, l, lpa, a, r, ar, pl, ac, w} {
		e1, err := s.Element(style.Style{})
		if err != nil {
			t.Fatal(err)
		}
		e2, _ := s.Element(style.Style{})
		if e1.String() != e2.String() {
			t.Errorf("%T: Element not idempotent", s)
		}

		r1, r2 := &raster.Recorder{}, &raster.Recorder{}
		s.Draw(r1, style.Style{})
		s.Draw(r2, style.Style{})
		if !slices.Equal(r1.Calls, r2.Calls) {
			t.Errorf("%T: Draw not idempotent", s)
		}
		if r1.Depth() != 0 || r1.Err() != nil {
			t.Errorf("%T: Draw left depth %d, err %v", s, r1.Depth(), r1.Err())
		}
	}
}
