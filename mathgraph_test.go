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
	"errors"
	"log/slog"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"
)

func TestVec2Of(t *testing.T) {
	want := vec.Vec2{X: 3, Y: -4}
	inputs := []any{
		want,
		[2]float64{3, -4},
		[]float64{3, -4},
		map[string]float64{"x": 3, "y": -4},
	}
	for i, in := range inputs {
		got, err := Vec2Of(in)
		if err != nil {
			t.Errorf("%d: unexpected error: %v", i, err)
			continue
		}
		if got != want {
			t.Errorf("%d: got %v, want %v", i, got, want)
		}
	}
}

func TestVec2OfInvalid(t *testing.T) {
	inputs := []any{
		nil,
		"1,2",
		[]float64{1},
		[]float64{1, 2, 3},
		map[string]float64{"x": 1},
		42.0,
	}
	for i, in := range inputs {
		_, err := Vec2Of(in)
		if !errors.Is(err, ErrInvalidGeometryInput) {
			t.Errorf("%d: got %v, want ErrInvalidGeometryInput", i, err)
		}
	}
}

func TestVec3Of(t *testing.T) {
	want := r3.Vec{X: 1, Y: 2, Z: 3}
	for i, in := range []any{want, [3]float64{1, 2, 3}, []float64{1, 2, 3},
		map[string]float64{"x": 1, "y": 2, "z": 3}} {
		got, err := Vec3Of(in)
		if err != nil || got != want {
			t.Errorf("%d: got %v, %v", i, got, err)
		}
	}
	if _, err := Vec3Of([]float64{1, 2}); !errors.Is(err, ErrInvalidGeometryInput) {
		t.Errorf("short slice: got %v", err)
	}
}

func TestRangeOf(t *testing.T) {
	r, err := RangeOf(map[string]float64{"min": 5, "max": -5})
	if err != nil {
		t.Fatal(err)
	}
	if r.Min != 5 || r.Max != -5 {
		t.Errorf("inverted range was not kept: %v", r)
	}
	if r.Span() != 10 {
		t.Errorf("span: got %g, want 10", r.Span())
	}
	if _, err := RangeOf("0..1"); !errors.Is(err, ErrInvalidGeometryInput) {
		t.Errorf("string range: got %v", err)
	}
}

func TestGeometryError(t *testing.T) {
	err := Wrap("shape2d.NewPlot", "Axis", ErrMissingCoordinateMapping)
	if !errors.Is(err, ErrMissingCoordinateMapping) {
		t.Error("errors.Is failed on wrapped sentinel")
	}
	var gErr *GeometryError
	if !errors.As(err, &gErr) || gErr.Field != "Axis" {
		t.Errorf("errors.As failed: %v", err)
	}
	want := "shape2d.NewPlot: Axis: missing coordinate mapping"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	l := slog.New(slog.DiscardHandler)
	SetLogger(l)
	if Logger() != l {
		t.Error("logger was not installed")
	}
	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("nil did not restore the discarding logger")
	}
}
