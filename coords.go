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
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"seehuhn.de/go/geom/vec"
)

// Range is a closed interval of logical values.
// Min <= Max is not required: inverted ranges are used to flip an axis.
type Range struct {
	Min, Max float64
}

// Span returns |Min| + |Max|, the number of unit ticks an axis over r has.
func (r Range) Span() float64 {
	return math.Abs(r.Min) + math.Abs(r.Max)
}

// Pad returns r widened by b on both sides.
func (r Range) Pad(b float64) Range {
	return Range{Min: r.Min - b, Max: r.Max + b}
}

// Vec2Of normalises a 2D point given in one of the accepted forms:
//   - vec.Vec2
//   - [2]float64 or a []float64 of length 2
//   - map[string]float64 with keys "x" and "y"
//
// Any other value yields an error wrapping [ErrInvalidGeometryInput].
func Vec2Of(v any) (vec.Vec2, error) {
	switch v := v.(type) {
	case vec.Vec2:
		return v, nil
	case [2]float64:
		return vec.Vec2{X: v[0], Y: v[1]}, nil
	case []float64:
		if len(v) == 2 {
			return vec.Vec2{X: v[0], Y: v[1]}, nil
		}
	case map[string]float64:
		x, okX := v["x"]
		y, okY := v["y"]
		if okX && okY {
			return vec.Vec2{X: x, Y: y}, nil
		}
	}
	return vec.Vec2{}, fmt.Errorf("point %v: %w", v, ErrInvalidGeometryInput)
}

// Vec3Of normalises a 3D point, accepting the same forms as [Vec2Of] with
// three components and the additional key "z".
func Vec3Of(v any) (r3.Vec, error) {
	switch v := v.(type) {
	case r3.Vec:
		return v, nil
	case [3]float64:
		return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
	case []float64:
		if len(v) == 3 {
			return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
		}
	case map[string]float64:
		x, okX := v["x"]
		y, okY := v["y"]
		z, okZ := v["z"]
		if okX && okY && okZ {
			return r3.Vec{X: x, Y: y, Z: z}, nil
		}
	}
	return r3.Vec{}, fmt.Errorf("point %v: %w", v, ErrInvalidGeometryInput)
}

// RangeOf normalises a range given as Range, [2]float64, a []float64 of
// length 2 or a map with keys "min" and "max".
func RangeOf(v any) (Range, error) {
	switch v := v.(type) {
	case Range:
		return v, nil
	case [2]float64:
		return Range{Min: v[0], Max: v[1]}, nil
	case []float64:
		if len(v) == 2 {
			return Range{Min: v[0], Max: v[1]}, nil
		}
	case map[string]float64:
		lo, okLo := v["min"]
		hi, okHi := v["max"]
		if okLo && okHi {
			return Range{Min: lo, Max: hi}, nil
		}
	}
	return Range{}, fmt.Errorf("range %v: %w", v, ErrInvalidGeometryInput)
}
