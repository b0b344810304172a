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

// Package axis maps logical coordinates to device coordinates and draws
// labelled coordinate axes.
//
// Device coordinates follow the screen convention: x grows to the right,
// y grows downwards.  The logical y axis points up, so the y scale is
// flipped.
package axis

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
)

// Defaults used by [New] for zero-valued parameters.
var (
	DefaultCenter = vec.Vec2{X: 500, Y: 262}
	DefaultLength = 500.0
	DefaultRange  = mathgraph.Range{Min: -5, Max: 5}
)

// Params holds the construction parameters of a Mapping.  Nil and zero
// fields take the defaults.
type Params struct {
	// Center is the device position of the middle of the axes, as a point
	// tuple or keyed record.  The default is DefaultCenter.
	Center any

	// LengthX and LengthY are the device lengths of the two axes.
	LengthX, LengthY float64

	// RangeX and RangeY are the logical ranges, as a tuple or keyed
	// record.  The default is DefaultRange.
	RangeX, RangeY any
}

// linear is an affine map from the domain [d0, d1] to the range [r0, r1].
// Values outside the domain are extrapolated.
type linear struct {
	d0, d1 float64
	r0, r1 float64
}

func (l linear) apply(v float64) float64 {
	return l.r0 + (v-l.d0)/(l.d1-l.d0)*(l.r1-l.r0)
}

// newLinear builds the scale for one axis: the span |min| + |max| is
// spread over length device units, with the position of zero relative to
// center determined by |min|.
func newLinear(r mathgraph.Range, length, center float64) linear {
	unit := length / r.Span()
	return linear{
		d0: r.Min, d1: r.Max,
		r0: center - math.Abs(r.Min)*unit,
		r1: center + math.Abs(r.Max)*unit,
	}
}

// Mapping is an affine map from logical coordinates to device coordinates,
// one per axis.  A Mapping is immutable and safe for concurrent use.
type Mapping struct {
	center vec.Vec2
	length vec.Vec2
	rangeX mathgraph.Range
	rangeY mathgraph.Range
	scaleX linear
	scaleY linear
	origin vec.Vec2
}

// New returns the Mapping described by p.  It fails with an error
// wrapping [mathgraph.ErrInvalidGeometryInput] if Center or one of the
// ranges is malformed.
func New(p Params) (*Mapping, error) {
	m := &Mapping{
		center: DefaultCenter,
		length: vec.Vec2{X: DefaultLength, Y: DefaultLength},
		rangeX: DefaultRange,
		rangeY: DefaultRange,
	}

	var err error
	if p.Center != nil {
		if m.center, err = mathgraph.Vec2Of(p.Center); err != nil {
			return nil, mathgraph.Wrap("axis.New", "center", err)
		}
	}
	if p.RangeX != nil {
		if m.rangeX, err = mathgraph.RangeOf(p.RangeX); err != nil {
			return nil, mathgraph.Wrap("axis.New", "rangeX", err)
		}
	}
	if p.RangeY != nil {
		if m.rangeY, err = mathgraph.RangeOf(p.RangeY); err != nil {
			return nil, mathgraph.Wrap("axis.New", "rangeY", err)
		}
	}
	if p.LengthX != 0 {
		m.length.X = p.LengthX
	}
	if p.LengthY != 0 {
		m.length.Y = p.LengthY
	}

	m.scaleX = newLinear(m.rangeX, m.length.X, m.center.X)
	// the y axis points up
	flipped := mathgraph.Range{Min: m.rangeY.Max, Max: m.rangeY.Min}
	m.scaleY = newLinear(flipped, m.length.Y, m.center.Y)

	m.origin = vec.Vec2{X: m.scaleX.apply(0), Y: m.scaleY.apply(0)}
	return m, nil
}

// Default returns the Mapping with all default parameters.
func Default() *Mapping {
	m, _ := New(Params{})
	return m
}

// X maps a logical x coordinate to device space.  Zero maps exactly to the
// origin.
func (m *Mapping) X(x float64) float64 {
	if x == 0 {
		return m.origin.X
	}
	return m.scaleX.apply(x)
}

// Y maps a logical y coordinate to device space.  Zero maps exactly to the
// origin.
func (m *Mapping) Y(y float64) float64 {
	if y == 0 {
		return m.origin.Y
	}
	return m.scaleY.apply(y)
}

// CoordsToPoint maps the logical point (x, y) to device space.
func (m *Mapping) CoordsToPoint(x, y float64) vec.Vec2 {
	return vec.Vec2{X: m.X(x), Y: m.Y(y)}
}

// Origin returns the device position of the logical point (0, 0).
func (m *Mapping) Origin() vec.Vec2 {
	return m.origin
}

// Center returns the device position given at construction.
func (m *Mapping) Center() vec.Vec2 {
	return m.center
}

// Length returns the device lengths of the x and y axes.
func (m *Mapping) Length() vec.Vec2 {
	return m.length
}

// RangeX returns the logical range of the x axis.
func (m *Mapping) RangeX() mathgraph.Range {
	return m.rangeX
}

// RangeY returns the logical range of the y axis.
func (m *Mapping) RangeY() mathgraph.Range {
	return m.rangeY
}

// UnitX returns the device length of one logical unit along x.
func (m *Mapping) UnitX() float64 {
	return m.length.X / m.rangeX.Span()
}

// UnitY returns the device length of one logical unit along y.
func (m *Mapping) UnitY() float64 {
	return m.length.Y / m.rangeY.Span()
}
