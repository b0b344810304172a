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

package raster

// Context is an immediate-mode drawing surface with HTML canvas semantics:
// device coordinates grow to the right and downwards, and angles grow
// clockwise on screen.
//
// Implementations record the first error they encounter and report it
// through Err.  Later calls after an error are still carried out as far as
// possible.
type Context interface {
	// Save pushes the current drawing state (transformation, colors, line
	// width, dash pattern and global alpha) onto a stack.
	Save()

	// Restore pops the most recently saved drawing state.
	Restore()

	SetStrokeColor(color string)
	SetFillColor(color string)
	SetLineWidth(width float64)

	// SetLineDash sets the dash pattern.  An empty pattern gives solid
	// lines.  Patterns with an odd number of entries are repeated once.
	SetLineDash(dash []float64)
	LineDash() []float64

	SetGlobalAlpha(alpha float64)

	Translate(x, y float64)
	Rotate(angle float64)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Arc adds a circular arc around (x, y) from angle start to angle end.
	// If the path has a current point, a straight line joins it to the
	// start of the arc.
	Arc(x, y, r, start, end float64, anticlockwise bool)
	ClosePath()

	Stroke()
	Fill()

	// Err returns the first error encountered, or nil.
	Err() error
}

// NormalizeDash applies the canvas rules for dash patterns.  It returns
// false if the pattern contains negative or non-finite values, in which
// case the pattern must be ignored.  Implementations of [Context] outside
// this package use it to match the behaviour of [Canvas].
func NormalizeDash(dash []float64) ([]float64, bool) {
	for _, d := range dash {
		if !(d >= 0) || d > maxDashLength {
			return nil, false
		}
	}
	res := make([]float64, 0, 2*len(dash))
	res = append(res, dash...)
	if len(dash)%2 == 1 {
		res = append(res, dash...)
	}
	return res, true
}

const maxDashLength = 1e300
