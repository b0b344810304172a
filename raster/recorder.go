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

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/mathgraph"
)

// Recorder is a Context which records the calls made to it, without
// drawing anything.  It tracks the dash pattern and the save/restore
// nesting, so that shapes can be checked for restoring what they change.
type Recorder struct {
	// Calls lists the recorded calls, formatted like "moveTo(10, 10)".
	Calls []string

	dash  []float64
	stack [][]float64
	err   error
}

var _ Context = (*Recorder)(nil)

func (r *Recorder) record(name string, args ...float64) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	r.Calls = append(r.Calls, name+"("+strings.Join(parts, ", ")+")")
}

// Depth returns the number of saved states not yet restored.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Reset clears the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.dash)
	r.record("save")
}

func (r *Recorder) Restore() {
	r.record("restore")
	n := len(r.stack)
	if n == 0 {
		if r.err == nil {
			r.err = mathgraph.Wrap("raster.Recorder.Restore", "", mathgraph.ErrUnbalancedRestore)
		}
		return
	}
	r.dash = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

func (r *Recorder) SetStrokeColor(c string) {
	r.Calls = append(r.Calls, fmt.Sprintf("strokeStyle=%s", c))
}

func (r *Recorder) SetFillColor(c string) {
	r.Calls = append(r.Calls, fmt.Sprintf("fillStyle=%s", c))
}

func (r *Recorder) SetLineWidth(w float64) { r.record("lineWidth", w) }

func (r *Recorder) SetLineDash(dash []float64) {
	r.record("setLineDash", dash...)
	if d, ok := NormalizeDash(dash); ok {
		r.dash = d
	}
}

func (r *Recorder) LineDash() []float64 {
	return append([]float64{}, r.dash...)
}

func (r *Recorder) SetGlobalAlpha(a float64) { r.record("globalAlpha", a) }
func (r *Recorder) Translate(x, y float64)   { r.record("translate", x, y) }
func (r *Recorder) Rotate(angle float64)     { r.record("rotate", angle) }
func (r *Recorder) BeginPath()               { r.record("beginPath") }
func (r *Recorder) MoveTo(x, y float64)      { r.record("moveTo", x, y) }
func (r *Recorder) LineTo(x, y float64)      { r.record("lineTo", x, y) }
func (r *Recorder) ClosePath()               { r.record("closePath") }
func (r *Recorder) Stroke()                  { r.record("stroke") }
func (r *Recorder) Fill()                    { r.record("fill") }
func (r *Recorder) Err() error               { return r.err }

func (r *Recorder) Arc(x, y, radius, start, end float64, anticlockwise bool) {
	ccw := 0.0
	if anticlockwise {
		ccw = 1
	}
	r.record("arc", x, y, radius, start, end, ccw)
}
