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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a piece of a flattened subpath, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T turned by +90°
}

// at returns the point at distance t from A, for a segment of the given
// length.
func (s *segment) at(t, length float64) vec.Vec2 {
	return s.A.Add(s.B.Sub(s.A).Mul(t / length))
}

// run is a range of consecutive segments forming a subpath or a dash.
type run struct {
	start, end int
	closed     bool
}

// Stroke computes the coverage of the stroked outline of p, using Width,
// Cap, Join, MiterLimit, Dash and DashPhase.
//
// The outline is assembled from one quadrilateral per segment plus join
// and cap pieces, all with the same orientation, and filled with the
// nonzero rule.  Overlapping pieces are painted once.
func (r *Rasteriser) Stroke(p *path.Data, emit Emit) {
	r.resetEdges()
	r.flatten(p)
	d := r.Width / 2

	// subpaths without any extent only show up with round caps
	if r.Cap == graphics.LineCapRound {
		for _, c := range r.dots {
			r.addDisc(c, d)
		}
	}

	segs, runs := r.segs, r.runs
	if r.isDashed() {
		r.applyDash()
		segs, runs = r.dashSegs, r.dashRuns
	}
	for _, rn := range runs {
		r.strokeRun(segs[rn.start:rn.end], rn.closed, d)
	}

	r.sweep(NonZero, emit)
}

// flatten converts p into runs of line segments.  Subpaths which contain
// drawing operators but have zero length are collected in r.dots.
func (r *Rasteriser) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open, drawn := false, false
	finish := func(closed bool) {
		if !open {
			return
		}
		if len(r.segs) > first {
			r.runs = append(r.runs, run{start: first, end: len(r.segs), closed: closed})
		} else if drawn {
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
		open, drawn = false, false
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur, start = p.Coords[k], p.Coords[k]
			open = true
			k++
		case path.CmdLineTo:
			if open {
				r.addSegment(cur, p.Coords[k])
				drawn = true
			}
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addSegment)
				drawn = true
			}
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addSegment)
				drawn = true
			}
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open {
				r.addSegment(cur, start)
				drawn = true
				finish(true)
			}
			cur = start
		}
	}
	finish(false)
}

// addSegment appends the segment a-b, unless it has zero length.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeRun adds the outline pieces for one subpath or dash.
func (r *Rasteriser) strokeRun(segs []segment, closed bool, d float64) {
	if len(segs) == 0 {
		return
	}

	if len(segs) == 1 && segs[0].A == segs[0].B {
		// a zero-length dash, oriented along the dashed path
		s := &segs[0]
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisc(s.A, d)
		case graphics.LineCapSquare:
			r.addCap(s.A, s.T, d)
			r.addCap(s.A, s.T.Mul(-1), d)
		}
		return
	}

	for i := range segs {
		s := &segs[i]
		off := s.N.Mul(d)
		r.addPiece4(s.A.Add(off), s.B.Add(off), s.B.Sub(off), s.A.Sub(off))
		if i+1 < len(segs) {
			r.addJoin(s, &segs[i+1], d)
		}
	}

	first, last := &segs[0], &segs[len(segs)-1]
	if closed {
		r.addJoin(last, first, d)
	} else {
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addCap(last.B, last.T, d)
	}
}

// addJoin adds the join piece at the corner where s1 meets s2.
func (r *Rasteriser) addJoin(s1, s2 *segment, d float64) {
	p := s1.B
	cos := s1.T.Dot(s2.T)
	sin := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}
	if cos < cuspCosineThreshold {
		// the path reverses: treat as two ends
		r.addCap(p, s1.T, d)
		r.addCap(p, s2.T.Mul(-1), d)
		return
	}

	// the outer side of the corner is opposite to the turn
	side := 1.0
	if sin > 0 {
		side = -1
	}
	a := p.Add(s1.N.Mul(side * d))
	b := p.Add(s2.N.Mul(side * d))

	switch r.Join {
	case graphics.LineJoinRound:
		r.addDisc(p, d)
	case graphics.LineJoinMiter:
		// miter length / line width = 1/cos(θ/2), θ the turning angle
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 {
			bisector := s1.N.Add(s2.N).Mul(side)
			if l := bisector.Length(); l > zeroLengthThreshold {
				tip := p.Add(bisector.Mul(d / (cosHalf * l)))
				r.addPiece4(p, a, tip, b)
				return
			}
		}
		r.addPiece3(p, a, b)
	default:
		r.addPiece3(p, a, b)
	}
}

// addCap adds the cap piece at p, where t points away from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		e := p.Add(t.Mul(d))
		r.addPiece4(p.Add(n), e.Add(n), e.Sub(n), p.Sub(n))
	}
}

// addDisc adds a polygon approximating the circle around c with radius
// rad, fine enough to stay within the flatness tolerance.
func (r *Rasteriser) addDisc(c vec.Vec2, rad float64) {
	devRad := max(r.deviceLength(vec.Vec2{X: rad}), r.deviceLength(vec.Vec2{Y: rad}))
	step := math.Pi / 2
	if devRad > r.Flatness {
		// a chord spanning the angle step deviates from the circle by
		// rad*(1 - cos(step/2))
		step = 2 * math.Acos(1-r.Flatness/devRad)
	}
	n := max(int(math.Ceil(2*math.Pi/step)), 8)

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{X: c.X + rad*math.Cos(phi), Y: c.Y + rad*math.Sin(phi)})
	}
	r.addPolygon(r.poly)
}

func (r *Rasteriser) addPiece3(a, b, c vec.Vec2) {
	r.poly = append(r.poly[:0], a, b, c)
	r.addPolygon(r.poly)
}

func (r *Rasteriser) addPiece4(a, b, c, d vec.Vec2) {
	r.poly = append(r.poly[:0], a, b, c, d)
	r.addPolygon(r.poly)
}

// isDashed reports whether the dash pattern has positive total length.
func (r *Rasteriser) isDashed() bool {
	total := 0.0
	for _, d := range r.Dash {
		total += d
	}
	return total > 0
}

// applyDash splits the flattened runs into dashes, stored in r.dashSegs
// and r.dashRuns.  Dashes are open runs; on a closed subpath a dash
// crossing the start point is joined into a single run.
func (r *Rasteriser) applyDash() {
	r.dashSegs = r.dashSegs[:0]
	r.dashRuns = r.dashRuns[:0]

	pattern := r.Dash
	n := len(pattern)
	period := 0.0
	for _, d := range pattern {
		period += d
	}
	if n%2 == 1 {
		// odd patterns repeat with on and off swapped
		period *= 2
	}
	phase := math.Mod(r.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	for _, rn := range r.runs {
		// find the dash containing the phase
		idx := 0
		left := phase
		for left >= pattern[idx%n] {
			if left == 0 && pattern[idx%n] == 0 {
				break
			}
			left -= pattern[idx%n]
			idx++
		}
		left = pattern[idx%n] - left
		on := idx%2 == 0
		startsOn := on

		firstRun := len(r.dashRuns)
		dashStart := len(r.dashSegs)
		flush := func() {
			if len(r.dashSegs) > dashStart {
				r.dashRuns = append(r.dashRuns, run{start: dashStart, end: len(r.dashSegs)})
			}
			dashStart = len(r.dashSegs)
		}

		for i := rn.start; i < rn.end; i++ {
			s := r.segs[i]
			length := s.B.Sub(s.A).Length()
			pos := 0.0
			for {
				step := min(left, length-pos)
				if on && step > 0 {
					r.dashSegs = append(r.dashSegs, segment{
						A: s.at(pos, length), B: s.at(pos+step, length),
						T: s.T, N: s.N,
					})
				}
				pos += step
				left -= step
				if left > 0 {
					break
				}

				// end of the current dash element
				if on {
					if len(r.dashSegs) == dashStart {
						q := s.at(pos, length)
						r.dashSegs = append(r.dashSegs, segment{A: q, B: q, T: s.T, N: s.N})
					}
					flush()
				}
				idx++
				left = pattern[idx%n]
				on = idx%2 == 0
			}
		}

		if rn.closed && startsOn && on && len(r.dashSegs) > dashStart && len(r.dashRuns) > firstRun {
			// continue the last dash into the first one
			head := r.dashRuns[firstRun]
			r.dashSegs = append(r.dashSegs, r.dashSegs[head.start:head.end]...)
			r.dashRuns = slices.Delete(r.dashRuns, firstRun, firstRun+1)
		}
		flush()
	}
}
