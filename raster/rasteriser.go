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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rule selects how winding numbers are turned into coverage.
type Rule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

// Emit receives the coverage of one pixel row.  coverage[i] is the
// coverage of pixel (xMin+i, y), between 0 and 1.  The slice is only valid
// during the call.
type Emit func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// Rasteriser computes anti-aliased pixel coverage for filled and stroked
// paths.  Paths are given in user space and mapped to device space by CTM.
// Buffers are kept between calls, so a Rasteriser used for many paths
// stops allocating once its buffers are large enough.
//
// A Rasteriser must not be used concurrently.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip is the device space region which receives coverage.  The
	// coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments approximating it.
	Flatness float64

	// Width is the line width for strokes, in user space units.
	Width float64

	// Cap is the shape at the open ends of stroked subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join is the shape at corners of stroked subpaths.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio between miter length and line width
	// before a miter join is replaced by a bevel.
	MiterLimit float64

	// Dash is the dash pattern in user space units.  Nil or a pattern
	// with zero total length gives a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	// bounding box of all edges, device space
	haveBox      bool
	boxX0, boxX1 float64
	boxY0, boxY1 float64

	segs, dashSegs []segment
	runs, dashRuns []run
	dots           []vec.Vec2
	poly           []vec.Vec2
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, using
// an identity CTM, line width 1, butt caps and miter joins.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill computes the coverage of the interior of p.  Open subpaths are
// closed implicitly.
func (r *Rasteriser) Fill(p *path.Data, rule Rule, emit Emit) {
	r.resetEdges()

	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				r.addEdge(cur, start)
			}
			cur, start = p.Coords[k], p.Coords[k]
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if open && cur != start {
		r.addEdge(cur, start)
	}

	r.sweep(rule, emit)
}

// toDevice maps a user space point to device space.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of the user space vector v after the
// linear part of CTM is applied.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// deviation of the curve from its chord is bounded by |p0-2p1+p2|/4
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, with
// the segment count given by Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	dd := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dd > 0 {
		if f := math.Sqrt(3 * dd / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.haveBox = false
}

// addEdge adds the user space segment a-b to the edge list.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p := r.toDevice(a)
	q := r.toDevice(b)

	dy := q.Y - p.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})

	x0, x1 := min(p.X, q.X), max(p.X, q.X)
	y0, y1 := min(p.Y, q.Y), max(p.Y, q.Y)
	if !r.haveBox {
		r.boxX0, r.boxX1, r.boxY0, r.boxY1 = x0, x1, y0, y1
		r.haveBox = true
		return
	}
	r.boxX0 = min(r.boxX0, x0)
	r.boxX1 = max(r.boxX1, x1)
	r.boxY0 = min(r.boxY0, y0)
	r.boxY1 = max(r.boxY1, y1)
}

// addPolygon adds the closed user space polygon pts to the edge list,
// oriented so that its winding number is positive.  Stroke outlines are
// built from many such pieces; with a common orientation their union is
// filled correctly by the nonzero rule.
func (r *Rasteriser) addPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area < 0 {
		for i := len(pts) - 1; i >= 0; i-- {
			r.addEdge(pts[i], pts[(i+len(pts)-1)%len(pts)])
		}
		return
	}
	for i, p := range pts {
		r.addEdge(p, pts[(i+1)%len(pts)])
	}
}

// Coverage accumulation
//
// Every edge crossing a pixel contributes to two per-pixel sums: "cover",
// the signed height of the part of the edge inside the pixel column, and
// "area", the same height weighted by the fraction of the pixel to the
// right of the edge.  The signed area of the path inside pixel i is then
//
//	area[i] + sum_{j<i} cover[j].
//
// Clamping the absolute value to 1 gives nonzero coverage, folding it
// modulo 2 gives even-odd coverage.

// sweep turns the current edge list into coverage, one scanline at a time,
// using an active edge list.
func (r *Rasteriser) sweep(rule Rule, emit Emit) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.boxX0)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.boxX1))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.boxY0)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.boxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				// edge is finished, swap-remove it
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == NonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e to scanline y.  It reports whether
// the edge overlaps the scanline at all.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), min(e.y0, e.y1))
	bottom := min(float64(y+1), max(e.y0, e.y1))
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left, right := min(xTop, xBottom), max(xTop, xBottom)
	pixLeft := int(math.Floor(left))
	pixRight := int(math.Floor(right))

	if pixRight < xMin {
		// entirely left of the box: full cover for the first pixel
		h := sign * float32(bottom-top)
		r.cover[0] += h
		r.area[0] += h
		return true
	}
	if pixLeft >= xMax {
		return true
	}

	if pixLeft == pixRight {
		r.addPiece(e, top, bottom, sign, pixLeft, xMin, xMax)
		return true
	}

	// split the edge at the pixel column boundaries
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bottom)
		if hi > lo {
			r.addPiece(e, lo, hi, sign, pix, xMin, xMax)
		}
	}
	return true
}

// addPiece adds the part of e between heights lo and hi, which lies inside
// pixel column pix.
func (r *Rasteriser) addPiece(e *edge, lo, hi float64, sign float32, pix, xMin, xMax int) {
	h := sign * float32(hi-lo)
	switch {
	case pix < xMin:
		r.cover[0] += h
		r.area[0] += h
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-frac)
	}
}

// integrateNonZero replaces cover with the nonzero coverage of each pixel.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd replaces cover with the even-odd coverage of each pixel.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness keeps curve approximation errors below a quarter
	// pixel.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF and canvas default of 10.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which stroke segments are
	// dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| between two segments below
	// which no join is drawn.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the value of cos θ below which a corner is
	// treated as a reversal of direction.
	cuspCosineThreshold = -0.9999
)
