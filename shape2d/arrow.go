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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// ArrowDefaults is the class default style of an [Arrow].
var ArrowDefaults = LineDefaults.Clone()

// Default head geometry of an [Arrow].
const (
	DefaultArrowSize  = 15
	DefaultArrowDelta = 30 * math.Pi / 180

	// DefaultArrowInset is the fraction of the head size by which the
	// shaft is shortened at each end with a head.
	DefaultArrowInset = 0.5
)

// ArrowParams holds the construction parameters of an [Arrow].
type ArrowParams struct {
	Name string

	// Start and End are the end points of the arrow, defaults (100, 100)
	// and (300, 100).
	Start any
	End   any

	// Size is the length of the heads.  Zero selects DefaultArrowSize.
	Size float64

	// Delta is the half-angle of the heads in radians.  Zero selects
	// DefaultArrowDelta.
	Delta float64

	// StartArrow and EndArrow select the heads.  Nil means true.
	StartArrow *bool
	EndArrow   *bool

	// Inset is the fraction of Size by which the shaft is pulled in at
	// each end with a head.  Nil selects DefaultArrowInset.
	Inset *float64

	Style style.Style
}

// ArrowHead is the triangle of one arrow head.
type ArrowHead struct {
	Tip    vec.Vec2
	Pivot1 vec.Vec2
	Pivot2 vec.Vec2
}

// Arrow is a line segment with optional triangular heads.
//
// The shaft and head geometry is cached.  Change the geometry through
// Update; direct changes to Start, End, Size, Delta, Inset, StartArrow or
// EndArrow are not reflected until the next Update.
type Arrow struct {
	Name       string
	Start      vec.Vec2
	End        vec.Vec2
	Size       float64
	Delta      float64
	StartArrow bool
	EndArrow   bool
	Inset      float64
	Style      style.Style

	shaftStart, shaftEnd vec.Vec2
	startHead, endHead   ArrowHead
}

// NewArrow returns a new arrow.
func NewArrow(p ArrowParams) (*Arrow, error) {
	const op = "shape2d.NewArrow"
	start, err := pointOr(op, "start", p.Start, vec.Vec2{X: 100, Y: 100})
	if err != nil {
		return nil, err
	}
	end, err := pointOr(op, "end", p.End, vec.Vec2{X: 300, Y: 100})
	if err != nil {
		return nil, err
	}
	a := &Arrow{
		Name:       p.Name,
		Start:      start,
		End:        end,
		Size:       p.Size,
		Delta:      p.Delta,
		StartArrow: true,
		EndArrow:   true,
		Inset:      DefaultArrowInset,
		Style:      ArrowDefaults.Merge(p.Style),
	}
	if a.Size == 0 {
		a.Size = DefaultArrowSize
	}
	if a.Delta == 0 {
		a.Delta = DefaultArrowDelta
	}
	if p.StartArrow != nil {
		a.StartArrow = *p.StartArrow
	}
	if p.EndArrow != nil {
		a.EndArrow = *p.EndArrow
	}
	if p.Inset != nil {
		a.Inset = *p.Inset
	}
	a.recompute()
	return a, nil
}

// ArrowUpdate lists the fields changed by [Arrow.Update].  Nil fields are
// left unchanged.
type ArrowUpdate struct {
	Start      any
	End        any
	Size       *float64
	Delta      *float64
	StartArrow *bool
	EndArrow   *bool
	Inset      *float64
}

// Update merges the given fields into the arrow and recomputes the shaft
// and heads.  If a point is malformed, a is left unchanged.
func (a *Arrow) Update(u ArrowUpdate) error {
	const op = "shape2d.Arrow.Update"
	start, err := pointOr(op, "start", u.Start, a.Start)
	if err != nil {
		return err
	}
	end, err := pointOr(op, "end", u.End, a.End)
	if err != nil {
		return err
	}
	a.Start, a.End = start, end
	if u.Size != nil {
		a.Size = *u.Size
	}
	if u.Delta != nil {
		a.Delta = *u.Delta
	}
	if u.StartArrow != nil {
		a.StartArrow = *u.StartArrow
	}
	if u.EndArrow != nil {
		a.EndArrow = *u.EndArrow
	}
	if u.Inset != nil {
		a.Inset = *u.Inset
	}
	a.recompute()
	return nil
}

func (a *Arrow) recompute() {
	d := a.End.Sub(a.Start)
	forward := vec.Vec2{X: 1}
	if l := d.Length(); l > 0 {
		forward = d.Mul(1 / l)
	} else {
		mathgraph.Logger().Warn("zero-length arrow", "name", a.Name,
			"x", a.Start.X, "y", a.Start.Y)
	}
	backward := forward.Mul(-1)
	pull := a.Size * a.Inset

	a.shaftStart = a.Start
	if a.StartArrow {
		a.shaftStart = a.Start.Add(forward.Mul(pull))
	}
	a.shaftEnd = a.End
	if a.EndArrow {
		a.shaftEnd = a.End.Add(backward.Mul(pull))
	}

	a.startHead = a.head(a.Start, forward)
	a.endHead = a.head(a.End, backward)
}

// head returns the head with its tip at tip, opening in the direction of
// the unit vector dir.
func (a *Arrow) head(tip, dir vec.Vec2) ArrowHead {
	sin, cos := math.Sincos(a.Delta)
	side := func(s float64) vec.Vec2 {
		return vec.Vec2{X: dir.X*cos - dir.Y*s, Y: dir.X*s + dir.Y*cos}
	}
	return ArrowHead{
		Tip:    tip,
		Pivot1: tip.Add(side(sin).Mul(a.Size)),
		Pivot2: tip.Add(side(-sin).Mul(a.Size)),
	}
}

// Shaft returns the end points of the shaft, after shortening.
func (a *Arrow) Shaft() (start, end vec.Vec2) {
	return a.shaftStart, a.shaftEnd
}

// Heads returns the enabled arrow heads, start head first.
func (a *Arrow) Heads() []ArrowHead {
	var res []ArrowHead
	if a.StartArrow {
		res = append(res, a.startHead)
	}
	if a.EndArrow {
		res = append(res, a.endHead)
	}
	return res
}

func (a *Arrow) resolve(override style.Style) style.Resolved {
	return style.Resolve(override, a.Style, ArrowDefaults)
}

// ArrowStyles holds the SVG presentation attributes of the two parts of
// an arrow.
type ArrowStyles struct {
	Line []svg.Attr
	Head []svg.Attr
}

// Styles returns the SVG presentation attributes of the shaft and of the
// heads.  Heads are always filled and never dashed.
func (a *Arrow) Styles(override style.Style, form style.Form) ArrowStyles {
	s := a.resolve(override)
	return ArrowStyles{
		Line: lineStyles(s, form),
		Head: form.Attrs([]svg.Attr{{Name: "fill", Value: s.Color}}),
	}
}

// ArrowPaths holds the SVG path data of an arrow.  Disabled heads have
// empty path data.
type ArrowPaths struct {
	Line      string
	StartHead string
	EndHead   string
}

// PathD returns the SVG path data of the shaft and the heads.
func (a *Arrow) PathD() ArrowPaths {
	b := &pathBuilder{}
	b.cmd('M', a.shaftStart.X, a.shaftStart.Y)
	b.cmd('L', a.shaftEnd.X, a.shaftEnd.Y)
	res := ArrowPaths{Line: b.String()}
	if a.StartArrow {
		res.StartHead = headPathD(a.startHead)
	}
	if a.EndArrow {
		res.EndHead = headPathD(a.endHead)
	}
	return res
}

func headPathD(h ArrowHead) string {
	b := &pathBuilder{}
	b.cmd('M', h.Tip.X, h.Tip.Y)
	b.cmd('L', h.Pivot1.X, h.Pivot1.Y)
	b.cmd('L', h.Pivot2.X, h.Pivot2.Y)
	b.WriteByte('Z')
	return b.String()
}

// GroupElement returns the arrow as an SVG group, containing the shaft
// path followed by one path per enabled head.
func (a *Arrow) GroupElement(override style.Style) *svg.Node {
	g := newElement("g", "Arrow", a.Name, nil)
	d := a.PathD()
	s := a.Styles(override, style.AttrForm)

	line := newElement("path", "Arrow-line", "", s.Line).SetAttr("d", d.Line)
	g.Append(line)
	for _, hd := range []string{d.StartHead, d.EndHead} {
		if hd == "" {
			continue
		}
		head := newElement("path", "Arrow-head", "", s.Head).SetAttr("d", hd)
		g.Append(head)
	}
	return g
}

// Element implements the [Shape] interface.
func (a *Arrow) Element(override style.Style) (*svg.Node, error) {
	return a.GroupElement(override), nil
}

// Draw implements the [Shape] interface.
func (a *Arrow) Draw(ctx raster.Context, override style.Style) error {
	s := a.resolve(override)

	ctx.Save()
	ctx.SetStrokeColor(s.Color)
	ctx.SetFillColor(s.Color)
	ctx.SetLineWidth(s.LineWidth)
	ctx.SetLineDash(s.LineDash)

	ctx.BeginPath()
	ctx.MoveTo(a.shaftStart.X, a.shaftStart.Y)
	ctx.LineTo(a.shaftEnd.X, a.shaftEnd.Y)
	ctx.Stroke()

	ctx.SetLineDash(LineDefaults.LineDash)
	for _, h := range a.Heads() {
		ctx.BeginPath()
		ctx.MoveTo(h.Tip.X, h.Tip.Y)
		ctx.LineTo(h.Pivot1.X, h.Pivot1.Y)
		ctx.LineTo(h.Pivot2.X, h.Pivot2.Y)
		ctx.ClosePath()
		ctx.Fill()
	}
	ctx.Restore()

	return ctx.Err()
}
