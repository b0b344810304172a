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
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/control"
	"seehuhn.de/go/mathgraph/style"
)

// Controllable is implemented by shapes which can be edited through a
// [control.Panel].
type Controllable interface {
	// Controls describes the editable properties with their current
	// values.
	Controls() []control.Descriptor

	// Apply sets the property named in c.
	Apply(c control.Change) error
}

var (
	_ Controllable = (*Point)(nil)
	_ Controllable = (*Line)(nil)
	_ Controllable = (*LinePointWithAngle)(nil)
	_ Controllable = (*Angle)(nil)
	_ Controllable = (*RectAngle)(nil)
	_ Controllable = (*Arrow)(nil)
	_ Controllable = (*Plot)(nil)
	_ Controllable = (*PointWithProjections)(nil)
)

// Bind adds the controls of s to the folder of panel p.  Changes are
// applied to s and then passed to onChange, if it is not nil.  Failed
// changes are logged and not passed on.
func Bind(p *control.Panel, folder string, s Controllable, onChange func(control.Change)) {
	for _, d := range s.Controls() {
		p.Add(d, func(c control.Change) {
			if err := s.Apply(c); err != nil {
				mathgraph.Logger().Warn("control change rejected",
					"folder", c.Folder, "name", c.Name, "error", err)
				return
			}
			if onChange != nil {
				onChange(c)
			}
		}, control.InFolder(folder))
	}
}

// bounds of the generated range controls
const (
	deviceMax = 1000
	widthMax  = 20
)

func rangeControl(name string, v, lo, hi, step float64) control.Descriptor {
	return control.Descriptor{Name: name, Kind: control.Range, Min: lo, Max: hi, Step: step, Value: v}
}

func positionControls(prefix string, v [2]float64) []control.Descriptor {
	return []control.Descriptor{
		rangeControl(prefix+"x", v[0], 0, deviceMax, 1),
		rangeControl(prefix+"y", v[1], 0, deviceMax, 1),
	}
}

func angleControl(name string, v float64) control.Descriptor {
	return rangeControl(name, v, -2*math.Pi, 2*math.Pi, 0.01)
}

// styleControls returns controls for the named style properties.
func styleControls(s style.Resolved, names ...string) []control.Descriptor {
	var res []control.Descriptor
	for _, name := range names {
		switch name {
		case "color":
			res = append(res, control.Descriptor{Name: name, Kind: control.Color, Value: s.Color})
		case "borderColor":
			res = append(res, control.Descriptor{Name: name, Kind: control.Color, Value: s.BorderColor})
		case "lineWidth":
			res = append(res, rangeControl(name, s.LineWidth, 0, widthMax, 0.5))
		case "opacity":
			res = append(res, rangeControl(name, s.Opacity, 0, 1, 0.05))
		case "fillOpacity":
			res = append(res, rangeControl(name, s.FillOpacity, 0, 1, 0.05))
		case "lineDash":
			dash := make([]string, len(s.LineDash))
			for i, d := range s.LineDash {
				dash[i] = num(d)
			}
			res = append(res, control.Descriptor{Name: name, Kind: control.Array, Value: dash})
		}
	}
	return res
}

// applyStyle applies a change of a style property to s.  The result is
// false if c does not name a style property.
func applyStyle(s *style.Style, c control.Change) (bool, error) {
	var value any
	switch c.Name {
	case "color", "borderColor":
		v, err := c.Text()
		if err != nil {
			return true, err
		}
		value = v
	case "lineWidth", "opacity", "fillOpacity":
		v, err := c.Float()
		if err != nil {
			return true, err
		}
		value = v
	case "lineDash":
		v, err := parseDash(c)
		if err != nil {
			return true, err
		}
		value = v
	default:
		return false, nil
	}
	return true, s.Set(c.Name, value)
}

func parseDash(c control.Change) ([]float64, error) {
	parts, err := c.Strings()
	if err != nil {
		return nil, err
	}
	dash := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, mathgraph.Wrap("shape2d", c.Name,
				fmt.Errorf("dash entry %q: %w", p, mathgraph.ErrInvalidGeometryInput))
		}
		dash = append(dash, v)
	}
	return dash, nil
}

func unknownControl(c control.Change) error {
	return mathgraph.Wrap("shape2d", c.Name,
		fmt.Errorf("unknown property: %w", mathgraph.ErrInvalidGeometryInput))
}

// Controls implements the [Controllable] interface.
func (p *Point) Controls() []control.Descriptor {
	res := positionControls("", [2]float64{p.Center.X, p.Center.Y})
	res = append(res, rangeControl("radius", p.Radius, 0, 50, 0.5))
	return append(res, styleControls(p.resolve(style.Style{}),
		"color", "borderColor", "lineWidth", "fillOpacity")...)
}

// Apply implements the [Controllable] interface.
func (p *Point) Apply(c control.Change) error {
	if ok, err := applyStyle(&p.Style, c); ok {
		return err
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	switch c.Name {
	case "x":
		p.Center.X = v
	case "y":
		p.Center.Y = v
	case "radius":
		p.Radius = v
	default:
		return unknownControl(c)
	}
	return nil
}

// Controls implements the [Controllable] interface.
func (l *Line) Controls() []control.Descriptor {
	res := positionControls("start.", [2]float64{l.Start.X, l.Start.Y})
	res = append(res, positionControls("end.", [2]float64{l.End.X, l.End.Y})...)
	return append(res, styleControls(l.resolve(style.Style{}),
		"color", "lineWidth", "lineDash")...)
}

// Apply implements the [Controllable] interface.
func (l *Line) Apply(c control.Change) error {
	if ok, err := applyStyle(&l.Style, c); ok {
		return err
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	switch c.Name {
	case "start.x":
		l.Start.X = v
	case "start.y":
		l.Start.Y = v
	case "end.x":
		l.End.X = v
	case "end.y":
		l.End.Y = v
	default:
		return unknownControl(c)
	}
	return nil
}

// Controls implements the [Controllable] interface.
func (l *LinePointWithAngle) Controls() []control.Descriptor {
	res := positionControls("", [2]float64{l.Anchor.X, l.Anchor.Y})
	res = append(res,
		angleControl("angle", l.Angle),
		rangeControl("length", l.Length, 0, deviceMax, 1),
		control.Descriptor{Name: "center", Kind: control.Boolean, Value: l.Centered},
	)
	return append(res, styleControls(l.resolve(style.Style{}),
		"color", "lineWidth", "lineDash")...)
}

// Apply implements the [Controllable] interface.
func (l *LinePointWithAngle) Apply(c control.Change) error {
	if ok, err := applyStyle(&l.Style, c); ok {
		return err
	}
	var u LinePointWithAngleUpdate
	if c.Name == "center" {
		v, err := c.Bool()
		if err != nil {
			return err
		}
		u.Center = &v
		return l.Update(u)
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	switch c.Name {
	case "x":
		u.Point = [2]float64{v, l.Anchor.Y}
	case "y":
		u.Point = [2]float64{l.Anchor.X, v}
	case "angle":
		u.Angle = &v
	case "length":
		u.Length = &v
	default:
		return unknownControl(c)
	}
	return l.Update(u)
}

// Controls implements the [Controllable] interface.
func (a *Angle) Controls() []control.Descriptor {
	res := positionControls("", [2]float64{a.Vertex.X, a.Vertex.Y})
	res = append(res,
		angleControl("angle", a.Angle),
		angleControl("rotate", a.Rotate),
		rangeControl("radius", a.Radius, 0, 200, 1),
	)
	return append(res, styleControls(a.resolve(style.Style{}),
		"color", "lineWidth", "fillOpacity")...)
}

// Apply implements the [Controllable] interface.
func (a *Angle) Apply(c control.Change) error {
	if ok, err := applyStyle(&a.Style, c); ok {
		return err
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	switch c.Name {
	case "x":
		a.Vertex.X = v
	case "y":
		a.Vertex.Y = v
	case "angle":
		a.Angle = reduceAngle(v)
	case "rotate":
		a.Rotate = reduceAngle(v)
	case "radius":
		a.Radius = v
	default:
		return unknownControl(c)
	}
	return nil
}

// Controls implements the [Controllable] interface.
func (r *RectAngle) Controls() []control.Descriptor {
	res := positionControls("", [2]float64{r.Point.X, r.Point.Y})
	res = append(res,
		rangeControl("size", r.Size, 0, 200, 1),
		angleControl("rotate", r.Rotate),
	)
	return append(res, styleControls(r.resolve(style.Style{}),
		"color", "lineWidth", "fillOpacity")...)
}

// Apply implements the [Controllable] interface.
func (r *RectAngle) Apply(c control.Change) error {
	if ok, err := applyStyle(&r.Style, c); ok {
		return err
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	switch c.Name {
	case "x":
		r.Point.X = v
	case "y":
		r.Point.Y = v
	case "size":
		r.Size = v
	case "rotate":
		r.Rotate = reduceAngle(v)
	default:
		return unknownControl(c)
	}
	return nil
}

// Controls implements the [Controllable] interface.
func (a *Arrow) Controls() []control.Descriptor {
	res := positionControls("start.", [2]float64{a.Start.X, a.Start.Y})
	res = append(res, positionControls("end.", [2]float64{a.End.X, a.End.Y})...)
	res = append(res,
		rangeControl("size", a.Size, 0, 100, 1),
		rangeControl("delta", a.Delta, 0, math.Pi/2, 0.01),
		control.Descriptor{Name: "startArrow", Kind: control.Boolean, Value: a.StartArrow},
		control.Descriptor{Name: "endArrow", Kind: control.Boolean, Value: a.EndArrow},
	)
	return append(res, styleControls(a.resolve(style.Style{}),
		"color", "lineWidth", "lineDash")...)
}

// Apply implements the [Controllable] interface.  Geometry changes go
// through Update.
func (a *Arrow) Apply(c control.Change) error {
	if ok, err := applyStyle(&a.Style, c); ok {
		return err
	}
	var u ArrowUpdate
	switch c.Name {
	case "startArrow", "endArrow":
		v, err := c.Bool()
		if err != nil {
			return err
		}
		if c.Name == "startArrow" {
			u.StartArrow = &v
		} else {
			u.EndArrow = &v
		}
		return a.Update(u)
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	switch c.Name {
	case "start.x":
		u.Start = [2]float64{v, a.Start.Y}
	case "start.y":
		u.Start = [2]float64{a.Start.X, v}
	case "end.x":
		u.End = [2]float64{v, a.End.Y}
	case "end.y":
		u.End = [2]float64{a.End.X, v}
	case "size":
		u.Size = &v
	case "delta":
		u.Delta = &v
	default:
		return unknownControl(c)
	}
	return a.Update(u)
}

// Controls implements the [Controllable] interface.
func (p *Plot) Controls() []control.Descriptor {
	res := []control.Descriptor{
		rangeControl("min", p.Range.Min, -50, 50, 0.5),
		rangeControl("max", p.Range.Max, -50, 50, 0.5),
		rangeControl("step", p.Step, 0.01, 1, 0.01),
	}
	return append(res, styleControls(p.resolve(style.Style{}),
		"color", "lineWidth", "opacity", "lineDash")...)
}

// Apply implements the [Controllable] interface.  Changes of the range or
// the step resample the function.
func (p *Plot) Apply(c control.Change) error {
	if ok, err := applyStyle(&p.Style, c); ok {
		return err
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	var u PlotUpdate
	switch c.Name {
	case "min":
		u.Range = mathgraph.Range{Min: v, Max: p.Range.Max}
	case "max":
		u.Range = mathgraph.Range{Min: p.Range.Min, Max: v}
	case "step":
		u.Step = &v
	default:
		return unknownControl(c)
	}
	return p.Update(u)
}

// Controls implements the [Controllable] interface.
func (w *PointWithProjections) Controls() []control.Descriptor {
	res := positionControls("", [2]float64{w.pos.X, w.pos.Y})
	res = append(res, positionControls("origin.", [2]float64{w.origin.X, w.origin.Y})...)
	res = append(res, rangeControl("radius", w.Point.Radius, 0, 50, 0.5))
	ps := style.Resolve(style.Style{}, w.pointStyle, PointDefaults)
	ls := style.Resolve(style.Style{}, w.lineStyle, ProjectionLineDefaults)
	return append(res,
		control.Descriptor{Name: "pointColor", Kind: control.Color, Value: ps.Color},
		control.Descriptor{Name: "lineColor", Kind: control.Color, Value: ls.Color},
	)
}

// Apply implements the [Controllable] interface.
func (w *PointWithProjections) Apply(c control.Change) error {
	switch c.Name {
	case "pointColor", "lineColor":
		v, err := c.Text()
		if err != nil {
			return err
		}
		if c.Name == "pointColor" {
			w.SetPointStyle(style.Style{Color: style.String(v)})
		} else {
			w.SetLineStyle(style.Style{Color: style.String(v)})
		}
		return nil
	}
	v, err := c.Float()
	if err != nil {
		return err
	}
	var u ProjectionUpdate
	switch c.Name {
	case "x":
		u.Point = [2]float64{v, w.pos.Y}
	case "y":
		u.Point = [2]float64{w.pos.X, v}
	case "origin.x":
		u.Origin = [2]float64{v, w.origin.Y}
	case "origin.y":
		u.Origin = [2]float64{w.origin.X, v}
	case "radius":
		u.Radius = v
	default:
		return unknownControl(c)
	}
	return w.Update(u)
}
