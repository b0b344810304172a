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

// Package gallery contains example drawings of all primitives.
//
// The export commands in the subdirectories render every scene as PNG,
// SVG and PDF.  The tests use the gallery to check that the raster and
// vector outputs of every primitive agree.
package gallery

import (
	"fmt"
	"image"

	"seehuhn.de/go/mathgraph/axis"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/scene3d"
	"seehuhn.de/go/mathgraph/shape2d"
	"seehuhn.de/go/mathgraph/shape3d"
	"seehuhn.de/go/mathgraph/style"
	"seehuhn.de/go/mathgraph/svg"
)

// Size of the 2D scenes, fitting the default axes.
const (
	Width  = 1000
	Height = 525
)

// AxisColor is the colour of the coordinate axes in 2D scenes.
const AxisColor = "#bebebe"

// Scene is a 2D drawing.
type Scene struct {
	Name string // lowercase a-z and _ only

	// NoAxis suppresses the coordinate axes.
	NoAxis bool

	// Build constructs the shapes of the scene, using the given axes.
	Build func(m *axis.Mapping) ([]shape2d.Shape, error)
}

// Shapes constructs the shapes of the scene on the default axes.
func (s Scene) Shapes() (*axis.Mapping, []shape2d.Shape, error) {
	m := axis.Default()
	shapes, err := s.Build(m)
	if err != nil {
		return nil, nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return m, shapes, nil
}

// Draw paints the scene onto ctx.
func (s Scene) Draw(ctx raster.Context) error {
	m, shapes, err := s.Shapes()
	if err != nil {
		return err
	}
	if !s.NoAxis {
		if err := m.Draw(ctx, axis.Options{HideZeroLabel: true, Color: AxisColor}); err != nil {
			return fmt.Errorf("scene %q: axes: %w", s.Name, err)
		}
	}
	for _, sh := range shapes {
		if err := sh.Draw(ctx, style.Style{}); err != nil {
			return fmt.Errorf("scene %q: %w", s.Name, err)
		}
	}
	return nil
}

// Image renders the scene with the raster back end.
func (s Scene) Image(opts ...raster.CanvasOption) (*image.RGBA, error) {
	c := raster.NewCanvas(Width, Height, opts...)
	if err := s.Draw(c); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// SVG renders the scene with the vector back end.
func (s Scene) SVG() (*svg.Node, error) {
	m, shapes, err := s.Shapes()
	if err != nil {
		return nil, err
	}
	doc := svg.NewDocument(Width, Height)
	if !s.NoAxis {
		m.DrawAxes(doc, axis.Options{HideZeroLabel: true, Color: AxisColor})
	}
	for _, sh := range shapes {
		el, err := sh.Element(style.Style{})
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name, err)
		}
		doc.Append(el)
	}
	return doc, nil
}

// SpaceScene is a 3D drawing.
type SpaceScene struct {
	Name string // lowercase a-z and _ only

	// Build constructs the objects of the scene.
	Build func() ([]shape3d.Object, error)

	// View optionally adjusts the camera.
	View func(s *scene3d.Scene)
}

// Scene constructs the 3D scene.
func (s SpaceScene) Scene(opts ...scene3d.Option) (*scene3d.Scene, error) {
	objs, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	sc, err := scene3d.NewScene(s.Name, opts...)
	if err != nil {
		return nil, err
	}
	sc.Add(objs...)
	if s.View != nil {
		s.View(sc)
	}
	return sc, nil
}

// Image renders the scene.
func (s SpaceScene) Image(opts ...scene3d.Option) (*image.RGBA, error) {
	sc, err := s.Scene(opts...)
	if err != nil {
		return nil, err
	}
	if err := sc.Render(); err != nil {
		return nil, err
	}
	return sc.Frame(), nil
}

// shapes collects constructed shapes and the first construction error.
type shapes struct {
	list []shape2d.Shape
	err  error
}

func add[T shape2d.Shape](b *shapes, s T, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.list = append(b.list, s)
}

func (b *shapes) result() ([]shape2d.Shape, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.list, nil
}

// objects is the 3D counterpart of shapes.
type objects struct {
	list []shape3d.Object
	err  error
}

func add3[T shape3d.Object](b *objects, o T, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.list = append(b.list, o)
}

func (b *objects) result() ([]shape3d.Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.list, nil
}
