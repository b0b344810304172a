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

// Package scene3d renders 3D scenes with a software projection renderer.
//
// A [Scene] holds a tree of [shape3d.Object] values, a [Camera] and the
// [OrbitControls] which move the camera.  [Scene.Render] projects all
// triangles and line segments onto a [raster.Canvas] and paints them from
// back to front.
package scene3d

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
	"seehuhn.de/go/mathgraph/raster"
	"seehuhn.de/go/mathgraph/shape3d"
)

// ErrNoFrame is returned by [Scene.Capture] if no frame was rendered
// while the capture was pending.
var ErrNoFrame = errors.New("scene3d: no frame rendered")

const (
	DefaultWidth        = 900
	DefaultHeight       = 600
	DefaultCaptureDelay = 200 * time.Millisecond

	// ambient is the brightness of faces turned away from the light.
	ambient = 0.4
)

// Option configures a [Scene].
type Option func(*Scene)

// WithSize sets the size of the rendered image in pixels.
func WithSize(width, height int) Option {
	return func(s *Scene) {
		s.width = max(width, 1)
		s.height = max(height, 1)
	}
}

// WithBackground sets the colour the image is cleared to.  The default is
// black.
func WithBackground(c color.Color) Option {
	return func(s *Scene) {
		s.background = c
	}
}

// WithShading turns flat shading on or off.  Shading is on by default.
// Without shading every face is painted in the colour of its mesh.
func WithShading(on bool) Option {
	return func(s *Scene) {
		s.shading = on
	}
}

// WithCaptureDelay sets the time [Scene.Capture] waits for a frame.
func WithCaptureDelay(d time.Duration) Option {
	return func(s *Scene) {
		s.captureDelay = d
	}
}

// WithoutAxis omits the coordinate axes which are added to new scenes by
// default.
func WithoutAxis() Option {
	return func(s *Scene) {
		s.noAxis = true
	}
}

// RenderStats counts the primitives of the last rendered frame.
type RenderStats struct {
	Faces   int // painted triangles
	Lines   int // painted line segments
	Culled  int // back faces and degenerate triangles
	Clipped int // primitives outside the depth range
}

// Scene is a collection of 3D objects seen through a camera.
//
// Capture may be called concurrently with Render.  All other methods must
// not be called concurrently.
type Scene struct {
	Name string

	root     shape3d.Group
	axis     *shape3d.Axis3D
	camera   *Camera
	controls *OrbitControls

	width, height int
	background    color.Color
	shading       bool
	captureDelay  time.Duration
	noAxis        bool

	frame *image.RGBA
	stats RenderStats

	mu       sync.Mutex
	capture  bool
	captured *image.RGBA
}

// NewScene returns a scene with a perspective camera at (7, 7, 7) looking
// at the origin.  Unless [WithoutAxis] is given, the scene contains an
// [shape3d.Axis3D] with default parameters.
func NewScene(name string, opts ...Option) (*Scene, error) {
	s := &Scene{
		Name:         name,
		width:        DefaultWidth,
		height:       DefaultHeight,
		background:   color.Black,
		shading:      true,
		captureDelay: DefaultCaptureDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root.Name = name

	s.camera = NewCamera(Perspective, s.width, s.height)
	s.controls = NewOrbitControls(s.camera)

	if !s.noAxis {
		axis, err := shape3d.NewAxis3D(shape3d.Axis3DParams{})
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", name, err)
		}
		s.axis = axis
		s.Add(axis)
	}
	return s, nil
}

// Size returns the size of the rendered image.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Axis returns the default coordinate axes, or nil if the scene was
// created without them.
func (s *Scene) Axis() *shape3d.Axis3D {
	return s.axis
}

// Camera returns the current camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Controls returns the orbit controls of the current camera.
func (s *Scene) Controls() *OrbitControls {
	return s.controls
}

// IsPerspective reports whether the current camera uses a perspective
// projection.
func (s *Scene) IsPerspective() bool {
	return s.camera.Projection == Perspective
}

// Add appends objects to the scene.
func (s *Scene) Add(objs ...shape3d.Object) {
	s.root.Children = append(s.root.Children, objs...)
}

// Remove detaches obj from the scene.  It reports whether obj was found.
func (s *Scene) Remove(obj shape3d.Object) bool {
	i := slices.Index(s.root.Children, obj)
	if i < 0 {
		return false
	}
	s.root.Children = slices.Delete(s.root.Children, i, i+1)
	if obj == shape3d.Object(s.axis) {
		s.axis = nil
	}
	return true
}

// Objects returns the top-level objects of the scene.
func (s *Scene) Objects() []shape3d.Object {
	return slices.Clone(s.root.Children)
}

// Meshes returns all meshes of the scene, in drawing order.
func (s *Scene) Meshes() []*shape3d.Mesh {
	return s.root.Meshes()
}

// ToggleProjection switches between perspective and orthographic
// projection.  The new camera keeps the position of the old one, and new
// orbit controls with the same target replace the old controls, which are
// disposed.
func (s *Scene) ToggleProjection() {
	old := s.camera
	next := Orthographic
	if old.Projection == Orthographic {
		next = Perspective
	}

	cam := NewCamera(next, s.width, s.height)
	cam.Position = old.Position
	cam.Up = old.Up

	controls := NewOrbitControls(cam)
	controls.Target = s.controls.Target
	controls.MinDistance = s.controls.MinDistance
	controls.MaxDistance = s.controls.MaxDistance
	controls.Update()

	s.controls.Dispose()
	s.camera = cam
	s.controls = controls
	mathgraph.Logger().Debug("projection changed", "scene", s.Name, "projection", next)
}

// ChangeView moves the camera to length times the given direction, for
// example [Up] or [Front].  A zero length selects 1.  A zero direction
// leaves the camera unchanged.
func (s *Scene) ChangeView(direction r3.Vec, length float64) {
	if direction == (r3.Vec{}) {
		mathgraph.Logger().Warn("ignoring zero view direction", "scene", s.Name)
		return
	}
	if length == 0 {
		length = 1
	}
	s.camera.Position = r3.Scale(length, direction)
}

// Capture requests a copy of the next rendered frame.  It waits for the
// capture delay and returns the frame rendered in the meantime.  If no
// frame was rendered, ErrNoFrame is returned.
func (s *Scene) Capture(ctx context.Context) (*image.RGBA, error) {
	s.mu.Lock()
	s.capture = true
	s.captured = nil
	s.mu.Unlock()

	t := time.NewTimer(s.captureDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		s.mu.Lock()
		s.capture = false
		s.mu.Unlock()
		return nil, ctx.Err()
	case <-t.C:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	img := s.captured
	s.capture = false
	s.captured = nil
	if img == nil {
		return nil, ErrNoFrame
	}
	return img, nil
}

// Frame returns the most recently rendered image, or nil.
func (s *Scene) Frame() *image.RGBA {
	return s.frame
}

// Stats returns the statistics of the most recently rendered frame.
func (s *Scene) Stats() RenderStats {
	return s.stats
}

// primitive is a projected triangle or line segment.
type primitive struct {
	depth float64
	pts   []vec.Vec2
	color string
	alpha float64
}

// Render draws the scene into a new image, which is then available via
// [Scene.Frame].
func (s *Scene) Render() error {
	s.controls.Update()
	pr := s.camera.Projector()
	eye := s.camera.Position
	forward := s.camera.Forward()
	ortho := s.camera.Projection == Orthographic

	var stats RenderStats
	var prims []primitive
	for _, m := range s.Meshes() {
		col, err := raster.ParseColor(m.Color)
		if err != nil {
			return fmt.Errorf("scene %q: mesh %q: %w", s.Name, m.Name, err)
		}
		base := hex(col, 1)

		for i := range m.Faces {
			tri := m.Triangle(i)
			pts, depth, ok := project(pr, tri[:])
			if !ok {
				stats.Clipped++
				continue
			}

			n := tri.Normal()
			toEye := r3.Scale(-1, forward)
			if !ortho {
				toEye = r3.Sub(eye, tri.Centroid())
			}
			facing := r3.Dot(n, toEye)
			if r3.Norm(n) == 0 || facing < 0 && !m.DoubleSided {
				stats.Culled++
				continue
			}

			c := base
			if s.shading {
				cos := math.Abs(facing) / (r3.Norm(n) * r3.Norm(toEye))
				c = hex(col, ambient+(1-ambient)*cos)
			}
			prims = append(prims, primitive{depth: depth, pts: pts, color: c, alpha: m.Opacity})
			stats.Faces++
		}

		for _, l := range m.Lines {
			pts, depth, ok := project(pr, []r3.Vec{m.Vertices[l[0]], m.Vertices[l[1]]})
			if !ok {
				stats.Clipped++
				continue
			}
			prims = append(prims, primitive{depth: depth, pts: pts, color: base, alpha: m.Opacity})
			stats.Lines++
		}
	}

	slices.SortStableFunc(prims, func(a, b primitive) int {
		return cmp.Compare(b.depth, a.depth)
	})

	canvas := raster.NewCanvas(s.width, s.height, raster.WithBackground(s.background))
	canvas.SetLineWidth(1)
	for _, p := range prims {
		canvas.SetGlobalAlpha(p.alpha)
		canvas.BeginPath()
		canvas.MoveTo(p.pts[0].X, p.pts[0].Y)
		for _, q := range p.pts[1:] {
			canvas.LineTo(q.X, q.Y)
		}
		if len(p.pts) == 2 {
			canvas.SetStrokeColor(p.color)
			canvas.Stroke()
			continue
		}
		canvas.ClosePath()
		canvas.SetFillColor(p.color)
		canvas.Fill()
	}
	if err := canvas.Err(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}

	img := canvas.Image()
	s.frame = img
	s.stats = stats

	s.mu.Lock()
	if s.capture {
		s.captured = img
		s.capture = false
	}
	s.mu.Unlock()

	mathgraph.Logger().Debug("frame rendered", "scene", s.Name,
		"faces", stats.Faces, "lines", stats.Lines,
		"culled", stats.Culled, "clipped", stats.Clipped)
	return nil
}

// project maps the points to pixel coordinates and returns their mean
// depth.  It fails if any point is outside the depth range.
func project(pr *Projector, ps []r3.Vec) ([]vec.Vec2, float64, bool) {
	pts := make([]vec.Vec2, len(ps))
	depth := 0.0
	for i, p := range ps {
		q, z, ok := pr.Project(p)
		if !ok {
			return nil, 0, false
		}
		pts[i] = q
		depth += z
	}
	return pts, depth / float64(len(ps)), true
}

// hex formats col with its RGB channels scaled by f.
func hex(col color.NRGBA, f float64) string {
	scale := func(v uint8) uint8 {
		return uint8(math.Round(min(255, float64(v)*f)))
	}
	return fmt.Sprintf("#%02x%02x%02x", scale(col.R), scale(col.G), scale(col.B))
}
