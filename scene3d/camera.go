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

package scene3d

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/geom/vec"
)

// Projection selects the camera model.
type Projection int

// These are the supported projections.
const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Default camera parameters.
var (
	DefaultPosition = r3.Vec{X: 7, Y: 7, Z: 7}
	DefaultUp       = r3.Vec{Z: 1}
)

const (
	DefaultFov  = 45
	DefaultNear = 1
	DefaultFar  = 10000

	// orthoScale is the number of pixels per world unit of an
	// orthographic camera at zoom 1.
	orthoScale = 90
)

// Camera describes the view of a scene.  The camera is placed at Position
// and looks at Target, with Up pointing towards the top of the image.
type Camera struct {
	Projection Projection

	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec

	// Fov is the vertical field of view of a perspective camera, in
	// degrees.
	Fov float64

	Near, Far float64

	// Width and Height give the size of the viewport in pixels.
	Width, Height int

	// Zoom scales the visible region of an orthographic camera.
	Zoom float64
}

// NewCamera returns a camera with the default parameters for a viewport of
// the given size.
func NewCamera(p Projection, width, height int) *Camera {
	return &Camera{
		Projection: p,
		Position:   DefaultPosition,
		Up:         DefaultUp,
		Fov:        DefaultFov,
		Near:       DefaultNear,
		Far:        DefaultFar,
		Width:      width,
		Height:     height,
		Zoom:       1,
	}
}

// Aspect returns the width to height ratio of the viewport.
func (c *Camera) Aspect() float64 {
	if c.Height == 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// Bounds returns the visible region of an orthographic camera, in world
// units relative to the view axis.
func (c *Camera) Bounds() (left, right, top, bottom float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w := float64(c.Width) / (2 * orthoScale * zoom)
	h := float64(c.Height) / (2 * orthoScale * zoom)
	return -w, w, h, -h
}

// axes returns the camera's right, up and backward unit vectors.  If the
// view direction is parallel to Up, the y axis takes the role of Up.
func (c *Camera) axes() (x, y, z r3.Vec) {
	z = r3.Sub(c.Position, c.Target)
	if r3.Norm(z) == 0 {
		z = r3.Vec{Z: 1}
	}
	z = r3.Unit(z)
	up := c.Up
	if r3.Norm(up) == 0 {
		up = DefaultUp
	}
	x = r3.Cross(up, z)
	if r3.Norm(x) < 1e-12 {
		x = r3.Cross(r3.Vec{Y: 1}, z)
		if r3.Norm(x) < 1e-12 {
			x = r3.Cross(r3.Vec{X: 1}, z)
		}
	}
	x = r3.Unit(x)
	y = r3.Cross(z, x)
	return x, y, z
}

// Forward returns the unit vector in viewing direction.
func (c *Camera) Forward() r3.Vec {
	_, _, z := c.axes()
	return r3.Scale(-1, z)
}

// View returns the 4×4 matrix which maps world coordinates to camera
// coordinates.
func (c *Camera) View() *mat.Dense {
	x, y, z := c.axes()
	p := c.Position
	return mat.NewDense(4, 4, []float64{
		x.X, x.Y, x.Z, -r3.Dot(x, p),
		y.X, y.Y, y.Z, -r3.Dot(y, p),
		z.X, z.Y, z.Z, -r3.Dot(z, p),
		0, 0, 0, 1,
	})
}

// ProjectionMatrix returns the 4×4 matrix which maps camera coordinates to
// clip coordinates.
func (c *Camera) ProjectionMatrix() *mat.Dense {
	n, f := c.Near, c.Far
	switch c.Projection {
	case Orthographic:
		l, r, t, b := c.Bounds()
		return mat.NewDense(4, 4, []float64{
			2 / (r - l), 0, 0, -(r + l) / (r - l),
			0, 2 / (t - b), 0, -(t + b) / (t - b),
			0, 0, -2 / (f - n), -(f + n) / (f - n),
			0, 0, 0, 1,
		})
	default:
		s := 1 / math.Tan(c.Fov*math.Pi/360)
		return mat.NewDense(4, 4, []float64{
			s / c.Aspect(), 0, 0, 0,
			0, s, 0, 0,
			0, 0, (f + n) / (n - f), 2 * f * n / (n - f),
			0, 0, -1, 0,
		})
	}
}

// Matrix returns the combined view and projection matrix.
func (c *Camera) Matrix() *mat.Dense {
	var m mat.Dense
	m.Mul(c.ProjectionMatrix(), c.View())
	return &m
}

// Projector maps world coordinates to pixel coordinates for a fixed
// camera state.
type Projector struct {
	m    *mat.Dense
	w, h float64
}

// Projector returns a projector for the current camera state.  Later
// changes to the camera do not affect the projector.
func (c *Camera) Projector() *Projector {
	return &Projector{m: c.Matrix(), w: float64(c.Width), h: float64(c.Height)}
}

// Project returns the pixel coordinates of p and its depth in normalised
// device coordinates, from -1 at the near plane to 1 at the far plane.
// The result is not ok if p lies outside the depth range.
func (pr *Projector) Project(p r3.Vec) (pix vec.Vec2, depth float64, ok bool) {
	in := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(pr.m, in)
	w := out.AtVec(3)
	if w <= 0 {
		return vec.Vec2{}, 0, false
	}
	x, y, z := out.AtVec(0)/w, out.AtVec(1)/w, out.AtVec(2)/w
	pix = vec.Vec2{X: (x + 1) / 2 * pr.w, Y: (1 - y) / 2 * pr.h}
	return pix, z, z >= -1 && z <= 1
}
