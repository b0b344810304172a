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

	"gonum.org/v1/gonum/spatial/r3"

	"seehuhn.de/go/mathgraph"
)

// View directions for [Scene.ChangeView].
var (
	Up    = r3.Vec{Z: 1}
	Down  = r3.Vec{Z: -1}
	Left  = r3.Vec{X: -1}
	Right = r3.Vec{X: 1}
	Back  = r3.Vec{Y: 1}
	Front = r3.Vec{Y: -1}
)

// minPolar keeps the orbiting camera away from the poles.
const minPolar = 1e-6

// OrbitControls moves a camera on a sphere around a target point, with
// the z axis pointing up.
//
// After Dispose has been called, all methods leave the camera unchanged.
type OrbitControls struct {
	Target r3.Vec

	// MinDistance and MaxDistance limit zooming of perspective cameras.
	// A zero MaxDistance means no upper limit.
	MinDistance float64
	MaxDistance float64

	camera   *Camera
	disposed bool
}

// NewOrbitControls returns controls for the given camera, orbiting around
// the origin.
func NewOrbitControls(c *Camera) *OrbitControls {
	o := &OrbitControls{camera: c}
	o.Update()
	return o
}

// Camera returns the controlled camera.
func (o *OrbitControls) Camera() *Camera {
	return o.camera
}

// Dispose detaches the controls from the camera.
func (o *OrbitControls) Dispose() {
	o.disposed = true
}

// Disposed reports whether Dispose has been called.
func (o *OrbitControls) Disposed() bool {
	return o.disposed
}

func (o *OrbitControls) active(op string) bool {
	if o.disposed {
		mathgraph.Logger().Debug("ignoring disposed orbit controls", "op", op)
		return false
	}
	return true
}

// Update points the camera at the target.
func (o *OrbitControls) Update() {
	if !o.active("update") {
		return
	}
	o.camera.Target = o.Target
}

// spherical returns the camera position relative to the target, as
// distance, azimuth around the z axis and polar angle from the z axis.
func (o *OrbitControls) spherical() (r, theta, phi float64) {
	d := r3.Sub(o.camera.Position, o.Target)
	r = r3.Norm(d)
	if r == 0 {
		return 0, 0, 0
	}
	return r, math.Atan2(d.Y, d.X), math.Acos(max(-1, min(1, d.Z/r)))
}

func (o *OrbitControls) place(r, theta, phi float64) {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	d := r3.Vec{X: r * sinP * cosT, Y: r * sinP * sinT, Z: r * cosP}
	o.camera.Position = r3.Add(o.Target, d)
	o.camera.Target = o.Target
}

// Rotate moves the camera around the target by the given changes of
// azimuth and polar angle, in radians.  The distance to the target is
// kept.
func (o *OrbitControls) Rotate(azimuth, polar float64) {
	if !o.active("rotate") {
		return
	}
	r, theta, phi := o.spherical()
	if r == 0 {
		return
	}
	phi = max(minPolar, min(math.Pi-minPolar, phi+polar))
	o.place(r, theta+azimuth, phi)
}

// Zoom divides the distance to the target by factor.  For orthographic
// cameras the zoom level is multiplied by factor instead.
func (o *OrbitControls) Zoom(factor float64) {
	if !o.active("zoom") || factor <= 0 {
		return
	}
	if o.camera.Projection == Orthographic {
		o.camera.Zoom *= factor
		return
	}
	r, theta, phi := o.spherical()
	if r == 0 {
		return
	}
	r = max(r/factor, o.MinDistance)
	if o.MaxDistance > 0 {
		r = min(r, o.MaxDistance)
	}
	o.place(r, theta, phi)
}

// Pan moves both the camera and the target parallel to the image plane,
// by dx units to the right and dy units up.
func (o *OrbitControls) Pan(dx, dy float64) {
	if !o.active("pan") {
		return
	}
	x, y, _ := o.camera.axes()
	d := r3.Add(r3.Scale(dx, x), r3.Scale(dy, y))
	o.Target = r3.Add(o.Target, d)
	o.camera.Position = r3.Add(o.camera.Position, d)
	o.camera.Target = o.Target
}
