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

// Package mathgraph models mathematical shapes and renders them through two
// independent back ends from one shared geometric model.
//
// The raster back end draws into an immediate-mode [raster.Context]; the
// vector back end produces SVG path strings, attribute records and detached
// element trees.  Both read the same mutable shape values, so a shape drawn
// in both forms after any sequence of updates produces the same geometry.
//
// Logical coordinates are converted to device coordinates by an
// [axis.Mapping].  Shapes may also be built directly from device
// coordinates.  The 3D shapes in package shape3d emit mesh descriptors for
// a scene graph instead of path data.
//
// [raster.Context]: https://pkg.go.dev/seehuhn.de/go/mathgraph/raster#Context
// [axis.Mapping]: https://pkg.go.dev/seehuhn.de/go/mathgraph/axis#Mapping
package mathgraph
