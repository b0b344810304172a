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

package gallery

import (
	"fmt"
	"strings"

	"seehuhn.de/go/mathgraph/axis"
	"seehuhn.de/go/mathgraph/shape2d"
)

// All contains the 2D scenes, grouped by category.  The category name is
// used as a prefix in output file names.
var All = map[string][]Scene{
	"point":    pointScenes,
	"line":     lineScenes,
	"angle":    angleScenes,
	"arrow":    arrowScenes,
	"plot":     plotScenes,
	"combined": combinedScenes,
}

// Space contains the 3D scenes.
var Space = []SpaceScene{
	{Name: "points", Build: spacePoints},
	{Name: "lines", Build: spaceLines},
	{Name: "arrows", Build: spaceArrows},
	{Name: "surfaces", Build: spaceSurfaces},
	{Name: "curve", Build: spaceCurve},
	{Name: "view_front", Build: spaceSurfaces, View: viewFront},
	{Name: "view_up", Build: spaceArrows, View: viewUp},
	{Name: "orthographic", Build: spaceSurfaces, View: orthographic},
}

// Find returns the 2D scene with the given category and name.  If there
// is no such scene, the returned scene fails to build.
func Find(category, name string) Scene {
	return find(All[category], category+"/"+name)
}

func find(scenes []Scene, name string) Scene {
	short := name[strings.LastIndex(name, "/")+1:]
	for _, s := range scenes {
		if s.Name == short {
			return s
		}
	}
	return Scene{
		Name: short,
		Build: func(*axis.Mapping) ([]shape2d.Shape, error) {
			return nil, fmt.Errorf("unknown scene %q", name)
		},
	}
}
