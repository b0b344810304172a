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

package svg

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize renders an SVG document with an independent SVG renderer
// (oksvg with the rasterx scanner) into a new image of the given size.
// The document's viewBox is mapped onto the full image.
//
// Elements the renderer does not support, for example text labels, are
// skipped.
func Rasterize(doc *Node, width, height int) (*image.RGBA, error) {
	buf := &bytes.Buffer{}
	if err := doc.Encode(buf); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("svg: rasterize: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}
