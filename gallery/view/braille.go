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


package main

import (
	"image"
	"image/color"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// brailleBuf is a monochrome bitmap with 2x4 pixels per terminal cell.
type brailleBuf struct {
	cols, rows int
	cells      []uint8
}

func newBrailleBuf(cols, rows int) *brailleBuf {
	return &brailleBuf{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// dot bits of the braille block, indexed by [y%4][x%2]
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func (b *brailleBuf) setPixel(x, y int) {
	if x < 0 || y < 0 || x >= 2*b.cols || y >= 4*b.rows {
		return
	}
	b.cells[(y/4)*b.cols+x/2] |= brailleBits[y%4][x%2]
}

func (b *brailleBuf) lines() []string {
	res := make([]string, b.rows)
	var sb strings.Builder
	for r := range b.rows {
		sb.Reset()
		for _, mask := range b.cells[r*b.cols : (r+1)*b.cols] {
			sb.WriteRune(rune(0x2800 + int(mask)))
		}
		res[r] = sb.String()
	}
	return res
}

// toBraille scales img to fit into cols x rows cells and sets every dot
// whose colour differs noticeably from the colour of the top-left pixel.
func toBraille(img image.Image, cols, rows int) []string {
	buf := newBrailleBuf(cols, rows)
	if cols <= 0 || rows <= 0 || img.Bounds().Empty() {
		return buf.lines()
	}

	small := image.NewRGBA(image.Rect(0, 0, 2*cols, 4*rows))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	bg := luma(small.RGBAAt(0, 0))
	for y := range 4 * rows {
		for x := range 2 * cols {
			d := luma(small.RGBAAt(x, y)) - bg
			if d > inkThreshold || d < -inkThreshold {
				buf.setPixel(x, y)
			}
		}
	}
	return buf.lines()
}

const inkThreshold = 0.15

// luma returns the perceived brightness of c, premultiplied by alpha, in
// the range [0, 1].
func luma(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
