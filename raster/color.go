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

package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/mathgraph"
)

// ParseColor converts a CSS color string into a color.  Accepted forms are
// "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", the CSS color keywords, and
// "none" or "transparent" for a fully transparent color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	key := strings.ToLower(s)
	switch key {
	case "none", "transparent":
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	if !strings.HasPrefix(key, "#") {
		return color.NRGBA{}, badColor(s)
	}
	hex := key[1:]
	switch len(hex) {
	case 3, 4:
		var buf [8]byte
		for i := range len(hex) {
			buf[2*i], buf[2*i+1] = hex[i], hex[i]
		}
		hex = string(buf[:2*len(hex)])
	case 6, 8:
		// pass
	default:
		return color.NRGBA{}, badColor(s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, badColor(s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func badColor(s string) error {
	return mathgraph.Wrap("raster.ParseColor", fmt.Sprintf("%q", s), mathgraph.ErrInvalidColor)
}
