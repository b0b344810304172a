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
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mathgraph"
)

// ParsePathD converts SVG path data into a path.  All path commands are
// supported in absolute and relative form.  Elliptical arcs are converted
// into cubic Bézier segments; smooth curve commands are expanded into
// explicit control points.
func ParsePathD(d string) (*path.Data, error) {
	s := &pathScanner{src: d}
	p := &path.Data{}

	var cur, start, lastCtrl vec.Vec2
	var lastCmd byte
	var cmd byte
	for {
		s.skipSpace()
		if s.done() {
			break
		}
		if c := s.src[s.pos]; isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, s.errorf("command expected")
		} else if cmd == 'M' || cmd == 'm' {
			// extra coordinate pairs after a moveto are implicit linetos
			cmd = cmd - 'M' + 'L'
		}
		rel := cmd >= 'a'

		readPt := func() (vec.Vec2, error) {
			x, err := s.number()
			if err != nil {
				return vec.Vec2{}, err
			}
			y, err := s.number()
			if err != nil {
				return vec.Vec2{}, err
			}
			v := vec.Vec2{X: x, Y: y}
			if rel {
				v = v.Add(cur)
			}
			return v, nil
		}

		switch cmd {
		case 'M', 'm':
			v, err := readPt()
			if err != nil {
				return nil, err
			}
			p.MoveTo(v)
			cur, start = v, v
		case 'L', 'l':
			v, err := readPt()
			if err != nil {
				return nil, err
			}
			p.LineTo(v)
			cur = v
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = vec.Vec2{X: x, Y: cur.Y}
			p.LineTo(cur)
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = vec.Vec2{X: cur.X, Y: y}
			p.LineTo(cur)
		case 'C', 'c', 'S', 's':
			var c1 vec.Vec2
			if cmd == 'C' || cmd == 'c' {
				v, err := readPt()
				if err != nil {
					return nil, err
				}
				c1 = v
			} else {
				c1 = cur
				if isOneOf(lastCmd, "CcSs") {
					c1 = cur.Mul(2).Sub(lastCtrl)
				}
			}
			c2, err := readPt()
			if err != nil {
				return nil, err
			}
			v, err := readPt()
			if err != nil {
				return nil, err
			}
			p.CubeTo(c1, c2, v)
			lastCtrl, cur = c2, v
		case 'Q', 'q', 'T', 't':
			var c1 vec.Vec2
			if cmd == 'Q' || cmd == 'q' {
				v, err := readPt()
				if err != nil {
					return nil, err
				}
				c1 = v
			} else {
				c1 = cur
				if isOneOf(lastCmd, "QqTt") {
					c1 = cur.Mul(2).Sub(lastCtrl)
				}
			}
			v, err := readPt()
			if err != nil {
				return nil, err
			}
			p.QuadTo(c1, v)
			lastCtrl, cur = c1, v
		case 'A', 'a':
			rx, err := s.number()
			if err != nil {
				return nil, err
			}
			ry, err := s.number()
			if err != nil {
				return nil, err
			}
			phi, err := s.number()
			if err != nil {
				return nil, err
			}
			large, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			v, err := readPt()
			if err != nil {
				return nil, err
			}
			appendEndpointArc(p, cur, v, rx, ry, phi*math.Pi/180, large, sweep)
			cur = v
		case 'Z', 'z':
			p.Close()
			cur = start
		default:
			return nil, s.errorf("unknown command %q", cmd)
		}
		lastCmd = cmd
	}
	return p, nil
}

// appendEndpointArc appends an SVG elliptical arc from p0 to p1, using the
// endpoint to centre conversion of the SVG specification (appendix B.2.4).
func appendEndpointArc(p *path.Data, p0, p1 vec.Vec2, rx, ry, phi float64, large, sweep bool) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.LineTo(p1)
		return
	}

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	hx, hy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*hx + sinPhi*hy
	y1 := -sinPhi*hx + cosPhi*hy

	// scale radii up if no ellipse through both points exists
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	q := math.Sqrt(max(0, num/den))
	if large == sweep {
		q = -q
	}
	cx1 := q * rx * y1 / ry
	cy1 := -q * ry * x1 / rx
	centre := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2,
	}

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	// generate the arc on the unit circle and map it onto the ellipse
	unit := &path.Data{}
	mathgraph.AppendArc(unit, vec.Vec2{}, 1, theta1, dTheta)
	for _, u := range unit.Coords {
		x, y := rx*u.X, ry*u.Y
		p.Coords = append(p.Coords, vec.Vec2{
			X: centre.X + cosPhi*x - sinPhi*y,
			Y: centre.Y + sinPhi*x + cosPhi*y,
		})
	}
	p.Cmds = append(p.Cmds, unit.Cmds...)

	// pin the end point exactly
	if n := len(p.Coords); n > 0 {
		p.Coords[n-1] = p1
	}
}

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *pathScanner) skipSpace() {
	for !s.done() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) number() (float64, error) {
	s.skipSpace()
	begin := s.pos
	if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		s.pos++
	}
	seenDot, seenExp := false, false
	for !s.done() {
		c := s.src[s.pos]
		if c == '.' && !seenDot && !seenExp {
			seenDot = true
		} else if (c == 'e' || c == 'E') && !seenExp && s.pos > begin {
			seenExp = true
			if s.pos+1 < len(s.src) && (s.src[s.pos+1] == '+' || s.src[s.pos+1] == '-') {
				s.pos++
			}
		} else if c < '0' || c > '9' {
			break
		}
		s.pos++
	}
	if s.pos == begin {
		return 0, s.errorf("number expected")
	}
	v, err := strconv.ParseFloat(s.src[begin:s.pos], 64)
	if err != nil {
		return 0, s.errorf("invalid number %q", s.src[begin:s.pos])
	}
	return v, nil
}

func (s *pathScanner) flag() (bool, error) {
	s.skipSpace()
	if s.done() {
		return false, s.errorf("arc flag expected")
	}
	c := s.src[s.pos]
	if c != '0' && c != '1' {
		return false, s.errorf("invalid arc flag %q", c)
	}
	s.pos++
	return c == '1', nil
}

func (s *pathScanner) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("svg path data at offset %d: %s: %w", s.pos, msg, mathgraph.ErrInvalidGeometryInput)
}

func isCommand(c byte) bool {
	return isOneOf(c, "MmLlHhVvCcSsQqTtAaZz")
}

func isOneOf(c byte, set string) bool {
	for i := range len(set) {
		if set[i] == c {
			return true
		}
	}
	return false
}
