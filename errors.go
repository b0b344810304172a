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

package mathgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometryInput is returned when a coordinate, point or
	// range is neither a tuple nor a keyed record of numbers.
	ErrInvalidGeometryInput = errors.New("invalid geometry input")

	// ErrMissingCoordinateMapping is returned by accessors which need
	// device coordinates on a shape built without an axis mapping.
	ErrMissingCoordinateMapping = errors.New("missing coordinate mapping")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrUnbalancedRestore is returned when Restore is called on a raster
	// context without a matching Save.
	ErrUnbalancedRestore = errors.New("restore without matching save")
)

// GeometryError describes a failure to build or render a shape.
type GeometryError struct {
	Op    string // operation, for example "shape2d.NewPoint"
	Field string // offending field, may be empty
	Err   error  // underlying cause
}

func (e *GeometryError) Error() string {
	if e.Field == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Field, e.Err)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// Wrap returns a *GeometryError for op and field with cause err.
func Wrap(op, field string, err error) error {
	return &GeometryError{Op: op, Field: field, Err: err}
}
