// seehuhn.de/go/tonecurve - tone curve lookup tables for raster images
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

package tonecurve

import "errors"

// Point is a single control point of a tone curve. X is an input intensity
// and Y the output intensity it maps to; both must be in the range [0, 255].
type Point struct {
	X, Y int
}

// Curve is an ordered sequence of control points describing a tone curve.
// A valid curve has at least two points, sorted by strictly increasing X.
// [FromCurve] rejects curves violating these conditions.
//
// This package never modifies a Curve.
type Curve []Point

var (
	errTooFewPoints = errors.New("tonecurve: curve needs at least two control points")
	errPointOrder   = errors.New("tonecurve: control points must have strictly increasing x")
	errPointRange   = errors.New("tonecurve: control point outside [0, 255]")
)

func (c Curve) check() error {
	if len(c) < 2 {
		return errTooFewPoints
	}
	for i, pt := range c {
		if pt.X < 0 || pt.X > 255 || pt.Y < 0 || pt.Y > 255 {
			return errPointRange
		}
		if i > 0 && pt.X <= c[i-1].X {
			return errPointOrder
		}
	}
	return nil
}
