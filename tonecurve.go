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

// Package tonecurve derives and applies tone curve lookup tables.
//
// A tone curve remaps 8-bit pixel intensities: the user places a few control
// points, and the package interpolates them with a natural cubic spline to
// obtain a dense 256-entry lookup table ([LUT]), one output intensity per
// possible input intensity.
//
// # Deriving a LUT
//
// Use [FromCurve] to turn a sequence of control points into a table:
//
//	lut, err := tonecurve.FromCurve(tonecurve.Curve{{0, 0}, {128, 160}, {255, 255}})
//	if err != nil {
//	    // handle error
//	}
//
// Tables can be combined with [Compose], which applies one table after
// another.
//
// # Applying LUTs
//
// [Apply] rewrites a pixel buffer in place, using one table per colour
// channel:
//
//	res := tonecurve.Apply(buf, lutR, lutG, lutB, nil)
//	if res == tonecurve.Cancelled {
//	    // the buffer is partially remapped
//	}
//
// The buffer is abstracted by the [Buffer] interface; [Pixmap] is a ready-made
// implementation which converts to and from [image.Image].
package tonecurve

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
