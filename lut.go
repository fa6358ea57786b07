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

import "math"

// LUT maps each 8-bit input intensity to an output intensity. A LUT
// describes the tonal remapping of a single colour channel; a full colour
// remap uses three independent tables.
//
// The zero value maps every input to zero. Use [Identity] or [FromCurve] to
// create a useful table.
type LUT [256]uint8

// Identity returns a LUT that maps every intensity to itself.
func Identity() *LUT {
	lut := new(LUT)
	for i := range lut {
		lut[i] = uint8(i)
	}
	return lut
}

// IsIdentity reports whether the LUT maps every intensity to itself.
func (l *LUT) IsIdentity() bool {
	for i, v := range l {
		if v != uint8(i) {
			return false
		}
	}
	return true
}

// Compose combines two LUTs into a single table that applies a first and
// then b: the result maps i to b[a[i]]. Composition is not commutative, so
// callers must order the arguments deliberately.
func Compose(a, b *LUT) *LUT {
	c := new(LUT)
	for i, v := range a {
		c[i] = b[v]
	}
	return c
}

// FromCurve derives a LUT from a tone curve. The curve is interpolated with
// a natural cubic spline, sampled at every integer intensity, and passed
// through a gamma correction stage that biases dark tones the way
// established curve tools do.
//
// Input intensities below the first control point or above the last one are
// held flat at the nearest in-domain value; extrapolating the cubic outside
// the fitted range would diverge.
func FromCurve(c Curve) (*LUT, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	s := solveSpline(c)

	lut := new(LUT)
	lo := c[0].X
	hi := c[len(c)-1].X
	seg := 0
	for i := lo; i <= hi; i++ {
		for seg < len(c)-2 && i > c[seg+1].X {
			seg++
		}
		raw := clamp(s.eval(c, seg, float64(i)), 0, 255)
		lut[i] = gammaCorrect(i, raw)
	}
	for i := 0; i < lo; i++ {
		lut[i] = lut[lo]
	}
	for i := hi + 1; i < 256; i++ {
		lut[i] = lut[hi]
	}
	return lut, nil
}

// gammaCorrect turns the raw spline sample for input intensity i into the
// final LUT entry. The sample is first flipped to screen orientation
// (0 = brightest) and then drives a per-index exponent: samples at or below
// the diagonal use the exponent directly, samples above it are additionally
// raised to the power 1.5.
//
// The asymmetry and the +1 bias are deliberate and match the behaviour of
// established tone-curve tools; changing them changes every derived table.
func gammaCorrect(i int, raw float64) uint8 {
	s := 255 - raw

	e := (s + 1) / float64(256-i)
	if s > float64(256-i) {
		e = math.Pow(e, 1.5)
	}

	g := math.Pow(float64(i)/255, e)
	return uint8(clamp(math.Round(g*255), 0, 255))
}
