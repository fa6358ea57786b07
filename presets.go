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

// Built-in tone curves, keyed by name.
var Presets = map[string]Curve{
	// straight diagonal, derives the identity table
	"linear": {{0, 0}, {255, 255}},

	// lift the midtones
	"lighten": {{0, 0}, {128, 165}, {255, 255}},

	// lower the midtones
	"darken": {{0, 0}, {128, 92}, {255, 255}},

	// gentle S-curve
	"contrast": {{0, 0}, {64, 48}, {192, 208}, {255, 255}},

	// lifted blacks, compressed highlights
	"fade": {{0, 24}, {128, 134}, {255, 246}},
}
