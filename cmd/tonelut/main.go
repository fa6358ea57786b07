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

// Tonelut applies tone curves to images.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/tonecurve"
)

var rootCmd = &cobra.Command{
	Use:   "tonelut",
	Short: "Derive tone curve lookup tables and apply them to images",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parsePoints reads control points in the form "x,y x,y ..." (semicolons
// also work as separators).
func parsePoints(s string) (tonecurve.Curve, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';'
	})
	var curve tonecurve.Curve
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("invalid control point %q", f)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("invalid control point %q: %w", f, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("invalid control point %q: %w", f, err)
		}
		curve = append(curve, tonecurve.Point{X: x, Y: y})
	}
	if len(curve) == 0 {
		return nil, fmt.Errorf("no control points in %q", s)
	}
	return curve, nil
}

// curveFromFlags resolves the --preset and --points flags shared by the
// apply and table commands.
func curveFromFlags(cmd *cobra.Command) (tonecurve.Curve, error) {
	preset, _ := cmd.Flags().GetString("preset")
	points, _ := cmd.Flags().GetString("points")

	if preset != "" && points != "" {
		return nil, fmt.Errorf("--preset and --points are mutually exclusive")
	}
	if points != "" {
		return parsePoints(points)
	}
	if preset == "" {
		preset = "linear"
	}
	curve, ok := tonecurve.Presets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
	return curve, nil
}
