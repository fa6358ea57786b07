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

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"seehuhn.de/go/tonecurve"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in tone curves",
	RunE:  runPresets,
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the lookup table derived from a tone curve",
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().String("preset", "", "preset curve name (see \"tonelut presets\")")
	tableCmd.Flags().String("points", "", "control points, e.g. \"0,0 128,160 255,255\"")
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(tableCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	names := maps.Keys(tonecurve.Presets)
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("%-10s", name)
		for _, pt := range tonecurve.Presets[name] {
			fmt.Printf(" %d,%d", pt.X, pt.Y)
		}
		fmt.Println()
	}
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	curve, err := curveFromFlags(cmd)
	if err != nil {
		return err
	}
	lut, err := tonecurve.FromCurve(curve)
	if err != nil {
		return err
	}

	for i, v := range lut {
		fmt.Printf("%3d", v)
		if i%16 == 15 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
	return nil
}
