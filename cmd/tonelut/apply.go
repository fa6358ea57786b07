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
	"image"
	"image/png"
	"os"
	"os/signal"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/spf13/cobra"

	"seehuhn.de/go/tonecurve"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a tone curve to an image",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "input image (PNG, JPEG, GIF, BMP or TIFF)")
	applyCmd.Flags().StringP("output", "o", "", "output PNG file")
	applyCmd.Flags().String("preset", "", "preset curve name (see \"tonelut presets\")")
	applyCmd.Flags().String("points", "", "control points, e.g. \"0,0 128,160 255,255\"")
	applyCmd.MarkFlagRequired("input")
	applyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(applyCmd)
}

// interruptNotifier turns SIGINT into cooperative cancellation.
type interruptNotifier struct {
	ch chan os.Signal
}

func newInterruptNotifier() *interruptNotifier {
	n := &interruptNotifier{ch: make(chan os.Signal, 1)}
	signal.Notify(n.ch, os.Interrupt)
	return n
}

func (n *interruptNotifier) stop() {
	signal.Stop(n.ch)
}

func (n *interruptNotifier) Cancelled() bool {
	select {
	case <-n.ch:
		return true
	default:
		return false
	}
}

func (n *interruptNotifier) Progress(done, total int) {}

func runApply(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	curve, err := curveFromFlags(cmd)
	if err != nil {
		return err
	}
	lut, err := tonecurve.FromCurve(curve)
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	buf := tonecurve.FromImage(img)

	n := newInterruptNotifier()
	defer n.stop()
	res := tonecurve.Apply(buf, lut, lut, lut, &tonecurve.Options{Notifier: n})
	if res == tonecurve.Cancelled {
		return fmt.Errorf("cancelled, %s not written", outputPath)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := png.Encode(out, buf.Image()); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	return out.Close()
}
