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

import (
	"image"
	"image/color"
)

// Pixmap is an interleaved 8-bit pixel buffer with three (RGB) or four
// (RGBA) channels per pixel. It implements [Buffer].
//
// A Pixmap is not safe for concurrent use. If the same Pixmap needs to be
// used from multiple goroutines, callers must provide their own
// synchronisation.
type Pixmap struct {
	width, height int
	channels      int
	premul        bool
	pix           []uint8
}

// NewPixmap allocates a zero-filled pixel buffer. The number of channels
// must be 3 or 4.
func NewPixmap(width, height, channels int) *Pixmap {
	if channels != 3 && channels != 4 {
		panic("tonecurve: pixmap needs 3 or 4 channels")
	}
	return &Pixmap{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]uint8, width*height*channels),
	}
}

// FromImage copies an image into a new four-channel Pixmap with straight
// (non-premultiplied) alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	p := NewPixmap(bounds.Dx(), bounds.Dy(), 4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			p.pix[i+0] = c.R
			p.pix[i+1] = c.G
			p.pix[i+2] = c.B
			p.pix[i+3] = c.A
			i += 4
		}
	}
	return p
}

// Width returns the number of pixel columns.
func (p *Pixmap) Width() int { return p.width }

// Height returns the number of pixel rows.
func (p *Pixmap) Height() int { return p.height }

// Channels returns the number of channels per pixel, 3 or 4.
func (p *Pixmap) Channels() int { return p.channels }

// Channel returns the value of channel c of the pixel at (x, y).
func (p *Pixmap) Channel(x, y, c int) uint8 {
	return p.pix[(y*p.width+x)*p.channels+c]
}

// SetChannel sets channel c of the pixel at (x, y) to v.
func (p *Pixmap) SetChannel(x, y, c int, v uint8) {
	p.pix[(y*p.width+x)*p.channels+c] = v
}

// Premultiplied reports whether the colour channels are stored
// premultiplied by alpha.
func (p *Pixmap) Premultiplied() bool { return p.premul }

// SetPremultiplied converts the pixel data between premultiplied and
// straight alpha. Calling it with the current state is a no-op, as is any
// call on a three-channel Pixmap.
func (p *Pixmap) SetPremultiplied(premul bool) {
	if premul == p.premul {
		return
	}
	p.premul = premul
	if p.channels != 4 {
		return
	}
	for i := 0; i < len(p.pix); i += 4 {
		a := p.pix[i+3]
		for c := 0; c < 3; c++ {
			if premul {
				p.pix[i+c] = premulByte(p.pix[i+c], a)
			} else {
				p.pix[i+c] = unpremulByte(p.pix[i+c], a)
			}
		}
	}
}

// Image copies the Pixmap into a new [image.NRGBA]. The Pixmap is not
// modified; premultiplied data is converted on the fly. A three-channel
// Pixmap yields a fully opaque image.
func (p *Pixmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			var c color.NRGBA
			c.R = p.Channel(x, y, 0)
			c.G = p.Channel(x, y, 1)
			c.B = p.Channel(x, y, 2)
			c.A = 255
			if p.channels == 4 {
				c.A = p.Channel(x, y, 3)
				if p.premul {
					c.R = unpremulByte(c.R, c.A)
					c.G = unpremulByte(c.G, c.A)
					c.B = unpremulByte(c.B, c.A)
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func premulByte(v, a uint8) uint8 {
	return uint8((uint32(v)*uint32(a) + 127) / 255)
}

func unpremulByte(v, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	x := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if x > 255 {
		x = 255
	}
	return uint8(x)
}
