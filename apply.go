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

// Buffer is the pixel storage [Apply] operates on. Pixels are addressed by
// column x, row y and channel index c; channels 0, 1 and 2 are red, green
// and blue, and channel 3, if present, is alpha.
//
// SetPremultiplied changes the alpha convention of the stored data,
// converting every pixel between premultiplied and straight alpha. Calling
// it with the current state must be a no-op.
type Buffer interface {
	Width() int
	Height() int
	Channels() int // 3 or 4

	Channel(x, y, c int) uint8
	SetChannel(x, y, c int, v uint8)

	Premultiplied() bool
	SetPremultiplied(premul bool)
}

// Notifier lets a caller observe a running [Apply] and request
// cancellation. Both methods are called from the goroutine running Apply
// and must be cheap and non-blocking.
type Notifier interface {
	// Cancelled reports whether the operation should stop early.
	Cancelled() bool

	// Progress reports that done of total rows have been processed.
	// Progress is purely informational.
	Progress(done, total int)
}

// Result reports how [Apply] finished.
type Result int

const (
	// Completed means every pixel was processed.
	Completed Result = iota

	// Cancelled means the notifier requested cancellation. Rows processed
	// before the request keep their remapped values, the remaining rows are
	// unchanged. This is a defined outcome, not an error.
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Options controls [Apply]. The zero value selects defaults.
type Options struct {
	// Notifier, if non-nil, is polled for cancellation and receives
	// progress reports.
	Notifier Notifier

	// Interval is the number of rows processed between notifier polls.
	// Zero selects a default of 16 rows.
	Interval int
}

const defaultInterval = 16

// Apply rewrites the pixel buffer in place, replacing each colour channel
// value v with the corresponding table entry: r for the red channel, g for
// green, b for blue. A nil table leaves its channel unchanged. Alpha, if
// present, is passed through.
//
// If the buffer stores premultiplied alpha, the data is converted to
// straight alpha for the duration of the call and converted back before
// Apply returns, on every return path; remapping premultiplied channel
// values would tint partially transparent pixels.
//
// Apply runs synchronously on the calling goroutine and polls
// opts.Notifier at the row interval given in opts. When cancellation is
// observed, Apply stops and returns [Cancelled]; otherwise it returns
// [Completed].
func Apply(buf Buffer, r, g, b *LUT, opts *Options) Result {
	var notify Notifier
	interval := defaultInterval
	if opts != nil {
		notify = opts.Notifier
		if opts.Interval > 0 {
			interval = opts.Interval
		}
	}

	if buf.Premultiplied() {
		buf.SetPremultiplied(false)
		defer buf.SetPremultiplied(true)
	}

	luts := [3]*LUT{r, g, b}
	width := buf.Width()
	height := buf.Height()
	for y := 0; y < height; y++ {
		if notify != nil && y%interval == 0 {
			if notify.Cancelled() {
				return Cancelled
			}
			notify.Progress(y, height)
		}
		for x := 0; x < width; x++ {
			for c, lut := range luts {
				if lut == nil {
					continue
				}
				buf.SetChannel(x, y, c, lut[buf.Channel(x, y, c)])
			}
		}
	}
	if notify != nil {
		notify.Progress(height, height)
	}
	return Completed
}
