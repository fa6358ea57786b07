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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testPixmap fills a buffer with a deterministic pattern.
func testPixmap(width, height, channels int) *Pixmap {
	p := NewPixmap(width, height, channels)
	for i := range p.pix {
		p.pix[i] = uint8(i*7 + 3)
	}
	return p
}

// fakeNotifier cancels on the poll with number cancelOn (1-based);
// cancelOn = 0 never cancels.
type fakeNotifier struct {
	cancelOn int
	polls    int
	reports  [][2]int
}

func (n *fakeNotifier) Cancelled() bool {
	n.polls++
	return n.cancelOn > 0 && n.polls >= n.cancelOn
}

func (n *fakeNotifier) Progress(done, total int) {
	n.reports = append(n.reports, [2]int{done, total})
}

func TestApplyIdentity(t *testing.T) {
	for _, channels := range []int{3, 4} {
		p := testPixmap(5, 7, channels)
		want := make([]uint8, len(p.pix))
		copy(want, p.pix)

		id := Identity()
		res := Apply(p, id, id, id, nil)
		if res != Completed {
			t.Fatalf("Apply returned %v, want %v", res, Completed)
		}
		if d := cmp.Diff(want, p.pix); d != "" {
			t.Errorf("%d channels: pixels changed (-want +got):\n%s", channels, d)
		}
	}
}

func TestApplyRemap(t *testing.T) {
	p := testPixmap(4, 4, 4)
	orig := make([]uint8, len(p.pix))
	copy(orig, p.pix)

	var invert LUT
	for i := range invert {
		invert[i] = uint8(255 - i)
	}

	res := Apply(p, &invert, &invert, &invert, nil)
	if res != Completed {
		t.Fatalf("Apply returned %v, want %v", res, Completed)
	}

	for i, v := range p.pix {
		if i%4 == 3 {
			// alpha passes through
			if v != orig[i] {
				t.Errorf("alpha at %d changed: %d -> %d", i, orig[i], v)
			}
		} else if v != 255-orig[i] {
			t.Errorf("pix[%d] = %d, want %d", i, v, 255-orig[i])
		}
	}
}

func TestApplyNilLUT(t *testing.T) {
	p := testPixmap(3, 3, 3)
	orig := make([]uint8, len(p.pix))
	copy(orig, p.pix)

	var invert LUT
	for i := range invert {
		invert[i] = uint8(255 - i)
	}

	// only the green channel is remapped
	Apply(p, nil, &invert, nil, nil)
	for i, v := range p.pix {
		want := orig[i]
		if i%3 == 1 {
			want = 255 - orig[i]
		}
		if v != want {
			t.Errorf("pix[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestApplyCancel(t *testing.T) {
	const width, height = 4, 10
	p := testPixmap(width, height, 3)
	orig := make([]uint8, len(p.pix))
	copy(orig, p.pix)

	var invert LUT
	for i := range invert {
		invert[i] = uint8(255 - i)
	}

	// polls happen before rows 0, 2, 4, ...; cancelling on the third poll
	// stops the operation after 4 of 10 rows
	n := &fakeNotifier{cancelOn: 3}
	res := Apply(p, &invert, &invert, &invert, &Options{Notifier: n, Interval: 2})
	if res != Cancelled {
		t.Fatalf("Apply returned %v, want %v", res, Cancelled)
	}

	rowBytes := width * 3
	for i, v := range p.pix {
		if i < 4*rowBytes {
			if v != 255-orig[i] {
				t.Errorf("pix[%d] = %d, want %d (remapped)", i, v, 255-orig[i])
			}
		} else if v != orig[i] {
			t.Errorf("pix[%d] = %d, want %d (untouched)", i, v, orig[i])
		}
	}
}

func TestApplyProgress(t *testing.T) {
	p := testPixmap(2, 32, 3)
	n := &fakeNotifier{}

	res := Apply(p, Identity(), Identity(), Identity(), &Options{Notifier: n, Interval: 8})
	if res != Completed {
		t.Fatalf("Apply returned %v, want %v", res, Completed)
	}

	want := [][2]int{{0, 32}, {8, 32}, {16, 32}, {24, 32}, {32, 32}}
	if d := cmp.Diff(want, n.reports); d != "" {
		t.Errorf("progress reports (-want +got):\n%s", d)
	}
}

func TestApplyPremultiplyBracket(t *testing.T) {
	p := testPixmap(4, 8, 4)
	// make the data valid premultiplied pixels
	for i := 0; i < len(p.pix); i += 4 {
		a := p.pix[i+3]
		for c := 0; c < 3; c++ {
			if p.pix[i+c] > a {
				p.pix[i+c] = a
			}
		}
	}
	p.premul = true

	orig := make([]uint8, len(p.pix))
	copy(orig, p.pix)

	id := Identity()
	res := Apply(p, id, id, id, nil)
	if res != Completed {
		t.Fatalf("Apply returned %v, want %v", res, Completed)
	}
	if !p.Premultiplied() {
		t.Error("premultiplication state not restored")
	}

	// un-premultiply and re-premultiply may shift values by one
	for i, v := range p.pix {
		d := int(v) - int(orig[i])
		if d < -1 || d > 1 {
			t.Errorf("pix[%d] = %d, want %d (±1)", i, v, orig[i])
		}
	}
}

func TestApplyCancelRestoresPremultiply(t *testing.T) {
	p := testPixmap(4, 8, 4)
	p.premul = true

	n := &fakeNotifier{cancelOn: 1}
	res := Apply(p, Identity(), Identity(), Identity(), &Options{Notifier: n, Interval: 1})
	if res != Cancelled {
		t.Fatalf("Apply returned %v, want %v", res, Cancelled)
	}
	if !p.Premultiplied() {
		t.Error("premultiplication state not restored after cancellation")
	}
}
