// seehuhn.de/go/mnistpad - hand-drawn digits in MNIST format
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

package mnistpad

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"slices"
	"strings"
	"testing"
)

// pattern returns a buffer with a fixed, irregular gray pattern.
func pattern() *Buffer {
	buf := NewBuffer()
	for y := range RasterSize {
		for x := range RasterSize {
			buf.Set(x, y, float32((x*7+y*13)%29)/28)
		}
	}
	return buf
}

func TestResampleInvalidScale(t *testing.T) {
	img := pattern().RGBA()
	for _, scale := range []int{-1, 0, 3, 5, 16} {
		if _, err := Resample(img, scale); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("scale %d: got %v, want ErrInvalidScale", scale, err)
		}
	}
}

func TestResampleEmpty(t *testing.T) {
	if _, err := Resample(nil, 2); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("nil image: got %v", err)
	}
	if _, err := Resample(&image.RGBA{}, 2); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("empty image: got %v", err)
	}
}

func TestResampleBlock(t *testing.T) {
	buf := NewBuffer()
	buf.Set(5, 5, 1)

	big, err := Resample(buf.RGBA(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if b := big.Bounds(); b.Dx() != 112 || b.Dy() != 112 {
		t.Fatalf("size %v, want 112x112", b)
	}
	for y := range 112 {
		for x := range 112 {
			want := uint8(0)
			if x >= 20 && x < 24 && y >= 20 && y < 24 {
				want = 255
			}
			c := big.RGBAAt(x, y)
			if c.R != want || c.G != want || c.B != want || c.A != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want gray %d", x, y, c, want)
			}
		}
	}
}

func TestResampleReplicates(t *testing.T) {
	src := pattern().RGBA()
	for _, scale := range Scales {
		t.Run(fmt.Sprintf("%dx", scale), func(t *testing.T) {
			big, err := Resample(src, scale)
			if err != nil {
				t.Fatal(err)
			}
			n := RasterSize * scale
			if b := big.Bounds(); b != image.Rect(0, 0, n, n) {
				t.Fatalf("bounds %v", b)
			}
			for y := range n {
				for x := range n {
					if got, want := big.RGBAAt(x, y), src.RGBAAt(x/scale, y/scale); got != want {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestResampleIdentity(t *testing.T) {
	src := pattern().RGBA()
	once, err := Resample(src, 1)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Resample(once, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(src.Pix, once.Pix) || !slices.Equal(once.Pix, twice.Pix) {
		t.Error("resampling at scale 1 changed the image")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := pattern().RGBA()
	for _, scale := range Scales {
		t.Run(fmt.Sprintf("%dx", scale), func(t *testing.T) {
			big, err := Resample(src, scale)
			if err != nil {
				t.Fatal(err)
			}
			uri, err := Encode(big)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(uri, "data:image/png;base64,") {
				t.Fatalf("unexpected prefix in %.40q", uri)
			}

			back, err := Decode(uri)
			if err != nil {
				t.Fatal(err)
			}
			if back.Bounds() != big.Bounds() {
				t.Fatalf("decoded bounds %v, want %v", back.Bounds(), big.Bounds())
			}
			if !slices.Equal(back.Pix, big.Pix) {
				t.Error("decoded pixels differ")
			}
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("nil image: got %v", err)
	}
	if err := WritePNG(&bytes.Buffer{}, &image.RGBA{}); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("empty image: got %v", err)
	}
}

func TestWritePNG(t *testing.T) {
	src := pattern().RGBA()
	var buf bytes.Buffer
	if err := WritePNG(&buf, src); err != nil {
		t.Fatal(err)
	}
	uri, err := Encode(src)
	if err != nil {
		t.Fatal(err)
	}
	if want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()); uri != want {
		t.Error("data URI does not contain the PNG file")
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Error(err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		"",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,not base64!",
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not a PNG")),
	}
	for _, uri := range cases {
		if _, err := Decode(uri); !errors.Is(err, ErrMalformedDataURI) {
			t.Errorf("%q: got %v, want ErrMalformedDataURI", uri, err)
		}
	}
}

func TestFilename(t *testing.T) {
	for _, scale := range Scales {
		want := fmt.Sprintf("mnist_digit_%dx.png", scale)
		if got := Filename(scale); got != want {
			t.Errorf("Filename(%d) = %q, want %q", scale, got, want)
		}
	}
	if !ValidScale(8) || ValidScale(3) {
		t.Error("ValidScale is wrong")
	}
}

func TestQuantize(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{0, 0},
		{0.5, 128},
		{0.999, 255},
		{1, 255},
		{-0.2, 0},
		{1.5, 255},
	}
	for _, c := range cases {
		if got := toByte(c.in); got != c.want {
			t.Errorf("toByte(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}
