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
	"image"
	"slices"
)

// RasterSize is the width and height of an MNIST image in pixels.
const RasterSize = 28

// Buffer is a RasterSize×RasterSize grayscale image.  Pixel values range
// from 0 (black background) to 1 (white ink).
type Buffer struct {
	// Pix holds the pixel values in row-major order.
	Pix []float32
}

// NewBuffer returns an all-black buffer.
func NewBuffer() *Buffer {
	return &Buffer{Pix: make([]float32, RasterSize*RasterSize)}
}

// At returns the value of pixel (x, y).  Pixels outside the grid are black.
func (b *Buffer) At(x, y int) float32 {
	if x < 0 || x >= RasterSize || y < 0 || y >= RasterSize {
		return 0
	}
	return b.Pix[y*RasterSize+x]
}

// Set changes the value of pixel (x, y).  Values are clamped to [0, 1],
// pixels outside the grid are ignored.
func (b *Buffer) Set(x, y int, v float32) {
	if x < 0 || x >= RasterSize || y < 0 || y >= RasterSize {
		return
	}
	b.Pix[y*RasterSize+x] = max(0, min(1, v))
}

// Gray returns the 8-bit value of pixel (x, y).
func (b *Buffer) Gray(x, y int) uint8 {
	return toByte(b.At(x, y))
}

// Blank reports whether every pixel is black after quantization to
// 8 bits.
func (b *Buffer) Blank() bool {
	return !slices.ContainsFunc(b.Pix, func(v float32) bool { return toByte(v) != 0 })
}

// Equal reports whether both buffers hold the same values.
func (b *Buffer) Equal(other *Buffer) bool {
	return slices.Equal(b.Pix, other.Pix)
}

// RGBA returns the buffer as an opaque image with R = G = B.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, RasterSize, RasterSize))
	for i, v := range b.Pix {
		g := toByte(v)
		img.Pix[4*i] = g
		img.Pix[4*i+1] = g
		img.Pix[4*i+2] = g
		img.Pix[4*i+3] = 0xFF
	}
	return img
}

func toByte(v float32) uint8 {
	return uint8(max(0, min(255, int(v*256))))
}
