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
	"fmt"
	"image"
	"image/png"
	"io"
	"slices"
	"strings"

	"golang.org/x/image/draw"
)

// Scales lists the supported export magnifications.
var Scales = []int{1, 2, 4, 8}

// ValidScale reports whether scale is one of [Scales].
func ValidScale(scale int) bool {
	return slices.Contains(Scales, scale)
}

// Filename returns the suggested file name for an export at the given scale.
func Filename(scale int) string {
	return fmt.Sprintf("mnist_digit_%dx.png", scale)
}

// Resample enlarges src by an integer factor.  Every source pixel becomes
// a scale×scale block of identical pixels; no interpolation takes place.
func Resample(src *image.RGBA, scale int) (*image.RGBA, error) {
	if !ValidScale(scale) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	if src == nil || src.Rect.Empty() {
		return nil, ErrEmptyCanvas
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

const dataURIPrefix = "data:image/png;base64,"

// Encode returns img as a PNG data URI.
func Encode(img *image.RGBA) (string, error) {
	if img == nil || img.Rect.Empty() {
		return "", ErrEmptyCanvas
	}

	var sb strings.Builder
	sb.WriteString(dataURIPrefix)
	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	if err := png.Encode(enc, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WritePNG writes img to w in PNG format.
func WritePNG(w io.Writer, img *image.RGBA) error {
	if img == nil || img.Rect.Empty() {
		return ErrEmptyCanvas
	}
	return png.Encode(w, img)
}

// Decode reverses [Encode].
func Decode(uri string) (*image.RGBA, error) {
	payload, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		return nil, ErrMalformedDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}
