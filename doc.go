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

// Package mnistpad converts a digit drawn by hand into a 28×28 image in
// the format of the MNIST data set: white strokes on a black background.
//
// Strokes are collected in a [Sketch], in the coordinates of a large
// square drawing canvas.  A [Renderer] scales them down and rasterises
// them with exact area coverage, painting (mode [Mark]) or erasing (mode
// [Erase]) in drawing order.  [Resample] and [Encode] enlarge the result
// by an integer factor, without interpolation, and turn it into a PNG data
// URI.  [Pad] ties these steps to pointer events.
package mnistpad

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
