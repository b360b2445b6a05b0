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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// compositeFunc combines the current pixel value with the coverage c of
// a stroke.
type compositeFunc func(dst, c float32) float32

var composite = [...]compositeFunc{
	Mark:  func(dst, c float32) float32 { return c + (1-c)*dst },
	Erase: func(dst, c float32) float32 { return (1 - c) * dst },
}

// Renderer turns a list of strokes into a [Buffer].
//
// Every call to Render starts from a black buffer and paints all strokes
// in order, so the result only depends on the strokes and the renderer
// settings.  A Renderer is not safe for concurrent use.
type Renderer struct {
	// DisplaySize is the side length of the drawing canvas.
	DisplaySize float64

	// Width is the pen width in raster pixels.
	Width float64

	// Tension is passed to [SmoothPath].
	Tension float64

	// Flatness is the curve tolerance in raster pixels.
	Flatness float64

	r *Rasteriser
}

// NewRenderer returns a Renderer using the settings from cfg.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		DisplaySize: cfg.DisplaySize,
		Width:       cfg.StrokeWidth,
		Tension:     cfg.Tension,
		Flatness:    cfg.Flatness,
		r:           NewRasteriser(rect.Rect{URx: RasterSize, URy: RasterSize}),
	}
}

// CTM returns the map from display coordinates to raster coordinates.
func (rd *Renderer) CTM() matrix.Matrix {
	s := RasterSize / rd.DisplaySize
	return matrix.Matrix{s, 0, 0, s, 0, 0}
}

// ToRaster maps a point from display coordinates to raster coordinates.
func (rd *Renderer) ToRaster(p vec.Vec2) vec.Vec2 {
	m := rd.CTM()
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// RenderSketch paints all strokes of s, see [Renderer.Render].
func (rd *Renderer) RenderSketch(s *Sketch) *Buffer {
	return rd.Render(s.Strokes())
}

// Render paints the strokes into a new buffer.  Strokes with fewer than
// two points and strokes with an unknown mode are skipped.
func (rd *Renderer) Render(strokes []Stroke) *Buffer {
	buf := NewBuffer()

	r := rd.r
	r.Reset(rect.Rect{URx: RasterSize, URy: RasterSize})
	r.CTM = rd.CTM()
	r.Width = rd.Width * rd.DisplaySize / RasterSize
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	if rd.Flatness > 0 {
		r.Flatness = rd.Flatness
	}

	painted := 0
	for i, s := range strokes {
		if len(s.Points) < 2 {
			Logger().Debug("skipping degenerate stroke", "index", i, "points", len(s.Points))
			continue
		}
		if !s.Mode.Valid() {
			Logger().Warn("skipping stroke with unknown mode", "index", i, "mode", s.Mode)
			continue
		}
		op := composite[s.Mode]
		r.Stroke(SmoothPath(s.Points, rd.Tension), func(y, xMin int, coverage []float32) {
			row := buf.Pix[y*RasterSize+xMin:]
			for j, c := range coverage {
				row[j] = op(row[j], c)
			}
		})
		painted++
	}

	Logger().Debug("rendered sketch", "strokes", len(strokes), "painted", painted)
	return buf
}
