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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser computes, for every pixel of a small device grid, the exact
// fraction of the pixel area covered by a filled or stroked path.
//
// The whole clip rectangle is processed with two-dimensional accumulation
// buffers, which suits the tiny grids used for digit images.  Buffers grow
// as needed and are reused between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to an integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the open ends of stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins.  Must be at least 1.
	MiterLimit float64

	cover   []float32 // signed vertical extent per pixel, reused as output
	area    []float32 // area right of the crossing, per pixel
	rowUsed []bool
	edges   []edge
	bounds  edgeBounds

	// stroker state, see stroke.go
	segs     []segment
	rev      []segment
	subpaths []subpath
	dots     []vec.Vec2
	outline  []vec.Vec2
	polygons []int
}

// edgeBounds is the device-space bounding box of the collected edges.
type edgeBounds struct {
	xMin, xMax float64
	yMin, yMax float64
	empty      bool
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with an
// identity CTM, unit width and round caps and joins.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Internal buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.segs = r.segs[:0]
	r.rev = r.rev[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]
	r.outline = r.outline[:0]
	r.polygons = r.polygons[:0]
}

// toDevice applies the full CTM to a point.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// linear applies the 2×2 part of the CTM, for tolerance estimates.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic splits the quadratic Bézier curve p0, p1, p2 into line
// segments which stay within Flatness of the curve in device space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	e := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if e > r.Flatness {
		n = int(math.Ceil(math.Sqrt(e / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		p := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, p)
		prev = p
	}
}

// flattenCubic splits the cubic Bézier curve p0, ..., p3 into line segments.
// The number of segments is chosen using Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		p := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, p)
		prev = p
	}
}

// FillNonZero fills p using the nonzero winding rule.  Open subpaths are
// closed implicitly.  The emit callback receives coverage values in [0, 1]
// row by row, trimmed to the non-zero part of the row; the slice is only
// valid during the call.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.clearEdges()

	var cur, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				r.addEdge(cur, start)
			}
			cur, start = pts[0], pts[0]
			open = true
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, pts[0], pts[1], r.addEdge)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addEdge)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open && cur != start {
		r.addEdge(cur, start)
	}

	r.scan(emit)
}

func (r *Rasteriser) clearEdges() {
	r.edges = r.edges[:0]
	r.bounds = edgeBounds{empty: true}
}

// addEdge records the user-space segment a→b in device coordinates.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p := r.toDevice(a)
	q := r.toDevice(b)

	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})

	bb := &r.bounds
	if bb.empty {
		bb.xMin, bb.xMax = min(p.X, q.X), max(p.X, q.X)
		bb.yMin, bb.yMax = min(p.Y, q.Y), max(p.Y, q.Y)
		bb.empty = false
		return
	}
	bb.xMin = min(bb.xMin, p.X, q.X)
	bb.xMax = max(bb.xMax, p.X, q.X)
	bb.yMin = min(bb.yMin, p.Y, q.Y)
	bb.yMax = max(bb.yMax, p.Y, q.Y)
}

// window returns the pixel range touched by the collected edges,
// intersected with the clip rectangle.
func (r *Rasteriser) window() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 || r.bounds.empty {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bounds.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bounds.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bounds.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bounds.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Each edge contributes to the pixels it crosses:
//
//	cover = ±dy              signed vertical extent inside the pixel
//	area  = cover·(1 - xFrac) part of that extent lying right of the edge
//
// Summing cover from the left and adding the pixel's own area gives the
// signed area of the shape inside the pixel.

// scan accumulates all collected edges and emits nonzero coverage.
func (r *Rasteriser) scan(emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.window()
	if !ok {
		return
	}
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrateNonZero(coverage, r.area[off:off+w])
		if trimmed, skip := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// accumulate adds the part of e inside scanline [y, y+1) to cover and area.
// Both slices are indexed by x - xMin.  Contributions left of xMin are
// folded into the first pixel, contributions right of xMax are dropped.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}
	left := int(math.Floor(xa))
	right := int(math.Floor(xb))

	switch {
	case left >= xMax:
		return
	case right < xMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case left == right:
		deposit(e, yTop, yBot, sign, left, cover, area, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi > lo {
			deposit(e, lo, hi, sign, pix, cover, area, xMin, xMax)
		}
	}
}

// deposit records the piece of e between yTop and yBot, which lies inside
// pixel column pix.
func deposit(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero turns one row of cover/area values into coverage, in
// place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the non-zero part of a row and the number of zeros
// skipped at the start.  A row of zeros gives nil.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| below which two consecutive
	// segments are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path reversing onto itself,
	// cos(179.43°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)
