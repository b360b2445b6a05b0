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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a subpath, in user space.
type segment struct {
	A, B vec.Vec2 // end points
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// reversed returns the segment traversed from B to A.
func (s segment) reversed() segment {
	return segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// subpath is a range of r.segs.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke paints the outline of p using Width, Cap, Join and MiterLimit.
// Coverage is reported through emit as for FillNonZero.
//
// The outline of every subpath is built as one or two closed polygons,
// and all polygons are filled together with the nonzero rule, so that
// self-overlapping strokes are painted only once.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.flatten(p)
	if len(r.subpaths) == 0 && len(r.dots) == 0 {
		return
	}

	r.outline = r.outline[:0]
	r.polygons = r.polygons[:0]
	d := r.Width / 2

	// A subpath without extent only shows up with round caps.  The circle
	// runs in the same direction as the cap arcs, so that overlapping
	// outlines add up under the nonzero rule.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			start := len(r.outline)
			r.addArc(pt, d, vec.Vec2{X: 1}, -2*math.Pi, true)
			r.closePolygon(start)
		}
	}

	for _, sp := range r.subpaths {
		r.strokeSubpath(r.segs[sp.start:sp.end], sp.closed, d)
	}

	r.clearEdges()
	for i, start := range r.polygons {
		end := len(r.outline)
		if i+1 < len(r.polygons) {
			end = r.polygons[i+1]
		}
		poly := r.outline[start:end]
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.scan(emit)
}

// flatten converts p into line segments, grouped into subpaths.
// Subpaths which contain drawing operators but no segment of positive
// length are recorded in r.dots.
func (r *Rasteriser) flatten(p path.Path) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var cur, first vec.Vec2
	start := 0
	inSubpath := false
	drawn := false

	finish := func(closed bool) {
		switch {
		case len(r.segs) > start:
			r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.segs), closed: closed})
		case drawn:
			r.dots = append(r.dots, first)
		}
		start = len(r.segs)
		inSubpath = false
		drawn = false
	}

	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && !inSubpath {
			continue
		}
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				finish(false)
			}
			cur, first = pts[0], pts[0]
			inSubpath = true
		case path.CmdLineTo:
			drawn = true
			r.addSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			drawn = true
			r.flattenQuadratic(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]
		case path.CmdCubeTo:
			drawn = true
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]
		case path.CmdClose:
			drawn = true
			if cur != first {
				r.addSegment(cur, first)
			}
			finish(true)
			cur = first
		}
	}
	if inSubpath {
		finish(false)
	}
}

// addSegment appends a→b to r.segs, dropping segments of zero length.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeSubpath adds the outline of one subpath.  The far side of the
// stroke is produced by walking the reversed subpath, so that only the +N
// side ever needs to be offset.
//
// Open subpaths give a single polygon: start cap, +N side, end cap, -N side.
// Closed subpaths give two rings of opposite orientation.
func (r *Rasteriser) strokeSubpath(segs []segment, closed bool, d float64) {
	r.rev = r.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		r.rev = append(r.rev, segs[i].reversed())
	}

	if closed {
		start := len(r.outline)
		r.offsetSide(segs, closed, d)
		r.closePolygon(start)

		start = len(r.outline)
		r.offsetSide(r.rev, closed, d)
		r.closePolygon(start)
		return
	}

	first := &segs[0]
	last := &segs[len(segs)-1]

	start := len(r.outline)
	r.addCap(first.A, first.T.Mul(-1), d)
	r.offsetSide(segs, closed, d)
	r.addCap(last.B, last.T, d)
	r.offsetSide(r.rev, closed, d)
	r.closePolygon(start)
}

// offsetSide appends the +N offset of segs at distance d, with corners.
// For closed subpaths the corner between the last and the first segment
// is emitted first.
func (r *Rasteriser) offsetSide(segs []segment, closed bool, d float64) {
	n := len(segs)
	if closed {
		r.corner(&segs[n-1], &segs[0], d)
	}
	for i := range n {
		s := &segs[i]
		r.outline = append(r.outline, s.A.Add(s.N.Mul(d)))
		switch {
		case i+1 < n:
			r.corner(s, &segs[i+1], d)
		case !closed:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
		}
	}
}

// corner appends the +N side of the corner where s meets next, up to but
// excluding the offset start point of next.
//
// On the inner side of a turn the outline passes through the corner point
// itself.  This keeps the winding number positive everywhere inside the
// stroke, even when segments are much shorter than the stroke width.
func (r *Rasteriser) corner(s, next *segment, d float64) {
	P := s.B
	sin := s.T.X*next.T.Y - s.T.Y*next.T.X
	cos := s.T.Dot(next.T)

	switch {
	case cos < cuspCosineThreshold:
		r.outline = append(r.outline, P.Add(s.N.Mul(d)))
		r.addCap(P, s.T, d)
		return
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, P.Add(s.N.Mul(d)))
		return
	case sin > 0:
		// +N is on the inside of the turn
		r.outline = append(r.outline, P.Add(s.N.Mul(d)), P)
		return
	}

	r.outline = append(r.outline, P.Add(s.N.Mul(d)))
	r.addJoin(P, s, next, sin, cos, d)
}

// addJoin adds the outer part of the corner at P, after the offset point
// of s and before the offset point of next.
func (r *Rasteriser) addJoin(P vec.Vec2, s, next *segment, sin, cos, d float64) {
	switch r.Join {
	case graphics.LineJoinRound:
		r.addArc(P, d, s.N, math.Atan2(sin, cos), false)

	case graphics.LineJoinMiter:
		// The miter length relative to d is 1/cos(θ/2).
		h := math.Sqrt((1 + cos) / 2)
		if h <= 0 || 1/h > r.MiterLimit+1e-10 {
			return
		}
		bisector := s.N.Add(next.N)
		l := bisector.Length()
		if l > zeroLengthThreshold {
			r.outline = append(r.outline, P.Add(bisector.Mul(d/(h*l))))
		}
	}
	// LineJoinBevel: the two offset points are connected directly.
}

// addCap adds the cap at the end point P of a subpath.  T points away
// from the stroke.  The cap runs from the +N side to the -N side, where
// N is T rotated by +90°.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	}
	// LineCapButt: nothing to add
}

// addArc appends points on the circle around center with the given
// radius, starting in direction dir and sweeping the signed angle sweep.
// The number of points is chosen so that the chords stay within Flatness
// of the circle in device space.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, includeStart bool) {
	rx := r.linear(vec.Vec2{X: radius}).Length()
	ry := r.linear(vec.Vec2{Y: radius}).Length()
	devRadius := max(rx, ry)

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		phi := sweep * float64(i) / float64(n)
		c, s := math.Cos(phi), math.Sin(phi)
		v := vec.Vec2{X: dir.X*c - dir.Y*s, Y: dir.X*s + dir.Y*c}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}

// closePolygon keeps the polygon starting at outline[start] if it has at
// least three vertices, and drops it otherwise.
func (r *Rasteriser) closePolygon(start int) {
	if len(r.outline)-start >= 3 {
		r.polygons = append(r.polygons, start)
	} else {
		r.outline = r.outline[:start]
	}
}
