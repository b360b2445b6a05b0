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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SmoothPath returns a path through all of pts.
//
// For tension 0, consecutive points are joined by straight lines.  For
// tension t > 0 the points are connected by a cardinal spline, where the
// tangent at pts[i] is t·(pts[i+1] - pts[i-1]), written as cubic Bézier
// segments.  Tension 0.5 gives a Catmull-Rom spline.  End points are
// reused as their own neighbours, so the curve starts and ends exactly at
// the first and last point.  Two-point inputs are always straight.
func SmoothPath(pts []vec.Vec2, tension float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		n := len(pts)
		if n == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[0]}) {
			return
		}

		k := tension / 3
		for i := 1; i < n; i++ {
			p1, p2 := pts[i-1], pts[i]
			if tension == 0 || n == 2 {
				if !yield(path.CmdLineTo, []vec.Vec2{p2}) {
					return
				}
				continue
			}

			p0 := pts[max(i-2, 0)]
			p3 := pts[min(i+1, n-1)]
			c1 := p1.Add(p2.Sub(p0).Mul(k))
			c2 := p2.Sub(p3.Sub(p1).Mul(k))
			if !yield(path.CmdCubeTo, []vec.Vec2{c1, c2, p2}) {
				return
			}
		}
	}
}
