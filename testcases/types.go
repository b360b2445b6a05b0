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

// Package testcases contains recorded drawings used to test the pipeline.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// DisplaySize is the canvas size all test drawings were made on.
const DisplaySize = 280

// TestCase is a complete drawing.
type TestCase struct {
	Name    string // lowercase a-z and _ only
	Strokes []Stroke
}

// Mode says whether a stroke paints or erases.
type Mode int

const (
	Mark Mode = iota
	Erase
)

func (m Mode) String() string {
	if m == Erase {
		return "erase"
	}
	return "mark"
}

// Stroke is a single gesture in display coordinates.
type Stroke struct {
	Mode   Mode
	Points []vec.Vec2
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// line samples n+1 evenly spaced points from (x0, y0) to (x1, y1),
// the way pointer events arrive during a steady movement.
func line(x0, y0, x1, y1 float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		pts = append(pts, pt(x0+t*(x1-x0), y0+t*(y1-y0)))
	}
	return pts
}

// arc samples n+1 points on a circle around (cx, cy), from angle a0 to a1
// (in degrees, y axis pointing down).
func arc(cx, cy, r, a0, a1 float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		a := (a0 + (a1-a0)*float64(i)/float64(n)) * math.Pi / 180
		pts = append(pts, pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return pts
}

// join concatenates point lists, dropping the first point of each
// continuation when it repeats the previous end point.
func join(parts ...[]vec.Vec2) []vec.Vec2 {
	var res []vec.Vec2
	for _, p := range parts {
		if len(res) > 0 && len(p) > 0 && res[len(res)-1] == p[0] {
			p = p[1:]
		}
		res = append(res, p...)
	}
	return res
}
