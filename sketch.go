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
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Mode says how a stroke changes the image.
type Mode uint8

// These are the supported stroke modes.
const (
	Mark  Mode = iota // paint white
	Erase             // clear to black
)

var modeNames = [...]string{
	Mark:  "mark",
	Erase: "erase",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return int(m) < len(modeNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("unknown stroke mode %d", m)
	}
	return []byte(modeNames[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	for i, name := range modeNames {
		if string(text) == name {
			*m = Mode(i)
			return nil
		}
	}
	return fmt.Errorf("unknown stroke mode %q", text)
}

// Stroke is one pointer gesture, in display coordinates.
type Stroke struct {
	Mode   Mode       `json:"mode"`
	Points []vec.Vec2 `json:"points"`
}

// Sketch is the ordered list of strokes drawn so far.  Only the last
// stroke can still grow, and only while it is active.
//
// The zero value is an empty sketch.
type Sketch struct {
	strokes []Stroke
	active  bool
}

// BeginStroke starts a new stroke at p.  A stroke which is still active
// is ended first.
func (s *Sketch) BeginStroke(mode Mode, p vec.Vec2) {
	s.strokes = append(s.strokes, Stroke{Mode: mode, Points: []vec.Vec2{p}})
	s.active = true
}

// ExtendStroke appends p to the active stroke.  If there is no active
// stroke, nothing happens and false is returned.
func (s *Sketch) ExtendStroke(p vec.Vec2) bool {
	if !s.active {
		Logger().Warn("point without active stroke", "x", p.X, "y", p.Y)
		return false
	}
	cur := &s.strokes[len(s.strokes)-1]
	cur.Points = append(cur.Points, p)
	return true
}

// EndStroke closes the active stroke, if any.
func (s *Sketch) EndStroke() {
	s.active = false
}

// Reset removes all strokes.
func (s *Sketch) Reset() {
	s.strokes = nil
	s.active = false
}

// Active reports whether a stroke is in progress.
func (s *Sketch) Active() bool {
	return s.active
}

// Len returns the number of strokes, including an active one.
func (s *Sketch) Len() int {
	return len(s.strokes)
}

// Strokes returns the strokes in drawing order.  The point slices are
// shared with the sketch but clipped, so that appending to them does not
// modify the sketch.  Callers must not modify the points in place.
func (s *Sketch) Strokes() []Stroke {
	res := make([]Stroke, len(s.strokes))
	for i, st := range s.strokes {
		res[i] = Stroke{Mode: st.Mode, Points: slices.Clip(st.Points)}
	}
	return res
}
