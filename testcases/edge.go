package testcases

import "seehuhn.de/go/geom/vec"

var edgeCases = []TestCase{
	{
		Name: "off_canvas",
		Strokes: []Stroke{
			{Mode: Mark, Points: line(-100, 140, 380, 140, 40)},
			{Mode: Mark, Points: line(300, 300, 400, 400, 5)},
		},
	},
	{
		// a tap without movement
		Name: "dot",
		Strokes: []Stroke{
			{Mode: Mark, Points: []vec.Vec2{pt(140, 140), pt(140, 140)}},
		},
	},
	{
		Name: "single_point",
		Strokes: []Stroke{
			{Mode: Mark, Points: []vec.Vec2{pt(60, 60)}},
			{Mode: Mark, Points: line(60, 200, 220, 200, 20)},
		},
	},
	{
		Name: "back_and_forth",
		Strokes: []Stroke{
			{Mode: Mark, Points: join(line(60, 140, 220, 140, 16), line(220, 140, 60, 140, 16))},
		},
	},
	{
		Name: "corners",
		Strokes: []Stroke{
			{Mode: Mark, Points: line(0, 0, 30, 30, 3)},
			{Mode: Mark, Points: line(279, 279, 250, 250, 3)},
		},
	},
}
