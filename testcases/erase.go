package testcases

var eraseCases = []TestCase{
	{
		Name: "bar_cut",
		Strokes: []Stroke{
			{Mode: Mark, Points: line(50, 105, 230, 105, 30)},
			{Mode: Erase, Points: line(145, 0, 145, 280, 30)},
		},
	},
	{
		Name: "erase_then_mark",
		Strokes: []Stroke{
			{Mode: Erase, Points: line(145, 0, 145, 280, 30)},
			{Mode: Mark, Points: line(50, 105, 230, 105, 30)},
		},
	},
	{
		Name: "eight_from_zero",
		Strokes: []Stroke{
			{Mode: Mark, Points: arc(140, 140, 80, -90, 270, 72)},
			{Mode: Erase, Points: line(40, 140, 240, 140, 30)},
			{Mode: Mark, Points: arc(140, 100, 45, 90, 450, 60)},
			{Mode: Mark, Points: arc(140, 185, 40, -90, 270, 60)},
		},
	},
}
