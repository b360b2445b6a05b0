package testcases

var digitCases = []TestCase{
	{
		Name: "one",
		Strokes: []Stroke{
			{Mode: Mark, Points: join(line(110, 80, 150, 50, 8), line(150, 50, 150, 230, 30))},
		},
	},
	{
		Name: "seven",
		Strokes: []Stroke{
			{Mode: Mark, Points: join(line(80, 60, 200, 60, 20), line(200, 60, 120, 230, 30))},
			{Mode: Mark, Points: line(110, 145, 180, 145, 12)},
		},
	},
	{
		Name: "zero",
		Strokes: []Stroke{
			{Mode: Mark, Points: arc(140, 140, 80, -90, 270, 72)},
		},
	},
	{
		Name: "four",
		Strokes: []Stroke{
			{Mode: Mark, Points: join(line(160, 50, 80, 170, 20), line(80, 170, 200, 170, 20))},
			{Mode: Mark, Points: line(170, 100, 170, 240, 25)},
		},
	},
	{
		Name: "two",
		Strokes: []Stroke{
			{Mode: Mark, Points: join(
				arc(140, 110, 55, 200, 360, 30),
				line(195, 110, 90, 220, 25),
				line(90, 220, 200, 220, 20),
			)},
		},
	},
}
