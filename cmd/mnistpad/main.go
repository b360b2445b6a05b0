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

// Command mnistpad replays a recorded drawing and saves it as an MNIST
// style PNG image.
//
// The input is a JSON list of strokes, as written by testcases/export:
//
//	[{"mode": "mark", "points": [{"X": 110, "Y": 80}, ...]}, ...]
//
// Usage:
//
//	mnistpad [-config pad.toml] [-scale 4] [-o out.png] [-uri] drawing.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"seehuhn.de/go/mnistpad"
)

func main() {
	configFile := flag.String("config", "", "TOML configuration `file`")
	scale := flag.Int("scale", 0, "export scale (1, 2, 4 or 8), overrides the configuration")
	out := flag.String("o", "", "output `file` (default mnist_digit_<scale>x.png)")
	uri := flag.Bool("uri", false, "print the data URI instead of writing a file")
	verbose := flag.Bool("v", false, "log pipeline events to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		mnistpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(flag.Arg(0), *configFile, *scale, *out, *uri); err != nil {
		log.Fatal(err)
	}
}

func run(input, configFile string, scale int, out string, printURI bool) error {
	cfg := mnistpad.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = mnistpad.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}

	strokes, err := readStrokes(input)
	if err != nil {
		return err
	}

	pad, err := mnistpad.NewPad(cfg)
	if err != nil {
		return err
	}
	if scale != 0 {
		if err := pad.SetScale(scale); err != nil {
			return err
		}
	}
	replay(pad, strokes)

	exp, err := pad.Save()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if printURI {
		_, err = fmt.Println(exp.DataURI)
		return err
	}

	if out == "" {
		out = exp.Filename
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	err = mnistpad.WritePNG(f, exp.Image)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func readStrokes(fname string) ([]mnistpad.Stroke, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	var strokes []mnistpad.Stroke
	if err := json.Unmarshal(data, &strokes); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return strokes, nil
}

// replay feeds the strokes to the pad as pointer events.
func replay(pad *mnistpad.Pad, strokes []mnistpad.Stroke) {
	for _, s := range strokes {
		if len(s.Points) == 0 {
			continue
		}
		pad.SetTool(s.Mode)
		pad.PointerDown(s.Points[0])
		for _, p := range s.Points[1:] {
			pad.PointerMove(p)
		}
		pad.PointerUp()
	}
}
