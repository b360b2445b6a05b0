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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
# straight lines, large exports
tension = 0.0
scale = 8
`))
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Tension = 0
	want.Scale = 8
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestDecodeConfigInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"unknown key", "colour = \"red\"\n", ErrInvalidConfig},
		{"bad scale", "scale = 3\n", ErrInvalidScale},
		{"negative width", "stroke_width = -1.0\n", ErrInvalidConfig},
		{"zero size", "display_size = 0.0\n", ErrInvalidConfig},
		{"tension too large", "tension = 2.0\n", ErrInvalidConfig},
		{"zero flatness", "flatness = 0.0\n", ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(c.input))
			if !errors.Is(err, c.err) {
				t.Errorf("got %v, want %v", err, c.err)
			}
		})
	}
}

func TestDecodeConfigSyntax(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("scale = = 2\n"))
	if err == nil {
		t.Fatal("syntax error not reported")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax error reported as invalid value")
	}
}

func TestLoadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "mnistpad.toml")
	err := os.WriteFile(fname, []byte("display_size = 560.0\nstroke_width = 2.5\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DisplaySize != 560 || cfg.StrokeWidth != 2.5 || cfg.Scale != 1 {
		t.Errorf("got %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file not reported")
	}
}
