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
	"io"

	"github.com/BurntSushi/toml"
)

// Config holds the parameters of the drawing pipeline.
type Config struct {
	// DisplaySize is the width and height of the square drawing canvas,
	// in display pixels.
	DisplaySize float64 `toml:"display_size"`

	// StrokeWidth is the pen width in raster pixels.
	StrokeWidth float64 `toml:"stroke_width"`

	// Tension controls stroke smoothing, from 0 (straight segments) to 1.
	Tension float64 `toml:"tension"`

	// Flatness is the curve approximation tolerance in raster pixels.
	Flatness float64 `toml:"flatness"`

	// Scale is the initial export magnification.
	Scale int `toml:"scale"`
}

// DefaultConfig returns the configuration used when nothing else is given:
// a 280×280 canvas, a pen two raster pixels wide and Catmull-Rom smoothing.
func DefaultConfig() Config {
	return Config{
		DisplaySize: 10 * RasterSize,
		StrokeWidth: 2,
		Tension:     0.5,
		Flatness:    0.05,
		Scale:       1,
	}
}

// Validate checks that all values are in range.
func (c Config) Validate() error {
	switch {
	case !(c.DisplaySize > 0):
		return fmt.Errorf("%w: display size %g", ErrInvalidConfig, c.DisplaySize)
	case !(c.StrokeWidth > 0):
		return fmt.Errorf("%w: stroke width %g", ErrInvalidConfig, c.StrokeWidth)
	case !(c.Tension >= 0 && c.Tension <= 1):
		return fmt.Errorf("%w: tension %g", ErrInvalidConfig, c.Tension)
	case !(c.Flatness > 0):
		return fmt.Errorf("%w: flatness %g", ErrInvalidConfig, c.Flatness)
	case !ValidScale(c.Scale):
		return fmt.Errorf("%w: %w %d", ErrInvalidConfig, ErrInvalidScale, c.Scale)
	}
	return nil
}

// DecodeConfig reads a TOML configuration.  Keys which are not present
// keep their default values, unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return checkDecoded(cfg, md)
}

// LoadConfig reads a TOML configuration file, see [DecodeConfig].
func LoadConfig(fname string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(fname, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", fname, err)
	}
	return checkDecoded(cfg, md)
}

func checkDecoded(cfg Config, md toml.MetaData) (Config, error) {
	if extra := md.Undecoded(); len(extra) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, extra[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
