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
	"image"
	"sync"

	"seehuhn.de/go/geom/vec"
)

// Pad connects user input to the raster pipeline.  Pointer events build
// the sketch, every completed stroke re-renders the preview, and Save
// exports the preview at the selected scale.
//
// Input methods must be called from a single goroutine.  Exports are
// serialized: an export which is still encoding blocks the next one.
type Pad struct {
	sketch   Sketch
	renderer *Renderer
	tool     Mode
	scale    int
	preview  *Buffer // nil until the first stroke is finished

	exportMu sync.Mutex
}

// Export is the result of saving the drawing.
type Export struct {
	Scale    int
	Filename string
	DataURI  string
	Image    *image.RGBA
}

// NewPad returns an empty pad.
func NewPad(cfg Config) (*Pad, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pad{
		renderer: NewRenderer(cfg),
		tool:     Mark,
		scale:    cfg.Scale,
	}, nil
}

// SetTool selects the mode for subsequent strokes.  Unknown modes are
// ignored.
func (p *Pad) SetTool(m Mode) {
	if !m.Valid() {
		Logger().Warn("ignoring unknown tool", "mode", m)
		return
	}
	p.tool = m
}

// Tool returns the mode used for new strokes.
func (p *Pad) Tool() Mode {
	return p.tool
}

// PointerDown starts a stroke at pt, in display coordinates.
func (p *Pad) PointerDown(pt vec.Vec2) {
	p.sketch.BeginStroke(p.tool, pt)
}

// PointerMove adds pt to the current stroke.  Moves while no button is
// held are ignored.
func (p *Pad) PointerMove(pt vec.Vec2) {
	if !p.sketch.Active() {
		return
	}
	p.sketch.ExtendStroke(pt)
}

// PointerUp finishes the current stroke and updates the preview.
func (p *Pad) PointerUp() {
	if !p.sketch.Active() {
		return
	}
	p.sketch.EndStroke()
	p.preview = p.renderer.RenderSketch(&p.sketch)
}

// Clear removes all strokes and the preview.
func (p *Pad) Clear() {
	p.sketch.Reset()
	p.preview = nil
}

// Strokes returns the strokes drawn so far.
func (p *Pad) Strokes() []Stroke {
	return p.sketch.Strokes()
}

// SetScale selects the export scale.  Invalid values are rejected and
// leave the current scale unchanged.
func (p *Pad) SetScale(scale int) error {
	if !ValidScale(scale) {
		return fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	p.scale = scale
	return nil
}

// Scale returns the selected export scale.
func (p *Pad) Scale() int {
	return p.scale
}

// Buffer returns the current preview buffer, or nil if nothing has been
// drawn since the pad was created or cleared.
func (p *Pad) Buffer() *Buffer {
	return p.preview
}

// Preview returns the unscaled preview image, or nil if nothing has been
// drawn.
func (p *Pad) Preview() *image.RGBA {
	if p.preview == nil {
		return nil
	}
	return p.preview.RGBA()
}

// CanExport reports whether Save would produce an image.  This is false
// while the preview is all black, for example after a tap without
// movement or after everything has been erased.
func (p *Pad) CanExport() bool {
	return p.preview != nil && !p.preview.Blank()
}

// Save exports the current preview at the selected scale.
// If the preview is all black, ErrEmptyCanvas is returned.
func (p *Pad) Save() (Export, error) {
	img, scale, err := p.snapshot()
	if err != nil {
		return Export{}, err
	}
	return p.export(img, scale)
}

// SaveAsync works like Save, but encodes in a new goroutine and reports
// the result through done.  The image is captured before SaveAsync
// returns, so strokes added afterwards are not part of the export.
// If nothing has been drawn, done is called before SaveAsync returns.
func (p *Pad) SaveAsync(done func(Export, error)) {
	img, scale, err := p.snapshot()
	if err != nil {
		done(Export{}, err)
		return
	}
	go func() {
		done(p.export(img, scale))
	}()
}

func (p *Pad) snapshot() (*image.RGBA, int, error) {
	if !p.CanExport() {
		return nil, 0, ErrEmptyCanvas
	}
	return p.preview.RGBA(), p.scale, nil
}

func (p *Pad) export(img *image.RGBA, scale int) (Export, error) {
	p.exportMu.Lock()
	defer p.exportMu.Unlock()

	big, err := Resample(img, scale)
	if err != nil {
		return Export{}, err
	}
	uri, err := Encode(big)
	if err != nil {
		return Export{}, err
	}

	name := Filename(scale)
	Logger().Info("exported digit", "file", name, "scale", scale, "bytes", len(uri))
	return Export{
		Scale:    scale,
		Filename: name,
		DataURI:  uri,
		Image:    big,
	}, nil
}
