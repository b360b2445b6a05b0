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
	"slices"
	"sync"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func newTestPad(t *testing.T) *Pad {
	t.Helper()
	p, err := NewPad(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// drawLine performs a complete pointer gesture from a to b.
func drawLine(p *Pad, a, b vec.Vec2) {
	p.PointerDown(a)
	for i := 1; i <= 10; i++ {
		t := float64(i) / 10
		p.PointerMove(a.Mul(1 - t).Add(b.Mul(t)))
	}
	p.PointerUp()
}

var (
	barStart = vec.Vec2{X: 50, Y: 105}
	barEnd   = vec.Vec2{X: 230, Y: 105}
)

func TestNewPadInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 3
	if _, err := NewPad(cfg); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("got %v, want ErrInvalidScale", err)
	}
}

func TestPadGesture(t *testing.T) {
	p := newTestPad(t)
	if p.Tool() != Mark || p.Scale() != 1 {
		t.Errorf("initial tool %s, scale %d", p.Tool(), p.Scale())
	}

	p.PointerDown(barStart)
	p.PointerMove(barEnd)
	if p.Buffer() != nil || p.CanExport() {
		t.Error("preview updated before the stroke was finished")
	}
	p.PointerUp()

	buf := p.Buffer()
	if buf == nil || !p.CanExport() {
		t.Fatal("no preview after the stroke was finished")
	}
	if g := buf.Gray(14, 10); g != 255 {
		t.Errorf("pixel (14,10) = %d, want 255", g)
	}
	if img := p.Preview(); img == nil || img.Bounds().Dx() != RasterSize {
		t.Errorf("preview image %v", img)
	}

	p.SetTool(Erase)
	drawLine(p, vec.Vec2{X: 145, Y: 0}, vec.Vec2{X: 145, Y: 280})
	if g := p.Buffer().Gray(14, 10); g != 0 {
		t.Errorf("pixel (14,10) after erasing = %d, want 0", g)
	}

	strokes := p.Strokes()
	if len(strokes) != 2 || strokes[0].Mode != Mark || strokes[1].Mode != Erase {
		t.Errorf("strokes %v", strokes)
	}
}

func TestPadIgnoresStrayEvents(t *testing.T) {
	p := newTestPad(t)
	p.PointerMove(barStart)
	p.PointerUp()
	if len(p.Strokes()) != 0 || p.Buffer() != nil {
		t.Error("events without a pressed pointer changed the pad")
	}
}

func TestPadClear(t *testing.T) {
	p := newTestPad(t)
	drawLine(p, barStart, barEnd)
	p.Clear()

	if len(p.Strokes()) != 0 || p.Buffer() != nil || p.Preview() != nil || p.CanExport() {
		t.Error("Clear left state behind")
	}
	if _, err := p.Save(); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Save after Clear: got %v", err)
	}

	drawLine(p, barStart, barEnd)
	if !p.CanExport() {
		t.Error("drawing after Clear did not update the preview")
	}
}

func TestPadTapOnly(t *testing.T) {
	p := newTestPad(t)
	p.PointerDown(vec.Vec2{X: 140, Y: 140})
	p.PointerUp()

	if len(p.Strokes()) != 1 {
		t.Fatalf("got %d strokes, want 1", len(p.Strokes()))
	}
	if p.CanExport() {
		t.Error("CanExport is true for an all-black preview")
	}
	if _, err := p.Save(); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Save: got %v, want ErrEmptyCanvas", err)
	}
	called := false
	p.SaveAsync(func(_ Export, err error) {
		called = true
		if !errors.Is(err, ErrEmptyCanvas) {
			t.Errorf("SaveAsync: got %v, want ErrEmptyCanvas", err)
		}
	})
	if !called {
		t.Error("SaveAsync did not report the error synchronously")
	}
}

func TestPadEverythingErased(t *testing.T) {
	p := newTestPad(t)
	drawLine(p, barStart, barEnd)
	if !p.CanExport() {
		t.Fatal("cannot export after drawing")
	}

	p.SetTool(Erase)
	for _, y := range []float64{95, 105, 115} {
		drawLine(p, vec.Vec2{X: 0, Y: y}, vec.Vec2{X: 280, Y: y})
	}
	if p.CanExport() {
		t.Error("CanExport is true after erasing everything")
	}
	if _, err := p.Save(); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Save: got %v, want ErrEmptyCanvas", err)
	}
}

func TestPadUnknownTool(t *testing.T) {
	p := newTestPad(t)
	p.SetTool(Erase)
	p.SetTool(Mode(9))
	if p.Tool() != Erase {
		t.Errorf("tool is %s after selecting an unknown mode", p.Tool())
	}
}

func TestPadSaveEmpty(t *testing.T) {
	p := newTestPad(t)
	if _, err := p.Save(); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Save: got %v, want ErrEmptyCanvas", err)
	}

	called := false
	p.SaveAsync(func(_ Export, err error) {
		called = true
		if !errors.Is(err, ErrEmptyCanvas) {
			t.Errorf("SaveAsync: got %v, want ErrEmptyCanvas", err)
		}
	})
	if !called {
		t.Error("SaveAsync did not report the error synchronously")
	}
}

func TestPadSetScale(t *testing.T) {
	p := newTestPad(t)
	if err := p.SetScale(4); err != nil {
		t.Fatal(err)
	}
	for _, bad := range []int{0, 3, 16} {
		if err := p.SetScale(bad); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("SetScale(%d): got %v", bad, err)
		}
		if p.Scale() != 4 {
			t.Errorf("SetScale(%d) changed the scale to %d", bad, p.Scale())
		}
	}
}

func TestPadSave(t *testing.T) {
	p := newTestPad(t)
	drawLine(p, barStart, barEnd)
	if err := p.SetScale(4); err != nil {
		t.Fatal(err)
	}

	exp, err := p.Save()
	if err != nil {
		t.Fatal(err)
	}
	if exp.Scale != 4 || exp.Filename != "mnist_digit_4x.png" {
		t.Errorf("export %d, %q", exp.Scale, exp.Filename)
	}
	if b := exp.Image.Bounds(); b.Dx() != 112 || b.Dy() != 112 {
		t.Errorf("image size %v", b)
	}

	decoded, err := Decode(exp.DataURI)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(decoded.Pix, exp.Image.Pix) {
		t.Error("data URI does not match the exported image")
	}

	want, err := Resample(p.Preview(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(want.Pix, exp.Image.Pix) {
		t.Error("export differs from the enlarged preview")
	}
}

func TestPadSaveAsyncSnapshot(t *testing.T) {
	p := newTestPad(t)
	drawLine(p, barStart, barEnd)
	want, err := Resample(p.Preview(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SetScale(2); err != nil {
		t.Fatal(err)
	}

	done := make(chan Export, 1)
	p.SaveAsync(func(exp Export, err error) {
		if err != nil {
			t.Error(err)
		}
		done <- exp
	})

	// changes after the call must not show up in the export
	p.SetTool(Erase)
	drawLine(p, vec.Vec2{X: 145, Y: 0}, vec.Vec2{X: 145, Y: 280})
	p.SetScale(8)

	exp := <-done
	if exp.Scale != 2 {
		t.Errorf("export scale %d, want 2", exp.Scale)
	}
	if exp.Image == nil || !slices.Equal(exp.Image.Pix, want.Pix) {
		t.Error("export does not show the drawing at the time of the call")
	}
}

func TestPadConcurrentExports(t *testing.T) {
	p := newTestPad(t)
	drawLine(p, barStart, barEnd)

	const n = 8
	var wg sync.WaitGroup
	uris := make([]string, n)
	wg.Add(n)
	for i := range n {
		p.SaveAsync(func(exp Export, err error) {
			defer wg.Done()
			if err != nil {
				t.Error(err)
				return
			}
			uris[i] = exp.DataURI
		})
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if uris[i] != uris[0] {
			t.Errorf("export %d differs", i)
		}
	}
}
