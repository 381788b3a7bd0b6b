package render

import (
	"image/color"
	"testing"

	"pathviz/internal/grid"
)

func TestPaletteCoversEveryState(t *testing.T) {
	p := Palette()
	if len(p) != int(grid.NumStates) {
		t.Fatalf("palette has %d entries, want %d", len(p), grid.NumStates)
	}
	for s, col := range p {
		if col.A != 255 {
			t.Errorf("state %v maps to a transparent color", grid.State(s))
		}
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{uint8(grid.Empty), uint8(grid.Barrier), uint8(grid.Path)}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, Palette())

	wants := []color.RGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{A: 255},
		{R: 128, B: 128, A: 255},
	}
	for i, want := range wants {
		base := i * 4
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Errorf("cell %d = %v, want %v", i, got, want)
		}
	}
}

func TestFillPaletteRGBAClampsUnknownValues(t *testing.T) {
	cells := []uint8{200}
	buf := make([]byte, 4)
	p := Palette()
	fillPaletteRGBA(buf, cells, p)

	last := p[len(p)-1]
	got := color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: buf[3]}
	if got != last {
		t.Errorf("out-of-range value = %v, want clamp to %v", got, last)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{1, 2}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}
