package render

import (
	"image/color"

	"pathviz/internal/grid"
)

// Palette maps each cell state, indexed by its byte value, to its display
// color. The mapping lives here so the grid itself never carries a
// presentation concern.
func Palette() []color.RGBA {
	p := make([]color.RGBA, grid.NumStates)
	p[grid.Empty] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p[grid.Start] = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	p[grid.End] = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	p[grid.Barrier] = color.RGBA{A: 255}
	p[grid.Open] = color.RGBA{G: 255, A: 255}
	p[grid.Closed] = color.RGBA{R: 255, A: 255}
	p[grid.Path] = color.RGBA{R: 128, B: 128, A: 255}
	return p
}

// LineColor is the grid-line grey.
var LineColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// fillPaletteRGBA converts cell state bytes into RGBA pixels using a
// palette. When the palette is empty the buffer is cleared to transparent
// black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
