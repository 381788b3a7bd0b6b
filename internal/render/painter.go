//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"pathviz/internal/grid"
)

// GridPainter updates a single RGBA image, one pixel per cell, and draws
// it scaled up to the cell size with grid lines on top.
type GridPainter struct {
	n       int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
	pixel   *ebiten.Image
}

// NewGridPainter allocates a painter for an n×n grid.
func NewGridPainter(n int) *GridPainter {
	gp := &GridPainter{
		n:       n,
		buf:     make([]byte, 4*n*n),
		palette: Palette(),
	}
	gp.img = ebiten.NewImage(n, n)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the grid snapshot into the painter image and draws it onto
// dst scaled by the per-cell pixel size, then overlays grid lines.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *grid.Grid) {
	cells := g.Cells()
	if len(cells) != gp.n*gp.n {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.ReplacePixels(gp.buf)

	gap := g.CellSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gap), float64(gap))
	dst.DrawImage(gp.img, op)

	gp.drawLines(dst, gap)
}

// drawLines stretches a 1×1 image into one-pixel rules between cells.
func (gp *GridPainter) drawLines(dst *ebiten.Image, gap int) {
	span := float64(gp.n * gap)
	for i := 0; i <= gp.n; i++ {
		at := float64(i * gap)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(span, 1)
		op.GeoM.Translate(0, at)
		op.ColorM.Scale(float64(LineColor.R)/255.0, float64(LineColor.G)/255.0, float64(LineColor.B)/255.0, 1)
		dst.DrawImage(gp.pixel, op)

		op = &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, span)
		op.GeoM.Translate(at, 0)
		op.ColorM.Scale(float64(LineColor.R)/255.0, float64(LineColor.G)/255.0, float64(LineColor.B)/255.0, 1)
		dst.DrawImage(gp.pixel, op)
	}
}
