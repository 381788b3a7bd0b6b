//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	inkColor    = color.RGBA{A: 255}
	startBg     = color.RGBA{G: 255, A: 255}
	restartBg   = color.RGBA{G: 255, A: 255}
	quitBg      = color.RGBA{R: 255, A: 255}
	statusColor = color.RGBA{R: 90, G: 90, B: 100, A: 255}
)

// button is a screen rectangle with a centered label.
type button struct {
	rect  image.Rectangle
	label string
	bg    color.RGBA
}

// Overlay draws the instruction screen, the post-run controls, and a
// status line on top of the grid view. Button geometry scales with the
// window width.
type Overlay struct {
	width int
	pixel *ebiten.Image

	startBtn   button
	restartBtn button
	quitBtn    button
}

// NewOverlay constructs an overlay for a square window of the given width.
func NewOverlay(width int) *Overlay {
	o := &Overlay{width: width}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)

	// Proportions chosen for an 800px window and scaled from there.
	top := width * 570 / 800
	bottom := width * 630 / 800
	o.startBtn = button{
		rect:  image.Rect(width*350/800, top, width*450/800, bottom),
		label: "Start",
		bg:    startBg,
	}
	o.restartBtn = button{
		rect:  image.Rect(width*240/800, top, width*360/800, bottom),
		label: "Restart",
		bg:    restartBg,
	}
	o.quitBtn = button{
		rect:  image.Rect(width*440/800, top, width*560/800, bottom),
		label: "Quit",
		bg:    quitBg,
	}
	return o
}

// DrawInstructions paints the welcome screen with usage help and the
// Start button.
func (o *Overlay) DrawInstructions(screen *ebiten.Image) {
	screen.Fill(color.White)

	o.drawCentered(screen, "Welcome to the A* Pathfinder", o.width*100/800)

	lines := []string{
		"Instructions:",
		"1. Left-click to place the start cell (pink).",
		"2. Left-click again to place the end cell (blue).",
		"3. Further left-clicks paint barrier cells (black).",
		"4. Right-click to clear a cell.",
		"5. Press M to scatter random barriers.",
		"6. Press Space to run the search, R to reset, Q to quit.",
		"",
		"Press 'Start' to begin!",
	}
	y := o.width * 200 / 800
	for _, line := range lines {
		o.drawCentered(screen, line, y)
		y += 28
	}

	o.drawButton(screen, o.startBtn)
}

// DrawRunControls paints the Restart and Quit buttons shown once a run
// has finished.
func (o *Overlay) DrawRunControls(screen *ebiten.Image) {
	o.drawButton(screen, o.restartBtn)
	o.drawButton(screen, o.quitBtn)
}

// DrawStatus paints a single status line in the top-left corner.
func (o *Overlay) DrawStatus(screen *ebiten.Image, line string) {
	if line == "" {
		return
	}
	text.Draw(screen, line, basicfont.Face7x13, 6, 16, statusColor)
}

// StartClicked reports whether the Start button was clicked this tick.
func (o *Overlay) StartClicked() bool { return clicked(o.startBtn.rect) }

// RestartClicked reports whether the Restart button was clicked this tick.
func (o *Overlay) RestartClicked() bool { return clicked(o.restartBtn.rect) }

// QuitClicked reports whether the Quit button was clicked this tick.
func (o *Overlay) QuitClicked() bool { return clicked(o.quitBtn.rect) }

func clicked(rect image.Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return pointInRect(mx, my, rect)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func (o *Overlay) drawButton(screen *ebiten.Image, b button) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.rect.Dx()), float64(b.rect.Dy()))
	op.GeoM.Translate(float64(b.rect.Min.X), float64(b.rect.Min.Y))
	op.ColorM.Scale(float64(b.bg.R)/255.0, float64(b.bg.G)/255.0, float64(b.bg.B)/255.0, float64(b.bg.A)/255.0)
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.label)
	x := b.rect.Min.X + (b.rect.Dx()-bounds.Dx())/2
	y := b.rect.Min.Y + (b.rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, b.label, face, x, y, inkColor)
}

func (o *Overlay) drawCentered(screen *ebiten.Image, line string, y int) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	x := (o.width - bounds.Dx()) / 2
	text.Draw(screen, line, face, x, y, inkColor)
}
