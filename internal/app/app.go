//go:build ebiten

package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"pathviz/internal/core"
	"pathviz/internal/grid"
	"pathviz/internal/render"
	"pathviz/internal/search"
	"pathviz/internal/ui"
)

type mode int

const (
	modeInstructions mode = iota
	modeEditing
	modeRunning
	modeFinished
)

// Game wires the grid, the search stepper, and the renderer into the
// ebiten.Game interface. Everything runs on the one game goroutine; the
// stepper is advanced inside Update and Draw observes whatever state it
// left behind, which is how intermediate search progress stays visible.
type Game struct {
	cfg     *Config
	grid    *grid.Grid
	painter *render.GridPainter
	overlay *ui.Overlay
	pacer   *core.FixedStep

	start, end *grid.Cell
	stepper    *search.Stepper
	mode       mode
	found      bool
	scatters   int
}

// New constructs a Game for the provided configuration. The configuration
// must already be normalized.
func New(cfg *Config) *Game {
	return &Game{
		cfg:     cfg,
		grid:    grid.New(cfg.Rows, cfg.Width),
		painter: render.NewGridPainter(cfg.Rows),
		overlay: ui.NewOverlay(cfg.Width),
		pacer:   core.NewFixedStep(cfg.SPS),
		mode:    modeInstructions,
	}
}

// Reset discards the grid and all run state and returns to editing.
func (g *Game) Reset() {
	g.grid.Reset()
	g.start, g.end = nil, nil
	g.stepper = nil
	g.found = false
	g.mode = modeEditing
}

// Update handles one tick of input and, during a run, advances the search.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch g.mode {
	case modeInstructions:
		if g.overlay.StartClicked() {
			g.mode = modeEditing
		}
	case modeEditing:
		g.handleEditing()
	case modeRunning:
		g.advanceSearch()
	case modeFinished:
		if g.overlay.QuitClicked() {
			return ebiten.Termination
		}
		if g.overlay.RestartClicked() || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.Reset()
		}
	}
	return nil
}

// handleEditing applies mouse painting and editing commands.
func (g *Game) handleEditing() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.paint(g.cellUnderCursor())
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.clear(g.cellUnderCursor())
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.startRun()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		// A fresh sub-seed per scatter so repeated presses add new walls.
		g.grid.Scatter(g.cfg.Seed+int64(g.scatters), g.cfg.Density)
		g.scatters++
	}
}

// paint assigns roles in priority order: start first, then end, then
// barriers. Start and end are never overwritten by a barrier edit.
func (g *Game) paint(c *grid.Cell) {
	switch {
	case g.start == nil && c != g.end:
		g.start = c
		c.State = grid.Start
	case g.end == nil && c != g.start:
		g.end = c
		c.State = grid.End
	case c != g.start && c != g.end:
		c.State = grid.Barrier
	}
}

// clear empties a cell and releases its start/end role if it held one.
func (g *Game) clear(c *grid.Cell) {
	c.State = grid.Empty
	if c == g.start {
		g.start = nil
	} else if c == g.end {
		g.end = nil
	}
}

// startRun begins a search if both endpoints are set; otherwise the
// trigger is a no-op.
func (g *Game) startRun() {
	if g.start == nil || g.end == nil {
		log.Debug("run ignored: start or end not set")
		return
	}
	g.grid.RecomputeNeighbors()
	g.stepper = search.NewStepper(g.start, g.end)
	g.pacer.SetRate(g.cfg.SPS)
	g.pacer.Reset()
	g.mode = modeRunning
	log.WithFields(log.Fields{
		"rows":  g.grid.Size(),
		"start": fmt.Sprintf("(%d,%d)", g.start.Row, g.start.Col),
		"end":   fmt.Sprintf("(%d,%d)", g.end.Row, g.end.Col),
	}).Info("search started")
}

// advanceSearch runs the owed steps for this tick, then settles the run
// once the stepper reports it is over.
func (g *Game) advanceSearch() {
	for i := stepsPerTick(g.cfg.SPS, g.pacer); i > 0 && !g.stepper.Done(); i-- {
		g.stepper.Step()
	}
	if !g.stepper.Done() {
		return
	}
	g.found = g.stepper.Found()
	g.mode = modeFinished
	log.WithFields(log.Fields{
		"found":    g.found,
		"expanded": g.stepper.Expanded(),
		"pathLen":  g.stepper.PathLen(),
	}).Info("search finished")
}

// Draw renders the grid and whichever overlay the current mode calls for.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.mode == modeInstructions {
		g.overlay.DrawInstructions(screen)
		return
	}

	g.painter.Blit(screen, g.grid)
	g.overlay.DrawStatus(screen, g.statusLine())
	if g.mode == modeFinished {
		g.overlay.DrawRunControls(screen)
	}
}

func (g *Game) statusLine() string {
	switch g.mode {
	case modeEditing:
		return "click: place start / end / barriers   space: search   r: reset   m: scatter"
	case modeRunning:
		return fmt.Sprintf("searching...   expanded=%d", g.stepper.Expanded())
	case modeFinished:
		if g.found {
			return fmt.Sprintf("path found   length=%d   expanded=%d", g.stepper.PathLen(), g.stepper.Expanded())
		}
		return fmt.Sprintf("no path exists   expanded=%d", g.stepper.Expanded())
	}
	return ""
}

// cellUnderCursor maps the cursor to its grid cell, clamped to the edge
// when the cursor leaves the window.
func (g *Game) cellUnderCursor() *grid.Cell {
	x, y := ebiten.CursorPosition()
	row, col := g.grid.FromPixel(x, y)
	n := g.grid.Size()
	row = clamp(row, 0, n-1)
	col = clamp(col, 0, n-1)
	return g.grid.Cell(row, col)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Width
}
