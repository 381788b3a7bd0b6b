package grid

import "fmt"

// State is the lifecycle state of a single cell. It is byte-sized so a
// whole grid can be exposed as a flat []uint8 snapshot for rendering.
type State uint8

const (
	// Empty is an untouched, passable cell.
	Empty State = iota
	// Start is the cell a search begins from.
	Start
	// End is the cell a search targets.
	End
	// Barrier is an impassable cell.
	Barrier
	// Open marks a cell currently on the search frontier.
	Open
	// Closed marks a cell whose neighbors have been fully processed.
	Closed
	// Path marks a cell on the reconstructed shortest path.
	Path

	// NumStates is the number of distinct cell states.
	NumStates
)

// String returns a short human-readable name for the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case End:
		return "end"
	case Barrier:
		return "barrier"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Cell is one square of the grid. Row and Col are fixed at creation; State
// changes through user edits and search progress. The neighbor list is
// rebuilt only by Grid.RecomputeNeighbors and is stale after barrier edits
// until the next recompute pass.
type Cell struct {
	Row, Col  int
	State     State
	neighbors []*Cell
}

// Neighbors returns the passable orthogonal neighbors as of the last
// recompute pass.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// Grid is a square matrix of cells plus the pixel width it is rendered
// into. The per-cell pixel size is width/n by integer division.
type Grid struct {
	n     int
	width int
	cells [][]*Cell
}

// New allocates an n×n grid of Empty cells rendered into width pixels.
func New(n, width int) *Grid {
	if n <= 0 {
		n = 1
	}
	g := &Grid{n: n, width: width}
	g.Reset()
	return g
}

// Size returns the number of rows (and columns).
func (g *Grid) Size() int { return g.n }

// CellSize returns the pixel size of one cell.
func (g *Grid) CellSize() int { return g.width / g.n }

// Cell returns the cell at (row, col). Passing an out-of-range coordinate
// is a programming error and panics; callers clamp first.
func (g *Grid) Cell(row, col int) *Cell {
	return g.cells[row][col]
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// FromPixel maps a pixel position to the (row, col) it falls in by integer
// division. The result is unclamped; callers must check InBounds or clamp.
func (g *Grid) FromPixel(x, y int) (row, col int) {
	gap := g.CellSize()
	return y / gap, x / gap
}

// Reset discards every cell and recreates the grid as all-Empty. Callers
// holding Start/End references must drop them.
func (g *Grid) Reset() {
	g.cells = make([][]*Cell, g.n)
	for r := range g.cells {
		row := make([]*Cell, g.n)
		for c := range row {
			row[c] = &Cell{Row: r, Col: c}
		}
		g.cells[r] = row
	}
}

// RecomputeNeighbors rebuilds every cell's adjacency list from the four
// orthogonal directions, excluding out-of-bounds positions and barriers.
// Must run after any batch of barrier edits and before a search; the
// search engine never calls it itself. Idempotent.
func (g *Grid) RecomputeNeighbors() {
	for _, row := range g.cells {
		for _, c := range row {
			c.neighbors = c.neighbors[:0]
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nr, nc := c.Row+d[0], c.Col+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				if n := g.cells[nr][nc]; n.State != Barrier {
					c.neighbors = append(c.neighbors, n)
				}
			}
		}
	}
}

// Cells returns a row-major snapshot of every cell's state, suitable for
// the palette blitter.
func (g *Grid) Cells() []uint8 {
	buf := make([]uint8, 0, g.n*g.n)
	for _, row := range g.cells {
		for _, c := range row {
			buf = append(buf, uint8(c.State))
		}
	}
	return buf
}
