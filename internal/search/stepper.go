package search

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"pathviz/internal/grid"
)

// Heuristic is the Manhattan distance between two cells. It is admissible
// and consistent for 4-directional unit-cost grids, which guarantees the
// discovered path is optimal.
func Heuristic(a, b *grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type phase int

const (
	phaseSearching phase = iota
	phaseTracing
	phaseDone
)

// Stepper runs one A* search over unit-cost edges, one observable state
// change per Step call: first one frontier expansion per call, then (on
// success) one path-cell marking per call. All state is scoped to the run
// and discarded with the Stepper.
//
// Neighbor lists must be up to date before the first Step; the stepper
// never recomputes them.
type Stepper struct {
	start, end *grid.Cell

	open     frontier
	inOpen   mapset.Set[*grid.Cell]
	gScore   map[*grid.Cell]int
	cameFrom map[*grid.Cell]*grid.Cell
	seq      int

	trace    *grid.Cell
	ph       phase
	found    bool
	expanded int
	pathLen  int
}

// NewStepper prepares a run from start to end. The frontier holds only
// start; every other cell is conceptually at infinite gScore until
// discovered.
func NewStepper(start, end *grid.Cell) *Stepper {
	s := &Stepper{
		start:    start,
		end:      end,
		inOpen:   mapset.New[*grid.Cell](),
		gScore:   map[*grid.Cell]int{start: 0},
		cameFrom: make(map[*grid.Cell]*grid.Cell),
	}
	heap.Push(&s.open, &item{cell: start, fScore: Heuristic(start, end)})
	s.inOpen.Put(start)
	return s
}

// Step advances the run by one state change and reports whether the run is
// over and whether a path was found. found turns true the moment the end
// cell is popped from the frontier; done stays false until every path cell
// has been marked (or the frontier is exhausted).
func (s *Stepper) Step() (done, found bool) {
	switch s.ph {
	case phaseDone:
		return true, s.found
	case phaseTracing:
		s.tracePath()
		return s.ph == phaseDone, s.found
	}

	if s.open.Len() == 0 {
		s.ph = phaseDone
		return true, false
	}

	c := heap.Pop(&s.open).(*item).cell
	s.inOpen.Remove(c)
	s.expanded++

	if c == s.end {
		// Success the instant the end cell is popped, not when first
		// discovered. Restore its state; frontier marking turned it Open.
		c.State = grid.End
		s.found = true
		s.pathLen = s.gScore[c]
		s.trace = s.cameFrom[c]
		s.ph = phaseTracing
		if s.trace == nil || s.trace == s.start {
			s.ph = phaseDone
		}
		return s.ph == phaseDone, true
	}

	// Read the live score, not the one snapshotted into the heap entry: a
	// queued cell's gScore can improve without its entry being re-keyed,
	// and the improvement must propagate on expansion.
	curG := s.gScore[c]
	for _, nb := range c.Neighbors() {
		tentative := curG + 1
		if best, seen := s.gScore[nb]; seen && tentative >= best {
			continue
		}
		// Strictly better. Closed cells are eligible too; with a
		// consistent heuristic this never fires after closing, but the
		// relaxation is kept for correctness under other heuristics.
		s.cameFrom[nb] = c
		s.gScore[nb] = tentative
		if !s.inOpen.Has(nb) {
			s.seq++
			heap.Push(&s.open, &item{
				cell:   nb,
				fScore: tentative + Heuristic(nb, s.end),
				seq:    s.seq,
			})
			s.inOpen.Put(nb)
			if nb != s.start {
				nb.State = grid.Open
			}
		}
	}

	if c != s.start {
		c.State = grid.Closed
	}
	return false, false
}

// tracePath marks one cameFrom ancestor per call, walking from the end
// back toward the start. The start cell keeps its state.
func (s *Stepper) tracePath() {
	c := s.trace
	if c == nil || c == s.start {
		s.ph = phaseDone
		return
	}
	c.State = grid.Path
	s.trace = s.cameFrom[c]
	if s.trace == nil || s.trace == s.start {
		s.ph = phaseDone
	}
}

// Done reports whether the run is over.
func (s *Stepper) Done() bool { return s.ph == phaseDone }

// Found reports whether the end cell has been reached.
func (s *Stepper) Found() bool { return s.found }

// Expanded returns how many cells have been popped from the frontier.
func (s *Stepper) Expanded() int { return s.expanded }

// PathLen returns the number of edges on the discovered path, or 0 when no
// path has been found.
func (s *Stepper) PathLen() int { return s.pathLen }
