// Package search implements A* over a grid of unit-cost orthogonal edges,
// exposed both as a step-at-a-time Stepper for interactive callers and as
// a blocking Search loop with a per-step callback.
package search

import (
	"context"
	"errors"

	"pathviz/internal/grid"
)

var (
	// ErrNoEndpoint is returned when start or end is nil.
	ErrNoEndpoint = errors.New("search: start and end must both be set")
	// ErrSameCell is returned when start and end are the same cell.
	ErrSameCell = errors.New("search: start and end must be distinct cells")
	// ErrForeignCell is returned when start or end does not belong to the grid.
	ErrForeignCell = errors.New("search: cell does not belong to the grid")
)

// Search runs a full A* pass from start to end over g, invoking onStep
// exactly once after every state change (one per expansion, then one per
// path-cell marking). It reports whether a path was found.
//
// ctx is polled once per iteration; cancellation aborts immediately with
// ctx's error and leaves the grid in whatever partial state it reached.
// Neighbor lists must have been recomputed since the last barrier edit.
func Search(ctx context.Context, g *grid.Grid, start, end *grid.Cell, onStep func()) (bool, error) {
	if start == nil || end == nil {
		return false, ErrNoEndpoint
	}
	if start == end {
		return false, ErrSameCell
	}
	for _, c := range []*grid.Cell{start, end} {
		if !g.InBounds(c.Row, c.Col) || g.Cell(c.Row, c.Col) != c {
			return false, ErrForeignCell
		}
	}

	s := NewStepper(start, end)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		done, found := s.Step()
		if onStep != nil {
			onStep()
		}
		if done {
			return found, nil
		}
	}
}
