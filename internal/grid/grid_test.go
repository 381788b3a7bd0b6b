package grid

import "testing"

func TestRecomputeNeighborsExcludesBarriers(t *testing.T) {
	g := New(5, 80)
	g.Cell(1, 2).State = Barrier
	g.RecomputeNeighbors()

	for _, nb := range g.Cell(2, 2).Neighbors() {
		if nb.Row == 1 && nb.Col == 2 {
			t.Fatalf("barrier (1,2) listed as neighbor of (2,2)")
		}
	}
	if got := len(g.Cell(2, 2).Neighbors()); got != 3 {
		t.Fatalf("neighbors of (2,2) = %d, want 3", got)
	}
}

func TestNeighborCountsByPosition(t *testing.T) {
	g := New(5, 80)
	g.RecomputeNeighbors()

	cases := []struct {
		row, col, want int
	}{
		{0, 0, 2},
		{4, 4, 2},
		{0, 2, 3},
		{2, 0, 3},
		{2, 2, 4},
	}
	for _, tc := range cases {
		if got := len(g.Cell(tc.row, tc.col).Neighbors()); got != tc.want {
			t.Errorf("neighbors of (%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestRecomputeNeighborsIdempotent(t *testing.T) {
	g := New(6, 96)
	g.Cell(3, 3).State = Barrier
	g.Cell(0, 5).State = Barrier
	g.RecomputeNeighbors()

	before := make(map[*Cell][]*Cell)
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell := g.Cell(r, c)
			before[cell] = append([]*Cell(nil), cell.Neighbors()...)
		}
	}

	g.RecomputeNeighbors()

	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell := g.Cell(r, c)
			after := cell.Neighbors()
			prev := before[cell]
			if len(after) != len(prev) {
				t.Fatalf("(%d,%d): neighbor count changed %d -> %d", r, c, len(prev), len(after))
			}
			for i := range after {
				if after[i] != prev[i] {
					t.Fatalf("(%d,%d): neighbor %d changed", r, c, i)
				}
			}
		}
	}
}

func TestResetRecreatesEmptyCells(t *testing.T) {
	g := New(4, 64)
	old := g.Cell(1, 1)
	old.State = Barrier
	g.Reset()

	if g.Cell(1, 1) == old {
		t.Fatal("Reset kept an old cell instance")
	}
	for _, s := range g.Cells() {
		if State(s) != Empty {
			t.Fatalf("cell state %v after Reset, want Empty", State(s))
		}
	}
}

func TestCellsSnapshotIsRowMajor(t *testing.T) {
	g := New(3, 48)
	g.Cell(0, 1).State = Start
	g.Cell(2, 2).State = Barrier

	snap := g.Cells()
	if len(snap) != 9 {
		t.Fatalf("snapshot length = %d, want 9", len(snap))
	}
	if State(snap[1]) != Start {
		t.Errorf("snap[1] = %v, want Start", State(snap[1]))
	}
	if State(snap[8]) != Barrier {
		t.Errorf("snap[8] = %v, want Barrier", State(snap[8]))
	}
}

func TestFromPixel(t *testing.T) {
	g := New(50, 800) // 16px cells

	cases := []struct {
		x, y, row, col int
	}{
		{0, 0, 0, 0},
		{15, 15, 0, 0},
		{16, 0, 0, 1},
		{0, 16, 1, 0},
		{799, 799, 49, 49},
	}
	for _, tc := range cases {
		row, col := g.FromPixel(tc.x, tc.y)
		if row != tc.row || col != tc.col {
			t.Errorf("FromPixel(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, row, col, tc.row, tc.col)
		}
	}
}

func TestScatterDeterministicAndRoleSafe(t *testing.T) {
	build := func() *Grid {
		g := New(10, 160)
		g.Cell(0, 0).State = Start
		g.Cell(9, 9).State = End
		g.Scatter(7, 0.4)
		return g
	}

	a, b := build(), build()
	sa, sb := a.Cells(), b.Cells()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("same seed produced different layouts at index %d", i)
		}
	}

	if a.Cell(0, 0).State != Start || a.Cell(9, 9).State != End {
		t.Fatal("scatter overwrote an endpoint")
	}

	barriers := 0
	for _, s := range sa {
		if State(s) == Barrier {
			barriers++
		}
	}
	if barriers == 0 {
		t.Fatal("density 0.4 on 100 cells placed no barriers")
	}
}

func TestScatterDensityBounds(t *testing.T) {
	g := New(5, 80)
	g.Scatter(1, 0)
	for _, s := range g.Cells() {
		if State(s) != Empty {
			t.Fatal("density 0 placed a barrier")
		}
	}

	g.Scatter(1, 1)
	for _, s := range g.Cells() {
		if State(s) != Barrier {
			t.Fatal("density 1 left an empty cell")
		}
	}
}
