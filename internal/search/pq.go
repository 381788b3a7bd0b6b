package search

import "pathviz/internal/grid"

// item is one frontier entry. seq is a strictly increasing insertion
// counter used as the secondary ordering key, so entries with equal fScore
// pop in FIFO order and the expansion order is fully deterministic.
type item struct {
	cell   *grid.Cell
	fScore int
	seq    int
	index  int
}

// frontier is a min-heap over (fScore, seq).
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].fScore != f[j].fScore {
		return f[i].fScore < f[j].fScore
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	it := x.(*item)
	it.index = len(*f)
	*f = append(*f, it)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return it
}
