package grid

import "math/rand/v2"

// Scatter turns a random fraction of Empty cells into barriers. density is
// clamped to [0, 1]. Start, End, and existing barriers are left alone, so
// repeated scatters only ever add. The same seed and grid contents produce
// the same layout.
func (g *Grid) Scatter(seed int64, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for _, row := range g.cells {
		for _, c := range row {
			if c.State != Empty {
				continue
			}
			if rng.Float64() < density {
				c.State = Barrier
			}
		}
	}
}
