package app

import "pathviz/internal/core"

// stepsPerTick returns how many search steps are owed this tick. A
// configured rate of zero or less is unpaced: exactly one step per tick,
// without consulting the pacer.
func stepsPerTick(sps int, pacer *core.FixedStep) int {
	if sps <= 0 {
		return 1
	}
	n := 0
	for pacer.ShouldStep() {
		n++
	}
	return n
}
