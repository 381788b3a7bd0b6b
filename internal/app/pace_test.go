package app

import (
	"testing"

	"pathviz/internal/core"
)

func TestStepsPerTickUnpaced(t *testing.T) {
	// A nil pacer proves the zero-rate branch never consults it.
	if got := stepsPerTick(0, nil); got != 1 {
		t.Fatalf("sps=0 owes %d steps per tick, want 1", got)
	}
	if got := stepsPerTick(-5, nil); got != 1 {
		t.Fatalf("sps=-5 owes %d steps per tick, want 1", got)
	}
}

func TestStepsPerTickDrainsPacer(t *testing.T) {
	pacer := core.NewFixedStep(1)
	if got := stepsPerTick(1, pacer); got < 1 {
		t.Fatalf("fresh pacer owes %d steps, want at least 1", got)
	}
	// The drain leaves no banked credit behind.
	if pacer.ShouldStep() {
		t.Fatal("pacer still owed a step immediately after draining")
	}
}
