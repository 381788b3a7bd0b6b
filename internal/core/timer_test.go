package core

import "testing"

func TestFixedStepOwesOneStepImmediately(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first poll should owe a step")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll at 1 sps fired immediately")
	}
}

func TestFixedStepResetRestoresInitialCredit(t *testing.T) {
	fs := NewFixedStep(1)
	fs.ShouldStep()
	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("poll after Reset should owe a step")
	}
}
