//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// DrawInstructions is a no-op in headless builds.
func (o *Overlay) DrawInstructions(any) {}

// DrawRunControls is a no-op in headless builds.
func (o *Overlay) DrawRunControls(any) {}

// DrawStatus is a no-op in headless builds.
func (o *Overlay) DrawStatus(any, string) {}

// StartClicked always reports false in headless builds.
func (o *Overlay) StartClicked() bool { return false }

// RestartClicked always reports false in headless builds.
func (o *Overlay) RestartClicked() bool { return false }

// QuitClicked always reports false in headless builds.
func (o *Overlay) QuitClicked() bool { return false }
