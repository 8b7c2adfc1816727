//go:build !ebiten

package ui

// HUD is a placeholder for the headless build.
type HUD struct{}

// NewHUD constructs the placeholder HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, string) {}
