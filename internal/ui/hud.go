//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD draws the status line over the scene view.
type HUD struct{}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw prints the status text in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, status string) {
	ebitenutil.DebugPrint(screen, status)
}
