//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD draws a one-line status readout over the grid. H toggles visibility.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the stats line onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, s Stats) {
	if !h.visible {
		return
	}
	state := "paused"
	if s.Playing {
		state = "playing"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  pop %d  %v  %s",
		s.Generation, s.Population, s.Interval, state))
}
