//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     string
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// width of zero disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached parameter snapshot and the status line.
func (h *HUD) Update(status string) {
	if h == nil || h.width <= 0 {
		return
	}
	h.status = status
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
		return
	}
	h.snapshot = core.ParameterSnapshot{}
}

// Draw paints the HUD panel at offsetX, to the right of the grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	return fmt.Sprintf("%s status", sim.Name())
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += lineHeight
	text.Draw(h.panel, h.status, face, panelPadding, y, labelColor)

	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		if y > h.lastHeight {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		for _, param := range group.Params {
			y += lineHeight
			if y > h.lastHeight {
				return
			}
			text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
		}
	}
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor  = color.RGBA{R: 160, G: 200, B: 160, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 28
	headerBaseline = 18
)
