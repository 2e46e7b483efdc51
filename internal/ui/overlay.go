//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type countedMaskProvider interface {
	CountedMask() []uint8
}

// frozenCode is the cell value drawn for frozen cells.
const frozenCode = 2

var (
	// Premultiplied alpha.
	excludedTint = color.RGBA{R: 90, A: 90}
	frozenTint   = color.RGBA{B: 160, A: 160}
)

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 tints cells that never count as neighbors, key 2 marks frozen cells.
type Overlay struct {
	sim          core.Sim
	scale        int
	showExcluded bool
	showFrozen   bool

	excluded *render.GridPainter
	frozen   *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int, flipY bool) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:      sim,
		scale:    scale,
		excluded: render.NewGridPainter(size.W, size.H, flipY),
		frozen:   render.NewGridPainter(size.W, size.H, flipY),
	}
}

// Update toggles the overlays from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showExcluded = !o.showExcluded
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFrozen = !o.showFrozen
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showExcluded {
		if provider, ok := o.sim.(countedMaskProvider); ok {
			o.excluded.BlitMatch(screen, provider.CountedMask(), func(v uint8) bool { return v == 0 }, excludedTint, scale)
		}
	}
	if o.showFrozen {
		o.frozen.BlitMatch(screen, o.sim.Cells(), func(v uint8) bool { return v == frozenCode }, frozenTint, scale)
	}
}
