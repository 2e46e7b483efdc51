//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type dumper interface {
	Dump(w io.Writer) error
}

// Game adapts an Animation to the ebiten.Game interface. ebiten calls Update
// at the configured TPS; the animation only steps once per interval.
type Game struct {
	anim    *Animation
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided animation.
func New(anim *Animation, cfg *Config) *Game {
	size := anim.Sim().Size()
	return &Game{
		anim:     anim,
		painter:  render.NewGridPainter(size.W, size.H, cfg.FlipY()),
		overlay:  ui.NewOverlay(anim.Sim(), cfg.Scale, cfg.FlipY()),
		hud:      ui.NewHUD(anim.Sim(), cfg.HUD),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		hudWidth: cfg.HUD,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.anim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if d, ok := g.anim.Sim().(dumper); ok {
			if err := d.Dump(os.Stderr); err != nil {
				log.Printf("dump: %v", err)
			}
		}
	}

	g.overlay.Update()

	switch {
	case g.tickOnce:
		g.anim.StepOnce()
		g.tickOnce = false
	case !g.paused:
		g.anim.Advance()
	}
	g.hud.Update(g.status())
	return nil
}

func (g *Game) status() string {
	state := "running"
	switch {
	case g.anim.Done():
		state = "done"
	case g.paused:
		state = "paused"
	}
	if limit := g.anim.Frames(); limit > 0 {
		return fmt.Sprintf("frame %d/%d %s", g.anim.Frame(), limit, state)
	}
	return fmt.Sprintf("frame %d %s", g.anim.Frame(), state)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.anim.Sim()
	if p, ok := sim.(paletteProvider); ok {
		g.painter.BlitPalette(screen, sim.Cells(), p.Palette(), g.scale)
	} else {
		g.painter.Blit(screen, sim.Cells(), g.onColor, g.offColor, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.anim.Sim().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
