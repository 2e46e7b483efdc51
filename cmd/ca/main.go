//go:build ebiten

package main

import (
	"errors"
	"log"

	"mad-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, anim := setup()
	game := app.New(anim, cfg)
	size := anim.Sim().Size()

	ebiten.SetWindowTitle("mad-life — " + anim.Sim().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	dumpFinal(cfg, anim.Sim())
}
