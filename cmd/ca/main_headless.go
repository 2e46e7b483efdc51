//go:build !ebiten

package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"mad-life/internal/render"
)

// Without the ebiten tag the animation is drawn in the terminal. Build with
// `-tags ebiten` for the window.
func main() {
	cfg, anim := setup()

	term := render.NewTerminal(os.Stdout)
	term.FlipY = cfg.FlipY()
	term.Clear = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := anim.Run(ctx, term); err != nil {
		log.Fatal(err)
	}
	dumpFinal(cfg, anim.Sim())
}
