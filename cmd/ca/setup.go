package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
	_ "mad-life/internal/sims/life"
)

type dumper interface {
	Dump(w io.Writer) error
}

// setup parses the command line and builds the animation, exiting on any
// construction error.
func setup() (*app.Config, *app.Animation) {
	cfg, err := app.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	size := sim.Size()
	log.Printf("%s %dx%d, %d frames every %v", sim.Name(), size.W, size.H, cfg.Frames, time.Duration(cfg.Interval))
	return cfg, app.NewAnimation(sim, time.Duration(cfg.Interval), cfg.Frames)
}

// dumpFinal prints the last generation when -dump was given.
func dumpFinal(cfg *app.Config, sim core.Sim) {
	if !cfg.Dump {
		return
	}
	d, ok := sim.(dumper)
	if !ok {
		log.Printf("%s does not support -dump", sim.Name())
		return
	}
	if err := d.Dump(os.Stdout); err != nil {
		log.Printf("dump: %v", err)
	}
}
