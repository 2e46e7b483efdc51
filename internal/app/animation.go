package app

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"mad-life/internal/core"
)

// ErrStopped may be returned by a Renderer to end the animation without
// reporting a failure, e.g. when its window was closed.
var ErrStopped = errors.New("animation stopped")

// Renderer displays a sim's cells after each generation.
type Renderer interface {
	Render(frame int, sim core.Sim) error
}

// Animation advances a sim at a fixed interval for a bounded number of
// frames. It is the sim's only writer; renderers read between steps.
type Animation struct {
	sim    core.Sim
	timer  *core.FixedStep
	frames int
	frame  int

	stopped bool
}

// NewAnimation drives sim every interval for frames generations. frames <= 0
// runs until stopped.
func NewAnimation(sim core.Sim, interval time.Duration, frames int) *Animation {
	return &Animation{sim: sim, timer: core.NewFixedStep(interval), frames: frames}
}

// Sim returns the driven simulation.
func (a *Animation) Sim() core.Sim { return a.sim }

// Frame returns the number of generations stepped since the last reset.
func (a *Animation) Frame() int { return a.frame }

// Frames returns the frame limit, or 0 when unbounded.
func (a *Animation) Frames() int {
	if a.frames < 0 {
		return 0
	}
	return a.frames
}

// Interval returns the time between generations.
func (a *Animation) Interval() time.Duration { return a.timer.Interval() }

// Done reports whether the frame limit has been reached or a renderer asked
// to stop.
func (a *Animation) Done() bool {
	return a.stopped || (a.frames > 0 && a.frame >= a.frames)
}

// StepOnce advances one generation unless the animation is done.
func (a *Animation) StepOnce() bool {
	if a.Done() {
		return false
	}
	a.sim.Step()
	a.frame++
	return true
}

// Advance steps once if the interval has elapsed since the previous step. It
// is meant to be called from a host loop running faster than the interval.
func (a *Animation) Advance() bool {
	if a.Done() || !a.timer.ShouldStep() {
		return false
	}
	return a.StepOnce()
}

// Reset reseeds the sim and restarts the frame count.
func (a *Animation) Reset(seed int64) {
	a.sim.Reset(seed)
	a.frame = 0
	a.stopped = false
	a.timer.Restart()
}

// Run renders the current generation, then steps and renders once per
// interval until the frame limit is reached, ctx is cancelled, or r returns
// ErrStopped. Any other renderer error ends the run and is returned.
func (a *Animation) Run(ctx context.Context, r Renderer) error {
	if err := a.render(r); err != nil {
		return err
	}
	ticker := time.NewTicker(a.timer.Interval())
	defer ticker.Stop()

	for !a.Done() {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		a.StepOnce()
		if err := a.render(r); err != nil {
			return err
		}
	}
	return nil
}

func (a *Animation) render(r Renderer) error {
	err := r.Render(a.frame, a.sim)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStopped):
		a.stopped = true
		return nil
	}
	return errors.Wrapf(err, "render frame %d", a.frame)
}
