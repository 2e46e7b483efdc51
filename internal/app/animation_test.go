package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"mad-life/internal/core"
)

type countingSim struct {
	steps  int
	resets []int64
}

func (s *countingSim) Name() string { return "counting" }
func (s *countingSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (s *countingSim) Reset(seed int64) {
	s.steps = 0
	s.resets = append(s.resets, seed)
}
func (s *countingSim) Step() { s.steps++ }
func (s *countingSim) Cells() []uint8 { return []uint8{uint8(s.steps % 2)} }

type recorder struct {
	frames []int
	steps  []int
	onDraw func(frame int) error
}

func (r *recorder) Render(frame int, sim core.Sim) error {
	r.frames = append(r.frames, frame)
	r.steps = append(r.steps, sim.(*countingSim).steps)
	if r.onDraw != nil {
		return r.onDraw(frame)
	}
	return nil
}

func TestRunStopsAtFrameLimit(t *testing.T) {
	sim := &countingSim{}
	anim := NewAnimation(sim, time.Millisecond, 5)
	rec := &recorder{}

	if err := anim.Run(context.Background(), rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sim.steps != 5 || anim.Frame() != 5 || !anim.Done() {
		t.Fatalf("steps = %d, frame = %d, done = %v", sim.steps, anim.Frame(), anim.Done())
	}
	if len(rec.frames) != 6 {
		t.Fatalf("rendered %d frames, want seed plus 5", len(rec.frames))
	}
	for i := range rec.frames {
		if rec.frames[i] != i || rec.steps[i] != i {
			t.Fatalf("render %d saw frame %d after %d steps", i, rec.frames[i], rec.steps[i])
		}
	}
	if anim.StepOnce() {
		t.Fatal("StepOnce must refuse once the limit is reached")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sim := &countingSim{}
	anim := NewAnimation(sim, time.Millisecond, 0)
	rec := &recorder{onDraw: func(frame int) error {
		if frame == 3 {
			cancel()
		}
		return nil
	}}

	if err := anim.Run(ctx, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sim.steps != 3 {
		t.Fatalf("steps = %d, want 3", sim.steps)
	}
}

func TestRunTreatsErrStoppedAsCleanExit(t *testing.T) {
	sim := &countingSim{}
	anim := NewAnimation(sim, time.Millisecond, 100)
	rec := &recorder{onDraw: func(frame int) error {
		if frame == 2 {
			return ErrStopped
		}
		return nil
	}}

	if err := anim.Run(context.Background(), rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sim.steps != 2 || !anim.Done() {
		t.Fatalf("steps = %d, done = %v", sim.steps, anim.Done())
	}

	anim.Reset(9)
	if anim.Done() || anim.Frame() != 0 {
		t.Fatal("Reset must clear the stop and frame count")
	}
}

func TestRunReturnsRendererErrors(t *testing.T) {
	boom := errors.New("boom")
	anim := NewAnimation(&countingSim{}, time.Millisecond, 10)
	rec := &recorder{onDraw: func(frame int) error {
		if frame == 1 {
			return boom
		}
		return nil
	}}
	if err := anim.Run(context.Background(), rec); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestAdvanceWaitsForInterval(t *testing.T) {
	sim := &countingSim{}
	anim := NewAnimation(sim, time.Hour, 0)

	if !anim.Advance() {
		t.Fatal("first Advance should step immediately")
	}
	for i := 0; i < 3; i++ {
		if anim.Advance() {
			t.Fatal("Advance stepped before the interval elapsed")
		}
	}
	if !anim.StepOnce() || sim.steps != 2 {
		t.Fatalf("StepOnce should bypass the timer, steps = %d", sim.steps)
	}

	anim.Reset(4)
	if len(sim.resets) != 1 || sim.resets[0] != 4 {
		t.Fatalf("resets = %v", sim.resets)
	}
	if !anim.Advance() {
		t.Fatal("Advance should fire right after Reset")
	}
	if anim.Frames() != 0 || anim.Interval() != time.Hour {
		t.Fatalf("frames = %d, interval = %v", anim.Frames(), anim.Interval())
	}
}
