package core

import "time"

// DefaultInterval is the tick cadence used when none is configured.
const DefaultInterval = 200 * time.Millisecond

// FixedStep gates simulation updates to a steady wall-clock interval while
// the host loop runs at its own, usually higher, rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. The first
// call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval reports the configured tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is reported per call; a stalled host loop does not
// trigger a burst of catch-up ticks.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Restart rearms the timer so the next ShouldStep fires immediately.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}
