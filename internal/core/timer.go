package core

import "time"

// DefaultTick is the delay between generations when none is configured.
const DefaultTick = 250 * time.Millisecond

// FixedStep decouples the generation cadence from the frame rate: the driver
// polls it every frame and steps the grid whenever a full interval has passed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. The first
// poll fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// WithClock replaces the time source. Used by tests.
func (f *FixedStep) WithClock(now func() time.Time) *FixedStep {
	f.now = now
	return f
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTick
	}
	f.step = interval
}

// Interval returns the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset drops any accumulated time, so that resuming after a pause waits a
// full interval instead of bursting.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
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
		return true
	}
	return false
}
