package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepCadence(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(100 * time.Millisecond).WithClock(clock.now)

	if !fs.ShouldStep() {
		t.Fatal("first poll should fire immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll without elapsed time should not fire")
	}
	clock.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before a full interval elapsed")
	}
	clock.advance(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full interval")
	}
}

func TestFixedStepResetWaitsFullInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(50 * time.Millisecond).WithClock(clock.now)
	fs.ShouldStep()

	clock.advance(10 * time.Second)
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("Reset should discard time that passed before it")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire one interval after Reset")
	}
}

func TestFixedStepDefaultsInterval(t *testing.T) {
	if got := NewFixedStep(0).Interval(); got != DefaultTick {
		t.Fatalf("Interval()=%v, expected %v", got, DefaultTick)
	}
	fs := NewFixedStep(time.Second)
	fs.SetInterval(-5)
	if fs.Interval() != DefaultTick {
		t.Fatalf("negative interval not replaced, got %v", fs.Interval())
	}
}
