package app

import "lifegrid/internal/core"

// Stepper advances a simulation by one generation.
type Stepper interface {
	Step() error
}

// Controller owns play/pause state and decides when the grid advances. The
// grid itself knows nothing about pausing.
type Controller struct {
	clock   *core.FixedStep
	paused  bool
	pending bool
}

// NewController returns a paused controller driven by clock.
func NewController(clock *core.FixedStep) *Controller {
	return &Controller{clock: clock, paused: true}
}

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// TogglePause switches between running and paused.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	if !c.paused {
		c.clock.Reset()
	}
}

// RequestStep queues a single manual step for the next Advance.
func (c *Controller) RequestStep() { c.pending = true }

// Advance steps s at most once: for a queued manual step, or when running and
// the clock has fired. It reports whether a step happened.
func (c *Controller) Advance(s Stepper) (bool, error) {
	due := c.pending
	c.pending = false
	if !c.paused && c.clock.ShouldStep() {
		due = true
	}
	if !due {
		return false, nil
	}
	if err := s.Step(); err != nil {
		return false, err
	}
	return true, nil
}
