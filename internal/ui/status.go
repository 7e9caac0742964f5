package ui

import "fmt"

// Status is the simulation summary shown on screen.
type Status struct {
	Generation int
	Population int
	Paused     bool
}

func (s Status) String() string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  pop %d  %s", s.Generation, s.Population, state)
}
