package core

// NextState applies Conway's rules (B3/S23) to a single cell: a live cell
// survives with two or three live neighbors, a dead cell is born with exactly
// three.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
