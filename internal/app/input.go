package app

import (
	"lifegrid/internal/core"

	"github.com/pkg/errors"
)

// Board places a W x H grid of Cell-pixel squares at (X, Y) in window space.
type Board struct {
	X, Y int
	W, H int
	Cell int
}

// CenteredBoard centers a w x h board in a screen of the given size.
func CenteredBoard(screenW, screenH, w, h, cell int) Board {
	b := Board{W: w, H: h, Cell: cell}
	pw, ph := b.PixelSize()
	b.X = max(0, (screenW-pw)/2)
	b.Y = max(0, (screenH-ph)/2)
	return b
}

// PixelSize returns the board size in pixels including the closing grid line.
func (b Board) PixelSize() (int, int) {
	return b.W*b.Cell + 1, b.H*b.Cell + 1
}

// CellAt maps a window pixel to a cell. ok is false when the pixel lies
// outside the board.
func (b Board) CellAt(px, py int) (x, y int, ok bool) {
	if b.Cell <= 0 {
		return 0, 0, false
	}
	dx, dy := px-b.X, py-b.Y
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	x, y = dx/b.Cell, dy/b.Cell
	if x >= b.W || y >= b.H {
		return 0, 0, false
	}
	return x, y, true
}

// Toggler is the part of the grid the pointer editor writes to.
type Toggler interface {
	Toggle(x, y int) error
}

// Editor turns a held mouse button into cell toggles. Dragging across the
// board toggles each cell once as the pointer enters it.
type Editor struct {
	last    [2]int
	hasLast bool
}

// Press handles the button being down at pixel (px, py). Pixels off the board
// are ignored.
func (e *Editor) Press(t Toggler, b Board, px, py int) error {
	x, y, ok := b.CellAt(px, py)
	if !ok {
		return nil
	}
	if e.hasLast && e.last == [2]int{x, y} {
		return nil
	}
	if err := t.Toggle(x, y); err != nil {
		if errors.Is(err, core.ErrOutOfBounds) {
			return nil
		}
		return err
	}
	e.last = [2]int{x, y}
	e.hasLast = true
	return nil
}

// Release forgets the last toggled cell so the next press toggles again.
func (e *Editor) Release() {
	e.hasLast = false
}
