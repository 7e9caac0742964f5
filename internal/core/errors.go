package core

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a cell address falls outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInternal signals a broken grid invariant. It is not recoverable.
	ErrInternal = errors.New("internal grid error")
)
