package core

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Grid is a bounded Game of Life board stored in row-major order. Neighbor
// lookups that fall outside the board count as dead; nothing wraps.
//
// The next generation is written into a scratch buffer from a frozen copy of
// the current one and the two buffers are swapped once every cell is done.
type Grid struct {
	w, h    int
	cur     []uint8
	nxt     []uint8
	workers int
	gen     int
}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithWorkers splits Step across n goroutines, each owning a band of rows.
// Values below 2 keep the serial path.
func WithWorkers(n int) Option {
	return func(g *Grid) {
		if n < 1 {
			n = 1
		}
		g.workers = n
	}
}

// New returns an all-dead grid of w*h cells.
func New(w, h int, opts ...Option) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", w, h)
	}
	cells := make([]uint8, w*h)
	g := &Grid{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells)), workers: 1}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the current generation for rendering. Callers must not write
// to it; use Toggle.
func (g *Grid) Cells() []uint8 { return g.cur }

// Generation reports how many steps have been committed since the grid was
// created, cleared or randomized.
func (g *Grid) Generation() int { return g.gen }

// Contains reports whether (x, y) addresses a cell.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.Contains(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d,%d) on %dx%d grid", x, y, g.w, g.h)
	}
	return y*g.w + x, nil
}

// IsAlive reports whether the cell at (x, y) is alive.
func (g *Grid) IsAlive(x, y int) (bool, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return false, err
	}
	return g.cur[idx] == 1, nil
}

// Toggle flips the cell at (x, y) between dead and alive.
func (g *Grid) Toggle(x, y int) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cur[idx] ^= 1
	return nil
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
	}
	g.gen = 0
}

// Randomize fills the board so that roughly density of the cells are alive.
// The same seed always produces the same board.
func (g *Grid) Randomize(seed int64, density float64) {
	FillDensity(NewRNG(seed), g.cur, density)
	g.gen = 0
}

// neighbors counts live cells among the up to eight cells around (x, y).
func (g *Grid) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		row := ny * g.w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			n += int(g.cur[row+nx])
		}
	}
	return n
}

// stepRows writes the next state of rows [y0, y1) into the scratch buffer.
func (g *Grid) stepRows(y0, y1 int) error {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			c := g.cur[idx]
			if c > 1 {
				return errors.Wrapf(ErrInternal, "cell (%d,%d) holds %d", x, y, c)
			}
			g.nxt[idx] = 0
			if NextState(c == 1, g.neighbors(x, y)) {
				g.nxt[idx] = 1
			}
		}
	}
	return nil
}

// Step advances the board by one generation. On error the current
// generation is left untouched.
func (g *Grid) Step() error {
	total := g.w * g.h
	if len(g.cur) != total || len(g.nxt) != total {
		return errors.Wrapf(ErrInternal, "buffers %d/%d, want %d", len(g.cur), len(g.nxt), total)
	}

	if g.workers <= 1 || g.h < 2 {
		if err := g.stepRows(0, g.h); err != nil {
			return err
		}
	} else {
		var (
			eg   errgroup.Group
			rows = (g.h + g.workers - 1) / g.workers
		)
		for y0 := 0; y0 < g.h; y0 += rows {
			y1 := min(y0+rows, g.h)
			eg.Go(func() error {
				return g.stepRows(y0, y1)
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	}

	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
	return nil
}
