package app

import (
	"flag"
	"time"

	"lifegrid/internal/core"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int

	// ScreenW and ScreenH set the window size. Zero fits the board.
	ScreenW int
	ScreenH int

	Tick    time.Duration
	TPS     int
	Seed    int64
	Density float64
	Workers int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    100,
		Height:   100,
		CellSize: 10,
		Tick:     core.DefaultTick,
		TPS:      120,
		Seed:     42,
		Workers:  1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.ScreenW, "screen-w", c.ScreenW, "window width in pixels (0 fits the board)")
	fs.IntVar(&c.ScreenH, "screen-h", c.ScreenH, "window height in pixels (0 fits the board)")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "delay between generations while running")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random board")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live cell fraction (0 starts empty)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
}

// Validate reports the first setting that cannot produce a working board.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(core.ErrInvalidDimension, "board %dx%d", c.Width, c.Height)
	case c.CellSize < 2:
		return errors.Errorf("cell size %d too small, need at least 2 pixels", c.CellSize)
	case c.ScreenW < 0 || c.ScreenH < 0:
		return errors.Errorf("negative window size %dx%d", c.ScreenW, c.ScreenH)
	case c.Tick <= 0:
		return errors.Errorf("tick must be positive, got %s", c.Tick)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %g outside [0, 1]", c.Density)
	case c.Workers < 1:
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// ScreenSize returns the window size, growing it to fit the board when the
// configured size is unset or too small.
func (c *Config) ScreenSize() (int, int) {
	bw, bh := c.Width*c.CellSize+1, c.Height*c.CellSize+1
	return max(c.ScreenW, bw), max(c.ScreenH, bh)
}
