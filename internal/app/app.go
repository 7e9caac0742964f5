//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// reseedDensity is used by the reseed key when the board started empty.
const reseedDensity = 0.25

// Game adapts a core grid to the ebiten.Game interface.
type Game struct {
	grid    *core.Grid
	ctrl    *Controller
	editor  Editor
	board   Board
	painter *render.GridPainter
	overlay *ui.Overlay
	palette render.Palette

	screenW, screenH int
	density          float64
}

// New constructs a Game for the provided grid.
func New(grid *core.Grid, cfg *Config) *Game {
	size := grid.Size()
	sw, sh := cfg.ScreenSize()
	density := cfg.Density
	if density <= 0 {
		density = reseedDensity
	}
	return &Game{
		grid:    grid,
		ctrl:    NewController(core.NewFixedStep(cfg.Tick)),
		board:   CenteredBoard(sw, sh, size.W, size.H, cfg.CellSize),
		painter: render.NewGridPainter(size.W, size.H, cfg.CellSize),
		overlay: ui.NewOverlay(),
		palette: render.DefaultPalette,
		screenW: sw,
		screenH: sh,
		density: density,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyPause) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.grid.Randomize(time.Now().UnixNano(), g.density)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		if err := g.editor.Press(g.grid, g.board, px, py); err != nil {
			return err
		}
	} else {
		g.editor.Release()
	}

	_, err := g.ctrl.Advance(g.grid)
	return err
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.grid.Cells(), g.palette, g.board.X, g.board.Y)
	g.overlay.Draw(screen, ui.Status{
		Generation: g.grid.Generation(),
		Population: g.grid.Population(),
		Paused:     g.ctrl.Paused(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
