//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single RGBA image of the board in sync with cell data.
type GridPainter struct {
	w, h, cell int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a w x h board drawn at cell pixels
// per cell.
func NewGridPainter(w, h, cell int) *GridPainter {
	pw, ph := BoardPixels(w, h, cell)
	gp := &GridPainter{w: w, h: h, cell: cell, buf: make([]byte, 4*pw*ph)}
	gp.img = ebiten.NewImage(pw, ph)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it with
// its top-left corner at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, pal Palette, x, y int) {
	if !fillBoardRGBA(gp.buf, cells, gp.w, gp.h, gp.cell, pal) {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return BoardPixels(gp.w, gp.h, gp.cell) }
