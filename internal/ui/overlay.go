//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const pausedLabel = "Paused"

// Overlay draws the status line and the pause banner on top of the board.
type Overlay struct {
	face  font.Face
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{face: basicfont.Face7x13}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, status Status) {
	ebitenutil.DebugPrintAt(screen, status.String(), 4, 4)
	if status.Paused {
		o.drawBanner(screen)
	}
}

// drawBanner centers the pause label horizontally at two thirds of the
// screen height.
func (o *Overlay) drawBanner(screen *ebiten.Image) {
	bounds := screen.Bounds()
	label := text.BoundString(o.face, pausedLabel)
	cx := bounds.Dx() / 2
	cy := 2 * bounds.Dy() / 3
	x := cx - label.Dx()/2
	y := cy + label.Dy()/2

	const pad = 6
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(label.Dx()+2*pad), float64(label.Dy()+2*pad))
	op.GeoM.Translate(float64(x-pad), float64(y+label.Min.Y-pad))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 240, G: 240, B: 240, A: 220})
	screen.DrawImage(o.pixel, op)

	text.Draw(screen, pausedLabel, o.face, x, y, color.Black)
}
