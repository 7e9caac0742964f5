package render

import "image/color"

// Palette holds the colours used to paint a board.
type Palette struct {
	Live   color.RGBA
	Dead   color.RGBA
	Border color.RGBA
}

// DefaultPalette is blue live cells on a light grey board with grey lines.
var DefaultPalette = Palette{
	Live:   color.RGBA{R: 66, G: 179, B: 245, A: 255},
	Dead:   color.RGBA{R: 201, G: 201, B: 201, A: 255},
	Border: color.RGBA{R: 128, G: 128, B: 128, A: 255},
}

// BoardPixels returns the image size for a w x h board of cell-pixel squares
// separated by one-pixel grid lines.
func BoardPixels(w, h, cell int) (int, int) {
	return w*cell + 1, h*cell + 1
}

// fillBoardRGBA paints binary cell data (0/1) into buf, which must hold
// 4*pw*ph bytes for the size returned by BoardPixels. Grid lines fall on
// every multiple of cell.
func fillBoardRGBA(buf []byte, cells []uint8, w, h, cell int, pal Palette) bool {
	pw, ph := BoardPixels(w, h, cell)
	if cell <= 0 || len(cells) != w*h || len(buf) != 4*pw*ph {
		return false
	}
	for py := 0; py < ph; py++ {
		rowLine := py%cell == 0
		cy := min(py/cell, h-1)
		for px := 0; px < pw; px++ {
			col := pal.Border
			if !rowLine && px%cell != 0 {
				col = pal.Dead
				if cells[cy*w+px/cell] != 0 {
					col = pal.Live
				}
			}
			base := (py*pw + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
	return true
}
