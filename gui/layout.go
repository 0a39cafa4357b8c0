// Package gui renders a grid into a window: cells are squares of CellPixels with
// one-pixel grid lines between them, clicking inside a cell toggles it.
package gui

import (
	"image/color"

	"github.com/sheikhrachel/go-gol/model"
)

var (
	aliveColor = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	deadColor  = color.RGBA{R: 0x5b, G: 0x5b, B: 0x5b, A: 0xff}
	lineColor  = color.RGBA{A: 0xff}
)

// Layout maps between canvas pixels and grid cells
type Layout struct {
	Size       int
	CellPixels int
}

// Canvas returns the width (and height) of the canvas in pixels
func (l Layout) Canvas() int {
	return l.Size * l.CellPixels
}

// CellAt returns the cell under a canvas position. Positions on a grid line or
// outside the canvas do not belong to any cell.
func (l Layout) CellAt(px, py int) (row, col int, ok bool) {
	if px <= 0 || py <= 0 || px >= l.Canvas() || py >= l.Canvas() {
		return 0, 0, false
	}
	if px%l.CellPixels == 0 || py%l.CellPixels == 0 {
		return 0, 0, false
	}
	return py / l.CellPixels, px / l.CellPixels, true
}

// Fill writes the RGBA pixels of g into buf, which must hold Canvas()^2 * 4 bytes
func (l Layout) Fill(buf []byte, g *model.Grid) {
	canvas := l.Canvas()
	for py := range canvas {
		for px := range canvas {
			c := deadColor
			if (px > 0 && px%l.CellPixels == 0) || (py > 0 && py%l.CellPixels == 0) {
				c = lineColor
			} else if alive, _ := g.Get(py/l.CellPixels, px/l.CellPixels); alive {
				c = aliveColor
			}
			base := (py*canvas + px) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
