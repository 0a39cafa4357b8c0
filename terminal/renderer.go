package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-gol/model"
)

// cellWidth is the number of terminal columns per grid cell, keeping cells roughly square
const cellWidth = 2

var (
	aliveStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(0xff, 0xff, 0x00))
	deadStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x5b, 0x5b, 0x5b))
	textStyle  = tcell.StyleDefault
)

// Renderer draws a grid onto a tcell screen with a status area underneath
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Display draws every cell of the grid starting at the top-left corner
func (r *Renderer) Display(g *model.Grid) {
	for row := range g.Size() {
		for col := range g.Size() {
			style := deadStyle
			if alive, _ := g.Get(row, col); alive {
				style = aliveStyle
			}
			for dx := range cellWidth {
				r.screen.SetContent(col*cellWidth+dx, row, ' ', nil, style)
			}
		}
	}
}

// Text writes a line of text at the given screen row, blanking the rest of the line
func (r *Renderer) Text(y int, text string) {
	width, _ := r.screen.Size()
	x := 0
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, textStyle)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, textStyle)
	}
}

// Show flushes pending changes to the terminal
func (r *Renderer) Show() {
	r.screen.Show()
}

// CellAt translates a screen position into grid coordinates
func CellAt(size, x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y, x/cellWidth
	if row >= size || col >= size {
		return 0, 0, false
	}
	return row, col, true
}
