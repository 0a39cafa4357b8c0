package gui

import (
	"image/color"
	"testing"

	"github.com/sheikhrachel/go-gol/model"
)

func TestCellAt(t *testing.T) {
	t.Parallel()
	l := Layout{Size: 25, CellPixels: 20}
	if l.Canvas() != 500 {
		t.Fatalf("Canvas() = %d, want 500", l.Canvas())
	}
	tests := []struct {
		name     string
		px, py   int
		row, col int
		ok       bool
	}{
		{name: "inside first cell", px: 5, py: 5, row: 0, col: 0, ok: true},
		{name: "inside last cell", px: 499, py: 481, row: 24, col: 24, ok: true},
		{name: "row follows y", px: 45, py: 61, row: 3, col: 2, ok: true},
		{name: "vertical grid line", px: 40, py: 10},
		{name: "horizontal grid line", px: 10, py: 20},
		{name: "canvas edge", px: 0, py: 10},
		{name: "outside right", px: 500, py: 10},
		{name: "negative", px: -3, py: 10},
	}
	for _, tt := range tests {
		row, col, ok := l.CellAt(tt.px, tt.py)
		if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
			t.Errorf("%s: CellAt(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
				tt.name, tt.px, tt.py, row, col, ok, tt.row, tt.col, tt.ok)
		}
	}
}

func TestFill(t *testing.T) {
	t.Parallel()
	g, err := model.NewGrid(3)
	if err != nil {
		t.Fatal(err)
	}
	_ = g.Set(1, 2, true)
	l := Layout{Size: 3, CellPixels: 4}
	buf := make([]byte, l.Canvas()*l.Canvas()*4)
	l.Fill(buf, g)

	at := func(px, py int) color.RGBA {
		base := (py*l.Canvas() + px) * 4
		return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
	}
	if got := at(10, 6); got != aliveColor {
		t.Fatalf("pixel in living cell (1,2) = %v", got)
	}
	if got := at(1, 1); got != deadColor {
		t.Fatalf("pixel in dead cell (0,0) = %v", got)
	}
	if got := at(4, 1); got != lineColor {
		t.Fatalf("pixel on grid line = %v", got)
	}
	if got := at(0, 0); got != deadColor {
		t.Fatalf("canvas border pixel = %v, want dead cell colour", got)
	}
}
