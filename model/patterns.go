package model

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

const (
	// PatternEmpty leaves the grid dead
	PatternEmpty = "empty"
	// PatternRandom fills the grid at a given density
	PatternRandom = "random"
)

// Pattern is a named shape given as the (row, col) offsets of its living cells
type Pattern struct {
	Name  string
	Cells [][2]int
}

var patterns = map[string]Pattern{
	"block": {Name: "block", Cells: [][2]int{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	}},
	"blinker": {Name: "blinker", Cells: [][2]int{
		{0, 0}, {0, 1}, {0, 2},
	}},
	"toad": {Name: "toad", Cells: [][2]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2},
	}},
	"beacon": {Name: "beacon", Cells: [][2]int{
		{0, 0}, {0, 1},
		{1, 0},
		{2, 3},
		{3, 2}, {3, 3},
	}},
	"glider": {Name: "glider", Cells: [][2]int{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}},
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] %q", name)
	}
	return p, nil
}

// PatternNames returns the names of the built-in patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the number of rows and columns the pattern spans
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c[0]+1)
		cols = max(cols, c[1]+1)
	}
	return
}

// Stamp brings the pattern's cells to life with its top-left corner at (row, col).
// Nothing is written unless the whole pattern fits on the grid.
func (g *Grid) Stamp(p Pattern, row, col int) error {
	rows, cols := p.Bounds()
	if !g.inBounds(row, col) || !g.inBounds(row+rows-1, col+cols-1) {
		return errors.Wrapf(ErrOutOfBounds, "[Stamp] %s (%dx%d) at (%d, %d) does not fit %dx%d grid",
			p.Name, rows, cols, row, col, g.size, g.size)
	}
	for _, c := range p.Cells {
		g.cells[g.index(row+c[0], col+c[1])] = true
	}
	return nil
}

// StampCentered stamps the pattern in the middle of the grid
func (g *Grid) StampCentered(p Pattern) error {
	rows, cols := p.Bounds()
	return g.Stamp(p, (g.size-rows)/2, (g.size-cols)/2)
}

// Populate seeds a cleared grid: "empty" leaves it dead, "random" fills it at
// density using rng, and any other name stamps that pattern in the middle.
func Populate(g *Grid, name string, density float64, rng *rand.Rand) error {
	switch name {
	case PatternEmpty, "":
		return nil
	case PatternRandom:
		g.Randomize(rng, density)
		return nil
	}
	p, err := PatternByName(name)
	if err != nil {
		return err
	}
	return g.StampCentered(p)
}
