package model

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/rules"
)

// neighborOffsets lists the (row, col) deltas of the eight surrounding cells
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size square board of cells stored row-major.
// A Grid is not safe for concurrent use; callers serialize Step and Toggle.
type Grid struct {
	size  int
	cells []bool
	next  []bool // scratch buffer for the generation being computed
}

// NewGrid creates a size x size grid with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] size must be positive, got %d", size)
	}
	return &Grid{
		size:  size,
		cells: make([]bool, size*size),
		next:  make([]bool, size*size),
	}, nil
}

// Size returns the number of rows (and columns) of the grid
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] cell (%d, %d) outside %dx%d grid", op, row, col, g.size, g.size)
	}
	return nil
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (bool, error) {
	if err := g.checkBounds("Get", row, col); err != nil {
		return false, err
	}
	return g.cells[g.index(row, col)], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if err := g.checkBounds("Set", row, col); err != nil {
		return err
	}
	g.cells[g.index(row, col)] = alive
	return nil
}

// Toggle flips the state of a cell
func (g *Grid) Toggle(row, col int) error {
	if err := g.checkBounds("Toggle", row, col); err != nil {
		return err
	}
	i := g.index(row, col)
	g.cells[i] = !g.cells[i]
	return nil
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// LiveNeighbors counts the living cells around (row, col).
// Positions off the edge of the grid do not exist and are never counted.
func (g *Grid) LiveNeighbors(row, col int) (int, error) {
	if err := g.checkBounds("LiveNeighbors", row, col); err != nil {
		return 0, err
	}
	return g.liveNeighbors(row, col), nil
}

func (g *Grid) liveNeighbors(row, col int) (count int) {
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if g.inBounds(r, c) && g.cells[g.index(r, c)] {
			count++
		}
	}
	return
}

// Step advances the grid by one generation.
// Every next state is computed from the current generation before any is committed.
func (g *Grid) Step() {
	for row := range g.size {
		for col := range g.size {
			i := g.index(row, col)
			g.next[i] = rules.NextState(g.cells[i], g.liveNeighbors(row, col))
		}
	}
	g.cells, g.next = g.next, g.cells
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Fingerprint returns a hash of the current generation
func (g *Grid) Fingerprint() uint64 {
	h := fnv.New64a()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return h.Sum64()
}

// Randomize fills the grid so that each cell is alive with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}
