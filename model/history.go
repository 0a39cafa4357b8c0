package model

// historyDepth is how many recent generations are remembered for cycle detection
const historyDepth = 4

// Status describes how the population is evolving
type Status int

const (
	StatusActive Status = iota
	StatusStable
	StatusOscillating
	StatusExtinct
)

func (s Status) String() string {
	switch s {
	case StatusStable:
		return "Stable"
	case StatusOscillating:
		return "Oscillating"
	case StatusExtinct:
		return "Extinct"
	default:
		return "Active"
	}
}

// History keeps the fingerprints of recent generations
type History struct {
	prints []uint64
}

// Record adds the grid's current generation to the history
func (h *History) Record(g *Grid) {
	h.prints = append(h.prints, g.Fingerprint())
	if len(h.prints) > historyDepth {
		h.prints = h.prints[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.prints = h.prints[:0]
}

// Status classifies the grid's current generation against the recorded ones.
// A repeat of the previous generation is stable; a repeat of one two or three
// generations back is an oscillator.
func (h *History) Status(g *Grid) Status {
	if g.CountLivingCells() == 0 {
		return StatusExtinct
	}
	current := g.Fingerprint()
	n := len(h.prints)
	for back := 1; back <= 3 && back <= n; back++ {
		if h.prints[n-back] != current {
			continue
		}
		if back == 1 {
			return StatusStable
		}
		return StatusOscillating
	}
	return StatusActive
}
