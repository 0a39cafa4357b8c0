package model

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
)

func TestPatternByName(t *testing.T) {
	t.Parallel()
	for _, name := range PatternNames() {
		p, err := PatternByName(name)
		if err != nil {
			t.Fatalf("PatternByName(%q): %v", name, err)
		}
		if p.Name != name {
			t.Fatalf("PatternByName(%q).Name = %q", name, p.Name)
		}
	}
	if _, err := PatternByName("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("PatternByName(spaceship) error = %v, want ErrUnknownPattern", err)
	}
}

func TestStamp(t *testing.T) {
	t.Parallel()
	glider, _ := PatternByName("glider")
	if rows, cols := glider.Bounds(); rows != 3 || cols != 3 {
		t.Fatalf("glider bounds = %dx%d, want 3x3", rows, cols)
	}

	g := mustGrid(t, 5)
	if err := g.Stamp(glider, 2, 2); err != nil {
		t.Fatalf("Stamp at (2,2): %v", err)
	}
	expectAlive(t, g, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 4})

	for _, at := range [][2]int{{3, 0}, {0, 3}, {-1, 0}} {
		if err := g.Stamp(glider, at[0], at[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Stamp at %v error = %v, want ErrOutOfBounds", at, err)
		}
	}
	if got := g.CountLivingCells(); got != 5 {
		t.Fatalf("failed stamps wrote cells: %d alive, want 5", got)
	}
}

func TestStampCenteredBlinkerOscillates(t *testing.T) {
	t.Parallel()
	blinker, _ := PatternByName("blinker")
	g := mustGrid(t, 5)
	if err := g.StampCentered(blinker); err != nil {
		t.Fatalf("StampCentered: %v", err)
	}
	expectAlive(t, g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	g.Step()
	expectAlive(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
}

func TestGliderTravelsUntilTheEdge(t *testing.T) {
	t.Parallel()
	glider, _ := PatternByName("glider")
	g := mustGrid(t, 8)
	if err := g.Stamp(glider, 0, 0); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	// a glider repeats its shape one cell down and right every four generations
	for range 4 {
		g.Step()
	}
	expectAlive(t, g, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3})
}

func TestPopulate(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(3, 4))
	tests := []struct {
		name    string
		pattern string
		want    int
		wantErr error
	}{
		{name: "empty", pattern: PatternEmpty, want: 0},
		{name: "unset", pattern: "", want: 0},
		{name: "random full", pattern: PatternRandom, want: 36},
		{name: "toad", pattern: "toad", want: 6},
		{name: "unknown", pattern: "gun", wantErr: ErrUnknownPattern},
	}
	for _, tt := range tests {
		g := mustGrid(t, 6)
		err := Populate(g, tt.pattern, 1, rng)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("%s: Populate error = %v, want %v", tt.name, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: Populate: %v", tt.name, err)
		}
		if got := g.CountLivingCells(); got != tt.want {
			t.Fatalf("%s: %d living cells, want %d", tt.name, got, tt.want)
		}
	}
}
