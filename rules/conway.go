package rules

const (
	// lonely is the highest neighbor count at which a living cell dies of isolation
	lonely = 1
	// crowded is the lowest neighbor count at which a living cell dies of overpopulation
	crowded = 4
	// birth is the exact neighbor count that brings a dead cell to life
	birth = 3
)

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A living cell with one or fewer living neighbors dies of loneliness, one with four or
more dies of overpopulation, and any other living cell survives. A dead cell with exactly
three living neighbors is born; every other dead cell stays dead.
*/
func NextState(alive bool, liveNeighbors int) bool {
	if !alive {
		return liveNeighbors == birth
	}
	switch {
	case liveNeighbors <= lonely:
		return false
	case liveNeighbors >= crowded:
		return false
	default:
		return true
	}
}
