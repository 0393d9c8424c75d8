package life

// State is the two-valued cell state.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell is one automaton cell. Its identity is its position.
type Cell struct {
	X     int
	Y     int
	State State
}

// IsNeighbor reports whether o is one of the eight cells adjacent to c.
func (c Cell) IsNeighbor(o Cell) bool {
	dx, dy := abs(c.X-o.X), abs(c.Y-o.Y)
	switch {
	case dx == 1 && dy == 1, dx == 0 && dy == 1, dx == 1 && dy == 0:
		return true
	default:
		return false
	}
}

// NextState applies the birth/survival rule: a live cell with two or three
// live neighbours survives, a dead cell with exactly three is born, every
// other cell is dead in the next generation.
func NextState(s State, liveNeighbors int) State {
	switch {
	case s == Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return Alive
	case s == Dead && liveNeighbors == 3:
		return Alive
	default:
		return Dead
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
