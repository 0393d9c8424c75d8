package life

import (
	"errors"
	"fmt"
	"strings"

	"procgrid/internal/core"
	"procgrid/pkg/rng"
)

var (
	// ErrInvalidSize is returned when a grid size is not positive.
	ErrInvalidSize = errors.New("life: invalid size")
	// ErrInvalidChance is returned for an alive probability outside [0, 1].
	ErrInvalidChance = errors.New("life: invalid alive chance")
)

// DefaultAliveChance matches the one-in-three seeding of the reference playground.
const DefaultAliveChance = 1.0 / 3.0

// Grid is one generation of a square automaton. It holds exactly one Cell per
// position of [0,size)x[0,size), ordered row-major. A Grid is never modified
// after construction; Advance returns a new one.
type Grid struct {
	size  int
	cells []Cell
}

func newGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	g := &Grid{size: size, cells: make([]Cell, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.cells[y*size+x] = Cell{X: x, Y: y, State: Dead}
		}
	}
	return g, nil
}

// Empty returns an all-dead grid.
func Empty(size int) (*Grid, error) { return newGrid(size) }

// FromPattern returns a grid where exactly the listed positions are alive.
// Positions outside the grid are ignored.
func FromPattern(size int, alive ...core.Position) (*Grid, error) {
	g, err := newGrid(size)
	if err != nil {
		return nil, err
	}
	for _, p := range alive {
		if p.X < 0 || p.Y < 0 || p.X >= size || p.Y >= size {
			continue
		}
		g.cells[p.Y*size+p.X].State = Alive
	}
	return g, nil
}

// Seed returns a grid whose cells are independently alive with probability
// aliveChance. Cells are drawn in row-major order.
func Seed(size int, src rng.Source, aliveChance float64) (*Grid, error) {
	if aliveChance < 0 || aliveChance > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidChance, aliveChance)
	}
	g, err := newGrid(size)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		if rng.Chance(src, aliveChance) {
			g.cells[i].State = Alive
		}
	}
	return g, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Cells returns a copy of the cells in row-major order.
func (g *Grid) Cells() []Cell { return append([]Cell(nil), g.cells...) }

// At returns the cell at (x, y) and whether it exists.
func (g *Grid) At(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return Cell{}, false
	}
	return g.cells[y*g.size+x], true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.State == Alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and states.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i].State != o.cells[i].State {
			return false
		}
	}
	return true
}

// String renders live cells as 'O' and dead cells as '.', one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.size + 1) * g.size)
	for i, c := range g.cells {
		if c.State == Alive {
			sb.WriteByte('O')
		} else {
			sb.WriteByte('.')
		}
		if (i+1)%g.size == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Neighbors returns the in-grid positions adjacent to p. Edges do not wrap.
func Neighbors(p core.Position, size int) []core.Position {
	return core.MooreNeighbors(p, core.Size{W: size, H: size})
}

// CountLiveNeighbors counts the live cells among the neighbours of (x, y).
func (g *Grid) CountLiveNeighbors(x, y int) int {
	n := 0
	for _, p := range Neighbors(core.Position{X: x, Y: y}, g.size) {
		if g.cells[p.Y*g.size+p.X].State == Alive {
			n++
		}
	}
	return n
}

// Advance computes the next generation. Every count is read from g, which is
// left untouched.
func Advance(g *Grid) *Grid {
	next := &Grid{size: g.size, cells: make([]Cell, len(g.cells))}
	for i, c := range g.cells {
		next.cells[i] = Cell{X: c.X, Y: c.Y, State: NextState(c.State, g.CountLiveNeighbors(c.X, c.Y))}
	}
	return next
}
