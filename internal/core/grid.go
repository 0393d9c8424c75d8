package core

// Grid stores a bounded 2D grid of byte-sized cell values in row-major order.
// There is no wraparound: coordinates outside [0,W)x[0,H) are rejected.
type Grid[T ~uint8] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewGrid[T ~uint8](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		return &Grid[T]{}
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y) and whether the coordinates were in bounds.
func (g *Grid[T]) At(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.data[g.Index(x, y)], true
}

// Set writes v at (x, y). Out-of-bounds writes are ignored and reported as false.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[g.Index(x, y)] = v
	return true
}

// Fill writes v into every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Bytes returns a copy of the cells widened to plain bytes for renderers.
func (g *Grid[T]) Bytes() []uint8 {
	out := make([]uint8, len(g.data))
	for i, v := range g.data {
		out[i] = uint8(v)
	}
	return out
}

// mooreOffsets lists the eight neighbour deltas in scan order.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// MooreNeighbors returns the in-bounds members of the 8-neighbourhood of p
// inside a grid of the given size. Edge cells simply have fewer neighbours.
func MooreNeighbors(p Position, size Size) []Position {
	out := make([]Position, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		n := p.Add(d[0], d[1])
		if size.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}
