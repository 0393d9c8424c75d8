package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"procgrid/internal/core"
	"procgrid/pkg/rng"
)

// Room is an axis-aligned rectangle clipped to the map bounds. It is
// immutable once placed.
type Room struct {
	Origin core.Position
	Width  int
	Height int

	cells []core.Position
	set   mapset.Set[core.Position]
}

// PlaceRoom computes the clipped rectangle for a square room of roomSize
// starting at origin. When the room would reach the right (bottom) edge, its
// exclusive end is pulled back to bounds.W-1 (bounds.H-1), so the interior
// never touches the outermost column (row). An origin at or beyond that edge
// yields an empty room.
func PlaceRoom(origin core.Position, roomSize int, bounds core.Size) Room {
	x0, x1 := clipSpan(origin.X, roomSize, bounds.W)
	y0, y1 := clipSpan(origin.Y, roomSize, bounds.H)

	r := Room{
		Origin: core.Position{X: x0, Y: y0},
		Width:  x1 - x0,
		Height: y1 - y0,
		set:    mapset.New[core.Position](),
	}
	r.cells = make([]core.Position, 0, r.Width*r.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := core.Position{X: x, Y: y}
			r.cells = append(r.cells, p)
			r.set.Put(p)
		}
	}
	return r
}

func clipSpan(start, size, limit int) (int, int) {
	end := start + size
	if end >= limit {
		end = limit - 1
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return start, end
}

// Cells returns the covered positions in row-major order.
func (r Room) Cells() []core.Position {
	return append([]core.Position(nil), r.cells...)
}

// Len returns the number of covered positions.
func (r Room) Len() int { return len(r.cells) }

// Empty reports whether clipping left the room without an interior.
func (r Room) Empty() bool { return len(r.cells) == 0 }

// Contains reports whether p is inside the room.
func (r Room) Contains(p core.Position) bool {
	if r.Empty() {
		return false
	}
	return r.set.Has(p)
}

// sample picks one interior position. The room must not be empty.
func (r Room) sample(src rng.Source) core.Position {
	return r.cells[src.IntN(len(r.cells))]
}
