package dungeon

import (
	"fmt"
	"strings"

	"procgrid/internal/core"
)

// Map is a finished dungeon. It is read-only: every accessor returns a copy.
type Map struct {
	grid    *core.Grid[Tile]
	rooms   []Room
	anchors []core.Position
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.grid.W }

// Height returns the number of rows.
func (m *Map) Height() int { return m.grid.H }

// Size returns the map dimensions.
func (m *Map) Size() core.Size { return m.grid.Size() }

// At returns the tile at p and whether p is inside the map.
func (m *Map) At(p core.Position) (Tile, bool) { return m.grid.At(p.X, p.Y) }

// Each calls fn for every position in row-major order.
func (m *Map) Each(fn func(p core.Position, t Tile)) {
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			t, _ := m.grid.At(x, y)
			fn(core.Position{X: x, Y: y}, t)
		}
	}
}

// Count returns how many cells hold t.
func (m *Map) Count(t Tile) int {
	n := 0
	for _, v := range m.grid.Cells() {
		if v == t {
			n++
		}
	}
	return n
}

// Rooms returns the rooms placed during generation, in placement order.
func (m *Map) Rooms() []Room { return append([]Room(nil), m.rooms...) }

// Anchors returns the corridor anchors, one per non-empty room.
func (m *Map) Anchors() []core.Position { return append([]core.Position(nil), m.anchors...) }

// Cells returns the tile values in row-major order as bytes.
func (m *Map) Cells() []uint8 { return m.grid.Bytes() }

// Equal reports whether both maps hold the same tiles.
func (m *Map) Equal(o *Map) bool {
	if o == nil || m.grid.W != o.grid.W || m.grid.H != o.grid.H {
		return false
	}
	a, b := m.grid.Cells(), o.grid.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Lines renders one string per row, y from 0 to Height-1.
func (m *Map) Lines() []string {
	lines := make([]string, 0, m.grid.H)
	var sb strings.Builder
	for y := 0; y < m.grid.H; y++ {
		sb.Reset()
		for x := 0; x < m.grid.W; x++ {
			t, _ := m.grid.At(x, y)
			sb.WriteRune(t.Glyph())
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String renders the map with a newline after every row.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.grid.W + 1) * m.grid.H)
	for _, line := range m.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseMap reads the textual rendering produced by String. Rooms and anchors
// are not recoverable from text and are left empty.
func ParseMap(text string) (*Map, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty map", ErrInvalidDimensions)
	}
	w := len([]rune(lines[0]))
	g := core.NewGrid[Tile](w, len(lines))
	for y, line := range lines {
		row := []rune(line)
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), w)
		}
		for x, r := range row {
			t, err := TileFromGlyph(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			g.Set(x, y, t)
		}
	}
	return &Map{grid: g}, nil
}
