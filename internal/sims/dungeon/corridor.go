package dungeon

import (
	"fmt"
	"strings"

	"procgrid/internal/core"
)

// CorridorStyle selects how anchors are joined.
type CorridorStyle string

const (
	// CorridorSweep marks the whole row and the whole column through every
	// anchor.
	CorridorSweep CorridorStyle = "sweep"
	// CorridorLShaped joins consecutive anchors with a horizontal then a
	// vertical segment, bounded by the two anchors.
	CorridorLShaped CorridorStyle = "lshaped"
)

// ParseCorridorStyle validates a style name. The empty string selects CorridorSweep.
func ParseCorridorStyle(s string) (CorridorStyle, error) {
	switch CorridorStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", CorridorSweep:
		return CorridorSweep, nil
	case CorridorLShaped:
		return CorridorLShaped, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCorridorStyle, s)
	}
}

// Connect dispatches to the connector for style.
func Connect(g *core.Grid[Tile], anchors []core.Position, style CorridorStyle) {
	if style == CorridorLShaped {
		ConnectLShaped(g, anchors)
		return
	}
	ConnectAnchors(g, anchors)
}

// ConnectAnchors overwrites every cell sharing an anchor's row or column with
// TileMarker.
func ConnectAnchors(g *core.Grid[Tile], anchors []core.Position) {
	for _, a := range anchors {
		if !g.InBounds(a.X, a.Y) {
			continue
		}
		for x := 0; x < g.W; x++ {
			g.Set(x, a.Y, TileMarker)
		}
		for y := 0; y < g.H; y++ {
			g.Set(a.X, y, TileMarker)
		}
	}
}

// ConnectLShaped marks each anchor and carves a horizontal segment from the
// previous anchor's column to the next one along the previous anchor's row,
// followed by a vertical segment down (or up) the next anchor's column.
func ConnectLShaped(g *core.Grid[Tile], anchors []core.Position) {
	for i, a := range anchors {
		g.Set(a.X, a.Y, TileMarker)
		if i == 0 {
			continue
		}
		prev := anchors[i-1]
		carveH(g, prev.X, a.X, prev.Y)
		carveV(g, prev.Y, a.Y, a.X)
	}
}

func carveH(g *core.Grid[Tile], x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.Set(x, y, TileMarker)
	}
}

func carveV(g *core.Grid[Tile], y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.Set(x, y, TileMarker)
	}
}
