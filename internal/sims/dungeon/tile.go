package dungeon

import "fmt"

// Tile enumerates the values a dungeon cell can hold.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
	TileMarker
)

// Glyph returns the display character used by the textual rendering.
func (t Tile) Glyph() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileMarker:
		return 'X'
	default:
		return '?'
	}
}

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileMarker:
		return "marker"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// Walkable reports whether the tile is part of a room or corridor.
func (t Tile) Walkable() bool { return t == TileFloor || t == TileMarker }

// TileFromGlyph is the inverse of Glyph.
func TileFromGlyph(r rune) (Tile, error) {
	switch r {
	case '#':
		return TileWall, nil
	case '.':
		return TileFloor, nil
	case 'X':
		return TileMarker, nil
	default:
		return 0, fmt.Errorf("dungeon: unknown glyph %q", r)
	}
}
