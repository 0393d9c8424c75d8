package dungeon

import (
	"procgrid/internal/core"
	"procgrid/pkg/rng"
)

// Builder generates room-and-corridor maps. Each Build call works on a grid
// owned by that call and hands it to the returned Map, so consecutive builds
// never share state. A Builder must not be used from two goroutines at once.
type Builder struct {
	cfg Config

	grid    *core.Grid[Tile]
	rooms   []Room
	anchors []core.Position
}

// NewBuilder validates cfg and returns a Builder for it.
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	style, _ := ParseCorridorStyle(string(cfg.Corridor))
	cfg.Corridor = style
	return &Builder{cfg: cfg}, nil
}

// Config returns the builder configuration.
func (b *Builder) Config() Config { return b.cfg }

// BuildBaseMap generates a map with the default room size and sweep corridors.
func BuildBaseMap(numberOfRooms, width, height int, src rng.Source) (*Map, error) {
	cfg := DefaultConfig()
	cfg.Rooms = numberOfRooms
	cfg.Width = width
	cfg.Height = height
	b, err := NewBuilder(cfg)
	if err != nil {
		return nil, err
	}
	return b.Build(src)
}

// Build runs the full pipeline: background fill, room placement, anchor
// selection, corridor connection and boundary stamping. Later steps overwrite
// earlier ones at the same position. Draws from src happen in a fixed order
// (x then y per room origin, then one draw per non-empty room for its
// anchor), so a seeded source makes the result reproducible.
func (b *Builder) Build(src rng.Source) (*Map, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	b.makeBackground()
	b.placeRooms(src)
	b.markAnchors(src)
	Connect(b.grid, b.anchors, b.cfg.Corridor)
	StampBoundary(b.grid)

	m := &Map{grid: b.grid, rooms: b.rooms, anchors: b.anchors}
	b.grid, b.rooms, b.anchors = nil, nil, nil
	return m, nil
}

func (b *Builder) makeBackground() {
	b.grid = core.NewGrid[Tile](b.cfg.Width, b.cfg.Height)
	b.grid.Fill(TileWall)
	b.rooms = make([]Room, 0, b.cfg.Rooms)
	b.anchors = nil
}

func (b *Builder) placeRooms(src rng.Source) {
	bounds := b.grid.Size()
	for i := 0; i < b.cfg.Rooms; i++ {
		origin := core.Position{X: src.IntN(bounds.W), Y: src.IntN(bounds.H)}
		room := PlaceRoom(origin, b.cfg.RoomSize, bounds)
		for _, p := range room.cells {
			b.grid.Set(p.X, p.Y, TileFloor)
		}
		b.rooms = append(b.rooms, room)
	}
}

func (b *Builder) markAnchors(src rng.Source) {
	for _, room := range b.rooms {
		if room.Empty() {
			continue
		}
		p := room.sample(src)
		b.grid.Set(p.X, p.Y, TileMarker)
		b.anchors = append(b.anchors, p)
	}
}
