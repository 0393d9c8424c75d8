package dungeon

import (
	"procgrid/internal/core"
	"procgrid/pkg/rng"
)

// Dungeon exposes map generation through the core.Sim contract. Reset
// regenerates the map; Step is a no-op because a generated map is static.
type Dungeon struct {
	cfg     Config
	builder *Builder
	m       *Map
	err     error
	display []uint8
}

// New returns a Dungeon sim for cfg. An invalid cfg is reported by Err and
// leaves the display empty.
func New(cfg Config) *Dungeon {
	d := &Dungeon{cfg: cfg}
	d.builder, d.err = NewBuilder(cfg)
	if d.err == nil {
		d.display = make([]uint8, cfg.Width*cfg.Height)
	}
	return d
}

// Name returns the simulation identifier.
func (d *Dungeon) Name() string { return "dungeon" }

// Size reports the map dimensions.
func (d *Dungeon) Size() core.Size { return core.Size{W: d.cfg.Width, H: d.cfg.Height} }

// Cells exposes the tile values of the current map.
func (d *Dungeon) Cells() []uint8 { return d.display }

// Map returns the most recently generated map, or nil before the first Reset.
func (d *Dungeon) Map() *Map { return d.m }

// Err reports the configuration or generation error, if any.
func (d *Dungeon) Err() error { return d.err }

// Reset generates a fresh map. A zero seed falls back to the configured seed.
func (d *Dungeon) Reset(seed int64) {
	if d.builder == nil {
		return
	}
	effective := seed
	if effective == 0 {
		effective = d.cfg.Seed
	}
	m, err := d.builder.Build(rng.New(effective))
	if err != nil {
		d.err = err
		return
	}
	d.m = m
	copy(d.display, m.Cells())
}

// Step does nothing; the map only changes on Reset.
func (d *Dungeon) Step() {}

// Parameters describes the active configuration.
func (d *Dungeon) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("w", "Width", d.cfg.Width),
				core.IntParam("h", "Height", d.cfg.Height),
				core.Int64Param("seed", "Seed", d.cfg.Seed),
			},
		},
		{
			Name: "Rooms",
			Params: []core.Parameter{
				core.IntParam("rooms", "Room count", d.cfg.Rooms),
				core.IntParam("room_size", "Room size", d.cfg.RoomSize),
				core.StringParam("corridor", "Corridor style", string(d.cfg.Corridor)),
			},
		},
	}}
}

func init() {
	core.Register("dungeon", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
