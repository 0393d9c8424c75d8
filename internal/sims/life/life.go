package life

import (
	"procgrid/internal/core"
	"procgrid/pkg/rng"
)

// Life drives a Grid through the core.Sim contract.
type Life struct {
	cfg        Config
	grid       *Grid
	generation int
	display    []uint8
}

// New returns a Life simulation. An invalid size is clamped to 1.
func New(cfg Config) *Life {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	g, _ := Empty(cfg.Size)
	l := &Life{cfg: cfg, grid: g, display: make([]uint8, cfg.Size*cfg.Size)}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Size, H: l.cfg.Size} }

// Cells exposes the current generation as 0/1 values.
func (l *Life) Cells() []uint8 { return l.display }

// Grid returns the current generation.
func (l *Life) Grid() *Grid { return l.grid }

// Generation returns how many steps have run since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Reset randomizes the board. A zero seed falls back to the configured seed.
func (l *Life) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = l.cfg.Seed
	}
	g, err := Seed(l.cfg.Size, rng.New(effective), l.cfg.AliveChance)
	if err != nil {
		g, _ = Empty(l.cfg.Size)
	}
	l.grid = g
	l.generation = 0
	l.refresh()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid = Advance(l.grid)
	l.generation++
	l.refresh()
}

func (l *Life) refresh() {
	for i, c := range l.grid.cells {
		l.display[i] = uint8(c.State)
	}
}

// Parameters describes the active configuration.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Automaton",
		Params: []core.Parameter{
			core.IntParam("size", "Size", l.cfg.Size),
			core.FloatParam("alive_chance", "Alive chance", l.cfg.AliveChance),
			core.Int64Param("seed", "Seed", l.cfg.Seed),
			core.StringParam("interval", "Interval", l.cfg.Interval.String()),
		},
	}}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
