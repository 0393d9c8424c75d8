package dungeon

import (
	"slices"
	"testing"

	"procgrid/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":         "20",
		"h":         "bogus",
		"rooms":     "3",
		"room_size": "-2",
		"corridor":  "LShaped",
		"seed":      "9",
	})
	def := DefaultConfig()
	if c.Width != 20 || c.Height != def.Height || c.Rooms != 3 || c.RoomSize != def.RoomSize {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Corridor != CorridorLShaped || c.Seed != 9 {
		t.Fatalf("unexpected corridor/seed %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map must yield defaults")
	}
}

func TestSimResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	sim := New(cfg)
	if err := sim.Err(); err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)
	first := append([]uint8(nil), sim.Cells()...)
	if len(first) != 24*16 {
		t.Fatalf("display has %d cells", len(first))
	}

	sim.Step()
	if !slices.Equal(first, sim.Cells()) {
		t.Fatal("Step must not change a generated map")
	}

	sim.Reset(cfg.Seed)
	if !slices.Equal(first, sim.Cells()) {
		t.Fatal("zero seed must fall back to the configured seed")
	}
	if !slices.Equal(first, sim.Map().Cells()) {
		t.Fatal("display out of sync with the map")
	}

	sim.Reset(cfg.Seed + 1)
	if slices.Equal(first, sim.Cells()) {
		t.Fatal("different seed should change the map")
	}
}

func TestSimInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	sim := New(cfg)
	if sim.Err() == nil {
		t.Fatal("expected an error for zero width")
	}
	sim.Reset(1)
	if sim.Map() != nil || len(sim.Cells()) != 0 {
		t.Fatal("invalid sim must stay empty")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["dungeon"]
	if !ok {
		t.Fatal("dungeon not registered")
	}
	sim := factory(map[string]string{"w": "12", "h": "9"})
	if sim.Name() != "dungeon" || sim.Size() != (core.Size{W: 12, H: 9}) {
		t.Fatalf("unexpected sim %s %v", sim.Name(), sim.Size())
	}
	if _, ok := sim.(core.ParameterProvider); !ok {
		t.Fatal("dungeon should expose parameters")
	}
	if p := sim.(*Dungeon).Palette(); len(p) != 3 {
		t.Fatalf("palette has %d entries", len(p))
	}
}
