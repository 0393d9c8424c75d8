package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"procgrid/internal/sims/dungeon"
	"procgrid/internal/sims/life"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if f.DungeonConfig() != dungeon.DefaultConfig() {
		t.Fatalf("dungeon defaults mismatch: %+v", f.DungeonConfig())
	}
	if f.LifeConfig() != life.DefaultConfig() {
		t.Fatalf("life defaults mismatch: %+v", f.LifeConfig())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procgrid.yaml")
	data := []byte(`
dungeon:
  width: 10
  height: 12
  rooms: 0
  corridor: lshaped
life:
  size: 25
  alive_chance: 0.5
  interval_ms: 40
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := f.DungeonConfig()
	if d.Width != 10 || d.Height != 12 || d.Rooms != 0 || d.Corridor != dungeon.CorridorLShaped {
		t.Fatalf("unexpected dungeon config %+v", d)
	}
	if d.RoomSize != dungeon.DefaultConfig().RoomSize || d.Seed != dungeon.DefaultConfig().Seed {
		t.Fatal("absent keys must keep their defaults")
	}
	l := f.LifeConfig()
	if l.Size != 25 || l.AliveChance != 0.5 || l.Interval != 40*time.Millisecond {
		t.Fatalf("unexpected life config %+v", l)
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"unknown section": "maze:\n  width: 3\n",
		"unknown key":     "dungeon:\n  depth: 3\n",
		"zero width":      "dungeon:\n  width: 0\n",
		"negative rooms":  "dungeon:\n  rooms: -2\n",
		"bad corridor":    "dungeon:\n  corridor: diagonal\n",
		"chance above 1":  "life:\n  alive_chance: 1.5\n",
		"string size":     "life:\n  size: big\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if f != Defaults() {
		t.Fatal("empty document must yield defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}
