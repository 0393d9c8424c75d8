package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"procgrid/internal/sims/dungeon"
	"procgrid/internal/sims/life"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("procgrid.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// File is the on-disk configuration.
type File struct {
	Dungeon DungeonSection `yaml:"dungeon"`
	Life    LifeSection    `yaml:"life"`
}

type DungeonSection struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Rooms    int    `yaml:"rooms"`
	RoomSize int    `yaml:"room_size"`
	Corridor string `yaml:"corridor"`
	Seed     int64  `yaml:"seed"`
}

type LifeSection struct {
	Size        int     `yaml:"size"`
	AliveChance float64 `yaml:"alive_chance"`
	Seed        int64   `yaml:"seed"`
	IntervalMs  int     `yaml:"interval_ms"`
}

// Load reads path. An empty path returns the defaults.
func Load(path string) (File, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	f, err := Parse(b)
	if err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML, validates it against the embedded schema and fills
// absent keys with defaults.
func Parse(b []byte) (File, error) {
	f := Defaults()

	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return f, fmt.Errorf("procgrid.yaml: %w", err)
	}
	if raw != nil {
		if err := validate(raw); err != nil {
			return f, fmt.Errorf("procgrid.yaml: %w", err)
		}
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("procgrid.yaml: %w", err)
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("procgrid.yaml: %w", err)
	}
	return f, nil
}

func validate(raw any) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	// Round-trip through JSON so numbers and maps have the shapes the
	// validator expects.
	jb, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(jb, &doc); err != nil {
		return err
	}
	return s.Validate(doc)
}

// Defaults mirrors the package defaults of each simulation.
func Defaults() File {
	d := dungeon.DefaultConfig()
	l := life.DefaultConfig()
	return File{
		Dungeon: DungeonSection{
			Width:    d.Width,
			Height:   d.Height,
			Rooms:    d.Rooms,
			RoomSize: d.RoomSize,
			Corridor: string(d.Corridor),
			Seed:     d.Seed,
		},
		Life: LifeSection{
			Size:        l.Size,
			AliveChance: l.AliveChance,
			Seed:        l.Seed,
			IntervalMs:  int(l.Interval / time.Millisecond),
		},
	}
}

// Normalize canonicalizes free-form fields.
func (f *File) Normalize() {
	f.Dungeon.Corridor = strings.ToLower(strings.TrimSpace(f.Dungeon.Corridor))
	if f.Dungeon.Corridor == "" {
		f.Dungeon.Corridor = string(dungeon.CorridorSweep)
	}
	if f.Life.IntervalMs <= 0 {
		f.Life.IntervalMs = int(life.DefaultConfig().Interval / time.Millisecond)
	}
}

// Validate checks both sections with the simulations' own rules.
func (f File) Validate() error {
	if err := f.DungeonConfig().Validate(); err != nil {
		return err
	}
	return f.LifeConfig().Validate()
}

// DungeonConfig converts the dungeon section.
func (f File) DungeonConfig() dungeon.Config {
	return dungeon.Config{
		Width:    f.Dungeon.Width,
		Height:   f.Dungeon.Height,
		Rooms:    f.Dungeon.Rooms,
		RoomSize: f.Dungeon.RoomSize,
		Corridor: dungeon.CorridorStyle(f.Dungeon.Corridor),
		Seed:     f.Dungeon.Seed,
	}
}

// LifeConfig converts the life section.
func (f File) LifeConfig() life.Config {
	return life.Config{
		Size:        f.Life.Size,
		AliveChance: f.Life.AliveChance,
		Seed:        f.Life.Seed,
		Interval:    time.Duration(f.Life.IntervalMs) * time.Millisecond,
	}
}
