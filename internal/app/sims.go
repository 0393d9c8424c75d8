package app

import (
	"fmt"
	"strings"

	"procgrid/internal/config"
	"procgrid/internal/core"
	"procgrid/internal/sims/dungeon"
	"procgrid/internal/sims/life"
)

// NewSim builds the named simulation from the configuration file. Names
// without a file section fall back to the registry defaults.
func NewSim(name string, file config.File) (core.Sim, error) {
	switch name {
	case "dungeon":
		d := dungeon.New(file.DungeonConfig())
		if err := d.Err(); err != nil {
			return nil, err
		}
		return d, nil
	case "life":
		cfg := file.LifeConfig()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return life.New(cfg), nil
	}
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", name, strings.Join(core.SimNames(), ", "))
	}
	return factory(nil), nil
}
