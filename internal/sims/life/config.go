package life

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds parameters for the automaton.
type Config struct {
	Size        int
	AliveChance float64
	Seed        int64

	// Interval is the cadence used by drivers; the automaton itself ignores it.
	Interval time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:        10,
		AliveChance: DefaultAliveChance,
		Seed:        42,
		Interval:    100 * time.Millisecond,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if c.AliveChance < 0 || c.AliveChance > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidChance, c.AliveChance)
	}
	return nil
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["alive_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveChance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	return c
}
