package dungeon

import (
	"fmt"
	"strconv"
)

// Config controls map generation.
type Config struct {
	Width    int
	Height   int
	Rooms    int
	RoomSize int
	Corridor CorridorStyle

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    40,
		Height:   40,
		Rooms:    8,
		RoomSize: 5,
		Corridor: CorridorSweep,
		Seed:     42,
	}
}

// Validate reports the first precondition the configuration violates.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Rooms < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRoomCount, c.Rooms)
	}
	if c.RoomSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRoomSize, c.RoomSize)
	}
	if _, err := ParseCorridorStyle(string(c.Corridor)); err != nil {
		return err
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rooms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rooms = parsed
		}
	}
	if v, ok := cfg["room_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RoomSize = parsed
		}
	}
	if v, ok := cfg["corridor"]; ok {
		if style, err := ParseCorridorStyle(v); err == nil {
			c.Corridor = style
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
