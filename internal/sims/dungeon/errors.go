package dungeon

import "errors"

var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("dungeon: invalid dimensions")
	// ErrInvalidRoomCount is returned for a negative number of rooms.
	ErrInvalidRoomCount = errors.New("dungeon: invalid room count")
	// ErrInvalidRoomSize is returned when the configured room size is not positive.
	ErrInvalidRoomSize = errors.New("dungeon: invalid room size")
	// ErrInvalidCorridorStyle is returned for an unrecognised corridor style.
	ErrInvalidCorridorStyle = errors.New("dungeon: invalid corridor style")
	// ErrNilSource is returned when no random source is supplied.
	ErrNilSource = errors.New("dungeon: nil random source")
)
