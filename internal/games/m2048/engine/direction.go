package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
// The ordinal is the number of clockwise quarter turns that makes the
// direction behave like "compact toward the top".
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions returns all directions in ordinal order.
func Directions() []Direction {
	return []Direction{DirUp, DirLeft, DirDown, DirRight}
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name ("up", "Left", "D", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "left", "l":
		return DirLeft, nil
	case "down", "d":
		return DirDown, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}
