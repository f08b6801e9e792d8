// Package config provides YAML-based game configuration loading.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Grid size limits accepted by Validate.
const (
	MinGridSize = 2
	MaxGridSize = 32
)

// GameConfig contains all configuration for the 2048 game.
type GameConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines board parameters.
type GridConfig struct {
	Size            int  `yaml:"size"`             // Dimension of the classic variant
	LargeSize       int  `yaml:"large_size"`       // Dimension of the large variant
	WithReplacement bool `yaml:"with_replacement"` // Draw spawn cells with replacement
}

// DisplayConfig defines how the board is laid out in the terminal.
type DisplayConfig struct {
	Colors       bool `yaml:"colors"`         // Color tiles by value
	MinCellWidth int  `yaml:"min_cell_width"` // Narrowest tile, in columns
	MaxCellWidth int  `yaml:"max_cell_width"` // Widest tile, in columns
}

// Validate checks that every value is in range.
func (c GameConfig) Validate() error {
	for name, size := range map[string]int{"grid.size": c.Grid.Size, "grid.large_size": c.Grid.LargeSize} {
		if size < MinGridSize || size > MaxGridSize {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d",
				ErrInvalidConfig, name, MinGridSize, MaxGridSize, size)
		}
	}
	if c.Display.MinCellWidth < 3 {
		return fmt.Errorf("%w: display.min_cell_width must be at least 3, got %d",
			ErrInvalidConfig, c.Display.MinCellWidth)
	}
	if c.Display.MaxCellWidth < c.Display.MinCellWidth {
		return fmt.Errorf("%w: display.max_cell_width (%d) is below min_cell_width (%d)",
			ErrInvalidConfig, c.Display.MaxCellWidth, c.Display.MinCellWidth)
	}
	return nil
}
