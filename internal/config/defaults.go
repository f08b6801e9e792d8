package config

import (
	_ "embed"
)

//go:embed defaults/m2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hard-coded configuration.
// It matches defaults/m2048.yaml and backs any field a config file omits.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Size:            4,
			LargeSize:       12,
			WithReplacement: false,
		},
		Display: DisplayConfig{
			Colors:       true,
			MinCellWidth: 5,
			MaxCellWidth: 9,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
