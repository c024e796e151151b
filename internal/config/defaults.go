package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Grid: GridConfig{
			CellSize:     150,
			Padding:      30,
			InitialCells: 4,
			MaxCells:     10,
		},
		Growth: GrowthConfig{Every: 5, Step: 2},
		Timing: TimingConfig{
			TickRate:        60,
			HighlightFrames: 20,
			RoundPauseMs:    500,
			GrowPauseMs:     300,
			PressFlashMs:    100,
		},
		Difficulties: map[string]DifficultyProfile{
			"normal": {DisplayDelayMs: 500, MinimalDelayMs: 100},
			"fast":   {DisplayDelayMs: 100, MinimalDelayMs: 50},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
