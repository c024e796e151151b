// Package config provides YAML-based game configuration loading with
// environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Config contains all configuration for the memory game.
type Config struct {
	Canvas       CanvasConfig                 `yaml:"canvas"`
	Grid         GridConfig                   `yaml:"grid"`
	Growth       GrowthConfig                 `yaml:"growth"`
	Timing       TimingConfig                 `yaml:"timing"`
	Difficulties map[string]DifficultyProfile `yaml:"difficulties"`
}

// CanvasConfig is the logical size clicks and cells are expressed in.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines cell geometry and counts.
type GridConfig struct {
	CellSize     int `yaml:"cell_size"`
	Padding      int `yaml:"padding"`
	InitialCells int `yaml:"initial_cells"`
	MaxCells     int `yaml:"max_cells"`
}

// GrowthConfig defines when and by how much the grid grows.
type GrowthConfig struct {
	Every int `yaml:"every"`
	Step  int `yaml:"step"`
}

// TimingConfig defines tick rate and pauses.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`
	HighlightFrames int `yaml:"highlight_frames"`
	RoundPauseMs    int `yaml:"round_pause_ms"`
	GrowPauseMs     int `yaml:"grow_pause_ms"`
	PressFlashMs    int `yaml:"press_flash_ms"`
}

// DifficultyProfile defines playback timing for one difficulty.
type DifficultyProfile struct {
	DisplayDelayMs int `yaml:"display_delay_ms"`
	MinimalDelayMs int `yaml:"minimal_delay_ms"`
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Game converts the configuration into validated game settings.
// Unknown difficulty names fail with memory.ErrInvalidConfiguration.
func (c Config) Game() (memory.Config, error) {
	profiles := make(map[memory.Difficulty]memory.Profile, len(c.Difficulties))
	for name, p := range c.Difficulties {
		d, err := memory.ParseDifficulty(name)
		if err != nil {
			return memory.Config{}, fmt.Errorf("config: difficulties: %w", err)
		}
		profiles[d] = memory.Profile{
			DisplayDelay: ms(p.DisplayDelayMs),
			MinimalDelay: ms(p.MinimalDelayMs),
		}
	}
	policy, err := memory.NewPolicy(profiles)
	if err != nil {
		return memory.Config{}, fmt.Errorf("config: difficulties: %w", err)
	}

	gc := memory.Config{
		Grid: memory.GridSpec{
			CanvasW:  c.Canvas.Width,
			CanvasH:  c.Canvas.Height,
			CellSize: c.Grid.CellSize,
			Padding:  c.Grid.Padding,
		},
		InitialCells: c.Grid.InitialCells,
		Scale: memory.ScalePolicy{
			Every: c.Growth.Every,
			Step:  c.Growth.Step,
			Max:   c.Grid.MaxCells,
		},
		Policy:          policy,
		TickRate:        c.Timing.TickRate,
		HighlightFrames: c.Timing.HighlightFrames,
		RoundPause:      ms(c.Timing.RoundPauseMs),
		GrowPause:       ms(c.Timing.GrowPauseMs),
		PressFlash:      ms(c.Timing.PressFlashMs),
	}
	if err := gc.Validate(); err != nil {
		return memory.Config{}, fmt.Errorf("config: %w", err)
	}
	return gc, nil
}

// Validate reports whether the configuration can run a game.
func (c Config) Validate() error {
	_, err := c.Game()
	return err
}
