package memory

import (
	"fmt"
	"time"
)

// Config holds every tunable of the game loop.
type Config struct {
	Grid            GridSpec
	InitialCells    int
	Scale           ScalePolicy
	Policy          Policy
	TickRate        int           // Ticks per second
	HighlightFrames int           // Ticks added to every highlight for the fade in
	RoundPause      time.Duration // Pause before each round's playback
	GrowPause       time.Duration // Extra pause after the grid grows
	PressFlash      time.Duration // How long a pressed cell stays lit
}

// DefaultConfig returns the classic settings: four starting cells growing to
// ten, 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Grid:            DefaultGridSpec(),
		InitialCells:    4,
		Scale:           DefaultScalePolicy(),
		Policy:          DefaultPolicy(),
		TickRate:        60,
		HighlightFrames: 20,
		RoundPause:      500 * time.Millisecond,
		GrowPause:       300 * time.Millisecond,
		PressFlash:      100 * time.Millisecond,
	}
}

// Validate checks the settings before any session starts.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.InitialCells < 1 {
		return fmt.Errorf("%w: initial cells must be at least 1, got %d", ErrInvalidConfiguration, c.InitialCells)
	}
	if c.Scale.Max < c.InitialCells {
		return fmt.Errorf("%w: max cells %d below initial cells %d", ErrInvalidConfiguration, c.Scale.Max, c.InitialCells)
	}
	if c.Scale.Every < 1 || c.Scale.Step < 1 {
		return fmt.Errorf("%w: growth every %d by %d", ErrInvalidConfiguration, c.Scale.Every, c.Scale.Step)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfiguration, c.TickRate)
	}
	if c.HighlightFrames < 0 || c.RoundPause < 0 || c.GrowPause < 0 || c.PressFlash < 0 {
		return fmt.Errorf("%w: negative timing", ErrInvalidConfiguration)
	}
	for _, d := range Difficulties() {
		if _, err := c.Policy.Resolve(d); err != nil {
			return err
		}
	}

	// The largest grid must still fit on the canvas
	cols, rows := Dimensions(c.Scale.Max)
	w := cols*c.Grid.CellSize + (cols-1)*c.Grid.Padding
	h := rows*c.Grid.CellSize + (rows-1)*c.Grid.Padding
	if w > c.Grid.CanvasW || h > c.Grid.CanvasH {
		return fmt.Errorf("%w: %d cells need %dx%d, canvas is %dx%d",
			ErrInvalidConfiguration, c.Scale.Max, w, h, c.Grid.CanvasW, c.Grid.CanvasH)
	}
	return nil
}

// ticks converts a duration to whole ticks, rounding up, never below one.
func (c Config) ticks(d time.Duration) int {
	n := int((d*time.Duration(c.TickRate) + time.Second - 1) / time.Second)
	return max(n, 1)
}
