package memory

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no cells", func(c *Config) { c.InitialCells = 0 }},
		{"max below initial", func(c *Config) { c.Scale.Max = 2 }},
		{"zero milestone", func(c *Config) { c.Scale.Every = 0 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative pause", func(c *Config) { c.RoundPause = -time.Second }},
		{"missing policy", func(c *Config) { c.Policy = Policy{} }},
		{"grid overflows canvas", func(c *Config) { c.Scale.Max = 30 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestTicks(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		d    time.Duration
		want int
	}{
		{500 * time.Millisecond, 30},
		{100 * time.Millisecond, 6},
		{50 * time.Millisecond, 3},
		{10 * time.Millisecond, 1}, // rounds up
		{0, 1},                     // never below one tick
	}
	for _, tc := range tests {
		if got := cfg.ticks(tc.d); got != tc.want {
			t.Errorf("ticks(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
