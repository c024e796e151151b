package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	def := DefaultConfig()
	if cfg.Canvas != def.Canvas || cfg.Grid != def.Grid || cfg.Growth != def.Growth || cfg.Timing != def.Timing {
		t.Fatalf("embedded %+v differs from defaults %+v", cfg, def)
	}
	for name, p := range def.Difficulties {
		if cfg.Difficulties[name] != p {
			t.Errorf("difficulty %s: got %+v, want %+v", name, cfg.Difficulties[name], p)
		}
	}
}

func TestGameConversion(t *testing.T) {
	gc, err := DefaultConfig().Game()
	if err != nil {
		t.Fatalf("Game: %v", err)
	}
	if gc.InitialCells != 4 || gc.Scale.Max != 10 || gc.TickRate != 60 {
		t.Fatalf("unexpected game config %+v", gc)
	}
	p, err := gc.Policy.Resolve(memory.Fast)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.DisplayDelay != 100*time.Millisecond || p.MinimalDelay != 50*time.Millisecond {
		t.Fatalf("fast profile = %+v", p)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown difficulty", func(c *Config) { c.Difficulties["hard"] = DifficultyProfile{1, 1} }},
		{"missing difficulty", func(c *Config) { delete(c.Difficulties, "fast") }},
		{"negative delay", func(c *Config) { c.Difficulties["normal"] = DifficultyProfile{-1, 0} }},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }},
		{"no cells", func(c *Config) { c.Grid.InitialCells = 0 }},
		{"grid too large", func(c *Config) { c.Grid.MaxCells = 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, memory.ErrInvalidConfiguration) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("timing:\n  tick_rate: 30\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", cfg.Timing.TickRate)
	}
	if cfg.Timing.HighlightFrames != 20 || cfg.Grid.CellSize != 150 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  initial_cells: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.InitialCells != 6 {
		t.Fatalf("initial cells = %d, want 6", cfg.Grid.InitialCells)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.TickRate != 60 {
		t.Fatalf("tick rate = %d, want 60", cfg.Timing.TickRate)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	dir := filepath.Join(home, ".memory")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("growth:\n  every: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Growth.Every != 3 {
		t.Fatalf("growth every = %d, want 3", cfg.Growth.Every)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MEMORY_TICK_RATE", "30")
	t.Setenv("MEMORY_MAX_CELLS", "8")
	t.Setenv("MEMORY_SEED", "42")
	t.Setenv("MEMORY_DB", "/tmp/scores.db")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if e.Seed != 42 || e.DBPath != "/tmp/scores.db" {
		t.Fatalf("env = %+v", e)
	}
	cfg := DefaultConfig()
	e.Apply(&cfg)
	if cfg.Timing.TickRate != 30 || cfg.Grid.MaxCells != 8 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestEnvBadValue(t *testing.T) {
	t.Setenv("MEMORY_TICK_RATE", "fast")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Grid != DefaultConfig().Grid {
		t.Fatalf("grid = %+v", cfg.Grid)
	}
}
