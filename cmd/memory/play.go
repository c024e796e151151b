package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/audio"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagDifficulty string
	flagLogFile    string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Mouse      - Click cells and menu buttons
  Enter      - Start / restart
  N/1, F/2   - Choose normal or fast
  1-9, 0     - Press cell 1..10
  Tab        - High scores (title screen)
  Q/Ctrl+C   - Quit

Difficulty options:
  normal - 500ms highlight, 100ms gap
  fast   - 100ms highlight, 50ms gap

Examples:
  memory play
  memory play --difficulty fast
  memory play --seed 42 --log ./memory.log
  memory play --config ./my-memory.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menus and start at: normal, fast")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	var difficulty memory.Difficulty
	if flagDifficulty != "" {
		if difficulty, err = memory.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	// The TUI owns stdout, so logs go to a file or nowhere
	var logger *log.Logger
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "memory",
		})
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(s.dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound memory.Sound
	if !flagMute {
		player := audio.NewPlayer(flagVolume)
		if err := player.Initialize(); err != nil {
			if logger != nil {
				logger.Warn("sound disabled", "error", err)
			}
		} else {
			defer player.Close()
			sound = player
		}
	}

	return tui.Run(tui.Options{
		Game:       s.game,
		Seed:       s.seed,
		Difficulty: difficulty,
		Store:      store,
		Sound:      sound,
		Logger:     logger,
		Width:      width,
		Height:     height,
	})
}
