// memory is a sequence-recall game for the terminal.
//
// Usage:
//
//	memory play              - Play in this terminal
//	memory serve             - Start SSH server for remote play
//	memory scores [level]    - Show high scores
//	memory config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.memory/scores.db)
//	--config <path>  - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Sequence - repeat the pattern, grow the grid",
	Long: `Memory Sequence lights up a growing sequence of cells.
Repeat it by clicking (or pressing the cell's number key).
Every five rounds the grid grows by two cells, up to ten.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Environment:
  MEMORY_TICK_RATE, MEMORY_MAX_CELLS, MEMORY_SEED, MEMORY_DB

Examples:
  memory play
  memory play --difficulty fast
  memory serve --ssh :2222
  memory scores normal`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default "+storage.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// settings is everything the commands resolve from files, env and flags.
type settings struct {
	file   config.Config
	game   memory.Config
	seed   int64
	dbPath string
}

// loadSettings applies config file, then environment, then flags.
func loadSettings() (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	env, err := config.LoadEnv()
	if err != nil {
		return settings{}, err
	}
	env.Apply(&cfg)
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	game, err := cfg.Game()
	if err != nil {
		return settings{}, err
	}

	s := settings{file: cfg, game: game, seed: env.Seed, dbPath: env.DBPath}
	if flagSeed != 0 {
		s.seed = flagSeed
	}
	if flagDBPath != "" {
		s.dbPath = flagDBPath
	}
	return s, nil
}
