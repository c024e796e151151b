package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores, per difficulty.

Examples:
  memory scores
  memory scores fast
  memory scores -i          # browse in a table
  memory scores fast --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of the given difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulties := memory.Difficulties()
	if len(args) == 1 {
		d, err := memory.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		difficulties = []memory.Difficulty{d}
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}
	store, err := storage.Open(s.dbPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if len(args) == 0 {
			return fmt.Errorf("--clear needs a difficulty")
		}
		if err := store.ClearScores(difficulties[0]); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", difficulties[0])
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, difficulties[0], width, height)
	}

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, d); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, d memory.Difficulty) error {
	scores, err := store.TopScores(d, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", d.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'memory play --difficulty %s' to set the first high score!\n", d)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Cells", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.Cells, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(d)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Avg: %.1f\n", stats.HighScore, stats.Games, stats.AvgScore)
	}
	return nil
}
