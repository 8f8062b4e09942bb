package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravflip/internal/platform/tui"
	"github.com/vovakirdan/gravflip/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times and recent runs",
	Long: `Browse the run history. By default an interactive table is shown;
use --plain to print the fastest wins instead.

Examples:
  gravflip scores
  gravflip scores --plain
  gravflip scores --plain --player alice --limit 5
  gravflip scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print best times as text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only print runs of this player with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("error clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if !flagPlain {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	var runs []storage.Run
	var err error
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.BestTimes(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	if flagPlayer != "" {
		fmt.Printf("Runs - %s\n", flagPlayer)
	} else {
		fmt.Println("Best Times - Path to Love")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gravflip play' to set the first time!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-9s  %-6s  %-12s  %s\n", "Rank", "Result", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-9s  %-6s  %-12s  %s\n", "----", "------", "----", "------", "----")

	for i, r := range runs {
		result := "Win"
		if r.Outcome == storage.OutcomeGameOver {
			result = "Game Over"
		}
		fmt.Printf("  %-4d  %-9s  %-6s  %-12s  %s\n",
			i+1, result, fmt.Sprintf("%d:%02d", r.Seconds/60, r.Seconds%60), r.Player,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil && stats.Wins > 0 {
		fmt.Println()
		fmt.Printf("Best: %ds  Wins: %d/%d\n", stats.BestSeconds, stats.Wins, stats.Runs)
	}
	return nil
}
