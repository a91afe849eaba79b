package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lava-tower/internal/registry"
	"github.com/vovakirdan/lava-tower/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 runs and totals for the specified variant.

With --clear the recorded runs of the variant are deleted instead.

Examples:
  tower scores tower
  tower scores tower_plus
  tower scores tower --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var flagClearScores bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded run of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tower list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs of %s.\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tower play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, e := range scores {
		secs := e.Ticks / 60
		fmt.Printf("  %-4d  %-6d  %-7s  %-6s  %s\n",
			i+1, e.Score, e.Outcome,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("Runs: %d  Escapes: %d  Best: %d  Average: %.1f\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore)
	}
	if total, err := store.TotalStats(); err == nil && stats != nil && total.GamesCount > stats.GamesCount {
		fmt.Printf("All towers: %d runs, %d escapes, best %d\n",
			total.GamesCount, total.Wins, total.HighScore)
	}
}
