package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/xonix/internal/registry"
	"github.com/vovakirdan/xonix/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top scores and lifetime stats for a mode (default: xonix).

Examples:
  xonix scores
  xonix scores xonix_siege --limit 20
  xonix scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := modeArg(args)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown mode %q, run 'xonix list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", game.Title())
		return nil
	}

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'xonix play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Area", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %5.1f%%  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Area*100, r.Outcome, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d  Avg: %.0f  Best area: %.1f%%\n",
			stats.GamesCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.BestArea*100)
	}
	return nil
}
