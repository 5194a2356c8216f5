package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazecaster/internal/registry"
	"github.com/vovakirdan/mazecaster/internal/storage"
)

var flagJournal bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show escape scores for a variant",
	Long: `Display the top 10 escape scores for the specified variant.
With --journal, list the most recent save signals instead.

Examples:
  mazecaster scores maze
  mazecaster scores maze --journal`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagJournal, "journal", false, "Show recent started/escaped events")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'mazecaster list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagJournal {
		return printJournal(cmd, store, gameID, title)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'mazecaster play %s' and find the way out!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(out)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "Best: %d  Escapes: %d\n", stats.HighScore, stats.GamesCount)
	}
	return nil
}

func printJournal(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	out := cmd.OutOrStdout()

	entries, err := store.RecentSignals(gameID, 20)
	if err != nil {
		return fmt.Errorf("retrieving journal: %w", err)
	}

	fmt.Fprintf(out, "Journal - %s\n", title)
	fmt.Fprintln(out)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-19s  %-8s  %s\n", "Date", "Event", "Player")
	fmt.Fprintf(out, "  %-19s  %-8s  %s\n", "----", "-----", "------")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-19s  %-8s  %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Token, e.Session)
	}
	return nil
}
