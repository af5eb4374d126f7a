package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  brickfall scores
  brickfall scores --limit 3
  brickfall scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := openScores()
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("scores are disabled in the config")
	}
	defer store.Close()

	entries, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Brickfall")
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'brickfall play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", entries[0].Score)
	return nil
}
