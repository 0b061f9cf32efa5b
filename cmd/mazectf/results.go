package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazectf/internal/storage"
)

var flagLimit int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded match results",
	Long: `Display the most recently recorded match results.

Examples:
  mazectf results
  mazectf results --limit 50`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of matches to show")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mazectf play <layout>' to record the first one!")
		return
	}

	fmt.Println("Recent matches")
	fmt.Println()
	fmt.Printf("  %-20s  %-24s  %-7s  %-12s  %s\n", "Layout", "Teams", "Score", "Winner", "Date")
	fmt.Printf("  %-20s  %-24s  %-7s  %-12s  %s\n", "------", "-----", "-----", "------", "----")

	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "(tie)"
		}
		teams := fmt.Sprintf("%s vs %s", m.Team0, m.Team1)
		score := fmt.Sprintf("%d:%d", m.Score0, m.Score1)
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-20s  %-24s  %-7s  %-12s  %s\n", m.Layout, teams, score, winner, dateStr)
	}
}
