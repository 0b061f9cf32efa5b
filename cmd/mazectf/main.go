// mazectf referees capture-the-flag maze matches between autonomous agents.
//
// Usage:
//
//	mazectf play <layout>    - Referee a match and print the result
//	mazectf watch <layout>   - Referee a match with a live board view
//	mazectf agents           - List built-in agents
//	mazectf results          - Show recorded match results
//
// Global flags:
//
//	--seed <value>  - Match seed for reproducible games (0 = random)
//	--db <path>     - Results database path (default: ~/.mazectf/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazectf",
	Short: "mazectf - Referee capture-the-flag maze matches in your terminal",
	Long: `mazectf is a deterministic referee for two-team capture-the-flag maze
matches between autonomous agents.

Available commands:
  play     - Referee a match to completion
  watch    - Referee a match with a live board view
  agents   - List built-in agents
  results  - Show recorded match results

Examples:
  mazectf play configs/layouts/demo.layout
  mazectf play configs/layouts/demo.layout --seed 20 --rounds 200
  mazectf watch configs/layouts/demo.layout --left random,random --right nq_random,stopping
  mazectf results`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Match seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazectf/matches.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(resultsCmd)
}
