package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazectf/internal/agent"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List built-in agents",
	Long: `Show all registered agents usable in --left and --right rosters.

Example:
  mazectf agents`,
	Run: runAgents,
}

func runAgents(cmd *cobra.Command, args []string) {
	names := agent.List()
	if len(names) == 0 {
		fmt.Println("No agents registered.")
		return
	}

	fmt.Println("Available agents:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Use them in rosters: mazectf play <layout> --left random,stopping --right nq_random,speaking")
}
