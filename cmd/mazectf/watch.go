package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazectf/internal/viewer"
)

var flagInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <layout>",
	Short: "Referee a match with a live board view",
	Long: `Referee a match and render the board live in the terminal,
one round per tick.

Controls:
  Space/P - Pause
  N       - Step one round while paused
  Q       - Quit

Examples:
  mazectf watch configs/layouts/demo.layout
  mazectf watch configs/layouts/demo.layout --interval 100ms --seed 20`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	addMatchFlags(watchCmd)
	watchCmd.Flags().DurationVar(&flagInterval, "interval", 200*time.Millisecond, "Delay between rounds")
}

func runWatch(cmd *cobra.Command, args []string) {
	gm, _ := buildMatch(args[0])

	// Warn early when the board will not fit.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		u := gm.Universe()
		if u.Grid.Width() > w || u.Grid.Height()+3 > h {
			fmt.Fprintf(os.Stderr, "Warning: %dx%d board may not fit a %dx%d terminal\n",
				u.Grid.Width(), u.Grid.Height(), w, h)
		}
	}

	if err := viewer.Watch(gm, flagInterval); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}
