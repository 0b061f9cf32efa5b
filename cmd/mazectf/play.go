package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazectf/internal/agent"
	"github.com/vovakirdan/mazectf/internal/config"
	"github.com/vovakirdan/mazectf/internal/game"
	"github.com/vovakirdan/mazectf/internal/master"
	"github.com/vovakirdan/mazectf/internal/storage"
	"github.com/vovakirdan/mazectf/internal/viewer"
)

var (
	flagConfig    string
	flagRounds    int
	flagNoise     bool
	flagTimeout   time.Duration
	flagLeft      string
	flagRight     string
	flagLeftName  string
	flagRightName string
	flagView      string
	flagNoSave    bool
	flagVerbose   bool
)

var playCmd = &cobra.Command{
	Use:   "play <layout>",
	Short: "Referee a match to completion",
	Long: `Load a layout file, assemble both teams and referee the match.

The layout uses '#' for walls, '.' for food, spaces for free cells and
digits for bot start positions. Bots alternate team by id parity: even
ids play for the left team, odd ids for the right team.

Rosters are comma-separated agent names, one per bot of that team, e.g.
--left random,stopping. Run 'mazectf agents' for the available agents.

Examples:
  mazectf play configs/layouts/demo.layout
  mazectf play configs/layouts/demo.layout --rounds 200 --seed 20
  mazectf play configs/layouts/demo.layout --left random,random --right nq_random,nq_random
  mazectf play configs/layouts/demo.layout --noise --view ascii`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addMatchFlags(playCmd)
	playCmd.Flags().StringVar(&flagView, "view", "progress", "Viewer: progress, ascii, dump, none")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the result")
}

// addMatchFlags registers the flags shared by play and watch.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	cmd.Flags().IntVar(&flagRounds, "rounds", 0, "Round budget (overrides config)")
	cmd.Flags().BoolVar(&flagNoise, "noise", false, "Enable fog-of-war noise")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Per-move time budget (overrides config)")
	cmd.Flags().StringVar(&flagLeft, "left", "random,random", "Left team roster (comma-separated agents)")
	cmd.Flags().StringVar(&flagRight, "right", "random,random", "Right team roster (comma-separated agents)")
	cmd.Flags().StringVar(&flagLeftName, "left-name", "blue", "Left team name")
	cmd.Flags().StringVar(&flagRightName, "right-name", "red", "Right team name")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log per-move diagnostics")
}

func runPlay(cmd *cobra.Command, args []string) {
	gm, layoutName := buildMatch(args[0])

	switch flagView {
	case "ascii":
		gm.RegisterObserver(viewer.NewAscii(os.Stdout))
	case "dump":
		gm.RegisterObserver(viewer.NewDump(os.Stdout))
	case "progress":
		gm.RegisterObserver(viewer.NewProgress(os.Stdout))
	case "none":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown viewer %q\n", flagView)
		os.Exit(1)
	}

	started := time.Now()
	if err := gm.Play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
		os.Exit(1)
	}

	if !flagNoSave {
		saveResult(gm, layoutName, time.Since(started))
	}
}

// buildMatch loads the config, parses rosters and constructs the game
// master. Any setup failure (bad layout, bad roster) exits non-zero with a
// readable message.
func buildMatch(layoutPath string) (*master.GameMaster, string) {
	matchCfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagRounds > 0 {
		matchCfg.Rounds = flagRounds
	}
	if flagSeed != 0 {
		matchCfg.Seed = flagSeed
	}
	if flagNoise {
		matchCfg.Noise.Enabled = true
	}
	if flagTimeout > 0 {
		matchCfg.Timeout = config.MoveTimeout{Enabled: true, Budget: config.Duration(flagTimeout)}
	}

	layoutText, err := os.ReadFile(layoutPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read layout %s: %v\n", layoutPath, err)
		os.Exit(1)
	}

	left := buildTeam(flagLeftName, flagLeft)
	right := buildTeam(flagRightName, flagRight)
	numBots := len(left.Agents) + len(right.Agents)

	logger := log.New(os.Stderr)
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mazectf",
		})
	} else {
		logger.SetLevel(log.ErrorLevel)
	}

	cfg := master.Config{
		Rounds:     matchCfg.Rounds,
		Seed:       matchCfg.Seed,
		KillPoints: matchCfg.KillPoints,
		Noise: agent.Noise{
			Enabled:       matchCfg.Noise.Enabled,
			SightDistance: matchCfg.Noise.SightDistance,
			NoiseRadius:   matchCfg.Noise.NoiseRadius,
		},
	}
	if matchCfg.Timeout.Enabled {
		cfg.MoveTimeout = matchCfg.Timeout.Budget.Std()
	}

	gm, err := master.New(string(layoutText), [2]*agent.Team{left, right}, numBots, cfg, logger)
	if err != nil {
		var layoutErr *game.LayoutError
		if errors.As(err, &layoutErr) {
			fmt.Fprintf(os.Stderr, "Error: invalid layout %s: %v\n", layoutPath, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	return gm, filepath.Base(layoutPath)
}

// buildTeam instantiates a roster of registered agents.
func buildTeam(name, roster string) *agent.Team {
	var agents []agent.Agent
	for _, agentName := range strings.Split(roster, ",") {
		agentName = strings.TrimSpace(agentName)
		a, err := agent.Create(agentName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'mazectf agents' to see available agents.")
			os.Exit(1)
		}
		agents = append(agents, a)
	}

	team, err := agent.NewTeam(name, agents...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return team
}

// saveResult records the outcome, best effort: a broken database must not
// fail a finished match.
func saveResult(gm *master.GameMaster, layoutName string, elapsed time.Duration) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return
	}
	defer store.Close()

	u := gm.Universe()
	result := storage.MatchResult{
		Layout:   layoutName,
		Team0:    u.Teams[0].Name,
		Team1:    u.Teams[1].Name,
		Score0:   u.Teams[0].Score,
		Score1:   u.Teams[1].Score,
		Seed:     gm.Seed(),
		Rounds:   gm.RoundsPlayed(),
		Duration: int(elapsed.Seconds()),
	}
	if team, ok := gm.Winner(); ok {
		result.Winner = u.Teams[team].Name
	}
	if _, err := store.SaveMatch(result); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save match result: %v\n", err)
	}
}
