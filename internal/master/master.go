package master

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazectf/internal/agent"
	"github.com/vovakirdan/mazectf/internal/game"
)

// Config holds the match parameters.
type Config struct {
	// Rounds is the round budget: one round is one full pass where every
	// bot moves once, in ascending id order.
	Rounds int

	// Seed is the root of all match randomness. Zero means pick one from
	// the clock at construction; the chosen value is recorded for replay.
	Seed int64

	// Noise is the fog-of-war policy applied to agent-visible snapshots.
	Noise agent.Noise

	// MoveTimeout bounds each GetMove call. Zero disables the deadline.
	MoveTimeout time.Duration

	// KillPoints is the score bonus for destroying an enemy bot.
	KillPoints int

	// FatalAgentErrors aborts the match on any agent fault instead of
	// forfeiting the single move. Off by default: one misbehaving agent
	// must not kill a match.
	FatalAgentErrors bool
}

type phase int

const (
	phaseUninitialized phase = iota
	phaseInitialized
	phaseRunning
	phaseFinished
)

// GameMaster is the round scheduler. It exclusively owns the live universe
// and advances it by producing a new universe value per bot move.
type GameMaster struct {
	cfg      Config
	logger   *log.Logger
	resolver *game.Resolver

	universe  *game.Universe
	teams     [2]*agent.Team
	gateways  []*agent.Gateway
	observers []Observer
	noiseRNG  *rand.Rand

	phase        phase
	roundsPlayed int
	botTalk      []string
	winner       *int
	replay       []Step
	startedAt    time.Time
}

// New builds a match from a layout, two teams and a config. Setup errors
// (malformed layout, team contract violations) surface immediately.
func New(layoutText string, teams [2]*agent.Team, numBots int, cfg Config, logger *log.Logger) (*GameMaster, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("master: round budget must be positive, got %d", cfg.Rounds)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	universe, err := game.NewUniverse(layoutText, numBots)
	if err != nil {
		return nil, err
	}

	for t, team := range teams {
		if team == nil {
			return nil, &agent.ContractError{Reason: fmt.Sprintf("team %d is nil", t)}
		}
		if err := team.Bind(universe.Teams[t].BotIDs); err != nil {
			return nil, err
		}
		universe.Teams[t].Name = team.Name
	}

	gateways := make([]*agent.Gateway, numBots)
	for id := 0; id < numBots; id++ {
		if teams[id%game.NumTeams].AgentFor(id) == nil {
			return nil, &agent.ContractError{Reason: fmt.Sprintf("no agent controls bot %d", id)}
		}
		gateways[id] = agent.NewGateway(id, cfg.Seed)
	}

	return &GameMaster{
		cfg:      cfg,
		logger:   logger,
		resolver: game.NewResolver(cfg.KillPoints),
		universe: universe,
		teams:    teams,
		gateways: gateways,
		noiseRNG: rand.New(rand.NewSource(cfg.Seed)),
		botTalk:  make([]string, numBots),
	}, nil
}

// RegisterObserver adds a passive observer. Observers are notified in
// registration order.
func (gm *GameMaster) RegisterObserver(o Observer) {
	gm.observers = append(gm.observers, o)
}

// Universe returns the current authoritative universe value.
func (gm *GameMaster) Universe() *game.Universe {
	return gm.universe
}

// Seed returns the match seed, chosen at construction if it was unset.
func (gm *GameMaster) Seed() int64 {
	return gm.cfg.Seed
}

// RoundsPlayed returns the number of completed rounds.
func (gm *GameMaster) RoundsPlayed() int {
	return gm.roundsPlayed
}

// RoundBudget returns the configured round budget.
func (gm *GameMaster) RoundBudget() int {
	return gm.cfg.Rounds
}

// Winner returns the winning team index once the match is finished. The
// second return is false while the match is running or after a tie.
func (gm *GameMaster) Winner() (int, bool) {
	if gm.winner == nil {
		return 0, false
	}
	return *gm.winner, true
}

// Finished reports whether the match has reached its terminal state.
func (gm *GameMaster) Finished() bool {
	return gm.phase == phaseFinished
}

// Replay returns the in-memory replay log: the initial universe followed by
// every committed step with the record describing it.
func (gm *GameMaster) Replay() []Step {
	return gm.replay
}

// SetInitial transitions the match to Initialized: every agent's optional
// SetInitial hook runs with its initial (noised) view, then observers are
// notified with the initial universe.
func (gm *GameMaster) SetInitial() error {
	if gm.phase != phaseUninitialized {
		return fmt.Errorf("master: match already initialized")
	}
	gm.startedAt = time.Now()

	for id, gw := range gm.gateways {
		bot := &gm.universe.Bots[id]
		view := gm.cfg.Noise.Apply(gm.universe, bot.TeamIndex, gm.noiseRNG)
		gw.BeginTurn(view)
		ag := gm.teams[bot.TeamIndex].AgentFor(id)
		if init, ok := ag.(agent.Initializer); ok {
			init.SetInitial(gw)
		}
	}

	// The initial state opens the replay log. Observers get their dedicated
	// SetInitial call instead of an Observe for it.
	gm.replay = append(gm.replay, Step{Universe: gm.universe, Record: Record{
		GameTime: gm.cfg.Rounds,
		TeamName: gm.teamNames(),
		BotTalk:  gm.talkSnapshot(),
		Seed:     gm.cfg.Seed,
	}})
	for _, o := range gm.observers {
		o.SetInitial(gm.universe)
	}

	gm.phase = phaseInitialized
	gm.logger.Info("match initialized",
		"bots", len(gm.universe.Bots),
		"rounds", gm.cfg.Rounds,
		"seed", gm.cfg.Seed,
		"noise", gm.cfg.Noise.Enabled)
	return nil
}

// PlayRound plays one full round: every bot moves once in ascending id
// order. Agent faults (timeout, illegal move, panic, returned error) forfeit
// that bot's move to Stop unless FatalAgentErrors is set. Completing the last
// budgeted round finishes the match by score. Calling PlayRound on a finished
// match fails with RoundExhaustedError.
func (gm *GameMaster) PlayRound() error {
	if gm.phase == phaseUninitialized {
		if err := gm.SetInitial(); err != nil {
			return err
		}
	}
	if gm.phase == phaseFinished || gm.roundsPlayed >= gm.cfg.Rounds {
		return &RoundExhaustedError{Played: gm.roundsPlayed, Budget: gm.cfg.Rounds}
	}
	gm.phase = phaseRunning

	round := gm.roundsPlayed
	for botID := range gm.universe.Bots {
		dir, moveErr := gm.requestMove(botID)

		var next *game.Universe
		if moveErr == nil {
			next, moveErr = gm.resolver.Apply(gm.universe, botID, dir)
		}
		if moveErr != nil {
			if gm.cfg.FatalAgentErrors {
				return fmt.Errorf("master: bot %d fault in round %d: %w", botID, round, moveErr)
			}
			gm.logger.Warn("move forfeited", "bot", botID, "round", round, "err", moveErr)
			// Stop is always legal, so the fallback apply cannot fail.
			next, _ = gm.resolver.Apply(gm.universe, botID, game.Stop)
		}
		next.RoundIndex = round
		gm.universe = next

		id := botID
		gm.commit(Record{
			RoundIndex: round,
			GameTime:   gm.cfg.Rounds,
			BotID:      &id,
			TeamName:   gm.teamNames(),
			BotTalk:    gm.talkSnapshot(),
			Seed:       gm.cfg.Seed,
		})

		if team, won := gm.resolver.Winner(gm.universe); won {
			gm.roundsPlayed = round + 1
			gm.finish(&team)
			return nil
		}
	}

	gm.roundsPlayed = round + 1
	if gm.roundsPlayed >= gm.cfg.Rounds {
		gm.finishFinal()
	}
	return nil
}

// Play runs rounds until the budget is exhausted or an early win occurs,
// then finishes the match with a final observer notification.
func (gm *GameMaster) Play() error {
	for gm.phase != phaseFinished && gm.roundsPlayed < gm.cfg.Rounds {
		if err := gm.PlayRound(); err != nil {
			return err
		}
	}
	if gm.phase != phaseFinished {
		gm.finishFinal()
	}
	return nil
}

// finishFinal decides the outcome by score once the budget is spent.
func (gm *GameMaster) finishFinal() {
	if team, won := gm.resolver.FinalWinner(gm.universe); won {
		gm.finish(&team)
	} else {
		gm.finish(nil)
	}
}

// requestMove asks one agent for a move, racing the call against the
// configured deadline. A late result is discarded: only the scheduler ever
// commits moves, so an overrunning computation cannot leak into the shared
// universe.
func (gm *GameMaster) requestMove(botID int) (game.Direction, error) {
	bot := &gm.universe.Bots[botID]
	gw := gm.gateways[botID]
	gw.BeginTurn(gm.cfg.Noise.Apply(gm.universe, bot.TeamIndex, gm.noiseRNG))

	ag := gm.teams[bot.TeamIndex].AgentFor(botID)

	type result struct {
		dir game.Direction
		err error
	}
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				ch <- result{err: &AgentPanicError{BotID: botID, Value: v}}
			}
		}()
		dir, err := ag.GetMove(gw)
		ch <- result{dir: dir, err: err}
	}()

	if gm.cfg.MoveTimeout <= 0 {
		r := <-ch
		gm.botTalk[botID] = gw.Talk()
		return r.dir, r.err
	}

	timer := time.NewTimer(gm.cfg.MoveTimeout)
	defer timer.Stop()
	select {
	case r := <-ch:
		gm.botTalk[botID] = gw.Talk()
		return r.dir, r.err
	case <-timer.C:
		return game.Stop, &AgentTimeoutError{BotID: botID, Timeout: gm.cfg.MoveTimeout}
	}
}

// finish moves the match to its terminal state and emits the final record.
func (gm *GameMaster) finish(team *int) {
	gm.phase = phaseFinished
	gm.winner = team

	record := Record{
		RoundIndex: gm.roundsPlayed,
		GameTime:   gm.cfg.Rounds,
		Finished:   true,
		TeamWins:   team,
		TeamName:   gm.teamNames(),
		BotTalk:    gm.talkSnapshot(),
		Seed:       gm.cfg.Seed,
	}
	gm.commit(record)

	if team != nil {
		gm.logger.Info("match finished",
			"winner", gm.teams[*team].Name,
			"score", fmt.Sprintf("%d:%d", gm.universe.Teams[0].Score, gm.universe.Teams[1].Score),
			"rounds", gm.roundsPlayed,
			"duration", time.Since(gm.startedAt))
	} else {
		gm.logger.Info("match finished in a tie",
			"score", fmt.Sprintf("%d:%d", gm.universe.Teams[0].Score, gm.universe.Teams[1].Score),
			"rounds", gm.roundsPlayed,
			"duration", time.Since(gm.startedAt))
	}
}

// commit appends a step to the replay log and notifies observers.
func (gm *GameMaster) commit(record Record) {
	gm.replay = append(gm.replay, Step{Universe: gm.universe, Record: record})
	for _, o := range gm.observers {
		o.Observe(gm.universe, record)
	}
}

func (gm *GameMaster) teamNames() [2]string {
	return [2]string{gm.teams[0].Name, gm.teams[1].Name}
}

// talkSnapshot copies the per-bot talk lines so handed-out records stay
// immutable.
func (gm *GameMaster) talkSnapshot() []string {
	talk := make([]string, len(gm.botTalk))
	copy(talk, gm.botTalk)
	return talk
}
