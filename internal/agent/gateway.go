package agent

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/mazectf/internal/game"
)

// Gateway is the boundary object an agent acts through. It exposes a
// read-only, possibly noised view of the universe, the agent's own seeded
// random stream and wall-time accounting for the current move. Gateways
// never mutate shared state; the scheduler hands each one a fresh snapshot
// per turn.
type Gateway struct {
	botID int
	rng   *rand.Rand

	mu        sync.Mutex
	universe  *game.Universe
	history   []*game.Universe
	seed      int64
	moveStart time.Time
	talk      string
}

// StreamSeed derives an agent's random stream seed from the match seed and
// the agent's bot index. It is a pure function, so a bot's stream depends
// only on (seed, index) regardless of which other agents are present.
func StreamSeed(matchSeed int64, botID int) int64 {
	return matchSeed + int64(botID)
}

// NewGateway creates the gateway for one bot. The random stream is seeded
// deterministically from the match seed.
func NewGateway(botID int, matchSeed int64) *Gateway {
	return &Gateway{
		botID: botID,
		rng:   rand.New(rand.NewSource(StreamSeed(matchSeed, botID))),
		seed:  matchSeed,
	}
}

// BeginTurn installs the universe snapshot for the coming move and starts
// the move clock. The gateway keeps its own deep copy: an agent scribbling
// on its view, even from a goroutine whose result was already discarded,
// must never reach the shared universe. Called by the scheduler only.
func (g *Gateway) BeginTurn(u *game.Universe) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.universe = u.Clone()
	g.history = append(g.history, g.universe)
	g.moveStart = time.Now()
	g.talk = ""
}

// BotID returns the id of the bot this gateway controls.
func (g *Gateway) BotID() int {
	return g.botID
}

// Rand returns the agent's own seeded random stream.
func (g *Gateway) Rand() *rand.Rand {
	return g.rng
}

// Seed returns the match seed the stream was derived from.
func (g *Gateway) Seed() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seed
}

// Universe returns the current (possibly noised) universe snapshot.
func (g *Gateway) Universe() *game.Universe {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.universe
}

// History returns all universe snapshots this agent has been shown, oldest
// first. The slice must not be mutated.
func (g *Gateway) History() []*game.Universe {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.history
}

// Me returns the bot this gateway controls.
func (g *Gateway) Me() game.Bot {
	return g.Universe().Bots[g.botID]
}

// CurrentPos returns the bot's current position.
func (g *Gateway) CurrentPos() game.Position {
	return g.Me().CurrentPos
}

// PreviousPos returns the bot's position before its last move.
func (g *Gateway) PreviousPos() game.Position {
	return g.Me().PreviousPos
}

// InitialPos returns the bot's spawn position.
func (g *Gateway) InitialPos() game.Position {
	return g.Me().InitialPos
}

// TeamIndex returns the index of the bot's team.
func (g *Gateway) TeamIndex() int {
	return g.Me().TeamIndex
}

// Team returns the bot's own team.
func (g *Gateway) Team() *game.Team {
	return g.Universe().Teams[g.TeamIndex()]
}

// EnemyTeam returns the opposing team.
func (g *Gateway) EnemyTeam() *game.Team {
	return g.Universe().Teams[1-g.TeamIndex()]
}

// TeamBots returns the bots on the agent's own team.
func (g *Gateway) TeamBots() []game.Bot {
	return g.Universe().TeamBots(g.TeamIndex())
}

// EnemyBots returns the bots on the opposing team. When noise is enabled
// for the match, positions of enemies far from the agent's own bots are
// perturbed in the snapshot this gateway holds.
func (g *Gateway) EnemyBots() []game.Bot {
	return g.Universe().EnemyBots(g.TeamIndex())
}

// TeamFood returns the food the agent's team defends.
func (g *Gateway) TeamFood() []game.Position {
	return g.Universe().TeamFood(g.TeamIndex())
}

// EnemyFood returns the food the agent's team can eat.
func (g *Gateway) EnemyFood() []game.Position {
	return g.Universe().EnemyFood(g.TeamIndex())
}

// LegalMoves returns the bot's current legal-move table.
func (g *Gateway) LegalMoves() map[game.Direction]game.Position {
	return g.Universe().LegalMoves(g.botID)
}

// LegalDirections returns the legal directions in canonical order.
func (g *Gateway) LegalDirections() []game.Direction {
	return g.Universe().LegalDirections(g.botID)
}

// TimeSpent returns the wall time consumed by the current GetMove call so
// far. Agents use it for self-throttling, the scheduler for enforcement.
func (g *Gateway) TimeSpent() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return time.Since(g.moveStart)
}

// Say records a short message for this turn, carried to observers in the
// game-state record. The rules ignore it.
func (g *Gateway) Say(msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.talk = msg
}

// Talk returns the message recorded during the current turn.
func (g *Gateway) Talk() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.talk
}
