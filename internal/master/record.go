// Package master drives a match: it owns the live universe, invokes agents
// under a time budget, applies moves through the resolver and notifies
// observers. One GameMaster is one single-threaded match.
package master

import "github.com/vovakirdan/mazectf/internal/game"

// Record is the value snapshot handed to agents and observers after each
// step. It is created fresh by the scheduler and immutable once handed out.
// The JSON shape is the wire format consumed by remote viewers.
type Record struct {
	RoundIndex int       `json:"round_index"`
	GameTime   int       `json:"game_time"`
	BotID      *int      `json:"bot_id"`
	Finished   bool      `json:"finished"`
	TeamWins   *int      `json:"team_wins"`
	TeamName   [2]string `json:"team_name"`
	BotTalk    []string  `json:"bot_talk"`
	Seed       int64     `json:"seed"`
}

// Observer is a passive sink notified after initialization and after each
// bot's move. Observers are consumed only and never influence game state;
// they are invoked synchronously, in registration order.
type Observer interface {
	SetInitial(u *game.Universe)
	Observe(u *game.Universe, record Record)
}

// Step is one entry of the in-memory replay log: the universe after a move
// together with the record describing that move.
type Step struct {
	Universe *game.Universe
	Record   Record
}
