package agent

import (
	"fmt"

	"github.com/vovakirdan/mazectf/internal/game"
)

func init() {
	Register("stopping", func() Agent { return &StoppingAgent{} })
	Register("random", func() Agent { return &RandomAgent{} })
	Register("nq_random", func() Agent { return &NQRandomAgent{} })
	Register("speaking", func() Agent { return &SpeakingAgent{} })
}

// StoppingAgent never moves.
type StoppingAgent struct{}

// GetMove always returns Stop.
func (a *StoppingAgent) GetMove(*Gateway) (game.Direction, error) {
	return game.Stop, nil
}

// RandomAgent picks a uniformly random legal move each turn.
type RandomAgent struct{}

// GetMove returns a random direction from the legal-move table, drawn from
// the agent's own seeded stream.
func (a *RandomAgent) GetMove(g *Gateway) (game.Direction, error) {
	dirs := g.LegalDirections()
	return dirs[g.Rand().Intn(len(dirs))], nil
}

// NQRandomAgent is the non-quitting random agent: it never stops and avoids
// returning to the square it just came from unless the maze forces it.
type NQRandomAgent struct{}

// GetMove picks a random legal move, excluding Stop and the reverse of the
// last move where possible.
func (a *NQRandomAgent) GetMove(g *Gateway) (game.Direction, error) {
	moves := g.LegalMoves()
	previous := g.PreviousPos()

	dirs := make([]game.Direction, 0, len(moves))
	for _, d := range g.LegalDirections() {
		if d == game.Stop || moves[d] == previous {
			continue
		}
		dirs = append(dirs, d)
	}
	if len(dirs) == 0 {
		// Dead end: the only way forward is back.
		for _, d := range g.LegalDirections() {
			if d != game.Stop {
				dirs = append(dirs, d)
			}
		}
	}
	if len(dirs) == 0 {
		return game.Stop, nil
	}
	return dirs[g.Rand().Intn(len(dirs))], nil
}

// SpeakingAgent moves randomly and announces each move via the bot-talk
// channel.
type SpeakingAgent struct{}

// GetMove picks a random legal move and says where it is going.
func (a *SpeakingAgent) GetMove(g *Gateway) (game.Direction, error) {
	dirs := g.LegalDirections()
	dir := dirs[g.Rand().Intn(len(dirs))]
	g.Say(fmt.Sprintf("Going %s", dir))
	return dir, nil
}
