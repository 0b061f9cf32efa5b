package agent

import (
	"fmt"

	"github.com/vovakirdan/mazectf/internal/game"
)

// ScriptExhaustedError reports a scripted agent that has run out of moves.
// Under the default failure policy the scheduler forfeits the move; a match
// configured with fatal agent errors aborts instead.
type ScriptExhaustedError struct {
	BotID int
	Moves int
}

func (e *ScriptExhaustedError) Error() string {
	return fmt.Sprintf("agent: bot %d script exhausted after %d moves", e.BotID, e.Moves)
}

// ScriptedAgent plays a fixed sequence of moves, then fails with
// ScriptExhaustedError. It exists for tests and reference matches.
type ScriptedAgent struct {
	moves []game.Direction
	next  int
}

// NewScriptedAgent creates an agent that plays the given moves in order.
func NewScriptedAgent(moves ...game.Direction) *ScriptedAgent {
	return &ScriptedAgent{moves: moves}
}

// NewScriptedAgentShorthand parses a compact move script: '^' north,
// 'v' south, '>' east, '<' west, '-' stop.
func NewScriptedAgentShorthand(script string) (*ScriptedAgent, error) {
	moves := make([]game.Direction, 0, len(script))
	for _, ch := range script {
		switch ch {
		case '^':
			moves = append(moves, game.North)
		case 'v':
			moves = append(moves, game.South)
		case '>':
			moves = append(moves, game.East)
		case '<':
			moves = append(moves, game.West)
		case '-':
			moves = append(moves, game.Stop)
		default:
			return nil, fmt.Errorf("agent: unknown shorthand move %q", ch)
		}
	}
	return &ScriptedAgent{moves: moves}, nil
}

// GetMove returns the next scripted move.
func (a *ScriptedAgent) GetMove(g *Gateway) (game.Direction, error) {
	if a.next >= len(a.moves) {
		return game.Stop, &ScriptExhaustedError{BotID: g.BotID(), Moves: len(a.moves)}
	}
	move := a.moves[a.next]
	a.next++
	return move, nil
}
