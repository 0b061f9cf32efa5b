package master

import (
	"fmt"
	"time"
)

// RoundExhaustedError reports a request for more rounds than the match's
// configured budget. The match state stays at its last valid point.
type RoundExhaustedError struct {
	Played int
	Budget int
}

func (e *RoundExhaustedError) Error() string {
	return fmt.Sprintf("master: round budget exhausted (%d of %d rounds played)", e.Played, e.Budget)
}

// AgentTimeoutError reports an agent that exceeded its per-move time budget.
// It is treated like an illegal move: the move is forfeited.
type AgentTimeoutError struct {
	BotID   int
	Timeout time.Duration
}

func (e *AgentTimeoutError) Error() string {
	return fmt.Sprintf("master: bot %d exceeded move timeout of %s", e.BotID, e.Timeout)
}

// AgentPanicError wraps a panic raised inside an agent's GetMove. The panic
// is confined to the agent's goroutine and surfaces as a forfeited move.
type AgentPanicError struct {
	BotID int
	Value any
}

func (e *AgentPanicError) Error() string {
	return fmt.Sprintf("master: bot %d panicked: %v", e.BotID, e.Value)
}
