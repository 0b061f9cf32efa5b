// Package agent defines the contracts between the game master and the
// autonomous players: the Agent and Team types, the Gateway boundary object
// each agent acts through, and a registry of built-in agents.
package agent

import (
	"fmt"

	"github.com/vovakirdan/mazectf/internal/game"
)

// Agent is the capability set a player must implement. GetMove is required
// every turn and must return within the match's per-move time budget; a late
// or failed move is forfeited by the scheduler, never fatal to the match.
type Agent interface {
	GetMove(g *Gateway) (game.Direction, error)
}

// Initializer is the optional hook called once before round 1. Agents that
// need the initial universe (for precomputation, seeding caches and so on)
// implement it in addition to Agent.
type Initializer interface {
	SetInitial(g *Gateway)
}

// ContractError reports a player or team that does not satisfy the required
// capabilities. It is fatal at team-construction time.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return "agent: " + e.Reason
}

// Team is an ordered, named group of agents. At match start the scheduler
// binds agent index to bot id via Bind.
type Team struct {
	Name   string
	Agents []Agent

	botIDs []int
}

// NewTeam creates a team from one or more agents. A nil agent or an empty
// roster is a ContractError.
func NewTeam(name string, agents ...Agent) (*Team, error) {
	if len(agents) == 0 {
		return nil, &ContractError{Reason: fmt.Sprintf("team %q has no agents", name)}
	}
	for i, a := range agents {
		if a == nil {
			return nil, &ContractError{Reason: fmt.Sprintf("team %q agent %d is nil", name, i)}
		}
	}
	return &Team{Name: name, Agents: agents}, nil
}

// Bind assigns bot ids to this team's agents in order. Binding fewer bots
// than the team has agents is rejected.
func (t *Team) Bind(botIDs []int) error {
	if len(botIDs) < len(t.Agents) {
		return &ContractError{Reason: fmt.Sprintf(
			"team %q has %d agents but only %d bots to control", t.Name, len(t.Agents), len(botIDs))}
	}
	t.botIDs = botIDs
	return nil
}

// AgentFor returns the agent controlling the given bot id, or nil if the bot
// does not belong to this team.
func (t *Team) AgentFor(botID int) Agent {
	for i, id := range t.botIDs {
		if id == botID && i < len(t.Agents) {
			return t.Agents[i]
		}
	}
	return nil
}

// BotIDs returns the bot ids bound to this team.
func (t *Team) BotIDs() []int {
	return t.botIDs
}
