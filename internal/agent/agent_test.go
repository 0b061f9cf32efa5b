package agent

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/mazectf/internal/game"
)

const smallLayout = `############
#0  .  .  1#
#2        3#
############`

func newSmallUniverse(t *testing.T) *game.Universe {
	t.Helper()
	u, err := game.NewUniverse(smallLayout, 4)
	if err != nil {
		t.Fatalf("NewUniverse() failed: %v", err)
	}
	return u
}

func TestNewTeamValidation(t *testing.T) {
	if _, err := NewTeam("empty"); err == nil {
		t.Error("Expected error for team with no agents")
	}
	if _, err := NewTeam("nil agent", nil, &StoppingAgent{}); err == nil {
		t.Error("Expected error for nil agent")
	}

	team, err := NewTeam("ok", &StoppingAgent{}, &StoppingAgent{})
	if err != nil {
		t.Fatalf("NewTeam() failed: %v", err)
	}
	if team.Name != "ok" {
		t.Errorf("Expected name %q, got %q", "ok", team.Name)
	}
}

func TestTeamBind(t *testing.T) {
	team, err := NewTeam("binders", &StoppingAgent{}, &StoppingAgent{})
	if err != nil {
		t.Fatalf("NewTeam() failed: %v", err)
	}

	if err := team.Bind([]int{0}); err == nil {
		t.Error("Expected error when binding fewer bots than agents")
	}
	if err := team.Bind([]int{0, 2}); err != nil {
		t.Fatalf("Bind() failed: %v", err)
	}

	if team.AgentFor(0) == nil || team.AgentFor(2) == nil {
		t.Error("Expected agents for bound bot ids")
	}
	if team.AgentFor(1) != nil {
		t.Error("Expected no agent for an unbound bot id")
	}
	if !reflect.DeepEqual(team.BotIDs(), []int{0, 2}) {
		t.Errorf("Expected bot ids [0 2], got %v", team.BotIDs())
	}
}

func TestGatewayView(t *testing.T) {
	u := newSmallUniverse(t)
	g := NewGateway(1, 42)
	g.BeginTurn(u)

	if g.BotID() != 1 || g.TeamIndex() != 1 {
		t.Errorf("Expected bot 1 on team 1, got bot %d team %d", g.BotID(), g.TeamIndex())
	}
	if g.CurrentPos() != game.P(1, 10) {
		t.Errorf("Expected current position (1,10), got %v", g.CurrentPos())
	}
	if g.InitialPos() != game.P(1, 10) {
		t.Errorf("Expected initial position (1,10), got %v", g.InitialPos())
	}

	// Enemy food for team 1 is everything left of the midline.
	want := []game.Position{game.P(1, 4)}
	if got := g.EnemyFood(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected enemy food %v, got %v", want, got)
	}

	if len(g.History()) != 1 {
		t.Errorf("Expected one history entry, got %d", len(g.History()))
	}
	g.BeginTurn(u)
	if len(g.History()) != 2 {
		t.Errorf("Expected two history entries, got %d", len(g.History()))
	}
}

func TestGatewaySnapshotIsolation(t *testing.T) {
	u := newSmallUniverse(t)
	g := NewGateway(0, 42)
	g.BeginTurn(u)

	// The agent sees a private copy; scribbling on it must not leak back.
	g.Universe().Bots[0].CurrentPos = game.P(2, 2)
	if u.Bots[0].CurrentPos != game.P(1, 1) {
		t.Error("Gateway snapshot leaked mutations into the master universe")
	}
}

func TestStreamSeedIsolation(t *testing.T) {
	// A bot's random stream depends only on the match seed and its id, not
	// on anything else in the match.
	a := NewGateway(3, 100)
	b := NewGateway(3, 100)
	for i := 0; i < 10; i++ {
		if a.Rand().Intn(1000) != b.Rand().Intn(1000) {
			t.Fatal("Same seed and bot id should give identical streams")
		}
	}

	c := NewGateway(2, 100)
	d := NewGateway(3, 101)
	if c.Seed() == a.Seed() || d.Seed() == a.Seed() {
		t.Error("Different bot id or match seed should give a different stream seed")
	}
	if StreamSeed(100, 3) != 103 {
		t.Errorf("Expected stream seed 103, got %d", StreamSeed(100, 3))
	}
}

func TestGatewayTalk(t *testing.T) {
	g := NewGateway(0, 1)
	g.BeginTurn(newSmallUniverse(t))

	g.Say("heading east")
	if g.Talk() != "heading east" {
		t.Errorf("Expected talk %q, got %q", "heading east", g.Talk())
	}

	// A new turn clears the previous message.
	g.BeginTurn(newSmallUniverse(t))
	if g.Talk() != "" {
		t.Errorf("Expected empty talk after new turn, got %q", g.Talk())
	}
}

func TestRegistryBuiltins(t *testing.T) {
	for _, name := range []string{"stopping", "random", "nq_random", "speaking"} {
		if !Exists(name) {
			t.Errorf("Expected builtin agent %q to be registered", name)
		}
		a, err := Create(name)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", name, err)
		}
		if a == nil {
			t.Fatalf("Create(%q) returned nil agent", name)
		}
	}

	if _, err := Create("no_such_agent"); err == nil {
		t.Error("Expected error for unknown agent name")
	}

	names := List()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Expected sorted agent list, got %v", names)
		}
	}
}

func TestStoppingAgent(t *testing.T) {
	g := NewGateway(0, 1)
	g.BeginTurn(newSmallUniverse(t))

	dir, err := (&StoppingAgent{}).GetMove(g)
	if err != nil {
		t.Fatalf("GetMove() failed: %v", err)
	}
	if dir != game.Stop {
		t.Errorf("Expected Stop, got %v", dir)
	}
}

func TestRandomAgentPicksLegalMoves(t *testing.T) {
	u := newSmallUniverse(t)
	g := NewGateway(0, 7)
	a := &RandomAgent{}

	for i := 0; i < 50; i++ {
		g.BeginTurn(u)
		dir, err := a.GetMove(g)
		if err != nil {
			t.Fatalf("GetMove() failed: %v", err)
		}
		if _, ok := u.LegalMoves(0)[dir]; !ok {
			t.Fatalf("Random agent chose illegal move %v", dir)
		}
	}
}

func TestNQRandomAgentAvoidsStopAndBacktrack(t *testing.T) {
	u := newSmallUniverse(t)
	// Bot 0 came from the east; the only non-backtracking moves are south
	// and further west is a wall, so it must go south.
	u.Bots[0].CurrentPos = game.P(1, 1)
	u.Bots[0].PreviousPos = game.P(1, 2)

	g := NewGateway(0, 7)
	a := &NQRandomAgent{}
	for i := 0; i < 20; i++ {
		g.BeginTurn(u)
		dir, err := a.GetMove(g)
		if err != nil {
			t.Fatalf("GetMove() failed: %v", err)
		}
		if dir != game.South {
			t.Fatalf("Expected South, got %v", dir)
		}
	}
}

func TestScriptedAgent(t *testing.T) {
	a := NewScriptedAgent(game.East, game.East)
	g := NewGateway(0, 1)
	g.BeginTurn(newSmallUniverse(t))

	for i := 0; i < 2; i++ {
		dir, err := a.GetMove(g)
		if err != nil {
			t.Fatalf("Move %d failed: %v", i, err)
		}
		if dir != game.East {
			t.Errorf("Move %d: expected East, got %v", i, dir)
		}
	}

	_, err := a.GetMove(g)
	if err == nil {
		t.Fatal("Expected error after script exhaustion")
	}
	exhausted, ok := err.(*ScriptExhaustedError)
	if !ok {
		t.Fatalf("Expected ScriptExhaustedError, got %T", err)
	}
	if exhausted.Moves != 2 {
		t.Errorf("Expected 2 scripted moves, got %d", exhausted.Moves)
	}
}

func TestScriptedAgentShorthand(t *testing.T) {
	a, err := NewScriptedAgentShorthand("^v><-")
	if err != nil {
		t.Fatalf("NewScriptedAgentShorthand() failed: %v", err)
	}

	g := NewGateway(0, 1)
	g.BeginTurn(newSmallUniverse(t))
	want := []game.Direction{game.North, game.South, game.East, game.West, game.Stop}
	for i, w := range want {
		dir, err := a.GetMove(g)
		if err != nil {
			t.Fatalf("Move %d failed: %v", i, err)
		}
		if dir != w {
			t.Errorf("Move %d: expected %v, got %v", i, w, dir)
		}
	}

	if _, err := NewScriptedAgentShorthand("^x"); err == nil {
		t.Error("Expected error for unknown shorthand character")
	}
}
