package game

import (
	"errors"
	"testing"
)

// A small open arena: bot 0 on the left half, bot 1 on the right half,
// one food pellet per region.
const arenaLayout = `##########
#0   1   #
#.      .#
##########`

func newArena(t *testing.T) *Universe {
	t.Helper()
	u, err := NewUniverse(arenaLayout, 2)
	if err != nil {
		t.Fatalf("NewUniverse() failed: %v", err)
	}
	return u
}

func TestApplyMove(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	next, err := r.Apply(u, 0, East)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if next.Bots[0].CurrentPos != P(1, 2) {
		t.Errorf("Expected bot 0 at (1,2), got %v", next.Bots[0].CurrentPos)
	}
	if next.Bots[0].PreviousPos != P(1, 1) {
		t.Errorf("Expected previous position (1,1), got %v", next.Bots[0].PreviousPos)
	}

	// Apply is functional: the input universe stays untouched.
	if u.Bots[0].CurrentPos != P(1, 1) {
		t.Error("Apply mutated the input universe")
	}
}

func TestApplyStopIsAlwaysLegal(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	next, err := r.Apply(u, 0, Stop)
	if err != nil {
		t.Fatalf("Apply(Stop) failed: %v", err)
	}
	if next.Bots[0].CurrentPos != P(1, 1) {
		t.Errorf("Stop should leave the bot in place, got %v", next.Bots[0].CurrentPos)
	}
	if next.Bots[0].PreviousPos != P(1, 1) {
		t.Errorf("Stop should record the same previous position, got %v", next.Bots[0].PreviousPos)
	}
}

func TestApplyIllegalMove(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	_, err := r.Apply(u, 0, North) // (0,1) is a wall
	if err == nil {
		t.Fatal("Expected error for move into a wall")
	}
	var illegal *IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("Expected IllegalMoveError, got %T: %v", err, err)
	}
	if illegal.BotID != 0 || illegal.Direction != North {
		t.Errorf("Unexpected error details: %+v", illegal)
	}
}

func TestApplyEatsEnemyFood(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	// Put bot 0 next to team 1's pellet at (2,8).
	u.Bots[0].CurrentPos = P(2, 7)

	next, err := r.Apply(u, 0, East)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if next.Teams[0].Score != 1 {
		t.Errorf("Expected score 1 after eating, got %d", next.Teams[0].Score)
	}
	if next.Teams[1].Food[P(2, 8)] {
		t.Error("Eaten pellet should be removed")
	}

	// That was team 1's last pellet, so team 0 wins early.
	if winner, won := r.Winner(next); !won || winner != 0 {
		t.Errorf("Expected early win for team 0, got winner=%d won=%v", winner, won)
	}
}

func TestApplyOwnFoodNotEaten(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	// Bot 0 steps onto its own team's pellet at (2,1).
	u.Bots[0].CurrentPos = P(2, 2)

	next, err := r.Apply(u, 0, West)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if next.Teams[0].Score != 0 {
		t.Errorf("Own food must not score, got %d", next.Teams[0].Score)
	}
	if !next.Teams[0].Food[P(2, 1)] {
		t.Error("Own food must survive a bot standing on it")
	}
}

func TestApplyKillAndRespawn(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	// Bot 1 has wandered off its start, bot 0 is deep in enemy territory.
	u.Bots[0].CurrentPos = P(1, 5)
	u.Bots[1].CurrentPos = P(1, 6)

	next, err := r.Apply(u, 0, East)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if next.Bots[1].CurrentPos != next.Bots[1].InitialPos {
		t.Errorf("Victim should respawn at its initial position, got %v", next.Bots[1].CurrentPos)
	}
	if next.Bots[1].PreviousPos != P(1, 6) {
		t.Errorf("Victim's previous position should be where it died, got %v", next.Bots[1].PreviousPos)
	}
	if next.Teams[0].Score != DefaultKillPoints {
		t.Errorf("Expected kill bonus %d, got %d", DefaultKillPoints, next.Teams[0].Score)
	}
}

func TestApplyNoKillOnOwnSide(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	// Bot 1 stands on team 0's side; moving onto it there is not a kill
	// because the mover is not in destroyer role.
	u.Bots[0].CurrentPos = P(1, 1)
	u.Bots[1].CurrentPos = P(1, 2)

	next, err := r.Apply(u, 0, East)
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if next.Teams[0].Score != 0 {
		t.Errorf("No kill bonus expected on own side, got %d", next.Teams[0].Score)
	}
	if next.Bots[1].CurrentPos != P(1, 2) {
		t.Errorf("Enemy bot should stay put, got %v", next.Bots[1].CurrentPos)
	}
}

func TestFinalWinner(t *testing.T) {
	u := newArena(t)
	r := NewResolver(DefaultKillPoints)

	if _, won := r.FinalWinner(u); won {
		t.Error("Equal scores should be a tie")
	}

	u.Teams[1].Score = 3
	if winner, won := r.FinalWinner(u); !won || winner != 1 {
		t.Errorf("Expected team 1 to win, got winner=%d won=%v", winner, won)
	}

	u.Teams[0].Score = 4
	if winner, won := r.FinalWinner(u); !won || winner != 0 {
		t.Errorf("Expected team 0 to win, got winner=%d won=%v", winner, won)
	}
}

func TestNewResolverDefaultsKillPoints(t *testing.T) {
	if r := NewResolver(0); r.KillPoints != DefaultKillPoints {
		t.Errorf("Expected default kill points %d, got %d", DefaultKillPoints, r.KillPoints)
	}
	if r := NewResolver(11); r.KillPoints != 11 {
		t.Errorf("Expected kill points 11, got %d", r.KillPoints)
	}
}
