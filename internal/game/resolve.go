package game

// Resolver applies a single bot's chosen move to a universe and computes the
// resulting state: collision/kill resolution, food consumption and scoring.
// It never mutates its input; every Apply returns a fresh Universe value.
type Resolver struct {
	// KillPoints is the score bonus awarded for destroying an enemy bot.
	KillPoints int
}

// DefaultKillPoints matches the classic ruleset.
const DefaultKillPoints = 5

// NewResolver creates a resolver with the given kill bonus. A non-positive
// bonus falls back to the default.
func NewResolver(killPoints int) *Resolver {
	if killPoints <= 0 {
		killPoints = DefaultKillPoints
	}
	return &Resolver{KillPoints: killPoints}
}

// Apply validates and applies one move. The direction must be in the bot's
// legal-move table; otherwise an IllegalMoveError is returned and the input
// universe is left untouched. Simultaneous effects are resolved purely by
// the move order the scheduler uses, so a single Apply only ever resolves
// the moving bot's own effects.
func (r *Resolver) Apply(u *Universe, botID int, dir Direction) (*Universe, error) {
	dest, ok := u.LegalMoves(botID)[dir]
	if !ok {
		return nil, &IllegalMoveError{BotID: botID, Direction: dir}
	}

	next := u.Clone()
	bot := &next.Bots[botID]
	bot.PreviousPos = bot.CurrentPos
	bot.CurrentPos = dest

	team := next.Teams[bot.TeamIndex]
	enemy := next.Teams[1-bot.TeamIndex]

	// Kill rule: a bot that just moved destroys a stationary enemy on its
	// destination cell, but only while in destroyer role there, i.e. on the
	// enemy's home side. The victim respawns at its initial position.
	if next.InHomeSide(enemy.Index, dest) {
		for _, enemyID := range enemy.BotIDs {
			victim := &next.Bots[enemyID]
			if victim.CurrentPos == dest {
				victim.PreviousPos = victim.CurrentPos
				victim.CurrentPos = victim.InitialPos
				team.Score += r.KillPoints
			}
		}
	}

	// Food rule: eating a pellet in the enemy's region scores one point and
	// permanently removes the pellet.
	if enemy.Food[dest] {
		delete(enemy.Food, dest)
		team.Score++
	}

	return next, nil
}

// Winner inspects a universe for an early win: a team wins immediately once
// the opposing team's food is exhausted. The second return is false while
// both teams still have food to defend.
func (r *Resolver) Winner(u *Universe) (teamIndex int, won bool) {
	for t := 0; t < NumTeams; t++ {
		if len(u.Teams[1-t].Food) == 0 {
			return t, true
		}
	}
	return 0, false
}

// FinalWinner decides the match outcome once the round budget is exhausted:
// the team with the strictly higher score wins, a tie has no winner.
func (r *Resolver) FinalWinner(u *Universe) (teamIndex int, won bool) {
	switch {
	case u.Teams[0].Score > u.Teams[1].Score:
		return 0, true
	case u.Teams[1].Score > u.Teams[0].Score:
		return 1, true
	default:
		return 0, false
	}
}
