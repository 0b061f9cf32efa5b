package game

import "sort"

// Bot is one movable token on the grid.
type Bot struct {
	ID          int
	TeamIndex   int
	InitialPos  Position
	CurrentPos  Position
	PreviousPos Position
}

// Team is an ordered group of bots sharing a score and a defended food
// region.
type Team struct {
	Index  int
	Name   string
	BotIDs []int
	Score  int
	Food   map[Position]bool // remaining food in this team's region
}

// Universe is the authoritative game state: the static grid, all bots, both
// teams and the round counter. It is a pure data structure; the scheduler
// advances it by producing a new value per move via the resolver.
type Universe struct {
	Grid             *Grid
	Bots             []Bot
	Teams            [2]*Team
	RoundIndex       int
	FoodTotalInitial int
}

// NumTeams is fixed: the game is always a two-team match.
const NumTeams = 2

// NewUniverse parses the layout and builds the initial game state. Bots are
// partitioned into two teams by id parity and the food is split by the
// vertical midline: columns left of width/2 belong to team 0's region.
func NewUniverse(layoutText string, numBots int) (*Universe, error) {
	if numBots < 2 || numBots%NumTeams != 0 {
		return nil, layoutErrorf("number of bots must be even and at least 2, got %d", numBots)
	}

	layout, err := ParseLayout(layoutText, numBots)
	if err != nil {
		return nil, err
	}

	bots := make([]Bot, numBots)
	for id := 0; id < numBots; id++ {
		bots[id] = Bot{
			ID:          id,
			TeamIndex:   id % NumTeams,
			InitialPos:  layout.InitialPos[id],
			CurrentPos:  layout.InitialPos[id],
			PreviousPos: layout.InitialPos[id],
		}
	}

	u := &Universe{
		Grid:             layout.Grid,
		Bots:             bots,
		FoodTotalInitial: len(layout.Food),
	}
	for t := 0; t < NumTeams; t++ {
		u.Teams[t] = &Team{Index: t, Food: make(map[Position]bool)}
	}
	for id := range bots {
		team := u.Teams[id%NumTeams]
		team.BotIDs = append(team.BotIDs, id)
	}
	for _, f := range layout.Food {
		u.Teams[u.regionOf(f)].Food[f] = true
	}
	return u, nil
}

// regionOf returns the index of the team whose home region contains the
// position.
func (u *Universe) regionOf(p Position) int {
	if p.Col < u.Grid.Width()/2 {
		return 0
	}
	return 1
}

// InHomeSide reports whether the position lies in the given team's half of
// the grid. A bot outside its home side is in destroyer role.
func (u *Universe) InHomeSide(teamIndex int, p Position) bool {
	return u.regionOf(p) == teamIndex
}

// IsDestroyer reports whether the bot is currently in destroyer role, i.e.
// standing on the enemy's home side. The role is positional, not intrinsic.
func (u *Universe) IsDestroyer(botID int) bool {
	bot := &u.Bots[botID]
	return !u.InHomeSide(bot.TeamIndex, bot.CurrentPos)
}

// LegalMoves returns the derived legal-move table for a bot: each direction
// whose destination is in-bounds and not a wall, mapped to the destination.
// Stop is always present and maps to the current position. The table is
// recomputed per query and never cached.
func (u *Universe) LegalMoves(botID int) map[Direction]Position {
	current := u.Bots[botID].CurrentPos
	moves := make(map[Direction]Position, len(Directions))
	for _, d := range Directions {
		dr, dc := d.Delta()
		dest := current.Add(dr, dc)
		if d == Stop || !u.Grid.IsWall(dest) {
			moves[d] = dest
		}
	}
	return moves
}

// LegalDirections returns the legal directions for a bot in canonical order,
// for deterministic iteration.
func (u *Universe) LegalDirections(botID int) []Direction {
	moves := u.LegalMoves(botID)
	dirs := make([]Direction, 0, len(moves))
	for _, d := range Directions {
		if _, ok := moves[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// TeamFood returns the live food the team still defends, sorted row-major.
func (u *Universe) TeamFood(teamIndex int) []Position {
	return sortedPositions(u.Teams[teamIndex].Food)
}

// EnemyFood returns the live food the team can eat, sorted row-major.
func (u *Universe) EnemyFood(teamIndex int) []Position {
	return sortedPositions(u.Teams[1-teamIndex].Food)
}

// TeamBots returns copies of the bots belonging to the team, in id order.
func (u *Universe) TeamBots(teamIndex int) []Bot {
	bots := make([]Bot, 0, len(u.Teams[teamIndex].BotIDs))
	for _, id := range u.Teams[teamIndex].BotIDs {
		bots = append(bots, u.Bots[id])
	}
	return bots
}

// EnemyBots returns copies of the bots on the opposing team, in id order.
func (u *Universe) EnemyBots(teamIndex int) []Bot {
	return u.TeamBots(1 - teamIndex)
}

// Clone returns a deep copy of the universe. The grid is copied too, so the
// clone shares no mutable state with the original.
func (u *Universe) Clone() *Universe {
	clone := &Universe{
		Grid:             u.Grid.Clone(),
		Bots:             make([]Bot, len(u.Bots)),
		RoundIndex:       u.RoundIndex,
		FoodTotalInitial: u.FoodTotalInitial,
	}
	copy(clone.Bots, u.Bots)
	for t, team := range u.Teams {
		food := make(map[Position]bool, len(team.Food))
		for p := range team.Food {
			food[p] = true
		}
		botIDs := make([]int, len(team.BotIDs))
		copy(botIDs, team.BotIDs)
		clone.Teams[t] = &Team{
			Index:  team.Index,
			Name:   team.Name,
			BotIDs: botIDs,
			Score:  team.Score,
			Food:   food,
		}
	}
	return clone
}

// Equal reports whether two universes have the same grid, bot positions,
// food sets and scores. The round index is deliberately excluded so tests
// can detect "no state change" across rounds.
func (u *Universe) Equal(other *Universe) bool {
	if !u.Grid.Equal(other.Grid) || len(u.Bots) != len(other.Bots) {
		return false
	}
	for i := range u.Bots {
		a, b := &u.Bots[i], &other.Bots[i]
		if a.CurrentPos != b.CurrentPos || a.PreviousPos != b.PreviousPos ||
			a.InitialPos != b.InitialPos || a.TeamIndex != b.TeamIndex {
			return false
		}
	}
	for t := range u.Teams {
		a, b := u.Teams[t], other.Teams[t]
		if a.Score != b.Score || len(a.Food) != len(b.Food) {
			return false
		}
		for p := range a.Food {
			if !b.Food[p] {
				return false
			}
		}
	}
	return true
}

// LiveFood returns the total number of uneaten food cells.
func (u *Universe) LiveFood() int {
	return len(u.Teams[0].Food) + len(u.Teams[1].Food)
}

func sortedPositions(set map[Position]bool) []Position {
	out := make([]Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
