package game

// Snapshot is the wire form of a universe for remote and dumping viewers:
// a full value snapshot, not a diff.
type Snapshot struct {
	Height     int           `json:"height"`
	Width      int           `json:"width"`
	Walls      []Position    `json:"walls"`
	BotPos     []Position    `json:"bot_positions"`
	Food       [2][]Position `json:"food"`
	Scores     [2]int        `json:"scores"`
	RoundIndex int           `json:"round_index"`
}

// Snapshot captures the current universe state.
func (u *Universe) Snapshot() Snapshot {
	botPos := make([]Position, len(u.Bots))
	for i, b := range u.Bots {
		botPos[i] = b.CurrentPos
	}
	return Snapshot{
		Height:     u.Grid.Height(),
		Width:      u.Grid.Width(),
		Walls:      u.Grid.Walls(),
		BotPos:     botPos,
		Food:       [2][]Position{u.TeamFood(0), u.TeamFood(1)},
		Scores:     [2]int{u.Teams[0].Score, u.Teams[1].Score},
		RoundIndex: u.RoundIndex,
	}
}
