package agent

import (
	"math/rand"

	"github.com/vovakirdan/mazectf/internal/game"
)

// Noise is the fog-of-war policy: enemy bots farther than SightDistance
// (manhattan) from every bot of the observing team have their positions
// replaced by a uniformly chosen free cell within NoiseRadius. The exact
// legacy parameters are not authoritative, so both are configurable.
type Noise struct {
	Enabled       bool
	SightDistance int
	NoiseRadius   int
}

// Default fog-of-war parameters.
const (
	DefaultSightDistance = 5
	DefaultNoiseRadius   = 5
)

// DefaultNoise returns the enabled policy with default parameters.
func DefaultNoise() Noise {
	return Noise{Enabled: true, SightDistance: DefaultSightDistance, NoiseRadius: DefaultNoiseRadius}
}

// Apply returns a snapshot of the universe as seen by the given team, with
// far-away enemy positions perturbed. Randomness comes from the caller's
// stream (the match stream, not an agent stream), so two runs with the same
// seed noise identically. When the policy is disabled the input is returned
// unchanged.
func (n Noise) Apply(u *game.Universe, teamIndex int, rng *rand.Rand) *game.Universe {
	if !n.Enabled {
		return u
	}

	own := u.TeamBots(teamIndex)
	noised := u.Clone()
	for _, enemyID := range u.Teams[1-teamIndex].BotIDs {
		pos := u.Bots[enemyID].CurrentPos
		if n.visible(pos, own) {
			continue
		}
		candidates := n.candidates(u, pos)
		if len(candidates) == 0 {
			continue
		}
		noised.Bots[enemyID].CurrentPos = candidates[rng.Intn(len(candidates))]
	}
	return noised
}

// visible reports whether any of the observing team's bots is within sight
// distance of the position.
func (n Noise) visible(pos game.Position, own []game.Bot) bool {
	for _, b := range own {
		if b.CurrentPos.ManhattanDist(pos) <= n.SightDistance {
			return true
		}
	}
	return false
}

// candidates lists the free in-bounds cells within the noise radius of the
// true position, in row-major order for deterministic indexing.
func (n Noise) candidates(u *game.Universe, pos game.Position) []game.Position {
	out := make([]game.Position, 0)
	for dr := -n.NoiseRadius; dr <= n.NoiseRadius; dr++ {
		for dc := -n.NoiseRadius; dc <= n.NoiseRadius; dc++ {
			if abs(dr)+abs(dc) > n.NoiseRadius {
				continue
			}
			p := pos.Add(dr, dc)
			if !u.Grid.IsWall(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
