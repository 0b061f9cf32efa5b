// Package viewer contains the observer implementations: a progress line, an
// ASCII board viewer, a JSON dumping viewer for remote tooling and a live
// Bubble Tea watch UI. Viewers consume universes and records only; they
// never influence game state.
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazectf/internal/game"
)

var (
	wallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	foodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	team0Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	team1Style = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	scoreStyle = lipgloss.NewStyle().Bold(true)
)

// RenderUniverse draws the maze with walls, food and bot ids. Bots are
// colored by team. The output is plain rows of styled runes, suitable both
// for direct printing and for the watch UI.
func RenderUniverse(u *game.Universe) string {
	height, width := u.Grid.Height(), u.Grid.Width()

	// Character layer first, style pass second.
	cells := make([][]byte, height)
	for r := range cells {
		cells[r] = make([]byte, width)
		for c := range cells[r] {
			if u.Grid.IsWall(game.P(r, c)) {
				cells[r][c] = game.CharWall
			} else {
				cells[r][c] = game.CharFree
			}
		}
	}
	for _, team := range u.Teams {
		for p := range team.Food {
			cells[p.Row][p.Col] = game.CharFood
		}
	}
	botAt := make(map[game.Position]int, len(u.Bots))
	for _, b := range u.Bots {
		botAt[b.CurrentPos] = b.ID
		cells[b.CurrentPos.Row][b.CurrentPos.Col] = byte('0' + b.ID)
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			ch := string(cells[r][c])
			switch cells[r][c] {
			case game.CharWall:
				b.WriteString(wallStyle.Render(ch))
			case game.CharFood:
				b.WriteString(foodStyle.Render(ch))
			case game.CharFree:
				b.WriteString(ch)
			default:
				if id, ok := botAt[game.P(r, c)]; ok && id%2 == 1 {
					b.WriteString(team1Style.Render(ch))
				} else {
					b.WriteString(team0Style.Render(ch))
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderScore formats the team score line.
func RenderScore(u *game.Universe) string {
	return scoreStyle.Render(fmt.Sprintf("%s %d : %d %s",
		u.Teams[0].Name, u.Teams[0].Score, u.Teams[1].Score, u.Teams[1].Name))
}
