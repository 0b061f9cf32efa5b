package viewer

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazectf/internal/master"
)

// TickMsg triggers the next round of the watched match.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// WatchModel is the Bubble Tea model that plays a match live, one round per
// tick. The model owns the game master; determinism is preserved because
// ticks only decide when rounds run, never what happens in them.
type WatchModel struct {
	gm       *master.GameMaster
	interval time.Duration
	paused   bool
	quitting bool
	err      error
}

// NewWatchModel creates a watch model stepping the match at the given
// interval.
func NewWatchModel(gm *master.GameMaster, interval time.Duration) WatchModel {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return WatchModel{gm: gm, interval: interval}
}

// Init starts the round ticker.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles key presses and round ticks.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		case "n":
			if m.paused {
				m.step()
			}
		}
		return m, nil

	case TickMsg:
		if !m.paused {
			m.step()
		}
		if m.gm.Finished() || m.err != nil {
			return m, nil
		}
		return m, tickCmd(m.interval)
	}
	return m, nil
}

// step plays one round, treating budget exhaustion as the natural end.
func (m *WatchModel) step() {
	if m.gm.Finished() || m.err != nil {
		return
	}
	if err := m.gm.PlayRound(); err != nil {
		var exhausted *master.RoundExhaustedError
		if !errors.As(err, &exhausted) {
			m.err = err
		}
	}
}

// View renders the current board, score and status line.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	u := m.gm.Universe()
	status := fmt.Sprintf("round %d/%d", m.gm.RoundsPlayed(), m.gm.RoundBudget())
	switch {
	case m.err != nil:
		status = "error: " + m.err.Error()
	case m.gm.Finished():
		if team, ok := m.gm.Winner(); ok {
			status = fmt.Sprintf("finished, %q wins", u.Teams[team].Name)
		} else {
			status = "finished, tie"
		}
	case m.paused:
		status += " (paused, n to step)"
	}

	return RenderUniverse(u) + "\n" +
		RenderScore(u) + "\n" +
		statusStyle.Render(status+"  q quit, p pause") + "\n"
}

// Watch runs the match in an alternate-screen Bubble Tea program.
func Watch(gm *master.GameMaster, interval time.Duration) error {
	p := tea.NewProgram(NewWatchModel(gm, interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
