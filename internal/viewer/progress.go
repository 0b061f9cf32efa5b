package viewer

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/mazectf/internal/game"
	"github.com/vovakirdan/mazectf/internal/master"
)

// Progress writes a single rewritten progress line per step.
type Progress struct {
	Out io.Writer

	lastLen int
}

// NewProgress creates a progress viewer writing to out.
func NewProgress(out io.Writer) *Progress {
	return &Progress{Out: out}
}

// SetInitial is a no-op; there is no progress before round 0.
func (v *Progress) SetInitial(*game.Universe) {}

// Observe rewrites the progress line in place.
func (v *Progress) Observe(u *game.Universe, record master.Record) {
	bot := " "
	if record.BotID != nil {
		bot = fmt.Sprintf("%d", *record.BotID)
	}
	percent := 0
	if record.GameTime > 0 {
		percent = 100 * record.RoundIndex / record.GameTime
	}
	line := fmt.Sprintf("[%s] %3d%% (%d / %d) [%d:%d]",
		bot, percent, record.RoundIndex, record.GameTime,
		u.Teams[0].Score, u.Teams[1].Score)

	fmt.Fprint(v.Out, "\r", line, strings.Repeat(" ", max(0, v.lastLen-len(line))))
	v.lastLen = len(line)

	if record.Finished {
		fmt.Fprintln(v.Out)
		if record.TeamWins != nil {
			fmt.Fprintf(v.Out, "Team %q wins\n", record.TeamName[*record.TeamWins])
		} else {
			fmt.Fprintln(v.Out, "Tie")
		}
	}
}
