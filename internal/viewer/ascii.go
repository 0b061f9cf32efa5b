package viewer

import (
	"fmt"
	"io"

	"github.com/vovakirdan/mazectf/internal/game"
	"github.com/vovakirdan/mazectf/internal/master"
)

// Ascii dumps the board to a writer after every step.
type Ascii struct {
	Out io.Writer
}

// NewAscii creates an ASCII viewer writing to out.
func NewAscii(out io.Writer) *Ascii {
	return &Ascii{Out: out}
}

// SetInitial prints the starting board.
func (v *Ascii) SetInitial(u *game.Universe) {
	fmt.Fprintln(v.Out, RenderUniverse(u))
	fmt.Fprintln(v.Out, RenderScore(u))
}

// Observe prints the board after a step, plus the outcome once finished.
func (v *Ascii) Observe(u *game.Universe, record master.Record) {
	turn := "-"
	if record.BotID != nil {
		turn = fmt.Sprintf("%d", *record.BotID)
	}
	fmt.Fprintf(v.Out, "Round %d Turn %s\n", record.RoundIndex, turn)
	fmt.Fprintln(v.Out, RenderUniverse(u))
	fmt.Fprintln(v.Out, RenderScore(u))
	if record.Finished {
		if record.TeamWins != nil {
			fmt.Fprintf(v.Out, "Game over: team %q wins\n", record.TeamName[*record.TeamWins])
		} else {
			fmt.Fprintln(v.Out, "Game over: tie")
		}
	}
}
