package viewer

import (
	"encoding/json"
	"io"

	"github.com/vovakirdan/mazectf/internal/game"
	"github.com/vovakirdan/mazectf/internal/master"
)

// Dump streams full JSON snapshots to a writer, one message per step,
// separated by an EOT byte so remote viewers can reframe the stream.
type Dump struct {
	Out io.Writer
}

// NewDump creates a dumping viewer writing to out.
func NewDump(out io.Writer) *Dump {
	return &Dump{Out: out}
}

type dumpMessage struct {
	Action   string         `json:"action"`
	Universe game.Snapshot  `json:"universe"`
	Record   *master.Record `json:"record,omitempty"`
}

func (v *Dump) send(msg dumpMessage) {
	// Encoding a snapshot of plain values cannot fail; a broken writer is
	// the caller's problem, observers stay non-failing.
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	v.Out.Write(data)         //nolint:errcheck
	v.Out.Write([]byte{0x04}) //nolint:errcheck
}

// SetInitial sends the initial universe snapshot.
func (v *Dump) SetInitial(u *game.Universe) {
	v.send(dumpMessage{Action: "set_initial", Universe: u.Snapshot()})
}

// Observe sends the post-step snapshot with its record.
func (v *Dump) Observe(u *game.Universe, record master.Record) {
	v.send(dumpMessage{Action: "observe", Universe: u.Snapshot(), Record: &record})
}
