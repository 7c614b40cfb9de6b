// Package progress renders a single-line live meter of a running UCT
// search: a spinner glyph advanced by the search itself, playouts done,
// rate and the current best move. It rewrites the same terminal line on
// every snapshot, so it doubles as the "engine is thinking" indicator.
package progress

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/janpfeifer/goban/internal/searchers/uct"
)

// meterFrames cycle once per snapshot: the spinner only moves when the
// search does, so a stalled engine is visibly stalled.
var meterFrames = []rune(`|/-\`)

// Meter writes search snapshots to w, rewriting one line in place.
type Meter struct {
	out   *termenv.Output
	frame int
}

// NewMeter creates a meter writing to w (usually os.Stderr, keeping
// stdout clean for the game protocol).
func NewMeter(w io.Writer) *Meter {
	return &Meter{out: termenv.NewOutput(w)}
}

// Listener returns the callback to install with Engine.SetListener.
func (m *Meter) Listener() uct.StatsListener {
	return func(stats uct.SearchStats) {
		glyph := meterFrames[m.frame%len(meterFrames)]
		m.frame++
		m.out.ClearLine()
		line := fmt.Sprintf("\r%c playouts %d/%d  %.0f/s  best %s %+.2f",
			glyph, stats.Playouts, stats.TargetPlayouts, stats.PlayoutsPerSec,
			stats.Best, stats.BestValue)
		m.out.WriteString(m.out.String(line).Faint().String())
	}
}

// Finish clears the meter line so the final output starts clean. Call
// it once the search returned.
func (m *Meter) Finish() {
	m.out.ClearLine()
	m.out.WriteString("\r")
	m.frame = 0
}
