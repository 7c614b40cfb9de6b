package uct

import (
	"time"

	"k8s.io/klog/v2"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/searchers"
)

// SearchStats is a snapshot of a running (or finished) search, delivered
// to the progress listener.
type SearchStats struct {
	Playouts       int
	TargetPlayouts int
	Aborted        int
	PlayoutsPerSec float64
	Best           game.Vertex
	BestValue      float32
	Elapsed        time.Duration
}

// StatsListener receives search progress snapshots. Called from the
// search goroutine; keep it fast.
type StatsListener func(SearchStats)

// Engine runs UCT playouts from a base board and picks the most
// explored root move. One Engine serves one match; it is not safe for
// concurrent use.
type Engine struct {
	cfg    Config
	tree   *Tree
	policy searchers.DefaultPolicy

	base    searchers.Board
	scratch searchers.Board

	// results collects the outcomes of completed playouts of the
	// current Genmove, for the perf log line.
	results    Stat
	aborted    int
	rootPlayer game.Player

	listener      StatsListener
	listenerEvery int
}

var _ searchers.Searcher = &Engine{}

// New creates an engine with the given tuning and default policy.
func New(cfg Config, policy searchers.DefaultPolicy) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:     cfg,
		policy:  policy,
		results: NewStat(),
	}
	e.tree = NewTree(&e.cfg)
	return e, nil
}

// SetListener installs a progress callback invoked every `every`
// completed playouts and once more when the search finishes.
func (e *Engine) SetListener(l StatsListener, every int) {
	e.listener = l
	e.listenerEvery = every
}

// Tree exposes the search tree for diagnostics and tests.
func (e *Engine) Tree() *Tree { return e.tree }

// Genmove implements searchers.Searcher: it seeds the root with pl's
// strictly legal moves, runs the configured number of playouts and
// returns the most explored root move, or game.Resign when that move's
// mean is hopeless for pl. The board is never mutated.
func (e *Engine) Genmove(board searchers.Board, pl game.Player) game.Vertex {
	e.base = board
	if e.scratch == nil || e.scratch.Size() != board.Size() {
		e.scratch = board.NewScratch()
	}
	e.tree.Reset()
	e.results.Reset(1)
	e.aborted = 0
	e.rootPlayer = pl
	e.seedRoot(pl)

	start := time.Now()
	for i := 0; i < e.cfg.Playouts; i++ {
		e.doPlayout(pl)
		if e.listener != nil && e.listenerEvery > 0 && (i+1)%e.listenerEvery == 0 {
			e.notify(i+1, start)
		}
	}
	elapsed := time.Since(start)
	if e.listener != nil {
		e.notify(e.cfg.Playouts, start)
	}

	best := e.tree.arena.findMostExplored(e.tree.root, pl)
	bn := e.tree.At(best)
	klog.V(1).Infof("uct: %d playouts (%d aborted) in %s, %.0f/s, results %s, best %s %.3f (%.0f)",
		e.cfg.Playouts, e.aborted, elapsed.Round(time.Millisecond),
		float64(e.cfg.Playouts)/elapsed.Seconds(), e.results.String(),
		bn.move, bn.value, bn.bias-e.cfg.InitialBias)
	if klog.V(2).Enabled() {
		klog.V(2).Infof("uct tree:\n%s", e.tree)
	}

	if pl == game.Black && bn.value < -e.cfg.ResignValue ||
		pl == game.White && bn.value > e.cfg.ResignValue {
		return game.Resign
	}
	return bn.move
}

func (e *Engine) notify(done int, start time.Time) {
	elapsed := time.Since(start)
	best := e.tree.arena.findMostExplored(e.tree.root, e.rootPlayer)
	bn := e.tree.At(best)
	e.listener(SearchStats{
		Playouts:       done,
		TargetPlayouts: e.cfg.Playouts,
		Aborted:        e.aborted,
		PlayoutsPerSec: float64(done) / elapsed.Seconds(),
		Best:           bn.move,
		BestValue:      bn.value,
		Elapsed:        elapsed,
	})
}

// seedRoot populates the root with one child per strictly legal move of
// pl, superko included. Pass is always legal, so the list is never
// empty.
func (e *Engine) seedRoot(pl game.Player) {
	e.tree.HistoryReset()
	for v := range e.base.Empties() {
		if e.base.IsStrictLegal(pl, v) {
			e.tree.ExpandChild(pl, v)
		}
	}
	e.tree.ExpandChild(pl, game.Pass)
}

// doPlayout runs one playout: descend under UCB mirroring moves on the
// scratch board, expand mature leaves, roll out from immature ones, and
// backpropagate the result over the descent path. A move that proves
// illegal on the scratch board deletes its node and aborts the playout
// with no update.
func (e *Engine) doPlayout(firstPlayer game.Player) {
	e.scratch.Load(e.base)
	e.tree.HistoryReset()
	prevWasPass := false
	pl := firstPlayer

	for {
		if e.tree.At(e.tree.Current()).noChildren(pl) {
			if e.tree.At(e.tree.Current()).isMature(&e.cfg) {
				// Expand: every empty point is a potential move; the
				// ones that are not legal get pruned on descent. Pass
				// is always added, so the next iteration is guaranteed
				// to take the descent branch instead of spinning here.
				for v := range e.scratch.Empties() {
					e.tree.ExpandChild(pl, v)
				}
				e.tree.ExpandChild(pl, game.Pass)
				continue
			}
			e.policy.Run(e.scratch, pl)
			break
		}

		e.tree.DescendUct(pl)
		v := e.tree.At(e.tree.Current()).move

		if !e.scratch.IsPseudoLegal(pl, v) {
			e.tree.DeleteCurrent(pl)
			e.aborted++
			return
		}
		if e.scratch.PlayLegal(pl, v) != game.StatusOK {
			e.tree.DeleteCurrent(pl)
			e.aborted++
			return
		}

		if v == game.Pass && prevWasPass {
			break
		}
		prevWasPass = v == game.Pass
		pl = pl.Other()
	}

	// Map the winner to Black's perspective: +1 Black, -1 White.
	winnerIdx := int(e.scratch.Winner())
	result := float32(1 - 2*winnerIdx)
	e.tree.Backprop(result)
	e.results.Update(result)
}
