// Package playout implements the default policy that finishes games
// beyond the search-tree frontier: both sides play uniformly random
// legal moves, refusing only to fill their own eyes, until two
// consecutive passes or a mercy cap on the game length.
package playout

import (
	"math/rand"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/searchers"
)

// lengthCapFactor bounds a playout to factor×(board area) moves, so a
// degenerate position cannot loop forever.
const lengthCapFactor = 3

// Simple is the uniform-random default policy.
//
// Simple is not safe for concurrent use: it owns scratch buffers and a
// private RNG.
type Simple struct {
	rng *rand.Rand

	candidates []game.Vertex
}

var _ searchers.DefaultPolicy = &Simple{}

// NewSimple creates the policy with its own RNG. A fixed seed makes
// playouts, and therefore whole searches, reproducible.
func NewSimple(seed int64) *Simple {
	return &Simple{rng: rand.New(rand.NewSource(seed))}
}

// Run implements searchers.DefaultPolicy.
func (p *Simple) Run(b searchers.Board, pl game.Player) {
	maxMoves := lengthCapFactor * b.Size() * b.Size()
	for move := 0; move < maxMoves; move++ {
		if b.ConsecutivePasses() >= 2 {
			return
		}
		p.playOne(b, pl)
		pl = pl.Other()
	}
}

// playOne plays a uniformly random playable point for pl, or passes when
// there is none. A point is playable when it is pseudo-legal, not an own
// eye, and actually plays (not suicide). Rejected candidates are
// swap-removed so each is attempted at most once.
func (p *Simple) playOne(b searchers.Board, pl game.Player) {
	p.candidates = p.candidates[:0]
	for v := range b.Empties() {
		p.candidates = append(p.candidates, v)
	}
	for len(p.candidates) > 0 {
		i := p.rng.Intn(len(p.candidates))
		v := p.candidates[i]
		if b.IsPseudoLegal(pl, v) && !b.IsEyelike(pl, v) {
			if b.PlayLegal(pl, v) == game.StatusOK {
				return
			}
		}
		p.candidates[i] = p.candidates[len(p.candidates)-1]
		p.candidates = p.candidates[:len(p.candidates)-1]
	}
	b.PlayLegal(pl, game.Pass)
}
