// Package searchers defines the interfaces every move-selection
// algorithm adheres to, and the board surface those algorithms consume.
package searchers

import (
	"iter"

	"github.com/janpfeifer/goban/internal/game"
)

// Board is the game surface a searcher drives. It is the read/write
// subset of *game.Board the search core needs; tests substitute stubs.
type Board interface {
	// Size returns the board side length.
	Size() int

	// Load copies the state of another board of the same size. The
	// receiver is a board obtained from NewScratch; the argument is a
	// board of the same underlying implementation.
	Load(from Board)

	// NewScratch returns a fresh board of the same size and
	// implementation, for use with Load.
	NewScratch() Board

	// IsStrictLegal checks full legality, including positional superko.
	// Only used for moves at the search root.
	IsStrictLegal(pl game.Player, v game.Vertex) bool

	// IsPseudoLegal is the cheap local check used during playouts.
	IsPseudoLegal(pl game.Player, v game.Vertex) bool

	// PlayLegal applies a move and reports its status. Anything other
	// than game.StatusOK leaves the board unchanged.
	PlayLegal(pl game.Player, v game.Vertex) game.MoveStatus

	// IsEyelike reports a one-point eye shape of pl; playout policies
	// must not fill those.
	IsEyelike(pl game.Player, v game.Vertex) bool

	// Empties iterates over the empty points.
	Empties() iter.Seq[game.Vertex]

	// ConsecutivePasses ending with the last move; two end the game.
	ConsecutivePasses() int

	// Winner scores the final position.
	Winner() game.Player
}

// Searcher is anything able to pick a move.
type Searcher interface {
	// Genmove returns the move pl should play on board, possibly
	// game.Pass or game.Resign. It must not mutate board.
	Genmove(board Board, pl game.Player) game.Vertex
}

// DefaultPolicy finishes a game from an arbitrary position, playing both
// sides with a cheap heuristic. Implementations mutate the board they
// are given; callers hand over a scratch copy.
type DefaultPolicy interface {
	// Run plays from the position on b, first to move pl, until the
	// game ends (two consecutive passes or a move cap).
	Run(b Board, pl game.Player)
}

var _ Board = boardAdapter{}

// boardAdapter lifts *game.Board into the Board interface; the two
// methods below exist only to erase the concrete scratch type.
type boardAdapter struct {
	*game.Board
}

// WrapBoard adapts a concrete *game.Board to the Board interface.
func WrapBoard(b *game.Board) Board {
	return boardAdapter{b}
}

func (a boardAdapter) Load(from Board) {
	a.Board.Load(from.(boardAdapter).Board)
}

func (a boardAdapter) NewScratch() Board {
	return boardAdapter{game.NewBoard(a.Board.Size())}
}
