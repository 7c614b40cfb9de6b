// Package players provides a factory of AI players from configuration
// strings. Searcher implementations register themselves here.
package players

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/parameters"
	"github.com/janpfeifer/goban/internal/searchers"
)

// Player is anything able to play a match.
type Player interface {
	// Play returns the move chosen for pl on the given board, possibly
	// game.Pass or game.Resign. The board is not mutated.
	Play(board *game.Board, pl game.Player) game.Vertex
}

// SearcherBuilder builds a searchers.Searcher if its corresponding
// parameter is set (e.g. "uct" or "random"), and returns nil if not.
// Parameters used must be removed (popped) from params.
type SearcherBuilder func(params parameters.Params) (searchers.Searcher, error)

// RegisteredSearchers are tried in sequence against the given params.
// Builders are registered by the internal/players/default package.
var RegisteredSearchers []SearcherBuilder

// RegisterSearcher appends a builder; typically called from init.
func RegisterSearcher(builder SearcherBuilder) {
	RegisteredSearchers = append(RegisteredSearchers, builder)
}

// DefaultPlayerConfig is used when no configuration was given.
var DefaultPlayerConfig = "uct,playouts=10000"

// AIPlayer runs a Searcher behind the Player interface.
type AIPlayer struct {
	Searcher searchers.Searcher

	config string
}

var _ Player = &AIPlayer{}

// New creates an AI player from a configuration string: a
// comma-separated list of parameters with optional values, naming
// exactly one registered searcher. E.g. "uct,playouts=10000,seed=7".
func New(config string) (*AIPlayer, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}
	if len(RegisteredSearchers) == 0 {
		return nil, errors.New("no registered searchers; import " +
			"_ \"github.com/janpfeifer/goban/internal/players/default\" in your binary")
	}
	params := parameters.NewFromConfigString(config)
	player := &AIPlayer{config: config}
	for _, builder := range RegisteredSearchers {
		s, err := builder(params)
		if err != nil {
			return nil, err
		}
		if s == nil {
			continue
		}
		if player.Searcher != nil {
			return nil, errors.Errorf("multiple searchers defined in configuration %q", config)
		}
		player.Searcher = s
	}
	if player.Searcher == nil {
		return nil, errors.Errorf("no searcher defined in configuration %q", config)
	}
	if err := parameters.CheckAllConsumed(params); err != nil {
		return nil, errors.Wrapf(err, "configuration %q", config)
	}
	return player, nil
}

// Play implements Player.
func (p *AIPlayer) Play(board *game.Board, pl game.Player) game.Vertex {
	return p.Searcher.Genmove(searchers.WrapBoard(board), pl)
}

// String returns the configuration the player was built from.
func (p *AIPlayer) String() string {
	return strings.TrimSpace(p.config)
}
