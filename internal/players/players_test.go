package players_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/players"
	_ "github.com/janpfeifer/goban/internal/players/default"
)

func TestNewFromConfig(t *testing.T) {
	player, err := players.New("uct,playouts=20,seed=3")
	require.NoError(t, err)
	require.NotNil(t, player.Searcher)

	player, err = players.New("random,seed=3")
	require.NoError(t, err)
	require.NotNil(t, player.Searcher)
}

func TestNewRejectsBadConfigs(t *testing.T) {
	_, err := players.New("uct,frobnicate=1")
	require.ErrorContains(t, err, "frobnicate")

	_, err = players.New("nosuchsearcher")
	require.ErrorContains(t, err, "no searcher")

	_, err = players.New("uct,random")
	require.ErrorContains(t, err, "multiple searchers")
}

func TestPlayIsDeterministicWithSeed(t *testing.T) {
	play := func() game.Vertex {
		player, err := players.New("uct,playouts=50,seed=7")
		require.NoError(t, err)
		board := game.NewBoard(5)
		require.Equal(t, game.StatusOK,
			board.PlayLegal(game.Black, game.MakeVertex(3, 3)))
		return player.Play(board, game.White)
	}
	first := play()
	require.Equal(t, first, play())
	// The board was only searched, never mutated by Play.
	board := game.NewBoard(5)
	hash := board.Hash()
	player, err := players.New("uct,playouts=10,seed=1")
	require.NoError(t, err)
	player.Play(board, game.Black)
	require.Equal(t, hash, board.Hash())
}
