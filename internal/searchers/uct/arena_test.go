package uct

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/janpfeifer/goban/internal/game"
)

func TestArenaAcquireRelease(t *testing.T) {
	a := newArena(4)
	h1 := a.acquire()
	h2 := a.acquire()
	require.NotEqual(t, h1, h2)
	require.Equal(t, 2, a.liveNodes())

	a.release(h1)
	require.Equal(t, 1, a.liveNodes())

	// The freed slot is recycled before new ones are appended.
	h3 := a.acquire()
	require.Equal(t, h1, h3)
	require.Equal(t, 2, a.liveNodes())
}

func TestArenaExhaustionIsFatal(t *testing.T) {
	a := newArena(2)
	a.acquire()
	a.acquire()
	require.Panics(t, func() { a.acquire() })
}

func TestArenaDoubleReleaseIsFatal(t *testing.T) {
	a := newArena(2)
	h := a.acquire()
	cfg := DefaultConfig()
	a.at(h).init(game.AnyVertex, &cfg)
	a.release(h)
	require.Panics(t, func() { a.release(h) })
}

func TestArenaHandlesStayValid(t *testing.T) {
	a := newArena(8)
	cfg := DefaultConfig()
	first := a.acquire()
	a.at(first).init(game.AnyVertex, &cfg)
	a.at(first).update(1)
	for i := 0; i < 7; i++ {
		a.acquire()
	}
	// Growing the arena must not have moved the earlier slot's stats.
	require.InDelta(t, 2.0, float64(a.at(first).Bias()), 1e-6)
}
