// Package _default registers the searchers that can be included in any
// front-end for goban: the UCT engine and the random baseline.
package _default

import (
	"github.com/janpfeifer/goban/internal/players"
	"github.com/janpfeifer/goban/internal/searchers"
	"github.com/janpfeifer/goban/internal/searchers/uct"
)

func init() {
	players.RegisterSearcher(uct.NewFromParams)
	players.RegisterSearcher(searchers.NewRandomFromParams)
}
