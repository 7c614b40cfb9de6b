package searchers

import (
	"math/rand"

	"k8s.io/klog/v2"

	"github.com/janpfeifer/goban/internal/game"
	"github.com/janpfeifer/goban/internal/parameters"
)

// randomSearcher is a baseline Searcher: it plays a uniformly random
// strictly legal move, refusing only to fill its own eyes, and passes
// when nothing else is left.
type randomSearcher struct {
	rng *rand.Rand
}

// NewRandom creates the baseline random searcher.
func NewRandom(seed int64) Searcher {
	return &randomSearcher{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomFromParams builds the random searcher if the "random"
// parameter is set, otherwise it returns nil. Recognized parameters:
// random (bool), seed (int64).
func NewRandomFromParams(params parameters.Params) (Searcher, error) {
	isRandom, err := parameters.PopParamOr(params, "random", false)
	if err != nil {
		return nil, err
	}
	if !isRandom {
		return nil, nil
	}
	seed, err := parameters.PopParamOr(params, "seed", int64(1))
	if err != nil {
		return nil, err
	}
	return NewRandom(seed), nil
}

// Genmove implements Searcher.
func (rs *randomSearcher) Genmove(board Board, pl game.Player) game.Vertex {
	var candidates []game.Vertex
	for v := range board.Empties() {
		if board.IsStrictLegal(pl, v) && !board.IsEyelike(pl, v) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return game.Pass
	}
	v := candidates[rs.rng.Intn(len(candidates))]
	klog.V(1).Infof("random: picked %s out of %d candidates", v, len(candidates))
	return v
}
