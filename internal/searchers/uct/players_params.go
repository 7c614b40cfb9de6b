package uct

import (
	"github.com/janpfeifer/goban/internal/parameters"
	"github.com/janpfeifer/goban/internal/searchers"
	"github.com/janpfeifer/goban/internal/searchers/playout"
	"github.com/pkg/errors"
)

// NewFromParams builds the UCT engine if the "uct" parameter is set,
// otherwise it returns nil. Recognized parameters:
//
//   - uct (bool): select this searcher.
//   - playouts (int): playouts per move, default 50000.
//   - explore (float): UCB exploration rate, default 1.0.
//   - resign (float): |mean| threshold for resignation, default 0.95.
//   - max_depth (int), max_nodes (int): tree limits.
//   - seed (int64): RNG seed of the default policy, default 1.
func NewFromParams(params parameters.Params) (searchers.Searcher, error) {
	isUCT, err := parameters.PopParamOr(params, "uct", false)
	if err != nil {
		return nil, err
	}
	if !isUCT {
		return nil, nil
	}
	cfg := DefaultConfig()
	if cfg.Playouts, err = parameters.PopParamOr(params, "playouts", cfg.Playouts); err != nil {
		return nil, err
	}
	if cfg.ExploreRate, err = parameters.PopParamOr(params, "explore", cfg.ExploreRate); err != nil {
		return nil, err
	}
	if cfg.ResignValue, err = parameters.PopParamOr(params, "resign", cfg.ResignValue); err != nil {
		return nil, err
	}
	if cfg.MaxDepth, err = parameters.PopParamOr(params, "max_depth", cfg.MaxDepth); err != nil {
		return nil, err
	}
	if cfg.MaxNodes, err = parameters.PopParamOr(params, "max_nodes", cfg.MaxNodes); err != nil {
		return nil, err
	}
	if cfg.Seed, err = parameters.PopParamOr(params, "seed", cfg.Seed); err != nil {
		return nil, err
	}
	engine, err := New(cfg, playout.NewSimple(cfg.Seed))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid uct configuration")
	}
	return engine, nil
}
