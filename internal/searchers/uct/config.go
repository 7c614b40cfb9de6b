// Package uct implements Monte Carlo Tree Search with the UCT (Upper
// Confidence bounds applied to Trees) selection rule: repeated playouts
// descend a growing tree under UCB and finish with a cheap default
// policy; the move explored most at the root wins.
package uct

import (
	"github.com/pkg/errors"
)

// Config are the engine tunables. The engine keeps its own copy at
// construction; there is no process-wide mutable state.
type Config struct {
	// InitialValue of a fresh node, in Black's perspective.
	InitialValue float32

	// InitialBias is the prior pseudo-visit count of a fresh node. It
	// keeps the early mean defined and damped; must be >= 1.
	InitialBias float32

	// MatureBias is the bias above which a leaf expands on its next
	// visit. The default requires 100 real visits on top of the prior.
	MatureBias float32

	// ExploreRate weights the UCB exploration term.
	ExploreRate float32

	// MaxDepth caps the descent path; exceeding it is fatal.
	MaxDepth int

	// MaxNodes caps the arena; exhausting it is fatal.
	MaxNodes int

	// ResignValue: when the chosen root child's mean is beyond this
	// against the mover, the engine resigns.
	ResignValue float32

	// Playouts ran per Genmove.
	Playouts int

	// PrintVisitBase and PrintVisitParent gate which children the tree
	// dump recurses into: effective visits must reach
	// PrintVisitBase + parent effective visits × PrintVisitParent.
	PrintVisitBase   float32
	PrintVisitParent float32

	// Seed of the default policy's RNG; fixed seed makes a whole search
	// deterministic.
	Seed int64
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		InitialValue:     0.0,
		InitialBias:      1.0,
		MatureBias:       101.0,
		ExploreRate:      1.0,
		MaxDepth:         1000,
		MaxNodes:         1_000_000,
		ResignValue:      0.95,
		Playouts:         50_000,
		PrintVisitBase:   500,
		PrintVisitParent: 0.02,
		Seed:             1,
	}
}

// Validate returns an error describing the first invalid field.
func (c *Config) Validate() error {
	if c.InitialBias < 1 {
		return errors.Errorf("InitialBias must be >= 1, got %g", c.InitialBias)
	}
	if c.MatureBias <= c.InitialBias {
		return errors.Errorf("MatureBias (%g) must be above InitialBias (%g)",
			c.MatureBias, c.InitialBias)
	}
	if c.ExploreRate <= 0 {
		return errors.Errorf("ExploreRate must be positive, got %g", c.ExploreRate)
	}
	if c.MaxDepth < 2 {
		return errors.Errorf("MaxDepth must be at least 2, got %d", c.MaxDepth)
	}
	if c.MaxNodes < 2 {
		return errors.Errorf("MaxNodes must be at least 2, got %d", c.MaxNodes)
	}
	if c.ResignValue <= 0 || c.ResignValue > 1 {
		return errors.Errorf("ResignValue must be in (0, 1], got %g", c.ResignValue)
	}
	if c.Playouts < 1 {
		return errors.Errorf("Playouts must be at least 1, got %d", c.Playouts)
	}
	return nil
}
