package uct

import (
	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/goban/internal/game"
)

// Node is one search-tree node. Children hang off per-player head
// handles and are chained through the single sibling handle, an
// intrusive singly-linked list: insertion is at the head (O(1)) and the
// list order carries no meaning.
type Node struct {
	// move that was played to reach this node; game.AnyVertex at the root.
	move game.Vertex

	// value is the running mean of playout results seen through this
	// node, always in Black's perspective: positive favors Black.
	value float32

	// bias is the effective visit count, prior included. It is the UCB
	// denominator and the backpropagation weight; never below the
	// configured initial bias while the node is live.
	bias float32

	// firstChild is the head of the children list for the player who
	// moves from this node.
	firstChild [game.NumPlayers]handle

	sibling handle
}

// init prepares a freshly acquired slot. Called exactly once per
// acquire.
func (n *Node) init(v game.Vertex, cfg *Config) {
	n.move = v
	n.value = cfg.InitialValue
	n.bias = cfg.InitialBias
	n.firstChild[game.Black] = nilHandle
	n.firstChild[game.White] = nilHandle
	n.sibling = nilHandle
}

// Move returns the move that reaches this node.
func (n *Node) Move() game.Vertex { return n.move }

// Value returns the running mean result in Black's perspective.
func (n *Node) Value() float32 { return n.value }

// Bias returns the effective visit count, prior included.
func (n *Node) Bias() float32 { return n.bias }

// ucb is the selection score for a child: the sign-adjusted mean plus
// the exploration bonus. exploreCoeff is log(parent bias)×explore rate,
// precomputed once per selection by the caller.
func (n *Node) ucb(pl game.Player, exploreCoeff float32) float32 {
	exploit := n.value
	if pl == game.White {
		exploit = -exploit
	}
	return exploit + math32.Sqrt(exploreCoeff/n.bias)
}

// update folds one playout result into the node: the incremental mean
// treats the prior as one pseudo-observation of the initial value.
func (n *Node) update(result float32) {
	n.bias++
	n.value += (result - n.value) / n.bias
}

// isMature reports whether the leaf collected enough visits to be
// expanded on its next visit.
func (n *Node) isMature(cfg *Config) bool {
	return n.bias > cfg.MatureBias
}

// noChildren reports whether the node has no children for pl.
func (n *Node) noChildren(pl game.Player) bool {
	return n.firstChild[pl] == nilHandle
}

// addChild inserts a fresh child at the head of parent's pl-children
// list. The child must not be linked anywhere yet.
func (a *arena) addChild(parent, child handle, pl game.Player) {
	c := a.at(child)
	if debugChecks {
		if c.sibling != nilHandle ||
			c.firstChild[game.Black] != nilHandle ||
			c.firstChild[game.White] != nilHandle {
			exceptions.Panicf("uct: adding a non-fresh node %d as child", child)
		}
	}
	p := a.at(parent)
	c.sibling = p.firstChild[pl]
	p.firstChild[pl] = child
}

// removeChild unlinks target from parent's pl-children list, scanning
// for its predecessor. A target that is not a child is fatal.
func (a *arena) removeChild(parent handle, pl game.Player, target handle) {
	p := a.at(parent)
	if p.firstChild[pl] == target {
		p.firstChild[pl] = a.at(target).sibling
		return
	}
	for cur := p.firstChild[pl]; cur != nilHandle; cur = a.at(cur).sibling {
		if a.at(cur).sibling == target {
			a.at(cur).sibling = a.at(target).sibling
			return
		}
	}
	exceptions.Panicf("uct: node %d is not a %s-child of node %d", target, pl, parent)
}

// findUctChild returns the pl-child with the highest UCB score. Ties
// keep the first-seen maximum, which is stable under the list order.
// The list must be non-empty; at the root that holds because pass is
// always seeded.
func (a *arena) findUctChild(parent handle, pl game.Player, exploreRate float32) handle {
	p := a.at(parent)
	exploreCoeff := math32.Log(p.bias) * exploreRate
	best := nilHandle
	bestUrgency := math32.Inf(-1)
	for cur := p.firstChild[pl]; cur != nilHandle; cur = a.at(cur).sibling {
		if urgency := a.at(cur).ucb(pl, exploreCoeff); urgency > bestUrgency {
			bestUrgency = urgency
			best = cur
		}
	}
	if best == nilHandle {
		exceptions.Panicf("uct: no %s-children to select from", pl)
	}
	return best
}

// findMostExplored returns the pl-child with the highest bias, the move
// the engine ultimately plays. Same tie-break as findUctChild.
func (a *arena) findMostExplored(parent handle, pl game.Player) handle {
	best := nilHandle
	bestBias := math32.Inf(-1)
	for cur := a.at(parent).firstChild[pl]; cur != nilHandle; cur = a.at(cur).sibling {
		if b := a.at(cur).bias; b > bestBias {
			bestBias = b
			best = cur
		}
	}
	if best == nilHandle {
		exceptions.Panicf("uct: no %s-children to select from", pl)
	}
	return best
}
