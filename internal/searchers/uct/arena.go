package uct

import (
	"github.com/gomlx/exceptions"
)

// handle addresses a Node slot inside an arena. Handles stay valid until
// the slot is released; nilHandle is the absent child/sibling.
type handle int32

const nilHandle handle = -1

// debugChecks enables the cheap invariant checks on the search hot
// path. They catch child-list corruption and double frees; disable only
// when profiling shows they matter.
const debugChecks = true

// freedBias marks a released slot. Live nodes always have bias >= 1.
const freedBias float32 = -1

// arena is a fixed-capacity pool of Node slots. Slots are appended
// lazily up to capacity and recycled through a free list; it is the only
// allocator for tree nodes, so the arena capacity bounds the whole tree.
type arena struct {
	nodes []Node
	free  []handle
	live  int
}

func newArena(capacity int) *arena {
	return &arena{
		nodes: make([]Node, 0, capacity),
	}
}

// at returns the node for a handle. The handle must be live.
func (a *arena) at(h handle) *Node {
	return &a.nodes[h]
}

// liveNodes returns how many slots are currently in use.
func (a *arena) liveNodes() int { return a.live }

// acquire returns an uninitialized node slot. Exhausting the arena is
// fatal: the search cannot continue meaningfully without nodes.
func (a *arena) acquire() handle {
	a.live++
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		return h
	}
	if len(a.nodes) == cap(a.nodes) {
		exceptions.Panicf("uct: node arena exhausted (%d nodes)", cap(a.nodes))
	}
	a.nodes = append(a.nodes, Node{})
	return handle(len(a.nodes) - 1)
}

// release returns a slot to the free list. The node's handle must never
// be dereferenced afterwards.
func (a *arena) release(h handle) {
	n := a.at(h)
	if debugChecks && n.bias == freedBias {
		exceptions.Panicf("uct: double release of node %d", h)
	}
	n.bias = freedBias
	a.live--
	a.free = append(a.free, h)
}
