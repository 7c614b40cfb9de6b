package uct

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"

	"github.com/janpfeifer/goban/internal/game"
)

// Tree owns the node arena, the root and the descent history of the
// playout in flight. The history is the ordered path from the root to
// the current frontier node; backpropagation walks it once per playout.
type Tree struct {
	cfg   *Config
	arena *arena

	root    handle
	history []handle
}

// NewTree creates the arena and the root node, which carries the
// sentinel "any" move and must never be interpreted as a real one.
func NewTree(cfg *Config) *Tree {
	t := &Tree{
		cfg:     cfg,
		arena:   newArena(cfg.MaxNodes),
		history: make([]handle, 1, cfg.MaxDepth),
	}
	t.root = t.arena.acquire()
	t.arena.at(t.root).init(game.AnyVertex, cfg)
	t.history[0] = t.root
	return t
}

// Root returns the root handle.
func (t *Tree) Root() handle { return t.root }

// At resolves a handle; exposed for the engine and tests.
func (t *Tree) At(h handle) *Node { return t.arena.at(h) }

// LiveNodes returns the number of live nodes, root included.
func (t *Tree) LiveNodes() int { return t.arena.liveNodes() }

// HistoryReset discards the descent path, leaving only the root.
func (t *Tree) HistoryReset() {
	t.history = t.history[:1]
}

// Current returns the last node on the descent path.
func (t *Tree) Current() handle {
	return t.history[len(t.history)-1]
}

// DescendUct appends the UCB-best pl-child of the current node to the
// history. Blowing the depth cap is fatal.
func (t *Tree) DescendUct(pl game.Player) {
	if len(t.history) >= t.cfg.MaxDepth {
		exceptions.Panicf("uct: descent exceeded max depth %d", t.cfg.MaxDepth)
	}
	child := t.arena.findUctChild(t.Current(), pl, t.cfg.ExploreRate)
	t.history = append(t.history, child)
}

// ExpandChild allocates a node for move v and links it as a pl-child of
// the current node.
func (t *Tree) ExpandChild(pl game.Player, v game.Vertex) {
	h := t.arena.acquire()
	t.arena.at(h).init(v, t.cfg)
	t.arena.addChild(t.Current(), h, pl)
}

// DeleteCurrent removes the current node, found to be illegal during a
// playout, and pops it from the history. The node must not have
// children under the opposing player, which holds because it was just
// descended into and never expanded.
func (t *Tree) DeleteCurrent(pl game.Player) {
	cur := t.Current()
	if debugChecks && !t.arena.at(cur).noChildren(pl.Other()) {
		exceptions.Panicf("uct: deleting node %d that has %s-children", cur, pl.Other())
	}
	parent := t.history[len(t.history)-2]
	t.arena.removeChild(parent, pl, cur)
	t.arena.release(cur)
	t.history = t.history[:len(t.history)-1]
}

// FreeSubtree releases every descendant of h and then h itself. The
// traversal is an explicit stack: trees can approach the depth cap and
// recursion there would risk the goroutine stack.
func (t *Tree) FreeSubtree(h handle) {
	stack := []handle{h}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.arena.at(cur)
		for pl := game.Black; pl < game.NumPlayers; pl++ {
			for c := n.firstChild[pl]; c != nilHandle; c = t.arena.at(c).sibling {
				stack = append(stack, c)
			}
		}
		t.arena.release(cur)
	}
}

// Backprop folds one playout result into every node on the history,
// root included, each exactly once.
func (t *Tree) Backprop(result float32) {
	for _, h := range t.history {
		t.arena.at(h).update(result)
	}
}

// Reset frees everything below the root and re-initializes it, keeping
// the arena. The engine calls it at the start of every Genmove: trees
// are not reused between moves.
func (t *Tree) Reset() {
	t.HistoryReset()
	root := t.arena.at(t.root)
	for pl := game.Black; pl < game.NumPlayers; pl++ {
		for c := root.firstChild[pl]; c != nilHandle; {
			next := t.arena.at(c).sibling
			t.FreeSubtree(c)
			c = next
		}
	}
	root.init(game.AnyVertex, t.cfg)
}

// String renders the explored tree for diagnostics: one line per node
// above the visit thresholds, best moves first.
func (t *Tree) String() string {
	var sb strings.Builder
	t.recPrint(&sb, t.root, 0, game.Black)
	return sb.String()
}

func (t *Tree) recPrint(sb *strings.Builder, h handle, depth int, pl game.Player) {
	n := t.arena.at(h)
	fmt.Fprintf(sb, "%s%s %s %.3f (%.0f)\n",
		strings.Repeat("  ", depth), pl, n.move, n.value, n.bias-t.cfg.InitialBias)
	for child := game.Black; child < game.NumPlayers; child++ {
		t.recPrintChildren(sb, h, depth, child)
	}
}

// recPrintChildren prints the pl-children of h worth showing: effective
// visits of at least PrintVisitBase plus a share of the parent's,
// ordered by mean from the mover's perspective.
func (t *Tree) recPrintChildren(sb *strings.Builder, h handle, depth int, pl game.Player) {
	n := t.arena.at(h)
	minVisits := t.cfg.PrintVisitBase + (n.bias-t.cfg.InitialBias)*t.cfg.PrintVisitParent

	var children []handle
	for c := n.firstChild[pl]; c != nilHandle; c = t.arena.at(c).sibling {
		children = append(children, c)
	}
	slices.SortStableFunc(children, func(x, y handle) int {
		vx, vy := t.arena.at(x).value, t.arena.at(y).value
		if pl == game.White {
			vx, vy = vy, vx
		}
		switch {
		case vx > vy:
			return -1
		case vx < vy:
			return 1
		}
		return 0
	})
	for _, c := range children {
		if t.arena.at(c).bias-t.cfg.InitialBias < minVisits {
			continue
		}
		t.recPrint(sb, c, depth+1, pl)
	}
}
