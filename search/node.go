// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import "github.com/AleutianAI/gemsearch/puzzle"

// NoParent marks a root node's parent handle.
const NoParent = -1

// Node wraps a puzzle state for search bookkeeping. The state keeps its own
// value identity; parent linkage and accumulated path cost live here so two
// nodes reaching the same board via different paths still collapse to one
// state in the arena index.
type Node struct {
	// State is the board this node represents.
	State *puzzle.State

	// Parent is the arena handle of the generating node, NoParent for the
	// root.
	Parent int

	// G is the accumulated path cost from the root.
	G float64
}

// PathCost returns the accumulated cost g. This is the field the evaluation
// harness reads off a terminal node.
func (n *Node) PathCost() float64 {
	return n.G
}

// Arena stores search nodes contiguously and hands out integer handles.
// Parent references are handles into the same arena, so there are no
// ownership cycles and a full tree is dropped by dropping the arena.
//
// The dedup index maps the 64-bit state hash to the handles carrying that
// hash; Find confirms candidates with exact equality, so hash collisions can
// slow a lookup but never merge distinct boards.
//
// Thread Safety: Not safe for concurrent use. Each search owns its arena.
type Arena struct {
	nodes []Node
	index map[uint64][]int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{index: make(map[uint64][]int)}
}

// Add appends a node and returns its handle.
func (a *Arena) Add(state *puzzle.State, parent int, g float64) int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, Node{State: state, Parent: parent, G: g})
	h := state.Hash()
	a.index[h] = append(a.index[h], id)
	return id
}

// Node returns the node at the given handle. The pointer is valid until the
// next Add; callers holding it across insertions must copy the fields they
// need.
func (a *Arena) Node(id int) *Node {
	return &a.nodes[id]
}

// Len returns the number of nodes in the arena, which is the size of the
// search tree built so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Find returns the handle of the node holding an equal state, if any. When
// several handles share the board (IDA* re-expansions), the first one added
// wins.
func (a *Arena) Find(state *puzzle.State) (int, bool) {
	for _, id := range a.index[state.Hash()] {
		if a.nodes[id].State.Equal(state) {
			return id, true
		}
	}
	return 0, false
}

// Path reconstructs the root-to-node state sequence by walking parent
// handles.
func (a *Arena) Path(id int) []*puzzle.State {
	var rev []*puzzle.State
	for cur := id; cur != NoParent; cur = a.nodes[cur].Parent {
		rev = append(rev, a.nodes[cur].State)
	}
	path := make([]*puzzle.State, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}
