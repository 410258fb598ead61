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

import (
	"container/heap"
	"context"

	"github.com/AleutianAI/gemsearch/puzzle"
)

// openItem is one entry in the A* open list. Stale entries are tolerated
// (lazy deletion): an item whose g no longer matches its node is skipped on
// pop.
type openItem struct {
	id    int
	f     float64
	g     float64
	order int
}

// openList is a binary heap ordered by f, ties broken by insertion order so
// runs are deterministic.
type openList []openItem

func (o openList) Len() int { return len(o) }

func (o openList) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].order < o[j].order
}

func (o openList) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openList) Push(x any) { *o = append(*o, x.(openItem)) }

func (o *openList) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}

// AStar runs A* (weighted when cfg.Weight > 1) from start to goal under
// unit move costs.
//
// Inputs:
//   - ctx: Cancels the search; cancellation is an error, not a failed
//     search.
//   - start, goal: Boards of equal size.
//   - cfg: Search configuration. nil uses DefaultConfig().
//
// Outputs:
//   - *Result: Found=false when the goal is unreachable or the expansion
//     budget ran out; statistics are populated either way.
//   - error: Invalid inputs or context cancellation.
func AStar(ctx context.Context, start, goal *puzzle.State, cfg *Config) (*Result, error) {
	if err := validatePair(start, goal); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	arena := NewArena()
	rootID := arena.Add(start, NoParent, 0)

	open := openList{}
	heap.Init(&open)
	order := 0
	push := func(id int, g float64, s *puzzle.State) {
		h := float64(cfg.Estimator.Estimate(s, goal))
		heap.Push(&open, openItem{id: id, f: g + cfg.Weight*h, g: g, order: order})
		order++
	}
	push(rootID, 0, start)

	closed := make(map[int]struct{})
	steps := 0

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := heap.Pop(&open).(openItem)
		node := arena.Node(item.id)
		if _, done := closed[item.id]; done || item.g > node.G {
			continue // stale entry
		}

		state := node.State
		g := node.G
		if state.Equal(goal) {
			return &Result{
				Found:      true,
				Terminal:   arena.Node(item.id),
				Steps:      steps,
				TreeSize:   arena.Len(),
				Arena:      arena,
				terminalID: item.id,
			}, nil
		}

		if cfg.MaxExpansions > 0 && steps >= cfg.MaxExpansions {
			break
		}
		closed[item.id] = struct{}{}
		steps++

		for _, succ := range cfg.Expander.Expand(state) {
			g2 := g + 1
			if id2, ok := arena.Find(succ); ok {
				n2 := arena.Node(id2)
				if _, done := closed[id2]; done || g2 >= n2.G {
					continue
				}
				n2.G = g2
				n2.Parent = item.id
				push(id2, g2, n2.State)
				continue
			}
			id2 := arena.Add(succ, item.id, g2)
			push(id2, g2, succ)
		}
	}

	return &Result{Steps: steps, TreeSize: arena.Len(), Arena: arena}, nil
}
