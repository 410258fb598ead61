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
	"context"
	"errors"
	"math"

	"github.com/AleutianAI/gemsearch/puzzle"
)

// errBudget unwinds the depth-first walk when the expansion cap is hit.
var errBudget = errors.New("expansion budget exhausted")

// IDAStar runs iterative-deepening A* from start to goal under unit move
// costs. Each deepening iteration rebuilds the tree from scratch, so memory
// stays proportional to the final iteration rather than the whole explored
// space; states already on the current path are not re-entered.
//
// Result semantics match AStar. Steps counts expansions across all
// iterations; TreeSize is the node count of the final iteration's tree.
// cfg.Weight is ignored.
func IDAStar(ctx context.Context, start, goal *puzzle.State, cfg *Config) (*Result, error) {
	if err := validatePair(start, goal); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	bound := float64(cfg.Estimator.Estimate(start, goal))
	steps := 0

	for {
		arena := NewArena()
		rootID := arena.Add(start, NoParent, 0)
		walk := &deepening{
			ctx:    ctx,
			cfg:    cfg,
			goal:   goal,
			arena:  arena,
			onPath: map[string]struct{}{start.Key(): {}},
			bound:  bound,
			next:   math.Inf(1),
			steps:  &steps,
		}
		terminalID, found, err := walk.dfs(rootID)
		if err != nil {
			if errors.Is(err, errBudget) {
				return &Result{Steps: steps, TreeSize: arena.Len(), Arena: arena}, nil
			}
			return nil, err
		}
		if found {
			return &Result{
				Found:      true,
				Terminal:   arena.Node(terminalID),
				Steps:      steps,
				TreeSize:   arena.Len(),
				Arena:      arena,
				terminalID: terminalID,
			}, nil
		}
		if math.IsInf(walk.next, 1) {
			// No node exceeded the bound and the goal never appeared:
			// the reachable space is exhausted.
			return &Result{Steps: steps, TreeSize: arena.Len(), Arena: arena}, nil
		}
		bound = walk.next
	}
}

// deepening carries the per-iteration state of one bounded depth-first walk.
type deepening struct {
	ctx    context.Context
	cfg    *Config
	goal   *puzzle.State
	arena  *Arena
	onPath map[string]struct{}
	bound  float64
	next   float64
	steps  *int
}

// dfs walks below the node at id, honoring the f bound. It returns the
// terminal handle when the goal is reached.
func (d *deepening) dfs(id int) (int, bool, error) {
	if err := d.ctx.Err(); err != nil {
		return 0, false, err
	}

	// Copy out of the arena before any Add can grow it.
	state := d.arena.Node(id).State
	g := d.arena.Node(id).G

	f := g + float64(d.cfg.Estimator.Estimate(state, d.goal))
	if f > d.bound {
		if f < d.next {
			d.next = f
		}
		return 0, false, nil
	}
	if state.Equal(d.goal) {
		return id, true, nil
	}

	if d.cfg.MaxExpansions > 0 && *d.steps >= d.cfg.MaxExpansions {
		return 0, false, errBudget
	}
	*d.steps++

	for _, succ := range d.cfg.Expander.Expand(state) {
		key := succ.Key()
		if _, onPath := d.onPath[key]; onPath {
			continue
		}

		childID := d.arena.Add(succ, id, g+1)
		d.onPath[key] = struct{}{}
		terminalID, found, err := d.dfs(childID)
		delete(d.onPath, key)
		if err != nil || found {
			return terminalID, found, err
		}
	}
	return 0, false, nil
}
