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
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/gemsearch/puzzle"
)

// algorithm lets the same assertions run against both searches.
type algorithm func(context.Context, *puzzle.State, *puzzle.State, *Config) (*Result, error)

var algorithms = map[string]algorithm{
	"astar":   AStar,
	"idastar": IDAStar,
}

func mustState(t *testing.T, tiles []int) *puzzle.State {
	t.Helper()
	s, err := puzzle.NewState(tiles)
	require.NoError(t, err)
	return s
}

// scramble walks moves legal steps away from the goal without backtracking
// into the immediately preceding board.
func scramble(rng *rand.Rand, size, moves int) *puzzle.State {
	s := puzzle.GoalState(size)
	var prev *puzzle.State
	for i := 0; i < moves; i++ {
		succs := s.Successors()
		next := succs[rng.IntN(len(succs))]
		for prev != nil && next.Equal(prev) {
			next = succs[rng.IntN(len(succs))]
		}
		prev, s = s, next
	}
	return s
}

func TestSearch_StartIsGoal(t *testing.T) {
	goal := puzzle.GoalState(3)
	for name, algo := range algorithms {
		t.Run(name, func(t *testing.T) {
			res, err := algo(context.Background(), goal, goal, nil)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Zero(t, res.Terminal.PathCost())
			assert.Equal(t, []*puzzle.State{goal}, res.Path())
		})
	}
}

func TestSearch_OneMove(t *testing.T) {
	start := mustState(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 8})
	goal := puzzle.GoalState(3)
	for name, algo := range algorithms {
		t.Run(name, func(t *testing.T) {
			res, err := algo(context.Background(), start, goal, nil)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, 1.0, res.Terminal.PathCost())
			assert.GreaterOrEqual(t, res.TreeSize, 2)
		})
	}
}

func TestSearch_FindsOptimalPaths(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 23))
	goal := puzzle.GoalState(3)

	for name, algo := range algorithms {
		t.Run(name, func(t *testing.T) {
			for trial := 0; trial < 10; trial++ {
				moves := 4 + rng.IntN(12)
				start := scramble(rng, 3, moves)

				res, err := algo(context.Background(), start, goal, nil)
				require.NoError(t, err)
				require.True(t, res.Found, "trial %d unsolved:\n%s", trial, start)

				h := puzzle.ManhattanDistance(start, goal)
				cost := res.Terminal.PathCost()
				assert.GreaterOrEqual(t, cost, float64(h), "path shorter than an admissible estimate")
				assert.LessOrEqual(t, cost, float64(moves), "path longer than the scramble walk")

				path := res.Path()
				require.NotEmpty(t, path)
				assert.True(t, path[0].Equal(start))
				assert.True(t, path[len(path)-1].Equal(goal))
				assert.Len(t, path, int(cost)+1)
			}
		})
	}
}

func TestSearch_PathIsLegal(t *testing.T) {
	rng := rand.New(rand.NewPCG(29, 29))
	start := scramble(rng, 3, 14)
	goal := puzzle.GoalState(3)

	res, err := AStar(context.Background(), start, goal, nil)
	require.NoError(t, err)
	require.True(t, res.Found)

	path := res.Path()
	for i := 1; i < len(path); i++ {
		legal := false
		for _, succ := range path[i-1].Successors() {
			if succ.Equal(path[i]) {
				legal = true
				break
			}
		}
		require.True(t, legal, "step %d is not one blank move:\n%s->\n%s", i, path[i-1], path[i])
	}
}

func TestSearch_Unsolvable(t *testing.T) {
	// A single transposition is unreachable; the 2x2 component holds only
	// twelve states, so both searches exhaust it quickly.
	start := mustState(t, []int{2, 1, 3, 4})
	goal := puzzle.GoalState(2)

	for name, algo := range algorithms {
		t.Run(name, func(t *testing.T) {
			res, err := algo(context.Background(), start, goal, nil)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Nil(t, res.Terminal)
			assert.Nil(t, res.Path())
			assert.Positive(t, res.Steps)
			assert.Positive(t, res.TreeSize)
		})
	}
}

func TestSearch_ExpansionBudget(t *testing.T) {
	// Unsolvable start: without the budget both searches would grind
	// through half of 9! states before giving up.
	start := mustState(t, []int{1, 2, 3, 4, 5, 6, 8, 7, 9})
	goal := puzzle.GoalState(3)
	cfg := &Config{MaxExpansions: 5}

	for name, algo := range algorithms {
		t.Run(name, func(t *testing.T) {
			res, err := algo(context.Background(), start, goal, cfg)
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.LessOrEqual(t, res.Steps, 5)
		})
	}
}

func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := mustState(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 8})
	goal := puzzle.GoalState(3)

	for name, algo := range algorithms {
		t.Run(name, func(t *testing.T) {
			_, err := algo(ctx, start, goal, nil)
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestSearch_MismatchedSizes(t *testing.T) {
	for name, algo := range algorithms {
		t.Run(name, func(t *testing.T) {
			_, err := algo(context.Background(), puzzle.GoalState(2), puzzle.GoalState(3), nil)
			require.ErrorIs(t, err, ErrMismatchedStates)
		})
	}
}

func TestAStar_WeightedStillSolves(t *testing.T) {
	rng := rand.New(rand.NewPCG(37, 37))
	start := scramble(rng, 3, 16)
	goal := puzzle.GoalState(3)

	res, err := AStar(context.Background(), start, goal, &Config{Weight: 2.5})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.GreaterOrEqual(t, res.Terminal.PathCost(),
		float64(puzzle.ManhattanDistance(start, goal)))
}

func TestArena(t *testing.T) {
	a := NewArena()
	goal := puzzle.GoalState(2)

	rootID := a.Add(goal, NoParent, 0)
	assert.Equal(t, 1, a.Len())

	succ := goal.Successors()[0]
	childID := a.Add(succ, rootID, 1)

	id, ok := a.Find(succ)
	require.True(t, ok)
	assert.Equal(t, childID, id)

	other, _ := puzzle.NewState([]int{2, 1, 3, 4})
	_, ok = a.Find(other)
	assert.False(t, ok)

	path := a.Path(childID)
	require.Len(t, path, 2)
	assert.True(t, path[0].Equal(goal))
	assert.True(t, path[1].Equal(succ))
	assert.Equal(t, 1.0, a.Node(childID).PathCost())
}

func ExampleIDAStar() {
	start, _ := puzzle.NewState([]int{1, 2, 3, 4, 5, 6, 7, 9, 8})
	res, _ := IDAStar(context.Background(), start, puzzle.GoalState(3), nil)
	fmt.Println(res.Found, res.Terminal.PathCost())
	// Output: true 1
}
