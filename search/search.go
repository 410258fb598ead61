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
	"errors"

	"github.com/AleutianAI/gemsearch/puzzle"
)

// ErrMismatchedStates reports a start/goal pair of different board sizes.
var ErrMismatchedStates = errors.New("start and goal must share the same board size")

// Expander produces all states one move away from a state.
//
// Implementations must be pure: the input state is never mutated and every
// returned state is a fresh value.
type Expander interface {
	Expand(s *puzzle.State) []*puzzle.State
}

// ExpanderFunc adapts a function to the Expander interface.
type ExpanderFunc func(*puzzle.State) []*puzzle.State

// Expand calls f.
func (f ExpanderFunc) Expand(s *puzzle.State) []*puzzle.State {
	return f(s)
}

// Estimator computes an admissible distance estimate between two states of
// equal size.
type Estimator interface {
	Estimate(a, b *puzzle.State) int
}

// EstimatorFunc adapts a function to the Estimator interface.
type EstimatorFunc func(a, b *puzzle.State) int

// Estimate calls f.
func (f EstimatorFunc) Estimate(a, b *puzzle.State) int {
	return f(a, b)
}

// Config configures a search run. The zero value of any field falls back to
// the defaults, so partially filled configs are fine.
type Config struct {
	// Expander generates successors. Default: the puzzle package's blank
	// moves in canonical order.
	Expander Expander

	// Estimator guides the search. Default: Manhattan distance.
	Estimator Estimator

	// MaxExpansions caps the number of node expansions across the whole
	// run (all iterations for IDA*). 0 means unbounded. Hitting the cap
	// ends the search unsuccessfully; it is not an error.
	MaxExpansions int

	// Weight scales the heuristic for weighted A*. Values above 1 trade
	// optimality for speed. IDA* ignores it. Default: 1.
	Weight float64
}

// DefaultConfig returns the standard unit-cost configuration.
func DefaultConfig() *Config {
	return &Config{
		Expander:  ExpanderFunc((*puzzle.State).Successors),
		Estimator: EstimatorFunc(puzzle.ManhattanDistance),
		Weight:    1.0,
	}
}

// normalized fills unset fields from DefaultConfig without touching the
// caller's struct.
func (c *Config) normalized() *Config {
	def := DefaultConfig()
	if c == nil {
		return def
	}
	out := *c
	if out.Expander == nil {
		out.Expander = def.Expander
	}
	if out.Estimator == nil {
		out.Estimator = def.Estimator
	}
	if out.Weight == 0 {
		out.Weight = def.Weight
	}
	return &out
}

// Result is the outcome of one search invocation.
type Result struct {
	// Found reports whether a path to the goal was found.
	Found bool

	// Terminal is the goal node when Found, nil otherwise. Its G is the
	// path cost and its Arena handle chain holds the path.
	Terminal *Node

	// Steps is the number of node expansions performed.
	Steps int

	// TreeSize is the number of nodes in the search tree when the
	// algorithm stopped (for IDA*, the tree of the final iteration).
	TreeSize int

	// Arena holds the search tree backing Terminal, for path
	// reconstruction.
	Arena *Arena

	// terminalID is Terminal's arena handle.
	terminalID int
}

// Path returns the root-to-goal state sequence, or nil when no path was
// found.
func (r *Result) Path() []*puzzle.State {
	if !r.Found || r.Arena == nil {
		return nil
	}
	return r.Arena.Path(r.terminalID)
}

// validatePair rejects nil or size-mismatched start/goal states.
func validatePair(start, goal *puzzle.State) error {
	if start == nil || goal == nil {
		return errors.New("start and goal must be non-nil")
	}
	if start.Size() != goal.Size() {
		return ErrMismatchedStates
	}
	return nil
}
