// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package puzzle

import "fmt"

// ManhattanDistance returns the sum, over all non-blank tile labels, of the
// row plus column displacement of that label between a and b. The blank
// contributes nothing. The result is admissible and consistent for the
// unit-cost sliding-tile metric and is symmetric in its arguments.
//
// Both states must share the same size; mismatched inputs are a programming
// error and panic. GoalDistance is the validating entry point for raw tile
// lists.
func ManhattanDistance(a, b *State) int {
	if a.size != b.size {
		panic(fmt.Sprintf("puzzle: manhattan distance across board sizes %d and %d", a.size, b.size))
	}

	blank := a.size * a.size
	pos := make([]int, blank+1)
	for i, v := range b.tiles {
		pos[v] = i
	}

	sum := 0
	for i, v := range a.tiles {
		if v == blank {
			continue
		}
		j := pos[v]
		dr := i/a.size - j/a.size
		if dr < 0 {
			dr = -dr
		}
		dc := i%a.size - j%a.size
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}
	return sum
}

// GoalDistance validates a raw tile list and returns its Manhattan distance
// to the canonical goal of the same size. Construction errors from NewState
// pass through unchanged.
func GoalDistance(tiles []int) (int, error) {
	s, err := NewState(tiles)
	if err != nil {
		return 0, err
	}
	return ManhattanDistance(s, GoalState(s.size)), nil
}
