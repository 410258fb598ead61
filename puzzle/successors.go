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

// moveOffsets is the canonical expansion order: right, down, left, up.
// Downstream algorithms rely on this order for deterministic tie-breaking,
// and the tests rely on it for reproducibility.
var moveOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Successors returns every state reachable from s by one legal blank move,
// in the canonical right/down/left/up order. Moves that would push the blank
// off the board are discarded, so the result holds at most four states (two
// for a corner blank, three for an edge blank).
//
// Each successor is a fresh value with its own tile sequence; s is never
// mutated, so a parent state stays valid for path reconstruction after its
// children are generated.
func (s *State) Successors() []*State {
	succs := make([]*State, 0, 4)
	row := s.blankPos / s.size
	col := s.blankPos % s.size

	for _, d := range moveOffsets {
		r := row + d[0]
		c := col + d[1]
		if r < 0 || r >= s.size || c < 0 || c >= s.size {
			continue
		}

		dst := r*s.size + c
		tiles := make([]int, len(s.tiles))
		copy(tiles, s.tiles)
		tiles[s.blankPos], tiles[dst] = tiles[dst], tiles[s.blankPos]
		succs = append(succs, &State{size: s.size, tiles: tiles, blankPos: dst})
	}
	return succs
}
