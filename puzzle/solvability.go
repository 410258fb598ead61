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

// Solvable reports whether the canonical goal (1,2,...,n*n with the blank
// last) is reachable from the given configuration under legal one-tile
// moves. tiles must be a permutation of 1..n*n for a square n*n board; the
// maximum value is the blank.
//
// This is the standard 15-puzzle parity decision, not a heuristic:
//
//  1. Count inversions over the sequence with the blank removed.
//  2. Odd side length: solvable iff the inversion count is even.
//  3. Even side length: with the blank's row counted from the BOTTOM
//     (bottom row is 1), solvable iff the row parity being odd matches the
//     inversion count being even.
//
// The row-from-bottom convention is load-bearing: counting from the top
// flips the parity and silently inverts the answer for even boards.
func Solvable(tiles []int) bool {
	n := len(tiles)
	size, _ := gridSize(n)

	rest := make([]int, 0, n-1)
	blankIdx := 0
	for i, v := range tiles {
		if v == n {
			blankIdx = i
			continue
		}
		rest = append(rest, v)
	}

	inversions := 0
	for i := 0; i < len(rest); i++ {
		for j := i + 1; j < len(rest); j++ {
			if rest[j] < rest[i] {
				inversions++
			}
		}
	}

	if size%2 != 0 {
		return inversions%2 == 0
	}
	emptyRowFromBottom := size - blankIdx/size
	return (emptyRowFromBottom%2 != 0) == (inversions%2 == 0)
}
