// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package puzzle models the sliding-tile puzzle ("Gem Puzzle", N-puzzle) as a
// search problem.
//
// Architecture:
//
//	The package is the innermost layer of the search stack. It provides the
//	board state abstraction and the pure operations every search algorithm
//	is built from:
//
//	- State: canonical, immutable board configuration with value identity
//	  (hash/equality are pure functions of the tile sequence), suitable as a
//	  search-tree node key.
//	- Successors: the state-transition function, producing all boards one
//	  blank move away.
//	- Solvable: an exact parity-based reachability decision, no search.
//	- ManhattanDistance: the admissible, consistent heuristic for the
//	  unit-cost sliding-tile metric.
//
//	Everything here is side-effect free and safe for concurrent use; search
//	algorithms, corpus generation, and batch evaluation live in sibling
//	packages and consume these operations.
package puzzle
