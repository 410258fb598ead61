// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search implements heuristic search over sliding-puzzle states:
// A* (optionally weighted) and IDA*, both single-threaded.
//
// Nodes live in an arena indexed by integer handle; a node refers to its
// parent by index rather than by pointer, which keeps path reconstruction
// cheap and lets the arena deduplicate states through a transposition-style
// index keyed by the 64-bit state hash. Expansion and heuristic logic are
// pluggable through the Expander and Estimator interfaces; the defaults wire
// the puzzle package's successor generator and Manhattan distance.
package search
