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

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Construction errors. Both are fatal to the single construction call and
// carry no partial state.
var (
	// ErrInvalidShape reports a tile count that is not a perfect square of a
	// side length >= 2.
	ErrInvalidShape = errors.New("tile count is not a perfect square")

	// ErrInvalidBlank reports a blank sentinel (the maximum tile value) that
	// is absent or appears more than once.
	ErrInvalidBlank = errors.New("blank tile is missing or duplicated")
)

// State is one board configuration of a size x size sliding-tile puzzle.
//
// Tiles are stored row-major; the value at an index is the tile label at that
// board position. Labels are a permutation of 1..size*size and the maximum
// label denotes the blank. The blank position is cached at construction so
// successor generation does not rescan the board.
//
// A State is immutable after construction. Identity is value identity: two
// states are equal iff their tile sequences are equal element-wise, and Hash
// is a pure function of the tile sequence, so states deduplicate correctly as
// search-tree node keys. Parent linkage and path cost deliberately do not
// live here; they belong to the search node wrapper, so two nodes reaching
// the same board via different paths still collapse to one state.
//
// Thread Safety: Safe for concurrent use.
type State struct {
	size     int
	tiles    []int
	blankPos int
}

// NewState validates a raw tile list and constructs a State from it.
//
// Inputs:
//   - tiles: tile labels in row-major order; copied, the caller's slice is
//     never retained.
//
// Outputs:
//   - *State: The constructed state.
//   - error: ErrInvalidShape or ErrInvalidBlank on a malformed tile list.
func NewState(tiles []int) (*State, error) {
	size, ok := gridSize(len(tiles))
	if !ok || size < 2 {
		return nil, fmt.Errorf("%w: got %d tiles", ErrInvalidShape, len(tiles))
	}

	blank := size * size
	blankPos := -1
	for i, v := range tiles {
		if v != blank {
			continue
		}
		if blankPos != -1 {
			return nil, fmt.Errorf("%w: value %d occurs more than once", ErrInvalidBlank, blank)
		}
		blankPos = i
	}
	if blankPos == -1 {
		return nil, fmt.Errorf("%w: value %d not present", ErrInvalidBlank, blank)
	}

	owned := make([]int, len(tiles))
	copy(owned, tiles)
	return &State{size: size, tiles: owned, blankPos: blankPos}, nil
}

// GoalState returns the canonical goal configuration for the given side
// length: tiles 1,2,...,size*size in order, blank in the bottom-right corner.
// size must be at least 2.
func GoalState(size int) *State {
	tiles := make([]int, size*size)
	for i := range tiles {
		tiles[i] = i + 1
	}
	return &State{size: size, tiles: tiles, blankPos: size*size - 1}
}

// Size returns the side length of the board.
func (s *State) Size() int {
	return s.size
}

// Tiles returns a copy of the row-major tile sequence.
func (s *State) Tiles() []int {
	out := make([]int, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// BlankPos returns the linear index of the blank tile.
func (s *State) BlankPos() int {
	return s.blankPos
}

// Equal reports whether two states describe the same board. Comparison is
// element-wise over the tile sequences; a nil other is never equal.
func (s *State) Equal(other *State) bool {
	if other == nil || s.size != other.size {
		return false
	}
	for i, v := range s.tiles {
		if other.tiles[i] != v {
			return false
		}
	}
	return true
}

// Key returns the canonical byte encoding of the tile sequence as a string.
// Equal states always share a key and distinct states never do, so Key is
// safe as an exact map key.
func (s *State) Key() string {
	return string(s.encode())
}

// Hash returns a 64-bit content hash of the tile sequence. Equal states hash
// identically. Collisions are possible; callers deduplicating states must
// confirm with Equal (see the search package's arena index).
func (s *State) Hash() uint64 {
	return xxhash.Sum64(s.encode())
}

// encode packs the tile sequence into two little-endian bytes per tile,
// enough for boards up to side length 255.
func (s *State) encode() []byte {
	buf := make([]byte, 2*len(s.tiles))
	for i, v := range s.tiles {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	return buf
}

// String renders the board as a grid, one row per line, the blank shown as
// an underscore.
func (s *State) String() string {
	width := len(strconv.Itoa(s.size*s.size - 1))
	var b strings.Builder
	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			v := s.tiles[row*s.size+col]
			cell := "_"
			if v != s.size*s.size {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// gridSize returns the side length for a tile count, and whether the count
// is a perfect square.
func gridSize(n int) (int, bool) {
	size := 0
	for size*size < n {
		size++
	}
	return size, size*size == n
}
