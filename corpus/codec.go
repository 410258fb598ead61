// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package corpus reads, writes, and generates task corpora for the sliding
// puzzle: plain text files, one task per line, each line the space-separated
// tile labels of a start configuration. The board size is inferred per line
// from the number of labels; there is no header and no size field.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Task is one corpus record. Index is the zero-based line number in the
// source file; blank lines consume an index but produce no Task, so indices
// in log output line up with the file.
type Task struct {
	Index int
	Tiles []int
}

// ParseLine decodes one corpus line into a tile list. A blank or
// whitespace-only line decodes to a nil list with no error.
func ParseLine(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	tiles := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad tile value %q: %w", f, err)
		}
		tiles[i] = v
	}
	return tiles, nil
}

// FormatLine encodes a tile list as one corpus line, without the trailing
// newline. ParseLine(FormatLine(tiles)) yields tiles back exactly.
func FormatLine(tiles []int) string {
	fields := make([]string, len(tiles))
	for i, v := range tiles {
		fields[i] = strconv.Itoa(v)
	}
	return strings.Join(fields, " ")
}

// ReadTasks loads every task from the corpus file at path, in file order.
// Blank lines are skipped; a malformed line fails the whole read with its
// line number.
func ReadTasks(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	var tasks []Task
	scanner := bufio.NewScanner(f)
	for line := 0; scanner.Scan(); line++ {
		tiles, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("corpus line %d: %w", line, err)
		}
		if tiles == nil {
			continue
		}
		tasks = append(tasks, Task{Index: line, Tiles: tiles})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return tasks, nil
}
