// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/gemsearch/puzzle"
)

func TestNewGenerator_Validation(t *testing.T) {
	_, err := NewGenerator(GeneratorConfig{Size: 1}, nil)
	assert.Error(t, err)

	_, err = NewGenerator(GeneratorConfig{MaxDistance: -1}, nil)
	assert.Error(t, err)

	_, err = NewGenerator(GeneratorConfig{MaxAttempts: -1}, nil)
	assert.Error(t, err)

	g, err := NewGenerator(GeneratorConfig{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.cfg.Size)
	assert.Equal(t, 12, g.cfg.MaxDistance)
}

func TestGenerate_TasksAreAcceptable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	g, err := NewGenerator(GeneratorConfig{Size: 3, MaxDistance: 8, Seed: 42}, nil)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background(), path, 5))

	tasks, err := ReadTasks(path)
	require.NoError(t, err)
	require.Len(t, tasks, 5)

	for _, task := range tasks {
		require.Len(t, task.Tiles, 9)
		assert.True(t, puzzle.Solvable(task.Tiles), "task %d not solvable", task.Index)

		dist, err := puzzle.GoalDistance(task.Tiles)
		require.NoError(t, err)
		assert.LessOrEqual(t, dist, 8, "task %d beyond the distance bound", task.Index)
	}
}

func TestGenerate_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")

	for i := 0; i < 2; i++ {
		g, err := NewGenerator(GeneratorConfig{Size: 3, Seed: uint64(i + 1)}, nil)
		require.NoError(t, err)
		require.NoError(t, g.Generate(context.Background(), path, 3))
	}

	tasks, err := ReadTasks(path)
	require.NoError(t, err)
	assert.Len(t, tasks, 6, "second run must append, not overwrite")
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	dir := t.TempDir()
	var contents []string
	for _, name := range []string{"a.txt", "b.txt"} {
		path := filepath.Join(dir, name)
		g, err := NewGenerator(GeneratorConfig{Size: 3, Seed: 99}, nil)
		require.NoError(t, err)
		require.NoError(t, g.Generate(context.Background(), path, 4))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		contents = append(contents, string(raw))
	}
	assert.Equal(t, contents[0], contents[1])
}

func TestGenerate_Stalls(t *testing.T) {
	// Distance bound 1 admits only two boards out of 9!; a handful of
	// attempts cannot hit one with this seed.
	g, err := NewGenerator(GeneratorConfig{Size: 3, MaxDistance: 1, MaxAttempts: 5, Seed: 1}, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tasks.txt")
	err = g.Generate(context.Background(), path, 1)
	require.ErrorIs(t, err, ErrStalled)
}

func TestGenerate_Cancelled(t *testing.T) {
	g, err := NewGenerator(GeneratorConfig{Size: 3, Seed: 1}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "tasks.txt")
	err = g.Generate(ctx, path, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAcceptable(t *testing.T) {
	ok, err := Acceptable([]int{1, 2, 3, 4, 5, 6, 7, 9, 8}, 12)
	require.NoError(t, err)
	assert.True(t, ok)

	// Unsolvable: single transposition.
	ok, err = Acceptable([]int{1, 2, 3, 4, 5, 6, 8, 7, 9}, 12)
	require.NoError(t, err)
	assert.False(t, ok)

	// Solvable but beyond the bound.
	ok, err = Acceptable([]int{1, 2, 3, 4, 5, 6, 7, 9, 8}, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Acceptable([]int{1, 2, 3}, 12)
	assert.Error(t, err)
}
