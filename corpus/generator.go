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
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/AleutianAI/gemsearch/puzzle"
)

// ErrStalled reports that rejection sampling burned through the attempt
// budget without producing an acceptable task. It usually means MaxDistance
// is too tight for the board size.
var ErrStalled = errors.New("task generation exceeded the attempt budget")

// GeneratorConfig configures task generation.
type GeneratorConfig struct {
	// Size is the board side length. Default: 4 (the 15-puzzle).
	Size int `yaml:"size"`

	// MaxDistance is the acceptance bound: a sampled board is kept only if
	// its Manhattan distance to the goal is at most this value. Default: 12.
	MaxDistance int `yaml:"max_distance"`

	// MaxAttempts caps rejection-sampling attempts per task. 0 means
	// unbounded, matching the reference behavior; a positive value converts
	// a degenerate parameter combination into ErrStalled instead of an
	// endless loop.
	MaxAttempts int `yaml:"max_attempts"`

	// Seed seeds the random source. 0 draws a seed from the global source,
	// giving a different corpus each run.
	Seed uint64 `yaml:"seed"`
}

// DefaultGeneratorConfig returns the reference parameters.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Size:        4,
		MaxDistance: 12,
	}
}

// Generator produces randomized, filtered puzzle tasks and appends them to a
// corpus file. Acceptance filtering is probabilistic rejection sampling, so
// generation latency is unbounded in the worst case unless MaxAttempts is
// set; callers must tolerate variable latency for larger boards or tighter
// distance bounds.
//
// Thread Safety: Not safe for concurrent use; the random source is owned by
// the generator.
type Generator struct {
	cfg    GeneratorConfig
	rng    *rand.Rand
	logger *slog.Logger
}

// NewGenerator validates the configuration and builds a generator. Zero
// values fall back to DefaultGeneratorConfig; a nil logger falls back to
// slog.Default().
func NewGenerator(cfg GeneratorConfig, logger *slog.Logger) (*Generator, error) {
	def := DefaultGeneratorConfig()
	if cfg.Size == 0 {
		cfg.Size = def.Size
	}
	if cfg.MaxDistance == 0 {
		cfg.MaxDistance = def.MaxDistance
	}
	if cfg.Size < 2 {
		return nil, fmt.Errorf("board size must be at least 2, got %d", cfg.Size)
	}
	if cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("max distance must be non-negative, got %d", cfg.MaxDistance)
	}
	if cfg.MaxAttempts < 0 {
		return nil, fmt.Errorf("max attempts must be non-negative, got %d", cfg.MaxAttempts)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		logger: logger,
	}, nil
}

// Generate appends count accepted tasks to the file at path, creating it if
// needed. Existing content is never truncated. On error the file keeps the
// tasks already flushed; the failed task is not partially written.
func (g *Generator) Generate(ctx context.Context, path string, count int) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open task file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < count; i++ {
		tiles, dist, err := g.sample(ctx)
		if err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		if _, err := w.WriteString(FormatLine(tiles) + "\n"); err != nil {
			return fmt.Errorf("write task %d: %w", i, err)
		}
		g.logger.Info("task accepted",
			"task", i,
			"size", g.cfg.Size,
			"manhattan", dist)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush task file: %w", err)
	}
	return nil
}

// Acceptable reports whether a tile list qualifies as a task: solvable and
// within maxDistance of the canonical goal.
func Acceptable(tiles []int, maxDistance int) (bool, error) {
	if !puzzle.Solvable(tiles) {
		return false, nil
	}
	dist, err := puzzle.GoalDistance(tiles)
	if err != nil {
		return false, err
	}
	return dist <= maxDistance, nil
}

// sample draws uniform permutations until one passes the acceptance filter,
// honoring cancellation and the attempt budget.
func (g *Generator) sample(ctx context.Context) ([]int, int, error) {
	for attempts := 1; ; attempts++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if g.cfg.MaxAttempts > 0 && attempts > g.cfg.MaxAttempts {
			return nil, 0, fmt.Errorf("%w (%d attempts, size %d, max distance %d)",
				ErrStalled, g.cfg.MaxAttempts, g.cfg.Size, g.cfg.MaxDistance)
		}

		tiles := g.randomTiles()
		if !puzzle.Solvable(tiles) {
			continue
		}
		dist, err := puzzle.GoalDistance(tiles)
		if err != nil {
			return nil, 0, err
		}
		if dist > g.cfg.MaxDistance {
			continue
		}
		return tiles, dist, nil
	}
}

// randomTiles samples a uniformly random permutation of 1..size*size.
func (g *Generator) randomTiles() []int {
	perm := g.rng.Perm(g.cfg.Size * g.cfg.Size)
	tiles := make([]int, len(perm))
	for i, v := range perm {
		tiles[i] = v + 1
	}
	return tiles
}
