// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package harness drives a pluggable search algorithm over a task corpus
// and collects aggregate statistics. The algorithm is a consumed capability:
// the harness only requires the SearchFunc contract and reads the path cost
// off the returned terminal node. A failing task is reported and skipped;
// it never aborts the batch.
package harness

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/gemsearch/corpus"
	"github.com/AleutianAI/gemsearch/puzzle"
)

// CostCarrier exposes the accumulated path cost g of a terminal search
// node.
type CostCarrier interface {
	PathCost() float64
}

// Outcome is what one search invocation must report back.
type Outcome struct {
	// Found reports whether a path to the goal was found.
	Found bool

	// Terminal is the last state of the path; read only when Found. A
	// Found outcome with a nil Terminal violates the contract and fails
	// the task.
	Terminal CostCarrier

	// Steps is the number of search steps the algorithm performed.
	Steps int

	// TreeSize is the number of nodes composing the search tree at the
	// final iteration of the algorithm.
	TreeSize int
}

// SearchFunc is the call contract every benchmarked algorithm satisfies.
// Algorithm-specific parameters (heuristic, weights, budgets) are bound by
// the caller, typically by closing over a configuration struct.
type SearchFunc func(ctx context.Context, start, goal *puzzle.State) (Outcome, error)

// Statistics holds one element per successfully evaluated task, aligned by
// task-evaluation order. Failed tasks contribute no element; unsuccessful
// but clean searches contribute a zero length with their real tree size and
// step count.
type Statistics struct {
	// Lengths is the path cost per task, 0.0 when no path was found.
	Lengths []float64

	// TreeSizes is the final search-tree size per task.
	TreeSizes []int

	// Steps is the number of search steps per task.
	Steps []int
}

// Map returns the statistics keyed "len", "st_size", and "steps", the
// layout downstream aggregation and plotting consume.
func (s *Statistics) Map() map[string][]float64 {
	out := map[string][]float64{
		"len":     append([]float64(nil), s.Lengths...),
		"st_size": make([]float64, len(s.TreeSizes)),
		"steps":   make([]float64, len(s.Steps)),
	}
	for i, v := range s.TreeSizes {
		out["st_size"][i] = float64(v)
	}
	for i, v := range s.Steps {
		out["steps"][i] = float64(v)
	}
	return out
}

// MeanLength returns the mean recorded path length, 0 for an empty batch.
func (s *Statistics) MeanLength() float64 { return meanFloat(s.Lengths) }

// MeanTreeSize returns the mean search-tree size, 0 for an empty batch.
func (s *Statistics) MeanTreeSize() float64 { return meanInt(s.TreeSizes) }

// MeanSteps returns the mean step count, 0 for an empty batch.
func (s *Statistics) MeanSteps() float64 { return meanInt(s.Steps) }

func meanFloat(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func meanInt(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// Config configures a batch evaluation.
type Config struct {
	// Parallelism is the number of tasks evaluated concurrently. Tasks are
	// independent, so fan-out only requires the search function to be safe
	// for concurrent invocation; each invocation itself stays
	// single-threaded. Default: 1 (sequential).
	Parallelism int

	// RunID tags every log record of this batch. Default: a fresh UUID.
	RunID string

	// Logger receives per-task failure reports. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a sequential configuration.
func DefaultConfig() *Config {
	return &Config{Parallelism: 1}
}

// Evaluate runs the search function over every task in the corpus file and
// gathers statistics.
//
// For each non-blank corpus line it builds the start state from the line
// and the goal state from the canonical ordering of the same size, then
// invokes the algorithm. A task that returns an error, panics, or carries a
// malformed board is logged with its task index and skipped; the remaining
// tasks still run. Only an unreadable corpus fails the batch.
//
// Inputs:
//   - ctx: Passed through to every search invocation.
//   - search: The algorithm under evaluation.
//   - corpusPath: Path to the task corpus file.
//   - cfg: Batch configuration. nil uses DefaultConfig().
//
// Outputs:
//   - *Statistics: One element per successfully evaluated task, in corpus
//     order regardless of Parallelism.
//   - error: Corpus read failures only.
func Evaluate(ctx context.Context, search SearchFunc, corpusPath string, cfg *Config) (*Statistics, error) {
	cfg = normalize(cfg)
	logger := cfg.Logger.With("run_id", cfg.RunID)

	tasks, err := corpus.ReadTasks(corpusPath)
	if err != nil {
		return nil, err
	}
	logger.Info("starting batch evaluation",
		"corpus", corpusPath,
		"tasks", len(tasks),
		"parallelism", cfg.Parallelism)

	results := make([]*taskResult, len(tasks))
	if cfg.Parallelism == 1 {
		for i, task := range tasks {
			results[i] = evaluateTask(ctx, search, task, logger)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(cfg.Parallelism)
		for i, task := range tasks {
			g.Go(func() error {
				results[i] = evaluateTask(ctx, search, task, logger)
				return nil
			})
		}
		// Task failures are recorded per task, never returned.
		_ = g.Wait()
	}

	stats := &Statistics{}
	for _, r := range results {
		if r == nil {
			continue
		}
		stats.Lengths = append(stats.Lengths, r.length)
		stats.TreeSizes = append(stats.TreeSizes, r.treeSize)
		stats.Steps = append(stats.Steps, r.steps)
	}
	logger.Info("batch evaluation done",
		"evaluated", len(stats.Lengths),
		"failed", len(tasks)-len(stats.Lengths))
	return stats, nil
}

type taskResult struct {
	length   float64
	treeSize int
	steps    int
}

// evaluateTask runs one task in isolation. Any error or panic is reported
// against the task index and yields a nil result.
func evaluateTask(ctx context.Context, search SearchFunc, task corpus.Task, logger *slog.Logger) (res *taskResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("task evaluation panicked",
				"task", task.Index,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
			res = nil
		}
	}()

	start, err := puzzle.NewState(task.Tiles)
	if err != nil {
		logger.Error("task state construction failed", "task", task.Index, "error", err)
		return nil
	}
	goal := puzzle.GoalState(start.Size())

	out, err := search(ctx, start, goal)
	if err != nil {
		logger.Error("task evaluation failed", "task", task.Index, "error", err)
		return nil
	}

	length := 0.0
	if out.Found {
		if out.Terminal == nil {
			logger.Error("task outcome violates the contract: found without a terminal state",
				"task", task.Index)
			return nil
		}
		length = out.Terminal.PathCost()
	}
	return &taskResult{length: length, treeSize: out.TreeSize, steps: out.Steps}
}

func normalize(cfg *Config) *Config {
	out := DefaultConfig()
	if cfg != nil {
		tmp := *cfg
		out = &tmp
	}
	if out.Parallelism < 1 {
		out.Parallelism = 1
	}
	if out.RunID == "" {
		out.RunID = uuid.NewString()
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}
