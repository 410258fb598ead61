// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/gemsearch/corpus"
)

var generateFlags struct {
	out         string
	count       int
	size        int
	maxDistance int
	maxAttempts int
	seed        uint64
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random solvable tasks and append them to a corpus file",
	Long: `generate rejection-samples uniform tile permutations, keeping only
boards that are solvable and within the Manhattan-distance bound of the
goal. Accepted tasks are appended to the output file, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Generator
		if cmd.Flags().Changed("size") {
			cfg.Size = generateFlags.size
		}
		if cmd.Flags().Changed("max-distance") {
			cfg.MaxDistance = generateFlags.maxDistance
		}
		if cmd.Flags().Changed("max-attempts") {
			cfg.MaxAttempts = generateFlags.maxAttempts
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = generateFlags.seed
		}

		gen, err := corpus.NewGenerator(cfg, slog.Default())
		if err != nil {
			return err
		}
		return gen.Generate(cmd.Context(), generateFlags.out, generateFlags.count)
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.out, "out", "data/tasks.txt", "corpus file to append to")
	f.IntVar(&generateFlags.count, "count", 10, "number of tasks to generate")
	f.IntVar(&generateFlags.size, "size", 0, "board side length (default from config)")
	f.IntVar(&generateFlags.maxDistance, "max-distance", 0, "acceptance bound on goal distance")
	f.IntVar(&generateFlags.maxAttempts, "max-attempts", 0, "sampling attempts per task, 0 for unbounded")
	f.Uint64Var(&generateFlags.seed, "seed", 0, "random seed, 0 for a fresh corpus each run")
}
