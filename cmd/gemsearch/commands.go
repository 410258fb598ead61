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

	"github.com/AleutianAI/gemsearch/pkg/logging"
)

var (
	config      Config
	configPath  string
	verboseLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "gemsearch",
	Short: "Sliding-puzzle task corpora and search-algorithm benchmarks",
	Long: `gemsearch models the Gem Puzzle (N-puzzle) as a search problem.

It generates randomized, solvability-filtered task corpora and drives
search algorithms (IDA*, A*) over them, collecting path-length, tree-size,
and step statistics per task.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.LevelInfo
		if verboseLogs {
			level = logging.LevelDebug
		}
		slog.SetDefault(logging.New(logging.Config{Level: level, Service: "gemsearch"}))

		explicit := cmd.Flags().Changed("config")
		cfg, err := loadConfig(configPath, explicit)
		if err != nil {
			return err
		}
		config = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath,
		"path to the yaml configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verboseLogs, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(evaluateCmd)
}
