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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/gemsearch/corpus"
)

// defaultConfigPath is consulted when --config is not given; a missing
// default file is fine, flags fully describe a run.
const defaultConfigPath = "config.yaml"

// Config is the optional file configuration. Flags override anything set
// here.
type Config struct {
	// Generator holds task-generation parameters.
	Generator corpus.GeneratorConfig `yaml:"generator"`

	// Evaluate holds batch-evaluation parameters.
	Evaluate EvaluateConfig `yaml:"evaluate"`
}

// EvaluateConfig selects and tunes the benchmarked algorithm.
type EvaluateConfig struct {
	// Algorithm is "idastar" or "astar".
	Algorithm string `yaml:"algorithm"`

	// Parallelism is the number of tasks evaluated concurrently.
	Parallelism int `yaml:"parallelism"`

	// MaxExpansions caps node expansions per task, 0 for unbounded.
	MaxExpansions int `yaml:"max_expansions"`

	// Weight scales the heuristic for weighted A*.
	Weight float64 `yaml:"weight"`
}

func defaultFileConfig() Config {
	return Config{
		Generator: corpus.DefaultGeneratorConfig(),
		Evaluate: EvaluateConfig{
			Algorithm:   "idastar",
			Parallelism: 1,
			Weight:      1.0,
		},
	}
}

// loadConfig reads the yaml config at path. When the path was not given
// explicitly, a missing file yields the defaults; an explicitly requested
// file must exist.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultFileConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
