// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML file configuration mapped onto Options.

package embed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of an Embedding's settings.
//
//	dimensions: 3
//	equilibrium_distance: 1.0
//	learning_rate: 0.1
//	workers: 0        # 0 = one per CPU
//	seed: 42          # 0 = time-seeded
type Config struct {
	Dimensions          int     `yaml:"dimensions"`
	EquilibriumDistance float64 `yaml:"equilibrium_distance"`
	LearningRate        float64 `yaml:"learning_rate"`
	Workers             int     `yaml:"workers"`
	Seed                int64   `yaml:"seed"`
}

// DefaultConfig returns a 3-dimensional configuration with default parameters.
func DefaultConfig() Config {
	return Config{
		Dimensions:          3,
		EquilibriumDistance: DefaultEquilibriumDistance,
		LearningRate:        DefaultLearningRate,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the result.
// Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first invalid field.
// Returns ErrBadDimension or ErrBadParameter.
func (c Config) Validate() error {
	if c.Dimensions < 1 {
		return fmt.Errorf("dimensions=%d: %w", c.Dimensions, ErrBadDimension)
	}
	if !positiveFinite(c.EquilibriumDistance) {
		return fmt.Errorf("equilibrium_distance=%v: %w", c.EquilibriumDistance, ErrBadParameter)
	}
	if !positiveFinite(c.LearningRate) {
		return fmt.Errorf("learning_rate=%v: %w", c.LearningRate, ErrBadParameter)
	}

	return nil
}

// Options translates c into functional options. Call Validate first;
// invalid parameters make the returned options panic.
func (c Config) Options() []Option {
	opts := []Option{
		WithEquilibriumDistance(c.EquilibriumDistance),
		WithLearningRate(c.LearningRate),
		WithWorkers(c.Workers),
	}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}

	return opts
}

// NewFromConfig validates cfg and builds an Embedding from it.
// opts are applied after the configuration and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) (*Embedding, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewFromConfig: %w", err)
	}

	return New(cfg.Dimensions, append(cfg.Options(), opts...)...)
}
