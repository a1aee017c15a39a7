package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/gted"
	"gopkg.in/yaml.v3"
)

// Structure is an RNA secondary structure in dot-bracket notation together
// with its base sequence.
type Structure struct {
	Structure string `yaml:"structure"`
	Sequence  string `yaml:"sequence"`
}

// Config holds the settings of a gted invocation.
type Config struct {
	A             Structure `yaml:"a"`
	B             Structure `yaml:"b"`
	Strategy      string    `yaml:"strategy"`
	Seed          int64     `yaml:"seed"`
	RootPenalty   int       `yaml:"root_penalty"`
	Heavy         string    `yaml:"heavy"`
	HeavyFallback string    `yaml:"heavy_fallback"`
}

// DefaultConfig returns the settings used for everything neither a config
// file nor a flag sets.
func DefaultConfig() Config {
	return Config{
		Strategy:      "t1-left",
		Seed:          1,
		Heavy:         "random",
		HeavyFallback: gted.T1Left.String(),
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the engine related settings to gted.Options.
func (c Config) Options() (gted.Options, error) {
	opts := gted.DefaultOptions()
	opts.Seed = c.Seed
	opts.RootPenalty = c.RootPenalty
	switch c.Heavy {
	case "", "random":
		opts.Heavy = gted.HeavyRandom
	case "fixed":
		opts.Heavy = gted.HeavyFixed
	default:
		return opts, fmt.Errorf("unknown heavy policy %q, expected random or fixed", c.Heavy)
	}
	if c.HeavyFallback != "" {
		s, err := gted.ParseStrategy(c.HeavyFallback)
		if err != nil {
			return opts, err
		}
		opts.HeavyFallback = s
	}
	return opts, nil
}

// randomStrategy selects a random strategy table instead of a constant one.
const randomStrategy = "random"

// Strategies creates the strategy table for trees of the given sizes.
func (c Config) Strategies(rows, cols int) (*gted.StrategyTable, error) {
	if c.Strategy == randomStrategy {
		return gted.RandomStrategyTable(rows, cols, c.Seed), nil
	}
	s, err := gted.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	return gted.NewStrategyTable(rows, cols, s), nil
}
