// Package config provides YAML-based configuration loading and board presets
// for the gemswap platform.
package config

import (
	"fmt"

	"github.com/gemswap/gemswap/internal/match3"
)

// GemsConfig contains all configuration for the gems board game.
type GemsConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Swap    SwapConfig    `yaml:"swap"`
}

// BoardConfig defines the board geometry and tile set.
type BoardConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Kinds        int `yaml:"kinds"`
	MinNeighbors int `yaml:"min_neighbors"`
}

// ShuffleConfig bounds the match-removal shuffle.
type ShuffleConfig struct {
	MaxPasses   int `yaml:"max_passes"`
	PickRetries int `yaml:"pick_retries"`
}

// SwapConfig controls the swap transition.
type SwapConfig struct {
	Animated bool    `yaml:"animated"`
	Duration float64 `yaml:"duration"` // seconds, animated mode only
}

// Params converts the board and shuffle sections into engine parameters.
func (c GemsConfig) Params() match3.Params {
	return match3.Params{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		Kinds:        c.Board.Kinds,
		MinNeighbors: c.Board.MinNeighbors,
		PickRetries:  c.Shuffle.PickRetries,
	}
}

// Validate rejects configurations the engine would refuse, so bad configs
// fail at load time rather than at board construction.
func (c GemsConfig) Validate() error {
	if c.Board.MinNeighbors <= 0 {
		return fmt.Errorf("config: min_neighbors must be positive, got %d", c.Board.MinNeighbors)
	}
	run := c.Board.MinNeighbors + 1
	if c.Board.Width < run || c.Board.Height < run {
		return fmt.Errorf("config: board %dx%d is smaller than the %d-tile run length",
			c.Board.Width, c.Board.Height, run)
	}
	if c.Board.Kinds < 2 {
		return fmt.Errorf("config: kinds must be at least 2, got %d", c.Board.Kinds)
	}
	if c.Swap.Animated && c.Swap.Duration <= 0 {
		return fmt.Errorf("config: animated swap needs a positive duration, got %v", c.Swap.Duration)
	}
	return nil
}

// BoardPreset represents a named board size preset.
type BoardPreset string

const (
	PresetSmall   BoardPreset = "small"
	PresetClassic BoardPreset = "classic"
	PresetLarge   BoardPreset = "large"
)

// ApplyGemsPreset modifies the config based on a board preset.
// Unknown presets leave the config untouched.
func ApplyGemsPreset(cfg *GemsConfig, preset BoardPreset) {
	switch preset {
	case PresetSmall:
		cfg.Board.Width = 6
		cfg.Board.Height = 6
		cfg.Board.Kinds = 5
	case PresetClassic:
		cfg.Board.Width = 8
		cfg.Board.Height = 8
		cfg.Board.Kinds = 6
	case PresetLarge:
		cfg.Board.Width = 10
		cfg.Board.Height = 10
		cfg.Board.Kinds = 7
	}
}
