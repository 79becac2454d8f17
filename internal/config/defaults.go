package config

import (
	_ "embed"
)

//go:embed defaults/gems.yaml
var defaultGemsYAML []byte

// DefaultGemsConfig returns the default gems configuration: the reference
// 8×8 board with six tile kinds and the animated half-second swap.
func DefaultGemsConfig() GemsConfig {
	return GemsConfig{
		Board: BoardConfig{
			Width:        8,
			Height:       8,
			Kinds:        6,
			MinNeighbors: 2,
		},
		Shuffle: ShuffleConfig{
			MaxPasses:   200,
			PickRetries: 32,
		},
		Swap: SwapConfig{
			Animated: true,
			Duration: 0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGemsYAML
}
