package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Cells: 20,
		},
		Speed: SpeedConfig{
			BaseCadence: 5,
			Step:        1,
			Interval:    20,
			Cap:         60,
			MinCadence:  1,
			Tiers: []string{
				"Normal Speed",
				"Fast Speed",
				"Super-Sonic Speed",
				"BARRY ALLEN",
			},
		},
		Gameplay: GameplayConfig{
			CollideWalls: true,
			StartPaused:  true,
		},
		Display: DisplayConfig{
			Sizes: []int{80, 60, 40, 20},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
