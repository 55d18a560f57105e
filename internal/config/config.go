// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Speed    SpeedConfig    `yaml:"speed"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Display  DisplayConfig  `yaml:"display"`
}

// BoardConfig defines the square playing field.
type BoardConfig struct {
	Cells int `yaml:"cells"` // Cells per edge (N)
}

// SpeedConfig defines how the movement cadence derives from the score.
// Cadence is measured in frames per move; lower is faster.
type SpeedConfig struct {
	BaseCadence int      `yaml:"base_cadence"`
	Step        int      `yaml:"step"`        // Cadence decrement per threshold crossed
	Interval    int      `yaml:"interval"`    // Score distance between thresholds
	Cap         int      `yaml:"cap"`         // Score past which the cadence stops changing
	MinCadence  int      `yaml:"min_cadence"` // Floor, never below 1
	Tiers       []string `yaml:"tiers"`       // Speed labels, one per threshold band
}

// GameplayConfig defines rule toggles.
type GameplayConfig struct {
	CollideWalls bool `yaml:"collide_walls"`
	StartPaused  bool `yaml:"start_paused"`
}

// DisplayConfig lists the supported board sizes in terminal columns, largest first.
type DisplayConfig struct {
	Sizes []int `yaml:"sizes"`
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Cells < 3:
		return fmt.Errorf("%w: board.cells must be at least 3, got %d", ErrInvalidConfig, c.Board.Cells)
	case c.Speed.BaseCadence < 1:
		return fmt.Errorf("%w: speed.base_cadence must be positive, got %d", ErrInvalidConfig, c.Speed.BaseCadence)
	case c.Speed.Step < 0:
		return fmt.Errorf("%w: speed.step must not be negative, got %d", ErrInvalidConfig, c.Speed.Step)
	case c.Speed.Interval < 1:
		return fmt.Errorf("%w: speed.interval must be positive, got %d", ErrInvalidConfig, c.Speed.Interval)
	case c.Speed.Cap < 0:
		return fmt.Errorf("%w: speed.cap must not be negative, got %d", ErrInvalidConfig, c.Speed.Cap)
	case c.Speed.MinCadence < 1:
		return fmt.Errorf("%w: speed.min_cadence must be positive, got %d", ErrInvalidConfig, c.Speed.MinCadence)
	case len(c.Display.Sizes) == 0:
		return fmt.Errorf("%w: display.sizes must not be empty", ErrInvalidConfig)
	}

	for i, size := range c.Display.Sizes {
		if size < 1 {
			return fmt.Errorf("%w: display.sizes[%d] must be positive, got %d", ErrInvalidConfig, i, size)
		}
		if i > 0 && size >= c.Display.Sizes[i-1] {
			return fmt.Errorf("%w: display.sizes must be strictly descending", ErrInvalidConfig)
		}
	}
	return nil
}
