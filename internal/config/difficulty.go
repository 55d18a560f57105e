package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetCadenceOffset is added to the base cadence for each preset.
var presetCadenceOffset = map[DifficultyPreset]int{
	DifficultyEasy:   2,
	DifficultyNormal: 0,
	DifficultyHard:   -2,
	DifficultyFixed:  0,
}

// ParsePreset converts a flag value into a preset.
// An empty string selects DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetCadenceOffset[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Easy starts slower, hard starts faster, fixed never speeds up.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Speed.BaseCadence = max(cfg.Speed.MinCadence, cfg.Speed.BaseCadence+presetCadenceOffset[preset])
	if IsFixedPreset(preset) {
		cfg.Speed.Step = 0
	}
}
