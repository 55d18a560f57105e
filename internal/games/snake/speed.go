package snake

import "github.com/vovakirdan/tui-snake/internal/config"

// SpeedController derives the movement cadence from the score.
// Every Interval points up to Cap removes Step frames from the base cadence.
type SpeedController struct {
	base     int
	step     int
	interval int
	limit    int
	floor    int
	tiers    []string
}

// NewSpeedController builds a controller from configuration.
func NewSpeedController(cfg config.SpeedConfig) SpeedController {
	return SpeedController{
		base:     cfg.BaseCadence,
		step:     cfg.Step,
		interval: max(cfg.Interval, 1),
		limit:    max(cfg.Cap, 0),
		floor:    max(cfg.MinCadence, 1),
		tiers:    cfg.Tiers,
	}
}

// Tier returns how many thresholds the score has crossed, up to the cap.
func (s SpeedController) Tier(score int) int {
	return min(max(score, 0), s.limit) / s.interval
}

// Cadence returns the number of frames between moves. It is always at least 1.
func (s SpeedController) Cadence(score int) int {
	return max(s.base-s.step*s.Tier(score), s.floor)
}

// Label returns the speed tier name for display.
func (s SpeedController) Label(score int) string {
	if len(s.tiers) == 0 {
		return ""
	}
	return s.tiers[min(s.Tier(score), len(s.tiers)-1)]
}
