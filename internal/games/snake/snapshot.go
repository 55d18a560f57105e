package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame        uint64
	Score        int
	SnakeLen     int
	HeadX        int
	HeadY        int
	Dir          core.Direction
	FruitX       int
	FruitY       int
	Cadence      int
	CollideWalls bool
	Cause        Outcome
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.sim.Status() == StatusGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	grid := g.sim.Grid()
	head := g.sim.Head()
	headX, headY := grid.ToCoords(head.Pos)
	fruitX, fruitY := grid.ToCoords(g.sim.Fruit())

	return Snapshot{
		Frame:        g.sim.Frame(),
		Score:        g.sim.Score(),
		SnakeLen:     g.sim.Len(),
		HeadX:        headX,
		HeadY:        headY,
		Dir:          head.Dir,
		FruitX:       fruitX,
		FruitY:       fruitY,
		Cadence:      g.sim.Cadence(),
		CollideWalls: g.collideWalls,
		Cause:        g.sim.Cause(),
		State:        state,
	}
}
