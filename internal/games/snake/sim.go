package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// SelfCollisionExemptSegments is the number of leading segments the head is
// never tested against. With the turn guard in place the head cannot reach
// segments 0-2 in a single move, so only segments from index 3 onward count.
const SelfCollisionExemptSegments = 3

// Status is the simulation state.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// Outcome reports what a single frame did.
type Outcome int

const (
	OutcomeNone          Outcome = iota // Frame skipped by the cadence gate
	OutcomeMoved                        // Snake advanced one cell
	OutcomeAte                          // Snake advanced (or sat) on the fruit and grew
	OutcomeWallCollision                // Head left the board with walls enabled
	OutcomeSelfCollision                // Head ran into the body
	OutcomeNoSpace                      // Snake grew to fill the board; no cell left for fruit
	OutcomeOver                         // Game had already ended
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWallCollision:
		return "wall_collision"
	case OutcomeSelfCollision:
		return "self_collision"
	case OutcomeNoSpace:
		return "no_space"
	case OutcomeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == OutcomeWallCollision || o == OutcomeSelfCollision || o == OutcomeNoSpace
}

// Segment is one link of the snake.
// Dir is the direction the segment was moving when it last advanced.
type Segment struct {
	Pos core.CellIndex
	Dir core.Direction
}

// SimConfig configures a simulation.
type SimConfig struct {
	Grid         core.Grid
	Speed        config.SpeedConfig
	CollideWalls bool
}

// Sim is the snake state machine. It owns the body, fruit and score; all
// mutation goes through HandleInput and Advance, so a frame is never
// observed half-applied.
type Sim struct {
	grid         core.Grid
	speed        SpeedController
	collideWalls bool
	rng          RandomSource

	body   []Segment // Head at index 0
	fruit  core.CellIndex
	score  int
	frame  uint64
	status Status
	cause  Outcome
}

// NewSim creates a simulation and resets it to the starting position.
func NewSim(cfg SimConfig, rng RandomSource) *Sim {
	s := &Sim{
		grid:         cfg.Grid,
		speed:        NewSpeedController(cfg.Speed),
		collideWalls: cfg.CollideWalls,
		rng:          rng,
	}
	s.Reset()
	return s
}

// Reset starts a new game: a one-segment snake on the center cell heading
// south, score zero and a fresh fruit.
func (s *Sim) Reset() {
	s.body = []Segment{{Pos: s.grid.Center(), Dir: core.South}}
	s.score = 0
	s.frame = 0
	s.status = StatusRunning
	s.cause = OutcomeNone

	fruit, err := PlaceFruit(s.grid, s.positions(), s.rng)
	if err != nil {
		// Only a 1-cell board has no room; treat it as already full.
		s.end(OutcomeNoSpace)
		return
	}
	s.fruit = fruit
}

// HandleInput requests a new head direction. It returns false when the
// request is rejected: the game is over, or dir reverses the head or the
// segment behind it.
func (s *Sim) HandleInput(dir core.Direction) bool {
	if s.status != StatusRunning || !dir.Valid() {
		return false
	}

	leading := make([]core.Direction, 0, core.TurnGuardDepth)
	for i := 0; i < len(s.body) && i < core.TurnGuardDepth; i++ {
		leading = append(leading, s.body[i].Dir)
	}
	if !core.CanTurn(dir, leading...) {
		return false
	}

	s.body[0].Dir = dir
	return true
}

// Advance runs one frame. Movement happens only on frames selected by the
// cadence; the fruit check runs every frame.
func (s *Sim) Advance() Outcome {
	if s.status != StatusRunning {
		return OutcomeOver
	}

	outcome := OutcomeNone
	if s.frame%uint64(s.Cadence()) == 0 {
		outcome = s.move()
		if outcome.Terminal() {
			return outcome
		}
	}
	s.frame++

	if s.body[0].Pos == s.fruit {
		return s.eat()
	}
	return outcome
}

// move advances the head and drags the body along behind it.
func (s *Sim) move() Outcome {
	head := s.body[0]
	next := s.grid.Resolve(head.Dir, head.Pos, s.collideWalls, false)

	if s.collideWalls && !next.InBounds(s.grid) {
		s.end(OutcomeWallCollision)
		return OutcomeWallCollision
	}

	for i := SelfCollisionExemptSegments; i < len(s.body); i++ {
		if s.body[i].Pos == next.Index {
			s.end(OutcomeSelfCollision)
			return OutcomeSelfCollision
		}
	}

	// Each segment takes the place and heading the one ahead of it had.
	prev := head
	s.body[0].Pos = next.Index
	for i := 1; i < len(s.body); i++ {
		prev, s.body[i] = s.body[i], prev
	}
	return OutcomeMoved
}

// eat scores the fruit, appends a segment behind the tail and places a new fruit.
func (s *Sim) eat() Outcome {
	s.score++

	tail := s.body[len(s.body)-1]
	grown := s.grid.Resolve(tail.Dir, tail.Pos, s.collideWalls, true)
	s.body = append(s.body, Segment{Pos: grown.Index, Dir: tail.Dir})

	fruit, err := PlaceFruit(s.grid, s.positions(), s.rng)
	if errors.Is(err, ErrNoSpaceAvailable) {
		s.end(OutcomeNoSpace)
		return OutcomeNoSpace
	}
	s.fruit = fruit
	return OutcomeAte
}

func (s *Sim) end(cause Outcome) {
	s.status = StatusGameOver
	s.cause = cause
}

func (s *Sim) positions() []core.CellIndex {
	out := make([]core.CellIndex, len(s.body))
	for i, seg := range s.body {
		out[i] = seg.Pos
	}
	return out
}

// Body returns a copy of the segments, head first.
func (s *Sim) Body() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the leading segment.
func (s *Sim) Head() Segment { return s.body[0] }

// Len returns the number of segments.
func (s *Sim) Len() int { return len(s.body) }

// Fruit returns the fruit cell.
func (s *Sim) Fruit() core.CellIndex { return s.fruit }

// Score returns the number of fruit eaten since the last reset.
func (s *Sim) Score() int { return s.score }

// Frame returns the number of frames that have passed since the last reset.
func (s *Sim) Frame() uint64 { return s.frame }

// Status returns whether the game is running or over.
func (s *Sim) Status() Status { return s.status }

// Cause returns the outcome that ended the game, or OutcomeNone while running.
func (s *Sim) Cause() Outcome { return s.cause }

// Cadence returns the current frames-per-move.
func (s *Sim) Cadence() int { return s.speed.Cadence(s.score) }

// SpeedTier returns the current speed label.
func (s *Sim) SpeedTier() string { return s.speed.Label(s.score) }

// Grid returns the board.
func (s *Sim) Grid() core.Grid { return s.grid }

// CollideWalls reports whether leaving the board ends the game.
func (s *Sim) CollideWalls() bool { return s.collideWalls }

// SetCollideWalls switches between solid walls and wrap-around.
func (s *Sim) SetCollideWalls(on bool) { s.collideWalls = on }
