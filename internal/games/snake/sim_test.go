package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestSim(n int, walls bool, rng RandomSource) *Sim {
	return NewSim(SimConfig{
		Grid:         core.NewGrid(n),
		Speed:        config.DefaultSnakeConfig().Speed,
		CollideWalls: walls,
	}, rng)
}

// seg builds a segment from board coordinates.
func seg(s *Sim, x, y int, d core.Direction) Segment {
	return Segment{Pos: s.grid.ToIndex(x, y), Dir: d}
}

func TestSimStartState(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})

	if s.Len() != 1 || s.Head().Pos != 12 || s.Head().Dir != core.South {
		t.Errorf("start body = %+v, expected one segment at 12 heading south", s.Body())
	}
	if s.Score() != 0 || s.Status() != StatusRunning || s.Cause() != OutcomeNone {
		t.Errorf("unexpected start state: score=%d status=%s cause=%s", s.Score(), s.Status(), s.Cause())
	}
	if s.Fruit() == s.Head().Pos {
		t.Error("fruit must not start on the snake")
	}
}

func TestSimGrowth(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})
	s.fruit = 17

	if out := s.Advance(); out != OutcomeAte {
		t.Fatalf("Advance() = %s, expected ate", out)
	}

	body := s.Body()
	if len(body) != 2 || body[0].Pos != 17 || body[1].Pos != 12 {
		t.Fatalf("body = %+v, expected [17 12]", body)
	}
	if body[1].Dir != core.South {
		t.Errorf("new tail direction = %s, expected south", body[1].Dir)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1", s.Score())
	}
	for _, b := range body {
		if b.Pos == s.Fruit() {
			t.Errorf("fruit relocated onto the snake at %d", s.Fruit())
		}
	}
}

func TestSimCadenceGate(t *testing.T) {
	s := newTestSim(5, false, zeroRand{})
	cadence := s.Cadence()

	if out := s.Advance(); out != OutcomeMoved {
		t.Fatalf("frame 0: Advance() = %s, expected moved", out)
	}
	moved := s.Head().Pos

	for i := 1; i < cadence; i++ {
		if out := s.Advance(); out != OutcomeNone {
			t.Fatalf("frame %d: Advance() = %s, expected none", i, out)
		}
		if s.Head().Pos != moved {
			t.Fatalf("frame %d: head moved on a gated frame", i)
		}
	}

	if out := s.Advance(); out != OutcomeMoved {
		t.Errorf("frame %d: Advance() = %s, expected moved", cadence, out)
	}
	if s.Frame() != uint64(cadence+1) {
		t.Errorf("Frame() = %d, expected %d", s.Frame(), cadence+1)
	}
}

func TestSimWallCollision(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})
	s.body = []Segment{seg(s, 0, 0, core.West)}
	s.fruit = 24

	if out := s.Advance(); out != OutcomeWallCollision {
		t.Fatalf("Advance() = %s, expected wall collision", out)
	}
	if s.Status() != StatusGameOver || s.Cause() != OutcomeWallCollision {
		t.Errorf("status=%s cause=%s, expected game over by wall", s.Status(), s.Cause())
	}
	if s.Head().Pos != 0 {
		t.Errorf("head should not move on a fatal frame, got %d", s.Head().Pos)
	}

	if out := s.Advance(); out != OutcomeOver {
		t.Errorf("Advance() after game over = %s, expected over", out)
	}
	if s.HandleInput(core.North) {
		t.Error("input should be rejected after game over")
	}
}

func TestSimWrap(t *testing.T) {
	s := newTestSim(5, false, zeroRand{})
	s.body = []Segment{seg(s, 0, 0, core.West)}
	s.fruit = 24

	if out := s.Advance(); out != OutcomeMoved {
		t.Fatalf("Advance() = %s, expected moved", out)
	}
	x, y := s.grid.ToCoords(s.Head().Pos)
	if x != 4 || y != 0 {
		t.Errorf("head at (%d, %d), expected (4, 0)", x, y)
	}
}

func TestSimToggleWallsMidGame(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})
	s.body = []Segment{seg(s, 0, 2, core.West)}
	s.fruit = 24
	s.SetCollideWalls(false)

	if out := s.Advance(); out != OutcomeMoved {
		t.Fatalf("Advance() = %s, expected moved after disabling walls", out)
	}
	if !s.grid.InBounds(s.grid.ToCoords(s.Head().Pos)) {
		t.Error("head should have wrapped onto the board")
	}
}

func TestSimSelfCollisionSegmentThree(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})
	// A closed square: the head turns south into segment 3.
	s.body = []Segment{
		seg(s, 1, 1, core.South),
		seg(s, 2, 1, core.West),
		seg(s, 2, 2, core.North),
		seg(s, 1, 2, core.East),
	}
	s.score = 3
	s.fruit = 24

	if out := s.Advance(); out != OutcomeSelfCollision {
		t.Fatalf("Advance() = %s, expected self collision", out)
	}
	if s.Status() != StatusGameOver {
		t.Error("self collision should end the game")
	}
	if s.Head().Pos != s.grid.ToIndex(1, 1) {
		t.Error("no mutation should happen on a fatal frame")
	}
}

func TestSimShortSnakeNeverSelfCollides(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})
	// Head moves onto segment 2's cell, which is exempt.
	s.body = []Segment{
		seg(s, 1, 1, core.South),
		seg(s, 2, 1, core.West),
		seg(s, 1, 2, core.North),
	}
	s.score = 2
	s.fruit = 24

	if out := s.Advance(); out != OutcomeMoved {
		t.Fatalf("Advance() = %s, expected moved", out)
	}
	if s.Status() != StatusRunning {
		t.Error("a snake of length 3 must not self-collide")
	}
}

func TestSimBodyFollow(t *testing.T) {
	s := newTestSim(6, true, zeroRand{})
	s.body = []Segment{
		seg(s, 2, 2, core.East),
		seg(s, 1, 2, core.East),
		seg(s, 1, 3, core.North),
	}
	s.score = 2
	s.fruit = 35

	if out := s.Advance(); out != OutcomeMoved {
		t.Fatalf("Advance() = %s, expected moved", out)
	}

	expected := []Segment{
		seg(s, 3, 2, core.East),
		seg(s, 2, 2, core.East),
		seg(s, 1, 2, core.East),
	}
	for i, want := range expected {
		if got := s.body[i]; got != want {
			t.Errorf("segment %d = %+v, expected %+v", i, got, want)
		}
	}
}

func TestSimTurnGuard(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})

	// Single segment heading south: only north is rejected.
	if s.HandleInput(core.North) {
		t.Error("reverse of head should be rejected")
	}
	if !s.HandleInput(core.East) {
		t.Error("perpendicular turn should be accepted")
	}
	if s.Head().Dir != core.East {
		t.Errorf("head dir = %s, expected east", s.Head().Dir)
	}

	// Neck still heading north after a turn east: south is its reverse.
	s.body = []Segment{
		seg(s, 2, 1, core.East),
		seg(s, 2, 2, core.North),
	}
	if s.HandleInput(core.West) {
		t.Error("reverse of head should be rejected")
	}
	if s.HandleInput(core.South) {
		t.Error("reverse of the second segment should be rejected")
	}
	if !s.HandleInput(core.North) {
		t.Error("north is legal for both head and neck")
	}
	if s.HandleInput(core.Direction(7)) {
		t.Error("invalid direction should be rejected")
	}
}

func TestSimNoSpaceAvailable(t *testing.T) {
	s := newTestSim(3, true, zeroRand{})
	// Serpentine covering 8 of 9 cells; the fruit sits on the last one.
	s.body = []Segment{
		seg(s, 1, 2, core.East),
		seg(s, 0, 2, core.South),
		seg(s, 0, 1, core.West),
		seg(s, 1, 1, core.West),
		seg(s, 2, 1, core.South),
		seg(s, 2, 0, core.East),
		seg(s, 1, 0, core.East),
		seg(s, 0, 0, core.East),
	}
	s.score = 7
	s.fruit = s.grid.ToIndex(2, 2)

	if out := s.Advance(); out != OutcomeNoSpace {
		t.Fatalf("Advance() = %s, expected no space", out)
	}
	if s.Status() != StatusGameOver || s.Cause() != OutcomeNoSpace {
		t.Errorf("status=%s cause=%s, expected game over with no space", s.Status(), s.Cause())
	}
	if s.Len() != s.Score()+1 || s.Len() != 9 {
		t.Errorf("len=%d score=%d, expected a full board and len == score+1", s.Len(), s.Score())
	}
}

func TestSimLengthInvariant(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := newTestSim(5, false, rng)
		steer := rand.New(rand.NewSource(seed * 31))

		for frame := 0; frame < 3000 && s.Status() == StatusRunning; frame++ {
			if steer.Intn(4) == 0 {
				s.HandleInput(core.Direction(steer.Intn(4)))
			}
			s.Advance()

			if s.Len() != s.Score()+1 {
				t.Fatalf("seed %d frame %d: len=%d score=%d", seed, frame, s.Len(), s.Score())
			}
			if s.Status() == StatusRunning {
				for _, b := range s.body {
					if b.Pos == s.Fruit() {
						t.Fatalf("seed %d frame %d: fruit on snake at %d", seed, frame, s.Fruit())
					}
				}
			}
		}
	}
}

func TestSimReset(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})
	s.fruit = 17
	s.Advance()
	s.body = []Segment{seg(s, 0, 0, core.West)}
	s.fruit = 24
	for s.Status() == StatusRunning {
		s.Advance()
	}

	s.Reset()
	if s.Len() != 1 || s.Score() != 0 || s.Status() != StatusRunning || s.Frame() != 0 {
		t.Errorf("Reset did not restore start state: len=%d score=%d status=%s frame=%d",
			s.Len(), s.Score(), s.Status(), s.Frame())
	}
	if s.Cadence() != config.DefaultSnakeConfig().Speed.BaseCadence {
		t.Errorf("cadence = %d, expected base cadence", s.Cadence())
	}
}

func TestSimBodyIsCopy(t *testing.T) {
	s := newTestSim(5, true, zeroRand{})
	body := s.Body()
	body[0].Pos = 0
	if s.Head().Pos == 0 {
		t.Error("Body() must return a copy")
	}
}
