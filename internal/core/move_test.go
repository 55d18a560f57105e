package core

import "testing"

func TestResolveAdvance(t *testing.T) {
	g := NewGrid(5)
	start := g.ToIndex(2, 2)

	tests := []struct {
		dir  Direction
		x, y int
	}{
		{South, 2, 3},
		{West, 1, 2},
		{North, 2, 1},
		{East, 3, 2},
	}

	for _, tc := range tests {
		m := g.Resolve(tc.dir, start, true, false)
		if m.X != tc.x || m.Y != tc.y || m.Index != g.ToIndex(tc.x, tc.y) {
			t.Errorf("Resolve(%v) = %+v, expected (%d, %d)", tc.dir, m, tc.x, tc.y)
		}
	}
}

func TestResolveNewSegmentTrails(t *testing.T) {
	g := NewGrid(5)
	start := g.ToIndex(2, 2)

	for _, d := range allDirections {
		forward := g.Resolve(d, start, true, false)
		trailing := g.Resolve(d, start, true, true)
		back := g.Resolve(d.Opposite(), start, true, false)

		if trailing.Index == forward.Index {
			t.Errorf("%v: new segment should not land in the direction of travel", d)
		}
		if trailing != back {
			t.Errorf("%v: new segment = %+v, expected %+v", d, trailing, back)
		}
	}
}

func TestResolveWallCollision(t *testing.T) {
	g := NewGrid(5)

	m := g.Resolve(West, g.ToIndex(0, 0), true, false)
	if m.X != -1 || m.Y != 0 {
		t.Errorf("expected raw x=-1, got %+v", m)
	}
	if m.InBounds(g) {
		t.Error("move off the west edge should be out of bounds")
	}

	m = g.Resolve(South, g.ToIndex(3, 4), true, false)
	if m.Y != 5 || m.InBounds(g) {
		t.Errorf("expected raw y=5 out of bounds, got %+v", m)
	}
}

func TestResolveWrap(t *testing.T) {
	g := NewGrid(5)

	tests := []struct {
		name   string
		dir    Direction
		x, y   int
		ex, ey int
	}{
		{"west edge", West, 0, 0, 4, 0},
		{"east edge", East, 4, 2, 0, 2},
		{"north edge", North, 3, 0, 3, 4},
		{"south edge", South, 1, 4, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := g.Resolve(tc.dir, g.ToIndex(tc.x, tc.y), false, false)
			if m.X != tc.ex || m.Y != tc.ey || m.Index != g.ToIndex(tc.ex, tc.ey) {
				t.Errorf("got %+v, expected (%d, %d)", m, tc.ex, tc.ey)
			}
		})
	}
}

func TestResolveNewSegmentNeverWraps(t *testing.T) {
	g := NewGrid(5)

	// Tail at the west edge heading east: the new segment sits off the board.
	m := g.Resolve(East, g.ToIndex(0, 2), false, true)
	if m.X != -1 || m.Y != 2 {
		t.Errorf("new segment should not wrap, got %+v", m)
	}
}

func TestResolveInvertible(t *testing.T) {
	g := NewGrid(5)

	for _, d := range allDirections {
		for p := 0; p < g.Cells(); p++ {
			pos := CellIndex(p)
			there := g.Resolve(d.Opposite(), pos, false, false)
			back := g.Resolve(d, there.Index, false, false)
			if back.Index != pos {
				t.Errorf("%v from %d: round trip landed on %d", d, pos, back.Index)
			}
		}
	}
}

func TestResolveFullLapReturns(t *testing.T) {
	g := NewGrid(5)
	start := g.ToIndex(1, 3)

	for _, d := range allDirections {
		pos := start
		for i := 0; i < g.N; i++ {
			pos = g.Resolve(d, pos, false, false).Index
		}
		if pos != start {
			t.Errorf("%v: after %d steps expected %d, got %d", d, g.N, start, pos)
		}
	}
}
