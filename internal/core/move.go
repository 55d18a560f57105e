package core

// Move is the result of resolving one step.
// X and Y are the raw coordinates, which may lie off the board when walls
// are solid or when synthesizing a new tail segment.
type Move struct {
	Index CellIndex
	X, Y  int
}

// InBounds reports whether the move landed on the board.
func (m Move) InBounds(g Grid) bool {
	return g.InBounds(m.X, m.Y)
}

// Resolve computes the position one step away from pos in direction dir.
//
// For an advancing segment (isNewSegment false) the step goes in dir. For a
// segment being appended behind the tail the step is reversed, so the new
// segment trails the tail instead of landing in front of it.
//
// Coordinates wrap around the board only for advancing segments with walls
// disabled. Otherwise they are returned as-is and the caller decides what an
// off-board position means.
func (g Grid) Resolve(dir Direction, pos CellIndex, collideWalls, isNewSegment bool) Move {
	x, y := g.ToCoords(pos)
	dx, dy := dir.Delta()
	if isNewSegment {
		dx, dy = -dx, -dy
	}
	x += dx
	y += dy

	if !isNewSegment && !collideWalls {
		x = wrap(x, g.N)
		y = wrap(y, g.N)
	}

	return Move{Index: g.ToIndex(x, y), X: x, Y: y}
}

// wrap folds v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
