package core

// CellIndex is the flattened address of a board cell: index = y*N + x.
type CellIndex int

// Grid describes a square board of N×N cells.
// It converts between flat cell indices and (x, y) coordinates.
type Grid struct {
	N int
}

// NewGrid creates a grid with n cells per edge.
func NewGrid(n int) Grid {
	return Grid{N: n}
}

// ToIndex returns the flat index for (x, y).
// Callers must only pass coordinates inside the board.
func (g Grid) ToIndex(x, y int) CellIndex {
	return CellIndex(y*g.N + x)
}

// ToCoords splits a flat index into (x, y).
func (g Grid) ToCoords(idx CellIndex) (int, int) {
	return int(idx) % g.N, int(idx) / g.N
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.N * g.N
}

// InBounds reports whether (x, y) lies on the board.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.N && y >= 0 && y < g.N
}

// Center returns the cell the snake starts on.
func (g Grid) Center() CellIndex {
	return g.ToIndex(g.N/2, g.N/2)
}
