package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoSpaceAvailable is returned when every cell on the board is occupied.
var ErrNoSpaceAvailable = errors.New("snake: no free cell for fruit")

// RandomSource supplies uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// PlaceFruit picks a uniformly random cell that is not in occupied.
// Free cells are enumerated in index order so a seeded source is reproducible.
func PlaceFruit(grid core.Grid, occupied []core.CellIndex, rng RandomSource) (core.CellIndex, error) {
	taken := make(map[core.CellIndex]struct{}, len(occupied))
	for _, pos := range occupied {
		taken[pos] = struct{}{}
	}

	free := make([]core.CellIndex, 0, grid.Cells())
	for i := 0; i < grid.Cells(); i++ {
		idx := core.CellIndex(i)
		if _, ok := taken[idx]; !ok {
			free = append(free, idx)
		}
	}

	if len(free) == 0 {
		return 0, ErrNoSpaceAvailable
	}
	return free[rng.Intn(len(free))], nil
}
