package terrain

import (
	"errors"

	"isocity/pkg/core"
)

// ErrGridTooSmall is returned when the grid cannot hold a river inside its
// one-cell border.
var ErrGridTooSmall = errors.New("terrain: grid too small for a river path")

const meanderChance = 0.3

// GenerateRiverPath walks a river from the middle column of row 0 down the
// grid, returning one column index per row. On each row after the first the
// river shifts one column left or right with probability 0.3, staying within
// [1, width-2].
func GenerateRiverPath(width, height int, seed uint32) ([]int, error) {
	if width < 3 || height < 1 {
		return nil, ErrGridTooSmall
	}
	rng := core.NewRNG(seed)
	river := make([]int, height)
	x := width / 2
	for y := range river {
		if y > 0 && rng.Float64() < meanderChance {
			if rng.Bool() {
				x--
			} else {
				x++
			}
			x = max(1, min(width-2, x))
		}
		river[y] = x
	}
	return river, nil
}
