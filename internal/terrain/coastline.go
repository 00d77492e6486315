package terrain

import (
	"math"

	"isocity/pkg/core"
)

// DefaultRoughness is the number of midpoint-displacement passes.
const DefaultRoughness = 7

// Coastline builds a coastline profile by midpoint displacement. It starts
// from two control points at a quarter and three quarters of width and, on
// pass i, inserts between every adjacent pair a midpoint displaced by up to
// width/(2.5*(i+1)) in either direction. After k passes the profile holds
// 2^k+1 values.
func Coastline(rng *core.RNG, width, roughness int) []int {
	points := []int{
		int(math.Floor(float64(width) * 0.25)),
		int(math.Floor(float64(width) * 0.75)),
	}
	for i := 0; i < roughness; i++ {
		next := make([]int, 0, 2*len(points)-1)
		for j := 0; j < len(points)-1; j++ {
			mid := floorHalf(points[j] + points[j+1])
			mid += int(math.Floor((rng.Float64() - 0.5) * float64(width) / (2.5 * float64(i+1))))
			next = append(next, points[j], mid)
		}
		next = append(next, points[len(points)-1])
		points = next
	}
	return points
}

// GenerateCoastline runs Coastline on a generator seeded just for this call,
// so repeated calls with the same arguments return the same profile.
func GenerateCoastline(seed uint32, width, roughness int) []int {
	return Coastline(core.NewRNG(seed), width, roughness)
}

func floorHalf(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}
