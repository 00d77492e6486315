package terrain

import (
	"slices"
	"testing"

	"isocity/internal/tiles"
	"isocity/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoastlineReferenceProfile(t *testing.T) {
	profile := GenerateCoastline(DefaultCoastSeed, 75, 7)
	require.Len(t, profile, 129)
	assert.Equal(t, []int{18, 16, 18, 18, 16, 15, 17, 19, 19, 17}, profile[:10])
	assert.Equal(t, 18, profile[0], "left control point is floor(0.25*75)")
	assert.Equal(t, 56, profile[128], "right control point is floor(0.75*75)")
}

func TestCoastlineDeterministic(t *testing.T) {
	first := GenerateCoastline(DefaultCoastSeed, 75, 7)
	for i := 0; i < 3; i++ {
		again := GenerateCoastline(DefaultCoastSeed, 75, 7)
		if !slices.Equal(first, again) {
			t.Fatalf("run %d produced a different profile", i)
		}
	}
}

func TestCoastlineSharedStreamContinues(t *testing.T) {
	rng := core.NewRNG(DefaultCoastSeed)
	first := Coastline(rng, 75, 7)
	second := Coastline(rng, 75, 7)
	assert.Equal(t, GenerateCoastline(DefaultCoastSeed, 75, 7), first)
	assert.NotEqual(t, first, second, "a shared generator keeps consuming its stream")
}

func TestCoastlineLength(t *testing.T) {
	for k := 0; k <= 10; k++ {
		got := len(GenerateCoastline(99, 40, k))
		want := 1<<k + 1
		if got != want {
			t.Fatalf("roughness %d: len %d, want %d", k, got, want)
		}
	}
}

func TestRiverPathReference(t *testing.T) {
	river, err := GenerateRiverPath(75, 75, DefaultRiverSeed)
	require.NoError(t, err)
	require.Len(t, river, 75)
	assert.Equal(t, 37, river[0])
	assert.Equal(t, []int{37, 37, 36, 35, 35, 35, 35, 35, 35, 35, 35, 34}, river[:12])

	again, err := GenerateRiverPath(75, 75, DefaultRiverSeed)
	require.NoError(t, err)
	assert.Equal(t, river, again)
}

func TestRiverPathBounds(t *testing.T) {
	for _, size := range [][2]int{{3, 200}, {4, 50}, {10, 500}, {75, 75}, {120, 30}} {
		w, h := size[0], size[1]
		for seed := uint32(0); seed < 40; seed++ {
			river, err := GenerateRiverPath(w, h, seed)
			require.NoError(t, err)
			require.Len(t, river, h)
			for y, x := range river {
				if x < 1 || x > w-2 {
					t.Fatalf("%dx%d seed %d row %d: x=%d outside [1,%d]", w, h, seed, y, x, w-2)
				}
				if y > 0 {
					step := x - river[y-1]
					if step < -1 || step > 1 {
						t.Fatalf("%dx%d seed %d row %d: jumped %d columns", w, h, seed, y, step)
					}
				}
			}
		}
	}
}

func TestRiverPathRejectsTinyGrids(t *testing.T) {
	_, err := GenerateRiverPath(2, 10, 1)
	assert.ErrorIs(t, err, ErrGridTooSmall)
	_, err = GenerateRiverPath(10, 0, 1)
	assert.ErrorIs(t, err, ErrGridTooSmall)

	_, err = New(Params{Width: 2, Height: 2})
	assert.ErrorIs(t, err, ErrGridTooSmall)
}

func TestTypeAtFollowsThreshold(t *testing.T) {
	ter, err := New(DefaultParams())
	require.NoError(t, err)

	for _, x := range []int{0, ter.Width / 2, ter.Width - 1} {
		threshold := ter.CoastThreshold(x)
		for y := 0; y < ter.Height; y++ {
			want := tiles.Grass
			if y >= threshold {
				want = tiles.Water
			}
			if got := ter.TypeAt(x, y); got != want {
				t.Fatalf("cell (%d,%d) threshold %d: got %s want %s", x, y, threshold, got, want)
			}
		}
	}
}

func TestCoastThresholdResamples(t *testing.T) {
	ter := &Terrain{Width: 4, Height: 4, Coastline: []int{10, 20, 30, 40, 50, 60, 70, 80, 90}}
	assert.Equal(t, 10, ter.CoastThreshold(0))
	assert.Equal(t, 30, ter.CoastThreshold(1))
	assert.Equal(t, 50, ter.CoastThreshold(2))
	assert.Equal(t, 70, ter.CoastThreshold(3))
}

func TestRiverCarvingIsOptIn(t *testing.T) {
	ter := &Terrain{
		Width:     5,
		Height:    3,
		Coastline: []int{2, 2, 2, 2, 2},
		River:     []int{2, 2, 3},
	}
	assert.Equal(t, tiles.Grass, ter.TypeAt(2, 0))
	assert.NotContains(t, ter.Types(), tiles.River)

	ter.CarveRiver = true
	assert.Equal(t, tiles.River, ter.TypeAt(2, 0))
	assert.Equal(t, tiles.Grass, ter.TypeAt(1, 0))
	assert.Equal(t, tiles.Water, ter.TypeAt(3, 2), "water wins over the river below the coast")
	assert.Contains(t, ter.Types(), tiles.River)
}

func TestBuildingAtCenter(t *testing.T) {
	ter, err := New(DefaultParams())
	require.NoError(t, err)
	x, y := ter.Building()
	assert.Equal(t, 37, x)
	assert.Equal(t, 37, y)
}
