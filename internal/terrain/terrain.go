package terrain

import (
	"fmt"

	"isocity/internal/tiles"
)

// Reference seeds for the default scene.
const (
	DefaultCoastSeed uint32 = 10000
	DefaultRiverSeed uint32 = 123
	DefaultGridSize         = 75
)

// Params selects the grid size and seeds used to synthesise a Terrain.
type Params struct {
	Width      int
	Height     int
	Roughness  int
	CoastSeed  uint32
	RiverSeed  uint32
	CarveRiver bool
}

// DefaultParams returns the reference 75x75 scene.
func DefaultParams() Params {
	return Params{
		Width:     DefaultGridSize,
		Height:    DefaultGridSize,
		Roughness: DefaultRoughness,
		CoastSeed: DefaultCoastSeed,
		RiverSeed: DefaultRiverSeed,
	}
}

// Terrain is the generated scene. It is immutable once built; cell types are
// derived from the profiles on demand rather than stored.
type Terrain struct {
	Width     int
	Height    int
	Coastline []int
	River     []int

	// CarveRiver turns grass cells on the river path into tiles.River. Off by
	// default, where the river is computed but does not affect typing.
	CarveRiver bool
}

// New generates the coastline and river for p.
func New(p Params) (*Terrain, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("terrain: invalid grid %dx%d", p.Width, p.Height)
	}
	if p.Roughness < 0 {
		return nil, fmt.Errorf("terrain: negative roughness %d", p.Roughness)
	}
	river, err := GenerateRiverPath(p.Width, p.Height, p.RiverSeed)
	if err != nil {
		return nil, fmt.Errorf("river path %dx%d: %w", p.Width, p.Height, err)
	}
	return &Terrain{
		Width:      p.Width,
		Height:     p.Height,
		Coastline:  GenerateCoastline(p.CoastSeed, p.Width, p.Roughness),
		River:      river,
		CarveRiver: p.CarveRiver,
	}, nil
}

// CoastThreshold resamples the coastline profile for column x by nearest
// index. Rows at or below the threshold are water.
func (t *Terrain) CoastThreshold(x int) int {
	return t.Coastline[x*len(t.Coastline)/t.Width]
}

// TypeAt derives the tile type of cell (x, y).
func (t *Terrain) TypeAt(x, y int) tiles.Type {
	if y >= t.CoastThreshold(x) {
		return tiles.Water
	}
	if t.CarveRiver && y < len(t.River) && t.River[y] == x {
		return tiles.River
	}
	return tiles.Grass
}

// Building returns the cell holding the building overlay.
func (t *Terrain) Building() (x, y int) {
	return t.Width / 2, t.Height / 2
}

// Types lists every tile type this terrain can produce, overlay included.
func (t *Terrain) Types() []tiles.Type {
	types := []tiles.Type{tiles.Water, tiles.Grass, tiles.Building}
	if t.CarveRiver {
		types = append(types, tiles.River)
	}
	return types
}
