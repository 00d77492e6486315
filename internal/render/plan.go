// Package render turns terrain and viewport state into drawn tiles.
package render

import (
	"image"

	"isocity/internal/iso"
	"isocity/internal/terrain"
	"isocity/internal/tiles"
)

// TextureSource yields the texture for a tile type when one is ready.
// Anything else (absent, pending, failed) reports false and the tile is
// filled with its fallback colour.
type TextureSource interface {
	Lookup(t tiles.Type) (image.Image, bool)
}

// NoTextures is a TextureSource with nothing loaded.
type NoTextures struct{}

// Lookup always reports false.
func (NoTextures) Lookup(tiles.Type) (image.Image, bool) { return nil, false }

// Tile is one diamond to draw.
type Tile struct {
	X, Y    int
	Type    tiles.Type
	Diamond [4]iso.Point
	Bounds  iso.Rect
}

// Plan appends the full draw list for t under p to dst: every cell, column
// by column, followed by the building overlay on the centre cell.
func Plan(dst []Tile, t *terrain.Terrain, p iso.Projection) []Tile {
	dst = dst[:0]
	for x := 0; x < t.Width; x++ {
		for y := 0; y < t.Height; y++ {
			dst = append(dst, tileAt(p, x, y, t.TypeAt(x, y)))
		}
	}
	bx, by := t.Building()
	return append(dst, tileAt(p, bx, by, tiles.Building))
}

func tileAt(p iso.Projection, x, y int, typ tiles.Type) Tile {
	return Tile{X: x, Y: y, Type: typ, Diamond: p.Diamond(x, y), Bounds: p.Bounds(x, y)}
}
