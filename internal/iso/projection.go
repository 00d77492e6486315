// Package iso implements the isometric grid projection.
package iso

import (
	"math"

	"isocity/internal/core"
)

// Diamond proportions at zoom 1.
const (
	TileWidth  = 64
	TileHeight = 32
)

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// Rect is a screen-space axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

// Projection maps grid cells to screen space for a fixed canvas and zoom.
// The grid is centred horizontally on the canvas and its projected height
// is centred vertically.
type Projection struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
}

// New builds the projection for a gridW x gridH grid on a canvas.
func New(canvas core.Size, gridW, gridH int, zoom float64) Projection {
	return Projection{
		Zoom:    zoom,
		OffsetX: float64(canvas.W) / 2,
		OffsetY: float64(canvas.H)/2 - GridPixelHeight(gridW, gridH, zoom)/2,
	}
}

// GridPixelHeight is the projected height of the whole grid.
func GridPixelHeight(gridW, gridH int, zoom float64) float64 {
	return float64(gridW+gridH) * (TileHeight / 2) * zoom
}

func (p Projection) halfW() float64 { return TileWidth / 2 * p.Zoom }
func (p Projection) halfH() float64 { return TileHeight / 2 * p.Zoom }

// ToScreen returns the top vertex of cell (x, y).
func (p Projection) ToScreen(x, y int) Point {
	return Point{
		X: float64(x-y)*p.halfW() + p.OffsetX,
		Y: float64(x+y)*p.halfH() + p.OffsetY,
	}
}

// Diamond returns the top, right, bottom and left vertices of cell (x, y).
func (p Projection) Diamond(x, y int) [4]Point {
	top := p.ToScreen(x, y)
	hw, hh := p.halfW(), p.halfH()
	return [4]Point{
		top,
		{top.X + hw, top.Y + hh},
		{top.X, top.Y + 2*hh},
		{top.X - hw, top.Y + hh},
	}
}

// Bounds returns the bounding box of cell (x, y), which is also the box a
// texture is stretched over.
func (p Projection) Bounds(x, y int) Rect {
	top := p.ToScreen(x, y)
	return Rect{X: top.X - p.halfW(), Y: top.Y, W: TileWidth * p.Zoom, H: TileHeight * p.Zoom}
}

// Center returns the centre of the diamond of cell (x, y).
func (p Projection) Center(x, y int) Point {
	top := p.ToScreen(x, y)
	return Point{top.X, top.Y + p.halfH()}
}

// ToGrid returns the cell whose diamond contains the screen point. ok is
// false when the point falls outside a gridW x gridH grid.
func (p Projection) ToGrid(px, py float64, gridW, gridH int) (x, y int, ok bool) {
	if p.Zoom <= 0 {
		return 0, 0, false
	}
	u := (px - p.OffsetX) / p.halfW()
	v := (py - p.OffsetY) / p.halfH()
	// u = x - y and v = x + y + 1 at a cell's centre.
	fx := (v + u) / 2
	fy := (v - u) / 2
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	if x < 0 || y < 0 || x >= gridW || y >= gridH {
		return x, y, false
	}
	return x, y, true
}
