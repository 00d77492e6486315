package render

import (
	"image/color"
	"math"

	"isocity/internal/terrain"

	"github.com/hsluv/hsluv-go"
)

// Overlay selects a debug colouring drawn over the terrain.
type Overlay int

const (
	OverlayNone Overlay = iota
	// OverlayCoast shades each cell by its distance from the coastline.
	OverlayCoast
	// OverlayRiver highlights the river path whether or not it is carved.
	OverlayRiver
)

const (
	landHue  = 130
	waterHue = 250
	rampSpan = 12
)

// CoastRamp colours a cell by its signed row distance from the coast
// threshold: negative is land, zero and positive are water. Cells at the
// shore are darkest and fade out with distance.
func CoastRamp(dist int) color.NRGBA {
	hue := float64(landHue)
	if dist >= 0 {
		hue = waterHue
	}
	t := math.Min(math.Abs(float64(dist))/rampSpan, 1)
	r, g, b := hsluv.HsluvToRGB(hue, 85, 30+50*t)
	return color.NRGBA{
		R: unit8(r),
		G: unit8(g),
		B: unit8(b),
		A: uint8(200 - 140*t),
	}
}

func unit8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 0xff))
}

var riverHighlight = color.NRGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xc0}

// OverlayColor returns the overlay colour for cell (x, y). ok is false when
// the cell is left uncovered.
func OverlayColor(mode Overlay, t *terrain.Terrain, x, y int) (c color.NRGBA, ok bool) {
	switch mode {
	case OverlayCoast:
		return CoastRamp(y - t.CoastThreshold(x)), true
	case OverlayRiver:
		if y < len(t.River) && t.River[y] == x {
			return riverHighlight, true
		}
	}
	return color.NRGBA{}, false
}

// premultiplied returns c as premultiplied vertex colour components in [0, 1].
// Batches that use them must draw with ColorScaleModePremultipliedAlpha.
func premultiplied(c color.NRGBA) (r, g, b, a float32) {
	a = float32(c.A) / 0xff
	return float32(c.R) / 0xff * a, float32(c.G) / 0xff * a, float32(c.B) / 0xff * a, a
}
