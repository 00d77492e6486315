package render

import (
	"image/color"

	"isocity/internal/terrain"
	"isocity/internal/tiles"
)

// fillTypesRGBA writes a top-down map of t into buf, one pixel per cell in
// row-major order, using each type's fallback colour. The building cell is
// painted last.
func fillTypesRGBA(buf []byte, t *terrain.Terrain, reg tiles.Registry) {
	palette := map[tiles.Type]color.RGBA{}
	for _, typ := range t.Types() {
		palette[typ] = reg.Fallback(typ)
	}
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			putRGBA(buf, (y*t.Width+x)*4, palette[t.TypeAt(x, y)])
		}
	}
	bx, by := t.Building()
	putRGBA(buf, (by*t.Width+bx)*4, palette[tiles.Building])
}

func putRGBA(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

// MinimapPixels returns the RGBA bytes of a Width x Height top-down map.
func MinimapPixels(t *terrain.Terrain, reg tiles.Registry) []byte {
	buf := make([]byte, 4*t.Width*t.Height)
	fillTypesRGBA(buf, t, reg)
	return buf
}
