package render

import (
	"image"
	"image/color"
	"math"

	"isocity/internal/rain"
	"isocity/internal/tiles"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Raster draws frames into an *image.RGBA without a GPU, for snapshots and
// tests. Each tile is rasterised into a diamond coverage mask, so textures
// and fills never leak into neighbouring tiles.
type Raster struct {
	Registry tiles.Registry
	Textures TextureSource

	z       *vector.Rasterizer
	mask    *image.Alpha
	stretch map[stretchKey]*image.RGBA
}

type stretchKey struct {
	typ  tiles.Type
	w, h int
}

// NewRaster returns a Raster. A nil textures source draws fallback colours
// only.
func NewRaster(reg tiles.Registry, textures TextureSource) *Raster {
	if textures == nil {
		textures = NoTextures{}
	}
	return &Raster{
		Registry: reg,
		Textures: textures,
		z:        vector.NewRasterizer(1, 1),
		stretch:  map[stretchKey]*image.RGBA{},
	}
}

// DrawTiles draws plan over dst in order.
func (r *Raster) DrawTiles(dst *image.RGBA, plan []Tile) {
	for i := range plan {
		r.drawTile(dst, &plan[i])
	}
}

func (r *Raster) drawTile(dst *image.RGBA, t *Tile) {
	x0 := math.Floor(t.Bounds.X)
	y0 := math.Floor(t.Bounds.Y)
	x1 := math.Ceil(t.Bounds.X + t.Bounds.W)
	y1 := math.Ceil(t.Bounds.Y + t.Bounds.H)
	rect := image.Rect(int(x0), int(y0), int(x1), int(y1))
	if !rect.Overlaps(dst.Bounds()) {
		return
	}
	mask := r.diamondMask(t, x0, y0, rect.Dx(), rect.Dy())

	var src image.Image
	if tex, ok := r.Textures.Lookup(t.Type); ok {
		src = r.stretched(t.Type, tex, rect.Dx(), rect.Dy())
	} else {
		src = image.NewUniform(r.Registry.Fallback(t.Type))
	}
	draw.DrawMask(dst, rect, src, image.Point{}, mask, image.Point{}, draw.Over)
}

func (r *Raster) diamondMask(t *Tile, x0, y0 float64, w, h int) *image.Alpha {
	if r.mask == nil || r.mask.Rect.Dx() != w || r.mask.Rect.Dy() != h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(r.mask.Pix)
	}
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Src
	d := t.Diamond
	r.z.MoveTo(float32(d[0].X-x0), float32(d[0].Y-y0))
	for _, p := range d[1:] {
		r.z.LineTo(float32(p.X-x0), float32(p.Y-y0))
	}
	r.z.ClosePath()
	r.z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})
	return r.mask
}

// stretched scales tex to the tile bounding box, caching one copy per type
// and size. A type's texture is resolved at most once, so the key needs no
// image identity.
func (r *Raster) stretched(typ tiles.Type, tex image.Image, w, h int) *image.RGBA {
	key := stretchKey{typ: typ, w: w, h: h}
	if img, ok := r.stretch[key]; ok {
		return img
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(img, img.Bounds(), tex, tex.Bounds(), draw.Src, nil)
	r.stretch[key] = img
	return img
}

// DrawOverlay covers each planned cell that has an overlay colour.
func (r *Raster) DrawOverlay(dst *image.RGBA, plan []Tile, colorAt func(x, y int) (color.NRGBA, bool)) {
	for i := range plan {
		t := &plan[i]
		c, ok := colorAt(t.X, t.Y)
		if !ok {
			continue
		}
		x0, y0 := math.Floor(t.Bounds.X), math.Floor(t.Bounds.Y)
		rect := image.Rect(int(x0), int(y0), int(math.Ceil(t.Bounds.X+t.Bounds.W)), int(math.Ceil(t.Bounds.Y+t.Bounds.H)))
		if !rect.Overlaps(dst.Bounds()) {
			continue
		}
		mask := r.diamondMask(t, x0, y0, rect.Dx(), rect.Dy())
		draw.DrawMask(dst, rect, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// DrawRain strokes every drop as a vertical line over dst.
func DrawRain(dst *image.RGBA, drops []rain.Drop) {
	src := image.NewUniform(rain.Color)
	width := int(math.Max(1, math.Round(float64(rain.StrokeWidth))))
	for _, d := range drops {
		x := int(math.Floor(float64(d.X)))
		rect := image.Rect(x, int(math.Floor(float64(d.Y))), x+width, int(math.Ceil(float64(d.Y+d.Length))))
		draw.Draw(dst, rect, src, image.Point{}, draw.Over)
	}
}
