//go:build ebiten

package render

import (
	"image"
	"image/color"

	"isocity/internal/rain"
	"isocity/internal/terrain"
	"isocity/internal/tiles"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// maxBatchTiles keeps vertex indices within uint16.
const maxBatchTiles = 16000

// TerrainPainter draws planned tiles with batched triangles. Flat tiles
// sample a white pixel tinted by vertex colour; textured tiles map the
// diamond's vertices onto the texture's edge midpoints, which stretches the
// texture over the bounding box and clips it to the diamond in one pass.
type TerrainPainter struct {
	registry tiles.Registry
	textures TextureSource
	images   map[tiles.Type]*ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
	batchSrc *ebiten.Image
}

// NewTerrainPainter creates a painter. Textures are uploaded to the GPU the
// first time they are seen ready.
func NewTerrainPainter(reg tiles.Registry, textures TextureSource) *TerrainPainter {
	if textures == nil {
		textures = NoTextures{}
	}
	return &TerrainPainter{
		registry: reg,
		textures: textures,
		images:   map[tiles.Type]*ebiten.Image{},
	}
}

func (p *TerrainPainter) texture(t tiles.Type) (*ebiten.Image, bool) {
	if img, ok := p.images[t]; ok {
		return img, true
	}
	src, ok := p.textures.Lookup(t)
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	p.images[t] = img
	return img, true
}

// Draw paints plan onto dst in order.
func (p *TerrainPainter) Draw(dst *ebiten.Image, plan []Tile) {
	for i := range plan {
		t := &plan[i]
		if img, ok := p.texture(t.Type); ok {
			p.appendTextured(dst, t, img)
			continue
		}
		c := p.registry.Fallback(t.Type)
		p.appendFlat(dst, t, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	}
	p.flush(dst)
}

// DrawOverlay fills every planned cell for which colorAt reports a colour.
func (p *TerrainPainter) DrawOverlay(dst *ebiten.Image, plan []Tile, colorAt func(x, y int) (color.NRGBA, bool)) {
	for i := range plan {
		t := &plan[i]
		if c, ok := colorAt(t.X, t.Y); ok {
			p.appendFlat(dst, t, c)
		}
	}
	p.flush(dst)
}

func (p *TerrainPainter) appendFlat(dst *ebiten.Image, t *Tile, c color.NRGBA) {
	p.switchSource(dst, whiteSubImage)
	r, g, b, a := premultiplied(c)
	base := uint16(len(p.vertices))
	for _, v := range t.Diamond {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX: float32(v.X), DstY: float32(v.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
}

func (p *TerrainPainter) appendTextured(dst *ebiten.Image, t *Tile, img *ebiten.Image) {
	p.switchSource(dst, img)
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	src := [4][2]float32{{w / 2, 0}, {w, h / 2}, {w / 2, h}, {0, h / 2}}
	base := uint16(len(p.vertices))
	for i, v := range t.Diamond {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX: float32(v.X), DstY: float32(v.Y),
			SrcX: float32(b.Min.X) + src[i][0], SrcY: float32(b.Min.Y) + src[i][1],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
}

func (p *TerrainPainter) switchSource(dst *ebiten.Image, src *ebiten.Image) {
	if p.batchSrc != src || len(p.vertices) >= 4*maxBatchTiles {
		p.flush(dst)
		p.batchSrc = src
	}
}

func (p *TerrainPainter) flush(dst *ebiten.Image) {
	if len(p.indices) > 0 && p.batchSrc != nil {
		op := &ebiten.DrawTrianglesOptions{}
		op.AntiAlias = true
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		dst.DrawTriangles(p.vertices, p.indices, p.batchSrc, op)
	}
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}

// DrawRainDrops strokes each drop onto dst.
func DrawRainDrops(dst *ebiten.Image, drops []rain.Drop) {
	for _, d := range drops {
		vector.StrokeLine(dst, d.X, d.Y, d.X, d.Y+d.Length, rain.StrokeWidth, rain.Color, true)
	}
}

// Minimap shows the whole terrain top-down, one pixel per cell.
type Minimap struct {
	img *ebiten.Image
}

// NewMinimap uploads the top-down map of t.
func NewMinimap(t *terrain.Terrain, reg tiles.Registry) *Minimap {
	img := ebiten.NewImage(t.Width, t.Height)
	img.WritePixels(MinimapPixels(t, reg))
	return &Minimap{img: img}
}

// Draw blits the map at (x, y) scaled by scale.
func (m *Minimap) Draw(dst *ebiten.Image, x, y float64, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(m.img, op)
}

// Size returns the unscaled map dimensions.
func (m *Minimap) Size() (int, int) {
	b := m.img.Bounds()
	return b.Dx(), b.Dy()
}
