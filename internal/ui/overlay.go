//go:build ebiten

package ui

import (
	"image/color"

	"isocity/internal/render"
	"isocity/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the terrain.
type Overlay struct {
	terrain *terrain.Terrain
	painter *render.TerrainPainter
	minimap *render.Minimap

	mode        render.Overlay
	showMinimap bool
}

// NewOverlay constructs an overlay for t.
func NewOverlay(t *terrain.Terrain, painter *render.TerrainPainter, minimap *render.Minimap) *Overlay {
	return &Overlay{terrain: t, painter: painter, minimap: minimap}
}

// Update handles the overlay toggle keys. Pressing the key of the active
// mode turns it off.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.toggle(render.OverlayCoast)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.toggle(render.OverlayRiver)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMinimap = !o.showMinimap
	}
}

func (o *Overlay) toggle(m render.Overlay) {
	if o.mode == m {
		o.mode = render.OverlayNone
		return
	}
	o.mode = m
}

// Name describes the active mode for the HUD.
func (o *Overlay) Name() string {
	switch o.mode {
	case render.OverlayCoast:
		return "coast"
	case render.OverlayRiver:
		return "river"
	}
	return ""
}

// Draw renders the active overlay for plan onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, plan []render.Tile) {
	if o.mode != render.OverlayNone {
		o.painter.DrawOverlay(screen, plan, func(x, y int) (color.NRGBA, bool) {
			return render.OverlayColor(o.mode, o.terrain, x, y)
		})
	}
	if o.showMinimap && o.minimap != nil {
		const scale = 2
		w, _ := o.minimap.Size()
		o.minimap.Draw(screen, float64(screen.Bounds().Dx()-w*scale-8), 8, scale)
	}
}
