//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	hudPadding    = 8
	hudLineHeight = 18
)

// HUD draws the status panel in the top-left corner.
type HUD struct {
	face    text.Face
	visible bool
	panel   *ebiten.Image
}

// NewHUD returns a visible HUD.
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(bitmapfont.Face), visible: true}
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw paints the status lines over a translucent panel.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if !h.visible {
		return
	}
	lines := s.Lines()
	width := 0.0
	for _, l := range lines {
		width = max(width, text.Advance(l, h.face))
	}
	pw := int(width) + 2*hudPadding
	ph := len(lines)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.panel.Bounds().Dx() != pw || h.panel.Bounds().Dy() != ph {
		h.panel = ebiten.NewImage(pw, ph)
		h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(hudPadding, hudPadding)
	screen.DrawImage(h.panel, op)

	for i, l := range lines {
		tOp := &text.DrawOptions{}
		tOp.GeoM.Translate(2*hudPadding, float64(2*hudPadding+i*hudLineHeight))
		tOp.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 230, B: 240, A: 255})
		text.Draw(screen, l, h.face, tOp)
	}
}
