package ui

import (
	"testing"

	"isocity/internal/tiles"

	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	s := Status{Zoom: 1.3, CoastSeed: 10000, RiverSeed: 123, TexturesReady: 2, TexturesTotal: 3}
	lines := s.Lines()
	assert.Equal(t, []string{
		"zoom 1.3x",
		"seed 10000  river 123",
		"textures 2/3",
		"[P] play ambience",
		"[1] coast [2] river [M] map [H] hud",
	}, lines)
}

func TestStatusLinesOptional(t *testing.T) {
	s := Status{
		Zoom:       0.5,
		Hovered:    true,
		HoverX:     4,
		HoverY:     70,
		HoverType:  tiles.Water,
		Overlay:    "coast",
		AmbienceOn: true,
	}
	lines := s.Lines()
	assert.Contains(t, lines, "cell 4,70 water")
	assert.Contains(t, lines, "overlay coast")
	assert.Contains(t, lines, "[P] pause ambience")

	s.AmbienceMute = true
	assert.Contains(t, s.Lines(), "ambience muted")
}
