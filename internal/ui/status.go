package ui

import (
	"fmt"

	"isocity/internal/tiles"
)

// Status is the snapshot of scene state shown on the HUD.
type Status struct {
	Zoom          float64
	CoastSeed     uint32
	RiverSeed     uint32
	TexturesReady int
	TexturesTotal int

	Hovered   bool
	HoverX    int
	HoverY    int
	HoverType tiles.Type

	Overlay      string
	AmbienceOn   bool
	AmbienceMute bool
}

// Lines renders the status as HUD text, one entry per line.
func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("zoom %.1fx", s.Zoom),
		fmt.Sprintf("seed %d  river %d", s.CoastSeed, s.RiverSeed),
		fmt.Sprintf("textures %d/%d", s.TexturesReady, s.TexturesTotal),
	}
	if s.Hovered {
		lines = append(lines, fmt.Sprintf("cell %d,%d %s", s.HoverX, s.HoverY, s.HoverType))
	}
	if s.Overlay != "" {
		lines = append(lines, "overlay "+s.Overlay)
	}
	switch {
	case s.AmbienceMute:
		lines = append(lines, "ambience muted")
	case s.AmbienceOn:
		lines = append(lines, "[P] pause ambience")
	default:
		lines = append(lines, "[P] play ambience")
	}
	return append(lines, "[1] coast [2] river [M] map [H] hud")
}
