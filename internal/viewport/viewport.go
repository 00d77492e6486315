// Package viewport tracks canvas size and zoom and decides when the terrain
// needs to be redrawn.
package viewport

import (
	"math"

	"isocity/internal/core"
	"isocity/internal/iso"
)

// Zoom limits and the change applied per wheel notch.
const (
	MinZoom  = 0.5
	MaxZoom  = 3.0
	ZoomStep = 0.1
)

// Controller owns the viewport state. Every change marks it dirty; any
// number of changes between two redraws collapse into one redraw of the
// latest state.
type Controller struct {
	size  core.Size
	zoom  float64
	dirty bool
}

// New returns a controller at zoom 1 for the given canvas size. It starts
// dirty so the first frame draws.
func New(size core.Size) *Controller {
	return &Controller{size: size, zoom: 1, dirty: true}
}

// Size returns the canvas size.
func (c *Controller) Size() core.Size { return c.size }

// Zoom returns the current zoom factor.
func (c *Controller) Zoom() float64 { return c.zoom }

// Resize records a new canvas size. It reports whether the size changed.
func (c *Controller) Resize(w, h int) bool {
	if w == c.size.W && h == c.size.H {
		return false
	}
	c.size = core.Size{W: w, H: h}
	c.dirty = true
	return true
}

// Scroll applies one wheel event. dy > 0 (wheel away from the user) zooms in
// and dy < 0 zooms out. Events carrying the host zoom modifier are left to
// the host and ignored here, as are purely horizontal scrolls. It reports
// whether the zoom changed.
func (c *Controller) Scroll(dy float64, modifier bool) bool {
	if modifier || dy == 0 {
		return false
	}
	next := c.zoom
	if dy > 0 {
		next = math.Min(next+ZoomStep, MaxZoom)
	} else {
		next = math.Max(next-ZoomStep, MinZoom)
	}
	// Snap to tenths so repeated steps do not drift off the limits.
	next = math.Round(next*10) / 10
	if next == c.zoom {
		return false
	}
	c.zoom = next
	c.dirty = true
	return true
}

// SetZoom sets the zoom directly, clamped to [MinZoom, MaxZoom].
func (c *Controller) SetZoom(z float64) {
	z = math.Max(MinZoom, math.Min(MaxZoom, z))
	if z != c.zoom {
		c.zoom = z
		c.dirty = true
	}
}

// Invalidate forces a redraw, e.g. after a texture finished loading.
func (c *Controller) Invalidate() { c.dirty = true }

// Dirty reports whether a redraw is pending.
func (c *Controller) Dirty() bool { return c.dirty }

// TakeDirty reports whether a redraw is pending and clears the flag.
func (c *Controller) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Projection returns the isometric projection for the current state.
func (c *Controller) Projection(gridW, gridH int) iso.Projection {
	return iso.New(c.size, gridW, gridH, c.zoom)
}
