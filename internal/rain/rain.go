// Package rain simulates the falling-rain overlay. It is independent of the
// terrain grid and its projection.
package rain

import (
	"image/color"
	"math/rand/v2"
	"time"

	"isocity/internal/core"
)

// Defaults for the reference scene.
const (
	DefaultCount = 150

	minLength = 10
	maxLength = 30
	minSpeed  = 2
	maxSpeed  = 6
)

// Stroke style of a drop.
var (
	Color       = color.NRGBA{R: 173, G: 216, B: 230, A: 178}
	StrokeWidth = float32(1.2)
)

// Drop is one falling line segment, drawn from (X, Y) down to (X, Y+Length).
type Drop struct {
	X, Y   float32
	Length float32
	Speed  float32
}

// Layer holds a fixed set of drops falling over a w x h surface.
type Layer struct {
	size  core.Size
	drops []Drop
	rng   *rand.Rand
}

// NewRand returns a time-seeded source; rain does not need to be
// reproducible.
func NewRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32|1))
}

// New scatters count drops over the surface.
func New(count int, size core.Size, rng *rand.Rand) *Layer {
	if count < 0 {
		count = 0
	}
	l := &Layer{size: size, drops: make([]Drop, count), rng: rng}
	for i := range l.drops {
		l.drops[i] = Drop{
			X:      l.between(0, float32(size.W)),
			Y:      l.between(0, float32(size.H)),
			Length: l.between(minLength, maxLength),
			Speed:  l.between(minSpeed, maxSpeed),
		}
	}
	return l
}

func (l *Layer) between(lo, hi float32) float32 {
	return lo + l.rng.Float32()*(hi-lo)
}

// Step advances every drop by its speed. A drop that falls past the bottom
// edge wraps to just above the top at a new column.
func (l *Layer) Step() {
	h := float32(l.size.H)
	for i := range l.drops {
		d := &l.drops[i]
		d.Y += d.Speed
		if d.Y > h {
			d.Y = -d.Length
			d.X = l.between(0, float32(l.size.W))
		}
	}
}

// Resize changes the surface bounds. Existing drops keep falling and pick
// up the new bounds when they wrap.
func (l *Layer) Resize(size core.Size) { l.size = size }

// Size returns the surface bounds.
func (l *Layer) Size() core.Size { return l.size }

// Drops exposes the current drops for drawing. Callers must not retain it
// across Step.
func (l *Layer) Drops() []Drop { return l.drops }

// Len returns the number of drops.
func (l *Layer) Len() int { return len(l.drops) }
