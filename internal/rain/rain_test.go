package rain

import (
	"math/rand/v2"
	"testing"

	"isocity/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLayer(size core.Size) *Layer {
	return New(DefaultCount, size, rand.New(rand.NewPCG(7, 11)))
}

func TestNewRanges(t *testing.T) {
	size := core.Size{W: 800, H: 600}
	l := newTestLayer(size)
	require.Equal(t, DefaultCount, l.Len())
	for i, d := range l.Drops() {
		if d.X < 0 || d.X >= 800 || d.Y < 0 || d.Y >= 600 {
			t.Fatalf("drop %d starts off-surface at (%v,%v)", i, d.X, d.Y)
		}
		if d.Length < minLength || d.Length >= maxLength {
			t.Fatalf("drop %d length %v", i, d.Length)
		}
		if d.Speed < minSpeed || d.Speed >= maxSpeed {
			t.Fatalf("drop %d speed %v", i, d.Speed)
		}
	}
}

func TestStepAdvancesAndWraps(t *testing.T) {
	l := newTestLayer(core.Size{W: 100, H: 50})
	l.drops = []Drop{
		{X: 10, Y: 0, Length: 12, Speed: 3},
		{X: 20, Y: 49, Length: 15, Speed: 2},
		{X: 30, Y: 48, Length: 11, Speed: 2},
	}
	l.Step()

	d := l.Drops()
	assert.Equal(t, float32(3), d[0].Y)
	assert.Equal(t, float32(10), d[0].X)

	assert.Equal(t, float32(-15), d[1].Y, "wraps to one length above the top")
	assert.GreaterOrEqual(t, d[1].X, float32(0))
	assert.Less(t, d[1].X, float32(100))

	assert.Equal(t, float32(50), d[2].Y, "exactly on the bottom edge has not left yet")
}

func TestWrapInvariantOverManyFrames(t *testing.T) {
	size := core.Size{W: 320, H: 240}
	l := newTestLayer(size)
	for frame := 0; frame < 2000; frame++ {
		l.Step()
		require.Equal(t, DefaultCount, l.Len())
		for i, d := range l.Drops() {
			if d.Y > float32(size.H) {
				t.Fatalf("frame %d drop %d below the surface at %v", frame, i, d.Y)
			}
			if d.Y < -maxLength {
				t.Fatalf("frame %d drop %d too far above the surface at %v", frame, i, d.Y)
			}
		}
	}
}

func TestResizeAffectsWrap(t *testing.T) {
	l := newTestLayer(core.Size{W: 100, H: 100})
	l.drops = []Drop{{X: 5, Y: 60, Length: 10, Speed: 5}}
	l.Resize(core.Size{W: 40, H: 50})
	l.Step()
	d := l.Drops()[0]
	assert.Equal(t, float32(-10), d.Y)
	assert.Less(t, d.X, float32(40))
	assert.Equal(t, core.Size{W: 40, H: 50}, l.Size())
}

func TestNegativeCount(t *testing.T) {
	l := New(-3, core.Size{W: 10, H: 10}, NewRand())
	assert.Zero(t, l.Len())
	l.Step()
}
