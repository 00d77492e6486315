package core

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGKnownSequence(t *testing.T) {
	r := NewRNG(42)
	want := []float64{0.6011037519201636, 0.44829055899754167, 0.8524657934904099}
	for i, w := range want {
		assert.InDelta(t, w, r.Float64(), 1e-15, "draw %d", i)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(10000)
	b := NewRNG(10000)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32(), "draw %d diverged", i)
	}
}

func TestRNGSeedsIndependent(t *testing.T) {
	a := NewRNG(10000)
	b := NewRNG(123)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint32() == b.Uint32() {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestRNGUnitInterval(t *testing.T) {
	r := NewRNG(7)
	var sum float64
	const n = 20000
	for i := 0; i < n; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
		sum += v
	}
	assert.InDelta(t, 0.5, sum/n, 0.02)
}

func TestRNGBacksRand(t *testing.T) {
	a := rand.New(NewRNG(5))
	b := rand.New(NewRNG(5))
	for i := 0; i < 50; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
