package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clk.now
	return fs, clk
}

func TestFixedStepFirstCallTicks(t *testing.T) {
	fs, _ := newTestStep(60)
	if got := fs.Steps(); got != 1 {
		t.Fatalf("first call reported %d steps, want 1", got)
	}
	if got := fs.Steps(); got != 0 {
		t.Fatalf("immediate second call reported %d steps, want 0", got)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs, clk := newTestStep(10)
	fs.Steps()

	clk.advance(50 * time.Millisecond)
	if got := fs.Steps(); got != 0 {
		t.Fatalf("half a tick reported %d steps", got)
	}
	clk.advance(60 * time.Millisecond)
	if got := fs.Steps(); got != 1 {
		t.Fatalf("after 110ms reported %d steps, want 1", got)
	}
	clk.advance(200 * time.Millisecond)
	if got := fs.Steps(); got != 2 {
		t.Fatalf("after two more ticks reported %d steps, want 2", got)
	}
}

func TestFixedStepCatchUpBounded(t *testing.T) {
	fs, clk := newTestStep(60)
	fs.Steps()
	clk.advance(10 * time.Second)
	if got := fs.Steps(); got != maxCatchUp {
		t.Fatalf("stall reported %d steps, want %d", got, maxCatchUp)
	}
	if got := fs.Steps(); got != 0 {
		t.Fatalf("backlog not dropped after stall, got %d", got)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v, want 1/60s", fs.step)
	}
}
