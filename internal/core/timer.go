package core

import "time"

// maxCatchUp bounds how many ticks a single call may report after a stall
// (window drag, debugger pause) so animations skip ahead instead of spinning.
const maxCatchUp = 4

// FixedStep paces an animation at a steady ticks-per-second rate independent
// of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Steps reports how many ticks have elapsed since the previous call. The
// first call always reports one tick so the animation draws immediately.
func (f *FixedStep) Steps() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
		if n == maxCatchUp {
			f.accumulator = 0
			break
		}
	}
	return n
}
