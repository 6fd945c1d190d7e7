package sim

import "math"

// TimerMode selects whether a timer restarts after completing.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer accumulates simulated seconds. A repeating timer reports every
// completed cycle and keeps the remainder; a once timer completes a single
// time and then stays finished.
type Timer struct {
	Duration float64
	Mode     TimerMode

	elapsed  float64
	finished bool
}

// NewTimer creates a timer of d seconds.
func NewTimer(d float64, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by dt and returns the number of cycles completed
// during this tick. Negative dt is treated as zero.
func (t *Timer) Tick(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	if t.Duration <= 0 {
		return 0
	}

	if t.Mode == TimerOnce {
		if t.finished {
			return 0
		}
		t.elapsed += dt
		if t.elapsed >= t.Duration {
			t.elapsed = t.Duration
			t.finished = true
			return 1
		}
		return 0
	}

	t.elapsed += dt
	n := math.Floor(t.elapsed / t.Duration)
	if n <= 0 {
		return 0
	}
	t.elapsed -= n * t.Duration
	if t.elapsed < 0 {
		t.elapsed = 0
	}
	t.finished = true
	return int(n)
}

// Finished reports whether the timer has completed at least once.
func (t Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the seconds accumulated in the current cycle.
func (t Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining returns the seconds left in the current cycle.
func (t Timer) Remaining() float64 {
	return math.Max(0, t.Duration-t.elapsed)
}

// Reset clears progress.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}
