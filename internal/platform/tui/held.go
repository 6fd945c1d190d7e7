package tui

import (
	"time"

	"github.com/vovakirdan/reblhell/internal/core"
)

// DefaultHoldWindow is how long a key press counts as held without a
// repeat event.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys turns key press and repeat events into held state. Terminals
// report no key releases, so a key is held until no event has arrived for
// the window.
type HeldKeys struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHeldKeys creates a tracker. A non-positive window selects
// DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a at now. Pressing a direction
// releases its opposite, so reversing does not stall until the old key
// times out.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if opp, ok := opposite(a); ok {
		delete(h.last, opp)
	}
	h.last[a] = now
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Apply sets every held action on frame.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.last)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}
