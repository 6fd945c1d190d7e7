package sim

import "fmt"

// Phase is the top-level game phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseInGame
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseInGame:
		return "InGame"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Hook runs on a phase boundary.
type Hook func(w *World)

// PhaseMachine tracks the current phase and at most one requested
// transition. Transitions are applied by World.Step at the start of a frame.
type PhaseMachine struct {
	current Phase
	next    Phase
	pending bool

	enter map[Phase][]Hook
	exit  map[Phase][]Hook
}

// NewPhaseMachine creates a machine sitting in initial.
func NewPhaseMachine(initial Phase) *PhaseMachine {
	return &PhaseMachine{
		current: initial,
		enter:   make(map[Phase][]Hook),
		exit:    make(map[Phase][]Hook),
	}
}

// Current returns the active phase.
func (m *PhaseMachine) Current() Phase {
	return m.current
}

// Pending returns the requested phase, if any.
func (m *PhaseMachine) Pending() (Phase, bool) {
	return m.next, m.pending
}

// Request schedules a transition to p. Requesting the current or already
// pending phase is a no-op. GameOver is terminal.
func (m *PhaseMachine) Request(p Phase) error {
	if m.pending && m.next == p {
		return nil
	}
	if !m.pending && m.current == p {
		return nil
	}
	if !allowed(m.current, p) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, p)
	}
	m.next = p
	m.pending = true
	return nil
}

// OnEnter registers a hook run when p becomes active. Hooks run in
// registration order.
func (m *PhaseMachine) OnEnter(p Phase, h Hook) {
	m.enter[p] = append(m.enter[p], h)
}

// OnExit registers a hook run when p stops being active.
func (m *PhaseMachine) OnExit(p Phase, h Hook) {
	m.exit[p] = append(m.exit[p], h)
}

// apply performs the pending transition: exit hooks of the old phase, then
// enter hooks of the new one. It reports whether a transition happened.
func (m *PhaseMachine) apply(w *World) (from, to Phase, ok bool) {
	if !m.pending {
		return m.current, m.current, false
	}
	from, to = m.current, m.next
	m.pending = false

	for _, h := range m.exit[from] {
		h(w)
	}
	m.current = to
	for _, h := range m.enter[to] {
		h(w)
	}
	return from, to, true
}

// enterInitial runs the enter hooks of the starting phase.
func (m *PhaseMachine) enterInitial(w *World) {
	for _, h := range m.enter[m.current] {
		h(w)
	}
}

func allowed(from, to Phase) bool {
	switch from {
	case PhaseMenu:
		return to == PhaseInGame
	case PhaseInGame:
		return to == PhaseGameOver
	default:
		return false
	}
}
