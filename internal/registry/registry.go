// Package registry maps mode IDs to game factories. Modes register
// themselves in init and the CLI and picker look them up by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/reblhell/internal/core"
)

// Game is what the terminal front-end drives. Implementations hold no
// Bubble Tea state; the platform owns input mapping, timing and drawing.
type Game interface {
	ID() string
	Title() string

	// Reset builds a fresh run. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can relayout without a reset.
type Resizer interface {
	Resize(w, h int)
}

// ErrUnknownMode is returned by Create for an unregistered ID.
var ErrUnknownMode = errors.New("unknown mode")

// Mode describes a registered mode.
type Mode struct {
	ID      string
	Title   string
	Summary string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	mode    Mode
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(m Mode, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if m.ID == "" {
		panic("registry: empty mode id")
	}
	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	modes[m.ID] = entry{mode: m, factory: f}
}

// List returns every registered mode sorted by ID.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Mode, 0, len(modes))
	for _, e := range modes {
		out = append(out, e.mode)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Lookup returns the metadata registered under id.
func Lookup(id string) (Mode, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	return e.mode, ok
}

// Create instantiates the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownMode, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
