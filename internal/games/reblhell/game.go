// Package reblhell adapts the simulation to the platform's Game interface.
package reblhell

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reblhell/internal/assets"
	"github.com/vovakirdan/reblhell/internal/config"
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/registry"
	"github.com/vovakirdan/reblhell/internal/sim"
)

// Variant selects the rule set.
type Variant string

const (
	VariantStandard Variant = "reblhell"
	VariantHardcore Variant = "reblhell_hardcore"
)

// Button size in cells.
const (
	buttonW = 16
	buttonH = 3
)

// Package-level settings applied on Reset, set by the CLI before the game
// is created.
var (
	baseConfig = config.DefaultConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by every subsequent Reset.
func SetConfig(cfg config.Config) {
	baseConfig = cfg
}

// SetLogger sets the logger handed to new worlds.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game drives one simulation world.
type Game struct {
	variant Variant
	cfg     config.Config
	world   *sim.World
	loader  *assets.Loader
	seed    int64
	dt      float64
	paused  bool

	screenW int
	screenH int
}

// New creates a standard game: death is reported but play continues.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewHardcore creates a game that ends when the player dies.
func NewHardcore() *Game {
	return &Game{variant: VariantHardcore}
}

func init() {
	registry.Register(registry.Mode{
		ID:      string(VariantStandard),
		Title:   "Reblhell",
		Summary: "Survive the ring; death is logged and play goes on",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.Mode{
		ID:      string(VariantHardcore),
		Title:   "Reblhell (Hardcore)",
		Summary: "The run ends when the player dies",
	}, func() registry.Game {
		return NewHardcore()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantHardcore {
		return "Reblhell (Hardcore)"
	}
	return "Reblhell"
}

// Reset builds a fresh world in the menu phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = baseConfig
	if g.variant == VariantHardcore {
		g.cfg.Rules.GameOverOnDeath = true
	}
	if g.loader == nil {
		g.loader = assets.NewLoader(nil, logger)
	}

	g.seed = cfg.Seed
	g.dt = cfg.FrameDelta()
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.world = sim.NewWorld(g.cfg, cfg.Seed,
		sim.WithLogger(logger.With("game", g.ID())),
		sim.WithAssets(g.loader),
	)
	g.world.SetButtonBounds(buttonRect(g.screenW, g.screenH))
}

// Resize updates the layout for a new screen size without resetting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.world != nil {
		g.world.SetButtonBounds(buttonRect(w, h))
	}
}

// Step advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) && g.canRestart() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.seed + 1,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate(),
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.world.Phase() == sim.PhaseInGame {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(toSimInput(in), g.dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Score:    g.world.Kills(),
		GameOver: g.world.Phase() == sim.PhaseGameOver,
		Paused:   g.paused,
		Phase:    g.world.Phase().String(),
	}
	if p, err := g.world.PlayerState(); err == nil {
		st.Health = p.Health
		st.MaxHealth = p.MaxHealth
	}
	return st
}

// World exposes the underlying simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// Assets exposes the sprite loader.
func (g *Game) Assets() *assets.Loader {
	return g.loader
}

// canRestart reports whether the run is over, either by phase or by a dead
// player in the standard rules.
func (g *Game) canRestart() bool {
	if g.world.Phase() == sim.PhaseGameOver {
		return true
	}
	p, err := g.world.PlayerState()
	return err == nil && p.Health <= 0
}

func (g *Game) tickRate() int {
	if g.dt <= 0 {
		return 60
	}
	return int(1/g.dt + 0.5)
}

func toSimInput(in core.InputFrame) sim.Input {
	out := sim.Input{
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Up:      in.Has(core.ActionUp),
		Down:    in.Has(core.ActionDown),
		Confirm: in.Has(core.ActionConfirm),
	}
	if in.Pointer != nil {
		p := *in.Pointer
		out.Pointer = &p
	}
	return out
}

func buttonRect(screenW, screenH int) core.Rect {
	return core.CenteredRect(screenW, screenH, buttonW, buttonH)
}
