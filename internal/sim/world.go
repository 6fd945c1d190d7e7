// Package sim is the frame-stepped simulation: phases, spawning, movement,
// timed attacks and contact combat over an entity registry.
package sim

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reblhell/internal/assets"
	"github.com/vovakirdan/reblhell/internal/config"
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
	"github.com/vovakirdan/reblhell/internal/spatial"
)

// Spatial is the physics service the simulation drives. *spatial.Space
// implements it.
type Spatial interface {
	CreateBody(owner ecs.Entity, shape spatial.Shape, pos core.Vec2) spatial.BodyID
	RemoveBody(id spatial.BodyID)
	SetPosition(id spatial.BodyID, pos core.Vec2)
	Position(id spatial.BodyID) (core.Vec2, bool)
	QueryOverlaps(shape spatial.Shape, pos core.Vec2, filter spatial.Filter) []ecs.Entity
}

var _ Spatial = (*spatial.Space)(nil)

// AssetService resolves sprite paths to handles without blocking.
// *assets.Loader implements it.
type AssetService interface {
	Load(path string) assets.Handle
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSpatial replaces the default in-process spatial service.
func WithSpatial(s Spatial) Option {
	return func(w *World) {
		if s != nil {
			w.space = s
		}
	}
}

// WithAssets sets the asset service used for sprites.
func WithAssets(a AssetService) Option {
	return func(w *World) {
		w.assets = a
	}
}

// World owns every entity and runs the systems of the active phase. It is
// not safe for concurrent use.
type World struct {
	cfg    config.Config
	log    *log.Logger
	rng    *rand.Rand
	space  Spatial
	assets AssetService

	reg         *ecs.Registry
	transforms  *ecs.Store[Transform]
	players     *ecs.Store[Player]
	enemies     *ecs.Store[Enemy]
	emitters    *ecs.Store[Emitter]
	projectiles *ecs.Store[Projectile]
	colliders   *ecs.Store[Collider]
	sprites     *ecs.Store[Sprite]
	buttons     *ecs.Store[MenuButton]
	names       *ecs.Store[Name]

	phase  *PhaseMachine
	camera Camera
	player ecs.Entity

	playerDead bool
	kills      int
	frame      uint64
	elapsed    float64
}

// NewWorld creates a world in the Menu phase with the camera at the window
// centre and the play button spawned.
func NewWorld(cfg config.Config, seed int64, opts ...Option) *World {
	w := &World{
		cfg: cfg,
		log: log.New(io.Discard),
		rng: rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay RNG, determinism required
		reg: ecs.NewRegistry(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.space == nil {
		w.space = spatial.NewSpace(cfg.Physics.CellSize)
	}

	w.transforms = ecs.NewStore[Transform](w.reg)
	w.players = ecs.NewStore[Player](w.reg)
	w.enemies = ecs.NewStore[Enemy](w.reg)
	w.emitters = ecs.NewStore[Emitter](w.reg)
	w.projectiles = ecs.NewStore[Projectile](w.reg)
	w.colliders = ecs.NewStore[Collider](w.reg)
	w.sprites = ecs.NewStore[Sprite](w.reg)
	w.buttons = ecs.NewStore[MenuButton](w.reg)
	w.names = ecs.NewStore[Name](w.reg)

	w.reg.OnDespawn(w.releaseEntity)

	w.camera = Camera{Position: w.Origin()}

	w.phase = NewPhaseMachine(PhaseMenu)
	w.phase.OnEnter(PhaseMenu, spawnMenu)
	w.phase.OnExit(PhaseMenu, despawnMenu)
	w.phase.OnExit(PhaseMenu, spawnPlayerAtOrigin)
	w.phase.OnEnter(PhaseInGame, spawnInitialEnemies)
	w.phase.OnExit(PhaseInGame, despawnGameplay)

	w.phase.enterInitial(w)
	w.reg.Flush()

	return w
}

// Step advances the world by dt seconds. A transition requested during the
// previous frame is applied first, so its spawns exist before any system of
// the new phase runs.
func (w *World) Step(in Input, dt float64) {
	if dt < 0 {
		dt = 0
	}

	if from, to, ok := w.phase.apply(w); ok {
		w.reg.Flush()
		w.log.Info("phase changed", "from", from, "to", to, "frame", w.frame)
	}

	switch w.phase.Current() {
	case PhaseMenu:
		UpdateButtonInteraction(w, in)
	case PhaseInGame:
		w.stepInGame(in, dt)
	case PhaseGameOver:
	}

	w.reg.Flush()
	w.frame++
	w.elapsed += dt
}

// stepInGame runs the gameplay systems in their fixed order.
func (w *World) stepInGame(in Input, dt float64) {
	movePlayer(w, in, dt)
	moveEnemies(w, dt)
	syncBodies(w)
	inFlight := w.projectiles.Entities()
	fireEmitters(w, dt)
	advanceProjectiles(w, inFlight, dt)
	damagePlayer(w, dt)
	checkPlayerHealth(w)
	checkEnemyDeaths(w)
	despawnDistantEnemies(w)
	followPlayer(w)
}

// Phase returns the active phase.
func (w *World) Phase() Phase {
	return w.phase.Current()
}

// RequestPhase schedules a transition for the next frame.
func (w *World) RequestPhase(p Phase) error {
	return w.phase.Request(p)
}

// Player returns the live player entity.
func (w *World) Player() (ecs.Entity, error) {
	if !w.reg.Alive(w.player) || w.reg.PendingDespawn(w.player) || !w.players.Has(w.player) {
		return ecs.Entity{}, ErrNoActivePlayer
	}
	return w.player, nil
}

// Origin returns the window centre in world units.
func (w *World) Origin() core.Vec2 {
	return core.V2(w.cfg.Window.Width/2, w.cfg.Window.Height/2)
}

// Camera returns the camera state.
func (w *World) Camera() Camera {
	return w.camera
}

// Kills returns the number of enemies killed.
func (w *World) Kills() int {
	return w.kills
}

// Frame returns the number of completed steps.
func (w *World) Frame() uint64 {
	return w.frame
}

// Elapsed returns the simulated seconds across all steps.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}

// Registry exposes the entity registry for inspection.
func (w *World) Registry() *ecs.Registry {
	return w.reg
}

// playerPosition returns the live player's entity and position.
func (w *World) playerPosition() (ecs.Entity, core.Vec2, error) {
	e, err := w.Player()
	if err != nil {
		return ecs.Entity{}, core.Vec2{}, err
	}
	tr, ok := w.transforms.Get(e)
	if !ok {
		return ecs.Entity{}, core.Vec2{}, ErrNoActivePlayer
	}
	return e, tr.Position, nil
}

// worldPosition resolves e's position, adding its parent's for emitters.
func (w *World) worldPosition(e ecs.Entity) core.Vec2 {
	if em, ok := w.emitters.Get(e); ok {
		if parent, ok := w.reg.Parent(e); ok {
			if tr, ok := w.transforms.Get(parent); ok {
				return tr.Position.Add(em.Offset)
			}
		}
	}
	if tr, ok := w.transforms.Get(e); ok {
		return tr.Position
	}
	return core.Vec2{}
}

// live reports whether e exists and is not marked for removal.
func (w *World) live(e ecs.Entity) bool {
	return w.reg.Alive(e) && !w.reg.PendingDespawn(e)
}

func (w *World) nameOf(e ecs.Entity) string {
	if n, ok := w.names.Get(e); ok {
		return string(*n)
	}
	return e.String()
}

func (w *World) loadSprite(path string, size float64) Sprite {
	s := Sprite{Path: path, Size: size}
	if w.assets != nil {
		s.Handle = w.assets.Load(path)
	}
	return s
}

// releaseEntity runs for every flushed entity.
func (w *World) releaseEntity(e ecs.Entity) {
	if col, ok := w.colliders.Get(e); ok {
		w.space.RemoveBody(col.Body)
	}
	if e == w.player {
		w.player = ecs.Entity{}
	}
}

func (w *World) logSkip(system string, err error) {
	if errors.Is(err, ErrNoActivePlayer) {
		w.log.Debug("system skipped", "system", system, "reason", err)
		return
	}
	w.log.Error("system failed", "system", system, "err", err)
}
