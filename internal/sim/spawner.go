package sim

import (
	"math"

	"github.com/vovakirdan/reblhell/internal/assets"
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
	"github.com/vovakirdan/reblhell/internal/spatial"
)

// Debug names.
const (
	PlayerName     Name = "Player"
	EnemyName      Name = "Enemy"
	EmitterName    Name = "Close Shot"
	ProjectileName Name = "Close Shot Bullet"
	PlayButtonName Name = "Play Button"
)

// SafeRadius returns the ring radius at which count bodies of the given
// diameter fit around the circumference, each taking packing diameters of arc.
func SafeRadius(count int, diameter, packing float64) float64 {
	return float64(count) * diameter * packing / (2 * math.Pi)
}

// SpawnPlayer creates the player at origin with its attack emitter as a
// child.
func SpawnPlayer(w *World, origin core.Vec2) (ecs.Entity, error) {
	if _, err := w.Player(); err == nil {
		return ecs.Entity{}, ErrPlayerExists
	}

	pc := w.cfg.Player
	e := w.reg.Create()
	w.transforms.Insert(e, Transform{Position: origin})
	w.players.Insert(e, Player{
		Health:    pc.Health,
		MaxHealth: pc.Health,
		Speed:     pc.Speed,
		Size:      pc.Size,
	})
	shape := spatial.Circle(pc.Size / 2)
	body := w.space.CreateBody(e, shape, origin)
	w.colliders.Insert(e, Collider{Shape: shape, Body: body})
	w.sprites.Insert(e, w.loadSprite(assets.PlayerSprite, pc.Size))
	w.names.Insert(e, PlayerName)

	emitter := w.reg.Create()
	w.emitters.Insert(emitter, Emitter{Timer: NewTimer(w.cfg.Attack.Period, TimerRepeating)})
	w.names.Insert(emitter, EmitterName)
	w.reg.AddChild(e, emitter)

	w.player = e
	w.playerDead = false
	w.log.Info("player spawned", "entity", e, "x", origin.X, "y", origin.Y, "health", pc.Health)
	return e, nil
}

// SpawnEnemyRing places count enemies on a jittered ring around center.
// Each enemy draws radius, angle, then facing x and y from the world RNG.
func SpawnEnemyRing(w *World, center core.Vec2, count int, baseRadius, jitter float64) []ecs.Entity {
	out := make([]ecs.Entity, 0, max(count, 0))
	for i, n := 0, max(count, 0); i < n; i++ {
		r := baseRadius + w.rng.Float64()*jitter
		theta := w.rng.Float64() * 2 * math.Pi
		facing := core.V2(w.rng.Float64(), w.rng.Float64()).Normalize()

		pos := center.Add(core.FromAngle(theta).Scale(r))
		out = append(out, spawnEnemy(w, pos, facing))
	}
	w.log.Debug("enemy ring spawned", "count", len(out), "radius", baseRadius, "jitter", jitter)
	return out
}

func spawnEnemy(w *World, pos, facing core.Vec2) ecs.Entity {
	ec := w.cfg.Enemy
	e := w.reg.Create()
	w.transforms.Insert(e, Transform{Position: pos})
	w.enemies.Insert(e, Enemy{
		Direction:       facing,
		Health:          ec.Health,
		DamagePerSecond: ec.DamagePerSecond,
	})
	shape := spatial.Circle(ec.Size / 2)
	body := w.space.CreateBody(e, shape, pos)
	w.colliders.Insert(e, Collider{Shape: shape, Body: body})
	w.sprites.Insert(e, w.loadSprite(assets.EnemySprite, ec.Size))
	w.names.Insert(e, EnemyName)
	return e
}

func spawnProjectile(w *World, pos, dir core.Vec2) ecs.Entity {
	pc := w.cfg.Projectile
	e := w.reg.Create()
	w.transforms.Insert(e, Transform{Position: pos})
	w.projectiles.Insert(e, Projectile{
		Direction: dir,
		Speed:     pc.Speed,
		Damage:    pc.Damage,
		Lifetime:  NewTimer(pc.Lifetime, TimerOnce),
	})
	shape := spatial.Box(pc.HalfExtent, pc.HalfExtent)
	body := w.space.CreateBody(e, shape, pos)
	w.colliders.Insert(e, Collider{Shape: shape, Body: body})
	w.sprites.Insert(e, w.loadSprite(assets.ProjectileSprite, 2*pc.HalfExtent))
	w.names.Insert(e, ProjectileName)
	return e
}

// spawnMenu creates the play button. Its bounds are laid out by the
// front-end through SetButtonBounds.
func spawnMenu(w *World) {
	e := w.reg.Create()
	w.buttons.Insert(e, MenuButton{Label: "Play"})
	w.names.Insert(e, PlayButtonName)
}

func despawnMenu(w *World) {
	for _, e := range w.buttons.Entities() {
		w.reg.DespawnRecursive(e)
	}
}

func spawnPlayerAtOrigin(w *World) {
	if _, err := SpawnPlayer(w, w.Origin()); err != nil {
		w.log.Error("spawn player", "err", err)
	}
}

func spawnInitialEnemies(w *World) {
	_, center, err := w.playerPosition()
	if err != nil {
		w.logSkip("spawn enemies", err)
		return
	}
	sc := w.cfg.Spawn
	base := SafeRadius(sc.Count, w.cfg.Enemy.Size, sc.Packing)
	SpawnEnemyRing(w, center, sc.Count, base, sc.Jitter)
}

func despawnGameplay(w *World) {
	if e, err := w.Player(); err == nil {
		w.reg.DespawnRecursive(e)
	}
	for _, e := range w.enemies.Entities() {
		w.reg.DespawnRecursive(e)
	}
	for _, e := range w.projectiles.Entities() {
		w.reg.DespawnRecursive(e)
	}
}
