package sim

import (
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
	"github.com/vovakirdan/reblhell/internal/spatial"
)

// fireEmitters ticks every emitter and fires once per completed cycle at the
// nearest enemy. With no enemy in play the shot is dropped but the timer
// still advances.
func fireEmitters(w *World, dt float64) {
	for _, e := range w.emitters.Entities() {
		if !w.live(e) {
			continue
		}
		em, _ := w.emitters.Get(e)
		shots := em.Timer.Tick(dt)
		if shots == 0 {
			continue
		}

		origin := w.worldPosition(e)
		for i, n := 0, shots; i < n; i++ {
			target, ok := nearestEnemy(w, origin)
			if !ok {
				break
			}
			dir := target.Sub(origin).Normalize()
			p := spawnProjectile(w, origin, dir)
			w.log.Debug("fired", "emitter", w.nameOf(e), "projectile", p, "dx", dir.X, "dy", dir.Y)
		}
	}
}

// nearestEnemy returns the position of the live enemy closest to from.
// Ties go to the earliest created.
func nearestEnemy(w *World, from core.Vec2) (core.Vec2, bool) {
	var (
		best  core.Vec2
		bestD float64
		found bool
	)
	for _, e := range w.enemies.Entities() {
		if !w.live(e) {
			continue
		}
		tr, ok := w.transforms.Get(e)
		if !ok {
			continue
		}
		d := from.Distance(tr.Position)
		if !found || d < bestD {
			best, bestD, found = tr.Position, d, true
		}
	}
	return best, found
}

// advanceProjectiles ages, moves and resolves the given projectiles. Shots
// fired this frame are not in the list, so they start moving next frame
// with their full lifetime. A projectile that hits is consumed by its
// first enemy.
func advanceProjectiles(w *World, projectiles []ecs.Entity, dt float64) {
	for _, e := range projectiles {
		if !w.live(e) {
			continue
		}
		pr, _ := w.projectiles.Get(e)
		if pr.Lifetime.Tick(dt) > 0 || pr.Lifetime.Finished() {
			w.reg.DespawnRecursive(e)
			continue
		}

		tr, ok := w.transforms.Get(e)
		if !ok {
			continue
		}
		tr.Position = tr.Position.Add(pr.Direction.Scale(pr.Speed * dt))

		col, ok := w.colliders.Get(e)
		if !ok {
			continue
		}
		w.space.SetPosition(col.Body, tr.Position)

		hits := w.space.QueryOverlaps(col.Shape, tr.Position, spatial.Filter{
			Exclude: e,
			Include: w.isTargetEnemy,
		})
		if len(hits) == 0 {
			continue
		}
		hitProjectile(w, e, pr.Damage, hits[0])
	}
}

func (w *World) isTargetEnemy(e ecs.Entity) bool {
	return w.enemies.Has(e) && w.live(e)
}
