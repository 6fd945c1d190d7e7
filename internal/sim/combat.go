package sim

import (
	"math"

	"github.com/vovakirdan/reblhell/internal/ecs"
	"github.com/vovakirdan/reblhell/internal/spatial"
)

// hitProjectile applies a projectile's damage to enemy and consumes the
// projectile in the same step.
func hitProjectile(w *World, projectile ecs.Entity, damage float64, enemy ecs.Entity) {
	en, ok := w.enemies.Get(enemy)
	if !ok {
		return
	}
	en.Health -= damage
	w.reg.DespawnRecursive(projectile)
	w.log.Debug("Dealt damage to the enemy", "damage", damage, "enemy", enemy, "health", en.Health)
}

// damagePlayer applies contact damage from every enemy touching the player.
// Damage from several enemies compounds within the frame.
func damagePlayer(w *World, dt float64) {
	pe, err := w.Player()
	if err != nil {
		w.logSkip("player damage", err)
		return
	}
	p, _ := w.players.Get(pe)
	isPlayer := func(o ecs.Entity) bool { return o == pe }

	w.enemies.Each(func(e ecs.Entity, en *Enemy) {
		if p.Health <= 0 || w.reg.PendingDespawn(e) {
			return
		}
		col, ok := w.colliders.Get(e)
		if !ok {
			return
		}
		tr, ok := w.transforms.Get(e)
		if !ok {
			return
		}
		hits := w.space.QueryOverlaps(col.Shape, tr.Position, spatial.Filter{Exclude: e, Include: isPlayer})
		if len(hits) == 0 {
			return
		}
		p.Health = math.Max(0, p.Health-en.DamagePerSecond*dt)
		w.log.Debug("player hit", "enemy", e, "health", p.Health)
	})
}

// checkPlayerHealth reports the player's death once and ends the game when
// the rules ask for it.
func checkPlayerHealth(w *World) {
	pe, err := w.Player()
	if err != nil {
		w.logSkip("player health", err)
		return
	}
	p, _ := w.players.Get(pe)
	if p.Health > 0 || w.playerDead {
		return
	}
	w.playerDead = true
	w.log.Warn("The player is dead", "frame", w.frame, "kills", w.kills)

	if !w.cfg.Rules.GameOverOnDeath {
		return
	}
	if err := w.phase.Request(PhaseGameOver); err != nil {
		w.log.Error("request game over", "err", err)
	}
}

// checkEnemyDeaths removes enemies whose health ran out.
func checkEnemyDeaths(w *World) {
	w.enemies.Each(func(e ecs.Entity, en *Enemy) {
		if en.Health > 0 || w.reg.PendingDespawn(e) {
			return
		}
		w.reg.DespawnRecursive(e)
		w.kills++
		w.log.Debug("enemy died", "enemy", e, "kills", w.kills)
	})
}

// despawnDistantEnemies drops enemies that strayed too far from the player.
// A zero distance disables it.
func despawnDistantEnemies(w *World) {
	limit := w.cfg.Rules.DespawnDistance
	if limit <= 0 {
		return
	}
	_, center, err := w.playerPosition()
	if err != nil {
		w.logSkip("despawn distant", err)
		return
	}
	w.enemies.Each(func(e ecs.Entity, _ *Enemy) {
		if w.reg.PendingDespawn(e) {
			return
		}
		tr, ok := w.transforms.Get(e)
		if !ok || tr.Position.Distance(center) <= limit {
			return
		}
		w.reg.DespawnRecursive(e)
		w.log.Debug("enemy despawned", "enemy", e, "distance", tr.Position.Distance(center))
	})
}
