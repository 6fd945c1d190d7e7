package sim

import (
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
)

// inputDirection sums the held directions. Opposites cancel.
func inputDirection(in Input) core.Vec2 {
	var d core.Vec2
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y++
	}
	if in.Down {
		d.Y--
	}
	return d.Normalize()
}

// movePlayer translates the player along the held direction.
func movePlayer(w *World, in Input, dt float64) {
	e, err := w.Player()
	if err != nil {
		w.logSkip("player movement", err)
		return
	}
	dir := inputDirection(in)
	if dir.IsZero() {
		return
	}
	p, _ := w.players.Get(e)
	tr, ok := w.transforms.Get(e)
	if !ok {
		return
	}
	tr.Position = tr.Position.Add(dir.Scale(p.Speed * dt))
}

// moveEnemies steps every enemy straight toward the player. An enemy on top
// of the player has no direction and stays put.
func moveEnemies(w *World, dt float64) {
	_, target, err := w.playerPosition()
	if err != nil {
		w.logSkip("enemy movement", err)
		return
	}
	speed := w.cfg.Enemy.Speed
	w.enemies.Each(func(e ecs.Entity, _ *Enemy) {
		tr, ok := w.transforms.Get(e)
		if !ok {
			return
		}
		away := tr.Position.Sub(target).Normalize()
		tr.Position = tr.Position.Sub(away.Scale(speed * dt))
	})
}

// syncBodies pushes transforms into the spatial service so queries this
// frame see the moved positions.
func syncBodies(w *World) {
	w.colliders.Each(func(e ecs.Entity, c *Collider) {
		if tr, ok := w.transforms.Get(e); ok {
			w.space.SetPosition(c.Body, tr.Position)
		}
	})
}
