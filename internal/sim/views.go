package sim

import (
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
)

// PlayerView is a read-only copy of the player's state.
type PlayerView struct {
	Entity   ecs.Entity
	Position core.Vec2
	Player
}

// EnemyView is a read-only copy of one enemy.
type EnemyView struct {
	Entity   ecs.Entity
	Position core.Vec2
	Enemy
}

// ProjectileView is a read-only copy of one projectile.
type ProjectileView struct {
	Entity    ecs.Entity
	Position  core.Vec2
	Direction core.Vec2
	Remaining float64
}

// Drawable is anything with a sprite and a position, in creation order.
type Drawable struct {
	Entity   ecs.Entity
	Position core.Vec2
	Sprite   Sprite
}

// PlayerState returns the live player.
func (w *World) PlayerState() (PlayerView, error) {
	e, pos, err := w.playerPosition()
	if err != nil {
		return PlayerView{}, err
	}
	p, _ := w.players.Get(e)
	return PlayerView{Entity: e, Position: pos, Player: *p}, nil
}

// Enemies returns every enemy in creation order.
func (w *World) Enemies() []EnemyView {
	out := make([]EnemyView, 0, w.enemies.Len())
	w.enemies.Each(func(e ecs.Entity, en *Enemy) {
		v := EnemyView{Entity: e, Enemy: *en}
		if tr, ok := w.transforms.Get(e); ok {
			v.Position = tr.Position
		}
		out = append(out, v)
	})
	return out
}

// Projectiles returns every projectile in creation order.
func (w *World) Projectiles() []ProjectileView {
	out := make([]ProjectileView, 0, w.projectiles.Len())
	w.projectiles.Each(func(e ecs.Entity, p *Projectile) {
		v := ProjectileView{Entity: e, Direction: p.Direction, Remaining: p.Lifetime.Remaining()}
		if tr, ok := w.transforms.Get(e); ok {
			v.Position = tr.Position
		}
		out = append(out, v)
	})
	return out
}

// Drawables returns every sprite-carrying entity in creation order.
func (w *World) Drawables() []Drawable {
	out := make([]Drawable, 0, w.sprites.Len())
	w.sprites.Each(func(e ecs.Entity, s *Sprite) {
		tr, ok := w.transforms.Get(e)
		if !ok {
			return
		}
		out = append(out, Drawable{Entity: e, Position: tr.Position, Sprite: *s})
	})
	return out
}

// Buttons returns the menu buttons.
func (w *World) Buttons() []MenuButton {
	out := make([]MenuButton, 0, w.buttons.Len())
	w.buttons.Each(func(_ ecs.Entity, b *MenuButton) {
		out = append(out, *b)
	})
	return out
}

// Emitters returns the emitter timers keyed by their entity.
func (w *World) Emitters() map[ecs.Entity]Timer {
	out := make(map[ecs.Entity]Timer, w.emitters.Len())
	w.emitters.Each(func(e ecs.Entity, em *Emitter) {
		out[e] = em.Timer
	})
	return out
}
