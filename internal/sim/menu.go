package sim

import (
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
)

// UpdateButtonInteraction derives each button's interaction from the pointer
// and the confirm input. A pressed button starts the game.
func UpdateButtonInteraction(w *World, in Input) {
	w.buttons.Each(func(e ecs.Entity, b *MenuButton) {
		next := buttonInteraction(b.Bounds, in)
		if next != b.Interaction {
			w.log.Debug("button interaction", "button", w.nameOf(e), "state", next)
			b.Interaction = next
		}
		if next != InteractionPressed {
			return
		}
		if err := w.phase.Request(PhaseInGame); err != nil {
			w.log.Error("start game", "err", err)
		}
	})
}

func buttonInteraction(bounds core.Rect, in Input) Interaction {
	over := in.Pointer != nil && bounds.Contains(in.Pointer.X, in.Pointer.Y)
	switch {
	case in.Confirm, over && in.Pointer.Down:
		return InteractionPressed
	case over:
		return InteractionHovered
	default:
		return InteractionIdle
	}
}

// SetButtonBounds lays out every menu button at r.
func (w *World) SetButtonBounds(r core.Rect) {
	w.buttons.Each(func(_ ecs.Entity, b *MenuButton) {
		b.Bounds = r
	})
}
