package sim

import (
	"github.com/vovakirdan/reblhell/internal/assets"
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/spatial"
)

// Transform is a world-space position. World y grows upward.
type Transform struct {
	Position core.Vec2
}

// Player holds the controllable entity's stats. Size is the diameter.
type Player struct {
	Health    float64
	MaxHealth float64
	Speed     float64
	Size      float64
}

// Enemy chases the player and damages it on contact.
type Enemy struct {
	Direction       core.Vec2
	Health          float64
	DamagePerSecond float64
}

// Emitter fires a projectile at the nearest enemy every time its timer
// completes. Offset is relative to the parent's position.
type Emitter struct {
	Timer  Timer
	Offset core.Vec2
}

// Projectile travels in a straight line until it hits an enemy or its
// lifetime runs out.
type Projectile struct {
	Direction core.Vec2
	Speed     float64
	Damage    float64
	Lifetime  Timer
}

// Collider ties an entity to its body in the spatial service.
type Collider struct {
	Shape spatial.Shape
	Body  spatial.BodyID
}

// Sprite references a visual asset. Size is the drawn diameter in world
// units.
type Sprite struct {
	Path   string
	Handle assets.Handle
	Size   float64
}

// Interaction is the pointer state of a menu button.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionHovered
	InteractionPressed
)

func (i Interaction) String() string {
	switch i {
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	default:
		return "idle"
	}
}

// Color returns the button fill for the interaction.
func (i Interaction) Color() core.Color {
	switch i {
	case InteractionHovered:
		return core.ColorWhite
	case InteractionPressed:
		return core.ColorGreen
	default:
		return core.ColorGray
	}
}

// MenuButton is a clickable widget. Bounds are in screen cells, the same
// space as Input.Pointer.
type MenuButton struct {
	Label       string
	Bounds      core.Rect
	Interaction Interaction
}

// Name is a debug label used in log lines.
type Name string

// Camera follows the player. It is derived state and never feeds back into
// the simulation.
type Camera struct {
	Position core.Vec2
}

// Input is the per-frame input snapshot.
type Input struct {
	Left, Right, Up, Down bool
	Confirm               bool
	Pointer               *core.Pointer
}
