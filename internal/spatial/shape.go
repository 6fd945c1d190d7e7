// Package spatial is the collision service consumed by the simulation. It
// owns one body per collidable entity and answers "which entities overlap
// this shape" queries through a uniform hash grid. Bodies are placed by
// their owners; there is no contact resolution.
package spatial

import (
	"math"

	"github.com/vovakirdan/reblhell/internal/core"
)

// ShapeKind selects the collision primitive.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is a collision primitive centred on its body's position.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // circle radius
	HalfX  float64 // box half extents
	HalfY  float64
}

// Circle returns a circle (ball) shape.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Box returns an axis-aligned box (cuboid) shape from its half extents.
func Box(halfX, halfY float64) Shape {
	return Shape{Kind: ShapeBox, HalfX: halfX, HalfY: halfY}
}

// halfExtents returns the half size of the shape's bounding box.
func (s Shape) halfExtents() (float64, float64) {
	if s.Kind == ShapeCircle {
		return s.Radius, s.Radius
	}
	return s.HalfX, s.HalfY
}

// Overlaps reports whether shape a at pa intersects shape b at pb.
// Touching shapes count as overlapping.
func Overlaps(a Shape, pa core.Vec2, b Shape, pb core.Vec2) bool {
	switch {
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		r := a.Radius + b.Radius
		d := pa.Sub(pb)
		return d.X*d.X+d.Y*d.Y <= r*r
	case a.Kind == ShapeBox && b.Kind == ShapeBox:
		return math.Abs(pa.X-pb.X) <= a.HalfX+b.HalfX &&
			math.Abs(pa.Y-pb.Y) <= a.HalfY+b.HalfY
	case a.Kind == ShapeCircle:
		return circleBox(a, pa, b, pb)
	default:
		return circleBox(b, pb, a, pa)
	}
}

func circleBox(c Shape, pc core.Vec2, b Shape, pb core.Vec2) bool {
	nearest := core.V2(
		core.ClampF(pc.X, pb.X-b.HalfX, pb.X+b.HalfX),
		core.ClampF(pc.Y, pb.Y-b.HalfY, pb.Y+b.HalfY),
	)
	d := pc.Sub(nearest)
	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}
