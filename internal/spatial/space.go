package spatial

import (
	"math"
	"slices"

	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
)

// DefaultCellSize is the broad-phase grid cell edge in world units.
const DefaultCellSize = 128.0

// BodyID identifies a body inside a Space. Zero is never issued.
type BodyID uint32

// Filter narrows an overlap query. The zero Filter accepts everything.
type Filter struct {
	Exclude ecs.Entity             // owner to skip, typically the querying entity
	Include func(ecs.Entity) bool // optional predicate on the owner
}

func (f Filter) accepts(owner ecs.Entity) bool {
	if !f.Exclude.IsZero() && owner == f.Exclude {
		return false
	}
	return f.Include == nil || f.Include(owner)
}

type cellKey struct {
	x, y int
}

type body struct {
	id    BodyID
	owner ecs.Entity
	shape Shape
	pos   core.Vec2
	cells []cellKey
}

// Space holds bodies and the grid that indexes them.
// It is not safe for concurrent use.
type Space struct {
	cellSize float64
	nextID   BodyID
	bodies   map[BodyID]*body
	grid     map[cellKey][]BodyID
}

// NewSpace creates an empty space. A non-positive cellSize selects
// DefaultCellSize.
func NewSpace(cellSize float64) *Space {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Space{
		cellSize: cellSize,
		bodies:   make(map[BodyID]*body),
		grid:     make(map[cellKey][]BodyID),
	}
}

// CreateBody adds a body owned by owner at pos and returns its id. Bodies
// move only through SetPosition.
func (s *Space) CreateBody(owner ecs.Entity, shape Shape, pos core.Vec2) BodyID {
	s.nextID++
	b := &body{
		id:    s.nextID,
		owner: owner,
		shape: shape,
		pos:   pos,
	}
	s.bodies[b.id] = b
	s.index(b)
	return b.id
}

// RemoveBody deletes a body. Unknown ids are ignored.
func (s *Space) RemoveBody(id BodyID) {
	b, ok := s.bodies[id]
	if !ok {
		return
	}
	s.unindex(b)
	delete(s.bodies, id)
}

// SetPosition teleports a body.
func (s *Space) SetPosition(id BodyID, pos core.Vec2) {
	b, ok := s.bodies[id]
	if !ok || b.pos == pos {
		return
	}
	b.pos = pos
	s.reindex(b)
}

// Position returns a body's position.
func (s *Space) Position(id BodyID) (core.Vec2, bool) {
	b, ok := s.bodies[id]
	if !ok {
		return core.Vec2{}, false
	}
	return b.pos, true
}

// Len returns the number of bodies.
func (s *Space) Len() int {
	return len(s.bodies)
}

// QueryOverlaps returns the owners of every body whose shape intersects
// shape placed at pos, in body creation order. Each owner appears once.
func (s *Space) QueryOverlaps(shape Shape, pos core.Vec2, filter Filter) []ecs.Entity {
	candidates := make(map[BodyID]struct{})
	for _, k := range s.cellsFor(shape, pos) {
		for _, id := range s.grid[k] {
			candidates[id] = struct{}{}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	ids := make([]BodyID, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var out []ecs.Entity
	seen := make(map[ecs.Entity]struct{})
	for _, id := range ids {
		b := s.bodies[id]
		if !filter.accepts(b.owner) {
			continue
		}
		if _, dup := seen[b.owner]; dup {
			continue
		}
		if Overlaps(shape, pos, b.shape, b.pos) {
			seen[b.owner] = struct{}{}
			out = append(out, b.owner)
		}
	}
	return out
}

func (s *Space) cellsFor(shape Shape, pos core.Vec2) []cellKey {
	hx, hy := shape.halfExtents()
	x0 := int(math.Floor((pos.X - hx) / s.cellSize))
	x1 := int(math.Floor((pos.X + hx) / s.cellSize))
	y0 := int(math.Floor((pos.Y - hy) / s.cellSize))
	y1 := int(math.Floor((pos.Y + hy) / s.cellSize))

	keys := make([]cellKey, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			keys = append(keys, cellKey{x: x, y: y})
		}
	}
	return keys
}

func (s *Space) index(b *body) {
	b.cells = s.cellsFor(b.shape, b.pos)
	for _, k := range b.cells {
		s.grid[k] = append(s.grid[k], b.id)
	}
}

func (s *Space) unindex(b *body) {
	for _, k := range b.cells {
		ids := s.grid[k]
		for i, id := range ids {
			if id == b.id {
				ids[i] = ids[len(ids)-1]
				ids = ids[:len(ids)-1]
				break
			}
		}
		if len(ids) == 0 {
			delete(s.grid, k)
		} else {
			s.grid[k] = ids
		}
	}
	b.cells = nil
}

func (s *Space) reindex(b *body) {
	s.unindex(b)
	s.index(b)
}
