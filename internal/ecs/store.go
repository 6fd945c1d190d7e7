package ecs

// Store is a typed component table keyed by entity handle. Values live in a
// dense slice kept in insertion order, so iteration follows creation order.
type Store[T any] struct {
	reg      *Registry
	dense    []T
	entities []Entity
	sparse   map[Entity]int
}

// NewStore creates a component store bound to reg. Flushed entities are
// removed from it automatically.
func NewStore[T any](reg *Registry) *Store[T] {
	s := &Store[T]{
		reg:    reg,
		sparse: make(map[Entity]int),
	}
	reg.register(s)
	return s
}

// Insert sets the component for e, replacing any previous value.
// Dead handles are ignored.
func (s *Store[T]) Insert(e Entity, v T) {
	if !s.reg.Alive(e) {
		return
	}
	if i, ok := s.sparse[e]; ok {
		s.dense[i] = v
		return
	}
	s.sparse[e] = len(s.dense)
	s.dense = append(s.dense, v)
	s.entities = append(s.entities, e)
}

// Get returns a pointer to e's component. The pointer is valid until the
// next Insert into this store or the next Flush.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	i, ok := s.sparse[e]
	if !ok {
		return nil, false
	}
	return &s.dense[i], true
}

// Has reports whether e has this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.sparse[e]
	return ok
}

// Len returns the number of components stored.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Entities returns a snapshot of the entities holding this component, in
// insertion order.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each calls fn for every component in insertion order. fn must not insert
// into this store.
func (s *Store[T]) Each(fn func(e Entity, v *T)) {
	for i := range s.dense {
		fn(s.entities[i], &s.dense[i])
	}
}

func (s *Store[T]) removeAll(dead map[Entity]struct{}) {
	n := 0
	for i, e := range s.entities {
		if _, gone := dead[e]; gone {
			delete(s.sparse, e)
			continue
		}
		s.entities[n] = e
		s.dense[n] = s.dense[i]
		s.sparse[e] = n
		n++
	}
	var zero T
	for i := n; i < len(s.dense); i++ {
		s.dense[i] = zero
	}
	s.dense = s.dense[:n]
	s.entities = s.entities[:n]
}

func (s *Store[T]) clear() {
	s.dense = nil
	s.entities = nil
	s.sparse = make(map[Entity]int)
}
