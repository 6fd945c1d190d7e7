// Package ecs is the entity registry: an arena of generation-checked handles
// with typed component stores and deferred, recursive destruction.
package ecs

import "fmt"

// Entity is a handle to a registry slot. A handle stays valid until the
// entity is flushed; after that the slot's generation moves on and the old
// handle no longer resolves. The zero Entity is never alive.
type Entity struct {
	index      uint32
	generation uint32
}

// IsZero reports whether e is the zero handle.
func (e Entity) IsZero() bool {
	return e.generation == 0
}

// Index returns the arena slot of the handle.
func (e Entity) Index() uint32 {
	return e.index
}

// Generation returns the generation the handle was issued with.
func (e Entity) Generation() uint32 {
	return e.generation
}

func (e Entity) String() string {
	if e.IsZero() {
		return "entity(nil)"
	}
	return fmt.Sprintf("%dv%d", e.index, e.generation)
}
