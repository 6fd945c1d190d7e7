package ecs

// storage is implemented by every Store so the registry can strip a batch of
// flushed entities from all component tables at once.
type storage interface {
	removeAll(dead map[Entity]struct{})
	clear()
}

type slot struct {
	generation uint32
	alive      bool
}

// Registry owns entity lifetimes. It is not safe for concurrent use; the
// simulation drives it from a single goroutine.
type Registry struct {
	slots []slot
	free  []uint32
	live  int

	parent   map[Entity]Entity
	children map[Entity][]Entity

	pending    []Entity
	pendingSet map[Entity]struct{}

	stores    []storage
	onDespawn []func(Entity)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		parent:     make(map[Entity]Entity),
		children:   make(map[Entity][]Entity),
		pendingSet: make(map[Entity]struct{}),
	}
}

// Create allocates a new entity, reusing freed slots.
func (r *Registry) Create() Entity {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots)) //#nosec G115 -- arena never approaches 2^32 entities
		r.slots = append(r.slots, slot{})
	}

	s := &r.slots[idx]
	s.generation++
	s.alive = true
	r.live++

	return Entity{index: idx, generation: s.generation}
}

// Alive reports whether e refers to a live entity. Entities marked for
// despawn stay alive until Flush.
func (r *Registry) Alive(e Entity) bool {
	if e.IsZero() || int(e.index) >= len(r.slots) {
		return false
	}
	s := r.slots[e.index]
	return s.alive && s.generation == e.generation
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return r.live
}

// AddChild links child under parent. Despawning the parent recursively
// takes the child with it.
func (r *Registry) AddChild(parent, child Entity) {
	if !r.Alive(parent) || !r.Alive(child) || parent == child {
		return
	}
	if old, ok := r.parent[child]; ok {
		r.detach(old, child)
	}
	r.parent[child] = parent
	r.children[parent] = append(r.children[parent], child)
}

// Parent returns the parent of e, if any.
func (r *Registry) Parent(e Entity) (Entity, bool) {
	p, ok := r.parent[e]
	return p, ok
}

// Children returns a copy of e's children in attach order.
func (r *Registry) Children(e Entity) []Entity {
	kids := r.children[e]
	out := make([]Entity, len(kids))
	copy(out, kids)
	return out
}

// Despawn marks e for removal at the next Flush. Marking twice is a no-op.
func (r *Registry) Despawn(e Entity) {
	if !r.Alive(e) {
		return
	}
	if _, marked := r.pendingSet[e]; marked {
		return
	}
	r.pendingSet[e] = struct{}{}
	r.pending = append(r.pending, e)
}

// DespawnRecursive marks e and all of its descendants for removal.
func (r *Registry) DespawnRecursive(e Entity) {
	if !r.Alive(e) {
		return
	}
	r.Despawn(e)
	for _, child := range r.children[e] {
		r.DespawnRecursive(child)
	}
}

// PendingDespawn reports whether e is marked for removal.
func (r *Registry) PendingDespawn(e Entity) bool {
	_, ok := r.pendingSet[e]
	return ok
}

// OnDespawn registers fn to run for every entity removed by Flush, before
// its components are dropped.
func (r *Registry) OnDespawn(fn func(Entity)) {
	r.onDespawn = append(r.onDespawn, fn)
}

// Flush removes every marked entity in marking order and returns them.
// Children of a flushed entity that were not themselves marked are
// orphaned, not removed.
func (r *Registry) Flush() []Entity {
	if len(r.pending) == 0 {
		return nil
	}

	removed := r.pending
	dead := r.pendingSet
	r.pending = nil
	r.pendingSet = make(map[Entity]struct{})

	for _, e := range removed {
		for _, fn := range r.onDespawn {
			fn(e)
		}
	}

	for _, st := range r.stores {
		st.removeAll(dead)
	}

	for _, e := range removed {
		if p, ok := r.parent[e]; ok {
			r.detach(p, e)
		}
		for _, child := range r.children[e] {
			delete(r.parent, child)
		}
		delete(r.children, e)

		r.slots[e.index].alive = false
		r.free = append(r.free, e.index)
		r.live--
	}

	return removed
}

// Clear drops every entity and component immediately. Outstanding handles
// stop resolving because each slot's generation is preserved and bumped on
// reuse.
func (r *Registry) Clear() {
	for i := range r.slots {
		if r.slots[i].alive {
			r.slots[i].alive = false
			r.free = append(r.free, uint32(i)) //#nosec G115 -- bounded by arena size
		}
	}
	r.live = 0
	r.parent = make(map[Entity]Entity)
	r.children = make(map[Entity][]Entity)
	r.pending = nil
	r.pendingSet = make(map[Entity]struct{})
	for _, st := range r.stores {
		st.clear()
	}
}

func (r *Registry) detach(parent, child Entity) {
	kids := r.children[parent]
	for i, k := range kids {
		if k == child {
			r.children[parent] = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	delete(r.parent, child)
}

func (r *Registry) register(st storage) {
	r.stores = append(r.stores, st)
}
