package ecs

import "testing"

func TestRegistryCreateAlive(t *testing.T) {
	r := NewRegistry()

	a := r.Create()
	b := r.Create()

	if a == b {
		t.Fatal("Create should return distinct handles")
	}
	if !r.Alive(a) || !r.Alive(b) {
		t.Error("Fresh entities should be alive")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", r.Len())
	}
	if r.Alive(Entity{}) {
		t.Error("Zero entity should never be alive")
	}
}

func TestRegistryDespawnIsDeferred(t *testing.T) {
	r := NewRegistry()
	e := r.Create()

	r.Despawn(e)
	if !r.Alive(e) {
		t.Fatal("Despawn should not remove before Flush")
	}
	if !r.PendingDespawn(e) {
		t.Error("Entity should be pending after Despawn")
	}

	removed := r.Flush()
	if len(removed) != 1 || removed[0] != e {
		t.Errorf("Flush() = %v, expected [%v]", removed, e)
	}
	if r.Alive(e) {
		t.Error("Entity should be dead after Flush")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", r.Len())
	}
}

func TestRegistryGenerationCheck(t *testing.T) {
	r := NewRegistry()
	old := r.Create()
	r.Despawn(old)
	r.Flush()

	reused := r.Create()
	if reused.Index() != old.Index() {
		t.Fatalf("Expected slot reuse, got index %d vs %d", reused.Index(), old.Index())
	}
	if reused.Generation() == old.Generation() {
		t.Error("Reused slot should carry a new generation")
	}
	if r.Alive(old) {
		t.Error("Stale handle must not resolve after slot reuse")
	}
	if !r.Alive(reused) {
		t.Error("New handle should be alive")
	}
}

func TestRegistryDespawnRecursive(t *testing.T) {
	r := NewRegistry()
	parent := r.Create()
	child := r.Create()
	grandchild := r.Create()
	bystander := r.Create()

	r.AddChild(parent, child)
	r.AddChild(child, grandchild)

	r.DespawnRecursive(parent)
	removed := r.Flush()

	if len(removed) != 3 {
		t.Fatalf("Flush() removed %d entities, expected 3", len(removed))
	}
	for _, e := range []Entity{parent, child, grandchild} {
		if r.Alive(e) {
			t.Errorf("%v should be removed with its parent", e)
		}
	}
	if !r.Alive(bystander) {
		t.Error("Unrelated entity should survive")
	}
}

func TestRegistryNonRecursiveOrphansChildren(t *testing.T) {
	r := NewRegistry()
	parent := r.Create()
	child := r.Create()
	r.AddChild(parent, child)

	r.Despawn(parent)
	r.Flush()

	if !r.Alive(child) {
		t.Fatal("Plain Despawn should not remove children")
	}
	if _, ok := r.Parent(child); ok {
		t.Error("Child should be orphaned after parent flush")
	}
}

func TestRegistryDoubleDespawn(t *testing.T) {
	r := NewRegistry()
	e := r.Create()

	r.Despawn(e)
	r.Despawn(e)
	r.DespawnRecursive(e)

	if removed := r.Flush(); len(removed) != 1 {
		t.Errorf("Entity marked three times should be removed once, got %d", len(removed))
	}
	if removed := r.Flush(); removed != nil {
		t.Errorf("Second Flush should remove nothing, got %v", removed)
	}
}

func TestRegistryOnDespawnHook(t *testing.T) {
	r := NewRegistry()
	names := NewStore[string](r)
	e := r.Create()
	names.Insert(e, "close shot")

	var seen []string
	r.OnDespawn(func(dead Entity) {
		// Components are still readable inside the hook
		if n, ok := names.Get(dead); ok {
			seen = append(seen, *n)
		}
	})

	r.Despawn(e)
	r.Flush()

	if len(seen) != 1 || seen[0] != "close shot" {
		t.Errorf("OnDespawn saw %v, expected [close shot]", seen)
	}
	if names.Has(e) {
		t.Error("Component should be dropped after Flush")
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	hp := NewStore[float64](r)
	e := r.Create()
	hp.Insert(e, 10)
	r.Despawn(e)

	r.Clear()

	if r.Alive(e) || r.Len() != 0 || hp.Len() != 0 {
		t.Error("Clear should drop all entities and components")
	}
	if removed := r.Flush(); removed != nil {
		t.Error("Clear should drop pending despawns")
	}
	if next := r.Create(); next == e {
		t.Error("Handle issued after Clear must differ from the old one")
	}
}
