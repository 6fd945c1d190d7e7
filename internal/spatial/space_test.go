package spatial

import (
	"testing"

	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Shape
		pa       core.Vec2
		b        Shape
		pb       core.Vec2
		expected bool
	}{
		{"circles overlapping", Circle(32), core.V2(0, 0), Circle(32), core.V2(50, 0), true},
		{"circles touching", Circle(32), core.V2(0, 0), Circle(32), core.V2(64, 0), true},
		{"circles apart", Circle(32), core.V2(0, 0), Circle(32), core.V2(65, 0), false},
		{"boxes overlapping", Box(1, 1), core.V2(0, 0), Box(1, 1), core.V2(1.5, 1.5), true},
		{"boxes apart", Box(1, 1), core.V2(0, 0), Box(1, 1), core.V2(3, 0), false},
		{"small box inside circle", Box(0.2, 0.2), core.V2(10, 10), Circle(32), core.V2(0, 0), true},
		{"box near circle corner", Box(1, 1), core.V2(22, 22), Circle(32), core.V2(0, 0), true},
		{"box outside circle diagonal", Box(1, 1), core.V2(30, 30), Circle(32), core.V2(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.pa, tc.b, tc.pb); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.pb, tc.a, tc.pa); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func newOwners(n int) (*ecs.Registry, []ecs.Entity) {
	r := ecs.NewRegistry()
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = r.Create()
	}
	return r, out
}

func TestQueryOverlapsCreationOrder(t *testing.T) {
	_, owners := newOwners(3)
	s := NewSpace(64)

	// Created in order 0, 1, 2 but spread across cells
	s.CreateBody(owners[0], Circle(32), core.V2(200, 0))
	s.CreateBody(owners[1], Circle(32), core.V2(-10, 0))
	s.CreateBody(owners[2], Circle(32), core.V2(100, 0))

	got := s.QueryOverlaps(Circle(150), core.V2(100, 0), Filter{})
	if len(got) != 3 {
		t.Fatalf("QueryOverlaps() returned %d owners, expected 3", len(got))
	}
	for i, e := range got {
		if e != owners[i] {
			t.Errorf("Result %d = %v, expected %v (creation order)", i, e, owners[i])
		}
	}
}

func TestQueryOverlapsFilter(t *testing.T) {
	_, owners := newOwners(3)
	s := NewSpace(0)
	for _, o := range owners {
		s.CreateBody(o, Circle(10), core.V2(0, 0))
	}

	got := s.QueryOverlaps(Circle(10), core.V2(0, 0), Filter{Exclude: owners[0]})
	if len(got) != 2 || got[0] != owners[1] {
		t.Errorf("Exclude filter: got %v", got)
	}

	only := owners[2]
	got = s.QueryOverlaps(Circle(10), core.V2(0, 0), Filter{
		Include: func(e ecs.Entity) bool { return e == only },
	})
	if len(got) != 1 || got[0] != only {
		t.Errorf("Include filter: got %v, expected [%v]", got, only)
	}
}

func TestSetPositionReindexes(t *testing.T) {
	_, owners := newOwners(1)
	s := NewSpace(64)
	id := s.CreateBody(owners[0], Circle(5), core.V2(0, 0))

	s.SetPosition(id, core.V2(1000, 1000))

	if got := s.QueryOverlaps(Circle(5), core.V2(0, 0), Filter{}); len(got) != 0 {
		t.Errorf("Body should no longer be found at the old position, got %v", got)
	}
	if got := s.QueryOverlaps(Circle(5), core.V2(1000, 1000), Filter{}); len(got) != 1 {
		t.Errorf("Body should be found at the new position, got %v", got)
	}
	if pos, _ := s.Position(id); pos != core.V2(1000, 1000) {
		t.Errorf("Position() = %v", pos)
	}
}

func TestRemoveBody(t *testing.T) {
	_, owners := newOwners(1)
	s := NewSpace(0)
	id := s.CreateBody(owners[0], Circle(5), core.V2(0, 0))

	s.RemoveBody(id)
	s.RemoveBody(id)

	if s.Len() != 0 {
		t.Errorf("Len() = %d after removal", s.Len())
	}
	if got := s.QueryOverlaps(Circle(5), core.V2(0, 0), Filter{}); got != nil {
		t.Errorf("Removed body still reported: %v", got)
	}
	if _, ok := s.Position(id); ok {
		t.Error("Position() of removed body should fail")
	}
}
