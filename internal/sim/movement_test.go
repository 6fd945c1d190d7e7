package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/reblhell/internal/config"
	"github.com/vovakirdan/reblhell/internal/core"
	"github.com/vovakirdan/reblhell/internal/ecs"
)

func TestInputDirection(t *testing.T) {
	d := math.Sqrt2 / 2
	tests := []struct {
		name string
		in   Input
		want core.Vec2
	}{
		{"none", Input{}, core.Vec2{}},
		{"left", Input{Left: true}, core.V2(-1, 0)},
		{"up is positive y", Input{Up: true}, core.V2(0, 1)},
		{"opposites cancel", Input{Left: true, Right: true}, core.Vec2{}},
		{"all four", Input{Left: true, Right: true, Up: true, Down: true}, core.Vec2{}},
		{"diagonal normalized", Input{Right: true, Down: true}, core.V2(d, -d)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inputDirection(tt.in)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("inputDirection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	w := newGame(t, emptyConfig(), 1)
	p := mustPlayer(t, w)
	start := position(t, w, p)

	w.Step(Input{}, 0.25)
	if got := position(t, w, p); got != start {
		t.Fatalf("zero input moved player from %v to %v", start, got)
	}

	w.Step(Input{Right: true}, 0.5)
	if got := position(t, w, p); !approx(got.X, start.X+250) || !approx(got.Y, start.Y) {
		t.Fatalf("player at %v, want %v", got, start.Add(core.V2(250, 0)))
	}
}

func TestZeroInputNeverMovesPlayer(t *testing.T) {
	w := newGame(t, config.DefaultConfig(), 9)
	p := mustPlayer(t, w)
	start := position(t, w, p)
	for i := 0; i < 300; i++ {
		w.Step(Input{Confirm: i%7 == 0}, float64(i%5)*0.01)
		if got := position(t, w, p); got != start {
			t.Fatalf("frame %d: player moved to %v", i, got)
		}
	}
}

func TestEnemyChase(t *testing.T) {
	// Enemy at (700,0), player at origin, dt 1, speed 200.
	w := newGame(t, emptyConfig(), 1)
	p := mustPlayer(t, w)
	setPosition(w, p, core.Vec2{})
	e := spawnEnemy(w, core.V2(700, 0), core.V2(1, 0))

	w.Step(Input{}, 1)

	if got := position(t, w, e); !approx(got.X, 500) || !approx(got.Y, 0) {
		t.Fatalf("enemy at %v, want (500,0)", got)
	}
}

func TestEnemyOnPlayerStaysPut(t *testing.T) {
	w := newGame(t, emptyConfig(), 1)
	p := mustPlayer(t, w)
	at := position(t, w, p)
	e := spawnEnemy(w, at, core.Vec2{})

	moveEnemies(w, 1)

	got := position(t, w, e)
	if got != at || math.IsNaN(got.X) {
		t.Fatalf("coincident enemy moved to %v", got)
	}
}

func TestBodiesTrackTransforms(t *testing.T) {
	w := newGame(t, config.DefaultConfig(), 4)
	p := mustPlayer(t, w)

	for i := 0; i < 30; i++ {
		w.Step(Input{Up: true, Left: true}, frame)
	}

	check := func(e ecs.Entity) {
		t.Helper()
		c, ok := w.colliders.Get(e)
		if !ok {
			t.Fatalf("entity %v has no collider", e)
		}
		got, ok := w.space.Position(c.Body)
		if !ok {
			t.Fatalf("body of %v missing", e)
		}
		if want := position(t, w, e); got != want {
			t.Errorf("body of %v at %v, transform at %v", e, got, want)
		}
	}
	check(p)
	for _, e := range w.Enemies() {
		check(e.Entity)
	}
}
