package sim

import (
	"errors"
	"testing"
)

func TestPhaseMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Phase
		to      Phase
		wantErr bool
	}{
		{"menu to game", PhaseMenu, PhaseInGame, false},
		{"game to over", PhaseInGame, PhaseGameOver, false},
		{"menu to over", PhaseMenu, PhaseGameOver, true},
		{"game to menu", PhaseInGame, PhaseMenu, true},
		{"over is terminal", PhaseGameOver, PhaseInGame, true},
		{"same phase", PhaseInGame, PhaseInGame, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPhaseMachine(tt.from)
			err := m.Request(tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Request err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("err = %v, want ErrInvalidTransition", err)
			}
		})
	}
}

func TestPhaseHookOrder(t *testing.T) {
	m := NewPhaseMachine(PhaseMenu)
	var calls []string
	m.OnExit(PhaseMenu, func(*World) { calls = append(calls, "exit menu a") })
	m.OnExit(PhaseMenu, func(*World) { calls = append(calls, "exit menu b") })
	m.OnEnter(PhaseInGame, func(*World) { calls = append(calls, "enter game") })
	m.OnEnter(PhaseGameOver, func(*World) { calls = append(calls, "enter over") })

	if _, _, ok := m.apply(nil); ok {
		t.Fatal("apply without request reported a transition")
	}
	if err := m.Request(PhaseInGame); err != nil {
		t.Fatal(err)
	}
	if m.Current() != PhaseMenu {
		t.Fatal("Request changed the phase immediately")
	}
	from, to, ok := m.apply(nil)
	if !ok || from != PhaseMenu || to != PhaseInGame {
		t.Fatalf("apply = %v %v %v", from, to, ok)
	}

	want := []string{"exit menu a", "exit menu b", "enter game"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestGameOverOnDeath(t *testing.T) {
	cfg := emptyConfig()
	cfg.Rules.GameOverOnDeath = true
	w := newGame(t, cfg, 1)
	p := mustPlayer(t, w)
	pl, _ := w.players.Get(p)
	pl.Health = 0

	w.Step(Input{}, frame)
	if next, ok := w.phase.Pending(); !ok || next != PhaseGameOver {
		t.Fatalf("pending = %v %v, want GameOver", next, ok)
	}

	w.Step(Input{}, frame)
	if w.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want GameOver", w.Phase())
	}
	if _, err := w.Player(); !errors.Is(err, ErrNoActivePlayer) {
		t.Error("player survived game over")
	}
	if len(w.Enemies()) != 0 || len(w.Projectiles()) != 0 || len(w.Emitters()) != 0 {
		t.Error("gameplay entities survived game over")
	}
	if w.Registry().Len() != 0 {
		t.Errorf("registry holds %d entities", w.Registry().Len())
	}
}

func TestDeathWithoutGameOverKeepsPlaying(t *testing.T) {
	w := newGame(t, emptyConfig(), 1)
	p := mustPlayer(t, w)
	pl, _ := w.players.Get(p)
	pl.Health = 0

	for i := 0; i < 5; i++ {
		w.Step(Input{Right: true}, frame)
	}
	if w.Phase() != PhaseInGame {
		t.Fatalf("phase = %v, want InGame", w.Phase())
	}
	if !w.playerDead {
		t.Error("death not recorded")
	}
	if _, err := w.Player(); err != nil {
		t.Errorf("player removed: %v", err)
	}
}
