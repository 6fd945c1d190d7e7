package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/reblhell/internal/core"
)

func TestMenuNavigation(t *testing.T) {
	m := MenuModel{
		items: []MenuItem{{GameID: "a", Title: "A"}, {GameID: "b", Title: "B"}},
		keys:  DefaultMenuKeyMap(),
	}

	step := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	step(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after up at top", m.cursor)
	}
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want clamp at 1", m.cursor)
	}
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.GameID != "b" {
		t.Fatalf("selected = %+v, want b", sel)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("no quit command")
	}
	mm := next.(MenuModel)
	if mm.Selected() != nil || mm.View() != "" {
		t.Fatal("quit should select nothing and blank the view")
	}
}
