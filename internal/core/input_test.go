package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionConfirm)

	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Fatal("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionConfirm) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClearConsumesPointerPress(t *testing.T) {
	f := NewInputFrame()
	f.Pointer = &Pointer{X: 4, Y: 2, Down: true}
	f.Clear()

	if f.Pointer == nil || f.Pointer.X != 4 || f.Pointer.Y != 2 {
		t.Fatal("Clear should keep the pointer position")
	}
	if f.Pointer.Down {
		t.Error("Clear should consume the pointer press")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Pointer = &Pointer{X: 1, Y: 1}

	c := f.Clone()
	f.Clear()
	f.Pointer.X = 9

	if !c.Has(ActionDown) {
		t.Error("Clone should not share the action map")
	}
	if c.Pointer.X != 1 {
		t.Error("Clone should not share the pointer")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestFrameDelta(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameDelta(); got != 1.0/60.0 {
		t.Errorf("FrameDelta() = %f, expected 1/60", got)
	}
	cfg.TickRate = 0
	if got := cfg.FrameDelta(); got != 1.0/60.0 {
		t.Errorf("FrameDelta() with zero tick rate = %f, expected fallback 1/60", got)
	}
}
