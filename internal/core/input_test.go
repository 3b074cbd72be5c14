package core

import "testing"

func TestInputFrameHeldVsPressed(t *testing.T) {
	f := NewInputFrame()

	f.SetHeld(ActionLeft)
	if !f.IsHeld(ActionLeft) {
		t.Error("Left should be held")
	}
	if f.JustPressed(ActionLeft) {
		t.Error("SetHeld should not mark the action as just-pressed")
	}

	f.SetPressed(ActionJump)
	if !f.JustPressed(ActionJump) {
		t.Error("Jump should be just-pressed")
	}
	if !f.IsHeld(ActionJump) {
		t.Error("a pressed action should also be held this tick")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.SetHeld(ActionRight)
	f.SetPressed(ActionJump)

	f.Clear()

	if f.IsHeld(ActionRight) || f.IsHeld(ActionJump) || f.JustPressed(ActionJump) {
		t.Error("Clear should reset all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.SetHeld(ActionLeft)
	f.SetPressed(ActionJump)

	clone := f.Clone()
	f.Clear()

	if !clone.IsHeld(ActionLeft) || !clone.JustPressed(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	// Zero-value frames must be safe to query and set.
	if f.IsHeld(ActionLeft) || f.JustPressed(ActionJump) {
		t.Error("zero-value frame should report nothing")
	}
	f.SetHeld(ActionLeft)
	f.SetPressed(ActionJump)
	if !f.IsHeld(ActionLeft) || !f.JustPressed(ActionJump) {
		t.Error("setting on a zero-value frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify to Unknown")
	}
}
