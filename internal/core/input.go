package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionJump           // Space, W, Up, 2 - jump
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R key - restart after the run ends
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Held actions are level-triggered (the key is currently down); pressed
// actions are edge-triggered (the key went down during this tick). The
// jump is edge-triggered so holding space does not auto-bounce, while
// movement keys steer for as long as they are held.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// SetHeld marks an action as currently held.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// SetPressed marks an action as freshly pressed this tick.
// A pressed action is also held for the tick it was pressed on.
func (f *InputFrame) SetPressed(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.SetHeld(a)
}

// IsHeld returns true if the action is currently held.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// JustPressed returns true if the action transitioned to pressed this tick.
func (f InputFrame) JustPressed(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// Clear resets all actions for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}
