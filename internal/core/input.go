package core

import "sync"

// Key is a semantic game key, abstracted from physical key codes.
// Hosts map their platform's key events to these values.
type Key int

const (
	KeyNone   Key = iota
	KeyLeft       // Left arrow, A
	KeyRight      // Right arrow, D
	KeyAction     // Space - start / restart
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the input state for one simulation tick.
type InputSnapshot struct {
	Left   bool // Move-left held
	Right  bool // Move-right held
	Action bool // Action key went down since the previous snapshot
}

// InputTracker turns press/release events into per-frame snapshots.
//
// Direction keys are sticky: set on press, cleared on the matching release.
// The action key is edge-triggered: it fires once on the up-to-down
// transition and does not fire again until it has been released.
// Events and snapshots may come from different goroutines.
type InputTracker struct {
	mu         sync.Mutex
	left       bool
	right      bool
	actionHeld bool
	actionEdge bool
}

// NewInputTracker creates a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{}
}

// Press records a key-down event. Repeated presses of a held key are ignored.
func (t *InputTracker) Press(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch k {
	case KeyLeft:
		t.left = true
	case KeyRight:
		t.right = true
	case KeyAction:
		if !t.actionHeld {
			t.actionHeld = true
			t.actionEdge = true
		}
	}
}

// Release records a key-up event.
func (t *InputTracker) Release(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch k {
	case KeyLeft:
		t.left = false
	case KeyRight:
		t.right = false
	case KeyAction:
		t.actionHeld = false
	}
}

// Held reports whether a key is currently down.
func (t *InputTracker) Held(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch k {
	case KeyLeft:
		return t.left
	case KeyRight:
		return t.right
	case KeyAction:
		return t.actionHeld
	}
	return false
}

// Snapshot returns the current input state and consumes the pending action
// edge, so each action press is delivered to exactly one frame.
func (t *InputTracker) Snapshot() InputSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := InputSnapshot{
		Left:   t.left,
		Right:  t.right,
		Action: t.actionEdge,
	}
	t.actionEdge = false
	return snap
}

// Reset releases every key and drops any pending action.
func (t *InputTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.left, t.right = false, false
	t.actionHeld, t.actionEdge = false, false
}
