package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Hold windows for synthesized key releases.
const (
	// DefaultHoldWindow is how long a held key survives without a repeat
	// event once the terminal has started repeating it.
	DefaultHoldWindow = 150 * time.Millisecond

	// firstHoldFactor stretches the window after the first press so the
	// terminal's initial repeat delay does not look like a release.
	firstHoldFactor = 3
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Action     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Action, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Action},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Action: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// GameKey translates a key message to a game key.
// Returns core.KeyNone for keys the game does not use.
func (k KeyMap) GameKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Action):
		return core.KeyAction
	}
	return core.KeyNone
}

// KeyHold feeds an InputTracker from a terminal, which reports key presses
// and repeats but never releases. A key counts as released once it has gone
// a hold window without repeating, or when the opposite direction is
// pressed.
type KeyHold struct {
	tracker *core.InputTracker
	window  time.Duration
	held    map[core.Key]holdState
}

type holdState struct {
	last     time.Time
	repeated bool
}

// NewKeyHold creates a KeyHold. A non-positive window uses DefaultHoldWindow.
func NewKeyHold(tracker *core.InputTracker, window time.Duration) *KeyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyHold{
		tracker: tracker,
		window:  window,
		held:    make(map[core.Key]holdState),
	}
}

// Press records a press or repeat of k at the given time.
func (h *KeyHold) Press(k core.Key, at time.Time) {
	if k == core.KeyNone {
		return
	}

	switch k {
	case core.KeyLeft:
		h.release(core.KeyRight)
	case core.KeyRight:
		h.release(core.KeyLeft)
	}

	st, ok := h.held[k]
	h.held[k] = holdState{last: at, repeated: ok || st.repeated}
	h.tracker.Press(k)
}

// Expire releases every key whose hold window ended before now.
func (h *KeyHold) Expire(now time.Time) {
	for k, st := range h.held {
		window := h.window
		if !st.repeated {
			window *= firstHoldFactor
		}
		if now.Sub(st.last) > window {
			h.release(k)
		}
	}
}

// ReleaseAll releases every held key.
func (h *KeyHold) ReleaseAll() {
	for k := range h.held {
		h.release(k)
	}
}

func (h *KeyHold) release(k core.Key) {
	delete(h.held, k)
	h.tracker.Release(k)
}
