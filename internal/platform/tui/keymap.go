package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravflip/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its
// last press. Terminals repeat a held key every 30-50ms after an initial
// delay of a few hundred ms, so this bridges the gap at 60 ticks/sec.
const DefaultHoldTicks = 30

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Flip       key.Binding
	Start      key.Binding
	Restart    key.Binding
	PlayAgain  key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Flip, k.Restart, k.PlayAgain, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Flip},
		{k.Start, k.Restart, k.PlayAgain},
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
		Flip: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flip gravity"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals deliver key presses but no releases, so movement keys are
// emulated as held for holdTicks ticks after the last press. Auto-repeat
// keeps refreshing the counter while the key is down, and pressing the
// opposite direction cancels the previous one immediately.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	held      map[core.Action]int
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		keys:      DefaultKeyMap(),
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Flip):
		return core.ActionFlip
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.PlayAgain):
		return core.ActionPlayAgain
	}
	return core.ActionNone
}

// Press records a key press into the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
		km.held[core.ActionLeft] = km.holdTicks
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
		km.held[core.ActionRight] = km.holdTicks
	default:
		frame.Set(action)
	}
	return false
}

// Tick marks still-held movement keys in the frame and ages them by one tick.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	for action, left := range km.held {
		frame.Hold(action)
		if left <= 1 {
			delete(km.held, action)
		} else {
			km.held[action] = left - 1
		}
	}
}

// Release forgets all held keys.
func (km *KeyMapper) Release() {
	clear(km.held)
}
