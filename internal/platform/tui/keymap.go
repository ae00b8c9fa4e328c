package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorshift/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	ShiftUp     key.Binding
	ShiftRight  key.Binding
	ShiftDown   key.Binding
	ShiftLeft   key.Binding
	CursorUp    key.Binding
	CursorRight key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	Touch       key.Binding
	Pause       key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Touch, k.ShiftUp, k.CursorUp, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ShiftUp, k.ShiftRight, k.ShiftDown, k.ShiftLeft},
		{k.CursorUp, k.CursorRight, k.CursorDown, k.CursorLeft},
		{k.Touch, k.Pause, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ShiftUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑↓←→", "shift"),
		),
		ShiftRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "shift right"),
		),
		ShiftDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "shift down"),
		),
		ShiftLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "shift left"),
		),
		CursorUp: key.NewBinding(
			key.WithKeys("w", "k"),
			key.WithHelp("wasd/hjkl", "cursor"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("d", "l"),
			key.WithHelp("d/l", "cursor right"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("s", "j"),
			key.WithHelp("s/j", "cursor down"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("a", "h"),
			key.WithHelp("a/h", "cursor left"),
		),
		Touch: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("click/enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.ShiftUp, core.ActionUp},
			{keys.ShiftRight, core.ActionRight},
			{keys.ShiftDown, core.ActionDown},
			{keys.ShiftLeft, core.ActionLeft},
			{keys.CursorUp, core.ActionCursorUp},
			{keys.CursorRight, core.ActionCursorRight},
			{keys.CursorDown, core.ActionCursorDown},
			{keys.CursorLeft, core.ActionCursorLeft},
			{keys.Touch, core.ActionConfirm},
			{keys.Pause, core.ActionPause},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left button press as a pointer press.
// Returns true if the message produced input.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.Press(msg.X, msg.Y)
	return true
}
