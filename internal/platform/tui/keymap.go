package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// KeyAction is what a key press asks the presenter to do.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyServe
	KeyLeft
	KeyRight
	KeyHelp
	KeyQuit
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Serve key.Binding
	Left  key.Binding
	Right key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Serve, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Serve, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// The mouse is the primary control; keys mirror it for terminals without mouse reporting.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Serve: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("click/space", "serve"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "paddle left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "paddle right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a presenter action.
func (k KeyMap) MapKey(msg tea.KeyMsg) KeyAction {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Serve):
		return KeyServe
	case key.Matches(msg, k.Left):
		return KeyLeft
	case key.Matches(msg, k.Right):
		return KeyRight
	case key.Matches(msg, k.Help):
		return KeyHelp
	}
	return KeyNone
}

// MapMouse translates a mouse message into game events.
// Cell columns map to the field x-coordinate of the cell centre.
// A left press moves the paddle under the pointer and then clicks.
func MapMouse(msg tea.MouseMsg, cols int, fieldW float64) []core.Event {
	if cols <= 0 {
		return nil
	}
	x := CellToField(msg.X, cols, fieldW)

	switch msg.Action {
	case tea.MouseActionMotion:
		return []core.Event{core.PointerMove(x)}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return []core.Event{core.PointerMove(x), core.Click()}
		}
	}
	return nil
}

// CellToField converts a terminal column to a field x-coordinate.
func CellToField(col, cols int, fieldW float64) float64 {
	return (float64(col) + 0.5) * fieldW / float64(cols)
}
