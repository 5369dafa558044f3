// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	Unselect
	Next
	Previous
	First
	Last
	Toggle
	Open
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
// Bubbletea only reports key presses, so every message here is a press.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Unselect):
		return Intent{Type: Unselect}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Next}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Previous}
	case key.Matches(msg, keys.First):
		return Intent{Type: First}
	case key.Matches(msg, keys.Last):
		return Intent{Type: Last}
	case key.Matches(msg, keys.Toggle):
		return Intent{Type: Toggle}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	default:
		return Intent{Type: None}
	}
}
