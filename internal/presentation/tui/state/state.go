// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/headlines/internal/application/settings"
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Quit     key.Binding
	Unselect key.Binding
	Down     key.Binding
	Up       key.Binding
	First    key.Binding
	Last     key.Binding
	Toggle   key.Binding
	Open     key.Binding
}

// ShortHelp returns the bindings shown in the footer line.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Unselect, k.Down, k.Up, k.First, k.Last, k.Toggle, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.First, k.Last},
		{k.Toggle, k.Unselect, k.Open, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(append(splitKeys(cfg.Quit), "ctrl+c")...),
			key.WithHelp(helpKeys(cfg.Quit), "quit"),
		),
		Unselect: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Unselect)...),
			key.WithHelp(helpKeys(cfg.Unselect), "unselect"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(helpKeys(cfg.Down), "down"),
		),
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(helpKeys(cfg.Up), "up"),
		),
		First: key.NewBinding(
			key.WithKeys(splitKeys(cfg.First)...),
			key.WithHelp(helpKeys(cfg.First), "first"),
		),
		Last: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Last)...),
			key.WithHelp(helpKeys(cfg.Last), "last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Toggle)...),
			key.WithHelp(helpKeys(cfg.Toggle), "toggle read"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(helpKeys(cfg.Open), "open"),
		),
	}
}

func helpKeys(keys string) string {
	return strings.Join(splitKeys(keys), "/")
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
