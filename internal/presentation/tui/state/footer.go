package state

import "github.com/charmbracelet/bubbles/help"

// FooterText returns the single help line shown at the bottom of the screen.
func FooterText(h help.Model, keys KeyMap, width int) string {
	h.Width = width
	h.ShowAll = false
	return h.ShortHelpView(keys.ShortHelp())
}
