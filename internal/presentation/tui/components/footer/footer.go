// Package footer renders the one-line help bar.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/textutil"
)

// Props defines the properties for the footer component.
type Props struct {
	Help  string
	Width int
}

// Render renders the help text on a single line.
func Render(p Props) string {
	if p.Width <= 0 {
		return ""
	}
	line := p.Help
	if lipgloss.Width(line) > p.Width || lipgloss.Height(line) > 1 {
		line = textutil.Truncate(textutil.SingleLine(line), p.Width)
	}
	return line
}
