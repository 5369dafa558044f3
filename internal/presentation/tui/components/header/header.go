// Package header provides the screen header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/textutil"
	"github.com/tesso57/headlines/internal/presentation/tui/theme"
)

// Title is the fixed application title.
const Title = "Terminal News Reader"

// Props defines the properties for the header component.
type Props struct {
	Width  int
	Status string
	Theme  theme.Theme
}

// Render renders the two header lines: the title bar and a status line.
func Render(p Props) string {
	if p.Width <= 0 {
		return "\n"
	}
	title := p.Theme.Title().
		Width(p.Width).
		Align(lipgloss.Center).
		Render(textutil.Truncate(Title, p.Width))
	status := p.Theme.Status().
		Width(p.Width).
		Render(textutil.Truncate(textutil.SingleLine(p.Status), p.Width))
	return title + "\n" + status
}
