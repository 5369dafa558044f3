// Package detail renders the selected article's text.
package detail

import (
	"strings"

	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/textutil"
	"github.com/tesso57/headlines/internal/presentation/tui/theme"
)

const (
	// Title is the block title of the pane.
	Title = "Article"
	// Placeholder is shown when no article is selected.
	Placeholder = "Nothing selected..."
)

// Props defines the properties for the detail pane.
type Props struct {
	HasSelection bool
	Status       reading.Status
	Text         string
	Width        int
	Height       int
	Theme        theme.Theme
}

// Render renders the block title and the wrapped body, clipped to Height.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	title := p.Theme.Title().Width(p.Width).Render(textutil.Truncate(" "+Title, p.Width))

	body := Placeholder
	if p.HasSelection {
		body = p.Status.Glyph() + " " + p.Text
	}
	inner := p.Width - 2*metrics.ItemPadding
	body = textutil.ClipLines(textutil.Wrap(body, inner), p.Height-metrics.BlockTitleLines)

	lines := []string{title}
	pad := strings.Repeat(" ", metrics.ItemPadding)
	style := p.Theme.Body()
	if body != "" {
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, style.Render(pad+line))
		}
	}
	for len(lines) < p.Height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
