// Package headlines renders the scrollable headline list.
package headlines

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/textutil"
	"github.com/tesso57/headlines/internal/presentation/tui/theme"
)

// Title is the block title of the list.
const Title = "Headlines"

// Row is one rendered headline.
type Row struct {
	Headline string
	Status   reading.Status
}

// Props defines the properties for the headline list.
// Selected is -1 when nothing is selected.
type Props struct {
	Rows     []Row
	Selected int
	Width    int
	Height   int
	Theme    theme.Theme
}

// Render renders the block title followed by the visible rows, padded to Height.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	lines := make([]string, 0, p.Height)
	lines = append(lines, p.Theme.Title().Width(p.Width).Render(textutil.Truncate(" "+Title, p.Width)))

	visible := p.Height - metrics.BlockTitleLines
	start, end := Window(p.Selected, len(p.Rows), visible)
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(p, i))
	}
	for len(lines) < p.Height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderRow(p Props, i int) string {
	row := p.Rows[i]
	selected := i == p.Selected

	prefix := strings.Repeat(" ", ansi.StringWidth(metrics.HighlightSymbol))
	if selected {
		prefix = metrics.HighlightSymbol
	}
	text := prefix + row.Status.Glyph() + " " + textutil.SingleLine(row.Headline)
	text = textutil.Truncate(text, p.Width-metrics.ItemPadding)

	return p.Theme.Row(i, selected, row.Status == reading.Completed).
		Width(p.Width).
		Render(text)
}

// Window returns the half-open range of row indexes that fit in height lines
// while keeping selected visible. A negative selected anchors the window at the top.
func Window(selected, total, height int) (int, int) {
	if height <= 0 || total <= 0 {
		return 0, 0
	}
	if total <= height {
		return 0, total
	}
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}
