// Package layout provides the screen layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
)

// Regions are the heights of the stacked screen regions for one draw.
type Regions struct {
	Width     int
	Header    int
	Headlines int
	Detail    int
	Footer    int
}

// Split divides a width x height screen into header, an evenly split body and footer.
// The headline list gets the extra line when the body height is odd.
func Split(width, height int) Regions {
	r := Regions{Width: max(width, 0)}
	remaining := max(height, 0)

	r.Header = min(metrics.HeaderLines, remaining)
	remaining -= r.Header
	r.Footer = min(metrics.FooterLines, remaining)
	remaining -= r.Footer

	r.Detail = remaining / 2
	r.Headlines = remaining - r.Detail
	return r
}

// Props defines the rendered regions to stack.
type Props struct {
	Header    string
	Headlines string
	Detail    string
	Footer    string
}

// Render stacks the regions top to bottom, skipping empty ones.
func Render(p Props) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Header, p.Headlines, p.Detail, p.Footer} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
