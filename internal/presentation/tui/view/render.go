// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/headlines/internal/presentation/tui/components/detail"
	"github.com/tesso57/headlines/internal/presentation/tui/components/footer"
	"github.com/tesso57/headlines/internal/presentation/tui/components/header"
	"github.com/tesso57/headlines/internal/presentation/tui/components/headlines"
	"github.com/tesso57/headlines/internal/presentation/tui/components/layout"
)

// Props aggregates properties for all UI components.
type Props struct {
	Header    header.Props
	Headlines headlines.Props
	Detail    detail.Props
	Footer    footer.Props
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	return layout.Render(layout.Props{
		Header:    header.Render(p.Header),
		Headlines: headlines.Render(p.Headlines),
		Detail:    detail.Render(p.Detail),
		Footer:    footer.Render(p.Footer),
	})
}
