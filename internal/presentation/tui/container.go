// Package tui provides the main user interface model and view components.
package tui

import (
	"github.com/tesso57/headlines/internal/presentation/tui/components/detail"
	"github.com/tesso57/headlines/internal/presentation/tui/components/footer"
	"github.com/tesso57/headlines/internal/presentation/tui/components/header"
	"github.com/tesso57/headlines/internal/presentation/tui/components/headlines"
	"github.com/tesso57/headlines/internal/presentation/tui/components/layout"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/presenter"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
	"github.com/tesso57/headlines/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	regions := layout.Split(m.size())
	sel := presenter.BuildSelection(m.state.List)

	return view.Props{
		Header: header.Props{
			Width:  regions.Width,
			Status: presenter.StatusLine(m.state.List),
			Theme:  m.theme,
		},
		Headlines: headlines.Props{
			Rows:     presenter.BuildRows(m.state.List),
			Selected: sel.Index,
			Width:    regions.Width,
			Height:   regions.Headlines,
			Theme:    m.theme,
		},
		Detail: detail.Props{
			HasSelection: sel.Valid,
			Status:       sel.Status,
			Text:         sel.Detail,
			Width:        regions.Width,
			Height:       regions.Detail,
			Theme:        m.theme,
		},
		Footer: footer.Props{
			Help:  state.FooterText(m.state.Help, m.state.Keys, regions.Width),
			Width: regions.Width,
		},
	}
}

func (m *Model) size() (int, int) {
	w, h := m.state.Width, m.state.Height
	if w <= 0 || h <= 0 {
		return metrics.DefaultWidth, metrics.DefaultHeight
	}
	return w, h
}
