// Package theme turns configured colors into lipgloss styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/application/settings"
)

// Theme is the renderer's color configuration.
type Theme struct {
	HeaderForeground lipgloss.Color
	HeaderBackground lipgloss.Color
	NormalRow        lipgloss.Color
	AltRow           lipgloss.Color
	SelectedRow      lipgloss.Color
	Text             lipgloss.Color
	CompletedText    lipgloss.Color
	StatusText       lipgloss.Color
}

// FromConfig builds a Theme, keeping Default colors for empty values.
func FromConfig(cfg settings.ThemeConfig) Theme {
	t := Default()
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.HeaderForeground, cfg.HeaderForeground)
	set(&t.HeaderBackground, cfg.HeaderBackground)
	set(&t.NormalRow, cfg.NormalRow)
	set(&t.AltRow, cfg.AltRow)
	set(&t.SelectedRow, cfg.SelectedRow)
	set(&t.Text, cfg.Text)
	set(&t.CompletedText, cfg.CompletedText)
	set(&t.StatusText, cfg.StatusText)
	return t
}

// Default returns the built-in slate/blue palette.
func Default() Theme {
	return Theme{
		HeaderForeground: lipgloss.Color("#f1f5f9"),
		HeaderBackground: lipgloss.Color("#1e40af"),
		NormalRow:        lipgloss.Color("#020617"),
		AltRow:           lipgloss.Color("#0f172a"),
		SelectedRow:      lipgloss.Color("#1e293b"),
		Text:             lipgloss.Color("#e2e8f0"),
		CompletedText:    lipgloss.Color("#22c55e"),
		StatusText:       lipgloss.Color("#94a3b8"),
	}
}

// Title styles block and screen titles.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(t.HeaderForeground).
		Background(t.HeaderBackground)
}

// Row styles the headline row at index i.
func (t Theme) Row(i int, selected, completed bool) lipgloss.Style {
	bg := t.NormalRow
	if i%2 == 1 {
		bg = t.AltRow
	}
	if selected {
		bg = t.SelectedRow
	}
	fg := t.Text
	if completed {
		fg = t.CompletedText
	}
	style := lipgloss.NewStyle().Foreground(fg).Background(bg)
	if selected {
		style = style.Bold(true)
	}
	return style
}

// Status styles the header status line.
func (t Theme) Status() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.StatusText)
}

// Body styles plain text such as the detail pane.
func (t Theme) Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}
