package detail

import (
	"strings"
	"testing"

	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/presentation/tui/theme"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  string
	}{
		{
			name:  "placeholder without selection",
			props: Props{Width: 40, Height: 4, Theme: theme.Default()},
			want:  Placeholder,
		},
		{
			name:  "unread glyph prefix",
			props: Props{HasSelection: true, Text: "Body text", Width: 40, Height: 4, Theme: theme.Default()},
			want:  "☐ Body text",
		},
		{
			name:  "completed glyph prefix",
			props: Props{HasSelection: true, Status: reading.Completed, Text: "Body text", Width: 40, Height: 4, Theme: theme.Default()},
			want:  "✓ Body text",
		},
		{
			name:  "fallback detail",
			props: Props{HasSelection: true, Text: reading.FallbackDetail, Width: 40, Height: 4, Theme: theme.Default()},
			want:  "☐ No description available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !strings.Contains(got, Title) {
				t.Errorf("Render() = %q, want title", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
			if n := len(strings.Split(got, "\n")); n != tt.props.Height {
				t.Errorf("Render() produced %d lines, want %d", n, tt.props.Height)
			}
		})
	}
}

func TestRender_ClipsLongText(t *testing.T) {
	got := Render(Props{
		HasSelection: true,
		Text:         strings.Repeat("lorem ipsum dolor sit amet ", 50),
		Width:        20,
		Height:       5,
		Theme:        theme.Default(),
	})
	if n := len(strings.Split(got, "\n")); n != 5 {
		t.Fatalf("expected 5 lines, got %d", n)
	}
}
