package header

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/theme"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		props      Props
		wantStatus string
	}{
		{
			name:       "title and status",
			props:      Props{Width: 40, Status: "2 of 10 read", Theme: theme.Default()},
			wantStatus: "2 of 10 read",
		},
		{
			name:  "empty status keeps two lines",
			props: Props{Width: 40, Theme: theme.Default()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if lipgloss.Height(got) != 2 {
				t.Fatalf("Render() height = %d, want 2: %q", lipgloss.Height(got), got)
			}
			if !strings.Contains(got, Title) {
				t.Errorf("Render() = %q, want title", got)
			}
			if !strings.Contains(got, tt.wantStatus) {
				t.Errorf("Render() = %q, want status %q", got, tt.wantStatus)
			}
		})
	}
}

func TestRender_ZeroWidth(t *testing.T) {
	if got := Render(Props{}); lipgloss.Height(got) != 2 {
		t.Errorf("zero width header should still reserve two lines, got %q", got)
	}
}
