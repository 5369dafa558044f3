package headlines

import (
	"strings"
	"testing"

	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/presentation/tui/theme"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		selected  int
		total     int
		height    int
		wantStart int
		wantEnd   int
	}{
		{name: "fits", selected: 2, total: 3, height: 5, wantStart: 0, wantEnd: 3},
		{name: "no selection", selected: -1, total: 10, height: 4, wantStart: 0, wantEnd: 4},
		{name: "selection inside first page", selected: 3, total: 10, height: 4, wantStart: 0, wantEnd: 4},
		{name: "selection scrolls", selected: 6, total: 10, height: 4, wantStart: 3, wantEnd: 7},
		{name: "last", selected: 9, total: 10, height: 4, wantStart: 6, wantEnd: 10},
		{name: "no room", selected: 1, total: 10, height: 0, wantStart: 0, wantEnd: 0},
		{name: "empty", selected: -1, total: 0, height: 4, wantStart: 0, wantEnd: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.selected, tt.total, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRender(t *testing.T) {
	p := Props{
		Rows: []Row{
			{Headline: "First story", Status: reading.Unread},
			{Headline: "Second story", Status: reading.Completed},
		},
		Selected: 1,
		Width:    40,
		Height:   5,
		Theme:    theme.Default(),
	}

	got := Render(p)
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], Title) {
		t.Errorf("first line should be the title, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "☐ First story") || strings.Contains(lines[1], ">") {
		t.Errorf("unexpected unselected row %q", lines[1])
	}
	if !strings.Contains(lines[2], "> ✓ Second story") {
		t.Errorf("unexpected selected row %q", lines[2])
	}
}

func TestRender_ScrollsToSelection(t *testing.T) {
	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = Row{Headline: "Story " + string(rune('A'+i))}
	}
	got := Render(Props{Rows: rows, Selected: 9, Width: 30, Height: 4, Theme: theme.Default()})

	if !strings.Contains(got, "Story J") {
		t.Errorf("selected row should be visible: %q", got)
	}
	if strings.Contains(got, "Story A") {
		t.Errorf("first row should have scrolled out: %q", got)
	}
}

func TestRender_TruncatesLongHeadlines(t *testing.T) {
	got := Render(Props{
		Rows:     []Row{{Headline: strings.Repeat("word ", 40)}},
		Selected: -1,
		Width:    20,
		Height:   2,
		Theme:    theme.Default(),
	})
	if !strings.Contains(got, "...") {
		t.Errorf("expected ellipsis, got %q", got)
	}
}
