package settings

import (
	"testing"
	"time"
)

func TestSettings_Query(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	cfg := Settings{
		News: NewsConfig{
			Query:    "go",
			Category: "technology",
			Language: "en",
			FromDays: 10,
			SortBy:   "popularity",
			Limit:    5,
		},
	}

	q := cfg.Query(now)

	if q.Text != "go" || q.Category != "technology" || q.Language != "en" || q.SortBy != "popularity" {
		t.Fatalf("unexpected query %+v", q)
	}
	if q.Limit != 5 {
		t.Errorf("Limit = %d, want 5", q.Limit)
	}
	if !q.To.Equal(now) {
		t.Errorf("To = %v, want %v", q.To, now)
	}
	if want := now.AddDate(0, 0, -10); !q.From.Equal(want) {
		t.Errorf("From = %v, want %v", q.From, want)
	}
}

func TestSettings_QueryWithoutDateRange(t *testing.T) {
	q := Settings{}.Query(time.Now())
	if !q.From.IsZero() || !q.To.IsZero() {
		t.Fatalf("expected open date range, got %v..%v", q.From, q.To)
	}
}

func TestSettings_FetchTimeout(t *testing.T) {
	if got := (Settings{}).FetchTimeout(); got != 0 {
		t.Errorf("FetchTimeout() = %v, want 0", got)
	}
	cfg := Settings{Fetch: FetchConfig{TimeoutSeconds: 7}}
	if got := cfg.FetchTimeout(); got != 7*time.Second {
		t.Errorf("FetchTimeout() = %v, want 7s", got)
	}
}
