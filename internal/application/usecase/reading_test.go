package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/headlines/internal/domain/reading"
)

func rawBatch(n int) []reading.RawArticle {
	out := make([]reading.RawArticle, n)
	for i := range out {
		out[i] = reading.RawArticle{
			Title: fmt.Sprintf("Headline %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		}
	}
	return out
}

func TestPopulationService_Populate(t *testing.T) {
	q := reading.Query{Text: "go", Limit: 3}
	loader := &stubBatchLoader{}
	loader.On("Load", mock.Anything, q).Return(rawBatch(3), nil)

	content := contentByURL{
		"https://example.com/0": "body 0",
		"https://example.com/2": "body 2",
	}

	var progress []int
	svc := NewPopulationService(loader, content, nil)
	svc.Progress = func(done, total int, _ reading.RawArticle) {
		if total != 3 {
			t.Errorf("progress total = %d, want 3", total)
		}
		progress = append(progress, done)
	}

	got, err := svc.Populate(context.Background(), q)
	if err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	want := []reading.Entry{
		{Headline: "Headline 0", Detail: "body 0", Link: "https://example.com/0"},
		{Headline: "Headline 1", Detail: reading.FallbackDetail, Link: "https://example.com/1"},
		{Headline: "Headline 2", Detail: "body 2", Link: "https://example.com/2"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(progress) != 3 || progress[2] != 3 {
		t.Errorf("progress = %v, want [1 2 3]", progress)
	}
	loader.AssertExpectations(t)
}

func TestPopulationService_CapsBatch(t *testing.T) {
	q := reading.Query{}
	loader := &stubBatchLoader{}
	loader.On("Load", mock.Anything, q).Return(rawBatch(25), nil)

	got, err := NewPopulationService(loader, contentByURL{}, nil).Populate(context.Background(), q)
	if err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if len(got) != reading.DefaultBatchLimit {
		t.Fatalf("len = %d, want %d", len(got), reading.DefaultBatchLimit)
	}
	if got[9].Headline != "Headline 9" {
		t.Errorf("last entry = %q, want Headline 9", got[9].Headline)
	}
}

func TestPopulationService_LoaderFailure(t *testing.T) {
	loader := &stubBatchLoader{}
	loader.On("Load", mock.Anything, mock.Anything).Return(nil, errors.New("401 apiKeyInvalid"))

	got, err := NewPopulationService(loader, contentByURL{}, nil).Populate(context.Background(), reading.Query{})
	if err == nil {
		t.Fatal("expected batch failure to propagate")
	}
	if got != nil {
		t.Errorf("expected no entries, got %v", got)
	}
}

func TestPopulationService_EmptyBatch(t *testing.T) {
	loader := &stubBatchLoader{}
	loader.On("Load", mock.Anything, mock.Anything).Return([]reading.RawArticle{}, nil)

	got, err := NewPopulationService(loader, contentByURL{}, nil).Populate(context.Background(), reading.Query{})
	if err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestPopulationService_ParallelKeepsOrder(t *testing.T) {
	loader := &stubBatchLoader{}
	loader.On("Load", mock.Anything, mock.Anything).Return(rawBatch(8), nil)

	content := contentByURL{}
	for i := 0; i < 8; i += 2 {
		content[fmt.Sprintf("https://example.com/%d", i)] = fmt.Sprintf("body %d", i)
	}

	svc := NewPopulationService(loader, content, nil)
	svc.Workers = 4

	got, err := svc.Populate(context.Background(), reading.Query{})
	if err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	for i, e := range got {
		if e.Headline != fmt.Sprintf("Headline %d", i) {
			t.Errorf("entry %d headline = %q", i, e.Headline)
		}
		want := reading.FallbackDetail
		if i%2 == 0 {
			want = fmt.Sprintf("body %d", i)
		}
		if e.Detail != want {
			t.Errorf("entry %d detail = %q, want %q", i, e.Detail, want)
		}
	}
}

func TestPopulationService_NotConfigured(t *testing.T) {
	if _, err := (PopulationService{}).Populate(context.Background(), reading.Query{}); err == nil {
		t.Fatal("expected error for unconfigured service")
	}
}
