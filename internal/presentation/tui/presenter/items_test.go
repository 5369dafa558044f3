package presenter

import (
	"testing"

	"github.com/tesso57/headlines/internal/domain/reading"
)

func newList() *reading.ArticleList {
	return reading.NewArticleList(
		reading.Entry{Headline: "Article One", Detail: "Body 1", Link: "http://example.com/1"},
		reading.Entry{Headline: "Article Two", Detail: "Body 2", Link: "http://example.com/2"},
	)
}

func TestBuildRows(t *testing.T) {
	list := newList()
	list.SelectLast()
	list.ToggleSelectedStatus()

	rows := BuildRows(list)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Headline != "Article One" || rows[0].Status != reading.Unread {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	if rows[1].Headline != "Article Two" || rows[1].Status != reading.Completed {
		t.Errorf("unexpected second row %+v", rows[1])
	}

	if BuildRows(nil) != nil {
		t.Error("nil list should give no rows")
	}
}

func TestBuildSelection(t *testing.T) {
	list := newList()

	sel := BuildSelection(list)
	if sel.Valid || sel.Index != -1 {
		t.Errorf("expected no selection, got %+v", sel)
	}

	list.SelectNext()
	sel = BuildSelection(list)
	if !sel.Valid || sel.Index != 0 || sel.Detail != "Body 1" || sel.Link != "http://example.com/1" {
		t.Errorf("unexpected selection %+v", sel)
	}
}

func TestStatusLine(t *testing.T) {
	if got := StatusLine(reading.NewArticleList()); got != "No articles" {
		t.Errorf("StatusLine(empty) = %q", got)
	}

	list := newList()
	list.SelectFirst()
	list.ToggleSelectedStatus()
	if got := StatusLine(list); got != "1 of 2 read" {
		t.Errorf("StatusLine() = %q", got)
	}
}
