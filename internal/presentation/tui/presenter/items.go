// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/presentation/tui/components/headlines"
)

// Selection describes the selected article as the detail pane needs it.
type Selection struct {
	Index  int
	Status reading.Status
	Detail string
	Link   string
	Valid  bool
}

// BuildRows converts the list into headline rows, keeping list order.
func BuildRows(list *reading.ArticleList) []headlines.Row {
	if list == nil {
		return nil
	}
	items := list.Items()
	rows := make([]headlines.Row, len(items))
	for i, it := range items {
		rows[i] = headlines.Row{Headline: it.Headline, Status: it.Status}
	}
	return rows
}

// BuildSelection returns the current selection, with Index -1 when there is none.
func BuildSelection(list *reading.ArticleList) Selection {
	if list == nil {
		return Selection{Index: -1}
	}
	idx, ok := list.Selected()
	if !ok {
		return Selection{Index: -1}
	}
	item, _ := list.Item(idx)
	return Selection{
		Index:  idx,
		Status: item.Status,
		Detail: item.Detail,
		Link:   item.Link,
		Valid:  true,
	}
}

// StatusLine summarizes read progress for the header.
func StatusLine(list *reading.ArticleList) string {
	if list == nil || list.Len() == 0 {
		return "No articles"
	}
	done := 0
	for _, it := range list.Items() {
		if it.Status == reading.Completed {
			done++
		}
	}
	return fmt.Sprintf("%d of %d read", done, list.Len())
}
