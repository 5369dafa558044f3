package reading

// noSelection marks an ArticleList without a cursor.
const noSelection = -1

// ArticleList is an ordered set of articles with an optional selection cursor.
// The cursor, when set, always points at an existing item.
type ArticleList struct {
	items    []ArticleItem
	selected int
}

// NewArticleList builds a list from entries with nothing selected.
func NewArticleList(entries ...Entry) *ArticleList {
	l := &ArticleList{selected: noSelection}
	l.ReplaceAll(entries)
	return l
}

// ReplaceAll drops every item, inserts entries in order and clears the selection.
func (l *ArticleList) ReplaceAll(entries []Entry) {
	items := make([]ArticleItem, len(entries))
	for i, e := range entries {
		items[i] = ArticleItem{
			Headline: e.Headline,
			Detail:   e.Detail,
			Link:     e.Link,
			Status:   Unread,
		}
	}
	l.items = items
	l.selected = noSelection
}

// Len returns the number of items.
func (l *ArticleList) Len() int {
	return len(l.items)
}

// Items returns a copy of the items in display order.
func (l *ArticleList) Items() []ArticleItem {
	return append([]ArticleItem(nil), l.items...)
}

// Item returns the item at index i.
func (l *ArticleList) Item(i int) (ArticleItem, bool) {
	if i < 0 || i >= len(l.items) {
		return ArticleItem{}, false
	}
	return l.items[i], true
}

// Selected returns the cursor index, if any.
func (l *ArticleList) Selected() (int, bool) {
	if l.selected == noSelection {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the item under the cursor, if any.
func (l *ArticleList) SelectedItem() (ArticleItem, bool) {
	i, ok := l.Selected()
	if !ok {
		return ArticleItem{}, false
	}
	return l.items[i], true
}

// SelectNext moves the cursor down one item, stopping at the last one.
// Without a selection it selects the first item.
func (l *ArticleList) SelectNext() {
	if len(l.items) == 0 {
		return
	}
	if l.selected == noSelection {
		l.selected = 0
		return
	}
	if l.selected < len(l.items)-1 {
		l.selected++
	}
}

// SelectPrevious moves the cursor up one item, stopping at the first one.
// Without a selection it selects the last item.
func (l *ArticleList) SelectPrevious() {
	if len(l.items) == 0 {
		return
	}
	if l.selected == noSelection {
		l.selected = len(l.items) - 1
		return
	}
	if l.selected > 0 {
		l.selected--
	}
}

// SelectFirst jumps to the first item.
func (l *ArticleList) SelectFirst() {
	if len(l.items) == 0 {
		return
	}
	l.selected = 0
}

// SelectLast jumps to the last item.
func (l *ArticleList) SelectLast() {
	if len(l.items) == 0 {
		return
	}
	l.selected = len(l.items) - 1
}

// SelectNone clears the cursor.
func (l *ArticleList) SelectNone() {
	l.selected = noSelection
}

// ToggleSelectedStatus flips the status of the selected item.
func (l *ArticleList) ToggleSelectedStatus() {
	if l.selected == noSelection {
		return
	}
	l.items[l.selected].Status = l.items[l.selected].Status.Toggle()
}
