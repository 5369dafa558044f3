package reading

// FallbackDetail replaces the body of an article whose content could not be resolved.
const FallbackDetail = "No description available"

// Status is the local read marker of an article.
type Status int

const (
	Unread Status = iota
	Completed
)

// Toggle flips Unread and Completed.
func (s Status) Toggle() Status {
	if s == Completed {
		return Unread
	}
	return Completed
}

// Glyph returns the check box shown next to an article.
func (s Status) Glyph() string {
	if s == Completed {
		return "✓"
	}
	return "☐"
}

func (s Status) String() string {
	if s == Completed {
		return "completed"
	}
	return "unread"
}

// Entry is the resolved content of one article, ready to be listed.
type Entry struct {
	Headline string
	Detail   string
	Link     string
}

// ArticleItem is the display state of one listed article.
type ArticleItem struct {
	Headline string
	Detail   string
	Link     string
	Status   Status
}
