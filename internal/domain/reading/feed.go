// Package reading defines core reading models.
package reading

import "time"

// DefaultBatchLimit caps how many raw articles a single batch may contain.
const DefaultBatchLimit = 10

// RawArticle is one feed result before its content has been resolved.
type RawArticle struct {
	Title string
	URL   string
}

// Query describes which batch of articles to request from a feed.
type Query struct {
	Text     string
	Category string
	Language string
	From     time.Time
	To       time.Time
	SortBy   string
	Limit    int
}

// EffectiveLimit returns the batch cap, falling back to DefaultBatchLimit.
func (q Query) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultBatchLimit
	}
	return q.Limit
}

// Truncate returns at most the query's limit of articles, keeping feed order.
func (q Query) Truncate(articles []RawArticle) []RawArticle {
	limit := q.EffectiveLimit()
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}
