// Package usecase contains application-level services.
package usecase

import (
	"context"
	"net/url"

	"github.com/tesso57/headlines/internal/domain/reading"
)

// BatchLoader fetches a bounded batch of raw articles from a feed.
type BatchLoader interface {
	Load(ctx context.Context, q reading.Query) ([]reading.RawArticle, error)
}

// PageFetcher retrieves the raw HTML of an article page.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Extractor turns article HTML into readable plain text.
// base is the URL the page was fetched from; implementations may use it to
// resolve relative references.
type Extractor interface {
	Extract(html []byte, base *url.URL) (string, error)
}

// ContentCache stores extracted article text by URL.
type ContentCache interface {
	Get(rawURL string) (string, bool, error)
	Put(rawURL, text string) error
}

// ContentFetcher resolves the readable text of an article URL.
// Implementations never fail; they return reading.FallbackDetail instead.
type ContentFetcher interface {
	FetchAndExtract(ctx context.Context, rawURL string) string
}
